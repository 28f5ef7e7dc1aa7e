// Package watson talks to the watson time-tracking CLI and parses its output.
package watson

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is looked up in PATH when no explicit path is configured.
const DefaultBinary = "watson"

// Client issues commands to watson and returns their raw text output.
type Client interface {
	Status(ctx context.Context) (string, error)
	Projects(ctx context.Context) ([]string, error)
	Start(ctx context.Context, project string) (string, error)
	Stop(ctx context.Context) (string, error)
}

// CLI runs the watson binary as a subprocess.
type CLI struct {
	path    string
	timeout time.Duration
}

// NewCLI creates a client for the binary at path. An empty path means
// "watson" from PATH. A zero timeout disables the per-command deadline.
func NewCLI(path string, timeout time.Duration) *CLI {
	if path == "" {
		path = DefaultBinary
	}
	return &CLI{path: path, timeout: timeout}
}

// Path returns the configured binary path.
func (c *CLI) Path() string {
	return c.path
}

// Check verifies that the binary can be resolved.
func (c *CLI) Check() error {
	if _, err := exec.LookPath(c.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Status runs `watson status`.
func (c *CLI) Status(ctx context.Context) (string, error) {
	return c.run(ctx, "status")
}

// Projects runs `watson projects` and returns one name per output line.
func (c *CLI) Projects(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "projects")
	if err != nil {
		return nil, err
	}
	return ParseProjects(out), nil
}

// Start runs `watson start <project>`.
func (c *CLI) Start(ctx context.Context, project string) (string, error) {
	return c.run(ctx, "start", project)
}

// Stop runs `watson stop`.
func (c *CLI) Stop(ctx context.Context) (string, error) {
	return c.run(ctx, "stop")
}

// run executes watson and returns its combined output. A non-zero exit is
// not an error here: watson reports refusals as text, which callers inspect.
func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.path, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return string(out), nil
		}
		return "", fmt.Errorf("%w: watson %s: %v", ErrUnavailable, strings.Join(args, " "), err)
	}
	return string(out), nil
}
