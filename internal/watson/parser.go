package watson

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the layout watson prints inside the parentheses of a
// status line (%Y.%m.%d %H:%M:%S%z).
const TimestampLayout = "2006.01.02 15:04:05-0700"

var statusPattern = regexp.MustCompile(`^Project ([a-zA-Z\-_ /]+)\s?(?:\[.+\])? started .+\((.+)\)`)

// Status is the parsed result of `watson status`.
// Project and StartedAt are set only when Running is true.
type Status struct {
	Running   bool
	Project   string
	StartedAt time.Time
}

// Idle is the status reported when nothing is tracked.
var Idle = Status{}

// ParseStatus turns raw status output into a Status.
//
// Output that does not match the status pattern yields Idle with a nil
// error, so "no project started" and unrecognised output look the same.
// A matching line whose timestamp cannot be parsed is an error.
func ParseStatus(raw string) (Status, error) {
	m := statusPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Idle, nil
	}

	startedAt, err := time.Parse(TimestampLayout, strings.TrimSpace(m[2]))
	if err != nil {
		return Idle, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, m[2], err)
	}

	return Status{
		Running:   true,
		Project:   strings.TrimSpace(m[1]),
		StartedAt: startedAt,
	}, nil
}

// ParseProjects splits `watson projects` output into names, one per line.
func ParseProjects(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// StartAcknowledged reports whether start output contains watson's
// acknowledgement.
func StartAcknowledged(output string) bool {
	return strings.Contains(output, "Starting project")
}

// StopAcknowledged reports whether stop output means nothing is tracked any
// more. "No project started." counts: the tool was already idle.
func StopAcknowledged(output string) bool {
	return strings.Contains(output, "Stopping project") ||
		strings.Contains(output, "No project started.")
}
