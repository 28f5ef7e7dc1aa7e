package tracking

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/watsonbar/watsonbar/internal/watson"
)

// Machine is the single writer of State. It issues commands through a
// watson.Client and reconciles the cached state with watson's answers.
//
// Mutating methods are meant to be called from one goroutine at a time (the
// scheduler loop); the mutex only makes State snapshots safe to read from
// elsewhere.
type Machine struct {
	client   watson.Client
	registry *Registry

	mu    sync.RWMutex
	state State
}

// NewMachine creates a machine starting in the idle state.
func NewMachine(client watson.Client, registry *Registry) *Machine {
	return &Machine{
		client:   client,
		registry: registry,
	}
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Registry returns the project registry the machine rebuilds after stops.
func (m *Machine) Registry() *Registry {
	return m.registry
}

func (m *Machine) set(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Refresh reads watson's status and overwrites the state with it. On error
// the state is left as it was.
func (m *Machine) Refresh(ctx context.Context) error {
	st, err := m.status(ctx)
	if err != nil {
		return err
	}
	m.set(stateFromStatus(st))
	return nil
}

func (m *Machine) status(ctx context.Context) (watson.Status, error) {
	out, err := m.client.Status(ctx)
	if err != nil {
		return watson.Idle, fmt.Errorf("failed to query status: %w", err)
	}
	st, err := watson.ParseStatus(out)
	if err != nil {
		return watson.Idle, fmt.Errorf("failed to parse status: %w", err)
	}
	return st, nil
}

// Start begins tracking project. Starting while another task runs is allowed;
// watson stops the previous task itself.
//
// If watson does not acknowledge the start, ErrCommandFailed is returned and
// the state is unchanged. Once acknowledged the machine is started even if
// the follow-up status read fails; EnsureKnown fills the details later.
func (m *Machine) Start(ctx context.Context, project string) error {
	log.Printf("[tracking] Starting timer for %q", project)

	out, err := m.client.Start(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to start %q: %w", project, err)
	}
	if !watson.StartAcknowledged(out) {
		return fmt.Errorf("%w: start %q: %s", watson.ErrCommandFailed, project, strings.TrimSpace(out))
	}

	m.set(State{Started: true})

	st, err := m.status(ctx)
	if err != nil {
		return err
	}
	if st.Running {
		m.set(stateFromStatus(st))
	}
	return nil
}

// Stop ends the running task. "No project started." counts as success, so a
// task already stopped from the command line still ends up idle here.
// After a stop the registry picks up any projects watson now knows about.
func (m *Machine) Stop(ctx context.Context) error {
	log.Printf("[tracking] Stopping timer for %q", m.State().TaskName)

	out, err := m.client.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop: %w", err)
	}
	if !watson.StopAcknowledged(out) {
		return fmt.Errorf("%w: stop: %s", watson.ErrCommandFailed, strings.TrimSpace(out))
	}

	m.set(State{})

	if m.registry != nil {
		names, err := m.client.Projects(ctx)
		if err != nil {
			log.Printf("[tracking] Failed to reload projects after stop: %v", err)
			return nil
		}
		if added := m.registry.Merge(names); added > 0 {
			log.Printf("[tracking] Registered %d new project(s)", added)
		}
	}
	return nil
}

// Reconcile re-reads the status while a task is started, picking up starts
// and stops made directly with watson. While idle it does nothing.
func (m *Machine) Reconcile(ctx context.Context) error {
	if !m.State().Started {
		return nil
	}
	return m.Refresh(ctx)
}

// EnsureKnown refreshes when the machine is started but the task name or
// start time is still missing. refreshed reports whether watson was queried.
func (m *Machine) EnsureKnown(ctx context.Context) (refreshed bool, err error) {
	s := m.State()
	if !s.Started || s.Known() {
		return false, nil
	}
	return true, m.Refresh(ctx)
}

// LoadProjects seeds the registry from watson's project list.
func (m *Machine) LoadProjects(ctx context.Context) error {
	names, err := m.client.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	m.registry.Merge(names)
	return nil
}
