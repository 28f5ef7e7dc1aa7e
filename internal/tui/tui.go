// Package tui implements a terminal rendition of the menu-bar menu.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watsonbar/watsonbar/internal/menu"
	"github.com/watsonbar/watsonbar/internal/projector"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Host renders frames into a terminal program. It implements
// scheduler.Renderer and scheduler.Notifier.
type Host struct {
	ref  *programRef
	ctrl *menu.Controller

	mu   sync.Mutex
	last projector.Frame
}

// NewHost creates a terminal host.
func NewHost() *Host {
	return &Host{
		ref:  &programRef{},
		ctrl: menu.NewController(nil, nil),
	}
}

// Render forwards frame to the running program.
func (h *Host) Render(frame projector.Frame) {
	h.mu.Lock()
	h.last = frame
	h.mu.Unlock()
	h.ref.Send(FrameMsg{Frame: frame})
}

// Notify shows the notification in the status line.
func (h *Host) Notify(title, message string) error {
	h.ref.Send(NoticeMsg{Title: title, Message: message})
	return nil
}

// Run shows the menu until the user quits. Key presses go to actions.
func (h *Host) Run(actions menu.Actions) error {
	h.ctrl.SetActions(actions)

	h.mu.Lock()
	initial := h.last
	h.mu.Unlock()

	p := tea.NewProgram(NewModel(h.ctrl, initial), tea.WithAltScreen())
	h.ref.Set(p)
	defer h.ref.Clear()

	_, err := p.Run()
	return err
}
