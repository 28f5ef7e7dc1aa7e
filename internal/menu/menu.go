// Package menu routes menu interactions to tracking actions. It holds the
// last rendered frame so clicks are judged against what the user saw.
package menu

import (
	"log"
	"strings"
	"sync"

	"github.com/watsonbar/watsonbar/internal/projector"
)

// NewProjectPrompt is the text of the new-project prompt.
const NewProjectPrompt = "Enter a project name"

// Actions are the operations menu clicks trigger.
type Actions interface {
	StartProject(name string) bool
	StopTracking() bool
	CreateProject(name string) bool
}

// Refresher is implemented by actions that can re-read watson on demand.
type Refresher interface {
	RefreshNow() bool
}

// Prompter asks the user for a line of text. ok is false when cancelled.
type Prompter interface {
	Prompt(text string) (value string, ok bool, err error)
}

// Controller tracks the displayed frame and dispatches clicks.
type Controller struct {
	mu      sync.Mutex
	frame   projector.Frame
	actions Actions
	prompt  Prompter
}

// NewController creates a controller. prompt may be nil when the host asks
// for names itself and calls SubmitNewProject.
func NewController(actions Actions, prompt Prompter) *Controller {
	return &Controller{actions: actions, prompt: prompt}
}

// SetActions replaces the click target.
func (c *Controller) SetActions(actions Actions) {
	c.mu.Lock()
	c.actions = actions
	c.mu.Unlock()
}

// SetFrame records the frame currently on screen.
func (c *Controller) SetFrame(f projector.Frame) {
	c.mu.Lock()
	c.frame = f
	c.mu.Unlock()
}

// Frame returns the frame currently on screen.
func (c *Controller) Frame() projector.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

func (c *Controller) current() (projector.Frame, Actions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame, c.actions
}

// Refresh asks for an immediate status read. It returns false when the
// actions cannot refresh.
func (c *Controller) Refresh() bool {
	_, actions := c.current()
	r, ok := actions.(Refresher)
	if !ok {
		return false
	}
	return r.RefreshNow()
}

// ClickProject starts the project shown at index if its entry is enabled.
func (c *Controller) ClickProject(index int) bool {
	frame, actions := c.current()
	name, ok := Target(frame, index)
	if !ok || actions == nil {
		return false
	}
	return actions.StartProject(name)
}

// ClickStop stops tracking if the Stop entry is enabled.
func (c *Controller) ClickStop() bool {
	frame, actions := c.current()
	if !frame.StopEnabled || actions == nil {
		return false
	}
	return actions.StopTracking()
}

// ClickNewProject prompts for a name and creates the project. Nothing
// happens while the New Project entry is disabled.
func (c *Controller) ClickNewProject() bool {
	frame, _ := c.current()
	if !frame.NewProjectEnabled || c.prompt == nil {
		return false
	}

	name, ok, err := c.prompt.Prompt(NewProjectPrompt)
	if err != nil {
		log.Printf("[menu] New project prompt failed: %v", err)
		return false
	}
	if !ok {
		return false
	}
	return c.SubmitNewProject(name)
}

// SubmitNewProject creates name if New Project is enabled and name is not
// blank.
func (c *Controller) SubmitNewProject(name string) bool {
	frame, actions := c.current()
	name = strings.TrimSpace(name)
	if !frame.NewProjectEnabled || name == "" || actions == nil {
		return false
	}
	return actions.CreateProject(name)
}

// SlotView is how one pre-allocated project slot should look.
type SlotView struct {
	Visible bool
	Name    string
	Enabled bool
}

// PlanSlots maps the frame's project entries onto n slots.
func PlanSlots(frame projector.Frame, n int) []SlotView {
	views := make([]SlotView, n)
	for i := 0; i < n && i < len(frame.Projects); i++ {
		e := frame.Projects[i]
		views[i] = SlotView{Visible: true, Name: e.Name, Enabled: e.Enabled}
	}
	return views
}

// Target returns the project at index if its entry accepts clicks.
func Target(frame projector.Frame, index int) (string, bool) {
	if index < 0 || index >= len(frame.Projects) {
		return "", false
	}
	e := frame.Projects[index]
	return e.Name, e.Enabled
}
