// Package tray implements the menu-bar title and menu.
package tray

import (
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/watsonbar/watsonbar/internal/menu"
	"github.com/watsonbar/watsonbar/internal/projector"
)

// maxProjectSlots bounds the pre-allocated project entries. systray can only
// append items, so slots are created up front (hidden) to keep new projects
// above the separator, right after the last existing one.
const maxProjectSlots = 64

// Tray renders frames into the system tray. It implements
// scheduler.Renderer.
type Tray struct {
	ctrl *menu.Controller

	mu       sync.Mutex
	ready    bool
	hasFrame bool
	overflow bool

	slots      [maxProjectSlots]*systray.MenuItem
	newProject *systray.MenuItem
	stop       *systray.MenuItem
	quit       *systray.MenuItem
}

// New creates a tray dispatching clicks through ctrl.
func New(ctrl *menu.Controller) *Tray {
	return &Tray{ctrl: ctrl}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStart is called once the menu exists; onExit when the tray exits.
func (t *Tray) Run(onStart, onExit func()) {
	systray.Run(func() {
		t.onReady()
		if onStart != nil {
			onStart()
		}
	}, func() {
		if onExit != nil {
			onExit()
		}
	})
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle(projector.DefaultIcon + " " + projector.DefaultIdleLabel)
	systray.SetTooltip("Starting...")

	for i := range t.slots {
		t.slots[i] = systray.AddMenuItem("", "")
		t.slots[i].Hide()
	}

	systray.AddSeparator()
	t.newProject = systray.AddMenuItem("New Project", "Start tracking a new project")
	t.stop = systray.AddMenuItem("Stop", "Stop the running task")
	t.stop.Disable()

	systray.AddSeparator()
	t.quit = systray.AddMenuItem("Quit", "Quit the menu-bar agent")

	t.mu.Lock()
	t.ready = true
	hasFrame := t.hasFrame
	t.mu.Unlock()
	if hasFrame {
		t.apply(t.ctrl.Frame())
	}

	for i := range t.slots {
		go t.handleSlotClicks(i)
	}
	go t.handleClicks()
}

// Render shows frame. Frames arriving before the menu exists are kept and
// applied once it does.
func (t *Tray) Render(frame projector.Frame) {
	t.ctrl.SetFrame(frame)

	t.mu.Lock()
	t.hasFrame = true
	ready := t.ready
	t.mu.Unlock()

	if ready {
		t.apply(frame)
	}
}

func (t *Tray) apply(frame projector.Frame) {
	systray.SetTitle(frame.Title)
	systray.SetTooltip(frame.Tooltip)

	for i, v := range menu.PlanSlots(frame, maxProjectSlots) {
		item := t.slots[i]
		if !v.Visible {
			item.Hide()
			continue
		}
		item.SetTitle(v.Name)
		setEnabled(item, v.Enabled)
		item.Show()
	}
	if len(frame.Projects) > maxProjectSlots {
		t.mu.Lock()
		warn := !t.overflow
		t.overflow = true
		t.mu.Unlock()
		if warn {
			log.Printf("[tray] %d projects, only the first %d are shown", len(frame.Projects), maxProjectSlots)
		}
	}

	setEnabled(t.stop, frame.StopEnabled)
	setEnabled(t.newProject, frame.NewProjectEnabled)
}

func setEnabled(item *systray.MenuItem, enabled bool) {
	if enabled {
		item.Enable()
	} else {
		item.Disable()
	}
}

func (t *Tray) handleSlotClicks(slot int) {
	for range t.slots[slot].ClickedCh {
		t.ctrl.ClickProject(slot)
	}
}

func (t *Tray) handleClicks() {
	for {
		select {
		case <-t.newProject.ClickedCh:
			// The dialog blocks; keep Stop and Quit responsive meanwhile.
			go t.ctrl.ClickNewProject()

		case <-t.stop.ClickedCh:
			t.ctrl.ClickStop()

		case <-t.quit.ClickedCh:
			systray.Quit()
			return
		}
	}
}
