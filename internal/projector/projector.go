// Package projector maps tracking state onto what the menu shows.
package projector

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/watsonbar/watsonbar/internal/tracking"
)

// Defaults used when Appearance fields are empty.
const (
	DefaultIcon      = "⏱"
	DefaultIdleLabel = "Watson"
	errorMarker      = "⚠"
)

// Appearance controls how the title is drawn.
type Appearance struct {
	Icon          string
	IdleLabel     string
	MaxTitleWidth int // 0 disables truncation
}

// Input is everything a frame is derived from.
type Input struct {
	State      tracking.State
	Projects   []string
	Now        time.Time
	Err        error
	Appearance Appearance
}

// Entry is one project menu item.
type Entry struct {
	Name    string
	Enabled bool
}

// Frame is a complete, renderable menu state.
type Frame struct {
	Title             string
	Tooltip           string
	Projects          []Entry
	StopEnabled       bool
	NewProjectEnabled bool
	Running           bool
	Error             string
}

// Project builds the frame for in. It has no side effects.
func Project(in Input) Frame {
	icon := in.Appearance.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	label := in.Appearance.IdleLabel
	if label == "" {
		label = DefaultIdleLabel
	}

	started := in.State.Started
	f := Frame{
		Title:             icon + " " + label,
		Tooltip:           label + ": idle",
		Projects:          make([]Entry, len(in.Projects)),
		StopEnabled:       started,
		NewProjectEnabled: !started,
		Running:           started,
	}
	for i, name := range in.Projects {
		f.Projects[i] = Entry{Name: name, Enabled: !started}
	}

	if started {
		f.Tooltip = label + ": starting"
		if in.State.Known() {
			elapsed := FormatElapsed(in.State.StartTime, in.Now)
			f.Title = fmt.Sprintf("%s %s %s", icon, in.State.TaskName, elapsed)
			f.Tooltip = fmt.Sprintf("%s: %s since %s", label, in.State.TaskName, in.State.StartTime.Format("15:04"))
		}
	}

	if in.Appearance.MaxTitleWidth > 0 {
		f.Title = ansi.Truncate(f.Title, in.Appearance.MaxTitleWidth, "…")
	}

	if in.Err != nil {
		f.Error = in.Err.Error()
		f.Title += " " + errorMarker
		f.Tooltip = label + ": " + f.Error
	}

	return f
}

// FormatElapsed renders now-start as MM:SS. Minutes are not capped at 59 and
// a start in the future renders as 00:00.
func FormatElapsed(start, now time.Time) string {
	d := now.In(start.Location()).Sub(start)
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ReminderMessage is the body of the periodic "still working?" notification.
func ReminderMessage(task string) string {
	return fmt.Sprintf("Are you still working on %s?", task)
}
