// Package tracking owns the cached view of what watson is tracking and the
// transitions between idle and running.
package tracking

import (
	"time"

	"github.com/watsonbar/watsonbar/internal/watson"
)

// State is the locally cached tracking state.
//
// TaskName and StartTime are set together. Started with neither set means a
// start was acknowledged but the follow-up status has not been read yet.
type State struct {
	Started   bool
	TaskName  string
	StartTime time.Time
}

// Known reports whether the task name and start time are both present.
func (s State) Known() bool {
	return s.TaskName != "" && !s.StartTime.IsZero()
}

// Running reports whether a task is started and fully known.
func (s State) Running() bool {
	return s.Started && s.Known()
}

func stateFromStatus(st watson.Status) State {
	if !st.Running {
		return State{}
	}
	return State{
		Started:   true,
		TaskName:  st.Project,
		StartTime: st.StartedAt,
	}
}
