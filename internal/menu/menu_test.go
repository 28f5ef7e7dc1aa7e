package menu

import (
	"errors"
	"reflect"
	"testing"

	"github.com/watsonbar/watsonbar/internal/projector"
	"github.com/watsonbar/watsonbar/internal/tracking"
)

type recordingActions struct {
	started []string
	created []string
	stops   int
}

func (a *recordingActions) StartProject(name string) bool {
	a.started = append(a.started, name)
	return true
}

func (a *recordingActions) StopTracking() bool {
	a.stops++
	return true
}

func (a *recordingActions) CreateProject(name string) bool {
	a.created = append(a.created, name)
	return true
}

type stubPrompt struct {
	value string
	ok    bool
	err   error
	calls int
}

func (p *stubPrompt) Prompt(string) (string, bool, error) {
	p.calls++
	return p.value, p.ok, p.err
}

func idleFrame(projects ...string) projector.Frame {
	return projector.Project(projector.Input{Projects: projects})
}

func runningFrame(projects ...string) projector.Frame {
	return projector.Project(projector.Input{
		State:    tracking.State{Started: true},
		Projects: projects,
	})
}

func TestPlanSlots(t *testing.T) {
	views := PlanSlots(idleFrame("alpha", "beta"), 4)
	if len(views) != 4 {
		t.Fatalf("len(views) = %d, want 4", len(views))
	}
	if !views[0].Visible || views[0].Name != "alpha" || !views[0].Enabled {
		t.Errorf("views[0] = %+v", views[0])
	}
	if !views[1].Visible || views[1].Name != "beta" {
		t.Errorf("views[1] = %+v", views[1])
	}
	if views[2].Visible || views[3].Visible {
		t.Errorf("unused slots visible: %+v", views[2:])
	}

	overflow := PlanSlots(idleFrame("a", "b", "c"), 2)
	if len(overflow) != 2 || overflow[1].Name != "b" {
		t.Errorf("overflow views = %+v", overflow)
	}

	for _, v := range PlanSlots(runningFrame("alpha", "beta"), 2) {
		if v.Enabled {
			t.Errorf("slot %q enabled while running", v.Name)
		}
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name   string
		frame  projector.Frame
		index  int
		want   string
		wantOK bool
	}{
		{"Idle entry", idleFrame("alpha", "beta"), 1, "beta", true},
		{"Running entry", runningFrame("alpha"), 0, "alpha", false},
		{"Hidden slot", idleFrame("alpha"), 3, "", false},
		{"Negative index", idleFrame("alpha"), -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Target(tt.frame, tt.index)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Target() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClickProject(t *testing.T) {
	actions := &recordingActions{}
	c := NewController(actions, nil)

	c.SetFrame(idleFrame("alpha", "beta"))
	if !c.ClickProject(1) {
		t.Error("ClickProject(1) rejected while idle")
	}

	c.SetFrame(runningFrame("alpha", "beta"))
	if c.ClickProject(0) {
		t.Error("ClickProject(0) accepted while running")
	}

	if want := []string{"beta"}; !reflect.DeepEqual(actions.started, want) {
		t.Errorf("started = %q, want %q", actions.started, want)
	}
}

func TestClickStop(t *testing.T) {
	actions := &recordingActions{}
	c := NewController(actions, nil)

	c.SetFrame(idleFrame("alpha"))
	if c.ClickStop() {
		t.Error("ClickStop() accepted while idle")
	}
	c.SetFrame(runningFrame("alpha"))
	if !c.ClickStop() {
		t.Error("ClickStop() rejected while running")
	}
	if actions.stops != 1 {
		t.Errorf("stops = %d, want 1", actions.stops)
	}
}

func TestClickNewProject(t *testing.T) {
	tests := []struct {
		name        string
		frame       projector.Frame
		prompt      *stubPrompt
		wantPrompts int
		wantCreated []string
	}{
		{
			name:        "Idle creates project",
			frame:       idleFrame("alpha"),
			prompt:      &stubPrompt{value: " gamma ", ok: true},
			wantPrompts: 1,
			wantCreated: []string{"gamma"},
		},
		{
			name:        "Running never prompts",
			frame:       runningFrame("alpha"),
			prompt:      &stubPrompt{value: "gamma", ok: true},
			wantPrompts: 0,
		},
		{
			name:        "Cancelled dialog",
			frame:       idleFrame("alpha"),
			prompt:      &stubPrompt{ok: false},
			wantPrompts: 1,
		},
		{
			name:        "Empty name",
			frame:       idleFrame("alpha"),
			prompt:      &stubPrompt{value: "  ", ok: true},
			wantPrompts: 1,
		},
		{
			name:        "Dialog error",
			frame:       idleFrame("alpha"),
			prompt:      &stubPrompt{err: errors.New("no display")},
			wantPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := &recordingActions{}
			c := NewController(actions, tt.prompt)
			c.SetFrame(tt.frame)

			c.ClickNewProject()

			if tt.prompt.calls != tt.wantPrompts {
				t.Errorf("prompts = %d, want %d", tt.prompt.calls, tt.wantPrompts)
			}
			if len(actions.created) != len(tt.wantCreated) || (len(tt.wantCreated) > 0 && !reflect.DeepEqual(actions.created, tt.wantCreated)) {
				t.Errorf("created = %q, want %q", actions.created, tt.wantCreated)
			}
		})
	}
}

func TestSubmitNewProjectWhileRunning(t *testing.T) {
	actions := &recordingActions{}
	c := NewController(actions, nil)
	c.SetFrame(runningFrame("alpha"))
	if c.SubmitNewProject("gamma") {
		t.Error("SubmitNewProject accepted while running")
	}
	if len(actions.created) != 0 {
		t.Errorf("created = %q, want none", actions.created)
	}
}

type refreshingActions struct {
	recordingActions
	refreshes int
}

func (a *refreshingActions) RefreshNow() bool {
	a.refreshes++
	return true
}

func TestRefresh(t *testing.T) {
	c := NewController(&recordingActions{}, nil)
	if c.Refresh() {
		t.Error("Refresh succeeded on actions that cannot refresh")
	}

	actions := &refreshingActions{}
	c.SetActions(actions)
	if !c.Refresh() {
		t.Error("Refresh returned false")
	}
	if actions.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", actions.refreshes)
	}
}
