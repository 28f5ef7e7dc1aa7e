package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watsonbar/watsonbar/internal/menu"
	"github.com/watsonbar/watsonbar/internal/projector"
)

// FrameMsg carries a freshly rendered frame from the scheduler loop.
type FrameMsg struct {
	Frame projector.Frame
}

// NoticeMsg carries a notification to show in the status line.
type NoticeMsg struct {
	Title   string
	Message string
}

// Model is the root Bubbletea model for the terminal menu.
type Model struct {
	ctrl   *menu.Controller
	frame  projector.Frame
	cursor int

	prompting bool
	input     textinput.Model

	notice string
	width  int
}

// NewModel creates the model showing frame until the loop sends another.
func NewModel(ctrl *menu.Controller, frame projector.Frame) Model {
	input := textinput.New()
	input.Placeholder = "project name"
	input.CharLimit = 80
	input.Prompt = "> "

	ctrl.SetFrame(frame)
	return Model{
		ctrl:  ctrl,
		frame: frame,
		input: input,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		m.ctrl.SetFrame(msg.Frame)
		m.clampCursor()
		// Leave the prompt if a task started elsewhere meanwhile.
		if m.prompting && !m.frame.NewProjectEnabled {
			m.closePrompt()
		}
		return m, nil

	case NoticeMsg:
		m.notice = msg.Message
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateMenu(msg)
	}

	if m.prompting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, menuKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, menuKeys.Down):
		if m.cursor < len(m.frame.Projects)-1 {
			m.cursor++
		}

	case key.Matches(msg, menuKeys.Start):
		m.ctrl.ClickProject(m.cursor)

	case key.Matches(msg, menuKeys.Stop):
		m.ctrl.ClickStop()

	case key.Matches(msg, menuKeys.Refresh):
		m.ctrl.Refresh()

	case key.Matches(msg, menuKeys.NewProject):
		if m.frame.NewProjectEnabled {
			m.prompting = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, promptKeys.Cancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, promptKeys.Submit):
		name := m.input.Value()
		m.closePrompt()
		m.ctrl.SubmitNewProject(name)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.frame.Projects) {
		m.cursor = len(m.frame.Projects) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the menu.
func (m Model) View() string {
	var b strings.Builder

	titleStyle := titleIdleStyle
	if m.frame.Running {
		titleStyle = titleRunningStyle
	}
	b.WriteString(titleStyle.Render(m.frame.Title))
	b.WriteString("\n\n")

	if len(m.frame.Projects) == 0 {
		b.WriteString(hintStyle.Render("  no projects yet"))
		b.WriteString("\n")
	}
	for i, e := range m.frame.Projects {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("▸ ")
		}
		style := entryStyle
		if !e.Enabled {
			style = entryDisabled
		}
		b.WriteString(prefix + style.Render(e.Name) + "\n")
	}
	b.WriteString("\n")

	newProject := entryStyle.Render("New Project")
	if !m.frame.NewProjectEnabled {
		newProject = entryDisabled.Render("New Project")
	}
	stop := entryStyle.Render("Stop")
	if !m.frame.StopEnabled {
		stop = entryDisabled.Render("Stop")
	}
	b.WriteString("  " + newProject + "   " + stop + "\n")

	if m.prompting {
		b.WriteString("\n" + menu.NewProjectPrompt + "\n" + m.input.View() + "\n")
	}
	if m.frame.Error != "" {
		b.WriteString("\n" + errorStyle.Render(m.frame.Error) + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + hintStyle.Render(m.helpLine()))

	return boxStyle.Render(b.String())
}

func (m Model) helpLine() string {
	bindings := []key.Binding{menuKeys.Up, menuKeys.Start, menuKeys.Stop, menuKeys.NewProject, menuKeys.Refresh, menuKeys.Quit}
	if m.prompting {
		bindings = []key.Binding{promptKeys.Submit, promptKeys.Cancel}
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
