package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"omnicode/internal/diag"
	"omnicode/internal/driver"
	"omnicode/internal/style"
	"omnicode/internal/workspace"
)

// maxPanelRows caps the problems panel height.
const maxPanelRows = 8

// ViewerModel is a read-only browser over the tabs of a workspace.
type ViewerModel struct {
	ctx      context.Context
	ws       *workspace.Workspace
	dark     bool
	view     viewport.Model
	result   *driver.Result
	err      error
	problems bool
	// pinned is set once the user toggles the panel; after that the
	// error count no longer opens it.
	pinned bool
	width  int
	height int
	ready  bool
}

type analyzedMsg struct {
	id     string
	result *driver.Result
	err    error
}

// NewViewerModel builds a viewer for ws. The active tab is analyzed on Init.
func NewViewerModel(ctx context.Context, ws *workspace.Workspace, dark bool) *ViewerModel {
	return &ViewerModel{
		ctx:    ctx,
		ws:     ws,
		dark:   dark,
		view:   viewport.New(80, 20),
		width:  80,
		height: 24,
	}
}

func (m *ViewerModel) Init() tea.Cmd {
	return m.analyzeActive()
}

func (m *ViewerModel) analyzeActive() tea.Cmd {
	id := m.ws.Active().ID
	return func() tea.Msg {
		res, err := m.ws.Analyze(m.ctx, id)
		return analyzedMsg{id: id, result: res, err: err}
	}
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzedMsg:
		if msg.id != m.ws.Active().ID {
			return m, nil
		}
		m.result, m.err = msg.result, msg.err
		if !m.pinned {
			m.problems = m.result.ShowProblems()
		}
		m.layout()
		m.view.SetContent(m.renderSource())
		m.view.GotoTop()
		m.ready = true
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.ws.Cycle(1)
			return m, m.analyzeActive()
		case "shift+tab":
			m.ws.Cycle(-1)
			return m, m.analyzeActive()
		case "d":
			m.dark = !m.dark
			m.view.SetContent(m.renderSource())
			return m, nil
		case "p":
			m.problems = !m.problems
			m.pinned = true
			m.layout()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// layout sizes the viewport to whatever the chrome leaves.
func (m *ViewerModel) layout() {
	h := m.height - 2
	if m.problems {
		h -= m.panelRows() + 1
	}
	m.view.Width = m.width
	m.view.Height = max(h, 1)
}

func (m *ViewerModel) panelRows() int {
	if m.result == nil || len(m.result.Diagnostics) == 0 {
		return 1
	}
	return min(len(m.result.Diagnostics), maxPanelRows)
}

func (m *ViewerModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if !m.ready {
		b.WriteString("analyzing...\n")
		return b.String()
	}
	b.WriteString(m.view.View())
	b.WriteString("\n")
	if m.problems {
		b.WriteString(m.renderProblems())
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *ViewerModel) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	idle := lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cur := m.ws.Active().ID
	parts := make([]string, 0, m.ws.Len())
	for _, t := range m.ws.Tabs() {
		label := t.Filename
		if t.Dirty {
			label += " ●"
		}
		if t.ID == cur {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, idle.Render(label))
		}
	}
	return truncate(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.width)
}

func (m *ViewerModel) renderSource() string {
	if m.result == nil {
		return ""
	}
	marks := make(map[int]diag.Severity)
	for _, d := range m.result.Diagnostics {
		if !d.HasLine() {
			continue
		}
		if prev, ok := marks[d.Line]; !ok || d.Severity > prev {
			marks[d.Line] = d.Severity
		}
	}
	gutter := lipgloss.NewStyle().Faint(true)
	var b strings.Builder
	for i, toks := range m.result.Lines {
		n := i + 1
		mark := " "
		if sev, ok := marks[n]; ok {
			mark = severityStyle(sev).Render("▌")
		}
		b.WriteString(mark)
		b.WriteString(gutter.Render(fmt.Sprintf("%4d ", n)))
		b.WriteString(style.RenderLine(toks, m.dark))
		if n < len(m.result.Lines) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *ViewerModel) renderProblems() string {
	head := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	b.WriteString(head.Render("Problems"))
	b.WriteString("\n")
	if m.result == nil || len(m.result.Diagnostics) == 0 {
		b.WriteString("  no problems\n")
		return b.String()
	}
	ds := m.result.Diagnostics
	shown := min(len(ds), maxPanelRows)
	for _, d := range ds[:shown] {
		loc := "-"
		if d.HasLine() {
			loc = fmt.Sprintf("%d:%d", d.Line, max(d.Column, 1))
		}
		row := fmt.Sprintf("  %-7s %-8s %s", loc, severityStyle(d.Severity).Render(d.Severity.String()), d.Message)
		b.WriteString(truncate(row, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ViewerModel) renderStatus() string {
	bar := lipgloss.NewStyle().Reverse(true)
	tab := m.ws.Active()
	status := tab.Language.Name()
	switch {
	case m.err != nil:
		status += "  error: " + m.err.Error()
	case m.result != nil:
		status += fmt.Sprintf("  %d errors, %d warnings", m.result.ErrorCount, m.result.WarnCount)
	}
	status += "  tab/shift+tab switch  d theme  p problems  q quit"
	return bar.Render(truncate(status, m.width))
}

func severityStyle(sev diag.Severity) lipgloss.Style {
	switch sev {
	case diag.SevError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case diag.SevWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	}
}
