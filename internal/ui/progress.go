// Package ui holds the Bubble Tea models used by the CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"omnicode/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	total   int
	done    int
	width   int
	summary string
	closed  bool
}

type fileItem struct {
	path   string
	status string
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a model that renders driver.AnalyzeDir progress
// until events is closed.
func NewProgressModel(title string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		index:   make(map[string]int),
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.done, m.total)
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.items {
		status := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(item.path, nameWidth))
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	if m.summary != "" {
		b.WriteString(m.summary)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	switch ev.Kind {
	case driver.EventStart:
		m.total = ev.Total
		return nil
	case driver.EventDone:
		m.summary = fmt.Sprintf("%d errors, %d warnings", ev.Errors, ev.Warnings)
		return m.prog.SetPercent(1)
	case driver.EventFileStart:
		m.item(ev.Path).status = "checking"
		return nil
	case driver.EventFileDone:
		m.item(ev.Path).status = fileStatus(ev)
		m.done++
		if m.total > 0 {
			return m.prog.SetPercent(float64(m.done) / float64(m.total))
		}
	}
	return nil
}

func (m *progressModel) item(path string) *fileItem {
	idx, ok := m.index[path]
	if !ok {
		idx = len(m.items)
		m.items = append(m.items, fileItem{path: path, status: "queued"})
		m.index[path] = idx
	}
	return &m.items[idx]
}

func fileStatus(ev driver.Event) string {
	switch {
	case ev.Err != nil:
		return "failed"
	case ev.Errors > 0:
		return fmt.Sprintf("%d errors", ev.Errors)
	case ev.Warnings > 0:
		return fmt.Sprintf("%d warnings", ev.Warnings)
	case ev.Cached:
		return "cached"
	default:
		return "clean"
	}
}

func styleStatus(status string) lipgloss.Style {
	switch {
	case status == "clean" || status == "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case status == "failed" || strings.HasSuffix(status, "errors"):
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case strings.HasSuffix(status, "warnings"):
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case status == "checking":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
