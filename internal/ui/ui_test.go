package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"omnicode/internal/driver"
	"omnicode/internal/lang"
	"omnicode/internal/workspace"
)

func TestProgressTracksFiles(t *testing.T) {
	m := NewProgressModel("check", nil).(*progressModel)
	events := []driver.Event{
		{Kind: driver.EventStart, Total: 3},
		{Kind: driver.EventFileStart, Path: "a.js"},
		{Kind: driver.EventFileStart, Path: "b.py"},
		{Kind: driver.EventFileDone, Path: "a.js", Errors: 2},
		{Kind: driver.EventFileDone, Path: "b.py", Cached: true},
		{Kind: driver.EventFileDone, Path: "c.rb", Err: errors.New("boom")},
	}
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}
	if m.done != 3 || m.total != 3 {
		t.Fatalf("done=%d total=%d", m.done, m.total)
	}
	want := []string{"2 errors", "cached", "failed"}
	if len(m.items) != len(want) {
		t.Fatalf("items: %+v", m.items)
	}
	for i, w := range want {
		if m.items[i].status != w {
			t.Errorf("item %d status %q, want %q", i, m.items[i].status, w)
		}
	}

	m.Update(eventMsg(driver.Event{Kind: driver.EventDone, Errors: 2}))
	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	view := m.View()
	for _, s := range []string{"done: check (3/3)", "a.js", "2 errors, 0 warnings"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 5); got != "ab..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
}

func newViewer(t *testing.T) (*ViewerModel, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(workspace.Options{})
	ws.Create(lang.Python, "a.py", "print 'x'")
	m := NewViewerModel(context.Background(), ws, true)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(m.Init()())
	return m, ws
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewerOpensProblemsOnErrors(t *testing.T) {
	m, _ := newViewer(t)
	if !m.problems {
		t.Fatal("problems panel should open when the buffer has errors")
	}
	view := m.View()
	for _, s := range []string{"a.py", "Problems", "1 errors, 0 warnings", "print"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}

	m.Update(runes("p"))
	if m.problems {
		t.Fatal("p should hide the panel")
	}
	if strings.Contains(m.View(), "Problems") {
		t.Fatal("hidden panel still rendered")
	}
}

func TestViewerCyclesTabs(t *testing.T) {
	m, ws := newViewer(t)
	first := ws.Active().ID

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("tab should schedule analysis")
	}
	if ws.Active().ID == first {
		t.Fatal("tab did not switch")
	}
	m.Update(cmd())
	if m.result == nil || m.result.Language != lang.JavaScript {
		t.Fatalf("result not refreshed: %+v", m.result)
	}
	if m.problems {
		t.Fatal("clean template should close the panel")
	}

	// устаревший результат для неактивной вкладки игнорируется
	stale := m.result
	m.Update(analyzedMsg{id: first, result: &driver.Result{ErrorCount: 9}})
	if m.result != stale {
		t.Fatal("stale analysis replaced the current result")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if ws.Active().ID != first {
		t.Fatal("shift+tab did not go back")
	}
}

func TestViewerQuitAndTheme(t *testing.T) {
	m, _ := newViewer(t)
	m.Update(runes("d"))
	if m.dark {
		t.Fatal("d should toggle the theme")
	}
	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Fatal("q should quit")
	}
}
