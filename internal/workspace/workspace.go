// Package workspace keeps the set of open editor tabs.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"omnicode/internal/driver"
	"omnicode/internal/lang"
	"omnicode/internal/lint"
)

// DefaultFilename is the name of the tab that replaces the last closed one.
const DefaultFilename = "main.js"

// ErrUnknownTab is returned for ids that are not open.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is a snapshot of one open buffer.
type Tab struct {
	ID       string
	Filename string
	Language lang.ID
	Content  string
	// Dirty is set once the content differs from the language template.
	Dirty bool
	// Version increments on every content or language change.
	Version int
}

// Workspace is an ordered set of tabs with exactly one active tab.
// It is safe for concurrent use.
type Workspace struct {
	mu     sync.Mutex
	tabs   []*Tab
	active string

	lint lint.Options
	memo *driver.Memo
}

// Options configure a Workspace.
type Options struct {
	Lint lint.Options
	// Memo caches analyses; nil creates a private one.
	Memo *driver.Memo
}

// New opens a workspace with the default tab.
func New(opts Options) *Workspace {
	memo := opts.Memo
	if memo == nil {
		memo = driver.NewMemo(0)
	}
	w := &Workspace{lint: opts.Lint, memo: memo}
	w.openDefaultLocked()
	return w
}

func (w *Workspace) openDefaultLocked() {
	t := &Tab{
		ID:       uuid.NewString(),
		Filename: DefaultFilename,
		Language: lang.Default,
		Content:  lang.Template(lang.Default),
	}
	w.tabs = append(w.tabs, t)
	w.active = t.ID
}

// Create opens a new active tab. An empty filename becomes
// "untitled.<ext>"; empty content becomes the language template.
func (w *Workspace) Create(id lang.ID, filename, content string) Tab {
	if id == "" {
		id = lang.Default
	}
	if filename == "" {
		filename = lang.Filename("untitled", id)
	}
	if content == "" {
		content = lang.Template(id)
	}
	t := &Tab{ID: uuid.NewString(), Filename: filename, Language: id, Content: content}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.tabs = append(w.tabs, t)
	w.active = t.ID
	return *t
}

// Import opens content read from filename as a clean tab. The language is
// taken from the extension.
func (w *Workspace) Import(filename, content string) Tab {
	id, _ := lang.FromFilename(filename)
	return w.Create(id, filename, content)
}

// Close removes a tab. Closing the active tab activates the last remaining
// one; closing the only tab opens a fresh default tab.
func (w *Workspace) Close(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	w.tabs = slices.Delete(w.tabs, i, i+1)
	if len(w.tabs) == 0 {
		w.openDefaultLocked()
		return nil
	}
	if w.active == id {
		w.active = w.tabs[len(w.tabs)-1].ID
	}
	return nil
}

// Switch makes id the active tab.
func (w *Workspace) Switch(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexLocked(id) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	w.active = id
	return nil
}

// Cycle moves the active tab by delta positions, wrapping around.
func (w *Workspace) Cycle(delta int) Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := len(w.tabs)
	i := w.indexLocked(w.active)
	i = ((i+delta)%n + n) % n
	w.active = w.tabs[i].ID
	return *w.tabs[i]
}

// UpdateContent replaces a tab's text.
func (w *Workspace) UpdateContent(id, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.tabLocked(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	t.Content = content
	t.Dirty = content != lang.Template(t.Language)
	t.Version++
	return nil
}

// UpdateLanguage switches a tab's language. The filename gets the new
// extension and the content is reset to the new template.
func (w *Workspace) UpdateLanguage(id string, l lang.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.tabLocked(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	t.Language = l
	t.Filename = lang.Rename(t.Filename, l)
	t.Content = lang.Template(l)
	t.Dirty = false
	t.Version++
	return nil
}

// Active returns the active tab.
func (w *Workspace) Active() Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.tabLocked(w.active)
}

// Get returns a tab by id.
func (w *Workspace) Get(id string) (Tab, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := w.tabLocked(id)
	if t == nil {
		return Tab{}, false
	}
	return *t, true
}

// Tabs returns snapshots of every tab in open order.
func (w *Workspace) Tabs() []Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Tab, len(w.tabs))
	for i, t := range w.tabs {
		out[i] = *t
	}
	return out
}

// Len returns the number of open tabs.
func (w *Workspace) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.tabs)
}

// Analyze runs the driver over a tab snapshot.
func (w *Workspace) Analyze(ctx context.Context, id string) (*driver.Result, error) {
	t, ok := w.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	return driver.Analyze(ctx, driver.Document{Path: t.Filename, Text: t.Content, Language: t.Language},
		driver.Options{Lint: w.lint, Memo: w.memo})
}

// Problems analyzes the active tab.
func (w *Workspace) Problems(ctx context.Context) (*driver.Result, error) {
	return w.Analyze(ctx, w.Active().ID)
}

func (w *Workspace) indexLocked(id string) int {
	return slices.IndexFunc(w.tabs, func(t *Tab) bool { return t.ID == id })
}

func (w *Workspace) tabLocked(id string) *Tab {
	if i := w.indexLocked(id); i >= 0 {
		return w.tabs[i]
	}
	return nil
}
