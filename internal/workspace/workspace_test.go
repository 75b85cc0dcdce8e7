package workspace_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/workspace"
)

func TestDefaultTab(t *testing.T) {
	w := workspace.New(workspace.Options{})
	tab := w.Active()
	require.Equal(t, workspace.DefaultFilename, tab.Filename)
	require.Equal(t, lang.JavaScript, tab.Language)
	require.Equal(t, lang.Template(lang.JavaScript), tab.Content)
	require.False(t, tab.Dirty)
	_, err := uuid.Parse(tab.ID)
	require.NoError(t, err)
}

func TestCreateAndImport(t *testing.T) {
	w := workspace.New(workspace.Options{})
	py := w.Create(lang.Python, "", "")
	require.Equal(t, "untitled.py", py.Filename)
	require.Equal(t, lang.Template(lang.Python), py.Content)
	require.Equal(t, py.ID, w.Active().ID)

	imp := w.Import("query.sql", "SELECT 1;")
	require.Equal(t, lang.SQL, imp.Language)
	require.False(t, imp.Dirty)
	require.Equal(t, 3, w.Len())

	unknown := w.Import("notes.weird", "x")
	require.Equal(t, lang.Default, unknown.Language)
}

func TestCloseActivatesLast(t *testing.T) {
	w := workspace.New(workspace.Options{})
	first := w.Active()
	a := w.Create(lang.Go, "a.go", "")
	b := w.Create(lang.Rust, "b.rs", "")
	require.NoError(t, w.Switch(a.ID))

	require.NoError(t, w.Close(a.ID))
	require.Equal(t, b.ID, w.Active().ID)

	// закрытие неактивной вкладки не меняет активную
	require.NoError(t, w.Close(first.ID))
	require.Equal(t, b.ID, w.Active().ID)

	require.NoError(t, w.Close(b.ID))
	require.Equal(t, 1, w.Len())
	fresh := w.Active()
	require.NotEqual(t, first.ID, fresh.ID)
	require.Equal(t, workspace.DefaultFilename, fresh.Filename)

	require.ErrorIs(t, w.Close("nope"), workspace.ErrUnknownTab)
	require.ErrorIs(t, w.Switch("nope"), workspace.ErrUnknownTab)
}

func TestUpdates(t *testing.T) {
	w := workspace.New(workspace.Options{})
	id := w.Active().ID

	require.NoError(t, w.UpdateContent(id, "let a = 1"))
	tab, _ := w.Get(id)
	require.True(t, tab.Dirty)
	require.Equal(t, 1, tab.Version)

	require.NoError(t, w.UpdateContent(id, lang.Template(lang.JavaScript)))
	tab, _ = w.Get(id)
	require.False(t, tab.Dirty)

	require.NoError(t, w.UpdateContent(id, "x"))
	require.NoError(t, w.UpdateLanguage(id, lang.Python))
	tab, _ = w.Get(id)
	require.Equal(t, "main.py", tab.Filename)
	require.Equal(t, lang.Template(lang.Python), tab.Content)
	require.False(t, tab.Dirty)
	require.Equal(t, 4, tab.Version)

	require.ErrorIs(t, w.UpdateContent("nope", ""), workspace.ErrUnknownTab)
}

func TestCycle(t *testing.T) {
	w := workspace.New(workspace.Options{})
	first := w.Active()
	second := w.Create(lang.CSS, "", "")
	require.Equal(t, first.ID, w.Cycle(1).ID)
	require.Equal(t, second.ID, w.Cycle(-1).ID)
}

func TestProblems(t *testing.T) {
	w := workspace.New(workspace.Options{})
	w.Create(lang.PHP, "x.php", "echo 1;")
	res, err := w.Problems(context.Background())
	require.NoError(t, err)
	require.True(t, res.ShowProblems())
	require.Equal(t, diag.RuleMissingPHPTag, res.Diagnostics[0].Rule)

	again, err := w.Problems(context.Background())
	require.NoError(t, err)
	require.True(t, again.Cached)
}

func TestConcurrentUse(t *testing.T) {
	w := workspace.New(workspace.Options{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tab := w.Create(lang.JSON, "", "")
			_ = w.UpdateContent(tab.ID, "{}")
			_, _ = w.Problems(context.Background())
			_ = w.Close(tab.ID)
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(t, w.Len(), 1)
}

func TestAlwaysOneActiveTab(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := workspace.New(workspace.Options{})
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			tabs := w.Tabs()
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				w.Create(rapid.SampledFrom(lang.Known()).Draw(t, "lang"), "", "")
			case 1:
				victim := rapid.SampledFrom(tabs).Draw(t, "close")
				require.NoError(t, w.Close(victim.ID))
			case 2:
				target := rapid.SampledFrom(tabs).Draw(t, "switch")
				require.NoError(t, w.Switch(target.ID))
			case 3:
				w.Cycle(rapid.IntRange(-3, 3).Draw(t, "delta"))
			}
			require.GreaterOrEqual(t, w.Len(), 1)
			active := w.Active()
			_, ok := w.Get(active.ID)
			require.True(t, ok)
		}
	})
}
