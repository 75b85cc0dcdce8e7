package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"omnicode/internal/diag"
	"omnicode/internal/driver"
	"omnicode/internal/lang"
	"omnicode/internal/lexer"
	"omnicode/internal/lint"
	"omnicode/internal/source"
	"omnicode/internal/testkit"
	"omnicode/internal/token"
	"omnicode/internal/trace"
)

func TestAnalyzeMatchesPasses(t *testing.T) {
	doc := driver.Document{Text: "const x = 1\nlet y = 2;", Language: lang.JavaScript}
	res, err := driver.Analyze(context.Background(), doc, driver.Options{Timings: true})
	require.NoError(t, err)
	require.Equal(t, lexer.Tokenize(doc.Text, doc.Language), res.Lines)
	require.Equal(t, lint.Validate(doc.Text, doc.Language), res.Diagnostics)
	require.Zero(t, res.ErrorCount)
	require.Equal(t, 1, res.WarnCount)
	require.False(t, res.ShowProblems())
	require.NotNil(t, res.Timing)
	require.Len(t, res.Timing.Phases, 2)
}

func TestAnalyzeShowsProblemsOnError(t *testing.T) {
	res, err := driver.Analyze(context.Background(), driver.Document{Text: "echo 1;", Language: lang.PHP}, driver.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.ErrorCount)
	require.True(t, res.ShowProblems())
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.Analyze(ctx, driver.Document{Text: "x"}, driver.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeTracesPasses(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	var mu sync.Mutex
	var phases []string
	obs := func(ev driver.PhaseEvent) {
		mu.Lock()
		defer mu.Unlock()
		if ev.Status == driver.PhaseEnd {
			phases = append(phases, ev.Name)
		}
	}
	_, err := driver.Analyze(ctx, driver.Document{Path: "a.py", Text: "x = 1", Language: lang.Python}, driver.Options{OnPhase: obs})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{driver.PassTokenize, driver.PassValidate}, phases)
	out := buf.String()
	require.Contains(t, out, "→ analyze:a.py")
	require.Contains(t, out, "← tokenize")
	require.Contains(t, out, "← validate")
}

func TestMemo(t *testing.T) {
	memo := driver.NewMemo(0)
	doc := driver.Document{Path: "a.js", Text: "let a = 1", Language: lang.JavaScript}
	first, err := driver.Analyze(context.Background(), doc, driver.Options{Memo: memo})
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.Equal(t, 1, memo.Len())

	doc.Path = "b.js"
	second, err := driver.Analyze(context.Background(), doc, driver.Options{Memo: memo})
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, "b.js", second.Path)
	require.Equal(t, first.Diagnostics, second.Diagnostics)

	// другие опции дают другой ключ
	_, err = driver.Analyze(context.Background(), doc, driver.Options{Memo: memo, Lint: lint.Options{IndentUnit: 2}})
	require.NoError(t, err)
	require.Equal(t, 2, memo.Len())
	memo.Flush()
	require.Zero(t, memo.Len())
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	doc := driver.Document{Text: "def f():\n  return 1\n\n", Language: lang.Python}
	res, err := driver.Analyze(context.Background(), doc, driver.Options{})
	require.NoError(t, err)

	_, ok, err := cache.Get(doc, lint.Options{})
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Put(doc, lint.Options{}, res))
	got, ok, err := cache.Get(doc, lint.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, got.Cached)
	require.Equal(t, res.Diagnostics, got.Diagnostics)
	require.Equal(t, res.WarnCount, got.WarnCount)
	require.Equal(t, len(res.Lines), len(got.Lines))
	for i := range res.Lines {
		require.Equal(t, token.Join(res.Lines[i]), token.Join(got.Lines[i]))
		require.NotNil(t, got.Lines[i])
	}

	require.NoError(t, cache.DropAll())
	_, ok, err = cache.Get(doc, lint.Options{})
	require.NoError(t, err)
	require.False(t, ok)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	return root
}

func TestAnalyzeDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b/main.go":         "func main() {}",
		"a.js":              "let a = 1;",
		"notes.unknownext":  "whatever",
		"node_modules/x.js": "nope",
		".git/config.js":    "nope",
	})
	events := make(chan driver.Event, 64)
	res, err := driver.AnalyzeDir(context.Background(), root, driver.DirOptions{Jobs: 2, Events: events})
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	require.Equal(t, "a.js", filepath.Base(res.Files[0].Path))
	require.Equal(t, "main.go", filepath.Base(res.Files[1].Path))
	require.Equal(t, 1, res.ErrorCount())
	require.Equal(t, lang.Go, res.Files[1].Result.Language)

	var kinds []driver.EventKind
	for ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	require.Equal(t, driver.EventStart, kinds[0])
	require.Equal(t, driver.EventDone, kinds[len(kinds)-1])
	require.Len(t, kinds, 2+2*2)
}

func TestAnalyzeDirForcedLanguageAndCache(t *testing.T) {
	root := writeTree(t, map[string]string{"x.txt": "  SELECT 1"})
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	opts := driver.DirOptions{FileOptions: driver.FileOptions{
		Language: lang.SQL,
		Resolve:  func(string) (lang.ID, bool) { return lang.SQL, true },
		Cache:    cache,
	}}
	first, err := driver.AnalyzeDir(context.Background(), root, opts)
	require.NoError(t, err)
	require.Len(t, first.Files, 1)
	require.False(t, first.Files[0].Result.Cached)

	second, err := driver.AnalyzeDir(context.Background(), root, opts)
	require.NoError(t, err)
	require.True(t, second.Files[0].Result.Cached)
	require.Equal(t, first.Files[0].Result.Diagnostics, second.Files[0].Result.Diagnostics)
}

func TestDetectLanguage(t *testing.T) {
	opts := driver.FileOptions{Detect: true}
	require.Equal(t, lang.Python, opts.DetectLanguage("main.py", ""))
	require.Equal(t, lang.Go, opts.DetectLanguage("stdin", "package main\n\nfunc main() {\n\tx := 1\n}\n"))
	require.Equal(t, lang.Default, opts.DetectLanguage("stdin", "just words"))
	opts.Language = lang.Ruby
	require.Equal(t, lang.Ruby, opts.DetectLanguage("main.py", ""))

	opts = driver.FileOptions{Detect: true, PreferContent: true}
	require.Equal(t, lang.Go, opts.DetectLanguage("main.py", "package main\n\nfunc main() {\n\tx := 1\n}\n"))
	require.Equal(t, lang.Python, opts.DetectLanguage("main.py", "just words"))
}

func TestAnalyzeSource(t *testing.T) {
	fs := source.NewFileSet()
	res, err := driver.AnalyzeSource(context.Background(), fs, "<stdin>", []byte("\ufeff{\"a\": 1}\r\n"), driver.FileOptions{Language: lang.JSON})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	require.Equal(t, "{\"a\": 1}", token.Join(res.Lines[0]))
}

func TestAnalyzeConsistentWithPassesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z {}();:=\n"'#<>/]{0,60}`).Draw(t, "text")
		id := rapid.SampledFrom(lang.Known()).Draw(t, "lang")
		res, err := driver.Analyze(context.Background(), driver.Document{Text: text, Language: id}, driver.Options{})
		require.NoError(t, err)
		require.Len(t, res.Lines, strings.Count(text, "\n")+1)
		require.NoError(t, testkit.CheckTokenInvariants(text, res.Lines))
		require.NoError(t, testkit.CheckDiagnosticInvariants(text, res.Diagnostics))
		require.Equal(t, diag.CountSeverity(res.Diagnostics, diag.SevError), res.ErrorCount)
	})
}
