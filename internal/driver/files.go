package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"omnicode/internal/dialect"
	"omnicode/internal/lang"
	"omnicode/internal/source"
	"omnicode/internal/trace"
)

// LangResolver maps a file name to a language. The bool is false when the
// name carried no usable hint.
type LangResolver func(filename string) (lang.ID, bool)

// FileOptions extend Options for on-disk inputs.
type FileOptions struct {
	Options
	// Language forces every file to one language. Empty means resolve.
	Language lang.ID
	// Resolve maps names to languages; nil uses lang.FromFilename.
	Resolve LangResolver
	// Detect guesses from content when Resolve has no answer.
	Detect bool
	// PreferContent consults the content guess before the file name.
	PreferContent bool
	// Cache persists results between runs.
	Cache *DiskCache
}

func (o FileOptions) resolve(name string) (lang.ID, bool) {
	if o.Resolve != nil {
		return o.Resolve(name)
	}
	return lang.FromFilename(name)
}

// DetectLanguage picks the language for a buffer: forced, then by name,
// then by content when detect is set, then the resolver's default.
// PreferContent swaps the name and content steps.
func (o FileOptions) DetectLanguage(name, text string) lang.ID {
	if o.Language != "" {
		return o.Language
	}
	if o.PreferContent {
		if guess, ok := dialect.Guess(text); ok {
			return guess.Lang
		}
	}
	id, ok := o.resolve(name)
	if ok || !o.Detect {
		return id
	}
	if guess, ok := dialect.Guess(text); ok {
		return guess.Lang
	}
	return id
}

// AnalyzeFile loads path into fileSet and analyzes it.
func AnalyzeFile(ctx context.Context, fileSet *source.FileSet, path string, opts FileOptions) (*Result, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return analyzeLoaded(ctx, fileSet.Get(id), fileSet.BaseDir(), opts)
}

// AnalyzeSource analyzes an in-memory buffer such as stdin.
func AnalyzeSource(ctx context.Context, fileSet *source.FileSet, name string, content []byte, opts FileOptions) (*Result, error) {
	id := fileSet.AddVirtual(name, content)
	return analyzeLoaded(ctx, fileSet.Get(id), "", opts)
}

func analyzeLoaded(ctx context.Context, f *source.File, baseDir string, opts FileOptions) (*Result, error) {
	text := f.Text()
	display := f.Path
	if baseDir != "" {
		display = f.FormatPath("relative", baseDir)
	}
	doc := Document{Path: display, Text: text, Language: opts.DetectLanguage(f.Path, text)}

	if opts.Cache != nil {
		res, ok, err := opts.Cache.Get(doc, opts.Lint)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", "read failed: "+err.Error())
		} else if ok {
			return res, nil
		}
	}
	res, err := Analyze(ctx, doc, opts.Options)
	if err != nil {
		return nil, err
	}
	if opts.Cache != nil && !res.Cached {
		if err := opts.Cache.Put(doc, opts.Lint, res); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", "write failed: "+err.Error())
		}
	}
	return res, nil
}

// DirOptions control AnalyzeDir.
type DirOptions struct {
	FileOptions
	// Jobs bounds parallelism; <= 0 uses GOMAXPROCS.
	Jobs int
	// Events receives progress; it is closed when AnalyzeDir returns.
	Events chan<- Event
}

// DirResult holds per-file results in path order.
type DirResult struct {
	Root    string
	FileSet *source.FileSet
	Files   []FileResult
}

// FileResult pairs a path with its analysis or load error.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// ErrorCount sums error diagnostics plus files that failed to load.
func (d *DirResult) ErrorCount() int {
	n := 0
	for _, f := range d.Files {
		if f.Err != nil {
			n++
			continue
		}
		n += f.Result.ErrorCount
	}
	return n
}

// WarnCount sums warning diagnostics.
func (d *DirResult) WarnCount() int {
	n := 0
	for _, f := range d.Files {
		if f.Result != nil {
			n += f.Result.WarnCount
		}
	}
	return n
}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true, "node_modules": true, "vendor": true,
}

// ListFiles returns every file under dir with a recognised language, sorted.
func ListFiles(dir string, resolve LangResolver) ([]string, error) {
	if resolve == nil {
		resolve = lang.FromFilename
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := resolve(d.Name()); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every recognised file under dir in parallel.
// Load failures are reported per file; only walk and context errors abort.
func AnalyzeDir(ctx context.Context, dir string, opts DirOptions) (*DirResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "analyze-dir")
	defer span.End("")

	files, err := ListFiles(dir, opts.resolve)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	span.WithExtra("files", fmt.Sprint(len(files)))

	out := &DirResult{
		Root:    dir,
		FileSet: source.NewFileSetWithBase(dir),
		Files:   make([]FileResult, len(files)),
	}
	send(ctx, opts.Events, Event{Kind: EventStart, Total: len(files)})
	if len(files) == 0 {
		send(ctx, opts.Events, Event{Kind: EventDone})
		return out, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			send(gctx, opts.Events, Event{Kind: EventFileStart, Path: path, Index: i, Total: len(files)})
			res, err := AnalyzeFile(gctx, out.FileSet, path, opts.FileOptions)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			out.Files[i] = FileResult{Path: path, Result: res, Err: err}
			ev := Event{Kind: EventFileDone, Path: path, Index: i, Total: len(files), Err: err}
			if res != nil {
				ev.Errors, ev.Warnings, ev.Cached = res.ErrorCount, res.WarnCount, res.Cached
			}
			send(gctx, opts.Events, ev)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	send(ctx, opts.Events, Event{Kind: EventDone, Total: len(files), Errors: out.ErrorCount(), Warnings: out.WarnCount()})
	return out, nil
}
