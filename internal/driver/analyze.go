// Package driver runs the tokenizer and the validator over documents, files
// and directory trees.
package driver

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/lexer"
	"omnicode/internal/lint"
	"omnicode/internal/observ"
	"omnicode/internal/token"
	"omnicode/internal/trace"
)

// Pass names used for timings, trace spans and phase events.
const (
	PassTokenize = "tokenize"
	PassValidate = "validate"
)

// Document is an immutable snapshot of one buffer.
type Document struct {
	Path     string // display only; may be empty
	Text     string
	Language lang.ID
}

// Options control a single analysis.
type Options struct {
	Lint    lint.Options
	Timings bool
	// Memo, when set, short-circuits repeated analyses of identical text.
	Memo    *Memo
	OnPhase PhaseObserver
}

// Result is the output of Analyze. Callers must treat it as read-only;
// memoized results are shared.
type Result struct {
	Path        string
	Language    lang.ID
	Lines       [][]token.Token
	Diagnostics []diag.Diagnostic
	ErrorCount  int
	WarnCount   int
	Timing      *observ.Report
	Cached      bool
}

// ShowProblems reports whether the problems panel should open on its own.
func (r *Result) ShowProblems() bool { return r != nil && r.ErrorCount > 0 }

// Analyze tokenizes and validates doc. Both passes run concurrently and
// read the same snapshot.
func Analyze(ctx context.Context, doc Document, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Memo != nil {
		if res, ok := opts.Memo.Get(doc, opts.Lint); ok {
			out := *res
			out.Path = doc.Path
			out.Cached = true
			return &out, nil
		}
	}

	ctx, span := trace.Start(ctx, trace.ScopeFile, "analyze:"+displayName(doc))
	defer span.End("")
	span.WithExtra("lang", string(doc.Language))

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	linter := lint.New(opts.Lint)

	var (
		lines [][]token.Token
		diags []diag.Diagnostic
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runPass(gctx, PassTokenize, timer, opts.OnPhase, func() string {
			lines = lexer.Tokenize(doc.Text, doc.Language)
			return strconv.Itoa(len(lines)) + " lines"
		})
	})
	g.Go(func() error {
		return runPass(gctx, PassValidate, timer, opts.OnPhase, func() string {
			diags = linter.Validate(doc.Text, doc.Language)
			return strconv.Itoa(len(diags)) + " diagnostics"
		})
	})
	if err := g.Wait(); err != nil {
		trace.Fail(trace.FromContext(ctx), "analyze", err)
		return nil, err
	}

	res := &Result{
		Path:        doc.Path,
		Language:    doc.Language,
		Lines:       lines,
		Diagnostics: diags,
		ErrorCount:  diag.CountSeverity(diags, diag.SevError),
		WarnCount:   diag.CountSeverity(diags, diag.SevWarning),
	}
	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	span.WithExtra("errors", strconv.Itoa(res.ErrorCount))
	if opts.Memo != nil {
		opts.Memo.Put(doc, opts.Lint, res)
	}
	return res, nil
}

func runPass(ctx context.Context, name string, timer *observ.Timer, obs PhaseObserver, fn func() string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, span := trace.Start(ctx, trace.ScopePass, name)
	idx := timer.Begin(name)
	obs.emit(name, PhaseStart, 0)
	start := time.Now()

	note := fn()

	timer.End(idx, note)
	obs.emit(name, PhaseEnd, time.Since(start))
	span.End(note)
	return nil
}

func displayName(doc Document) string {
	if doc.Path != "" {
		return doc.Path
	}
	return "<buffer>"
}
