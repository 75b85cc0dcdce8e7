package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"omnicode/internal/diag"
)

type palette struct {
	err, warn, info, path, gutter, caret, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <rule>: <Message>
// затем контекст строки с кареткой под колонкой.
func Pretty(w io.Writer, entries []Entry, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	errs, warns := 0, 0
	for _, e := range entries {
		path := e.Path
		if path == "" {
			path = "<buffer>"
		}
		for _, d := range e.Diagnostics {
			switch d.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			}
			if err := prettyOne(w, p, e, path, d, opts); err != nil {
				return err
			}
		}
	}
	if opts.Summary {
		_, err := fmt.Fprintln(w, summary(errs, warns))
		return err
	}
	return nil
}

func prettyOne(w io.Writer, p palette, e Entry, path string, d diag.Diagnostic, opts PrettyOpts) error {
	var sb strings.Builder
	sb.WriteString(p.path.Sprint(diag.Location(path, d)))
	sb.WriteString(": ")
	sb.WriteString(p.severity(d.Severity).Sprint(strings.ToUpper(d.Severity.String())))
	if d.Rule != diag.RuleNone {
		sb.WriteString(" ")
		sb.WriteString(p.dim.Sprint(d.Rule.ID()))
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteString("\n")

	if d.HasLine() {
		if _, ok := e.line(d.Line); ok {
			from := max(1, d.Line-opts.Context)
			to := min(len(e.Lines), d.Line+opts.Context)
			gutterWidth := len(fmt.Sprint(to))
			for n := from; n <= to; n++ {
				text, _ := e.line(n)
				if opts.Width > 0 {
					text = runewidth.Truncate(text, opts.Width, "…")
				}
				fmt.Fprintf(&sb, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), text)
				if n == d.Line && d.HasColumn() {
					fmt.Fprintf(&sb, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), caretPad(text, d.Column), p.caret.Sprint("^"))
				}
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// caretPad returns the padding that puts a caret under the 1-based byte
// column col. Tabs are kept so the caret lines up with the source.
func caretPad(line string, col int) string {
	prefix := line
	if col-1 < len(line) {
		prefix = line[:col-1]
	}
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func summary(errs, warns int) string {
	return fmt.Sprintf("%d %s, %d %s", errs, plural(errs, "error"), warns, plural(warns, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Short writes one line per diagnostic.
func Short(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if len(e.Diagnostics) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(e.Path, e.Diagnostics)); err != nil {
			return err
		}
	}
	return nil
}
