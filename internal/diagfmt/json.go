package diagfmt

import (
	"encoding/json"
	"io"

	"omnicode/internal/diag"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Severity string `json:"severity"`
	Rule     string `json:"rule,omitempty"`
	Message  string `json:"message"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(entries []Entry, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0)}
	for _, e := range entries {
		for _, d := range e.Diagnostics {
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				out.Count = len(out.Diagnostics)
				return out
			}
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Path:     e.Path,
				Line:     d.Line,
				Column:   d.Column,
				Severity: d.Severity.String(),
				Rule:     d.Rule.ID(),
				Message:  d.Message,
			})
			switch d.Severity {
			case diag.SevError:
				out.Errors++
			case diag.SevWarning:
				out.Warnings++
			}
		}
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, entries []Entry, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	if opts.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(BuildDiagnosticsOutput(entries, opts))
}
