// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"

	"omnicode/internal/diag"
	"omnicode/internal/token"
)

// CheckTokenInvariants verifies a token grid against its source text:
// 1) one token line per text line
// 2) every token is non-empty and has a valid kind
// 3) each line's tokens join back to the line exactly
func CheckTokenInvariants(text string, lines [][]token.Token) error {
	src := strings.Split(text, "\n")
	if len(lines) != len(src) {
		return fmt.Errorf("token lines: got=%d want=%d", len(lines), len(src))
	}
	for i, toks := range lines {
		for j, tok := range toks {
			if tok.Text == "" {
				return fmt.Errorf("line %d token %d is empty", i+1, j)
			}
			if !tok.Kind.Valid() {
				return fmt.Errorf("line %d token %d has invalid kind %d", i+1, j, tok.Kind)
			}
		}
		if joined := token.Join(toks); joined != src[i] {
			return fmt.Errorf("line %d is lossy: joined %q, source %q", i+1, joined, src[i])
		}
	}
	return nil
}

// CheckDiagnosticInvariants verifies diagnostics against the text they were
// produced for. Parser-reported lines of yaml and toml may point one past
// the last line, so they only need to be non-negative.
func CheckDiagnosticInvariants(text string, ds []diag.Diagnostic) error {
	if ds == nil {
		return fmt.Errorf("diagnostics slice is nil")
	}
	lines := strings.Count(text, "\n") + 1
	for i, d := range ds {
		if d.Message == "" {
			return fmt.Errorf("diagnostic %d has no message", i)
		}
		switch d.Severity {
		case diag.SevInfo, diag.SevWarning, diag.SevError:
		default:
			return fmt.Errorf("diagnostic %d has severity %d", i, d.Severity)
		}
		if d.Line < 0 || d.Column < 0 {
			return fmt.Errorf("diagnostic %d has negative position %d:%d", i, d.Line, d.Column)
		}
		if d.Rule == diag.RuleYAMLSyntax || d.Rule == diag.RuleTOMLSyntax {
			continue
		}
		if d.Line > lines {
			return fmt.Errorf("diagnostic %d on line %d, text has %d", i, d.Line, lines)
		}
	}
	return nil
}
