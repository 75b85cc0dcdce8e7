package lint_test

import (
	"strings"
	"testing"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/lint"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidateTotalAndDeterministic(t *testing.T) {
	ids := append(lang.Known(), "", "unknown-lang")
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		id := rapid.SampledFrom(ids).Draw(t, "lang")

		first := lint.Validate(text, id)
		second := lint.Validate(text, id)
		require.NotNil(t, first)
		require.Equal(t, first, second)

		lines := strings.Count(text, "\n") + 1
		for _, d := range first {
			require.NotEmpty(t, d.Message)
			require.Contains(t, []diag.Severity{diag.SevInfo, diag.SevWarning, diag.SevError}, d.Severity)
			require.GreaterOrEqual(t, d.Line, 0)
			if d.Rule != diag.RuleYAMLSyntax && d.Rule != diag.RuleTOMLSyntax {
				require.LessOrEqual(t, d.Line, lines)
			}
		}
	})
}

func TestLineOrderWithinRuleSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.SampledFrom([]string{
			"const x = 1", "let y;", "print 'a'", "  x = 1", "if x", "", "}", "{",
		}), 1, 10).Draw(t, "lines")
		text := strings.Join(parts, "\n")
		for _, id := range []lang.ID{lang.JavaScript, lang.Python, lang.Rust, lang.SQL} {
			last := 0
			for _, d := range lint.Validate(text, id) {
				if !d.HasLine() {
					continue
				}
				require.GreaterOrEqual(t, d.Line, last, "%s: %+v", id, d)
				last = d.Line
			}
		}
	})
}

func TestUnknownLanguageOnlyEmptyFile(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		got := lint.Validate(text, "no-such-language")
		if strings.TrimSpace(text) == "" {
			require.Len(t, got, 1)
			require.Equal(t, diag.RuleEmptyFile, got[0].Rule)
			return
		}
		require.Empty(t, got)
	})
}
