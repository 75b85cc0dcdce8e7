package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/lexer"
	"omnicode/internal/lint"
)

func sampleEntries() []Entry {
	text := "def f():\n  return 1\nprint 'x'"
	return []Entry{NewEntry("src/a.py", text, lint.Validate(text, lang.Python))}
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleEntries(), PrettyOpts{Context: 1, Summary: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"src/a.py:2: WARNING indentation: Indentation should be 4 spaces",
		"src/a.py:3: ERROR print-function:",
		"2 |   return 1",
		"1 error, 1 warning",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour codes in plain output")
	}
}

func TestPrettyCaretAndColor(t *testing.T) {
	text := "\t<b>x"
	entries := []Entry{NewEntry("p.html", text, []diag.Diagnostic{
		{Line: 1, Column: 2, Severity: diag.SevWarning, Rule: diag.RuleUnclosedTag, Message: "Unclosed tag: <b>"},
	})}
	var buf bytes.Buffer
	if err := Pretty(&buf, entries, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header, source and caret lines, got:\n%s", buf.String())
	}
	if lines[2] != "  | \t^" {
		t.Fatalf("caret line = %q", lines[2])
	}

	buf.Reset()
	if err := Pretty(&buf, entries, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected ANSI colour codes")
	}
}

func TestPrettyBufferScoped(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{{Diagnostics: []diag.Diagnostic{diag.New(diag.SevInfo, diag.RuleEmptyFile, "File is empty")}}}
	if err := Pretty(&buf, entries, PrettyOpts{Context: 2}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<buffer>: INFO empty-file: File is empty\n" {
		t.Fatalf("got %q", got)
	}
}

func TestShort(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, sampleEntries()); err != nil {
		t.Fatal(err)
	}
	want := "warning indentation src/a.py:2 Indentation should be 4 spaces\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Fatalf("got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleEntries(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || out.Errors != 1 || out.Warnings != 1 {
		t.Fatalf("counts = %+v", out)
	}
	first := out.Diagnostics[0]
	if first.Path != "src/a.py" || first.Line != 2 || first.Rule != "indentation" || first.Severity != "warning" {
		t.Fatalf("first = %+v", first)
	}

	limited := BuildDiagnosticsOutput(sampleEntries(), JSONOpts{Max: 1})
	if limited.Count != 1 {
		t.Fatalf("Max not applied: %+v", limited)
	}
	empty := BuildDiagnosticsOutput(nil, JSONOpts{})
	if empty.Diagnostics == nil {
		t.Fatal("diagnostics must encode as [] not null")
	}
}

func TestSarif(t *testing.T) {
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "omnicode", ToolVersion: "test", InvocationArgs: []string{"check"}}
	if err := Sarif(&buf, sampleEntries(), meta); err != nil {
		t.Fatal(err)
	}
	var log map[string]any
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatal(err)
	}
	if log["version"] != "2.1.0" {
		t.Fatalf("version = %v", log["version"])
	}
	run := log["runs"].([]any)[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	rules := run["tool"].(map[string]any)["driver"].(map[string]any)["rules"].([]any)
	if len(rules) != 2 || rules[0].(map[string]any)["id"] != "indentation" {
		t.Fatalf("rules = %v", rules)
	}
	second := results[1].(map[string]any)
	if second["level"] != "error" || second["ruleIndex"].(float64) != 1 {
		t.Fatalf("second result = %v", second)
	}
}

func TestTokenFormats(t *testing.T) {
	lines := lexer.Tokenize("let a = 1;\n<x>", lang.JavaScript)

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lines); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `   1:1    keyword    "let"`) {
		t.Fatalf("pretty output:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, lines); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"type": "keyword"`) || !strings.Contains(buf.String(), `"value": "let"`) {
		t.Fatalf("json output:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensHTML(&buf, lines, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<span class="text-purple-400">let</span>`) {
		t.Fatalf("html output:\n%s", buf.String())
	}

	if got := LinesFromTokens(lines); got[0] != "let a = 1;" || got[1] != "<x>" {
		t.Fatalf("LinesFromTokens = %q", got)
	}
}
