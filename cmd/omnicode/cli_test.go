package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"omnicode/internal/diag"
	"omnicode/internal/diagfmt"
	"omnicode/internal/lang"
)

// execute runs a fresh command tree with an empty project file so the
// caller's environment cannot leak in.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), ".omnicode.toml")
	if err := os.WriteFile(cfg, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color", "off", "--config", cfg}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(err error) int {
	var exit exitCodeError
	if errors.As(err, &exit) {
		return exit.code
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestCheckWarningsOnly(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "const x = 1")
	out, _, err := execute(t, "", "check", "--format", "short", path)
	if err != nil {
		t.Fatalf("warnings must not fail the run: %v", err)
	}
	if !strings.Contains(out, "warning missing-semicolon") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	_, _, err = execute(t, "", "check", "--format", "short", "--warnings-as-errors", path)
	if exitCode(err) != 1 {
		t.Fatalf("--warnings-as-errors should exit 1, got %v", err)
	}
}

func TestCheckDirectoryJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print 'x'")
	writeFile(t, dir, "b.js", "let a = 1;")
	writeFile(t, dir, "notes.unknownext", "whatever")

	out, _, err := execute(t, "", "check", "--format", "json", "--ui", "off", dir)
	if exitCode(err) != 1 {
		t.Fatalf("want exit 1, got %v", err)
	}
	var payload diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.Errors != 1 || payload.Warnings != 0 {
		t.Fatalf("errors=%d warnings=%d", payload.Errors, payload.Warnings)
	}
	if !strings.HasSuffix(payload.Diagnostics[0].Path, "a.py") {
		t.Fatalf("diagnostic path %q", payload.Diagnostics[0].Path)
	}
}

func TestCheckStdinWithLang(t *testing.T) {
	out, _, err := execute(t, `{ "a": 1, }`, "--lang", "json", "check", "--format", "short", "-")
	if exitCode(err) != 1 {
		t.Fatalf("want exit 1, got %v", err)
	}
	if !strings.Contains(out, "error json-syntax <stdin>:1:11") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCheckSortOrder(t *testing.T) {
	firstLine := func(out string) string {
		line, _, _ := strings.Cut(out, "\n")
		return line
	}
	out, _, err := execute(t, "<a><b></a>", "--lang", "xml", "check", "--format", "short", "-")
	if exitCode(err) != 1 {
		t.Fatalf("want exit 1, got %v", err)
	}
	if !strings.HasPrefix(firstLine(out), "warning missing-xml-declaration <stdin>:1") {
		t.Fatalf("rule order should come first:\n%s", out)
	}

	out, _, err = execute(t, "<a><b></a>", "--lang", "xml", "check", "--format", "short", "--sort", "position", "-")
	if exitCode(err) != 1 {
		t.Fatalf("want exit 1, got %v", err)
	}
	if !strings.HasPrefix(firstLine(out), "error unmatched-tags <stdin> ") {
		t.Fatalf("buffer-scoped diagnostics should sort first:\n%s", out)
	}

	if _, _, err := execute(t, "x", "check", "--sort", "nope", "-"); err == nil || exitCode(err) != -1 {
		t.Fatalf("unknown sort order should fail, got %v", err)
	}
}

func TestPrepareDiagnosticsKeepsInput(t *testing.T) {
	in := []diag.Diagnostic{
		{Severity: diag.SevWarning, Rule: diag.RuleMissingSemicolon, Message: "w", Line: 2},
		{Severity: diag.SevInfo, Rule: diag.RuleEmptyFile, Message: "i"},
	}
	bag := prepareDiagnostics(in, true, true)
	if bag.ErrorCount() != 1 || in[0].Severity != diag.SevWarning {
		t.Fatalf("errors=%d input severity=%s", bag.ErrorCount(), in[0].Severity)
	}
	if got := bag.Items(); got[0].Rule != diag.RuleEmptyFile || got[1].Severity != diag.SevError {
		t.Fatalf("unexpected order or severity: %+v", got)
	}
}

func TestTraceClosedForBuiltinCommands(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"completion", "bash"}, {"version"}} {
		t.Run(args[0], func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trace.ndjson")
			flags := []string{"--trace", path, "--trace-mode", "ring"}
			if _, _, err := execute(t, "", append(flags, args...)...); err != nil {
				t.Fatal(err)
			}
			// кольцевой буфер пишет файл только при Close
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if want := `"detail":"omnicode ` + args[0]; !strings.Contains(string(data), want) {
				t.Fatalf("trace was not closed, want %s in:\n%s", want, data)
			}
		})
	}
}

func TestCheckMaxDiagnosticsFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "a\nb\nc\nd")
	out, _, err := execute(t, "", "--max-diagnostics", "2", "check", "--format", "short", path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(strings.TrimSpace(out), "\n") + 1; n != 2 {
		t.Fatalf("want 2 diagnostics, got %d:\n%s", n, out)
	}
}

func TestConfigIndentUnit(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "custom.toml", "[diagnostics]\nindent_unit = 2\n")
	path := writeFile(t, dir, "a.py", "def f():\n  return 1\n")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--color", "off", "--config", cfg, "check", "--format", "short", path})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("indent_unit = 2 should silence the warning:\n%s", stdout.String())
	}
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "const x = 1;")
	out, _, err := execute(t, "", "tokenize", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `keyword`) || !strings.Contains(out, `"const"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, _, err = execute(t, "", "tokenize", "--format", "html", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<span") {
		t.Fatalf("html output missing spans:\n%s", out)
	}

	if _, _, err := execute(t, "", "tokenize", "--format", "nope", path); err == nil {
		t.Fatal("unknown format should fail")
	}
}

func TestUnknownLangFlagFallsBack(t *testing.T) {
	out, _, err := execute(t, "const x = 1;", "--lang", "klingon", "tokenize", "-")
	if err != nil {
		t.Fatal(err)
	}
	if want := "   1:1    text       \"const x = 1;\"\n"; out != want {
		t.Fatalf("want a single text token, got:\n%s", out)
	}

	out, _, err = execute(t, "", "--lang", "klingon", "check", "--format", "short", "-")
	if err != nil {
		t.Fatal(err)
	}
	if want := "info empty-file <stdin> File is empty"; strings.TrimSpace(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	if _, _, err := execute(t, "", "new", "python", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != lang.Template(lang.Python) {
		t.Fatalf("template mismatch:\n%s", data)
	}
	if _, _, err := execute(t, "", "new", "python", path); err == nil {
		t.Fatal("existing file must not be overwritten without --force")
	}
	if _, _, err := execute(t, "", "new", "--force", "python", path); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "new", "rust", "-")
	if err != nil {
		t.Fatal(err)
	}
	if out != lang.Template(lang.Rust) {
		t.Fatalf("stdout template mismatch:\n%s", out)
	}
	if _, _, err := execute(t, "", "new", "cobol"); err == nil {
		t.Fatal("unknown language should fail")
	}
}

func TestLanguagesJSON(t *testing.T) {
	out, _, err := execute(t, "", "languages", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var infos []languageInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != len(lang.Known()) {
		t.Fatalf("got %d languages, want %d", len(infos), len(lang.Known()))
	}
	for _, l := range infos {
		if l.ID == "javascript" && (!l.Rules || !l.Runnable || l.Scanner != "code") {
			t.Fatalf("javascript entry: %+v", l)
		}
	}
}

func TestRunUnsupported(t *testing.T) {
	_, stderr, err := execute(t, "fn main() {}", "--lang", "rust", "run", "-")
	if exitCode(err) != 1 {
		t.Fatalf("want exit 1, got %v", err)
	}
	if !strings.Contains(stderr, "not supported") {
		t.Fatalf("stderr:\n%s", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "omnicode" || payload.Version == "" {
		t.Fatalf("payload: %+v", payload)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("invalid mode accepted")
	}
}
