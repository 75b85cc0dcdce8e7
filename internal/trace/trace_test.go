package trace

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || l.String() != s {
			t.Fatalf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Error("phase must not emit file events")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) || LevelDetail.ShouldEmit(ScopeLine) {
		t.Error("detail stops at file scope")
	}
	if !LevelDebug.ShouldEmit(ScopeLine) {
		t.Error("debug emits everything")
	}
}

func TestStreamSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, root := Start(ctx, ScopeDriver, "check")
	_, child := Start(ctx, ScopePass, "tokenize")
	child.WithExtra("lines", "3").End("")
	_, skipped := Start(ctx, ScopeLine, "line")
	skipped.End("")
	root.End("ok")

	out := buf.String()
	if got := strings.Count(out, "\n"); got != 4 {
		t.Fatalf("want 4 events, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "→ check") || !strings.Contains(out, "← check (ok)") {
		t.Errorf("missing root span:\n%s", out)
	}
	if !strings.Contains(out, "{lines=3}") {
		t.Errorf("missing extra:\n%s", out)
	}
	if child.parentID != root.ID() {
		t.Errorf("child parent = %d, want %d", child.parentID, root.ID())
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatNDJSON)
	Point(tr, ScopeDriver, "ignored", "")
	Fail(tr, "load", errors.New("boom"))
	out := buf.String()
	if !strings.Contains(out, `"kind":"error"`) || !strings.Contains(out, `"detail":"boom"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "ignored") {
		t.Fatal("error level must drop points")
	}
}

func TestRingKeepsTail(t *testing.T) {
	var out bytes.Buffer
	r := NewRingTracer(2, LevelDebug, &out, FormatText)
	for _, name := range []string{"a", "b", "c"} {
		Point(r, ScopeLine, name, "")
	}
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "• a") || !strings.Contains(out.String(), "• c") {
		t.Fatalf("dump = %s", out.String())
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off config should give nop tracer, got %v %v", tr, err)
	}
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should give Nop")
	}
}
