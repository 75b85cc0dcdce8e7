package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerParallel(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for _, name := range []string{"tokenize", "validate"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			idx := tm.Begin(name)
			tm.End(idx, "")
		}(name)
	}
	wg.Wait()
	if n := len(tm.Phases()); n != 2 {
		t.Fatalf("want 2 phases, got %d", n)
	}
	r := tm.Report()
	if r.TotalMS < 0 {
		t.Fatalf("negative total %f", r.TotalMS)
	}
	s := tm.Summary()
	if !strings.Contains(s, "tokenize") || !strings.Contains(s, "total") {
		t.Fatalf("summary missing rows:\n%s", s)
	}
}

func TestTimerNilAndBadIndex(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if tm.Phases() != nil {
		t.Fatal("nil timer has no phases")
	}
	NewTimer().End(5, "ignored")
	if r := NewTimer().Report(); len(r.Phases) != 0 {
		t.Fatal("empty timer should give empty report")
	}
}
