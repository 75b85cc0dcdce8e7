package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesFiles(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CPU:   filepath.Join(dir, "cpu.out"),
		Mem:   filepath.Join(dir, "mem.out"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	s, err := Start(opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Active() {
		t.Fatal("session should be active")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{opts.CPU, opts.Mem, opts.Trace} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestEmptyOptions(t *testing.T) {
	s, err := Start(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Active() {
		t.Fatal("no profiler requested")
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	var nilSession *Session
	if nilSession.Active() || nilSession.Stop() != nil {
		t.Fatal("nil session must be inert")
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	_, err := Start(Options{CPU: filepath.Join(t.TempDir(), "missing", "cpu.out")})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
