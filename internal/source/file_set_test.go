package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("./test.js", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, exists := fs.GetLatest("test.js")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}
	if fs.Get(id1).Text() != "hello world" {
		t.Error("old version must stay readable")
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("different content must hash differently")
	}
	if fs.Get(FileID(42)) != nil {
		t.Error("unknown id must return nil")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d", fs.Len())
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("buf", []byte("first\n\nthird\n")))
	tests := []struct {
		n    int
		want string
	}{
		{0, ""}, {1, "first"}, {2, ""}, {3, "third"}, {4, ""}, {5, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.n); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
	if f.LineCount() != 4 {
		t.Errorf("LineCount = %d, want 4", f.LineCount())
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("AddVirtual must set FileVirtual")
	}
}

func TestNormalization(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("crlf", []byte("\xEF\xBB\xBFa\r\nb\rc\r\r\n")))
	if f.Text() != "a\nb\nc\n\n" {
		t.Fatalf("normalized content = %q", f.Text())
	}
	if !f.Flags.Has(FileHadBOM | FileNormalizedNewlines | FileVirtual) {
		t.Fatalf("flags = %b", f.Flags)
	}
	if f.LineCount() != 5 || f.GetLine(3) != "c" {
		t.Fatalf("line index after normalization: count=%d line3=%q", f.LineCount(), f.GetLine(3))
	}

	plain := fs.Get(fs.AddVirtual("plain", []byte("a\nb")))
	if plain.Flags.Has(FileHadBOM) || plain.Flags.Has(FileNormalizedNewlines) {
		t.Fatalf("untouched buffer flagged: %b", plain.Flags)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	if err := os.WriteFile(path, []byte("x = 1\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Text() != "x = 1\n" {
		t.Fatalf("content = %q", f.Text())
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "main.py" {
		t.Fatalf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "main.py" {
		t.Fatalf("basename = %q", got)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.py")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRelativePathOutsideBase(t *testing.T) {
	base := t.TempDir()
	other := t.TempDir()
	p := filepath.Join(other, "a.js")
	got := RelativePath(p, base)
	if !filepath.IsAbs(filepath.FromSlash(got)) {
		t.Fatalf("path outside base should stay absolute, got %q", got)
	}
}
