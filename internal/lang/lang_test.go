package lang_test

import (
	"strings"
	"testing"

	"omnicode/internal/lang"
)

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name  string
		want  lang.ID
		known bool
	}{
		{"main.js", lang.JavaScript, true},
		{"App.TSX", lang.TypeScript, true},
		{"script.py", lang.Python, true},
		{"dir/style.scss", lang.SCSS, true},
		{"config.yaml", lang.YAML, true},
		{"config.yml", lang.YAML, true},
		{"lib.rs", lang.Rust, true},
		{"Program.cs", lang.CSharp, true},
		{"Dockerfile", "dockerfile", true},
		{".gitignore", "gitignore", true},
		{"top.v", "v", true},
		{"notes.unknown", lang.Default, false},
		{"README", lang.Default, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lang.FromFilename(tt.name)
			if got != tt.want || ok != tt.known {
				t.Fatalf("FromFilename(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.known)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	cases := map[lang.ID]string{
		lang.JavaScript: "js",
		lang.YAML:       "yml",
		lang.CSharp:     "cs",
		"verilog":       "v",
		"brainfuck":     "txt",
		"":              "txt",
	}
	for id, want := range cases {
		if got := lang.Extension(id); got != want {
			t.Errorf("Extension(%q) = %q, want %q", id, got, want)
		}
	}
	if got := lang.Rename("main.js", lang.Python); got != "main.py" {
		t.Errorf("Rename = %q", got)
	}
	if got := lang.Filename("", lang.Go); got != "code.go" {
		t.Errorf("Filename = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	for _, id := range []lang.ID{lang.JavaScript, lang.Python, lang.HTML, lang.JSON, lang.Go, lang.PHP} {
		if !lang.HasTemplate(id) {
			t.Fatalf("missing template for %s", id)
		}
		if strings.TrimSpace(lang.Template(id)) == "" {
			t.Fatalf("empty template for %s", id)
		}
	}
	got := lang.Template("kotlin")
	if !strings.Contains(got, "Kotlin") {
		t.Fatalf("fallback template should name the language, got %q", got)
	}
}

func TestKnownSorted(t *testing.T) {
	ids := lang.Known()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("Known() not sorted at %d: %q > %q", i, ids[i-1], ids[i])
		}
	}
	if !lang.IsKnown(lang.SQL) || lang.IsKnown("nope") {
		t.Fatalf("IsKnown mismatch")
	}
}
