package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"omnicode/internal/lang"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// snippets are inputs that previously tripped individual scanners.
var snippets = []string{
	"",
	"\n\n",
	"const x = 1",
	"foo() // bar /* baz",
	"`unterminated ${x",
	"s = \"\"\"doc\nmore\n\"\"\"",
	"<div class=\"a>b\"><!-- c",
	"{ \"a\": 1, }",
	"a {\n  color: red\n}",
	"SELECT * FROM t -- x\n",
	"def f\n  a.append(1)\n",
	"\xff\xfe\x00",
	"\ufeffline\r\nnext\r\n",
	"key: [1, 2\n",
	"a = \n",
}

func addCorpusSeeds(f *testing.F) {
	addTemplateSeeds(f)
	addTestdataSeeds(f)
	for i, s := range snippets {
		f.Add(uint8(i), []byte(s))
	}
}

func addTemplateSeeds(f *testing.F) {
	for i, id := range lang.Known() {
		if lang.HasTemplate(id) {
			f.Add(uint8(i), []byte(lang.Template(id)))
		}
	}
}

// addTestdataSeeds picks up sample files from testdata/ next to the module
// root when present; the selector comes from the file extension.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	ids := lang.Known()
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		id, ok := lang.FromFilename(path)
		if !ok {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for i, known := range ids {
			if known == id {
				f.Add(uint8(i), clampSeed(src))
				break
			}
		}
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

// pickLanguage maps a fuzz selector onto the known languages plus two
// unrouted ids.
func pickLanguage(sel uint8) lang.ID {
	ids := append(lang.Known(), "", "not-a-language")
	return ids[int(sel)%len(ids)]
}
