package source

import (
	"bytes"
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeNewlines rewrites "\r\n" and lone "\r" to "\n", matching what a
// browser textarea hands back for pasted text. The flag reports a change.
func normalizeNewlines(content []byte) ([]byte, bool) {
	if bytes.IndexByte(content, '\r') < 0 {
		return content, false
	}
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n")), true
}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	base := 0
	for {
		i := bytes.IndexByte(content[base:], '\n')
		if i < 0 {
			return out
		}
		off, err := safecast.Conv[uint32](base + i)
		if err != nil {
			panic(fmt.Errorf("line offset overflow: %w", err))
		}
		out = append(out, off)
		base += i + 1
	}
}

func normalizePath(p string) string {
	// единый вид путей в выводе на всех платформах
	return filepath.ToSlash(filepath.Clean(p))
}
