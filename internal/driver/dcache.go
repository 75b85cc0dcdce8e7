package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"omnicode/internal/diag"
	"omnicode/internal/lang"
	"omnicode/internal/lint"
	"omnicode/internal/token"
)

// Current schema version, bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты анализа по хэшу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the persisted form of a Result.
type DiskPayload struct {
	Schema      uint16            `msgpack:"v"`
	Language    lang.ID           `msgpack:"lang"`
	Lines       [][]token.Token   `msgpack:"lines"`
	Diagnostics []diag.Diagnostic `msgpack:"diags"`
}

// OpenDiskCache opens (creating if needed) $XDG_CACHE_HOME/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key string) string {
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "results", key[:2], key+".mp")
}

// Put serializes res under the key derived from doc and opts.
func (c *DiskCache) Put(doc Document, opts lint.Options, res *Result) error {
	if c == nil || res == nil {
		return nil
	}
	payload := DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Language:    res.Language,
		Lines:       res.Lines,
		Diagnostics: res.Diagnostics,
	}
	p := c.pathFor(contentKey(doc.Language, opts, doc.Text))

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get loads a cached result for doc. Entries from another schema version
// count as misses.
func (c *DiskCache) Get(doc Document, opts lint.Options) (*Result, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	p := c.pathFor(contentKey(doc.Language, opts, doc.Text))

	c.mu.RLock()
	defer c.mu.RUnlock()
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	diags := payload.Diagnostics
	if diags == nil {
		diags = []diag.Diagnostic{}
	}
	return &Result{
		Path:        doc.Path,
		Language:    payload.Language,
		Lines:       normalizeLines(payload.Lines),
		Diagnostics: diags,
		ErrorCount:  diag.CountSeverity(diags, diag.SevError),
		WarnCount:   diag.CountSeverity(diags, diag.SevWarning),
		Cached:      true,
	}, true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// msgpack decodes empty slices as nil; blank lines must stay non-nil.
func normalizeLines(lines [][]token.Token) [][]token.Token {
	for i, l := range lines {
		if l == nil {
			lines[i] = []token.Token{}
		}
	}
	if lines == nil {
		return [][]token.Token{{}}
	}
	return lines
}
