package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"omnicode/internal/lang"
	"omnicode/internal/lint"
)

// DefaultMemoTTL keeps results around long enough to cover bursts of
// keystrokes that bounce between the same few states.
const DefaultMemoTTL = 2 * time.Minute

// Memo is an in-memory analysis cache keyed by language, options and text.
type Memo struct {
	c *cache.Cache
}

// NewMemo creates a memo; ttl <= 0 uses DefaultMemoTTL.
func NewMemo(ttl time.Duration) *Memo {
	if ttl <= 0 {
		ttl = DefaultMemoTTL
	}
	return &Memo{c: cache.New(ttl, 2*ttl)}
}

// Get returns a memoized result for doc.
func (m *Memo) Get(doc Document, opts lint.Options) (*Result, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.c.Get(contentKey(doc.Language, opts, doc.Text))
	if !ok {
		return nil, false
	}
	res, ok := v.(*Result)
	return res, ok
}

// Put stores res for doc.
func (m *Memo) Put(doc Document, opts lint.Options, res *Result) {
	if m == nil || res == nil {
		return
	}
	m.c.SetDefault(contentKey(doc.Language, opts, doc.Text), res)
}

// Len returns the number of live entries.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return m.c.ItemCount()
}

// Flush drops every entry.
func (m *Memo) Flush() {
	if m != nil {
		m.c.Flush()
	}
}

// contentKey = sha256(lang || 0 || options || 0 || text).
func contentKey(id lang.ID, opts lint.Options, text string) string {
	opts = lint.New(opts).Options()
	h := sha256.New()
	_, _ = h.Write([]byte(id))
	_, _ = h.Write([]byte{0})
	_, _ = fmt.Fprintf(h, "%d|%d|%v", opts.IndentUnit, opts.Max, opts.Disabled)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
