package dialect

import "omnicode/internal/lang"

// Hint is a small piece of evidence suggesting a particular language.
type Hint struct {
	Lang   lang.ID
	Score  int
	Reason string
	Line   int // 1-based
}

// Evidence aggregates hints collected over a buffer.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 16)}
}

// Add appends a hint to the evidence collection.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

// Hints returns the collected hints.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// Reasons returns the distinct reasons recorded for id, in first-seen order.
func (e *Evidence) Reasons(id lang.ID) []string {
	if e == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, h := range e.hints {
		if h.Lang != id {
			continue
		}
		if _, dup := seen[h.Reason]; dup {
			continue
		}
		seen[h.Reason] = struct{}{}
		out = append(out, h.Reason)
	}
	return out
}
