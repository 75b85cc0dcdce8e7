package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // span start
	KindSpanEnd                   // span end
	KindPoint                     // instant event
	KindError                     // failure, emitted at every level but off
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // command-level operations
	ScopePass                    // tokenize, validate, render
	ScopeFile                    // per-document work
	ScopeLine                    // per-line work
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the tracer
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string // e.g. "tokenize", "file:src/app.js"
	Detail   string
	Elapsed  time.Duration // set on span end
	Extra    map[string]string
}
