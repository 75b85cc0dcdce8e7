package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last N events in memory and writes them on Close.
type RingTracer struct {
	mu       sync.Mutex
	events   []Event
	capacity int
	head     int
	full     bool
	level    Level
	out      io.Writer
	format   Format
}

// NewRingTracer creates a RingTracer. out may be nil, then Close only drops
// the events.
func NewRingTracer(capacity int, level Level, out io.Writer, format Format) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
		out:      out,
		format:   format,
	}
}

func (t *RingTracer) Emit(ev *Event) {
	if !accepts(t.level, ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.head] = stored
	t.head = (t.head + 1) % t.capacity
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.full {
		out := make([]Event, t.head)
		copy(out, t.events[:t.head])
		return out
	}
	out := make([]Event, t.capacity)
	copy(out, t.events[t.head:])
	copy(out[t.capacity-t.head:], t.events[:t.head])
	return out
}

// Dump writes all stored events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

func (t *RingTracer) Close() error {
	if t.out == nil {
		return nil
	}
	if err := t.Dump(t.out, t.format); err != nil {
		return err
	}
	if closer, ok := t.out.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
