package driver

import "context"

// EventKind classifies progress events from AnalyzeDir.
type EventKind uint8

const (
	EventStart EventKind = iota
	EventFileStart
	EventFileDone
	EventDone
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventFileStart:
		return "file-start"
	case EventFileDone:
		return "file-done"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event reports directory analysis progress.
type Event struct {
	Kind     EventKind
	Path     string
	Index    int
	Total    int
	Errors   int
	Warnings int
	Cached   bool
	Err      error
}

// send blocks until the event is taken or ctx ends.
func send(ctx context.Context, ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
