package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a pass boundary inside Analyze.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events. It may be called from several
// goroutines at once.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) emit(name string, status PhaseStatus, elapsed time.Duration) {
	if o == nil {
		return
	}
	o(PhaseEvent{Name: name, Status: status, Elapsed: elapsed})
}
