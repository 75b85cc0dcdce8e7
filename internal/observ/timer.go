// Package observ collects per-pass timings for --timings output.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the duration of one analysis pass.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks passes. Begin and End may be called from several goroutines.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Phases returns a copy of the recorded phases in Begin order.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// Summary renders the timings as an aligned table.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %8.3f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "  %-12s %8.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report sums the phases. Parallel phases overlap, so TotalMS is wall time
// from the first Begin to the last End rather than a plain sum.
func (t *Timer) Report() Report {
	phases := t.Phases()
	if len(phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(phases))}
	first, last := phases[0].Start, phases[0].Start
	for i, p := range phases {
		if p.Start.Before(first) {
			first = p.Start
		}
		if end := p.Start.Add(p.Dur); end.After(last) {
			last = end
		}
		report.Phases[i] = PhaseReport{Name: p.Name, DurationMS: durationToMillis(p.Dur), Note: p.Note}
	}
	report.TotalMS = durationToMillis(last.Sub(first))
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
