package diag

import "sort"

type Bag struct {
	items []Diagnostic
	// max <= 0 означает без лимита
	max int
}

// NewBag creates a bag that keeps at most max diagnostics; max <= 0 means unlimited.
func NewBag(max int) *Bag {
	capacity := max
	if capacity <= 0 || capacity > 64 {
		capacity = 8
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	return b.Count(SevError)
}

// Count returns how many diagnostics have exactly the given severity.
func (b *Bag) Count(sev Severity) int {
	return CountSeverity(b.items, sev)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort упорядочивает по строке (буферные первыми), затем колонке и
// severity по убыванию. Сортировка стабильная.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return di.Severity > dj.Severity
	})
}

// CountSeverity counts diagnostics of exactly sev.
func CountSeverity(items []Diagnostic, sev Severity) int {
	n := 0
	for i := range items {
		if items[i].Severity == sev {
			n++
		}
	}
	return n
}
