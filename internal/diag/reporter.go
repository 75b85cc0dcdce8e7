package diag

// Reporter: минимальный контракт получения диагностик от наборов правил.
// Реализации: BagReporter (кладёт в Bag), FilterReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// FilterReporter drops diagnostics whose rule is disabled.
type FilterReporter struct {
	Next     Reporter
	Disabled map[Rule]bool
}

// NewFilterReporter wraps next so that the listed rules are suppressed.
func NewFilterReporter(next Reporter, disabled ...Rule) *FilterReporter {
	m := make(map[Rule]bool, len(disabled))
	for _, r := range disabled {
		m[r] = true
	}
	return &FilterReporter{Next: next, Disabled: m}
}

func (r *FilterReporter) Report(d Diagnostic) {
	if r == nil || r.Next == nil || r.Disabled[d.Rule] {
		return
	}
	r.Next.Report(d)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, rule Rule, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, rule, msg),
	}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, rule Rule, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, rule, msg)
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, rule Rule, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, rule, msg)
}

// ReportInfo is a shortcut for SevInfo diagnostics.
func ReportInfo(r Reporter, rule Rule, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevInfo, rule, msg)
}

// AtLine sets a 1-based line.
func (b *ReportBuilder) AtLine(line int) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Line = line
	return b
}

// At sets a 1-based line and column.
func (b *ReportBuilder) At(line, col int) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Line, b.diag.Column = line, col
	return b
}

// Emit sends diagnostic to underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}
