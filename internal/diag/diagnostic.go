package diag

// Diagnostic is one heuristic finding.
type Diagnostic struct {
	// Line is 1-based; 0 marks a buffer-scoped diagnostic.
	Line int `json:"line,omitempty" msgpack:"l,omitempty"`
	// Column is 1-based; 0 means absent.
	Column   int      `json:"column,omitempty" msgpack:"c,omitempty"`
	Message  string   `json:"message" msgpack:"m"`
	Severity Severity `json:"severity" msgpack:"s"`
	Rule     Rule     `json:"rule,omitempty" msgpack:"r,omitempty"`
}

// New creates a buffer-scoped diagnostic.
func New(sev Severity, rule Rule, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Rule: rule, Message: msg}
}

// HasLine reports whether the diagnostic points at a specific line.
func (d Diagnostic) HasLine() bool { return d.Line > 0 }

// HasColumn reports whether the diagnostic carries a column.
func (d Diagnostic) HasColumn() bool { return d.Column > 0 }

// At returns a copy positioned at line and column.
func (d Diagnostic) At(line, col int) Diagnostic {
	d.Line, d.Column = line, col
	return d
}
