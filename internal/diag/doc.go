// Package diag defines the diagnostic model shared by the rule sets, the
// driver and every output format.
//
// # Purpose
//
//   - Provide small, serialisable records describing heuristic findings in a
//     text buffer (a line, an optional column, a message, a severity and an
//     optional rule identifier).
//   - Offer light-weight utilities (Reporter, Bag, ReportBuilder) so rule sets
//     emit diagnostics without knowing where they are stored.
//
// # Scope
//
// Package diag does not perform IO or terminal rendering. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Line – 1-based line number; 0 means the finding is buffer-scoped.
//   - Column – 1-based column; 0 means absent.
//   - Message – human oriented text; keep it short and actionable.
//   - Severity – tri-level enum (Info, Warning, Error) ordered by importance.
//   - Rule – stable kebab-case identifier such as "missing-semicolon".
//
// # Emitting diagnostics
//
// Rule sets call ReportError/ReportWarning/ReportInfo to obtain a
// ReportBuilder, optionally chain At/AtLine, and finish with Emit. Reporter
// implementations decide what happens next: BagReporter collects into a Bag
// and FilterReporter drops disabled rules.
//
// The order in which diagnostics reach a Bag is the order rules ran. Bag.Sort
// exists for display and is stable.
package diag
