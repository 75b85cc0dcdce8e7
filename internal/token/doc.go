// Package token defines the highlight token kinds produced by the line scanners.
// Invariants:
//   - Token.Text is a slice of the scanned line (no copies).
//   - Concatenating the Text of a line's tokens reproduces the line exactly.
//   - Kind is one of the twelve values below; there is no invalid/EOF kind.
package token
