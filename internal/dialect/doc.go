// Package dialect guesses the language of a buffer from its content.
//
// It is used when the file name says nothing (stdin, unknown extensions).
// Evidence collection is cheap and line-local: keyword hits from the token
// stream plus a handful of line patterns. The classifier only sums scores;
// callers decide what confidence is good enough.
package dialect
