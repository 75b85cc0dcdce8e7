// Package trace records what the analysis pipeline is doing.
//
// Enable it from the command line:
//
//	omnicode check --trace=- --trace-level=phase main.js
//
// Tracers are carried through the pipeline by context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "tokenize", 0)
//	defer span.End("")
//
// Levels map onto scopes: phase shows driver and pass boundaries, detail adds
// per-file events, debug adds per-line events.
package trace
