package trace

import "context"

type ctxKey struct{}

// FromContext extracts the Tracer from context, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches a Tracer to context.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

type spanKey struct{}

// CurrentSpan returns the id of the span stored in ctx, 0 if none.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// WithSpan stores the span id so child spans can find their parent.
func WithSpan(ctx context.Context, s *Span) context.Context {
	if s == nil || s.id == 0 {
		return ctx
	}
	return context.WithValue(ctx, spanKey{}, s.id)
}

// Start begins a span parented on whatever span ctx carries.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx))
	return WithSpan(ctx, s), s
}
