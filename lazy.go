package pry

// Lazy is the capability Get uses to detect deferred values. Any stored
// value implementing Lazy is invoked on every read and the result of Call
// is returned instead of the wrapper. Results are never cached, so two
// consecutive reads of a non-deterministic computation may differ.
type Lazy interface {
	Call() any
}

// LazyValue adapts a zero-argument function into a Lazy.
type LazyValue func() any

// Call invokes the wrapped function.
func (f LazyValue) Call() any { return f() }

// resolveLazy unwraps a stored value if it carries the Lazy capability.
func resolveLazy(v any) any {
	if l, ok := v.(Lazy); ok {
		return l.Call()
	}
	return v
}
