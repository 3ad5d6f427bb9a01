package resolver

import "sync"

// Lazy memoizes a factory's first successful result: the factory runs at
// most once, and every caller — including concurrent first callers — sees
// the same instance.
//
// A panicking factory is NOT memoized: the panic propagates to the caller
// and the next access retries the factory. sync.Once would mark the slot
// done even on panic, which is why the flag is managed by hand.
type Lazy struct {
	mu      sync.Mutex
	done    bool
	value   any
	factory Factory
}

// NewLazy wraps factory. Panics if factory is nil.
func NewLazy(factory Factory) *Lazy {
	if factory == nil {
		panic("resolver: NewLazy requires a non-nil factory")
	}
	return &Lazy{factory: factory}
}

// Value computes the value on first call and returns the cached instance on
// every later call.
func (l *Lazy) Value() any {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		l.value = l.factory()
		l.done = true
		l.factory = nil // release whatever the factory captured
	}
	return l.value
}
