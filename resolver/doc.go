// Package resolver provides the mutable dependency resolver at the heart of
// go-locator: an ordered multi-map from (service type, optional contract)
// keys to factory functions, with stack-like unregistration semantics.
//
// # Model
//
// Multiple factories may be registered for the same key. GetService returns
// the newest one (last registration wins), while UnregisterCurrent peels the
// newest off so the previous registration becomes visible again — overriding
// a service does not destroy its history. GetServices returns every
// registration oldest-first for multi-binding consumers.
//
//	r := resolver.NewInMemoryResolver()
//	t := resolver.TypeOf[Greeter]()
//
//	r.Register(func() any { return &English{} }, t, "")
//	r.Register(func() any { return &French{} }, t, "")
//
//	r.GetService(t, "")   // *French — newest wins
//	r.UnregisterCurrent(t, "")
//	r.GetService(t, "")   // *English again
//
// Contracts qualify a key the way named registrations do in other
// containers; "" means "no contract" and registrations under different
// contracts never interfere.
//
// # Error policy
//
// Absence is not an error: GetService returns nil, GetServices returns an
// empty slice, and unregistering a key past emptiness is a silent no-op.
// Programmer errors — a nil factory or nil callback — panic at the call
// site before any state changes.
//
// # Lifetimes
//
// RegisterConstant registers a pre-built instance. RegisterLazySingleton
// wraps the factory in a Lazy so it runs at most once; see Lazy for the
// retry-on-panic policy.
package resolver
