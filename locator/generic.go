package locator

import "github.com/km-arc/go-locator/resolver"

// Generic helpers over Default, mirroring the reflect.Type API without the
// reflection noise at call sites. The optional trailing contract argument is
// the named-registration qualifier; at most one may be given.
//
//	locator.RegisterConstant[logging.Logger](myLogger)
//	log, ok := locator.GetService[logging.Logger]()

func oneContract(contract []string) string {
	switch len(contract) {
	case 0:
		return ""
	case 1:
		return contract[0]
	default:
		panic("locator: at most one contract may be supplied")
	}
}

// GetService resolves the newest T from Default. ok is false when nothing is
// registered — absence is a result, not an error.
func GetService[T any](contract ...string) (value T, ok bool) {
	return GetServiceFrom[T](Default.Current(), contract...)
}

// GetServices resolves every registered T from Default, oldest first.
func GetServices[T any](contract ...string) []T {
	return GetServicesFrom[T](Default.Current(), contract...)
}

// Register registers factory for T on Default.
func Register[T any](factory func() T, contract ...string) {
	if factory == nil {
		panic("locator: Register requires a non-nil factory")
	}
	Default.CurrentMutable().Register(func() any { return factory() }, resolver.TypeOf[T](), oneContract(contract))
}

// RegisterConstant registers a pre-built value for T on Default.
func RegisterConstant[T any](value T, contract ...string) {
	resolver.RegisterConstant(Default.CurrentMutable(), value, resolver.TypeOf[T](), oneContract(contract))
}

// RegisterLazySingleton registers factory for T on Default, memoized so it
// runs at most once.
func RegisterLazySingleton[T any](factory func() T, contract ...string) {
	if factory == nil {
		panic("locator: RegisterLazySingleton requires a non-nil factory")
	}
	resolver.RegisterLazySingleton(Default.CurrentMutable(), func() any { return factory() }, resolver.TypeOf[T](), oneContract(contract))
}

// HasRegistration reports whether Default has a surviving registration for T.
func HasRegistration[T any](contract ...string) bool {
	return Default.CurrentMutable().HasRegistration(resolver.TypeOf[T](), oneContract(contract))
}

// UnregisterCurrent peels the newest registration for T off Default.
func UnregisterCurrent[T any](contract ...string) {
	Default.CurrentMutable().UnregisterCurrent(resolver.TypeOf[T](), oneContract(contract))
}

// UnregisterAll removes every registration for T from Default.
func UnregisterAll[T any](contract ...string) {
	Default.CurrentMutable().UnregisterAll(resolver.TypeOf[T](), oneContract(contract))
}

// ── Explicit-resolver variants ───────────────────────────────────────────────

// GetServiceFrom resolves the newest T from an explicit resolver.
func GetServiceFrom[T any](r resolver.ReadonlyDependencyResolver, contract ...string) (value T, ok bool) {
	raw := r.GetService(resolver.TypeOf[T](), oneContract(contract))
	if raw == nil {
		return value, false
	}
	typed, ok := raw.(T)
	return typed, ok
}

// GetServicesFrom resolves every registered T from an explicit resolver.
func GetServicesFrom[T any](r resolver.ReadonlyDependencyResolver, contract ...string) []T {
	raw := r.GetServices(resolver.TypeOf[T](), oneContract(contract))
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		if typed, ok := v.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
