package resolver

import "reflect"

// ServiceKey identifies a registration slot: a service type plus an
// optional contract string for named registrations.
//
// A nil/empty contract means "no contract"; "" and an omitted contract are
// the same key. Contract comparison is case-sensitive and exact.
type ServiceKey struct {
	Type     reflect.Type
	Contract string
}

// NewServiceKey builds a key for (serviceType, contract).
func NewServiceKey(serviceType reflect.Type, contract string) ServiceKey {
	return ServiceKey{Type: serviceType, Contract: contract}
}

// String returns a human-readable representation, e.g. "logging.Logger" or
// "logging.Logger[file]".
func (k ServiceKey) String() string {
	name := "<nil>"
	if k.Type != nil {
		name = k.Type.String()
	}
	if k.Contract == "" {
		return name
	}
	return name + "[" + k.Contract + "]"
}

// TypeOf returns the reflect.Type for T. Unlike reflect.TypeOf on a value,
// it works for interface types:
//
//	resolver.TypeOf[logging.Logger]()  // the interface type itself
//	resolver.TypeOf[*ViewModel]()      // a concrete pointer type
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
