package container_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-locator/container"
	"github.com/km-arc/go-locator/locator"
	"github.com/km-arc/go-locator/resolver"
)

type clock interface{ Now() string }

type fixedClock struct{ at string }

func (c fixedClock) Now() string { return c.at }

var clockType = resolver.TypeOf[clock]()

// ── Resolver contract over the container ─────────────────────────────────────

func TestAdapter_AbsenceIsNil(t *testing.T) {
	a := container.NewAdapter(container.New())

	if got := a.GetService(clockType, ""); got != nil {
		t.Errorf("got %v, want nil for an unregistered key", got)
	}
	if got := a.GetServices(clockType, ""); got == nil || len(got) != 0 {
		t.Errorf("got %v, want an empty non-nil slice", got)
	}
}

func TestAdapter_LastWriteWinsAndPeelsBack(t *testing.T) {
	a := container.NewAdapter(container.New())
	a.Register(func() any { return fixedClock{at: "early"} }, clockType, "")
	a.Register(func() any { return fixedClock{at: "late"} }, clockType, "")

	if got := a.GetService(clockType, "").(clock).Now(); got != "late" {
		t.Errorf("got %q, want the newest binding", got)
	}

	a.UnregisterCurrent(clockType, "")
	if got := a.GetService(clockType, "").(clock).Now(); got != "early" {
		t.Errorf("after peel-back: got %q, want the earlier binding", got)
	}
}

func TestAdapter_GetServicesInsertionOrder(t *testing.T) {
	a := container.NewAdapter(container.New())
	for _, at := range []string{"one", "two", "three"} {
		at := at
		a.Register(func() any { return fixedClock{at: at} }, clockType, "")
	}

	got := a.GetServices(clockType, "")
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %d services, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].(clock).Now() != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].(clock).Now(), want[i])
		}
	}
}

func TestAdapter_UnregisterIdempotentPastEmptiness(t *testing.T) {
	a := container.NewAdapter(container.New())
	a.Register(func() any { return fixedClock{} }, clockType, "")

	for i := 0; i < 4; i++ {
		a.UnregisterCurrent(clockType, "")
	}
	if a.HasRegistration(clockType, "") {
		t.Error("key should be empty")
	}

	a.UnregisterAll(clockType, "")
	a.UnregisterCurrent(clockType, "") // still silent
}

func TestAdapter_ContractIsolation(t *testing.T) {
	a := container.NewAdapter(container.New())
	a.Register(func() any { return fixedClock{at: "utc"} }, clockType, "utc")

	if a.HasRegistration(clockType, "") {
		t.Error("contract registration must not satisfy the no-contract key")
	}
	if !a.HasRegistration(clockType, "utc") {
		t.Error("contract registration should resolve under its contract")
	}
}

func TestAdapter_CallbacksNotSupported(t *testing.T) {
	a := container.NewAdapter(container.New())

	d, err := a.ServiceRegistrationCallback(clockType, "", func() {})
	if !errors.Is(err, resolver.ErrCallbackNotSupported) {
		t.Errorf("got err %v, want ErrCallbackNotSupported", err)
	}
	if d != nil {
		t.Error("no disposable should accompany an unsupported operation")
	}
}

// ── Hand-off ─────────────────────────────────────────────────────────────────

func TestFromResolver_ReplaysExistingRegistrations(t *testing.T) {
	mem := resolver.NewInMemoryResolver()
	mem.Register(func() any { return fixedClock{at: "early"} }, clockType, "")
	mem.Register(func() any { return fixedClock{at: "late"} }, clockType, "")
	resolver.RegisterConstant(mem, fixedClock{at: "named"}, clockType, "named")

	a := container.FromResolver(container.New(), mem)

	if got := a.GetService(clockType, "").(clock).Now(); got != "late" {
		t.Errorf("got %q, want replay to preserve last-write-wins", got)
	}
	if n := len(a.GetServices(clockType, "")); n != 2 {
		t.Errorf("got %d registrations, want both replayed", n)
	}
	if got := a.GetService(clockType, "named").(clock).Now(); got != "named" {
		t.Errorf("got %q, want the contract registration replayed", got)
	}
}

func TestHandOff_LocatorSwapKeepsBootstrapRegistrations(t *testing.T) {
	l := locator.New()
	l.Register(func() any { return fixedClock{at: "bootstrap"} }, clockType, "")

	adapter := container.FromResolver(container.New(), l.CurrentMutable())
	l.SetResolver(adapter)

	got, ok := locator.GetServiceFrom[clock](l.Current())
	if !ok || got.Now() != "bootstrap" {
		t.Errorf("got (%v, %t), want the bootstrap registration through the container", got, ok)
	}
}
