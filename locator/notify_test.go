package locator_test

import (
	"testing"

	"github.com/km-arc/go-locator/locator"
	"github.com/km-arc/go-locator/resolver"
)

// ── Change callbacks ─────────────────────────────────────────────────────────

func TestRegisterResolverCallbackChanged_FiresOnceAtSubscription(t *testing.T) {
	l := locator.New()

	calls := 0
	d := l.RegisterResolverCallbackChanged(func() { calls++ })
	defer d.Dispose()

	// Late subscribers still learn the current state, even before any swap.
	if calls != 1 {
		t.Errorf("got %d calls at subscription, want exactly 1", calls)
	}
}

func TestRegisterResolverCallbackChanged_FiresOnSwap(t *testing.T) {
	l := locator.New()
	calls := 0
	d := l.RegisterResolverCallbackChanged(func() { calls++ })
	defer d.Dispose()
	calls = 0 // drop the subscription-time call

	l.SetResolver(resolver.NewInMemoryResolver())
	l.SetResolver(resolver.NewInMemoryResolver())

	if calls != 2 {
		t.Errorf("got %d calls, want one per swap (2)", calls)
	}
}

func TestRegisterResolverCallbackChanged_DisposeUnsubscribes(t *testing.T) {
	l := locator.New()
	calls := 0
	d := l.RegisterResolverCallbackChanged(func() { calls++ })
	calls = 0

	d.Dispose()
	d.Dispose() // double-dispose stays silent

	l.SetResolver(resolver.NewInMemoryResolver())
	if calls != 0 {
		t.Errorf("got %d calls after Dispose, want 0", calls)
	}
}

// ── Suppression scopes ───────────────────────────────────────────────────────

func TestSuppression_ScopeDisablesAndRestores(t *testing.T) {
	l := locator.New()

	if !l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Fatal("notifications should start enabled")
	}

	outer := l.SuppressResolverCallbackChangedNotifications()
	if l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("notifications should be disabled inside a scope")
	}

	inner := l.SuppressResolverCallbackChangedNotifications()
	if l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("notifications should stay disabled in a nested scope")
	}

	inner.Dispose()
	if l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("outer scope still open — notifications must remain disabled")
	}

	outer.Dispose()
	if !l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("notifications should be enabled after the last scope closes")
	}
}

func TestSuppression_NoCallbacksDuringScope(t *testing.T) {
	l := locator.New()
	calls := 0
	d := l.RegisterResolverCallbackChanged(func() { calls++ })
	defer d.Dispose()
	calls = 0

	scope := l.SuppressResolverCallbackChangedNotifications()
	l.SetResolver(resolver.NewInMemoryResolver())
	l.SetResolver(resolver.NewInMemoryResolver())

	if calls != 0 {
		t.Errorf("got %d calls during suppression, want 0", calls)
	}

	scope.Dispose()

	// The hub reconciles with a single fire, no matter how many swaps
	// happened while suppressed.
	if calls != 1 {
		t.Errorf("got %d calls after resume, want a single reconciling call", calls)
	}
}

func TestSuppression_NoDeferredFireWhenNothingChanged(t *testing.T) {
	l := locator.New()
	calls := 0
	d := l.RegisterResolverCallbackChanged(func() { calls++ })
	defer d.Dispose()
	calls = 0

	l.SuppressResolverCallbackChangedNotifications().Dispose()

	if calls != 0 {
		t.Errorf("got %d calls, want 0 when no change happened inside the scope", calls)
	}
}

func TestSuppression_ScopeDoubleDisposeKeepsCountBalanced(t *testing.T) {
	l := locator.New()

	scope := l.SuppressResolverCallbackChangedNotifications()
	scope.Dispose()
	scope.Dispose() // must not drive the counter negative

	if !l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}

	// A fresh scope must still disable notifications — the counter did not
	// go negative from the double dispose above.
	next := l.SuppressResolverCallbackChangedNotifications()
	if l.AreResolverCallbackChangedNotificationsEnabled() {
		t.Error("new scope should disable notifications again")
	}
	next.Dispose()
}
