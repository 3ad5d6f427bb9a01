package container_test

import (
	"testing"

	"github.com/km-arc/go-locator/container"
)

type service struct{ id int }

// ── Bindings ─────────────────────────────────────────────────────────────────

func TestBind_TransientBuildsANewInstanceEachMake(t *testing.T) {
	c := container.New()
	next := 0
	c.Bind("svc", func(*container.Container) any {
		next++
		return &service{id: next}
	})

	first := c.Make("svc").(*service)
	second := c.Make("svc").(*service)
	if first == second {
		t.Error("transient binding should build a fresh instance per Make")
	}
}

func TestSingleton_CachedAfterFirstResolution(t *testing.T) {
	c := container.New()
	calls := 0
	c.Singleton("svc", func(*container.Container) any {
		calls++
		return &service{}
	})

	first := c.Make("svc")
	second := c.Make("svc")
	if calls != 1 {
		t.Errorf("singleton factory ran %d times, want 1", calls)
	}
	if first != second {
		t.Error("singleton should resolve to the cached instance")
	}
}

func TestInstance_PreBuiltValue(t *testing.T) {
	c := container.New()
	svc := &service{id: 7}
	c.Instance("svc", svc)

	if c.Make("svc") != svc {
		t.Error("Instance should hand back the registered value")
	}
	if !c.Resolved("svc") {
		t.Error("an instance counts as resolved")
	}
}

func TestAlias_ResolvesThroughCanonicalKey(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{})
	c.Alias("svc", "service")

	if c.Make("service") != c.Make("svc") {
		t.Error("alias should resolve to the canonical binding")
	}
}

func TestAlias_SelfAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("aliasing an abstract to itself should panic")
		}
	}()
	container.New().Alias("svc", "svc")
}

func TestMake_UnknownAbstractPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Make on an unknown abstract should panic")
		}
	}()
	container.New().Make("ghost")
}

// ── Tags ─────────────────────────────────────────────────────────────────────

func TestTagged_ResolvesGroupInTagOrder(t *testing.T) {
	c := container.New()
	c.Instance("a", &service{id: 1})
	c.Instance("b", &service{id: 2})
	c.Tag([]string{"a", "b"}, "group")

	got := c.Tagged("group")
	if len(got) != 2 {
		t.Fatalf("got %d tagged services, want 2", len(got))
	}
	if got[0].(*service).id != 1 || got[1].(*service).id != 2 {
		t.Error("tagged services should come back in tag order")
	}
}

// ── Extend ───────────────────────────────────────────────────────────────────

func TestExtend_DecoratesResolvedInstances(t *testing.T) {
	c := container.New()
	c.Bind("svc", func(*container.Container) any { return &service{id: 1} })
	c.Extend("svc", func(instance any, _ *container.Container) any {
		return &service{id: instance.(*service).id + 10}
	})

	if got := c.Make("svc").(*service).id; got != 11 {
		t.Errorf("got id %d, want the extender applied (11)", got)
	}
}

func TestExtend_ReWrapsAResolvedSingleton(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{id: 1})
	c.Extend("svc", func(instance any, _ *container.Container) any {
		return &service{id: instance.(*service).id + 10}
	})

	if got := c.Make("svc").(*service).id; got != 11 {
		t.Errorf("got id %d, want the live singleton re-wrapped (11)", got)
	}
}

// ── Contextual bindings ──────────────────────────────────────────────────────

func TestContextual_WhenNeedsGive(t *testing.T) {
	c := container.New()
	c.Instance("dep", &service{id: 1})
	c.When("consumer").Needs("dep").GiveValue(&service{id: 99})
	c.Bind("consumer", func(c *container.Container) any {
		return c.Make("dep")
	})

	got := c.Make("consumer").(*service)
	if got.id != 99 {
		t.Errorf("got id %d, want the contextual value (99)", got.id)
	}
	// Outside the consumer's build, the plain binding still wins.
	if c.Make("dep").(*service).id != 1 {
		t.Error("contextual binding should not leak into direct resolution")
	}
}

// ── Callbacks ────────────────────────────────────────────────────────────────

func TestRebinding_FiresWhenInstanceReplaced(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{id: 1})

	var rebound any
	c.Rebinding("svc", func(instance any) { rebound = instance })

	c.Instance("svc", &service{id: 2})
	if rebound == nil || rebound.(*service).id != 2 {
		t.Error("rebinding callback should see the replacement instance")
	}
}

func TestAfterResolving_FiresPerResolution(t *testing.T) {
	c := container.New()
	c.Bind("svc", func(*container.Container) any { return &service{} })

	var seen []string
	c.AfterResolving(func(abstract string, _ any) { seen = append(seen, abstract) })

	c.Make("svc")
	c.Make("svc")
	if len(seen) != 2 {
		t.Errorf("got %d after-resolving calls, want 2", len(seen))
	}
}

// ── Housekeeping ─────────────────────────────────────────────────────────────

func TestForget_RemovesBindingAndInstance(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{})
	c.Forget("svc")

	if c.Bound("svc") {
		t.Error("Forget should remove the registration")
	}
}

func TestFlush_ResetsEverything(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{})
	c.Tag([]string{"svc"}, "group")
	c.Flush()

	if c.Bound("svc") {
		t.Error("Flush should drop all bindings")
	}
	if len(c.Tagged("group")) != 0 {
		t.Error("Flush should drop tags")
	}
}

// ── Generics helper ──────────────────────────────────────────────────────────

func TestResolve_TypedResolution(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{id: 3})

	got := container.Resolve[*service](c, "svc")
	if got.id != 3 {
		t.Errorf("got id %d, want 3", got.id)
	}
}

func TestResolve_WrongTypePanics(t *testing.T) {
	c := container.New()
	c.Instance("svc", "not a service")

	defer func() {
		if recover() == nil {
			t.Error("Resolve with the wrong type should panic")
		}
	}()
	container.Resolve[*service](c, "svc")
}

func TestTryResolve_WrongTypeReportsFalse(t *testing.T) {
	c := container.New()
	c.Instance("svc", "not a service")

	if _, ok := container.TryResolve[*service](c, "svc"); ok {
		t.Error("TryResolve should report ok=false on a type mismatch")
	}
}
