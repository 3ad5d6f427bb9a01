package locator

import (
	"sync"

	"github.com/km-arc/go-locator/resolver"
)

// notificationHub delivers "the active resolver changed" callbacks, with a
// reference-counted suppression counter for bulk operations.
type notificationHub struct {
	mu        sync.Mutex
	callbacks []*changedCallback
	suppress  int
	// deferred is set when a change happens while suppressed; the hub fires
	// once to reconcile when the last suppression scope closes.
	deferred bool
}

type changedCallback struct {
	fn func()
}

// RegisterResolverCallbackChanged subscribes cb to resolver-identity changes
// on l and invokes it synchronously once right now, so a late subscriber
// still learns the current state. The returned Disposable unsubscribes.
func (l *Locator) RegisterResolverCallbackChanged(cb func()) resolver.Disposable {
	if cb == nil {
		panic("locator: RegisterResolverCallbackChanged requires a non-nil callback")
	}
	h := &l.notifications

	entry := &changedCallback{fn: cb}
	h.mu.Lock()
	h.callbacks = append(h.callbacks, entry)
	h.mu.Unlock()

	cb()

	return resolver.NewDisposable(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, e := range h.callbacks {
			if e == entry {
				h.callbacks = append(h.callbacks[:i:i], h.callbacks[i+1:]...)
				break
			}
		}
	})
}

// SuppressResolverCallbackChangedNotifications opens a suppression scope:
// change callbacks do not fire until the scope (and any nested scopes) are
// disposed. If a change happened while suppressed, the hub fires once on
// resume to reconcile. Disposing a scope twice is harmless.
func (l *Locator) SuppressResolverCallbackChangedNotifications() resolver.Disposable {
	h := &l.notifications

	h.mu.Lock()
	h.suppress++
	h.mu.Unlock()

	return resolver.NewDisposable(func() {
		h.mu.Lock()
		h.suppress--
		fire := h.suppress == 0 && h.deferred
		if fire {
			h.deferred = false
		}
		snapshot := h.snapshotLocked()
		h.mu.Unlock()

		if fire {
			for _, e := range snapshot {
				e.fn()
			}
		}
	})
}

// AreResolverCallbackChangedNotificationsEnabled reports whether change
// callbacks currently fire, i.e. no suppression scope is open.
func (l *Locator) AreResolverCallbackChangedNotificationsEnabled() bool {
	h := &l.notifications
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.suppress == 0
}

// resolverChanged fires every subscriber, or records the change for the
// reconciling fire when suppressed.
func (h *notificationHub) resolverChanged() {
	h.mu.Lock()
	if h.suppress > 0 {
		h.deferred = true
		h.mu.Unlock()
		return
	}
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	for _, e := range snapshot {
		e.fn()
	}
}

func (h *notificationHub) snapshotLocked() []*changedCallback {
	out := make([]*changedCallback, len(h.callbacks))
	copy(out, h.callbacks)
	return out
}

// ── Package-level shim over Default ──────────────────────────────────────────

// RegisterResolverCallbackChanged subscribes cb on Default.
func RegisterResolverCallbackChanged(cb func()) resolver.Disposable {
	return Default.RegisterResolverCallbackChanged(cb)
}

// SuppressResolverCallbackChangedNotifications opens a scope on Default.
func SuppressResolverCallbackChangedNotifications() resolver.Disposable {
	return Default.SuppressResolverCallbackChangedNotifications()
}

// AreResolverCallbackChangedNotificationsEnabled reports Default's state.
func AreResolverCallbackChangedNotificationsEnabled() bool {
	return Default.AreResolverCallbackChangedNotificationsEnabled()
}
