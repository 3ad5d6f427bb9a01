// Package telemetry defines the feature-usage tracking contract consumed
// from APM backends, plus a default tracker that reports through the
// logging contract.
package telemetry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/km-arc/go-locator/locator"
	"github.com/km-arc/go-locator/logging"
)

// ── Contracts ────────────────────────────────────────────────────────────────

// Session is one tracked use of a named feature. Sessions nest: SubFeature
// opens a child session whose ParentReference points back here. Close ends
// the session; it implements io.Closer so callers can defer it.
type Session interface {
	// FeatureName is the name the session was opened with.
	FeatureName() string

	// FeatureReference is the opaque id of this session.
	FeatureReference() uuid.UUID

	// ParentReference is the id of the enclosing session, or uuid.Nil for a
	// root session.
	ParentReference() uuid.UUID

	// SubFeature opens a nested session.
	SubFeature(name string) Session

	// OnException records an error observed during the session.
	OnException(err error)

	Close() error
}

// Tracker opens feature-usage sessions and records view navigation.
type Tracker interface {
	FeatureUsage(name string) Session
	OnViewNavigation(name string)
}

// ── Null backend ─────────────────────────────────────────────────────────────

// NullTracker ignores everything; it is the fallback when no APM backend is
// registered.
type NullTracker struct{}

func (NullTracker) FeatureUsage(name string) Session { return nullSession{name: name} }
func (NullTracker) OnViewNavigation(string)          {}

type nullSession struct{ name string }

func (s nullSession) FeatureName() string       { return s.name }
func (nullSession) FeatureReference() uuid.UUID { return uuid.Nil }
func (nullSession) ParentReference() uuid.UUID  { return uuid.Nil }
func (nullSession) OnException(error)           {}
func (nullSession) Close() error                { return nil }

func (s nullSession) SubFeature(name string) Session {
	return nullSession{name: name}
}

// ── Logging backend ──────────────────────────────────────────────────────────

// LogTracker reports sessions through a logging.Logger. It is the built-in
// stand-in for a real APM backend.
type LogTracker struct {
	log logging.Logger
}

// NewLogTracker creates a tracker writing to log. Panics if log is nil.
func NewLogTracker(log logging.Logger) *LogTracker {
	if log == nil {
		panic("telemetry: NewLogTracker requires a non-nil logger")
	}
	return &LogTracker{log: log}
}

// FeatureUsage opens a root session.
func (t *LogTracker) FeatureUsage(name string) Session {
	return t.open(name, uuid.Nil)
}

// OnViewNavigation records a view change.
func (t *LogTracker) OnViewNavigation(name string) {
	t.log.Write(logging.LevelInfo, fmt.Sprintf("navigated to view %q", name))
}

func (t *LogTracker) open(name string, parent uuid.UUID) *logSession {
	s := &logSession{tracker: t, name: name, ref: uuid.New(), parent: parent}
	t.log.Write(logging.LevelInfo, fmt.Sprintf("feature %q started (ref %s)", name, s.ref))
	return s
}

type logSession struct {
	tracker *LogTracker
	name    string
	ref     uuid.UUID
	parent  uuid.UUID
}

func (s *logSession) FeatureName() string         { return s.name }
func (s *logSession) FeatureReference() uuid.UUID { return s.ref }
func (s *logSession) ParentReference() uuid.UUID  { return s.parent }

func (s *logSession) SubFeature(name string) Session {
	return s.tracker.open(name, s.ref)
}

func (s *logSession) OnException(err error) {
	s.tracker.log.WriteError(logging.LevelError, fmt.Sprintf("feature %q failed", s.name), err)
}

func (s *logSession) Close() error {
	s.tracker.log.Write(logging.LevelInfo, fmt.Sprintf("feature %q finished (ref %s)", s.name, s.ref))
	return nil
}

// ── Locator integration ──────────────────────────────────────────────────────

// Current returns the Tracker registered with the default locator, falling
// back to NullTracker when none is configured.
func Current() Tracker {
	if t, ok := locator.GetService[Tracker](); ok {
		return t
	}
	return NullTracker{}
}
