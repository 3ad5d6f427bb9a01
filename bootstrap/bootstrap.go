// Package bootstrap registers the built-in platform defaults — logger,
// telemetry tracker, bitmap loader — into a locator, driven by config.
// Registration is explicit: nothing here scans for plugins or guesses at
// the host platform.
package bootstrap

import (
	"io/fs"

	"github.com/km-arc/go-locator/bitmap"
	"github.com/km-arc/go-locator/config"
	"github.com/km-arc/go-locator/locator"
	"github.com/km-arc/go-locator/logging"
	"github.com/km-arc/go-locator/resolver"
	"github.com/km-arc/go-locator/telemetry"
)

// LoggingProvider registers a lazily built zap-backed logging.Logger at the
// configured minimum level.
type LoggingProvider struct {
	locator.BaseProvider
	Config *config.Config
}

func (p *LoggingProvider) Register(r resolver.MutableDependencyResolver) {
	cfg := p.Config
	resolver.RegisterLazySingleton(r, func() any {
		z, _, err := logging.NewZapLogger()
		if err != nil {
			// A logger must always resolve; losing output beats failing
			// the whole bootstrap.
			return logging.NewFullLogger(logging.NullLogger{})
		}
		full := logging.NewFullLogger(z)
		full.SetLevel(logging.ParseLevel(cfg.Logging.Level))
		return full
	}, resolver.TypeOf[logging.Logger](), "")
}

// TelemetryProvider registers a telemetry.Tracker reporting through the
// registered logger. Skipped entirely when telemetry is disabled.
type TelemetryProvider struct {
	locator.BaseProvider
	Config *config.Config
}

func (p *TelemetryProvider) Register(r resolver.MutableDependencyResolver) {
	if !p.Config.Telemetry.Enabled {
		return
	}
	resolver.RegisterLazySingleton(r, func() any {
		return telemetry.NewLogTracker(logging.Current())
	}, resolver.TypeOf[telemetry.Tracker](), "")
}

// BitmapProvider registers the stdlib-codec bitmap loader. Resources is the
// filesystem LoadFromResource reads from; nil is allowed.
type BitmapProvider struct {
	locator.BaseProvider
	Resources fs.FS
}

func (p *BitmapProvider) Register(r resolver.MutableDependencyResolver) {
	loader := bitmap.NewImageLoader(p.Resources)
	resolver.RegisterConstant(r, bitmap.Loader(loader), resolver.TypeOf[bitmap.Loader](), "")
}

// RegisterPlatformDefaults wires the built-in providers into l under one
// notification-suppression scope, so subscribers see at most one change for
// the whole bulk registration.
func RegisterPlatformDefaults(l *locator.Locator, cfg *config.Config, resources fs.FS) {
	if cfg == nil {
		cfg = config.Load()
	}

	scope := l.SuppressResolverCallbackChangedNotifications()
	defer scope.Dispose()

	reg := locator.NewProviderRegistry(l)
	reg.Register(&LoggingProvider{Config: cfg})
	reg.Register(&TelemetryProvider{Config: cfg})
	reg.Register(&BitmapProvider{Resources: resources})
	reg.Boot()
}
