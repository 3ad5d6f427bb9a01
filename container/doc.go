// Package container provides a full-featured IoC container and the adapter
// that lets it serve as the locator's active resolver.
//
// # Role
//
// The locator's in-memory resolver is deliberately small: an ordered
// multi-map of factories. Applications that want container features —
// singleton caching, aliases, tags, decoration, contextual bindings — keep
// registering through the resolver contract and swap in a Container behind
// it:
//
//	c := container.New()
//	adapter := container.FromResolver(c, locator.CurrentMutable())
//	locator.SetResolver(adapter) // everything registered so far survives
//
// # Bindings
//
//	// Transient — new instance every Make()
//	c.Bind("mailer", func(c *container.Container) any { return mail.New() })
//
//	// Singleton — created once, reused
//	c.Singleton("cache", func(c *container.Container) any {
//	    return cache.New(container.Resolve[*config.Config](c, "config"))
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("cache", "store")
//
// # Resolving
//
//	raw := c.Make("cache")
//	typed := container.Resolve[*cache.Cache](c, "cache")
//
// # Tags, Extend, contextual bindings
//
//	c.Tag([]string{"cpuReport", "memReport"}, "reports")
//	reports := c.Tagged("reports")
//
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return logging.NewFullLogger(instance.(logging.Logger))
//	})
//
//	c.When("photoImporter").Needs("loader").Give(func(*container.Container) any {
//	    return bitmap.NewImageLoader(assets)
//	})
//
// Make panics for an unknown abstract; the Adapter's GetService keeps the
// resolver contract's "absence is nil" policy by checking its own
// bookkeeping before touching the container.
package container
