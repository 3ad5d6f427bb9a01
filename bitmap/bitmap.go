// Package bitmap defines the platform-neutral bitmap contract: a loader
// that hands back opaque bitmap handles, found through the locator. The
// host application registers its platform loader explicitly at bootstrap;
// an unconfigured loader is an explicit result, never a panic.
package bitmap

import (
	"errors"
	"io"

	"github.com/km-arc/go-locator/locator"
)

// Format selects the encoding used by Bitmap.Save.
type Format int

const (
	Png Format = iota
	Jpeg
)

func (f Format) String() string {
	switch f {
	case Png:
		return "png"
	case Jpeg:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Bitmap is an opaque platform bitmap handle.
type Bitmap interface {
	Width() int
	Height() int

	// Save encodes the bitmap to w. quality is 0..1 and only meaningful for
	// lossy formats.
	Save(format Format, quality float64, w io.Writer) error

	// Close releases platform resources backing the bitmap.
	Close() error
}

// Loader turns byte streams and named resources into bitmaps.
//
// desiredWidth and desiredHeight are hints: 0 keeps the natural dimension,
// and loaders may ignore hints they cannot honor.
type Loader interface {
	Load(r io.Reader, desiredWidth, desiredHeight int) (Bitmap, error)
	LoadFromResource(name string, desiredWidth, desiredHeight int) (Bitmap, error)
	Create(width, height int) Bitmap
}

// ErrNoLoaderConfigured reports that no Loader has been registered with the
// locator. Callers branch on it with errors.Is.
var ErrNoLoaderConfigured = errors.New("bitmap: no loader registered with the locator")

// CurrentLoader returns the Loader registered with the default locator.
// "Not configured" surfaces as ErrNoLoaderConfigured rather than a panic so
// call sites can treat a missing platform loader as a normal condition.
func CurrentLoader() (Loader, error) {
	if l, ok := locator.GetService[Loader](); ok {
		return l, nil
	}
	return nil, ErrNoLoaderConfigured
}
