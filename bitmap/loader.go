package bitmap

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
)

// ImageLoader is the built-in Loader backed by the standard image codecs
// (PNG and JPEG). Resources are read from an fs.FS supplied at
// construction, typically an embed.FS of the application's assets.
type ImageLoader struct {
	resources fs.FS
}

// NewImageLoader creates a loader. resources may be nil, in which case
// LoadFromResource reports an error for every name.
func NewImageLoader(resources fs.FS) *ImageLoader {
	return &ImageLoader{resources: resources}
}

var _ Loader = (*ImageLoader)(nil)

// Load decodes a PNG or JPEG stream, scaling to the desired dimensions when
// both hints are set.
func (l *ImageLoader) Load(r io.Reader, desiredWidth, desiredHeight int) (Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}
	return &memoryBitmap{img: scaled(img, desiredWidth, desiredHeight)}, nil
}

// LoadFromResource decodes a named resource from the loader's filesystem.
func (l *ImageLoader) LoadFromResource(name string, desiredWidth, desiredHeight int) (Bitmap, error) {
	if l.resources == nil {
		return nil, fmt.Errorf("bitmap: resource %q: no resource filesystem configured", name)
	}
	f, err := l.resources.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bitmap: resource %q: %w", name, err)
	}
	defer f.Close()
	return l.Load(f, desiredWidth, desiredHeight)
}

// Create returns a blank bitmap of the given size.
func (l *ImageLoader) Create(width, height int) Bitmap {
	return &memoryBitmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// scaled resizes img with nearest-neighbor sampling when both hints are
// positive; otherwise the image passes through untouched.
func scaled(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	src := img.Bounds()
	if src.Dx() == w && src.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := src.Min.Y + y*src.Dy()/h
		for x := 0; x < w; x++ {
			sx := src.Min.X + x*src.Dx()/w
			dst.Set(x, y, img.At(sx, sy))
		}
	}
	return dst
}

// ── memoryBitmap ─────────────────────────────────────────────────────────────

type memoryBitmap struct {
	img    image.Image
	closed bool
}

func (b *memoryBitmap) Width() int  { return b.img.Bounds().Dx() }
func (b *memoryBitmap) Height() int { return b.img.Bounds().Dy() }

func (b *memoryBitmap) Save(format Format, quality float64, w io.Writer) error {
	if b.closed {
		return fmt.Errorf("bitmap: save on closed bitmap")
	}
	switch format {
	case Png:
		return png.Encode(w, b.img)
	case Jpeg:
		q := int(quality * 100)
		if q < 1 {
			q = 1
		} else if q > 100 {
			q = 100
		}
		return jpeg.Encode(w, b.img, &jpeg.Options{Quality: q})
	default:
		return fmt.Errorf("bitmap: unsupported format %v", format)
	}
}

// Close marks the bitmap released. Closing twice is harmless.
func (b *memoryBitmap) Close() error {
	b.closed = true
	return nil
}

// Image exposes the underlying image for interop with drawing helpers.
func (b *memoryBitmap) Image() image.Image { return b.img }
