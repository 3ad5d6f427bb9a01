package drawing_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/km-arc/go-locator/drawing"
)

// ── Color ────────────────────────────────────────────────────────────────────

func TestFromRGB_IsOpaque(t *testing.T) {
	c := drawing.FromRGB(10, 20, 30)
	if c.A != 0xff {
		t.Errorf("alpha = %d, want fully opaque", c.A)
	}
}

func TestColor_StdlibRoundTrip(t *testing.T) {
	orig := drawing.FromRGBA(10, 20, 30, 0xff)
	back := drawing.FromColor(orig.NRGBA())
	if back != orig {
		t.Errorf("round-trip through color.NRGBA changed the value: %v → %v", orig, back)
	}
}

func TestColor_ImplementsColorColor(t *testing.T) {
	var _ color.Color = drawing.White

	r, g, b, a := drawing.White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = %d,%d,%d,%d, want full 16-bit channels", r, g, b, a)
	}
}

// ── Geometry ─────────────────────────────────────────────────────────────────

func TestRect_StdlibRoundTrip(t *testing.T) {
	r := drawing.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	back := drawing.RectFrom(r.ImageRect())
	if back != r {
		t.Errorf("round-trip through image.Rectangle changed the value: %v → %v", r, back)
	}
}

func TestRect_Contains(t *testing.T) {
	r := drawing.Rect{X: 0, Y: 0, Width: 2, Height: 2}

	if !r.Contains(drawing.Point{X: 1, Y: 1}) {
		t.Error("interior point should be contained")
	}
	if r.Contains(drawing.Point{X: 2, Y: 1}) {
		t.Error("the max edge is exclusive")
	}
}

func TestRect_Empty(t *testing.T) {
	if !(drawing.Rect{Width: 0, Height: 5}).Empty() {
		t.Error("zero width means empty")
	}
	if (drawing.Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 is not empty")
	}
}

func TestPoint_StdlibRoundTrip(t *testing.T) {
	p := drawing.Point{X: 7, Y: -3}
	if drawing.PointFrom(p.ImagePoint()) != p {
		t.Error("round-trip through image.Point changed the value")
	}
	if p.ImagePoint() != (image.Point{X: 7, Y: -3}) {
		t.Error("ImagePoint should preserve coordinates")
	}
}
