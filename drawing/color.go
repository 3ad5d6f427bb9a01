// Package drawing carries the portable color and geometry types shared
// across platform adapters, with conversions to and from the standard
// image types. Pure data translation, no policy.
package drawing

import "image/color"

// Color is a portable 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// FromRGB builds an opaque Color.
func FromRGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// FromRGBA builds a Color with explicit alpha.
func FromRGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// FromColor converts any stdlib color, clamping to 8 bits per channel.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA converts to the stdlib non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color (premultiplied 16-bit channels).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// A few named colors used by default themes.
var (
	Transparent = Color{}
	Black       = FromRGB(0, 0, 0)
	White       = FromRGB(0xff, 0xff, 0xff)
	Red         = FromRGB(0xff, 0, 0)
	Green       = FromRGB(0, 0x80, 0)
	Blue        = FromRGB(0, 0, 0xff)
)
