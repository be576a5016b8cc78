package xvg

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha color packed as 0xRRGGBBAA, the form in
// which colors cross the boundary to and from rendering engines. It
// implements color.Color.
type Color uint32

// Transparent is fully transparent black.
const Transparent Color = 0

// ColorRGBA packs straight-alpha channel values into a Color.
func ColorRGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// ColorOf converts an arbitrary color.Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorRGBA(n.R, n.G, n.B, n.A)
}

// Channels unpacks c into its straight-alpha channel values.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}
