package format

import (
	"image"
	"image/color"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only some bytes of
	// the array are used, dependant on the return value of Format.Size.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format, laid out
// in Pix with rows Stride bytes apart. It implements draw.Image and
// image.RGBA64Image, reading and writing Pix directly.
type Image struct {
	Format Format
	Rect   image.Rectangle

	// Stride is the distance in bytes between vertically adjacent
	// pixels. If it is zero, rows are assumed to be tightly packed.
	Stride int

	Pix []byte
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

// pixel returns the bytes of the pixel at (x, y), or nil if the point
// is outside of the image.
func (img *Image) pixel(x, y int) []byte {
	if !(image.Point{x, y}.In(img.Rect)) {
		return nil
	}

	size := img.Format.Size()
	i := img.PixOffset(x, y)
	return img.Pix[i : i+size : i+size]
}

// PixOffset returns the index of the first byte of the pixel at
// (x, y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	size := img.Format.Size()
	stride := img.Stride
	if stride == 0 {
		stride = size * img.Rect.Dx()
	}

	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (stride * y) + (x * size)
}

func (img *Image) At(x, y int) color.Color {
	c := Color{Format: img.Format}
	if px := img.pixel(x, y); px != nil {
		copy(c.Slice(), px)
	}
	return &c
}

func (img *Image) RGBA64At(x, y int) color.RGBA64 {
	px := img.pixel(x, y)
	if px == nil {
		return color.RGBA64{}
	}

	r, g, b, a := img.Format.Read(px)
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func (img *Image) Set(x, y int, c color.Color) {
	px := img.pixel(x, y)
	if px == nil {
		return
	}

	r, g, b, a := c.RGBA()
	img.Format.Write(px, r, g, b, a)
}

func (img *Image) SetRGBA64(x, y int, c color.RGBA64) {
	px := img.pixel(x, y)
	if px == nil {
		return
	}

	img.Format.Write(px, uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))
}

// Opaque reports whether every pixel of img is fully opaque.
func (img *Image) Opaque() bool {
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBA64At(x, y).A != 0xFFFF {
				return false
			}
		}
	}
	return true
}
