package format

import (
	"encoding/binary"
)

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [ARGB8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf. A fully
	// transparent color is always written as transparent black, and
	// color channels greater than alpha are clamped.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats.
var (
	// ARGB8888 is a 32-bit little-endian ARGB word with straight
	// alpha.
	ARGB8888 formatARGB8888

	// XRGB8888 is ARGB8888 with the alpha byte ignored.
	XRGB8888 formatXRGB8888

	// ARGB32Premul is a 32-bit little-endian ARGB word with
	// premultiplied alpha, so the bytes in memory are B, G, R, A. It
	// is the format renderers draw into.
	ARGB32Premul formatARGB32Premul

	// RGBA8888 is R, G, B, A bytes in that order with straight alpha.
	RGBA8888 formatRGBA8888
)

type formatARGB8888 struct{}

func (formatARGB8888) String() string { return "ARGB8888" }

func (formatARGB8888) Size() int { return 4 }

func (formatARGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = (n >> 24 * 0xFFFF / 0xFF)
	r = (n >> 16 & 0xFF) * a / 0xFF
	g = (n >> 8 & 0xFF) * a / 0xFF
	b = (n & 0xFF) * a / 0xFF
	return
}

func (formatARGB8888) Write(buf []byte, r, g, b, a uint32) {
	if a == 0 {
		binary.LittleEndian.PutUint32(buf, 0)
		return
	}

	r = min(r*0xFF/a, 0xFF) << 16
	g = min(g*0xFF/a, 0xFF) << 8
	b = min(b*0xFF/a, 0xFF)
	a = (a * 0xFF / 0xFFFF) << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

type formatXRGB8888 struct{}

func (formatXRGB8888) String() string { return "XRGB8888" }

func (formatXRGB8888) Size() int { return 4 }

func (formatXRGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = 0xFFFF
	r = (n >> 16 & 0xFF) * 0xFFFF / 0xFF
	g = (n >> 8 & 0xFF) * 0xFFFF / 0xFF
	b = (n & 0xFF) * 0xFFFF / 0xFF
	return
}

func (formatXRGB8888) Write(buf []byte, r, g, b, a uint32) {
	r = (r * 0xFF / 0xFFFF) << 16
	g = (g * 0xFF / 0xFFFF) << 8
	b = b * 0xFF / 0xFFFF
	a = 0xFF << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

type formatARGB32Premul struct{}

func (formatARGB32Premul) String() string { return "ARGB32Premul" }

func (formatARGB32Premul) Size() int { return 4 }

func (formatARGB32Premul) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = (n >> 24) * 0x101
	r = (n >> 16 & 0xFF) * 0x101
	g = (n >> 8 & 0xFF) * 0x101
	b = (n & 0xFF) * 0x101
	return
}

func (formatARGB32Premul) Write(buf []byte, r, g, b, a uint32) {
	r = (r >> 8) << 16
	g = (g >> 8) << 8
	b = b >> 8
	a = (a >> 8) << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

type formatRGBA8888 struct{}

func (formatRGBA8888) String() string { return "RGBA8888" }

func (formatRGBA8888) Size() int { return 4 }

func (formatRGBA8888) Read(data []byte) (r, g, b, a uint32) {
	data = data[:4:4]
	a = uint32(data[3]) * 0xFFFF / 0xFF
	r = uint32(data[0]) * a / 0xFF
	g = uint32(data[1]) * a / 0xFF
	b = uint32(data[2]) * a / 0xFF
	return
}

func (formatRGBA8888) Write(buf []byte, r, g, b, a uint32) {
	buf = buf[:4:4]
	if a == 0 {
		clear(buf)
		return
	}

	buf[0] = uint8(min(r*0xFF/a, 0xFF))
	buf[1] = uint8(min(g*0xFF/a, 0xFF))
	buf[2] = uint8(min(b*0xFF/a, 0xFF))
	buf[3] = uint8(a * 0xFF / 0xFFFF)
}

// Premultiply scales the straight channel value c by the alpha value
// a, rounding to the nearest integer.
func Premultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// Unpremultiply reverses Premultiply, rounding to the nearest integer
// and clamping to 255. The result for a zero alpha is zero.
func Unpremultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	return uint8(min((uint32(c)*255+uint32(a)/2)/uint32(a), 255))
}
