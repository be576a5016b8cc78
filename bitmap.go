package xvg

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"deedles.dev/xvg/format"
)

const bytesPerPixel = 4

// Bitmap is a rectangular grid of 32-bit pixels. Rows are stride bytes
// apart, and stride is never less than width*4.
//
// A Bitmap either owns its memory, allocating it through its
// Allocator, or borrows memory supplied by the caller, which it never
// frees. The zero Bitmap, like one returned by NewBitmap, has no memory
// and is not valid.
type Bitmap struct {
	data   []byte
	width  int
	height int
	stride int
	owned  bool
	alloc  Allocator
}

// NewBitmap returns a Bitmap with no pixel memory. It is not valid
// until it is reset with ResetSize or ResetData.
func NewBitmap(opts ...BitmapOption) *Bitmap {
	o := defaultBitmapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Bitmap{alloc: o.alloc}
}

// NewBitmapSize returns a Bitmap that owns zeroed memory for width by
// height tightly packed pixels.
func NewBitmapSize(width, height int, opts ...BitmapOption) *Bitmap {
	b := NewBitmap(opts...)
	b.ResetSize(width, height)
	return b
}

// NewBitmapData returns a Bitmap that borrows data. The caller must
// keep data valid, and must not use it for anything else, for as long
// as the Bitmap is in use.
func NewBitmapData(data []byte, width, height, stride int, opts ...BitmapOption) (*Bitmap, error) {
	b := NewBitmap(opts...)
	err := b.ResetData(data, width, height, stride)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bitmap) allocator() Allocator {
	if b.alloc == nil {
		b.alloc = HeapAllocator{}
	}
	return b.alloc
}

func (b *Bitmap) release() {
	if b.owned {
		b.allocator().Free(b.data)
	}
	b.data = nil
	b.width, b.height, b.stride = 0, 0, 0
	b.owned = false
}

// ResetSize frees any memory the bitmap owns and replaces it with
// zeroed memory for width by height pixels, with a stride of width*4.
// If either dimension is not positive, or the buffer size would
// overflow an int, the bitmap is left invalid.
func (b *Bitmap) ResetSize(width, height int) {
	b.release()
	if width <= 0 || height <= 0 {
		return
	}
	if width > math.MaxInt/bytesPerPixel || width*bytesPerPixel > math.MaxInt/height {
		Logger().Debug("bitmap too large", "width", width, "height", height)
		return
	}

	stride := width * bytesPerPixel
	b.data = b.allocator().Alloc(stride * height)
	b.width, b.height, b.stride = width, height, stride
	b.owned = true

	Logger().Debug("bitmap allocated", "width", width, "height", height, "bytes", len(b.data))
}

// ResetData frees any memory the bitmap owns and then borrows data for
// width by height pixels with rows stride bytes apart. If the
// arguments are inconsistent, the bitmap is left unchanged and an
// error wrapping ErrStride or ErrShortBuffer is returned. data must not
// be memory that b currently owns.
func (b *Bitmap) ResetData(data []byte, width, height, stride int) error {
	if width > 0 && height > 0 {
		if width > math.MaxInt/bytesPerPixel {
			return fmt.Errorf("width %v: %w", width, ErrShortBuffer)
		}
		if stride < width*bytesPerPixel {
			return fmt.Errorf("stride %v for width %v: %w", stride, width, ErrStride)
		}
		if height > 1 && stride > (math.MaxInt-width*bytesPerPixel)/(height-1) {
			return fmt.Errorf("%vx%v pixels with stride %v: %w", width, height, stride, ErrShortBuffer)
		}
		if need := stride*(height-1) + width*bytesPerPixel; len(data) < need {
			return fmt.Errorf("%v bytes for %vx%v pixels with stride %v, need %v: %w", len(data), width, height, stride, need, ErrShortBuffer)
		}
	}

	b.release()
	if width <= 0 || height <= 0 {
		return nil
	}

	b.data = data
	b.width, b.height, b.stride = width, height, stride

	Logger().Debug("bitmap borrowed", "width", width, "height", height, "stride", stride)
	return nil
}

// Release frees any memory the bitmap owns and leaves it invalid.
// Borrowed memory is dropped without being freed. Releasing an
// invalid bitmap does nothing.
func (b *Bitmap) Release() {
	if b.owned {
		Logger().Debug("bitmap released", "width", b.width, "height", b.height)
	}
	b.release()
}

// Valid reports whether b has pixel memory and positive dimensions.
func (b *Bitmap) Valid() bool {
	return b.data != nil && b.width > 0 && b.height > 0
}

// Owned reports whether b allocated its own memory.
func (b *Bitmap) Owned() bool { return b.owned }

// Data returns the pixel memory of b, or nil if it is invalid.
func (b *Bitmap) Data() []byte { return b.data }

func (b *Bitmap) Width() int { return b.width }

func (b *Bitmap) Height() int { return b.height }

// Stride returns the distance in bytes between the starts of
// consecutive rows.
func (b *Bitmap) Stride() int { return b.stride }

// rows yields the pixel bytes of each row, excluding padding.
func (b *Bitmap) rows() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if !b.Valid() {
			return
		}

		n := b.width * bytesPerPixel
		for y := range b.height {
			start := y * b.stride
			if !yield(b.data[start : start+n : start+n]) {
				return
			}
		}
	}
}

// Pixels yields the four bytes of every pixel in row-major order,
// skipping row padding. Writes to a yielded slice modify the bitmap.
func (b *Bitmap) Pixels() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for row := range b.rows() {
			for px := range slices.Chunk(row, bytesPerPixel) {
				if !yield(px) {
					return
				}
			}
		}
	}
}

// Clear sets every pixel to c, stored premultiplied in the
// [format.ARGB32Premul] layout. Row padding is left untouched. Clear
// does nothing if b is invalid.
func (b *Bitmap) Clear(c Color) {
	r, g, bl, a := c.Channels()
	fill := [bytesPerPixel]byte{
		format.Premultiply(bl, a),
		format.Premultiply(g, a),
		format.Premultiply(r, a),
		a,
	}

	for row := range b.rows() {
		for i := 0; i < len(row); i += bytesPerPixel {
			copy(row[i:i+bytesPerPixel], fill[:])
		}
	}
}

// Convert rewrites every pixel in place from the [format.ARGB32Premul]
// layout, whose bytes are B, G, R, A, to a layout in which the red,
// green, blue, and alpha channels are at byte offsets ri, gi, bi, and
// ai respectively. If unpremultiply is true, the color channels are
// also divided by alpha, with transparent pixels becoming zero.
//
// Convert panics if an offset is outside of [0, 3]. It does nothing if
// b is invalid.
func (b *Bitmap) Convert(ri, gi, bi, ai int, unpremultiply bool) {
	for _, i := range [...]int{ri, gi, bi, ai} {
		if i < 0 || i >= bytesPerPixel {
			panic(fmt.Sprintf("channel offset %v out of range [0, %v]", i, bytesPerPixel-1))
		}
	}

	for row := range b.rows() {
		for i := 0; i < len(row); i += bytesPerPixel {
			px := row[i : i+bytesPerPixel : i+bytesPerPixel]
			bl, g, r, a := px[0], px[1], px[2], px[3]
			if unpremultiply {
				r = format.Unpremultiply(r, a)
				g = format.Unpremultiply(g, a)
				bl = format.Unpremultiply(bl, a)
			}
			px[ri], px[gi], px[bi], px[ai] = r, g, bl, a
		}
	}
}

// ConvertToRGBA converts b from the [format.ARGB32Premul] layout to the
// straight-alpha [format.RGBA8888] layout.
func (b *Bitmap) ConvertToRGBA() {
	b.Convert(0, 1, 2, 3, true)
}

func (b *Bitmap) String() string {
	mode := "borrowed"
	if b.owned {
		mode = "owned"
	}
	return fmt.Sprintf("Bitmap(%dx%d, stride %d, %s)", b.width, b.height, b.stride, mode)
}
