package xvg

import "errors"

var (
	// ErrStride indicates a row stride smaller than the row's pixels.
	ErrStride = errors.New("stride too small for width")

	// ErrShortBuffer indicates pixel memory too small for the
	// dimensions and stride it was supplied with.
	ErrShortBuffer = errors.New("pixel buffer too short")

	// ErrInvalidBitmap is returned by operations that require a
	// bitmap with backing memory.
	ErrInvalidBitmap = errors.New("bitmap has no pixel data")

	// ErrEmptyDocument is returned when rendering a document that has
	// no intrinsic size.
	ErrEmptyDocument = errors.New("document has no size")
)
