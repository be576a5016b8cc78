// Package xvg provides the pixel buffer and engine contract that sit
// between a vector graphics renderer and the code that consumes its
// output.
//
// A [Bitmap] is a grid of 32-bit pixels that either owns its memory or
// borrows memory supplied by the caller. Renderers draw into a Bitmap
// in the premultiplied [format.ARGB32Premul] layout; callers convert
// the result with [Bitmap.Convert] or [Bitmap.ConvertToRGBA] before
// handing it to code that expects another layout.
//
// Parsing and rasterizing documents is the job of an external engine,
// described here by the [Document] interface. Geometry lives in the
// [geom] subpackage and pixel layouts in [format].
//
// Nothing in this package is safe for concurrent mutation. A Bitmap
// that is shared between goroutines must be synchronized by the
// caller.
package xvg
