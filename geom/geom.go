// Package geom provides the affine and rectangular geometry used by
// vector graphics renderers: points, axis-aligned boxes, and 2D affine
// transformation matrices.
//
// All types are plain values. None of them are safe for concurrent
// mutation; callers that share a value between goroutines must
// synchronize access themselves.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom constructors accept.
// Values are always stored as float64.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a box.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
