package geom

import (
	"fmt"
	"iter"

	"deedles.dev/xiter"
)

// Box is an axis-aligned rectangle with its origin at (X, Y) and an
// extent of (W, H). Nothing requires W or H to be non-negative, so
// code that consumes a Box must not assume that Min is the top-left
// corner.
type Box struct {
	X, Y, W, H float64
}

// Bx is shorthand for Box{float64(x), float64(y), float64(w), float64(h)}.
func Bx[T Scalar](x, y, w, h T) Box {
	return Box{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Values returns the four fields of b.
func (b Box) Values() (x, y, w, h float64) {
	return b.X, b.Y, b.W, b.H
}

// Min returns the origin of b.
func (b Box) Min() Point { return Point{X: b.X, Y: b.Y} }

// Max returns the corner of b opposite its origin.
func (b Box) Max() Point { return Point{X: b.X + b.W, Y: b.Y + b.H} }

func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Empty reports whether b has no positive area.
func (b Box) Empty() bool {
	return !(b.W > 0) || !(b.H > 0)
}

// Corners yields the four corners of b in the order (x, y), (x+w, y),
// (x, y+h), (x+w, y+h).
func (b Box) Corners() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		_ = yield(Point{X: b.X, Y: b.Y}) &&
			yield(Point{X: b.X + b.W, Y: b.Y}) &&
			yield(Point{X: b.X, Y: b.Y + b.H}) &&
			yield(Point{X: b.X + b.W, Y: b.Y + b.H})
	}
}

// Transformed returns the smallest axis-aligned box that contains b
// after each of its corners has been mapped through m. Under a
// rotation or shear the result is larger than b itself. The result
// always has a non-negative extent, except under the identity, which
// returns b exactly as it is.
func (b Box) Transformed(m Matrix) Box {
	if m.IsIdentity() {
		return b
	}

	var corners [4]Point
	for i, p := range xiter.Enumerate(b.Corners()) {
		corners[i] = m.Apply(p)
	}

	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, p := range corners[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Transform sets b to b.Transformed(m).
func (b *Box) Transform(m Matrix) *Box {
	*b = b.Transformed(m)
	return b
}

// Union returns the smallest box containing both b and o. Empty boxes
// are ignored.
func (b Box) Union(o Box) Box {
	switch {
	case b.Empty():
		return o
	case o.Empty():
		return b
	}

	minX, minY := min(b.X, o.X), min(b.Y, o.Y)
	maxX, maxY := max(b.X+b.W, o.X+o.W), max(b.Y+b.H, o.Y+o.H)
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (b Box) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", b.X, b.Y, b.W, b.H)
}
