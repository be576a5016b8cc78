package geom

import "fmt"

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{float64(x), float64(y)}.
func Pt[T Scalar](x, y T) Point {
	return Point{X: float64(x), Y: float64(y)}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates of p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
