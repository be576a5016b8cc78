package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrSingular is returned when inverting a matrix whose determinant
// is zero or too small, relative to its coefficients, to be
// distinguished from zero.
var ErrSingular = errors.New("matrix is not invertible")

// singularEpsilon bounds the relative cancellation in the determinant
// below which a matrix is treated as singular.
const singularEpsilon = 1e-12

// Matrix is a 2D affine transformation. It maps the point (x, y) to
//
//	(A*x + C*y + E, B*x + D*y + F)
//
// which, treating points as column vectors, is the 3x3 matrix
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// The product m × n maps a point through n first and then through m.
// Every mutating method post-composes: m.Translate(tx, ty) sets m to
// m × T(tx, ty), so the new operation applies in the local coordinate
// space established by the operations already in m.
//
// The zero Matrix is the zero map. It is valid but not invertible. Use
// Identity for the identity transformation.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mat returns the matrix with the given coefficients.
func Mat(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translated returns a translation by (tx, ty).
func Translated(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scaled returns a scale by (sx, sy).
func Scaled(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotated returns a rotation by angle degrees about the origin.
func Rotated(angle float64) Matrix {
	s, c := math.Sincos(angle * math.Pi / 180)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// RotatedAround returns a rotation by angle degrees about (cx, cy).
func RotatedAround(angle, cx, cy float64) Matrix {
	m := Identity()
	m.RotateAround(angle, cx, cy)
	return m
}

// Sheared returns a shear by the angles shx and shy, in degrees, along
// the x and y axes respectively.
func Sheared(shx, shy float64) Matrix {
	return Matrix{
		A: 1,
		B: math.Tan(shy * math.Pi / 180),
		C: math.Tan(shx * math.Pi / 180),
		D: 1,
	}
}

// FromAff3 converts an x/image affine matrix.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], C: a[1], E: a[2], B: a[3], D: a[4], F: a[5]}
}

// Aff3 returns m in the row-major layout used by
// golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

// Values returns the six coefficients of m.
func (m Matrix) Values() (a, b, c, d, e, f float64) {
	return m.A, m.B, m.C, m.D, m.E, m.F
}

// Mul returns the product m × n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Multiply sets m to m × n. It is the same as Postmultiply.
func (m *Matrix) Multiply(n Matrix) *Matrix {
	*m = m.Mul(n)
	return m
}

// Postmultiply sets m to m × n, so that n is applied to points before
// m.
func (m *Matrix) Postmultiply(n Matrix) *Matrix {
	*m = m.Mul(n)
	return m
}

// Premultiply sets m to n × m, so that n is applied to points after
// m.
func (m *Matrix) Premultiply(n Matrix) *Matrix {
	*m = n.Mul(*m)
	return m
}

func (m *Matrix) Translate(tx, ty float64) *Matrix {
	return m.Multiply(Translated(tx, ty))
}

func (m *Matrix) Scale(sx, sy float64) *Matrix {
	return m.Multiply(Scaled(sx, sy))
}

// Rotate post-composes a rotation by angle degrees about the origin.
func (m *Matrix) Rotate(angle float64) *Matrix {
	return m.Multiply(Rotated(angle))
}

// RotateAround post-composes a rotation by angle degrees about the
// point (cx, cy). It is equivalent to
//
//	m.Translate(cx, cy).Rotate(angle).Translate(-cx, -cy)
func (m *Matrix) RotateAround(angle, cx, cy float64) *Matrix {
	return m.Translate(cx, cy).Rotate(angle).Translate(-cx, -cy)
}

// Shear post-composes a shear by the angles shx and shy, in degrees.
func (m *Matrix) Shear(shx, shy float64) *Matrix {
	return m.Multiply(Sheared(shx, shy))
}

// Transform post-composes the matrix with the given coefficients.
func (m *Matrix) Transform(a, b, c, d, e, f float64) *Matrix {
	return m.Multiply(Mat(a, b, c, d, e, f))
}

// SetIdentity discards the state of m and sets it to the identity.
func (m *Matrix) SetIdentity() *Matrix {
	*m = Identity()
	return m
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverted returns the inverse of m. If m is not invertible, it
// returns m unchanged and ErrSingular.
func (m Matrix) Inverted() (Matrix, error) {
	det := m.Det()
	if math.Abs(det) <= singularEpsilon*(math.Abs(m.A*m.D)+math.Abs(m.B*m.C)) {
		return m, ErrSingular
	}

	inv := Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}
	if !inv.finite() {
		return m, ErrSingular
	}
	return inv, nil
}

// Invert sets m to its inverse. If m is not invertible, m is left
// unchanged and ErrSingular is returned.
func (m *Matrix) Invert() error {
	inv, err := m.Inverted()
	if err != nil {
		return fmt.Errorf("invert %v: %w", *m, err)
	}
	*m = inv
	return nil
}

func (m Matrix) finite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Apply maps p through m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector maps p through the linear part of m, ignoring
// translation.
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
