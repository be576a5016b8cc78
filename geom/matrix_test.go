package geom_test

import (
	"errors"
	"math"
	"testing"

	"deedles.dev/xvg/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var sampleMatrices = []struct {
	name string
	m    geom.Matrix
}{
	{"identity", geom.Identity()},
	{"translation", geom.Translated(10, -20)},
	{"scale", geom.Scaled(3, 0.5)},
	{"rotation", geom.Rotated(30)},
	{"shear", geom.Sheared(15, -10)},
	{"general", geom.Mat(2, 1, -1, 3, 7, -4)},
	{"zero", geom.Matrix{}},
}

func TestMatrixIdentityLaws(t *testing.T) {
	for _, tt := range sampleMatrices {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.m, tt.m.Mul(geom.Identity()))
			require.Equal(t, tt.m, geom.Identity().Mul(tt.m))
		})
	}
}

func TestMatrixInverse(t *testing.T) {
	for _, tt := range sampleMatrices {
		if tt.m.Det() == 0 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverted()
			require.NoError(t, err)
			if diff := cmp.Diff(geom.Identity(), tt.m.Mul(inv), approx); diff != "" {
				t.Errorf("m × m⁻¹ (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(geom.Identity(), inv.Mul(tt.m), approx); diff != "" {
				t.Errorf("m⁻¹ × m (-want +got):\n%s", diff)
			}

			m := tt.m
			require.NoError(t, m.Invert())
			require.Equal(t, inv, m)
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    geom.Matrix
	}{
		{"zero", geom.Matrix{}},
		{"rank one", geom.Mat(1, 0, 0, 0, 0, 0)},
		{"collapsed y", geom.Scaled(1, 0)},
		{"parallel columns", geom.Mat(2, 4, 1, 2, 5, 5)},
		{"near singular", geom.Mat(1, 1, 1, 1+1e-15, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverted()
			require.ErrorIs(t, err, geom.ErrSingular)
			require.Equal(t, tt.m, inv)

			m := tt.m
			err = m.Invert()
			require.True(t, errors.Is(err, geom.ErrSingular))
			require.Equal(t, tt.m, m)

			for _, v := range []float64{m.A, m.B, m.C, m.D, m.E, m.F} {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			}
		})
	}
}

func TestMatrixInvertTinyScale(t *testing.T) {
	m := geom.Scaled(1e-7, 1e-7)
	require.NoError(t, m.Invert())
	if diff := cmp.Diff(geom.Scaled(1e7, 1e7), m, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatrixRotationRoundTrip(t *testing.T) {
	p := geom.Pt(3.5, -7.25)
	for _, angle := range []float64{0, 45, 90, 180, 359} {
		m := geom.Rotated(angle)
		m.Rotate(-angle)
		got := m.Apply(p)
		require.InDelta(t, p.X, got.X, 1e-9, "angle %v", angle)
		require.InDelta(t, p.Y, got.Y, 1e-9, "angle %v", angle)

		back := geom.Rotated(-angle).Apply(geom.Rotated(angle).Apply(p))
		require.InDelta(t, p.X, back.X, 1e-9, "angle %v", angle)
		require.InDelta(t, p.Y, back.Y, 1e-9, "angle %v", angle)
	}
}

func TestMatrixRotateDirection(t *testing.T) {
	got := geom.Rotated(90).Apply(geom.Pt(1, 0))
	if diff := cmp.Diff(geom.Pt(0, 1), got, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatrixRotateAround(t *testing.T) {
	m := geom.RotatedAround(90, 5, 5)
	if diff := cmp.Diff(geom.Pt(5, 5), m.Apply(geom.Pt(5, 5)), approx); diff != "" {
		t.Errorf("pivot moved (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Pt(5, 10), m.Apply(geom.Pt(10, 5)), approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	manual := geom.Identity()
	manual.Translate(5, 5).Rotate(90).Translate(-5, -5)
	require.Equal(t, manual, m)
}

func TestMatrixCompositionOrder(t *testing.T) {
	p := geom.Pt(1, 1)

	post := geom.Translated(10, 0)
	post.Multiply(geom.Scaled(2, 2))
	require.Equal(t, geom.Pt(12, 2), post.Apply(p), "scale applies first")

	post2 := geom.Translated(10, 0)
	post2.Postmultiply(geom.Scaled(2, 2))
	require.Equal(t, post, post2)

	pre := geom.Translated(10, 0)
	pre.Premultiply(geom.Scaled(2, 2))
	require.Equal(t, geom.Pt(22, 2), pre.Apply(p), "translation applies first")
}

func TestMatrixMutatorsPostCompose(t *testing.T) {
	base := geom.Mat(2, 1, -1, 3, 7, -4)
	tests := []struct {
		name string
		mut  func(*geom.Matrix)
		op   geom.Matrix
	}{
		{"translate", func(m *geom.Matrix) { m.Translate(3, 4) }, geom.Translated(3, 4)},
		{"scale", func(m *geom.Matrix) { m.Scale(2, -1) }, geom.Scaled(2, -1)},
		{"rotate", func(m *geom.Matrix) { m.Rotate(33) }, geom.Rotated(33)},
		{"rotate around", func(m *geom.Matrix) { m.RotateAround(33, 1, 2) }, geom.RotatedAround(33, 1, 2)},
		{"shear", func(m *geom.Matrix) { m.Shear(10, 20) }, geom.Sheared(10, 20)},
		{"transform", func(m *geom.Matrix) { m.Transform(1, 2, 3, 4, 5, 6) }, geom.Mat(1, 2, 3, 4, 5, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mut(&m)
			if diff := cmp.Diff(base.Mul(tt.op), m, approx); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixSetIdentity(t *testing.T) {
	m := geom.Mat(2, 1, -1, 3, 7, -4)
	m.SetIdentity()
	require.True(t, m.IsIdentity())
}

func TestMatrixShear(t *testing.T) {
	got := geom.Sheared(45, 0).Apply(geom.Pt(0, 1))
	if diff := cmp.Diff(geom.Pt(1, 1), got, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatrixAff3(t *testing.T) {
	m := geom.Mat(2, 1, -1, 3, 7, -4)
	a := m.Aff3()
	require.Equal(t, m, geom.FromAff3(a))

	p := geom.Pt(5, 6)
	want := m.Apply(p)
	require.Equal(t, want.X, a[0]*p.X+a[1]*p.Y+a[2])
	require.Equal(t, want.Y, a[3]*p.X+a[4]*p.Y+a[5])
}

func TestMatrixValues(t *testing.T) {
	a, b, c, d, e, f := geom.Mat(1, 2, 3, 4, 5, 6).Values()
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, []float64{a, b, c, d, e, f})
}

func BenchmarkMatrixMul(b *testing.B) {
	m := geom.Rotated(30)
	n := geom.Translated(4, 5)
	for b.Loop() {
		m = m.Mul(n)
	}
}
