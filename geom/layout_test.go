package geom_test

import (
	"testing"

	"deedles.dev/xvg/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	outer := geom.Bx(0, 0, 100, 50)
	inner := geom.Bx(0, 0, 20, 10)
	tests := []struct {
		name  string
		edges geom.Edges
		want  geom.Box
	}{
		{"center", geom.EdgeNone, geom.Bx(40, 20, 20, 10)},
		{"top left", geom.EdgeTop | geom.EdgeLeft, geom.Bx(0, 0, 20, 10)},
		{"bottom right", geom.EdgeBottom | geom.EdgeRight, geom.Bx(80, 40, 20, 10)},
		{"stretch vertically", geom.EdgeTop | geom.EdgeBottom, geom.Bx(40, 0, 20, 50)},
		{"stretch horizontally", geom.EdgeLeft | geom.EdgeRight, geom.Bx(0, 20, 100, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, geom.Align(outer, inner, tt.edges))
		})
	}
}

func TestFit(t *testing.T) {
	viewport := geom.Bx(0, 0, 200, 100)
	content := geom.Bx(10, 10, 50, 50)

	m := geom.Fit(viewport, content, geom.EdgeNone)
	got := content.Transformed(m)
	if diff := cmp.Diff(geom.Bx(50, 0, 100, 100), got, approx); diff != "" {
		t.Errorf("centered (-want +got):\n%s", diff)
	}

	m = geom.Fit(viewport, content, geom.EdgeLeft|geom.EdgeRight|geom.EdgeTop)
	got = content.Transformed(m)
	if diff := cmp.Diff(geom.Bx(50, 0, 100, 100), got, approx); diff != "" {
		t.Errorf("opposite edges (-want +got):\n%s", diff)
	}

	m = geom.Fit(viewport, content, geom.EdgeRight)
	got = content.Transformed(m)
	if diff := cmp.Diff(geom.Bx(100, 0, 100, 100), got, approx); diff != "" {
		t.Errorf("right (-want +got):\n%s", diff)
	}
}

func TestStretch(t *testing.T) {
	viewport := geom.Bx(0, 0, 200, 100)
	content := geom.Bx(10, 10, 50, 50)
	got := content.Transformed(geom.Stretch(viewport, content))
	if diff := cmp.Diff(viewport, got, approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	empty := geom.Bx(3, 4, 0, 0)
	require.Equal(t, geom.Translated(-3, -4), geom.Stretch(viewport, empty))
	require.Equal(t, geom.Translated(-3, -4), geom.Fit(viewport, empty, geom.EdgeNone))
}
