package geom

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the box as necessary if
// opposite edges are specified. Along an axis for which no edge is
// given, inner is centered in outer.
func Align(outer, inner Box, edges Edges) Box {
	c := outer.Center()
	inner.X, inner.Y = c.X-inner.W/2, c.Y-inner.H/2

	switch {
	case edges&EdgeTop != 0:
		inner.Y = outer.Y
		if edges&EdgeBottom != 0 {
			inner.H = outer.H
		}
	case edges&EdgeBottom != 0:
		inner.Y = outer.Y + outer.H - inner.H
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.X = outer.X
		if edges&EdgeRight != 0 {
			inner.W = outer.W
		}
	case edges&EdgeRight != 0:
		inner.X = outer.X + outer.W - inner.W
	}

	return inner
}

// Fit returns the transformation that uniformly scales content to the
// largest size that fits inside viewport and then places it according
// to edges, as with Align. Opposite edges cannot both be honored
// without stretching, so an axis for which both are given is centered
// instead. If content is empty, Fit returns a translation that moves
// content's origin to viewport's.
func Fit(viewport, content Box, edges Edges) Matrix {
	if content.Empty() {
		return Translated(viewport.X-content.X, viewport.Y-content.Y)
	}
	for _, pair := range [...]Edges{EdgeTop | EdgeBottom, EdgeLeft | EdgeRight} {
		if edges&pair == pair {
			edges &^= pair
		}
	}

	s := min(viewport.W/content.W, viewport.H/content.H)
	placed := Align(viewport, Box{W: content.W * s, H: content.H * s}, edges)

	m := Translated(placed.X, placed.Y)
	m.Scale(s, s).Translate(-content.X, -content.Y)
	return m
}

// Stretch returns the transformation that maps content exactly onto
// viewport, scaling each axis independently. If content is empty,
// Stretch returns a translation as Fit does.
func Stretch(viewport, content Box) Matrix {
	if content.Empty() {
		return Translated(viewport.X-content.X, viewport.Y-content.Y)
	}

	m := Translated(viewport.X, viewport.Y)
	m.Scale(viewport.W/content.W, viewport.H/content.H).Translate(-content.X, -content.Y)
	return m
}
