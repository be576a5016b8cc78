package xvg

import (
	"fmt"
	"image"
	"math"

	"deedles.dev/xvg/geom"
)

// maxBitmapSide is the largest width or height RenderToBitmap will
// allocate.
const maxBitmapSide = math.MaxInt32

// Document is a loaded vector graphics document, as provided by a
// rendering engine. Parsing, layout and rasterization all happen
// behind this interface.
type Document interface {
	// Width and Height return the intrinsic size of the document.
	Width() float64
	Height() float64

	// Box returns the bounding box of the document's content in user
	// space, after the document's own matrix has been applied.
	Box() geom.Box

	// Matrix returns the transformation applied to the document's
	// root, and SetMatrix replaces it.
	Matrix() geom.Matrix
	SetMatrix(m geom.Matrix)

	// UpdateLayout recomputes the document's layout after it has
	// been modified.
	UpdateLayout()

	// Render draws the document into dst in the
	// [format.ARGB32Premul] layout, mapping document coordinates
	// through m after the document's own matrix.
	Render(dst *Bitmap, m geom.Matrix)
}

// SetIdentityMatrix resets the root transformation of doc.
func SetIdentityMatrix(doc Document) {
	doc.SetMatrix(geom.Identity())
}

// RenderToBitmap renders doc into a new bitmap of width by height
// pixels that has been cleared to background, stretching the document
// to fill it. If both dimensions are zero, the document's intrinsic
// size, rounded up, is used. If only one is zero, it is derived from
// the other so as to preserve the document's aspect ratio.
//
// The returned bitmap owns its memory and is in the
// [format.ARGB32Premul] layout. If the resulting size cannot be
// allocated, ErrInvalidBitmap is returned and doc is not rendered.
func RenderToBitmap(doc Document, width, height int, background Color, opts ...BitmapOption) (*Bitmap, error) {
	dw, dh := doc.Width(), doc.Height()
	if !(dw > 0) || !(dh > 0) {
		return nil, fmt.Errorf("render %vx%v document: %w", dw, dh, ErrEmptyDocument)
	}

	fw, fh := float64(width), float64(height)
	switch {
	case width <= 0 && height <= 0:
		fw, fh = math.Ceil(dw), math.Ceil(dh)
	case width <= 0:
		fw = math.Ceil(fh * dw / dh)
	case height <= 0:
		fh = math.Ceil(fw * dh / dw)
	}
	if !(fw >= 1 && fw <= maxBitmapSide) || !(fh >= 1 && fh <= maxBitmapSide) {
		return nil, fmt.Errorf("render %vx%v document into %vx%v bitmap: %w", dw, dh, fw, fh, ErrInvalidBitmap)
	}
	width, height = int(fw), int(fh)

	Logger().Debug("render to bitmap",
		"document", geom.Pt(dw, dh),
		"width", width,
		"height", height,
		"background", background,
	)

	bmp := NewBitmapSize(width, height, opts...)
	if !bmp.Valid() {
		return nil, fmt.Errorf("render into %vx%v bitmap: %w", width, height, ErrInvalidBitmap)
	}
	bmp.Clear(background)
	doc.Render(bmp, geom.Stretch(geom.Bx(0, 0, width, height), geom.Bx(0, 0, dw, dh)))
	return bmp, nil
}

// RenderFit renders doc into dst, scaled uniformly to the largest size
// that fits and positioned against edges as with [geom.Fit]. It
// returns the matrix that was used.
func RenderFit(doc Document, dst *Bitmap, edges geom.Edges) (geom.Matrix, error) {
	if !dst.Valid() {
		return geom.Matrix{}, ErrInvalidBitmap
	}
	dw, dh := doc.Width(), doc.Height()
	if !(dw > 0) || !(dh > 0) {
		return geom.Matrix{}, fmt.Errorf("render %vx%v document: %w", dw, dh, ErrEmptyDocument)
	}

	m := geom.Fit(geom.Bx(0, 0, dst.Width(), dst.Height()), geom.Bx(0, 0, dw, dh), edges)
	doc.Render(dst, m)
	return m, nil
}

// ImageDocument is a Document whose content is a raster image. It lets
// code written against Document place and composite plain images with
// the same calls it uses for vector documents.
type ImageDocument struct {
	img    image.Image
	matrix geom.Matrix
}

// NewImageDocument returns a document that renders img with its
// top-left corner at the origin.
func NewImageDocument(img image.Image) *ImageDocument {
	return &ImageDocument{
		img:    img,
		matrix: geom.Identity(),
	}
}

func (d *ImageDocument) Width() float64 { return float64(d.img.Bounds().Dx()) }

func (d *ImageDocument) Height() float64 { return float64(d.img.Bounds().Dy()) }

func (d *ImageDocument) Box() geom.Box {
	return geom.Bx(0, 0, d.Width(), d.Height()).Transformed(d.matrix)
}

func (d *ImageDocument) Matrix() geom.Matrix { return d.matrix }

func (d *ImageDocument) SetMatrix(m geom.Matrix) { d.matrix = m }

// UpdateLayout does nothing. An image has no layout.
func (d *ImageDocument) UpdateLayout() {}

func (d *ImageDocument) Render(dst *Bitmap, m geom.Matrix) {
	b := d.img.Bounds()
	m = m.Mul(d.matrix).Mul(geom.Translated(float64(-b.Min.X), float64(-b.Min.Y)))
	dst.DrawImage(d.img, m)
}
