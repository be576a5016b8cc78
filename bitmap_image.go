package xvg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"deedles.dev/xvg/format"
	"deedles.dev/xvg/geom"
	"golang.org/x/image/draw"
)

// Image returns a view of b as a draw.Image in the
// [format.ARGB32Premul] layout. The view shares b's memory, so it
// must not be used after b is reset or released, or after b has been
// converted to another layout.
func (b *Bitmap) Image() *format.Image {
	if !b.Valid() {
		return &format.Image{Format: format.ARGB32Premul}
	}

	return &format.Image{
		Format: format.ARGB32Premul,
		Rect:   image.Rect(0, 0, b.width, b.height),
		Stride: b.stride,
		Pix:    b.data,
	}
}

// DrawImage composites src over b after mapping it through m, which
// takes src's coordinate space to b's. Samples are filtered
// bilinearly. DrawImage does nothing if b is invalid.
func (b *Bitmap) DrawImage(src image.Image, m geom.Matrix) {
	if !b.Valid() {
		return
	}
	draw.BiLinear.Transform(b.Image(), m.Aff3(), src, src.Bounds(), draw.Over, nil)
}

// NRGBA returns a straight-alpha copy of b, which must be in the
// [format.ARGB32Premul] layout. b itself is not modified.
func (b *Bitmap) NRGBA() (*image.NRGBA, error) {
	if !b.Valid() {
		return nil, ErrInvalidBitmap
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	var i int
	for px := range b.Pixels() {
		bl, g, r, a := px[0], px[1], px[2], px[3]
		img.Pix[i+0] = format.Unpremultiply(r, a)
		img.Pix[i+1] = format.Unpremultiply(g, a)
		img.Pix[i+2] = format.Unpremultiply(bl, a)
		img.Pix[i+3] = a
		i += bytesPerPixel
	}
	return img, nil
}

// WritePNG encodes b as a PNG image. b must be in the
// [format.ARGB32Premul] layout.
func (b *Bitmap) WritePNG(w io.Writer) error {
	img, err := b.NRGBA()
	if err != nil {
		return err
	}
	err = png.Encode(w, img)
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes b to a PNG file at path.
func (b *Bitmap) SavePNG(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	return b.WritePNG(file)
}
