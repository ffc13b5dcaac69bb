package gfx

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"golang.org/x/image/draw"
)

// DefaultSpread is the half width of the anti-aliasing ramp around the
// outline, in field values (0…255).
const DefaultSpread = 24

// FieldImage wraps the bitmap of a distance field as an image. Rows are
// top-down. The bitmap is shared, not copied.
func FieldImage(sdf font.Sdf) *image.Gray {
	if sdf.IsNull() || len(sdf.Bitmap) < sdf.Width*sdf.Height {
		return nil
	}
	return &image.Gray{
		Pix:    sdf.Bitmap,
		Stride: sdf.Width,
		Rect:   image.Rect(0, 0, sdf.Width, sdf.Height),
	}
}

// Coverage maps a field value to ink coverage in [0,1]. Values above the
// outline value 128 are inside. spread is the half width of the ramp
// between no ink and full ink.
func Coverage(v byte, spread float64) float64 {
	if spread <= 0 {
		if v >= 128 {
			return 1
		}
		return 0
	}
	t := (float64(v) - 128 + spread) / (2 * spread)
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t) // smoothstep
}

// Compose rasterizes glyph images into one picture, framed by pad pixels.
// The picture covers the union of the placement rectangles; the top left
// corner of the union maps to (pad, pad). Compose returns nil if there is
// nothing to draw.
func Compose(images []font.GlyphImage, pad int, spread float64) *image.Gray {
	var union font.RectF
	for _, img := range images {
		if !img.IsNull() {
			union = union.Unite(img.Rect)
		}
	}
	if !union.IsValid() {
		return nil
	}
	w := int(math.Ceil(union.W)) + 2*pad
	h := int(math.Ceil(union.H)) + 2*pad
	pic := image.NewGray(image.Rect(0, 0, w, h))
	for i := range pic.Pix {
		pic.Pix[i] = 0xff
	}
	for _, img := range images {
		field := FieldImage(img.Sdf)
		if field == nil {
			continue
		}
		r := img.Rect.Translated(float64(pad)-union.X, float64(pad)-union.Y)
		dst := image.Rect(
			int(math.Round(r.X)), int(math.Round(r.Y)),
			int(math.Round(r.Right())), int(math.Round(r.Bottom())),
		)
		if dst.Empty() {
			tracer().Debugf("glyph image too small to draw: %v", img.Rect)
			continue
		}
		scaled := image.NewGray(image.Rect(0, 0, dst.Dx(), dst.Dy()))
		draw.BiLinear.Scale(scaled, scaled.Bounds(), field, field.Bounds(), draw.Src, nil)
		for y := 0; y < dst.Dy(); y++ {
			for x := 0; x < dst.Dx(); x++ {
				p := image.Pt(dst.Min.X+x, dst.Min.Y+y)
				if !p.In(pic.Rect) {
					continue
				}
				ink := byte(math.Round(255 * (1 - Coverage(scaled.GrayAt(x, y).Y, spread))))
				if o := pic.PixOffset(p.X, p.Y); ink < pic.Pix[o] {
					pic.Pix[o] = ink
				}
			}
		}
	}
	return pic
}

// WritePNG encodes a picture as PNG.
func WritePNG(w io.Writer, pic image.Image) error {
	if g, ok := pic.(*image.Gray); pic == nil || ok && g == nil {
		return core.Error(core.EINVALID, "no picture to write")
	}
	if err := png.Encode(w, pic); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode picture")
	}
	return nil
}
