package fonts

import (
	"github.com/npillmayer/notefonts/core/font"
)

// Render renders text as a sequence of distance field images, one per
// visible glyph. Rectangles are in pixels relative to the pen position of
// the first glyph; lines are TextLineScale × pixel size apart. Symbol fonts
// are rendered as text, too.
//
// Images are taken from the render cache. Missing images are generated and
// stored. Glyphs without outline (e.g. spaces) produce no image.
func (e *Engine) Render(f font.Font, text string) []font.GlyphImage {
	rf := e.face(f, false)
	if rf == nil {
		return nil
	}
	var images []font.GlyphImage
	scale := rf.PixelScale()
	lineHeight := float64(rf.key.PixelSize) * TextLineScale
	glyphTop := 0.0
	for _, line := range SplitTextByLines([]rune(text)) {
		glyphLeft := 0.0
		for _, g := range rf.face.Glyphs(line) {
			if _, skip := notRendered[g.Index]; !skip {
				if img, ok := e.glyphImage(rf.face, g.Index); ok {
					img.Rect = img.Rect.Scaled(scale).Translated(glyphLeft, glyphTop)
					images = append(images, img)
				}
			}
			glyphLeft += font.FromF26Dot6Scaled(g.XAdvance, scale)
		}
		glyphTop += lineHeight
	}
	return images
}

// glyphImage returns the cached image of a glyph, generating it on a miss.
// It returns false for glyphs without contours.
func (e *Engine) glyphImage(face font.Face, idx font.GlyphIndex) (font.GlyphImage, bool) {
	if img, ok := e.cache.Load(face.Key(), idx); ok {
		return img, true
	}
	shape := face.GlyphShape(idx)
	if shape == nil || shape.IsEmpty() {
		tracer().Debugf("glyph %d of %s has no outline", idx, face.Key())
		return font.GlyphImage{}, false
	}
	img := e.generator.Generate(shape)
	if img.IsNull() {
		return font.GlyphImage{}, false
	}
	e.cache.Store(face.Key(), idx, img)
	return img, true
}
