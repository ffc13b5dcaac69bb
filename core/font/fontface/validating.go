package fontface

import (
	"github.com/npillmayer/notefonts/core/font"
)

// ValidatingFace wraps a face and traces suspicious results. All calls are
// forwarded unchanged; results are never altered.
type ValidatingFace struct {
	inner  font.Face
	loaded bool
}

var _ font.Face = (*ValidatingFace)(nil)

// Validating wraps inner.
func Validating(inner font.Face) *ValidatingFace {
	return &ValidatingFace{inner: inner}
}

// Inner returns the wrapped face.
func (v *ValidatingFace) Inner() font.Face {
	return v.inner
}

func (v *ValidatingFace) Load(key font.FaceKey, path string, symbolMode bool) error {
	err := v.inner.Load(key, path, symbolMode)
	v.loaded = err == nil
	if err != nil {
		tracer().Errorf("failed load font face %s from %s: %v", key, path, err)
		return err
	}
	if v.inner.Ascent() <= 0 {
		tracer().Infof("font face %s has non-positive ascent %v", key, v.inner.Ascent())
	}
	return nil
}

func (v *ValidatingFace) check(op string) {
	if !v.loaded {
		tracer().Errorf("font face queried before load: %s", op)
	}
}

func (v *ValidatingFace) Key() font.FaceKey  { return v.inner.Key() }
func (v *ValidatingFace) IsSymbolMode() bool { return v.inner.IsSymbolMode() }

func (v *ValidatingFace) Leading() font.F26Dot6 {
	v.check("leading")
	return v.inner.Leading()
}

func (v *ValidatingFace) Ascent() font.F26Dot6 {
	v.check("ascent")
	return v.inner.Ascent()
}

func (v *ValidatingFace) Descent() font.F26Dot6 {
	v.check("descent")
	return v.inner.Descent()
}

func (v *ValidatingFace) XHeight() font.F26Dot6 {
	v.check("xHeight")
	return v.inner.XHeight()
}

func (v *ValidatingFace) Glyphs(text []rune) []font.GlyphPos {
	v.check("glyphs")
	return v.inner.Glyphs(text)
}

func (v *ValidatingFace) GlyphIndex(code rune) font.GlyphIndex {
	v.check("glyphIndex")
	idx := v.inner.GlyphIndex(code)
	if idx == 0 {
		tracer().Debugf("no glyph for %#U in %s", code, v.inner.Key())
	}
	return idx
}

func (v *ValidatingFace) FindCharCode(idx font.GlyphIndex) rune {
	v.check("findCharCode")
	return v.inner.FindCharCode(idx)
}

func (v *ValidatingFace) GlyphBbox(idx font.GlyphIndex) font.FBBox {
	v.check("glyphBbox")
	b := v.inner.GlyphBbox(idx)
	if b.Width < 0 || b.Height < 0 {
		tracer().Errorf("glyph %d of %s has negative box %s", idx, v.inner.Key(), b)
	}
	return b
}

func (v *ValidatingFace) GlyphAdvance(idx font.GlyphIndex) font.F26Dot6 {
	v.check("glyphAdvance")
	adv := v.inner.GlyphAdvance(idx)
	if adv < 0 {
		tracer().Errorf("glyph %d of %s has negative advance %v", idx, v.inner.Key(), adv)
	}
	return adv
}

func (v *ValidatingFace) GlyphShape(idx font.GlyphIndex) *font.Shape {
	v.check("glyphShape")
	s := v.inner.GlyphShape(idx)
	if s.IsEmpty() {
		tracer().Debugf("glyph %d of %s has no outline", idx, v.inner.Key())
	}
	return s
}
