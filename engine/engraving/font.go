package engraving

import (
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/engine/symbols"
)

// Font is a named music font. All sizes are in pixels at a 20pt staff,
// multiplied by a magnification factor mag.
type Font struct {
	name     string
	family   string
	path     string
	metrics  symbols.SymbolMetrics
	loaded   bool
	provider *Provider
}

// Name is the name the font is looked up by.
func (f *Font) Name() string { return f.name }

// Family is the font family of the font file.
func (f *Font) Family() string { return f.family }

// Path is the location of the font file.
func (f *Font) Path() string { return f.path }

// Metrics returns the symbol metrics of f. They are empty until the font
// has been loaded.
func (f *Font) Metrics() symbols.SymbolMetrics { return f.metrics }

// IsLoaded is true after EnsureLoad.
func (f *Font) IsLoaded() bool { return f.loaded }

// EnsureLoad loads the symbol metrics of f, if not done before. A font is
// loaded only once, even if loading fails.
func (f *Font) EnsureLoad() {
	if f.loaded {
		return
	}
	f.loaded = true
	if err := f.metrics.Load(f.family, f.path); err != nil {
		tracer().Errorf("engraving font %s: %v", f.name, err)
	}
}

// EngravingDefaults returns the style defaults recommended by the font.
func (f *Font) EngravingDefaults() map[symbols.StyleID]interface{} {
	return f.metrics.EngravingDefaults()
}

// SymCode is the codepoint to draw a symbol with.
func (f *Font) SymCode(id symbols.SymID) rune {
	return f.metrics.SymCode(id)
}

// FromCode returns the symbol drawn with a codepoint, or NoSym.
func (f *Font) FromCode(code rune) symbols.SymID {
	return f.metrics.FromCode(code)
}

// ToString returns the symbol as text in f.
func (f *Font) ToString(id symbols.SymID) string {
	return string(f.SymCode(id))
}

// IsValid is true if f has a glyph for a symbol.
func (f *Font) IsValid(id symbols.SymID) bool {
	return f.metrics.IsValid(id)
}

// fallback returns the font to take a symbol from: the fallback font if
// f lacks the symbol and fallback is enabled, f otherwise.
func (f *Font) fallback(id symbols.SymID) *Font {
	p := f.provider
	if p == nil || !p.UseFallback || f.IsValid(id) || p.IsFallbackFont(f) {
		return f
	}
	if fb := p.FallbackFont(); fb != nil {
		return fb
	}
	return f
}

// BBox returns the bounding box of a symbol.
func (f *Font) BBox(id symbols.SymID, mag float64) font.RectF {
	return f.BBoxXY(id, mag, mag)
}

// BBoxXY returns the bounding box of a symbol, magnified separately in
// both directions.
func (f *Font) BBoxXY(id symbols.SymID, magX, magY float64) font.RectF {
	if fb := f.fallback(id); fb != f {
		return fb.BBoxXY(id, magX, magY)
	}
	return f.metrics.BBox(id).ScaledXY(magX, magY)
}

// BBoxList returns the united bounding box of symbols set left to right.
func (f *Font) BBoxList(ids []symbols.SymID, mag float64) font.RectF {
	var r font.RectF
	x := 0.0
	for _, id := range ids {
		r = r.Unite(f.BBox(id, mag).Translated(x, 0))
		x += f.Advance(id, mag)
	}
	return r
}

// Width is the width of the bounding box of a symbol.
func (f *Font) Width(id symbols.SymID, mag float64) float64 {
	return f.BBox(id, mag).W
}

// Height is the height of the bounding box of a symbol.
func (f *Font) Height(id symbols.SymID, mag float64) float64 {
	return f.BBox(id, mag).H
}

// WidthList is the width of symbols set left to right.
func (f *Font) WidthList(ids []symbols.SymID, mag float64) float64 {
	return f.BBoxList(ids, mag).W
}

// Advance returns the horizontal advance of a symbol.
func (f *Font) Advance(id symbols.SymID, mag float64) float64 {
	if fb := f.fallback(id); fb != f {
		return fb.Advance(id, mag)
	}
	return f.metrics.Advance(id) * mag
}

// SmuflAnchor returns an anchor of a symbol, relative to its origin.
func (f *Font) SmuflAnchor(id symbols.SymID, anchor symbols.AnchorID, mag float64) font.PointF {
	if fb := f.fallback(id); fb != f {
		return fb.SmuflAnchor(id, anchor, mag)
	}
	return f.metrics.SmuflAnchor(id, anchor).Mul(mag)
}

// Glyphs returns the codepoints to draw a symbol with, together with their
// offsets from the symbol origin. Compound symbols are expanded. Symbols
// neither f nor the fallback font has a glyph for are dropped.
func (f *Font) Glyphs(id symbols.SymID, mag float64) []PlacedGlyph {
	return f.appendGlyphs(nil, id, mag, 0)
}

// PlacedGlyph is a codepoint of a font, placed horizontally.
type PlacedGlyph struct {
	Font *Font
	Code rune
	X    float64
}

func (f *Font) appendGlyphs(glyphs []PlacedGlyph, id symbols.SymID, mag float64, x float64) []PlacedGlyph {
	if f.metrics.IsCompound(id) {
		for _, sub := range f.metrics.SubSymbols(id) {
			glyphs = f.appendGlyphs(glyphs, sub, mag, x)
			x += f.Advance(sub, mag)
		}
		return glyphs
	}
	if !f.IsValid(id) {
		if fb := f.fallback(id); fb != f {
			return fb.appendGlyphs(glyphs, id, mag, x)
		}
		tracer().Errorf("invalid symbol %s in font %s", id, f.name)
		return glyphs
	}
	return append(glyphs, PlacedGlyph{Font: f, Code: f.SymCode(id), X: x})
}
