package fonts

import (
	"github.com/npillmayer/notefonts/core/font"
)

// LineSpacing returns leading + ascent + descent of f, in pixels.
func (e *Engine) LineSpacing(f font.Font) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.Leading() + rf.face.Ascent() + rf.face.Descent())
}

// XHeight returns the x-height of f, in pixels.
func (e *Engine) XHeight(f font.Font) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.XHeight())
}

// Height returns ascent + descent of f, in pixels.
func (e *Engine) Height(f font.Font) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.Ascent() + rf.face.Descent())
}

// Ascent returns the ascent of f, in pixels.
func (e *Engine) Ascent(f font.Font) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.Ascent())
}

// Descent returns the descent of f, in pixels.
func (e *Engine) Descent(f font.Font) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.Descent())
}

// InFontUcs4 is true if the font resolved for f has a glyph for code.
func (e *Engine) InFontUcs4(f font.Font, code rune) bool {
	rf := e.face(f, false)
	if rf == nil {
		return false
	}
	return rf.face.GlyphIndex(code) != 0
}

// InFont is true if the font resolved for f has a glyph for every
// character of text, line breaks excluded.
func (e *Engine) InFont(f font.Font, text string) bool {
	rf := e.face(f, false)
	if rf == nil {
		return false
	}
	for _, r := range text {
		if r == '\n' {
			continue
		}
		if rf.face.GlyphIndex(r) == 0 {
			return false
		}
	}
	return true
}

// HorizontalAdvance returns the advance of a single character, in pixels.
func (e *Engine) HorizontalAdvance(f font.Font, ch rune) float64 {
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	return rf.scaled(rf.face.GlyphAdvance(rf.face.GlyphIndex(ch)))
}

// HorizontalAdvanceText returns the summed advance of the glyphs of text,
// in pixels.
func (e *Engine) HorizontalAdvanceText(f font.Font, text string) float64 {
	if text == "" {
		return 0
	}
	rf := e.face(f, false)
	if rf == nil {
		return 0
	}
	var advance font.F26Dot6
	for _, g := range rf.face.Glyphs([]rune(text)) {
		advance += g.XAdvance
	}
	return rf.scaled(advance)
}

// BoundingRect returns the box of a single character, in pixels, with the
// origin at the pen position and y growing downwards.
func (e *Engine) BoundingRect(f font.Font, ch rune) font.RectF {
	rf := e.face(f, false)
	if rf == nil {
		return font.RectF{}
	}
	return rf.face.GlyphBbox(rf.face.GlyphIndex(ch)).ToRect(rf.PixelScale())
}

// BoundingRectText returns the box of a possibly multi-line text, in pixels.
// The width of a line is the sum of its glyph advances; the text is as wide
// as its widest line and as high as all lines together.
func (e *Engine) BoundingRectText(f font.Font, text string) font.RectF {
	return e.textRect(f, text, false)
}

// TightBoundingRect is like BoundingRectText, but excludes the trailing
// space of the last glyph of each line, i.e. its advance minus its width.
func (e *Engine) TightBoundingRect(f font.Font, text string) font.RectF {
	return e.textRect(f, text, true)
}

func (e *Engine) textRect(f font.Font, text string, tight bool) font.RectF {
	if text == "" {
		return font.RectF{}
	}
	rf := e.face(f, false)
	if rf == nil {
		return font.RectF{}
	}
	var rect font.FBBox
	for i, line := range SplitTextByLines([]rune(text)) {
		lineRect := lineBox(rf.face, rf.face.Glyphs(line), tight)
		if i == 0 {
			rect = lineRect
			continue
		}
		rect.Width = max(rect.Width, lineRect.Width)
		rect.Height += lineRect.Height
	}
	return rect.ToRect(rf.PixelScale())
}

// lineBox unites the boxes of the glyphs of one line. The first glyph's box
// seeds top, left and height.
func lineBox(face font.Face, glyphs []font.GlyphPos, tight bool) font.FBBox {
	var box font.FBBox
	if len(glyphs) == 0 {
		return box
	}
	var advance font.F26Dot6
	for i, g := range glyphs {
		bbox := face.GlyphBbox(g.Index)
		if i == 0 {
			box = bbox
		} else {
			box.Height = max(box.Height, bbox.Height)
			box.Top = min(box.Top, bbox.Top)
			box.Left = min(box.Left, bbox.Left)
		}
		advance += g.XAdvance
	}
	if tight {
		last := glyphs[len(glyphs)-1]
		advance -= last.XAdvance - face.GlyphBbox(last.Index).Width
	}
	box.Width = advance
	return box
}

// SymBBox returns the box of the glyph for code in symbol mode, in pixels,
// multiplied by dpiScale.
func (e *Engine) SymBBox(f font.Font, code rune, dpiScale float64) font.RectF {
	rf := e.face(f, true)
	if rf == nil {
		return font.RectF{}
	}
	return rf.face.GlyphBbox(rf.face.GlyphIndex(code)).ToRect(rf.PixelScale() * dpiScale)
}

// SymAdvance returns the advance of the glyph for code in symbol mode, in
// pixels, multiplied by dpiScale.
func (e *Engine) SymAdvance(f font.Font, code rune, dpiScale float64) float64 {
	rf := e.face(f, true)
	if rf == nil {
		return 0
	}
	adv := rf.face.GlyphAdvance(rf.face.GlyphIndex(code))
	return font.FromF26Dot6Scaled(adv, rf.PixelScale()*dpiScale)
}

// SymInFont is true if the font resolved for f in symbol mode has a glyph
// for code.
func (e *Engine) SymInFont(f font.Font, code rune) bool {
	rf := e.face(f, true)
	if rf == nil {
		return false
	}
	return rf.face.GlyphIndex(code) != 0
}

// SplitTextByLines splits text after every line break. A line break stays
// with the line it ends. The last line need not end with a line break.
func SplitTextByLines(text []rune) [][]rune {
	var lines [][]rune
	start := 0
	for i, r := range text {
		if r == '\n' || i == len(text)-1 {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	return lines
}
