package fontface

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
)

// GlyphData is the per-glyph entry of a packed container: metrics for text
// and symbol mode plus the glyph outline.
type GlyphData struct {
	TextBbox    font.FBBox
	TextAdvance font.F26Dot6
	SymBbox     font.FBBox
	SymAdvance  font.F26Dot6
	Shape       font.Shape
}

// Bbox returns the box for text or symbol mode.
func (g *GlyphData) Bbox(symbolMode bool) font.FBBox {
	if symbolMode {
		return g.SymBbox
	}
	return g.TextBbox
}

// Advance returns the advance for text or symbol mode.
func (g *GlyphData) Advance(symbolMode bool) font.F26Dot6 {
	if symbolMode {
		return g.SymAdvance
	}
	return g.TextAdvance
}

// packedMetrics is the fixed-size header of a glyph entry.
type packedMetrics struct {
	TextX, TextY, TextW, TextH, TextAdvance int16
	SymX, SymY, SymW, SymH, SymAdvance      int16
}

// EncodeGlyph serializes a glyph entry, little-endian. Metrics and point
// coordinates are written as 16 bit 26.6 values; values out of range are
// saturated.
func EncodeGlyph(g *GlyphData) []byte {
	var buf bytes.Buffer
	i16 := font.ToInt16
	m := packedMetrics{
		i16(g.TextBbox.Left), i16(g.TextBbox.Top), i16(g.TextBbox.Width), i16(g.TextBbox.Height),
		i16(g.TextAdvance),
		i16(g.SymBbox.Left), i16(g.SymBbox.Top), i16(g.SymBbox.Width), i16(g.SymBbox.Height),
		i16(g.SymAdvance),
	}
	w := func(v interface{}) {
		_ = binary.Write(&buf, binary.LittleEndian, v) // writes to a bytes.Buffer do not fail
	}
	w(m)
	var inv int8
	if g.Shape.InverseYAxis {
		inv = 1
	}
	w(inv)
	w(int8(g.Shape.FillRule))
	w(uint16(len(g.Shape.Contours)))
	for _, c := range g.Shape.Contours {
		w(uint16(len(c.Edges)))
		for _, e := range c.Edges {
			w(int8(e.Type))
			w(uint16(len(e.Points)))
			for _, p := range e.Points {
				w(i16(font.ToF26Dot6(p.X)))
				w(i16(font.ToF26Dot6(p.Y)))
			}
		}
	}
	return buf.Bytes()
}

// DecodeGlyph deserializes a glyph entry written by EncodeGlyph.
// Truncated input yields an error with code EINVALID.
func DecodeGlyph(data []byte) (*GlyphData, error) {
	r := bytes.NewReader(data)
	var err error
	rd := func(v interface{}) {
		if err == nil {
			err = binary.Read(r, binary.LittleEndian, v)
		}
	}
	var m packedMetrics
	rd(&m)
	var inv, fill int8
	rd(&inv)
	rd(&fill)
	var cs uint16
	rd(&cs)
	g := &GlyphData{
		TextBbox: font.FBBox{
			Left:  font.F26Dot6FromInt16(m.TextX), Top: font.F26Dot6FromInt16(m.TextY),
			Width: font.F26Dot6FromInt16(m.TextW), Height: font.F26Dot6FromInt16(m.TextH),
		},
		TextAdvance: font.F26Dot6FromInt16(m.TextAdvance),
		SymBbox: font.FBBox{
			Left:  font.F26Dot6FromInt16(m.SymX), Top: font.F26Dot6FromInt16(m.SymY),
			Width: font.F26Dot6FromInt16(m.SymW), Height: font.F26Dot6FromInt16(m.SymH),
		},
		SymAdvance: font.F26Dot6FromInt16(m.SymAdvance),
	}
	g.Shape.InverseYAxis = inv != 0
	g.Shape.FillRule = font.FillRule(fill)
	for ci := 0; ci < int(cs) && err == nil; ci++ {
		var es uint16
		rd(&es)
		c := font.Contour{Edges: make([]font.Edge, 0, es)}
		for ei := 0; ei < int(es) && err == nil; ei++ {
			var typ int8
			var ps uint16
			rd(&typ)
			rd(&ps)
			e := font.Edge{Type: font.EdgeType(typ), Points: make([]font.PointF, 0, ps)}
			for pi := 0; pi < int(ps) && err == nil; pi++ {
				var x, y int16
				rd(&x)
				rd(&y)
				e.Points = append(e.Points, font.PointF{
					X: font.FromF26Dot6(font.F26Dot6FromInt16(x)),
					Y: font.FromF26Dot6(font.F26Dot6FromInt16(y)),
				})
			}
			c.Edges = append(c.Edges, e)
		}
		g.Shape.Contours = append(g.Shape.Contours, c)
	}
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, core.WrapError(err, core.EINVALID, "truncated glyph entry")
		}
		return nil, core.WrapError(err, core.EINVALID, "cannot decode glyph entry")
	}
	return g, nil
}
