package fontface

import (
	"bytes"

	gotext "github.com/go-text/typesetting/font"
	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlineFace is a face reading OpenType/TrueType font files.
//
// Text mode uses hinted metrics, symbol mode unhinted ones. Glyph outlines
// are unhinted in both modes.
type OutlineFace struct {
	fs         resources.FileSystem
	key        font.FaceKey
	symbolMode bool
	data       []byte
	sf         *sfnt.Font
	buf        sfnt.Buffer
	ppem       fixed.Int26_6
	hinting    xfont.Hinting
	metrics    xfont.Metrics
	shapes     map[font.GlyphIndex]*font.Shape
	inverse    map[font.GlyphIndex]rune // inverse cmap, built on first use
}

var _ font.Face = (*OutlineFace)(nil)

// NewOutlineFace creates an unloaded outline face reading through fsys. If
// fsys is nil, the operating system's file system is used.
func NewOutlineFace(fsys resources.FileSystem) *OutlineFace {
	if fsys == nil {
		fsys = resources.OSFileSystem{}
	}
	return &OutlineFace{fs: fsys}
}

// Load reads and parses the font file at path.
func (f *OutlineFace) Load(key font.FaceKey, path string, symbolMode bool) error {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		tracer().Errorf("not exists: %s", path)
		return err
	}
	return f.LoadData(key, data, symbolMode)
}

// LoadData parses font data held in memory.
func (f *OutlineFace) LoadData(key font.FaceKey, data []byte, symbolMode bool) error {
	f.key = key
	f.symbolMode = symbolMode
	f.sf = nil
	sf, err := sfnt.Parse(data)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse font %s", key.DataKey)
	}
	size := key.PixelSize
	if size <= 0 {
		size = LoadedPixelSize
	}
	f.ppem = fixed.I(size)
	f.hinting = xfont.HintingFull
	if symbolMode {
		f.hinting = xfont.HintingNone
	}
	m, err := sf.Metrics(&f.buf, f.ppem, f.hinting)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot read metrics of font %s", key.DataKey)
	}
	f.data, f.sf, f.metrics = data, sf, m
	f.shapes = make(map[font.GlyphIndex]*font.Shape)
	f.inverse = nil
	tracer().Debugf("outline face %s loaded, %d glyphs", key, sf.NumGlyphs())
	return nil
}

// Key returns the key the face was loaded with.
func (f *OutlineFace) Key() font.FaceKey { return f.key }

// IsSymbolMode is true if the face answers symbol-mode metrics.
func (f *OutlineFace) IsSymbolMode() bool { return f.symbolMode }

// Leading is the line gap, i.e. line height minus ascent and descent.
func (f *OutlineFace) Leading() font.F26Dot6 {
	l := f.metrics.Height - f.metrics.Ascent - f.metrics.Descent
	if l < 0 {
		return 0
	}
	return l
}

func (f *OutlineFace) Ascent() font.F26Dot6  { return f.metrics.Ascent }
func (f *OutlineFace) Descent() font.F26Dot6 { return f.metrics.Descent }
func (f *OutlineFace) XHeight() font.F26Dot6 { return f.metrics.XHeight }

// Glyphs maps each rune to a glyph and its advance. There is no ligature
// substitution and no kerning.
func (f *OutlineFace) Glyphs(text []rune) []font.GlyphPos {
	result := make([]font.GlyphPos, 0, len(text))
	for _, r := range text {
		idx := f.GlyphIndex(r)
		result = append(result, font.GlyphPos{Index: idx, XAdvance: f.GlyphAdvance(idx)})
	}
	return result
}

func (f *OutlineFace) GlyphIndex(code rune) font.GlyphIndex {
	if f.sf == nil {
		return 0
	}
	x, err := f.sf.GlyphIndex(&f.buf, code)
	if err != nil {
		tracer().Debugf("glyph index of %#U: %v", code, err)
		return 0
	}
	return font.GlyphIndex(x)
}

// FindCharCode looks up idx in the inverse cmap of the font. If several
// codes map to idx, the first one in cmap order wins.
func (f *OutlineFace) FindCharCode(idx font.GlyphIndex) rune {
	if f.sf == nil || idx == 0 {
		return 0
	}
	if f.inverse == nil {
		f.inverse = make(map[font.GlyphIndex]rune)
		face, err := gotext.ParseTTF(bytes.NewReader(f.data))
		if err != nil {
			tracer().Errorf("cannot build inverse cmap for %s: %v", f.key.DataKey, err)
			return 0
		}
		iter := face.Cmap.Iter()
		for iter.Next() {
			r, gid := iter.Char()
			if _, ok := f.inverse[font.GlyphIndex(gid)]; !ok {
				f.inverse[font.GlyphIndex(gid)] = r
			}
		}
	}
	return f.inverse[idx]
}

// GlyphBbox returns the box of glyph idx relative to the pen position on
// the baseline, y growing downwards.
func (f *OutlineFace) GlyphBbox(idx font.GlyphIndex) font.FBBox {
	if f.sf == nil {
		return font.FBBox{}
	}
	b, _, err := f.sf.GlyphBounds(&f.buf, sfnt.GlyphIndex(idx), f.ppem, f.hinting)
	if err != nil {
		tracer().Debugf("glyph bounds of %d: %v", idx, err)
		return font.FBBox{}
	}
	return font.FBBox{
		Left:   b.Min.X,
		Top:    b.Min.Y,
		Width:  b.Max.X - b.Min.X,
		Height: b.Max.Y - b.Min.Y,
	}
}

func (f *OutlineFace) GlyphAdvance(idx font.GlyphIndex) font.F26Dot6 {
	if f.sf == nil {
		return 0
	}
	adv, err := f.sf.GlyphAdvance(&f.buf, sfnt.GlyphIndex(idx), f.ppem, f.hinting)
	if err != nil {
		tracer().Debugf("glyph advance of %d: %v", idx, err)
		return 0
	}
	return adv
}

// GlyphShape returns the outline of glyph idx in pixels, y pointing
// upwards. Shapes are cached.
func (f *OutlineFace) GlyphShape(idx font.GlyphIndex) *font.Shape {
	if s, ok := f.shapes[idx]; ok {
		return s
	}
	s := &font.Shape{}
	if f.sf != nil {
		segs, err := f.sf.LoadGlyph(&f.buf, sfnt.GlyphIndex(idx), f.ppem, nil)
		if err != nil {
			tracer().Debugf("glyph outline of %d: %v", idx, err)
		} else {
			s = shapeFromSegments(segs)
		}
		f.shapes[idx] = s
	}
	return s
}

// shapeFromSegments converts sfnt segments (26.6, y down) into a shape
// (float pixels, y up). Open contours are closed with a line.
func shapeFromSegments(segs sfnt.Segments) *font.Shape {
	pt := func(p fixed.Point26_6) font.PointF {
		return font.PointF{X: font.FromF26Dot6(p.X), Y: -font.FromF26Dot6(p.Y)}
	}
	s := &font.Shape{FillRule: font.FillNonZero}
	var contour *font.Contour
	var start, cur font.PointF
	closeContour := func() {
		if contour == nil {
			return
		}
		if cur != start {
			contour.Edges = append(contour.Edges, font.Edge{
				Type: font.EdgeLinear, Points: []font.PointF{cur, start},
			})
		}
		if len(contour.Edges) > 0 {
			s.Contours = append(s.Contours, *contour)
		}
		contour = nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			contour = &font.Contour{}
			start = pt(seg.Args[0])
			cur = start
			continue
		}
		if contour == nil {
			contour = &font.Contour{}
			start = cur
		}
		var e font.Edge
		switch seg.Op {
		case sfnt.SegmentOpLineTo:
			e = font.Edge{Type: font.EdgeLinear, Points: []font.PointF{cur, pt(seg.Args[0])}}
		case sfnt.SegmentOpQuadTo:
			e = font.Edge{Type: font.EdgeQuadratic, Points: []font.PointF{
				cur, pt(seg.Args[0]), pt(seg.Args[1])}}
		case sfnt.SegmentOpCubeTo:
			e = font.Edge{Type: font.EdgeCubic, Points: []font.PointF{
				cur, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])}}
		default:
			continue
		}
		contour.Edges = append(contour.Edges, e)
		cur = e.End()
	}
	closeContour()
	return s
}
