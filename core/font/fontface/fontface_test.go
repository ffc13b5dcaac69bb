package fontface

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGlyphCodecRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	g := testGlyph()
	data := EncodeGlyph(g)
	h, err := DecodeGlyph(data)
	require.NoError(t, err)
	if diff := cmp.Diff(g, h); diff != "" {
		t.Errorf("decoded glyph differs (-want +got):\n%s", diff)
	}
	_, err = DecodeGlyph(data[:len(data)-3])
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLigatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	ls := ParseLigatures("57344=102 102 105\n57345=102 102\nbroken line\n\n57346=x y\n")
	require.Equal(t, 2, ls.Len())
	assert.Equal(t, 3, len(ls.Rules()[0].Seq), "expected longest rule first")
	text := []rune("offic ff")
	ls.Apply(text)
	assert.Equal(t, []rune{'o', 0xE000, 0, 0, 'c', ' ', 0xE001, 0}, text)
	target, ok := ls.Lookup([]rune("ff"))
	assert.True(t, ok)
	assert.Equal(t, rune(0xE001), target)
	_, ok = ls.Lookup([]rune("f"))
	assert.False(t, ok)
	plain := []rune("abc")
	ls.Apply(plain)
	assert.Equal(t, []rune("abc"), plain)
	assert.Equal(t, 2, ParseLigatures(ls.String()).Len())
	//
	chain := NewLigatures([]Ligature{{Target: 'b', Seq: []rune("ab")}})
	text = []rune("aab")
	chain.Apply(text)
	assert.Equal(t, []rune{'b', 0, 0}, text, "expected replacement to complete a match to its left")
	same := NewLigatures([]Ligature{{Target: 'x', Seq: []rune{'x'}}})
	text = []rune("xx")
	same.Apply(text)
	assert.Equal(t, []rune("xx"), text)
}

func TestPackedFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	path := writePacked(t, func(pw *PackWriter) {
		require.NoError(t, pw.WriteMeta(Meta{Version: "1.0", Glyphs: 2,
			Leading: 64, Ascent: 10 * 64, Descent: 3 * 64, XHeight: 5 * 64}))
		require.NoError(t, pw.WriteLigatures(NewLigatures([]Ligature{{Target: 0xE000, Seq: []rune("AB")}})))
		require.NoError(t, pw.WriteGlyph('A', testGlyph()))
		require.NoError(t, pw.WriteGlyph(0xE000, testGlyph()))
	})
	f := NewPackedFace(nil)
	require.NoError(t, f.Load(font.FaceKey{PixelSize: LoadedPixelSize}, path, false))
	assert.Equal(t, font.F26Dot6(640), f.Ascent())
	assert.Equal(t, font.F26Dot6(64), f.Leading())
	assert.Equal(t, font.GlyphIndex('A'), f.GlyphIndex('A'))
	assert.Equal(t, font.GlyphIndex(0), f.GlyphIndex('Z'))
	assert.Equal(t, 'A', f.FindCharCode(font.GlyphIndex('A')))
	assert.Equal(t, rune(0), f.FindCharCode(font.GlyphIndex('Z')))
	assert.Equal(t, testGlyph().TextAdvance, f.GlyphAdvance(f.GlyphIndex('A')))
	assert.Equal(t, testGlyph().TextBbox, f.GlyphBbox(f.GlyphIndex('A')))
	glyphs := f.Glyphs([]rune("ABA"))
	require.Len(t, glyphs, 2, "expected ligature placeholders to be skipped")
	assert.Equal(t, font.GlyphIndex(0xE000), glyphs[0].Index)
	assert.Equal(t, font.GlyphIndex('A'), glyphs[1].Index)
	assert.Equal(t, 2, len(f.GlyphShape(glyphs[0].Index).Contours))
	assert.True(t, f.GlyphShape(0).IsEmpty())
	//
	sym := NewPackedFace(nil)
	require.NoError(t, sym.Load(font.FaceKey{PixelSize: LoadedPixelSize}, path, true))
	assert.Equal(t, testGlyph().SymBbox, sym.GlyphBbox('A'))
	assert.Equal(t, testGlyph().SymAdvance, sym.GlyphAdvance('A'))
}

func TestPackedFaceLoadFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	key := font.FaceKey{PixelSize: LoadedPixelSize}
	f := NewPackedFace(nil)
	err := f.Load(key, filepath.Join(t.TempDir(), "none.ftx"), false)
	assert.Equal(t, core.EMISSING, core.Code(err))
	empty := writeZip(t, map[string]string{MetaEntry: "", "65": ""})
	assert.Equal(t, core.EINVALID, core.Code(f.Load(key, empty, false)))
	nometa := writeZip(t, map[string]string{"65": ""})
	assert.Equal(t, core.EMISSING, core.Code(f.Load(key, nometa, false)))
	sloppy := writeZip(t, map[string]string{MetaEntry: "version:2\nnonsense\nascent:x\nfoo:1\ndescent:128\n"})
	require.NoError(t, f.Load(key, sloppy, false))
	assert.Equal(t, font.F26Dot6(128), f.Descent())
	assert.Equal(t, font.F26Dot6(0), f.Ascent())
}

func TestOutlineFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	path := writeGoRegular(t)
	f := NewOutlineFace(nil)
	key := font.FaceKey{DataKey: font.NewFontDataKey(font.FallbackFamily, false, false),
		Purpose: font.Text, PixelSize: LoadedPixelSize}
	require.NoError(t, f.Load(key, path, false))
	assert.Equal(t, key, f.Key())
	assert.True(t, f.Ascent() > 0)
	assert.True(t, f.Descent() > 0)
	idx := f.GlyphIndex('A')
	require.NotEqual(t, font.GlyphIndex(0), idx)
	assert.Equal(t, 'A', f.FindCharCode(idx))
	bbox := f.GlyphBbox(idx)
	assert.True(t, bbox.Width > 0 && bbox.Height > 0)
	assert.True(t, bbox.Top < 0, "expected glyph above baseline to have negative top")
	shape := f.GlyphShape(idx)
	require.False(t, shape.IsEmpty())
	_, b, _, top := shape.Bounds()
	assert.InDelta(t, -font.FromF26Dot6(bbox.Top), top, 1.0, "expected shape to point upwards")
	assert.InDelta(t, 0, b, 1.0)
	assert.True(t, f.GlyphShape(f.GlyphIndex(' ')).IsEmpty())
	glyphs := f.Glyphs([]rune("AV"))
	assert.Len(t, glyphs, 2)
	assert.Equal(t, font.GlyphIndex(0), f.GlyphIndex(0xE050))
	assert.Error(t, NewOutlineFace(nil).LoadData(key, []byte("no font"), false))
}

func TestPackFromOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	path := writeGoRegular(t)
	key := font.FaceKey{PixelSize: LoadedPixelSize}
	text, sym := NewOutlineFace(nil), NewOutlineFace(nil)
	require.NoError(t, text.Load(key, path, false))
	require.NoError(t, sym.Load(key, path, true))
	var buf bytes.Buffer
	require.NoError(t, Pack(text, sym, []rune("BAA\uE050"), nil, &buf))
	out := filepath.Join(t.TempDir(), "goregular"+PackedSuffix)
	require.NoError(t, os.WriteFile(out, buf.Bytes(), 0644))
	//
	factory := DefaultFactory(nil)
	f := factory(out)
	v, ok := f.(*ValidatingFace)
	require.True(t, ok)
	_, ok = v.Inner().(*PackedFace)
	require.True(t, ok)
	require.NoError(t, f.Load(key, out, false))
	assert.Equal(t, text.Ascent(), f.Ascent())
	assert.Equal(t, text.GlyphAdvance(text.GlyphIndex('A')), f.GlyphAdvance(f.GlyphIndex('A')))
	assert.Equal(t, text.GlyphShape(text.GlyphIndex('B')).EdgeCount(), f.GlyphShape('B').EdgeCount())
	assert.Equal(t, font.GlyphIndex(0), f.GlyphIndex(0xE050))
	_, ok = factory(path).(*ValidatingFace).Inner().(*OutlineFace)
	assert.True(t, ok)
}

// --- Helpers ---------------------------------------------------------------

func testGlyph() *GlyphData {
	p := func(x, y float64) font.PointF { return font.PointF{X: x, Y: y} }
	return &GlyphData{
		TextBbox:    font.FBBox{Left: 64, Top: -640, Width: 512, Height: 640},
		TextAdvance: 640,
		SymBbox:     font.FBBox{Left: 0, Top: -600, Width: 500, Height: 600},
		SymAdvance:  600,
		Shape: font.Shape{
			FillRule: font.FillNonZero,
			Contours: []font.Contour{
				{Edges: []font.Edge{
					{Type: font.EdgeLinear, Points: []font.PointF{p(1, 0), p(9, 0)}},
					{Type: font.EdgeQuadratic, Points: []font.PointF{p(9, 0), p(9.5, 5.25), p(5, 10)}},
					{Type: font.EdgeCubic, Points: []font.PointF{p(5, 10), p(3, 9), p(1.015625, 4), p(1, 0)}},
				}},
				{Edges: []font.Edge{
					{Type: font.EdgeLinear, Points: []font.PointF{p(4, 2), p(6, 2)}},
					{Type: font.EdgeLinear, Points: []font.PointF{p(6, 2), p(4, 2)}},
				}},
			},
		},
	}
}

func writePacked(t *testing.T, fill func(*PackWriter)) string {
	var buf bytes.Buffer
	pw := NewPackWriter(&buf)
	fill(pw)
	require.NoError(t, pw.Close())
	path := filepath.Join(t.TempDir(), "test"+PackedSuffix)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func writeZip(t *testing.T, entries map[string]string) string {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	f, err := os.CreateTemp(t.TempDir(), "*"+PackedSuffix)
	require.NoError(t, err)
	_, err = f.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeGoRegular(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))
	return path
}
