package engraving

import (
	"testing"
	"testing/fstest"

	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/symbols"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// fakeMetrics serves a fixed set of symbols.
type fakeMetrics struct {
	family string
	loads  int
	syms   map[symbols.SymID]fakeSym
	subs   map[symbols.SymID][]symbols.SymID
}

type fakeSym struct {
	code    rune
	bbox    font.RectF
	advance float64
}

func (m *fakeMetrics) Load(family string, path string) error {
	m.family = family
	m.loads++
	return nil
}

func (m *fakeMetrics) Font() font.Font { return font.Font{Family: m.family, PointSize: 20} }

func (m *fakeMetrics) SymCode(id symbols.SymID) rune {
	if s, ok := m.syms[id]; ok {
		return s.code
	}
	return id.SmuflCode()
}

func (m *fakeMetrics) FromCode(code rune) symbols.SymID {
	for id, s := range m.syms {
		if s.code == code {
			return id
		}
	}
	return symbols.NoSym
}

func (m *fakeMetrics) IsValid(id symbols.SymID) bool {
	_, ok := m.syms[id]
	return ok
}

func (m *fakeMetrics) IsCompound(id symbols.SymID) bool { return len(m.subs[id]) > 0 }

func (m *fakeMetrics) SubSymbols(id symbols.SymID) []symbols.SymID { return m.subs[id] }

func (m *fakeMetrics) BBox(id symbols.SymID) font.RectF { return m.syms[id].bbox }

func (m *fakeMetrics) Advance(id symbols.SymID) float64 { return m.syms[id].advance }

func (m *fakeMetrics) SmuflAnchor(id symbols.SymID, anchor symbols.AnchorID) font.PointF {
	if id == symbols.NoteheadBlack && anchor == symbols.StemUpSE {
		return font.PointF{X: 12, Y: -2}
	}
	return font.PointF{}
}

func (m *fakeMetrics) EngravingDefaults() map[symbols.StyleID]interface{} {
	return map[symbols.StyleID]interface{}{symbols.MusicalTextFont: m.family + " Text"}
}

// --- Test Suite Preparation ------------------------------------------------

type EngravingTestEnviron struct {
	suite.Suite
	metrics  map[string]*fakeMetrics
	provider *Provider
}

// listen for 'go test' command --> run test methods
func TestEngravingFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.engraving")
	defer teardown()
	suite.Run(t, new(EngravingTestEnviron))
}

// run before every test method
func (env *EngravingTestEnviron) SetupTest() {
	bravura := &fakeMetrics{syms: map[symbols.SymID]fakeSym{}}
	bravura.syms[symbols.GClef] = fakeSym{0xE050, font.RectF{X: 0, Y: -40, W: 30, H: 80}, 30}
	bravura.syms[symbols.NoteheadBlack] = fakeSym{0xE0A4, font.RectF{X: 0, Y: -5, W: 12, H: 10}, 12}
	bravura.syms[symbols.OrnamentZigZagLineNoRightEnd] = fakeSym{0xE59D, font.RectF{X: 0, Y: -10, W: 10, H: 10}, 10}
	bravura.syms[symbols.OrnamentZigZagLineWithRightEnd] = fakeSym{0xE59E, font.RectF{X: 0, Y: -10, W: 12, H: 10}, 12}
	leland := &fakeMetrics{
		syms: map[symbols.SymID]fakeSym{
			symbols.GClef: {0xE050, font.RectF{X: 0, Y: -42, W: 32, H: 84}, 32},
		},
		subs: map[symbols.SymID][]symbols.SymID{
			symbols.OrnamentUpPrall: {
				symbols.OrnamentZigZagLineNoRightEnd,
				symbols.OrnamentZigZagLineWithRightEnd,
			},
		},
	}
	env.metrics = map[string]*fakeMetrics{
		":/fonts/bravura/Bravura.otf": bravura,
		":/fonts/leland/Leland.otf":   leland,
	}
	env.provider = NewProvider(func(path string) symbols.SymbolMetrics {
		if m, ok := env.metrics[path]; ok {
			return m
		}
		return &fakeMetrics{}
	})
	env.provider.RegisterDefaults(":/fonts", false)
}

// --- Tests -----------------------------------------------------------------

func (env *EngravingTestEnviron) TestFontByName() {
	env.Len(env.provider.Fonts(), 2)
	leland := env.provider.FontByName("LELAND")
	env.Require().NotNil(leland)
	env.Equal("Leland", leland.Name())
	env.Equal(":/fonts/leland/Leland.otf", leland.Path())
	env.True(leland.IsLoaded())
	env.provider.FontByName("leland")
	env.Equal(1, env.metrics[leland.Path()].loads, "expected font to be loaded once")
	env.Equal("Leland Text", leland.EngravingDefaults()[symbols.MusicalTextFont])
	//
	f := env.provider.FontByName("Petaluma")
	env.Require().NotNil(f)
	env.Equal("Bravura", f.Name(), "expected fallback font for unknown name")
	env.True(env.provider.IsFallbackFont(f))
	env.False(env.provider.IsFallbackFont(leland))
	//
	env.provider.Clear()
	env.Nil(env.provider.FontByName("Leland"))
	env.Nil(env.provider.FallbackFont())
}

func (env *EngravingTestEnviron) TestMagnifiedMetrics() {
	bravura := env.provider.FontByName("Bravura")
	env.Equal(font.RectF{X: 0, Y: -80, W: 60, H: 160}, bravura.BBox(symbols.GClef, 2))
	env.Equal(font.RectF{X: 0, Y: -20, W: 60, H: 40}, bravura.BBoxXY(symbols.GClef, 2, 0.5))
	env.Equal(15.0, bravura.Width(symbols.GClef, 0.5))
	env.Equal(40.0, bravura.Height(symbols.GClef, 0.5))
	env.Equal(60.0, bravura.Advance(symbols.GClef, 2))
	env.Equal(font.PointF{X: 24, Y: -4}, bravura.SmuflAnchor(symbols.NoteheadBlack, symbols.StemUpSE, 2))
	env.Equal("\uE050", bravura.ToString(symbols.GClef))
	env.Equal(symbols.GClef, bravura.FromCode(0xE050))
	//
	ids := []symbols.SymID{symbols.GClef, symbols.NoteheadBlack}
	env.Equal(font.RectF{X: 0, Y: -40, W: 42, H: 80}, bravura.BBoxList(ids, 1))
	env.Equal(84.0, bravura.WidthList(ids, 2))
}

func (env *EngravingTestEnviron) TestFallback() {
	leland := env.provider.FontByName("Leland")
	env.Equal(32.0, leland.Advance(symbols.GClef, 1), "expected own glyph")
	env.False(leland.IsValid(symbols.NoteheadBlack))
	env.Equal(font.RectF{X: 0, Y: -5, W: 12, H: 10}, leland.BBox(symbols.NoteheadBlack, 1))
	env.Equal(12.0, leland.Advance(symbols.NoteheadBlack, 1))
	env.Equal(font.PointF{X: 12, Y: -2}, leland.SmuflAnchor(symbols.NoteheadBlack, symbols.StemUpSE, 1))
	//
	bravura := env.provider.FallbackFont()
	env.True(bravura.BBox(symbols.CClef, 1).IsNull(), "fallback font must not fall back")
	//
	env.provider.UseFallback = false
	env.True(leland.BBox(symbols.NoteheadBlack, 1).IsNull())
	env.Equal(0.0, leland.Advance(symbols.NoteheadBlack, 1))
}

func (env *EngravingTestEnviron) TestGlyphs() {
	leland := env.provider.FontByName("Leland")
	bravura := env.provider.FallbackFont()
	glyphs := leland.Glyphs(symbols.OrnamentUpPrall, 1)
	env.Require().Len(glyphs, 2)
	env.Equal(PlacedGlyph{Font: bravura, Code: 0xE59D, X: 0}, glyphs[0])
	env.Equal(PlacedGlyph{Font: bravura, Code: 0xE59E, X: 10}, glyphs[1])
	//
	glyphs = leland.Glyphs(symbols.GClef, 1)
	env.Equal([]PlacedGlyph{{Font: leland, Code: 0xE050}}, glyphs)
	env.Empty(leland.Glyphs(symbols.CClef, 1))
}

// --- Symbol metrics computed from a provider -------------------------------

// symbolEngine has a single glyph, a G clef.
type symbolEngine struct{}

func (symbolEngine) AddSymbolFont(family string, path string) int { return 0 }

func (symbolEngine) SymInFont(f font.Font, code rune) bool { return code == 0xE050 }

func (symbolEngine) SymBBox(f font.Font, code rune, dpiScale float64) font.RectF {
	return font.RectF{X: 0, Y: -100, W: 60, H: 160}.Scaled(dpiScale)
}

func (symbolEngine) SymAdvance(f font.Font, code rune, dpiScale float64) float64 {
	return 60 * dpiScale
}

func TestDefaultMetricsFactory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.engraving")
	defer teardown()
	//
	reg := resources.NewRegistry(nil)
	reg.AddFS("fonts", fstest.MapFS{
		"bravura/metadata.json": {Data: []byte(`{"engravingDefaults": {"stemThickness": 0.12}}`)},
		"leland/metadata.json":  {Data: []byte(`{}`)},
	})
	provider := NewProvider(symbols.DefaultMetricsFactory(symbolEngine{}, reg, 1))
	provider.RegisterDefaults(":/fonts", false)
	bravura := provider.FontByName("bravura")
	if bravura == nil {
		t.Fatal("expected Bravura to be registered")
	}
	if w := bravura.Width(symbols.GClef, 1); w != 30 {
		t.Errorf("expected G clef width of 30 at 20pt, is %g", w)
	}
	if v := bravura.EngravingDefaults()[symbols.StemWidth]; v != 0.12 {
		t.Errorf("expected stem width 0.12, is %v", v)
	}
	leland := provider.FontByName("leland")
	if a := leland.Advance(symbols.NoteheadBlack, 1); a != 0 {
		t.Errorf("expected no notehead in either font, advance is %g", a)
	}
}
