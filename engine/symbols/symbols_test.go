package symbols

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves glyphs in symbol mode pixels.
type fakeProvider struct {
	glyphs     map[rune]fakeGlyph
	registered []string
	lastFont   font.Font
}

type fakeGlyph struct {
	bbox    font.RectF
	advance float64
}

func (p *fakeProvider) AddSymbolFont(family string, path string) int {
	if strings.Contains(path, "missing") {
		return -1
	}
	p.registered = append(p.registered, family)
	return len(p.registered) - 1
}

func (p *fakeProvider) SymInFont(f font.Font, code rune) bool {
	p.lastFont = f
	_, ok := p.glyphs[code]
	return ok
}

func (p *fakeProvider) SymBBox(f font.Font, code rune, dpiScale float64) font.RectF {
	return p.glyphs[code].bbox.Scaled(dpiScale)
}

func (p *fakeProvider) SymAdvance(f font.Font, code rune, dpiScale float64) float64 {
	return p.glyphs[code].advance * dpiScale
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{glyphs: map[rune]fakeGlyph{
		0xE050:  {font.RectF{X: 0, Y: -100, W: 60, H: 160}, 60}, // gClef
		0x1D122: {font.RectF{X: 0, Y: -40, W: 50, H: 60}, 50},   // fClef, legacy only
		0xE0A3:  {font.RectF{X: 0, Y: -10, W: 24, H: 20}, 24},   // noteheadHalf
		0xE0A4:  {font.RectF{X: 0, Y: -10, W: 24, H: 20}, 24},   // noteheadBlack
		0xF000:  {font.RectF{X: 0, Y: -12, W: 28, H: 24}, 28},   // noteheadBlackOversized
		0xE59D:  {font.RectF{X: 0, Y: -20, W: 20, H: 20}, 20},
		0xE59E:  {font.RectF{X: 0, Y: -20, W: 24, H: 20}, 24},
		0xE59F:  {font.RectF{X: 0, Y: -30, W: 10, H: 40}, 10},
	}}
}

const bravuraMeta = `{
  "fontName": "Bravura",
  "engravingDefaults": {
    "staffLineThickness": 0.13,
    "thinBarlineThickness": 0.16,
    "barlineSeparation": 0.4,
    "beamSpacing": 0.25,
    "textEnclosureThickness": 0.2,
    "textFontFamily": ["Academico"],
    "unknownKey": 1.0
  },
  "glyphsWithAnchors": {
    "noteheadBlack": {
      "stemUpSE": [1.18, 0.168],
      "stemDownNW": [0.0, -0.168],
      "splitStemUpSE": [1.0, 1.0]
    },
    "noSuchGlyph": {
      "stemUpSE": [1.0, 1.0]
    }
  },
  "glyphsWithAlternates": {
    "noteheadBlack": {
      "alternates": [
        { "codepoint": "U+F000", "name": "noteheadBlackOversized" }
      ]
    },
    "noteheadHalf": {
      "alternates": [
        { "codepoint": "U+F002", "name": "noteheadHalfSmall" }
      ]
    },
    "fClef": {
      "alternates": [
        { "codepoint": "U+F001", "name": "fClefFrench" }
      ]
    }
  }
}`

func loadBravura(meta string) (*Metrics, *fakeProvider, error) {
	reg := resources.NewRegistry(nil)
	reg.AddFS("fonts", fstest.MapFS{
		"bravura/Bravura.otf":   {Data: []byte("x")},
		"bravura/metadata.json": {Data: []byte(meta)},
	})
	p := newFakeProvider()
	m := NewMetrics(p, reg, 1)
	err := m.Load("Bravura", ":/fonts/bravura/Bravura.otf")
	return m, p, err
}

func TestSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	assert.Equal(t, GClef, SymIDByName("gClef"))
	assert.Equal(t, "6stringTabClef", SixStringTabClef.String())
	assert.Equal(t, SixStringTabClef, SymIDByName("6stringTabClef"))
	assert.Equal(t, NoSym, SymIDByName("noSuchGlyph"))
	assert.Equal(t, rune(0xE062), FClef.SmuflCode())
	assert.Equal(t, rune(0x1D122), FClef.LegacyCode())
	assert.False(t, NoSym.IsValid())
	assert.False(t, SymID(SymbolCount()).IsValid())
	for i, info := range symInfos {
		require.Equal(t, SymID(i), info.id, "symbol table out of order at %s", info.name)
	}
	a, ok := AnchorIDByName("cutOutSW")
	assert.True(t, ok)
	assert.Equal(t, CutOutSW, a)
	_, ok = AnchorIDByName("splitStemUpSE")
	assert.False(t, ok)
}

func TestComputedMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, p, err := loadBravura(bravuraMeta)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bravura"}, p.registered)
	assert.Equal(t, font.MusicSymbol, p.lastFont.Purpose)
	assert.Equal(t, 20.0, p.lastFont.PointSize)
	//
	assert.True(t, m.IsValid(GClef))
	assert.Equal(t, rune(0xE050), m.SymCode(GClef))
	assert.Equal(t, font.RectF{X: 0, Y: -50, W: 30, H: 80}, m.BBox(GClef), "20pt is half the symbol mode size")
	assert.Equal(t, 30.0, m.Advance(GClef))
	assert.Equal(t, rune(0x1D122), m.SymCode(FClef), "expected legacy codepoint")
	assert.False(t, m.IsValid(CClef))
	assert.Equal(t, rune(0xE05C), m.SymCode(CClef), "expected SMuFL codepoint for missing glyph")
	assert.Equal(t, GClef, m.FromCode(0xE050))
	assert.Equal(t, NoSym, m.FromCode(0x1234))
	assert.Equal(t, NoSym, m.FromCode(0))
}

func TestComposedGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, _, err := loadBravura(bravuraMeta)
	require.NoError(t, err)
	require.True(t, m.IsCompound(OrnamentPrallMordent))
	assert.Len(t, m.SubSymbols(OrnamentPrallMordent), 4)
	assert.Equal(t, font.RectF{X: 0, Y: -15, W: 37, H: 20}, m.BBox(OrnamentPrallMordent))
	assert.False(t, m.IsCompound(GClef))
	assert.Empty(t, m.SubSymbols(GClef))
}

func TestAnchors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, _, err := loadBravura(bravuraMeta)
	require.NoError(t, err)
	se := m.SmuflAnchor(NoteheadBlack, StemUpSE)
	assert.InDelta(t, 29.5, se.X, 1e-9)
	assert.InDelta(t, -4.2, se.Y, 1e-9, "expected y axis to point down")
	nw := m.SmuflAnchor(NoteheadBlack, StemDownNW)
	assert.InDelta(t, 4.2, nw.Y, 1e-9)
	assert.Equal(t, font.PointF{}, m.SmuflAnchor(NoteheadBlack, CutOutNE))
	assert.Equal(t, font.PointF{}, m.SmuflAnchor(GClef, StemUpSE))
}

func TestAlternates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, _, err := loadBravura(bravuraMeta)
	require.NoError(t, err)
	assert.Equal(t, rune(0xF000), m.SymCode(NoteheadBlack), "expected oversized alternate")
	assert.Equal(t, font.RectF{X: 0, Y: -6, W: 14, H: 12}, m.BBox(NoteheadBlack))
	assert.Equal(t, rune(0xE0A3), m.SymCode(NoteheadHalf), "undeclared alternate must not override")
	assert.False(t, m.IsValid(FClefFrench), "alternate codepoint not in font")
	assert.False(t, m.IsValid(CClefFrench))
}

func TestEngravingDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, _, err := loadBravura(bravuraMeta)
	require.NoError(t, err)
	d := m.EngravingDefaults()
	assert.Equal(t, 0.13, d[StaffLineWidth])
	assert.Equal(t, 0.16, d[BarWidth])
	assert.Equal(t, 0.16, d[DoubleBarWidth])
	assert.Equal(t, 0.4, d[DoubleBarDistance])
	assert.Equal(t, 0.4, d[EndBarDistance], "expected child to inherit barline separation")
	assert.Equal(t, false, d[UseWideBeams])
	assert.Equal(t, "Bravura Text", d[MusicalTextFont])
	assert.Len(t, d, 7)
	//
	m, _, err = loadBravura(`{ "engravingDefaults": {
		"barlineSeparation": 0.4,
		"thinThickBarlineSeparation": 0.5,
		"beamSpacing": 1.0
	}}`)
	require.NoError(t, err)
	d = m.EngravingDefaults()
	assert.Equal(t, 0.4, d[DoubleBarDistance])
	assert.Equal(t, 0.5, d[EndBarDistance])
	assert.Equal(t, true, d[UseWideBeams])
}

func TestMetadataErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	m, _, err := loadBravura(`{ "engravingDefaults": `)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.True(t, m.IsValid(GClef), "expected font metrics despite broken metadata")
	//
	m, _, err = loadBravura(`{
		"glyphsWithAnchors": [ "noteheadBlack" ],
		"engravingDefaults": { "stemThickness": 0.12 }
	}`)
	require.NoError(t, err)
	assert.Equal(t, font.PointF{}, m.SmuflAnchor(NoteheadBlack, StemUpSE))
	assert.Equal(t, 0.12, m.EngravingDefaults()[StemWidth], "expected other sections to load")
	//
	dir := t.TempDir()
	fontfile := filepath.Join(dir, "Leland.otf")
	require.NoError(t, os.WriteFile(fontfile, []byte("x"), 0644))
	m = NewMetrics(newFakeProvider(), nil, 1)
	err = m.Load("Leland", fontfile)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.True(t, m.IsValid(GClef))
	//
	m = NewMetrics(newFakeProvider(), nil, 1)
	err = m.Load("Leland", filepath.Join(dir, "missing.otf"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.False(t, m.IsValid(GClef))
}

func TestPixelRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.symbols")
	defer teardown()
	//
	assert.Equal(t, 1.0, PixelRatioFromConfig(nil))
	assert.Equal(t, 1.0, PixelRatioFromConfig(testconfig.Conf{}))
	assert.Equal(t, 2.0, PixelRatioFromConfig(testconfig.Conf{ConfPixelRatio: 200}))
	assert.Equal(t, 1.0, PixelRatioFromConfig(testconfig.Conf{ConfPixelRatio: -5}))
	//
	p := newFakeProvider()
	m := NewMetrics(p, nil, 2)
	dir := t.TempDir()
	fontfile := filepath.Join(dir, "Bravura.otf")
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFile), []byte("{}"), 0644))
	require.NoError(t, m.Load("Bravura", fontfile))
	assert.Equal(t, 40.0, m.Font().PointSize)
	assert.Equal(t, 60.0, m.Advance(GClef), "expected metrics at doubled size")
}
