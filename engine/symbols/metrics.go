package symbols

import (
	"path"
	"path/filepath"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
	"github.com/npillmayer/notefonts/engine/fonts"
)

// Spatium20 is the size of a staff space in pixels for a 20pt staff.
const Spatium20 = 5.0 * font.DPI / 72

// MetadataFile is the name of the SMuFL metadata file, expected in the
// folder of the font file.
const MetadataFile = "metadata.json"

// Provider is the query surface of the fonts engine the metrics are
// computed from.
type Provider interface {
	AddSymbolFont(family string, path string) int
	SymInFont(f font.Font, code rune) bool
	SymBBox(f font.Font, code rune, dpiScale float64) font.RectF
	SymAdvance(f font.Font, code rune, dpiScale float64) float64
}

var _ Provider = (*fonts.Engine)(nil)

// SymbolMetrics is the lookup table of a music symbol font.
type SymbolMetrics interface {
	Load(family string, path string) error
	Font() font.Font
	SymCode(id SymID) rune
	FromCode(code rune) SymID
	IsValid(id SymID) bool
	IsCompound(id SymID) bool
	SubSymbols(id SymID) []SymID
	BBox(id SymID) font.RectF
	Advance(id SymID) float64
	SmuflAnchor(id SymID, anchor AnchorID) font.PointF
	EngravingDefaults() map[StyleID]interface{}
}

// MetricsFactory creates the symbol metrics for a font file. Applications
// may substitute their own factory, e.g. to load pre-computed tables.
type MetricsFactory func(path string) SymbolMetrics

// DefaultMetricsFactory returns a factory creating metrics which are
// computed by provider.
func DefaultMetricsFactory(provider Provider, fsys resources.FileSystem, pixelRatio float64) MetricsFactory {
	return func(string) SymbolMetrics {
		return NewMetrics(provider, fsys, pixelRatio)
	}
}

// Sym holds the metrics of a symbol. Boxes and advances are in pixels,
// with y growing downwards.
type Sym struct {
	Code       rune
	BBox       font.RectF
	Advance    float64
	Anchors    map[AnchorID]font.PointF
	SubSymbols []SymID
}

// IsValid is true if the font has a visible glyph for the symbol.
func (s *Sym) IsValid() bool {
	return s.Code != 0 && s.BBox.IsValid()
}

// IsCompound is true for symbols drawn as a sequence of other symbols.
func (s *Sym) IsCompound() bool {
	return len(s.SubSymbols) > 0
}

// Metrics is the symbol table of a SMuFL font, computed from the glyphs
// of the font file and its metadata.
type Metrics struct {
	provider   Provider
	fs         resources.FileSystem
	pixelRatio float64
	family     string
	path       string
	font       font.Font
	syms       []Sym
	defaults   map[StyleID]interface{}
}

var _ SymbolMetrics = (*Metrics)(nil)

// NewMetrics creates an empty symbol table. Metadata files are read from
// fsys. pixelRatio scales the 20pt reference size; values ≤ 0 count as 1.
func NewMetrics(provider Provider, fsys resources.FileSystem, pixelRatio float64) *Metrics {
	if fsys == nil {
		fsys = resources.OSFileSystem{}
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Metrics{
		provider:   provider,
		fs:         fsys,
		pixelRatio: pixelRatio,
		syms:       make([]Sym, SymbolCount()),
		defaults:   make(map[StyleID]interface{}),
	}
}

// Load registers the font file at fontPath for family and computes the
// metrics of every known symbol. It then applies anchors, composed
// glyphs, stylistic alternates and engraving defaults from the font's
// metadata.
//
// If the font cannot be registered, the table stays empty. If the metadata
// is missing or malformed, an error is returned but the metrics computed
// from the font remain usable.
func (m *Metrics) Load(family string, fontPath string) error {
	m.family = family
	m.path = fontPath
	if m.provider.AddSymbolFont(family, fontPath) == -1 {
		return core.Error(core.EMISSING, "cannot load symbol font %s", fontPath)
	}
	m.font = font.Font{
		Family:    family,
		PointSize: 20 * m.pixelRatio,
		Purpose:   font.MusicSymbol,
	}
	for id := range m.syms {
		sid := SymID(id)
		code := Code{Smufl: sid.SmuflCode(), Legacy: sid.LegacyCode()}
		if !code.IsValid() {
			continue
		}
		m.computeMetrics(&m.syms[id], code)
	}
	mpath := metadataPath(fontPath)
	data, err := m.fs.ReadFile(mpath)
	if err != nil {
		tracer().Errorf("failed to open glyph metadata file %s", mpath)
		return core.WrapError(err, core.EMISSING, "no metadata for symbol font %s", family)
	}
	meta, err := parseMetadata(data)
	if err != nil {
		tracer().Errorf("json parse error in %s: %v", mpath, err)
		return core.WrapError(err, core.EINVALID, "invalid metadata for symbol font %s", family)
	}
	m.loadGlyphsWithAnchors(meta.glyphsWithAnchors())
	m.loadComposedGlyphs()
	m.loadStylisticAlternates(meta.glyphsWithAlternates())
	m.loadEngravingDefaults(meta.engravingDefaults())
	return nil
}

func metadataPath(fontPath string) string {
	if resources.IsResourcePath(fontPath) {
		return path.Join(path.Dir(fontPath), MetadataFile)
	}
	return filepath.Join(filepath.Dir(fontPath), MetadataFile)
}

// dpiScale maps symbol mode pixels to pixels at the requested font size.
func (m *Metrics) dpiScale() float64 {
	return float64(font.PixelSizeFor(m.font)) / fonts.SymbolsPixelSize
}

// computeMetrics tries the SMuFL codepoint first, then the legacy one.
// A sym keeps its code if neither is in the font.
func (m *Metrics) computeMetrics(sym *Sym, code Code) {
	if code.Smufl != 0 && m.provider.SymInFont(m.font, code.Smufl) {
		sym.Code = code.Smufl
	} else if code.Legacy != 0 && m.provider.SymInFont(m.font, code.Legacy) {
		sym.Code = code.Legacy
	}
	if sym.Code > 0 {
		scale := m.dpiScale()
		sym.BBox = m.provider.SymBBox(m.font, sym.Code, scale)
		sym.Advance = m.provider.SymAdvance(m.font, sym.Code, scale)
	}
}

func (m *Metrics) loadGlyphsWithAnchors(glyphs map[string]map[string][]float64) {
	for name, anchors := range glyphs {
		id := SymIDByName(name)
		if id == NoSym {
			// fonts carry anchors for many glyphs without a symbol
			continue
		}
		sym := &m.syms[id]
		for aname, xy := range anchors {
			anchor, ok := AnchorIDByName(aname)
			if !ok || len(xy) < 2 {
				continue
			}
			if sym.Anchors == nil {
				sym.Anchors = make(map[AnchorID]font.PointF)
			}
			sym.Anchors[anchor] = font.PointF{X: xy[0], Y: -xy[1]}.Mul(Spatium20)
		}
	}
}

// composedGlyphs are drawn from sub-symbols if the font has no glyph of
// its own.
var composedGlyphs = []struct {
	id   SymID
	subs []SymID
}{
	{OrnamentPrallMordent, []SymID{
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentMiddleVerticalStroke,
		OrnamentZigZagLineWithRightEnd,
	}},
	{OrnamentUpPrall, []SymID{
		OrnamentBottomLeftConcaveStroke,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineWithRightEnd,
	}},
	{OrnamentUpMordent, []SymID{
		OrnamentBottomLeftConcaveStroke,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentMiddleVerticalStroke,
		OrnamentZigZagLineWithRightEnd,
	}},
	{OrnamentPrallDown, []SymID{
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentBottomRightConcaveStroke,
	}},
	{OrnamentDownMordent, []SymID{
		OrnamentLeftVerticalStroke,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentMiddleVerticalStroke,
		OrnamentZigZagLineWithRightEnd,
	}},
	{OrnamentPrallUp, []SymID{
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentTopRightConvexStroke,
	}},
	{OrnamentLinePrall, []SymID{
		OrnamentLeftVerticalStroke,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineNoRightEnd,
		OrnamentZigZagLineWithRightEnd,
	}},
}

func (m *Metrics) loadComposedGlyphs() {
	for _, c := range composedGlyphs {
		sym := &m.syms[c.id]
		if sym.IsValid() {
			continue
		}
		sym.SubSymbols = c.subs
		sym.BBox = m.symsBBox(c.subs)
	}
}

// symsBBox unites the boxes of syms set left to right by their advances.
func (m *Metrics) symsBBox(ids []SymID) font.RectF {
	var r font.RectF
	x := 0.0
	for _, id := range ids {
		s := &m.syms[id]
		r = r.Unite(s.BBox.Translated(x, 0))
		x += s.Advance
	}
	return r
}

// glyphsWithAlternates lists the stylistic alternates we know symbols for.
var glyphsWithAlternates = []struct {
	glyph     string
	alternate string
	id        SymID
}{
	{"4stringTabClef", "4stringTabClefSerif", FourStringTabClefSerif},
	{"6stringTabClef", "6stringTabClefSerif", SixStringTabClefSerif},
	{"cClef", "cClefFrench", CClefFrench},
	{"cClef", "cClefFrench20C", CClefFrench20C},
	{"fClef", "fClefFrench", FClefFrench},
	{"fClef", "fClef19thCentury", FClef19thCentury},
	{"noteheadBlack", "noteheadBlackOversized", NoteheadBlack},
	{"noteheadHalf", "noteheadHalfOversized", NoteheadHalf},
	{"noteheadWhole", "noteheadWholeOversized", NoteheadWhole},
	{"noteheadDoubleWhole", "noteheadDoubleWholeOversized", NoteheadDoubleWhole},
	{"noteheadDoubleWholeSquare", "noteheadDoubleWholeSquareOversized", NoteheadDoubleWholeSquare},
	{"noteheadDoubleWhole", "noteheadDoubleWholeAlt", NoteheadDoubleWholeAlt},
	{"brace", "braceSmall", BraceSmall},
	{"brace", "braceLarge", BraceLarge},
	{"brace", "braceLarger", BraceLarger},
	{"flag1024thDown", "flag1024thDownStraight", Flag1024thDownStraight},
	{"flag1024thUp", "flag1024thUpStraight", Flag1024thUpStraight},
	{"flag128thDown", "flag128thDownStraight", Flag128thDownStraight},
	{"flag128thUp", "flag128thUpStraight", Flag128thUpStraight},
	{"flag16thDown", "flag16thDownStraight", Flag16thDownStraight},
	{"flag16thUp", "flag16thUpStraight", Flag16thUpStraight},
	{"flag256thDown", "flag256thDownStraight", Flag256thDownStraight},
	{"flag256thUp", "flag256thUpStraight", Flag256thUpStraight},
	{"flag32ndDown", "flag32ndDownStraight", Flag32ndDownStraight},
	{"flag32ndUp", "flag32ndUpStraight", Flag32ndUpStraight},
	{"flag512thDown", "flag512thDownStraight", Flag512thDownStraight},
	{"flag512thUp", "flag512thUpStraight", Flag512thUpStraight},
	{"flag64thDown", "flag64thDownStraight", Flag64thDownStraight},
	{"flag64thUp", "flag64thUpStraight", Flag64thUpStraight},
	{"flag8thDown", "flag8thDownStraight", Flag8thDownStraight},
	{"flag8thUp", "flag8thUpStraight", Flag8thUpStraight},
}

func (m *Metrics) loadStylisticAlternates(glyphs map[string]alternates) {
	if glyphs == nil {
		return
	}
	for _, g := range glyphsWithAlternates {
		alts, ok := glyphs[g.glyph]
		if !ok {
			continue
		}
		for _, alt := range alts.Alternates {
			if alt.Name != g.alternate {
				continue
			}
			code := Code{
				Smufl:  parseCodepoint(alt.Codepoint),
				Legacy: parseCodepoint(alt.AlternateCodepoint),
			}
			if code.IsValid() {
				m.computeMetrics(&m.syms[g.id], code)
			}
			break
		}
	}
}

func (m *Metrics) loadEngravingDefaults(values map[string]float64) {
	var apply func(key string, value float64)
	apply = func(key string, value float64) {
		mapping, ok := engravingDefaultsMapping[key]
		if !ok {
			return
		}
		for _, s := range mapping.styles {
			m.insertDefault(s, value)
		}
		for _, child := range mapping.children {
			if _, present := values[child]; !present {
				apply(child, value)
			}
		}
	}
	for _, key := range sortedKeys(values) {
		switch key {
		case "textEnclosureThickness":
			continue
		case "beamSpacing":
			m.insertDefault(UseWideBeams, values[key] > wideBeamsThreshold)
			continue
		}
		apply(key, values[key])
	}
	m.insertDefault(MusicalTextFont, m.family+" Text")
}

// insertDefault does not overwrite values set before.
func (m *Metrics) insertDefault(s StyleID, value interface{}) {
	if _, exists := m.defaults[s]; !exists {
		m.defaults[s] = value
	}
}

// --- Queries ---------------------------------------------------------------

// Font is the font request symbols are measured with.
func (m *Metrics) Font() font.Font {
	return m.font
}

// Path is the font file the metrics have been loaded from.
func (m *Metrics) Path() string {
	return m.path
}

// Family is the family the font has been registered for.
func (m *Metrics) Family() string {
	return m.family
}

func (m *Metrics) sym(id SymID) *Sym {
	if id < 0 || int(id) >= len(m.syms) {
		return &m.syms[NoSym]
	}
	return &m.syms[id]
}

// Sym returns a copy of the metrics of a symbol.
func (m *Metrics) Sym(id SymID) Sym {
	return *m.sym(id)
}

// SymCode is the codepoint to draw a symbol with. For symbols without a
// glyph in the font this is the SMuFL codepoint.
func (m *Metrics) SymCode(id SymID) rune {
	if s := m.sym(id); s.IsValid() {
		return s.Code
	}
	return id.SmuflCode()
}

// FromCode returns the first symbol drawn with code, or NoSym.
func (m *Metrics) FromCode(code rune) SymID {
	if code == 0 {
		return NoSym
	}
	for id := range m.syms {
		if m.syms[id].Code == code {
			return SymID(id)
		}
	}
	return NoSym
}

// IsValid is true if the font has a visible glyph for a symbol.
func (m *Metrics) IsValid(id SymID) bool {
	return m.sym(id).IsValid()
}

// IsCompound is true for symbols drawn from sub-symbols.
func (m *Metrics) IsCompound(id SymID) bool {
	return m.sym(id).IsCompound()
}

// SubSymbols returns the sub-symbols of a compound symbol.
func (m *Metrics) SubSymbols(id SymID) []SymID {
	return m.sym(id).SubSymbols
}

// BBox returns the bounding box of a symbol in pixels.
func (m *Metrics) BBox(id SymID) font.RectF {
	return m.sym(id).BBox
}

// Advance returns the advance of a symbol in pixels.
func (m *Metrics) Advance(id SymID) float64 {
	return m.sym(id).Advance
}

// SmuflAnchor returns an anchor of a symbol in pixels, relative to the
// glyph origin. Missing anchors are at the origin.
func (m *Metrics) SmuflAnchor(id SymID, anchor AnchorID) font.PointF {
	if p, ok := m.sym(id).Anchors[anchor]; ok {
		return p
	}
	return font.PointF{}
}

// EngravingDefaults returns the style defaults recommended by the font.
// Values are float64 staff spaces, except for UseWideBeams (bool) and
// MusicalTextFont (string).
func (m *Metrics) EngravingDefaults() map[StyleID]interface{} {
	return m.defaults
}
