package fontface

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
)

// PackedSuffix is the file extension of packed containers.
const PackedSuffix = ".ftx"

// Names of the fixed entries of a packed container.
const (
	MetaEntry      = "meta.txt"
	LigaturesEntry = "ligatures.txt"
)

// PackedFace is a face reading a packed container: a zip archive holding
// face metrics, a ligature table and one entry per glyph, named by the
// decimal glyph index. Glyph indices of packed faces are codepoints.
type PackedFace struct {
	fs         resources.FileSystem
	key        font.FaceKey
	symbolMode bool
	loaded     bool
	meta       Meta
	ligatures  *Ligatures
	entries    map[string]*zip.File
	chars      map[rune]struct{} // lazily built from entry names
	cache      map[font.GlyphIndex]*GlyphData
}

var _ font.Face = (*PackedFace)(nil)

// NewPackedFace creates an unloaded packed face reading through fsys. If
// fsys is nil, the operating system's file system is used.
func NewPackedFace(fsys resources.FileSystem) *PackedFace {
	if fsys == nil {
		fsys = resources.OSFileSystem{}
	}
	return &PackedFace{fs: fsys}
}

// Load opens the container at path. A missing or empty meta entry fails the
// load.
func (f *PackedFace) Load(key font.FaceKey, path string, symbolMode bool) error {
	f.key = key
	f.symbolMode = symbolMode
	f.loaded = false
	data, err := f.fs.ReadFile(path)
	if err != nil {
		tracer().Errorf("not exists: %s", path)
		return err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return core.WrapError(err, core.EINVALID, "not a packed font container: %s", path)
	}
	f.entries = make(map[string]*zip.File, len(zr.File))
	for _, zf := range zr.File {
		f.entries[zf.Name] = zf
	}
	f.cache = make(map[font.GlyphIndex]*GlyphData)
	f.chars = nil
	metaData, err := f.entry(MetaEntry)
	if err != nil {
		return err
	}
	if len(metaData) == 0 {
		tracer().Errorf("meta is empty")
		return core.Error(core.EINVALID, "meta is empty: %s", path)
	}
	f.meta = ParseMeta(string(metaData))
	tracer().Infof("packed font version: %s, glyphs: %d, path: %s", f.meta.Version, f.meta.Glyphs, path)
	f.ligatures = NewLigatures(nil)
	if ligData, err := f.entry(LigaturesEntry); err == nil && len(ligData) > 0 {
		f.ligatures = ParseLigatures(string(ligData))
	}
	f.loaded = true
	return nil
}

func (f *PackedFace) entry(name string) ([]byte, error) {
	zf, ok := f.entries[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no entry %s in packed font", name)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot open entry %s", name)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Key returns the key the face was loaded with.
func (f *PackedFace) Key() font.FaceKey { return f.key }

// IsSymbolMode is true if the face answers symbol-mode metrics.
func (f *PackedFace) IsSymbolMode() bool { return f.symbolMode }

func (f *PackedFace) Leading() font.F26Dot6 { return f.meta.Leading }
func (f *PackedFace) Ascent() font.F26Dot6  { return f.meta.Ascent }
func (f *PackedFace) Descent() font.F26Dot6 { return f.meta.Descent }
func (f *PackedFace) XHeight() font.F26Dot6 { return f.meta.XHeight }

// Ligatures returns the ligature table of the container.
func (f *PackedFace) Ligatures() *Ligatures { return f.ligatures }

// Glyphs applies the ligature table, then maps each remaining codepoint to a
// positioned glyph.
func (f *PackedFace) Glyphs(text []rune) []font.GlyphPos {
	data := make([]rune, len(text))
	copy(data, text)
	f.ligatures.Apply(data)
	result := make([]font.GlyphPos, 0, len(data))
	for _, ch := range data {
		if ch == 0 {
			continue
		}
		idx := f.GlyphIndex(ch)
		if idx == 0 {
			tracer().Errorf("not found glyph: %d", ch)
		}
		result = append(result, font.GlyphPos{Index: idx, XAdvance: f.GlyphAdvance(idx)})
	}
	return result
}

// GlyphIndex returns code if the container holds an entry for it, else 0.
func (f *PackedFace) GlyphIndex(code rune) font.GlyphIndex {
	if _, ok := f.charSet()[code]; !ok {
		return 0
	}
	return font.GlyphIndex(code)
}

// FindCharCode is the inverse of GlyphIndex.
func (f *PackedFace) FindCharCode(idx font.GlyphIndex) rune {
	ch := rune(idx)
	if _, ok := f.charSet()[ch]; !ok {
		return 0
	}
	return ch
}

func (f *PackedFace) GlyphBbox(idx font.GlyphIndex) font.FBBox {
	return f.glyphData(idx).Bbox(f.symbolMode)
}

func (f *PackedFace) GlyphAdvance(idx font.GlyphIndex) font.F26Dot6 {
	return f.glyphData(idx).Advance(f.symbolMode)
}

func (f *PackedFace) GlyphShape(idx font.GlyphIndex) *font.Shape {
	return &f.glyphData(idx).Shape
}

func (f *PackedFace) charSet() map[rune]struct{} {
	if f.chars != nil {
		return f.chars
	}
	f.chars = make(map[rune]struct{})
	for name := range f.entries {
		base := path.Base(name)
		base = strings.TrimSuffix(base, path.Ext(base))
		if base == "" || base[0] < '0' || base[0] > '9' {
			continue
		}
		if code, err := strconv.Atoi(base); err == nil {
			f.chars[rune(code)] = struct{}{}
		}
	}
	return f.chars
}

// glyphData decodes and caches the entry for idx. Missing or corrupt
// entries yield empty glyph data.
func (f *PackedFace) glyphData(idx font.GlyphIndex) *GlyphData {
	if g, ok := f.cache[idx]; ok {
		return g
	}
	g := &GlyphData{}
	if f.loaded {
		if data, err := f.entry(strconv.Itoa(int(idx))); err == nil {
			if g, err = DecodeGlyph(data); err != nil {
				tracer().Errorf("glyph %d: %v", idx, err)
				g = &GlyphData{}
			}
		}
	}
	if f.cache != nil {
		f.cache[idx] = g
	}
	return g
}

// --- Meta data -------------------------------------------------------------

// Meta holds the face metrics of a packed container. Metrics are 26.6
// values at the loaded pixel size.
type Meta struct {
	Version string
	Glyphs  int
	Leading font.F26Dot6
	Ascent  font.F26Dot6
	Descent font.F26Dot6
	XHeight font.F26Dot6
}

// ParseMeta reads `key:value` lines. Malformed lines are skipped, unknown
// keys are reported.
func ParseMeta(data string) Meta {
	var m Meta
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, val, ok := strings.Cut(line, ":")
		if !ok {
			tracer().Errorf("failed parse param: %q", line)
			continue
		}
		switch name {
		case "version":
			m.Version = val
		case "glyphs", "leading", "ascent", "descent", "xHeight":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				tracer().Errorf("failed parse param value: %q", line)
				continue
			}
			m.set(name, n)
		default:
			tracer().Infof("unknown param: %s", name)
		}
	}
	return m
}

func (m *Meta) set(name string, n int) {
	switch name {
	case "glyphs":
		m.Glyphs = n
	case "leading":
		m.Leading = font.F26Dot6(n)
	case "ascent":
		m.Ascent = font.F26Dot6(n)
	case "descent":
		m.Descent = font.F26Dot6(n)
	case "xHeight":
		m.XHeight = font.F26Dot6(n)
	}
}

// String formats m in the format read by ParseMeta.
func (m Meta) String() string {
	var b strings.Builder
	b.WriteString("version:" + m.Version + "\n")
	b.WriteString("glyphs:" + strconv.Itoa(m.Glyphs) + "\n")
	b.WriteString("leading:" + strconv.Itoa(int(m.Leading)) + "\n")
	b.WriteString("ascent:" + strconv.Itoa(int(m.Ascent)) + "\n")
	b.WriteString("descent:" + strconv.Itoa(int(m.Descent)) + "\n")
	b.WriteString("xHeight:" + strconv.Itoa(int(m.XHeight)) + "\n")
	return b.String()
}
