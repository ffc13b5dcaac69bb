package fontface

import (
	"archive/zip"
	"io"
	"sort"
	"strconv"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
)

// PackVersion is the container version written by PackWriter.
const PackVersion = "1.0"

// PackWriter writes packed containers.
type PackWriter struct {
	zw      *zip.Writer
	written map[string]bool
}

// NewPackWriter creates a writer for a container written to w. Clients must
// call Close to finish the container.
func NewPackWriter(w io.Writer) *PackWriter {
	return &PackWriter{zw: zip.NewWriter(w), written: make(map[string]bool)}
}

func (pw *PackWriter) put(name string, data []byte) error {
	if pw.written[name] {
		return core.Error(core.EINVALID, "duplicate entry %s in packed font", name)
	}
	w, err := pw.zw.Create(name)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create entry %s", name)
	}
	if _, err = w.Write(data); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write entry %s", name)
	}
	pw.written[name] = true
	return nil
}

// WriteMeta writes the meta entry.
func (pw *PackWriter) WriteMeta(m Meta) error {
	return pw.put(MetaEntry, []byte(m.String()))
}

// WriteLigatures writes the ligature table.
func (pw *PackWriter) WriteLigatures(ls *Ligatures) error {
	return pw.put(LigaturesEntry, []byte(ls.String()))
}

// WriteGlyph writes the entry for glyph idx.
func (pw *PackWriter) WriteGlyph(idx font.GlyphIndex, g *GlyphData) error {
	return pw.put(strconv.Itoa(int(idx)), EncodeGlyph(g))
}

// Close finishes the container.
func (pw *PackWriter) Close() error {
	return pw.zw.Close()
}

// Pack converts a loaded face into a packed container. text and sym are the
// same font loaded in text and symbol mode. One entry is written per code
// present in the font, named by the code. Codes missing from the font are
// skipped.
func Pack(text, sym font.Face, codes []rune, ligatures *Ligatures, w io.Writer) error {
	sorted := make([]rune, len(codes))
	copy(sorted, codes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	pw := NewPackWriter(w)
	var count int
	var last rune = -1
	glyphs := make(map[rune]*GlyphData)
	for _, c := range sorted {
		if c == last {
			continue
		}
		last = c
		ti, si := text.GlyphIndex(c), sym.GlyphIndex(c)
		if ti == 0 {
			tracer().Debugf("pack: code %d not in font", c)
			continue
		}
		g := &GlyphData{
			TextBbox:    text.GlyphBbox(ti),
			TextAdvance: text.GlyphAdvance(ti),
			SymBbox:     sym.GlyphBbox(si),
			SymAdvance:  sym.GlyphAdvance(si),
		}
		if shape := text.GlyphShape(ti); shape != nil {
			g.Shape = *shape
		}
		glyphs[c] = g
		count++
	}
	meta := Meta{
		Version: PackVersion,
		Glyphs:  count,
		Leading: text.Leading(),
		Ascent:  text.Ascent(),
		Descent: text.Descent(),
		XHeight: text.XHeight(),
	}
	if err := pw.WriteMeta(meta); err != nil {
		return err
	}
	if ligatures.Len() > 0 {
		if err := pw.WriteLigatures(ligatures); err != nil {
			return err
		}
	}
	for _, c := range sorted {
		if g, ok := glyphs[c]; ok {
			if err := pw.WriteGlyph(font.GlyphIndex(c), g); err != nil {
				return err
			}
			delete(glyphs, c)
		}
	}
	tracer().Infof("packed %d glyphs", count)
	return pw.Close()
}
