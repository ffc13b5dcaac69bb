package font

// Face is a single physical font at a fixed raster size.
//
// Implementations are not safe for concurrent use. Queries before a
// successful Load return zero values.
type Face interface {
	// Load loads the font file at path. The face will answer queries at
	// key.PixelSize. A non-nil error means the face must not be queried.
	Load(key FaceKey, path string, symbolMode bool) error
	Key() FaceKey
	IsSymbolMode() bool

	Leading() F26Dot6
	Ascent() F26Dot6
	Descent() F26Dot6
	XHeight() F26Dot6

	// Glyphs maps a codepoint sequence to positioned glyphs.
	Glyphs(text []rune) []GlyphPos
	GlyphIndex(code rune) GlyphIndex
	// FindCharCode is the best-effort inverse of GlyphIndex. It returns 0 if
	// no codepoint maps to idx.
	FindCharCode(idx GlyphIndex) rune
	GlyphBbox(idx GlyphIndex) FBBox
	GlyphAdvance(idx GlyphIndex) F26Dot6
	GlyphShape(idx GlyphIndex) *Shape
}

// FaceFactory creates an unloaded face for a font file.
type FaceFactory func(path string) Face

// --- Rendered glyphs -------------------------------------------------------

// Sdf is a signed distance field bitmap, one byte per pixel, rows top-down.
type Sdf struct {
	Width, Height int
	Bitmap        []byte
}

// IsNull is true if s carries no bitmap.
func (s Sdf) IsNull() bool {
	return len(s.Bitmap) == 0
}

// GlyphImage is a rendered glyph: the SDF bitmap and the rectangle it has to
// be placed at.
type GlyphImage struct {
	Rect RectF
	Sdf  Sdf
}

// IsNull is true if img carries no bitmap.
func (img GlyphImage) IsNull() bool {
	return img.Sdf.IsNull()
}
