package rendercache

import (
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/npillmayer/notefonts/core/font"
)

// FileSuffix is the extension of cached image files.
const FileSuffix = ".sdf"

// KeyString encodes a cache key as `family_glyph_bold_italic_pixelSize`.
// Booleans are written as 0 or 1.
func KeyString(face font.FaceKey, glyph font.GlyphIndex) string {
	var b strings.Builder
	b.Grow(50)
	b.WriteString(face.DataKey.Family)
	b.WriteString("_" + strconv.FormatUint(uint64(glyph), 10))
	b.WriteString("_" + boolString(face.DataKey.Bold))
	b.WriteString("_" + boolString(face.DataKey.Italic))
	b.WriteString("_" + strconv.Itoa(face.PixelSize))
	return b.String()
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FileName returns the name of the file an image is persisted to.
func FileName(face font.FaceKey, glyph font.GlyphIndex, img font.GlyphImage) string {
	var b strings.Builder
	b.Grow(100)
	b.WriteString(KeyString(face, glyph))
	b.WriteString("_[")
	b.WriteString(strconv.Itoa(img.Sdf.Width) + "|" + strconv.Itoa(img.Sdf.Height) + "|")
	b.WriteString(realToString(img.Rect.X) + "|" + realToString(img.Rect.Y) + "|")
	b.WriteString(realToString(img.Rect.W) + "|" + realToString(img.Rect.H))
	b.WriteString("]" + FileSuffix)
	return b.String()
}

// coordinates are stored with two decimal digits, truncated
func realToString(v float64) string {
	return strconv.Itoa(int(math.Trunc(v * 100)))
}

func realFromString(s string) (float64, error) {
	n, err := strconv.Atoi(s)
	return float64(n) / 100, err
}

// fileInfo is an index entry for a cached image file.
type fileInfo struct {
	path          string
	width, height int
	rect          font.RectF
}

// ParseFileName decodes a file name written by FileName. It returns the key
// string and the image geometry.
func ParseFileName(fname string) (key string, info fileInfo, ok bool) {
	name := path.Base(strings.ReplaceAll(fname, "\\", "/"))
	name = strings.TrimSuffix(name, path.Ext(name))
	start := strings.IndexByte(name, '[')
	end := strings.IndexByte(name, ']')
	if start < 1 || end < start {
		return "", fileInfo{}, false
	}
	key = name[:start-1]
	params := strings.Split(name[start+1:end], "|")
	if len(params) != 6 {
		return "", fileInfo{}, false
	}
	var err error
	var v [4]float64
	info.path = fname
	if info.width, err = strconv.Atoi(params[0]); err != nil {
		return "", fileInfo{}, false
	}
	if info.height, err = strconv.Atoi(params[1]); err != nil {
		return "", fileInfo{}, false
	}
	for i := range v {
		if v[i], err = realFromString(params[i+2]); err != nil {
			return "", fileInfo{}, false
		}
	}
	info.rect = font.RectF{X: v[0], Y: v[1], W: v[2], H: v[3]}
	return key, info, true
}
