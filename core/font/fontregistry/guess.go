package fontregistry

import (
	"path"
	"strings"

	"github.com/npillmayer/notefonts/core/font"
	xfont "golang.org/x/image/font"
)

// RegisterFile registers a font file, guessing family, bold and italic from
// the file name, e.g. "Edwin-BdIta.otf" registers family "Edwin", bold,
// italic.
func (db *Database) RegisterFile(fontfile string) (int, font.FontDataKey) {
	family := FamilyFromFilename(fontfile)
	style, weight := GuessStyleAndWeight(fontfile)
	bold := weight >= xfont.WeightSemiBold
	italic := style == xfont.StyleItalic || style == xfont.StyleOblique
	key := font.NewFontDataKey(family, bold, italic)
	return db.AddFont(key, fontfile), key
}

// FamilyFromFilename strips directory, extension and variant suffix from a
// font file name.
func FamilyFromFilename(fontfile string) string {
	base := path.Base(strings.ReplaceAll(fontfile, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if dash := strings.LastIndex(base, "-"); dash > 0 {
		base = base[:dash]
	}
	return strings.TrimSpace(base)
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(strings.ReplaceAll(fontfilename, "\\", "/"))
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "roman", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b", "bd":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		case "italic", "ita", "it":
			return xfont.StyleItalic, xfont.WeightNormal
		case "bdita", "bolditalic":
			return xfont.StyleItalic, xfont.WeightBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
