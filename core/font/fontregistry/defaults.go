package fontregistry

import "github.com/npillmayer/notefonts/core/font"

// Default font families
const (
	TextFamily       = "Edwin"
	SymbolFamily     = "Bravura"
	SymbolTextFamily = "Bravura Text"
	TabFamily        = "MuseScoreTab"
)

// RegisterDefaults registers the standard font set found below root (a
// directory or a resource path like ":/fonts") and configures the
// per-purpose defaults. If packed is true, the symbol and tablature fonts
// are registered in packed format (".ftx").
func (db *Database) RegisterDefaults(root string, packed bool) {
	ext := ".otf"
	tabfile := "MuseScoreTab.ttf"
	if packed {
		ext = ".ftx"
		tabfile = "tab/MuseScoreTab.ftx"
	}
	add := func(family string, bold, italic bool, file string) {
		db.AddFont(font.NewFontDataKey(family, bold, italic), joinPath(root, file))
	}
	// Text
	add(TextFamily, false, false, "edwin/Edwin-Roman.otf")
	add(TextFamily, false, true, "edwin/Edwin-Italic.otf")
	add(TextFamily, true, false, "edwin/Edwin-Bold.otf")
	add(TextFamily, true, true, "edwin/Edwin-BdIta.otf")
	// MusicSymbol[Text]
	add(SymbolFamily, false, false, "bravura/Bravura"+ext)
	add(SymbolTextFamily, false, false, "bravura/BravuraText"+ext)
	add("Leland", false, false, "leland/Leland"+ext)
	add("Leland Text", false, false, "leland/LelandText"+ext)
	// Tablature
	add(TabFamily, false, false, tabfile)
	//
	db.SetDefault(font.Unknown, font.NewFontDataKey(TextFamily, false, false))
	db.SetDefault(font.Text, font.NewFontDataKey(TextFamily, false, false))
	db.SetDefault(font.MusicSymbolText, font.NewFontDataKey(SymbolTextFamily, false, false))
	db.SetDefault(font.MusicSymbol, font.NewFontDataKey(SymbolFamily, false, false))
	db.SetDefault(font.Tablature, font.NewFontDataKey(TabFamily, false, false))
}
