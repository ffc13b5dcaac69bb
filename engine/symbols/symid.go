package symbols

import "fmt"

var symIDsByName map[string]SymID

func init() {
	symIDsByName = make(map[string]SymID, len(symInfos))
	for i, info := range symInfos {
		if info.id != SymID(i) {
			panic(fmt.Sprintf("symbol table out of order at %d: %s", i, info.name))
		}
		symIDsByName[info.name] = info.id
	}
}

// SymbolCount is the number of known symbols, including NoSym.
func SymbolCount() int {
	return len(symInfos)
}

// IsValid is true for every known symbol except NoSym.
func (id SymID) IsValid() bool {
	return id > NoSym && int(id) < len(symInfos)
}

// String returns the SMuFL name of a symbol.
func (id SymID) String() string {
	if id < 0 || int(id) >= len(symInfos) {
		return fmt.Sprintf("SymID(%d)", int(id))
	}
	return symInfos[id].name
}

// SmuflCode is the codepoint of a symbol in the SMuFL private use area, or
// 0 for symbols which exist in some fonts only.
func (id SymID) SmuflCode() rune {
	if !id.IsValid() {
		return 0
	}
	return symInfos[id].smufl
}

// LegacyCode is the codepoint of a symbol in the Unicode musical symbol
// blocks, or 0.
func (id SymID) LegacyCode() rune {
	if !id.IsValid() {
		return 0
	}
	return symInfos[id].legacy
}

// SymIDByName returns the symbol for a SMuFL glyph name, or NoSym.
func SymIDByName(name string) SymID {
	if id, ok := symIDsByName[name]; ok {
		return id
	}
	return NoSym
}

// Code holds the codepoints a font uses for a symbol. Smufl is the
// codepoint found in the font, which may differ from the symbol's SMuFL
// codepoint if the font declares an alternate. Legacy is only set if the
// font lacks the SMuFL codepoint.
type Code struct {
	Smufl  rune
	Legacy rune
}

// IsValid is true if the font has a glyph for the symbol.
func (c Code) IsValid() bool {
	return c.Smufl != 0 || c.Legacy != 0
}

// Rune is the codepoint to draw a symbol with.
func (c Code) Rune() rune {
	if c.Smufl != 0 {
		return c.Smufl
	}
	return c.Legacy
}

// String is the codepoint as a string, suitable for text rendering.
func (c Code) String() string {
	if !c.IsValid() {
		return ""
	}
	return string(c.Rune())
}
