package font

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// --- Fallback font ---------------------------------------------------------

// FallbackFamily is the family name under which the fallback font is known.
const FallbackFamily = "Go Sans"

// FallbackFontData returns the binary data of a font which is always
// present. Currently we use Go Sans.
func FallbackFontData() []byte {
	fallbackFontLoading.Do(func() {
		if _, err := sfnt.Parse(goregular.TTF); err != nil {
			panic("cannot load fallback font") // this cannot happen
		}
		tracer().Debugf("fallback font %s checked", FallbackFamily)
	})
	return goregular.TTF
}

var fallbackFontLoading sync.Once
