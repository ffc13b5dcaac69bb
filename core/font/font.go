/*
Package font is for font identities, font requests and the face contract
shared by all font backends.

We stick to the following nomenclature:

* A "font data key" identifies a font file by family, bold and italic.
Family names are compared case-insensitively.

* A "face key" identifies a concrete face configuration: a font data key,
the purpose the font is used for and a raster size in pixels.

* A "face" is one physically loaded font resource at one fixed raster size,
able to answer glyph and metric queries. Faces are loaded once at a
reference size and rescaled analytically for every other requested size.

Glyph geometry crossing the face boundary is expressed in 26.6 fixed point
(see F26Dot6). Conversions to floating point device units must go through
the helpers in this package.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-23, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// tracer traces with key 'notefonts.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("notefonts.fonts")
}

// Resolution constants. Device units are pixels at DPI.
const (
	DPIFactor = 5
	DPI       = 72 * DPIFactor
)

// Purpose tells what a font is used for. Defaults in the font database are
// configured per purpose.
type Purpose int8

// Font purposes
const (
	Undefined Purpose = iota
	Unknown
	Text
	MusicSymbol
	MusicSymbolText
	Tablature
)

func (p Purpose) String() string {
	switch p {
	case Unknown:
		return "Unknown"
	case Text:
		return "Text"
	case MusicSymbol:
		return "MusicSymbol"
	case MusicSymbolText:
		return "MusicSymbolText"
	case Tablature:
		return "Tablature"
	}
	return "Undefined"
}

// --- Keys ------------------------------------------------------------------

// FontDataKey identifies a font file by family, bold and italic.
// The family is stored case-folded, which makes identity case-insensitive.
type FontDataKey struct {
	Family string
	Bold   bool
	Italic bool
}

// NewFontDataKey creates a data key, folding the family name.
func NewFontDataKey(family string, bold, italic bool) FontDataKey {
	return FontDataKey{
		Family: NormalizeFamily(family),
		Bold:   bold,
		Italic: italic,
	}
}

// NormalizeFamily trims a family name and folds its case.
func NormalizeFamily(family string) string {
	return cases.Fold().String(strings.TrimSpace(family))
}

// Valid is true if k names a family.
func (k FontDataKey) Valid() bool {
	return k.Family != ""
}

// Equal compares two keys, ignoring case differences of the family names.
func (k FontDataKey) Equal(other FontDataKey) bool {
	return k.Compare(other) == 0
}

// Compare orders keys by bold, then italic, then family.
func (k FontDataKey) Compare(other FontDataKey) int {
	if c := compareBool(k.Bold, other.Bold); c != 0 {
		return c
	}
	if c := compareBool(k.Italic, other.Italic); c != 0 {
		return c
	}
	return strings.Compare(NormalizeFamily(k.Family), NormalizeFamily(other.Family))
}

func (k FontDataKey) String() string {
	return fmt.Sprintf("%s[b=%v,i=%v]", k.Family, k.Bold, k.Italic)
}

// FaceKey identifies a loaded face or a requested face configuration.
type FaceKey struct {
	DataKey   FontDataKey
	Purpose   Purpose
	PixelSize int
}

// Compare orders face keys by purpose, then data key, then pixel size.
func (k FaceKey) Compare(other FaceKey) int {
	if k.Purpose != other.Purpose {
		if k.Purpose < other.Purpose {
			return -1
		}
		return 1
	}
	if c := k.DataKey.Compare(other.DataKey); c != 0 {
		return c
	}
	switch {
	case k.PixelSize < other.PixelSize:
		return -1
	case k.PixelSize > other.PixelSize:
		return 1
	}
	return 0
}

// Equal is true if k and other identify the same configuration.
func (k FaceKey) Equal(other FaceKey) bool {
	return k.Compare(other) == 0
}

func (k FaceKey) String() string {
	return fmt.Sprintf("%s/%s/%dpx", k.DataKey, k.Purpose, k.PixelSize)
}

// FaceKeyComparator is a comparator for ordered containers holding FaceKeys.
func FaceKeyComparator(a, b interface{}) int {
	return a.(FaceKey).Compare(b.(FaceKey))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

// --- Font requests ---------------------------------------------------------

// Font is a logical font request as issued by layout code.
type Font struct {
	Family    string
	PointSize float64
	PixelSize int // takes precedence over PointSize if > 0
	Bold      bool
	Italic    bool
	Purpose   Purpose
}

// PixelSizeFor returns the pixel size requested by f, converting the point
// size at DPI if no pixel size is set.
func PixelSizeFor(f Font) int {
	if f.PixelSize > 0 {
		return f.PixelSize
	}
	return int(f.PointSize * DPI / 72.0)
}

// DataKeyFor returns the font data key of a font request.
func DataKeyFor(f Font) FontDataKey {
	return NewFontDataKey(f.Family, f.Bold, f.Italic)
}

// FaceKeyFor returns the face key of a font request.
func FaceKeyFor(f Font) FaceKey {
	return FaceKey{
		DataKey:   DataKeyFor(f),
		Purpose:   f.Purpose,
		PixelSize: PixelSizeFor(f),
	}
}
