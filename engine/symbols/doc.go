/*
Package symbols builds the metrics table of a SMuFL music symbol font.

SMuFL (Standard Music Font Layout) assigns codepoints in the private use
area to music symbols and ships a JSON metadata file with every font. The
metadata holds anchor points of glyphs (e.g., where a stem attaches to a
notehead), stylistic alternates and recommended engraving defaults such as
line thicknesses.

Metrics.Load resolves every known symbol against the font, then applies
the font's metadata. The result is a lookup table from symbol IDs to
codepoint, bounding box, advance and anchors, scaled to device units at a
fixed 20pt font size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbols

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.symbols'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.symbols")
}
