/*
Package sdf generates single-channel signed distance fields for glyph
outlines.

A distance field encodes, per pixel, the signed distance to the nearest
outline edge. Pixels inside the glyph get values above 127, pixels outside
values below. Glyphs are fitted into a fixed-size bitmap with a margin of
1/8 of the bitmap size on every side; the resulting GlyphImage carries the
rectangle, in pixels at the face's loaded size, which the bitmap has to be
drawn at.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sdf

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.sdf'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.sdf")
}
