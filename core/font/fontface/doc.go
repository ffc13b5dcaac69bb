/*
Package fontface implements font faces, i.e. physical fonts loaded at a
fixed raster size.

There are two backends:

* OutlineFace reads standard OpenType/TrueType files and extracts glyph
metrics and outlines.

* PackedFace reads a zip container with precomputed glyph metrics, outlines
and a ligature table. Packed containers are written by PackWriter.

Faces are wrapped in a ValidatingFace, which forwards every call unchanged
and traces suspicious results. DefaultFactory selects the backend from the
file name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontface

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.fonts'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.fonts")
}

// LoadedPixelSize is the raster size every face is loaded at. Requests for
// other sizes are served by rescaling.
const LoadedPixelSize = 200
