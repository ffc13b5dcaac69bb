/*
Package gfx rasterizes signed distance field glyph images for preview and
debugging.

Distance fields are sampled up or down to the size of their placement
rectangle and thresholded at the outline (a field value of 0.5). The
result is a grayscale picture with black ink on white, which may be
written as PNG.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.gfx'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.gfx")
}
