/*
Package fonts is the fonts engine: it resolves font requests to loaded faces,
answers metric queries scaled to the requested size and renders text to
signed distance field images.

Faces are loaded once per actual font and symbol mode at a fixed reference
size (LoadedPixelSize). Every request is served by a RequiredFace, which
pairs a loaded face with the factor from the reference size to the requested
pixel size. Resolving a request may load a face; use LookupFace for a pure
lookup.

Metric queries never return an error. If no face can be resolved for a
request, they return zero values and trace an error.

An engine is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fonts

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.engine'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.engine")
}
