/*
Package rendercache stores rendered glyph images (signed distance fields).

Images are kept in memory for the lifetime of a cache, without eviction.
Optionally they are persisted to a runtime cache directory, one file per
glyph. File names encode the complete cache key plus the image geometry,
so a directory listing suffices to rebuild the lookup index:

	{family}_{glyph}_{bold}_{italic}_{pixelSize}_[{w}|{h}|{x*100}|{y*100}|{w*100}|{h*100}].sdf

A read-only directory of pre-rendered images (usually a resource path) is
consulted as well. Its entries take precedence over runtime entries.

The runtime directory carries a revision marker. If the marker does not
match the configured revision, the directory is cleared on Init.

Caches are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rendercache

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.engine'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.engine")
}
