/*
Package fontregistry maintains the font database: a registry mapping font
identities (family, bold, italic) to font files, with per-purpose defaults
used as fallbacks for unknown or missing fonts.

Fonts are registered explicitly; there is no discovery of system fonts.
Every registration gets an ID, increasing in registration order and
starting at 0 for each database instance. Registrations are never removed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.fonts'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.fonts")
}
