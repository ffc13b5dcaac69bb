/*
Package resources gives access to font files, manifests and cache files.

Clients read and write files through the FileSystem capability. Paths
starting with ":/" denote packaged resources, which are served by a
Registry from registered zip archives or file systems (e.g. embed.FS).
All other paths are delegated to the operating system.

There is no global registry. Applications create one at startup and hand it
to the font subsystems.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'notefonts.resources'.
func tracer() tracing.Trace {
	return tracing.Select("notefonts.resources")
}
