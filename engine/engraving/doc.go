/*
Package engraving manages the music fonts a score may be engraved with.

An engraving font is a named SMuFL font together with its symbol metrics.
Metrics are loaded lazily, on first lookup of the font by name. Symbols a
font lacks may be taken from a fallback font, which usually is Bravura.

	provider := engraving.NewProvider(symbols.DefaultMetricsFactory(engine, fsys, 1))
	provider.RegisterDefaults(":/fonts", false)
	leland := provider.FontByName("leland")
	box := leland.BBox(symbols.GClef, 1.0)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engraving

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'notefonts.engraving'
func tracer() tracing.Trace {
	return tracing.Select("notefonts.engraving")
}
