package symbols

// StyleID identifies an engraving style property a symbol font may
// provide a default for.
type StyleID int

// Style properties set from a font's engraving defaults. Lengths are in
// staff spaces.
const (
	StaffLineWidth StyleID = iota
	StemWidth
	BeamWidth
	UseWideBeams // bool
	LedgerLineWidth
	LedgerLineLength
	SlurEndWidth
	SlurMidWidth
	BarWidth
	DoubleBarWidth
	EndBarWidth
	DoubleBarDistance
	EndBarDistance
	RepeatBarlineDotSeparation
	BracketWidth
	HairpinLineWidth
	OttavaLineWidth
	PedalLineWidth
	VoltaLineWidth
	LyricsLineThickness
	TupletBracketWidth
	MMRestHBarThickness
	MusicalTextFont // string
)

var styleNames = [...]string{
	"staffLineWidth",
	"stemWidth",
	"beamWidth",
	"useWideBeams",
	"ledgerLineWidth",
	"ledgerLineLength",
	"slurEndWidth",
	"slurMidWidth",
	"barWidth",
	"doubleBarWidth",
	"endBarWidth",
	"doubleBarDistance",
	"endBarDistance",
	"repeatBarlineDotSeparation",
	"bracketWidth",
	"hairpinLineWidth",
	"ottavaLineWidth",
	"pedalLineWidth",
	"voltaLineWidth",
	"lyricsLineThickness",
	"tupletBracketWidth",
	"mmRestHBarThickness",
	"musicalTextFont",
}

func (s StyleID) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknownStyle"
	}
	return styleNames[s]
}

// engravingDefault maps a SMuFL engraving default to style properties.
// A child key missing from a font's metadata receives the value of its
// parent.
type engravingDefault struct {
	styles   []StyleID
	children []string
}

// Keys not listed are not supported. "beamSpacing" and
// "textEnclosureThickness" are handled separately.
var engravingDefaultsMapping = map[string]engravingDefault{
	"staffLineThickness":         {styles: []StyleID{StaffLineWidth}},
	"stemThickness":              {styles: []StyleID{StemWidth}},
	"beamThickness":              {styles: []StyleID{BeamWidth}},
	"legerLineThickness":         {styles: []StyleID{LedgerLineWidth}},
	"legerLineExtension":         {styles: []StyleID{LedgerLineLength}},
	"slurEndpointThickness":      {styles: []StyleID{SlurEndWidth}},
	"slurMidpointThickness":      {styles: []StyleID{SlurMidWidth}},
	"thinBarlineThickness":       {styles: []StyleID{BarWidth, DoubleBarWidth}},
	"thickBarlineThickness":      {styles: []StyleID{EndBarWidth}},
	"barlineSeparation":          {styles: []StyleID{DoubleBarDistance}, children: []string{"thinThickBarlineSeparation"}},
	"thinThickBarlineSeparation": {styles: []StyleID{EndBarDistance}},
	"repeatBarlineDotSeparation": {styles: []StyleID{RepeatBarlineDotSeparation}},
	"bracketThickness":           {styles: []StyleID{BracketWidth}},
	"hairpinThickness":           {styles: []StyleID{HairpinLineWidth}},
	"octaveLineThickness":        {styles: []StyleID{OttavaLineWidth}},
	"pedalLineThickness":         {styles: []StyleID{PedalLineWidth}},
	"repeatEndingLineThickness":  {styles: []StyleID{VoltaLineWidth}},
	"lyricLineThickness":         {styles: []StyleID{LyricsLineThickness}},
	"tupletBracketThickness":     {styles: []StyleID{TupletBracketWidth}},
	"hBarThickness":              {styles: []StyleID{MMRestHBarThickness}},
}

// wideBeamsThreshold is the beam spacing above which beams are drawn wide.
const wideBeamsThreshold = 0.75
