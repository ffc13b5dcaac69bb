package symbols

// SymID identifies a music symbol. IDs are stable within a build only.
type SymID int

// Symbol IDs. Names follow the SMuFL glyph names.
const (
	NoSym SymID = iota
	// Brackets and barlines
	Brace
	BraceSmall
	BraceLarge
	BraceLarger
	Bracket
	BracketTop
	BracketBottom
	BarlineSingle
	BarlineDouble
	BarlineFinal
	BarlineReverseFinal
	BarlineHeavy
	BarlineHeavyHeavy
	BarlineDashed
	BarlineDotted
	// Repeats
	RepeatLeft
	RepeatRight
	RepeatRightLeft
	RepeatDots
	RepeatDot
	DalSegno
	DaCapo
	Segno
	Coda
	CodaSquare
	// Clefs
	GClef
	GClef15mb
	GClef8vb
	GClef8va
	GClef15ma
	CClef
	CClef8vb
	CClefFrench
	CClefFrench20C
	FClef
	FClef15mb
	FClef8vb
	FClef8va
	FClef15ma
	FClefFrench
	FClef19thCentury
	UnpitchedPercussionClef1
	UnpitchedPercussionClef2
	SixStringTabClef
	SixStringTabClefSerif
	FourStringTabClef
	FourStringTabClefSerif
	// Time signatures
	TimeSig0
	TimeSig1
	TimeSig2
	TimeSig3
	TimeSig4
	TimeSig5
	TimeSig6
	TimeSig7
	TimeSig8
	TimeSig9
	TimeSigCommon
	TimeSigCutCommon
	TimeSigPlus
	// Noteheads
	NoteheadDoubleWhole
	NoteheadDoubleWholeSquare
	NoteheadWhole
	NoteheadHalf
	NoteheadBlack
	NoteheadNull
	NoteheadXDoubleWhole
	NoteheadXWhole
	NoteheadXHalf
	NoteheadXBlack
	NoteheadDoubleWholeAlt
	AugmentationDot
	// Stems, flags and tremolos
	Stem
	Tremolo1
	Tremolo2
	Tremolo3
	Flag8thUp
	Flag8thDown
	Flag16thUp
	Flag16thDown
	Flag32ndUp
	Flag32ndDown
	Flag64thUp
	Flag64thDown
	Flag128thUp
	Flag128thDown
	Flag256thUp
	Flag256thDown
	Flag512thUp
	Flag512thDown
	Flag1024thUp
	Flag1024thDown
	Flag8thUpStraight
	Flag8thDownStraight
	Flag16thUpStraight
	Flag16thDownStraight
	Flag32ndUpStraight
	Flag32ndDownStraight
	Flag64thUpStraight
	Flag64thDownStraight
	Flag128thUpStraight
	Flag128thDownStraight
	Flag256thUpStraight
	Flag256thDownStraight
	Flag512thUpStraight
	Flag512thDownStraight
	Flag1024thUpStraight
	Flag1024thDownStraight
	// Accidentals
	AccidentalFlat
	AccidentalNatural
	AccidentalSharp
	AccidentalDoubleSharp
	AccidentalDoubleFlat
	AccidentalTripleSharp
	AccidentalTripleFlat
	AccidentalNaturalFlat
	AccidentalNaturalSharp
	AccidentalSharpSharp
	AccidentalParensLeft
	AccidentalParensRight
	AccidentalBracketLeft
	AccidentalBracketRight
	// Articulations and holds
	ArticAccentAbove
	ArticAccentBelow
	ArticStaccatoAbove
	ArticStaccatoBelow
	ArticTenutoAbove
	ArticTenutoBelow
	ArticStaccatissimoAbove
	ArticStaccatissimoBelow
	ArticMarcatoAbove
	ArticMarcatoBelow
	FermataAbove
	FermataBelow
	BreathMarkComma
	Caesura
	// Rests
	RestMaxima
	RestLonga
	RestDoubleWhole
	RestWhole
	RestHalf
	RestQuarter
	Rest8th
	Rest16th
	Rest32nd
	Rest64th
	Rest128th
	Rest256th
	Rest512th
	Rest1024th
	RestHBar
	RestHBarLeft
	RestHBarMiddle
	RestHBarRight
	// Octaves and pedals
	Ottava
	OttavaAlta
	OttavaBassa
	Quindicesima
	QuindicesimaAlta
	KeyboardPedalPed
	KeyboardPedalUp
	// Dynamics
	DynamicPiano
	DynamicMezzo
	DynamicForte
	DynamicRinforzando
	DynamicSforzando
	DynamicZ
	DynamicNiente
	DynamicPP
	DynamicMP
	DynamicMF
	DynamicFF
	DynamicFortePiano
	DynamicSforzato
	DynamicCrescendoHairpin
	DynamicDiminuendoHairpin
	// Ornaments
	OrnamentTrill
	OrnamentTurn
	OrnamentTurnInverted
	OrnamentTurnSlash
	OrnamentShortTrill
	OrnamentMordent
	OrnamentTremblement
	OrnamentBottomLeftConcaveStroke
	OrnamentLeftVerticalStroke
	OrnamentZigZagLineNoRightEnd
	OrnamentZigZagLineWithRightEnd
	OrnamentMiddleVerticalStroke
	OrnamentBottomRightConcaveStroke
	OrnamentTopRightConvexStroke
	OrnamentPrallMordent
	OrnamentUpPrall
	OrnamentUpMordent
	OrnamentPrallDown
	OrnamentDownMordent
	OrnamentPrallUp
	OrnamentLinePrall
	// Tuplets
	Tuplet0
	Tuplet1
	Tuplet2
	Tuplet3
	Tuplet4
	Tuplet5
	Tuplet6
	Tuplet7
	Tuplet8
	Tuplet9
	TupletColon

	lastSym
)

// symInfo describes a symbol by its SMuFL name and codepoint, together with
// a codepoint from the Unicode musical symbols blocks. Entries are ordered
// by ID.
type symInfo struct {
	id     SymID
	name   string
	smufl  rune
	legacy rune
}

var symInfos = [...]symInfo{
	{NoSym, "noSym", 0, 0},
	{Brace, "brace", 0xE000, 0x1D114},
	{BraceSmall, "braceSmall", 0, 0},
	{BraceLarge, "braceLarge", 0, 0},
	{BraceLarger, "braceLarger", 0, 0},
	{Bracket, "bracket", 0xE002, 0x1D115},
	{BracketTop, "bracketTop", 0xE003, 0},
	{BracketBottom, "bracketBottom", 0xE004, 0},
	{BarlineSingle, "barlineSingle", 0xE030, 0x1D100},
	{BarlineDouble, "barlineDouble", 0xE031, 0x1D101},
	{BarlineFinal, "barlineFinal", 0xE032, 0x1D102},
	{BarlineReverseFinal, "barlineReverseFinal", 0xE033, 0x1D103},
	{BarlineHeavy, "barlineHeavy", 0xE034, 0},
	{BarlineHeavyHeavy, "barlineHeavyHeavy", 0xE035, 0},
	{BarlineDashed, "barlineDashed", 0xE036, 0x1D104},
	{BarlineDotted, "barlineDotted", 0xE037, 0},
	{RepeatLeft, "repeatLeft", 0xE040, 0x1D106},
	{RepeatRight, "repeatRight", 0xE041, 0x1D107},
	{RepeatRightLeft, "repeatRightLeft", 0xE042, 0},
	{RepeatDots, "repeatDots", 0xE043, 0x1D108},
	{RepeatDot, "repeatDot", 0xE044, 0},
	{DalSegno, "dalSegno", 0xE045, 0x1D109},
	{DaCapo, "daCapo", 0xE046, 0x1D10A},
	{Segno, "segno", 0xE047, 0x1D10B},
	{Coda, "coda", 0xE048, 0x1D10C},
	{CodaSquare, "codaSquare", 0xE049, 0},
	{GClef, "gClef", 0xE050, 0x1D11E},
	{GClef15mb, "gClef15mb", 0xE051, 0},
	{GClef8vb, "gClef8vb", 0xE052, 0x1D120},
	{GClef8va, "gClef8va", 0xE053, 0x1D11F},
	{GClef15ma, "gClef15ma", 0xE054, 0},
	{CClef, "cClef", 0xE05C, 0x1D121},
	{CClef8vb, "cClef8vb", 0xE05D, 0},
	{CClefFrench, "cClefFrench", 0, 0},
	{CClefFrench20C, "cClefFrench20C", 0, 0},
	{FClef, "fClef", 0xE062, 0x1D122},
	{FClef15mb, "fClef15mb", 0xE063, 0},
	{FClef8vb, "fClef8vb", 0xE064, 0x1D124},
	{FClef8va, "fClef8va", 0xE065, 0x1D123},
	{FClef15ma, "fClef15ma", 0xE066, 0},
	{FClefFrench, "fClefFrench", 0, 0},
	{FClef19thCentury, "fClef19thCentury", 0, 0},
	{UnpitchedPercussionClef1, "unpitchedPercussionClef1", 0xE069, 0x1D125},
	{UnpitchedPercussionClef2, "unpitchedPercussionClef2", 0xE06A, 0x1D126},
	{SixStringTabClef, "6stringTabClef", 0xE06D, 0},
	{SixStringTabClefSerif, "6stringTabClefSerif", 0, 0},
	{FourStringTabClef, "4stringTabClef", 0xE06E, 0},
	{FourStringTabClefSerif, "4stringTabClefSerif", 0, 0},
	{TimeSig0, "timeSig0", 0xE080, 0},
	{TimeSig1, "timeSig1", 0xE081, 0},
	{TimeSig2, "timeSig2", 0xE082, 0},
	{TimeSig3, "timeSig3", 0xE083, 0},
	{TimeSig4, "timeSig4", 0xE084, 0},
	{TimeSig5, "timeSig5", 0xE085, 0},
	{TimeSig6, "timeSig6", 0xE086, 0},
	{TimeSig7, "timeSig7", 0xE087, 0},
	{TimeSig8, "timeSig8", 0xE088, 0},
	{TimeSig9, "timeSig9", 0xE089, 0},
	{TimeSigCommon, "timeSigCommon", 0xE08A, 0x1D134},
	{TimeSigCutCommon, "timeSigCutCommon", 0xE08B, 0x1D135},
	{TimeSigPlus, "timeSigPlus", 0xE08C, 0},
	{NoteheadDoubleWhole, "noteheadDoubleWhole", 0xE0A0, 0x1D15C},
	{NoteheadDoubleWholeSquare, "noteheadDoubleWholeSquare", 0xE0A1, 0},
	{NoteheadWhole, "noteheadWhole", 0xE0A2, 0x1D15D},
	{NoteheadHalf, "noteheadHalf", 0xE0A3, 0x1D157},
	{NoteheadBlack, "noteheadBlack", 0xE0A4, 0x1D158},
	{NoteheadNull, "noteheadNull", 0xE0A5, 0x1D159},
	{NoteheadXDoubleWhole, "noteheadXDoubleWhole", 0xE0A6, 0},
	{NoteheadXWhole, "noteheadXWhole", 0xE0A7, 0},
	{NoteheadXHalf, "noteheadXHalf", 0xE0A8, 0},
	{NoteheadXBlack, "noteheadXBlack", 0xE0A9, 0x1D143},
	{NoteheadDoubleWholeAlt, "noteheadDoubleWholeAlt", 0, 0},
	{AugmentationDot, "augmentationDot", 0xE1E7, 0x1D16D},
	{Stem, "stem", 0xE210, 0x1D165},
	{Tremolo1, "tremolo1", 0xE220, 0x1D167},
	{Tremolo2, "tremolo2", 0xE221, 0x1D168},
	{Tremolo3, "tremolo3", 0xE222, 0x1D169},
	{Flag8thUp, "flag8thUp", 0xE240, 0x1D16E},
	{Flag8thDown, "flag8thDown", 0xE241, 0},
	{Flag16thUp, "flag16thUp", 0xE242, 0x1D16F},
	{Flag16thDown, "flag16thDown", 0xE243, 0},
	{Flag32ndUp, "flag32ndUp", 0xE244, 0x1D170},
	{Flag32ndDown, "flag32ndDown", 0xE245, 0},
	{Flag64thUp, "flag64thUp", 0xE246, 0x1D171},
	{Flag64thDown, "flag64thDown", 0xE247, 0},
	{Flag128thUp, "flag128thUp", 0xE248, 0x1D172},
	{Flag128thDown, "flag128thDown", 0xE249, 0},
	{Flag256thUp, "flag256thUp", 0xE24A, 0},
	{Flag256thDown, "flag256thDown", 0xE24B, 0},
	{Flag512thUp, "flag512thUp", 0xE24C, 0},
	{Flag512thDown, "flag512thDown", 0xE24D, 0},
	{Flag1024thUp, "flag1024thUp", 0xE24E, 0},
	{Flag1024thDown, "flag1024thDown", 0xE24F, 0},
	{Flag8thUpStraight, "flag8thUpStraight", 0, 0},
	{Flag8thDownStraight, "flag8thDownStraight", 0, 0},
	{Flag16thUpStraight, "flag16thUpStraight", 0, 0},
	{Flag16thDownStraight, "flag16thDownStraight", 0, 0},
	{Flag32ndUpStraight, "flag32ndUpStraight", 0, 0},
	{Flag32ndDownStraight, "flag32ndDownStraight", 0, 0},
	{Flag64thUpStraight, "flag64thUpStraight", 0, 0},
	{Flag64thDownStraight, "flag64thDownStraight", 0, 0},
	{Flag128thUpStraight, "flag128thUpStraight", 0, 0},
	{Flag128thDownStraight, "flag128thDownStraight", 0, 0},
	{Flag256thUpStraight, "flag256thUpStraight", 0, 0},
	{Flag256thDownStraight, "flag256thDownStraight", 0, 0},
	{Flag512thUpStraight, "flag512thUpStraight", 0, 0},
	{Flag512thDownStraight, "flag512thDownStraight", 0, 0},
	{Flag1024thUpStraight, "flag1024thUpStraight", 0, 0},
	{Flag1024thDownStraight, "flag1024thDownStraight", 0, 0},
	{AccidentalFlat, "accidentalFlat", 0xE260, 0x266D},
	{AccidentalNatural, "accidentalNatural", 0xE261, 0x266E},
	{AccidentalSharp, "accidentalSharp", 0xE262, 0x266F},
	{AccidentalDoubleSharp, "accidentalDoubleSharp", 0xE263, 0x1D12A},
	{AccidentalDoubleFlat, "accidentalDoubleFlat", 0xE264, 0x1D12B},
	{AccidentalTripleSharp, "accidentalTripleSharp", 0xE265, 0},
	{AccidentalTripleFlat, "accidentalTripleFlat", 0xE266, 0},
	{AccidentalNaturalFlat, "accidentalNaturalFlat", 0xE267, 0},
	{AccidentalNaturalSharp, "accidentalNaturalSharp", 0xE268, 0},
	{AccidentalSharpSharp, "accidentalSharpSharp", 0xE269, 0},
	{AccidentalParensLeft, "accidentalParensLeft", 0xE26A, 0},
	{AccidentalParensRight, "accidentalParensRight", 0xE26B, 0},
	{AccidentalBracketLeft, "accidentalBracketLeft", 0xE26C, 0},
	{AccidentalBracketRight, "accidentalBracketRight", 0xE26D, 0},
	{ArticAccentAbove, "articAccentAbove", 0xE4A0, 0x1D17B},
	{ArticAccentBelow, "articAccentBelow", 0xE4A1, 0},
	{ArticStaccatoAbove, "articStaccatoAbove", 0xE4A2, 0x1D17C},
	{ArticStaccatoBelow, "articStaccatoBelow", 0xE4A3, 0},
	{ArticTenutoAbove, "articTenutoAbove", 0xE4A4, 0x1D17D},
	{ArticTenutoBelow, "articTenutoBelow", 0xE4A5, 0},
	{ArticStaccatissimoAbove, "articStaccatissimoAbove", 0xE4A6, 0x1D17E},
	{ArticStaccatissimoBelow, "articStaccatissimoBelow", 0xE4A7, 0},
	{ArticMarcatoAbove, "articMarcatoAbove", 0xE4AC, 0x1D17F},
	{ArticMarcatoBelow, "articMarcatoBelow", 0xE4AD, 0},
	{FermataAbove, "fermataAbove", 0xE4C0, 0x1D110},
	{FermataBelow, "fermataBelow", 0xE4C1, 0x1D111},
	{BreathMarkComma, "breathMarkComma", 0xE4CE, 0x1D112},
	{Caesura, "caesura", 0xE4D1, 0x1D113},
	{RestMaxima, "restMaxima", 0xE4E0, 0},
	{RestLonga, "restLonga", 0xE4E1, 0},
	{RestDoubleWhole, "restDoubleWhole", 0xE4E2, 0},
	{RestWhole, "restWhole", 0xE4E3, 0x1D13B},
	{RestHalf, "restHalf", 0xE4E4, 0x1D13C},
	{RestQuarter, "restQuarter", 0xE4E5, 0x1D13D},
	{Rest8th, "rest8th", 0xE4E6, 0x1D13E},
	{Rest16th, "rest16th", 0xE4E7, 0x1D13F},
	{Rest32nd, "rest32nd", 0xE4E8, 0x1D140},
	{Rest64th, "rest64th", 0xE4E9, 0x1D141},
	{Rest128th, "rest128th", 0xE4EA, 0x1D142},
	{Rest256th, "rest256th", 0xE4EB, 0},
	{Rest512th, "rest512th", 0xE4EC, 0},
	{Rest1024th, "rest1024th", 0xE4ED, 0},
	{RestHBar, "restHBar", 0xE4EE, 0x1D13A},
	{RestHBarLeft, "restHBarLeft", 0xE4EF, 0},
	{RestHBarMiddle, "restHBarMiddle", 0xE4F0, 0},
	{RestHBarRight, "restHBarRight", 0xE4F1, 0},
	{Ottava, "ottava", 0xE510, 0},
	{OttavaAlta, "ottavaAlta", 0xE511, 0x1D136},
	{OttavaBassa, "ottavaBassa", 0xE512, 0x1D137},
	{Quindicesima, "quindicesima", 0xE514, 0},
	{QuindicesimaAlta, "quindicesimaAlta", 0xE515, 0x1D138},
	{KeyboardPedalPed, "keyboardPedalPed", 0xE650, 0x1D1AE},
	{KeyboardPedalUp, "keyboardPedalUp", 0xE655, 0x1D1AF},
	{DynamicPiano, "dynamicPiano", 0xE520, 0x1D18F},
	{DynamicMezzo, "dynamicMezzo", 0xE521, 0x1D190},
	{DynamicForte, "dynamicForte", 0xE522, 0x1D191},
	{DynamicRinforzando, "dynamicRinforzando", 0xE523, 0x1D18C},
	{DynamicSforzando, "dynamicSforzando", 0xE524, 0x1D18D},
	{DynamicZ, "dynamicZ", 0xE525, 0x1D18E},
	{DynamicNiente, "dynamicNiente", 0xE526, 0},
	{DynamicPP, "dynamicPP", 0xE52B, 0},
	{DynamicMP, "dynamicMP", 0xE52C, 0},
	{DynamicMF, "dynamicMF", 0xE52D, 0},
	{DynamicFF, "dynamicFF", 0xE52F, 0},
	{DynamicFortePiano, "dynamicFortePiano", 0xE534, 0},
	{DynamicSforzato, "dynamicSforzato", 0xE539, 0},
	{DynamicCrescendoHairpin, "dynamicCrescendoHairpin", 0xE53E, 0x1D192},
	{DynamicDiminuendoHairpin, "dynamicDiminuendoHairpin", 0xE53F, 0x1D193},
	{OrnamentTrill, "ornamentTrill", 0xE566, 0x1D196},
	{OrnamentTurn, "ornamentTurn", 0xE567, 0x1D197},
	{OrnamentTurnInverted, "ornamentTurnInverted", 0xE568, 0x1D198},
	{OrnamentTurnSlash, "ornamentTurnSlash", 0xE569, 0x1D199},
	{OrnamentShortTrill, "ornamentShortTrill", 0xE56C, 0},
	{OrnamentMordent, "ornamentMordent", 0xE56D, 0},
	{OrnamentTremblement, "ornamentTremblement", 0xE56E, 0},
	{OrnamentBottomLeftConcaveStroke, "ornamentBottomLeftConcaveStroke", 0xE590, 0},
	{OrnamentLeftVerticalStroke, "ornamentLeftVerticalStroke", 0xE595, 0},
	{OrnamentZigZagLineNoRightEnd, "ornamentZigZagLineNoRightEnd", 0xE59D, 0},
	{OrnamentZigZagLineWithRightEnd, "ornamentZigZagLineWithRightEnd", 0xE59E, 0},
	{OrnamentMiddleVerticalStroke, "ornamentMiddleVerticalStroke", 0xE59F, 0},
	{OrnamentBottomRightConcaveStroke, "ornamentBottomRightConcaveStroke", 0xE5A4, 0},
	{OrnamentTopRightConvexStroke, "ornamentTopRightConvexStroke", 0xE5A5, 0},
	{OrnamentPrallMordent, "ornamentPrallMordent", 0, 0},
	{OrnamentUpPrall, "ornamentUpPrall", 0, 0},
	{OrnamentUpMordent, "ornamentUpMordent", 0, 0},
	{OrnamentPrallDown, "ornamentPrallDown", 0, 0},
	{OrnamentDownMordent, "ornamentDownMordent", 0, 0},
	{OrnamentPrallUp, "ornamentPrallUp", 0, 0},
	{OrnamentLinePrall, "ornamentLinePrall", 0, 0},
	{Tuplet0, "tuplet0", 0xE880, 0},
	{Tuplet1, "tuplet1", 0xE881, 0},
	{Tuplet2, "tuplet2", 0xE882, 0},
	{Tuplet3, "tuplet3", 0xE883, 0},
	{Tuplet4, "tuplet4", 0xE884, 0},
	{Tuplet5, "tuplet5", 0xE885, 0},
	{Tuplet6, "tuplet6", 0xE886, 0},
	{Tuplet7, "tuplet7", 0xE887, 0},
	{Tuplet8, "tuplet8", 0xE888, 0},
	{Tuplet9, "tuplet9", 0xE889, 0},
	{TupletColon, "tupletColon", 0xE88A, 0},
}
