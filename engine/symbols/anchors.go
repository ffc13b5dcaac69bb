package symbols

// AnchorID names a SMuFL attachment point of a glyph.
type AnchorID int

// SMuFL anchors used by the notation layer.
const (
	StemDownNW AnchorID = iota
	StemUpSE
	StemDownSW
	StemUpNW
	CutOutNE
	CutOutNW
	CutOutSE
	CutOutSW
	OpticalCenter
)

var anchorNames = [...]string{
	"stemDownNW",
	"stemUpSE",
	"stemDownSW",
	"stemUpNW",
	"cutOutNE",
	"cutOutNW",
	"cutOutSE",
	"cutOutSW",
	"opticalCenter",
}

func (a AnchorID) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return "unknownAnchor"
	}
	return anchorNames[a]
}

// AnchorIDByName returns the anchor for a SMuFL anchor name. Anchors not
// used by the notation layer are unknown.
func AnchorIDByName(name string) (AnchorID, bool) {
	for i, n := range anchorNames {
		if n == name {
			return AnchorID(i), true
		}
	}
	return -1, false
}
