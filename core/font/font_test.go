package font

import (
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDataKeyCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	a := NewFontDataKey("Bravura Text", false, false)
	b := NewFontDataKey("  bravura TEXT", false, false)
	assert.True(t, a.Equal(b), "expected family identity to ignore case")
	assert.Equal(t, "bravura text", a.Family)
	assert.False(t, a.Equal(NewFontDataKey("Bravura Text", true, false)))
}

func TestDataKeyOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	regular := NewFontDataKey("Zeta", false, false)
	italic := NewFontDataKey("Alpha", false, true)
	bold := NewFontDataKey("Alpha", true, false)
	assert.Equal(t, -1, regular.Compare(italic), "bold and italic order before family")
	assert.Equal(t, -1, italic.Compare(bold))
	assert.Equal(t, 1, bold.Compare(regular))
	assert.Equal(t, -1, NewFontDataKey("Alpha", false, false).Compare(regular))
}

func TestFaceKeyOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	m := treemap.NewWith(FaceKeyComparator)
	k1 := FaceKey{DataKey: NewFontDataKey("Edwin", false, false), Purpose: Text, PixelSize: 200}
	k2 := FaceKey{DataKey: NewFontDataKey("Bravura", false, false), Purpose: MusicSymbol, PixelSize: 100}
	k3 := FaceKey{DataKey: NewFontDataKey("Edwin", false, false), Purpose: Text, PixelSize: 100}
	m.Put(k1, 1)
	m.Put(k2, 2)
	m.Put(k3, 3)
	keys := m.Keys()
	assert.Equal(t, k3, keys[0], "expected smaller pixel size first")
	assert.Equal(t, k1, keys[1])
	assert.Equal(t, k2, keys[2], "expected purpose to dominate ordering")
	v, found := m.Get(FaceKey{DataKey: NewFontDataKey("EDWIN", false, false), Purpose: Text, PixelSize: 200})
	assert.True(t, found)
	assert.Equal(t, 1, v)
}

func TestPixelSizeFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	assert.Equal(t, 50, PixelSizeFor(Font{PointSize: 10}), "10pt at 360 DPI")
	assert.Equal(t, 80, PixelSizeFor(Font{PointSize: 10, PixelSize: 80}))
	assert.Equal(t, 0, PixelSizeFor(Font{}))
}

func TestFixedPointConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	assert.Equal(t, F26Dot6(96), ToF26Dot6(1.5))
	assert.Equal(t, 1.5, FromF26Dot6(96))
	assert.Equal(t, 0.75, FromF26Dot6Scaled(96, 0.5))
	assert.Equal(t, F26Dot6(640), F26Dot6FromInt(10))
	assert.Equal(t, int16(32767), ToInt16(F26Dot6(40000)))
	assert.Equal(t, int16(-32768), ToInt16(F26Dot6(-40000)))
}

func TestRectUnite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	r := RectF{}.Unite(RectF{0, -10, 5, 10})
	r = r.Unite(RectF{5, -12, 5, 14})
	assert.Equal(t, RectF{0, -12, 10, 14}, r)
	assert.Equal(t, RectF{1, 2, 3, 4}, RectF{2, 4, 6, 8}.Scaled(0.5))
}

func TestShapeBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	square := &Shape{Contours: []Contour{{Edges: []Edge{
		{Type: EdgeLinear, Points: []PointF{{0, 0}, {10, 0}}},
		{Type: EdgeLinear, Points: []PointF{{10, 0}, {10, 10}}},
		{Type: EdgeQuadratic, Points: []PointF{{10, 10}, {5, 20}, {0, 10}}},
		{Type: EdgeLinear, Points: []PointF{{0, 10}, {0, 0}}},
	}}}}
	l, b, r, top := square.Bounds()
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 0.0, b)
	assert.Equal(t, 10.0, r)
	assert.InDelta(t, 15.0, top, 0.001, "expected curve apex, not control point")
	assert.Equal(t, 4, square.EdgeCount())
	assert.True(t, (&Shape{}).IsEmpty())
}

func TestFallbackFontData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.fonts")
	defer teardown()
	//
	assert.NotEmpty(t, FallbackFontData())
}
