package font

import (
	"fmt"
	"math"
)

// GlyphIndex is the index of a glyph within a face. Index 0 denotes a
// missing glyph.
type GlyphIndex uint32

// GlyphPos is a shaped glyph: its index and horizontal advance.
type GlyphPos struct {
	Index    GlyphIndex
	XAdvance F26Dot6
}

// FBBox is a glyph box in 26.6, with a top-left origin and y growing
// downwards.
type FBBox struct {
	Left, Top, Width, Height F26Dot6
}

// IsNull is true for a box without extent.
func (b FBBox) IsNull() bool {
	return b.Width == 0 && b.Height == 0
}

// Bottom returns the lower edge of b.
func (b FBBox) Bottom() F26Dot6 {
	return b.Top + b.Height
}

// ToRect converts b to device units, multiplying by scale.
func (b FBBox) ToRect(scale float64) RectF {
	return RectF{
		X: FromF26Dot6Scaled(b.Left, scale),
		Y: FromF26Dot6Scaled(b.Top, scale),
		W: FromF26Dot6Scaled(b.Width, scale),
		H: FromF26Dot6Scaled(b.Height, scale),
	}
}

func (b FBBox) String() string {
	return fmt.Sprintf("(%v,%v %vx%v)", b.Left, b.Top, b.Width, b.Height)
}

// PointF is a point in floating point units.
type PointF struct {
	X, Y float64
}

// Add returns p+q.
func (p PointF) Add(q PointF) PointF {
	return PointF{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p PointF) Sub(q PointF) PointF {
	return PointF{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p PointF) Mul(s float64) PointF {
	return PointF{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p PointF) Dot(q PointF) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the euclidean length of p.
func (p PointF) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// RectF is a rectangle in floating point device units, top-left origin.
type RectF struct {
	X, Y, W, H float64
}

// IsNull is true for the zero rectangle.
func (r RectF) IsNull() bool {
	return r.W == 0 && r.H == 0
}

// IsValid is true if r has positive extent.
func (r RectF) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// Right returns the right edge of r.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the lower edge of r.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Translated returns r moved by (dx,dy).
func (r RectF) Translated(dx, dy float64) RectF {
	return RectF{r.X + dx, r.Y + dy, r.W, r.H}
}

// Scaled returns r with all coordinates multiplied by s.
func (r RectF) Scaled(s float64) RectF {
	return RectF{r.X * s, r.Y * s, r.W * s, r.H * s}
}

// ScaledXY returns r with x-coordinates multiplied by sx and y-coordinates by sy.
func (r RectF) ScaledXY(sx, sy float64) RectF {
	return RectF{r.X * sx, r.Y * sy, r.W * sx, r.H * sy}
}

// Unite returns the smallest rectangle containing r and other. Null
// rectangles do not contribute.
func (r RectF) Unite(other RectF) RectF {
	if r.IsNull() {
		return other
	}
	if other.IsNull() {
		return r
	}
	left := math.Min(r.X, other.X)
	top := math.Min(r.Y, other.Y)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return RectF{left, top, right - left, bottom - top}
}

func (r RectF) String() string {
	return fmt.Sprintf("(%.2f,%.2f %.2fx%.2f)", r.X, r.Y, r.W, r.H)
}
