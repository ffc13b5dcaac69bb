package font

import "math"

// EdgeType is the geometric type of an outline edge.
type EdgeType uint8

// Edge types, numbered as in the packed container format.
const (
	EdgeUndefined EdgeType = iota
	EdgeLinear
	EdgeQuadratic
	EdgeCubic
)

// PointCount returns the number of points an edge of type t carries.
func (t EdgeType) PointCount() int {
	switch t {
	case EdgeLinear:
		return 2
	case EdgeQuadratic:
		return 3
	case EdgeCubic:
		return 4
	}
	return 0
}

func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "linear"
	case EdgeQuadratic:
		return "quadratic"
	case EdgeCubic:
		return "cubic"
	}
	return "undefined"
}

// FillRule selects how overlapping contours determine the inside of a shape.
type FillRule uint8

// Fill rules
const (
	FillNonZero FillRule = iota
	FillOdd
	FillPositive
	FillNegative
)

// Edge is a segment of a contour. Points holds start point, control points
// and end point, in this order.
type Edge struct {
	Type   EdgeType
	Points []PointF
}

// Start returns the first point of e.
func (e Edge) Start() PointF {
	if len(e.Points) == 0 {
		return PointF{}
	}
	return e.Points[0]
}

// End returns the last point of e.
func (e Edge) End() PointF {
	if len(e.Points) == 0 {
		return PointF{}
	}
	return e.Points[len(e.Points)-1]
}

// PointAt evaluates e at parameter t in [0,1].
func (e Edge) PointAt(t float64) PointF {
	p := e.Points
	u := 1 - t
	switch e.Type {
	case EdgeLinear:
		return p[0].Mul(u).Add(p[1].Mul(t))
	case EdgeQuadratic:
		return p[0].Mul(u * u).Add(p[1].Mul(2 * u * t)).Add(p[2].Mul(t * t))
	case EdgeCubic:
		return p[0].Mul(u * u * u).Add(p[1].Mul(3 * u * u * t)).
			Add(p[2].Mul(3 * u * t * t)).Add(p[3].Mul(t * t * t))
	}
	return e.Start()
}

// Flatten approximates e by a polyline with the given number of steps per
// curve. The first point of e is included.
func (e Edge) Flatten(steps int) []PointF {
	if e.Type == EdgeLinear || e.Type == EdgeUndefined || steps < 1 {
		return []PointF{e.Start(), e.End()}
	}
	pts := make([]PointF, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, e.PointAt(float64(i)/float64(steps)))
	}
	return pts
}

// Contour is a closed sequence of edges.
type Contour struct {
	Edges []Edge
}

// Shape is the vector outline of a glyph, in pixels at the loaded size with
// y pointing upwards.
type Shape struct {
	Contours     []Contour
	InverseYAxis bool
	FillRule     FillRule
}

// IsEmpty is true if s has no contours.
func (s *Shape) IsEmpty() bool {
	return s == nil || len(s.Contours) == 0
}

// EdgeCount returns the number of edges over all contours.
func (s *Shape) EdgeCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, c := range s.Contours {
		n += len(c.Edges)
	}
	return n
}

// boundsSteps is the number of samples per curve for bounds computation.
const boundsSteps = 16

// Bounds returns the tight bounds of s as left, bottom, right, top.
// Curves are sampled, not bounded by their control points.
func (s *Shape) Bounds() (l, b, r, t float64) {
	l, b = math.Inf(1), math.Inf(1)
	r, t = math.Inf(-1), math.Inf(-1)
	if s == nil {
		return
	}
	for _, c := range s.Contours {
		for _, e := range c.Edges {
			for _, p := range e.Flatten(boundsSteps) {
				l = math.Min(l, p.X)
				r = math.Max(r, p.X)
				b = math.Min(b, p.Y)
				t = math.Max(t, p.Y)
			}
		}
	}
	return
}
