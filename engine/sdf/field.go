package sdf

import (
	"math"

	"github.com/npillmayer/notefonts/core/font"
)

// segment is a directed line piece of a flattened contour.
type segment struct {
	a, b font.PointF
}

// field holds a flattened shape: the boundary segments of the merged
// contours and all segments for inside tests.
type field struct {
	segments []segment
	all      []segment
	fillRule font.FillRule
}

// signedDistance is positive inside the shape.
func (f *field) signedDistance(p font.PointF) float64 {
	d := math.Inf(1)
	for _, s := range f.segments {
		d = math.Min(d, s.distance(p))
	}
	if math.IsInf(d, 1) {
		d = 0
	}
	if inside(f.all, p, f.fillRule) {
		return d
	}
	return -d
}

func (s segment) distance(p font.PointF) float64 {
	ab := s.b.Sub(s.a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(s.a).Length()
	}
	t := math.Max(0, math.Min(1, p.Sub(s.a).Dot(ab)/l2))
	return p.Sub(s.a.Add(ab.Mul(t))).Length()
}

func flatten(shape *font.Shape, steps int) []segment {
	var segs []segment
	for _, c := range shape.Contours {
		for _, e := range c.Edges {
			pts := e.Flatten(steps)
			for i := 1; i < len(pts); i++ {
				if pts[i] != pts[i-1] {
					segs = append(segs, segment{pts[i-1], pts[i]})
				}
			}
		}
	}
	return segs
}

// winding returns the winding number of the segments around p.
func winding(segs []segment, p font.PointF) int {
	w := 0
	for _, s := range segs {
		if s.a.Y <= p.Y {
			if s.b.Y > p.Y && cross(s.a, s.b, p) > 0 {
				w++
			}
		} else if s.b.Y <= p.Y && cross(s.a, s.b, p) < 0 {
			w--
		}
	}
	return w
}

func cross(a, b, p font.PointF) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

func inside(segs []segment, p font.PointF, rule font.FillRule) bool {
	w := winding(segs, p)
	switch rule {
	case font.FillOdd:
		return w%2 != 0
	case font.FillPositive:
		return w > 0
	case font.FillNegative:
		return w < 0
	}
	return w != 0
}

// mergeEpsilon is the probe distance used to decide whether a segment lies
// on the boundary of the union of all contours.
const mergeEpsilon = 1e-3

// mergeContours returns the segments on the outer boundary of the shape.
// Segments of overlapping contours which lie inside the filled area are
// dropped.
func mergeContours(shape *font.Shape, steps int) []segment {
	all := flatten(shape, steps)
	if len(shape.Contours) < 2 {
		return all
	}
	merged := make([]segment, 0, len(all))
	for _, s := range all {
		d := s.b.Sub(s.a)
		n := font.PointF{X: -d.Y, Y: d.X}.Mul(mergeEpsilon / d.Length())
		m := s.a.Add(d.Mul(0.5))
		if inside(all, m.Add(n), shape.FillRule) != inside(all, m.Sub(n), shape.FillRule) {
			merged = append(merged, s)
		}
	}
	tracer().Debugf("merged contours: %d of %d segments on boundary", len(merged), len(all))
	return merged
}
