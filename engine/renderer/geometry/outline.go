package geometry

import (
	"github.com/Carmen-Shannon/gates/common"
	"github.com/chewxy/math32"
)

var (
	OutlineTriCost = Cost{Vertices: 6, Indices: 18}
	BorderTriCost  = Cost{Vertices: 9, Indices: 21}
)

// OutlineCircleCost is the cost of an outlined circle: an outer and inner ring of segments vertices each.
func OutlineCircleCost(segments uint32) Cost {
	n := int(segments)
	return Cost{Vertices: 2 * n, Indices: 6 * n}
}

// triangleBand indexes the six triangles between an outer triangle (vertices 0-2)
// and its inset copy (vertices 3-5).
var triangleBand = [18]uint32{
	0, 1, 4,
	0, 3, 4,
	1, 4, 5,
	1, 2, 5,
	2, 5, 3,
	2, 0, 3,
}

// Incircle returns the incenter and inradius of the triangle v1 v2 v3.
// The radius comes from Heron's formula, r = sqrt((s-a)(s-b)(s-c)/s), and the center is the
// side-length weighted average of the vertices. A degenerate (collinear) triangle has r = 0.
//
// Parameters:
//   - v1, v2, v3: the triangle's vertices
//
// Returns:
//   - common.Vec2: the incenter
//   - float32: the inradius
func Incircle(v1, v2, v3 common.Vec2) (common.Vec2, float32) {
	a := v1.Dist(v2)
	b := v2.Dist(v3)
	c := v3.Dist(v1)

	perimeter := a + b + c
	s := perimeter / 2
	r := math32.Sqrt((s - a) * (s - b) * (s - c) / s)

	center := v1.Scale(b).Add(v2.Scale(c)).Add(v3.Scale(a)).Scale(1 / perimeter)
	return center, r
}

// Inset moves each vertex of the triangle toward its incenter so that the band between the
// original and the inset triangle has the given width along every edge.
// Collinear input divides by a zero inradius and yields non-finite vertices.
//
// Parameters:
//   - v1, v2, v3: the triangle's vertices
//   - width: the band width
//
// Returns:
//   - [3]common.Vec2: the inset vertices, in the same order as the input
func Inset(v1, v2, v3 common.Vec2, width float32) [3]common.Vec2 {
	center, r := Incircle(v1, v2, v3)
	k := width / r
	return [3]common.Vec2{
		center.Sub(v1).Scale(k).Add(v1),
		center.Sub(v2).Scale(k).Add(v2),
		center.Sub(v3).Scale(k).Add(v3),
	}
}

// OutlineTri appends a mitered band of the given width along the inside of a triangle's edges.
func OutlineTri(b *Buffer, v1, v2, v3 common.Vec2, width float32, color common.Color) {
	b.begin()
	inner := Inset(v1, v2, v3, width)

	for _, p := range [6]common.Vec2{v1, v2, v3, inner[0], inner[1], inner[2]} {
		b.pushVertex(vertex(p, color))
	}
	b.pushIndices(triangleBand[:]...)
}

// OutlineCircle appends a ring of the given width along the inside of a circle.
// The inner radius is widened by 1/cos(π/segments) so the faceted stroke keeps a constant width.
// segments must be positive.
func OutlineCircle(b *Buffer, center common.Vec2, radius float32, segments uint32, width float32, color common.Color) {
	b.begin()
	inc := 2 * math32.Pi / float32(segments)
	innerRadius := radius - width/math32.Cos(inc/2)
	n := 2 * segments

	for k := uint32(0); k < segments; k++ {
		angle := float32(k) * inc
		b.pushVertex(vertex(polar(center, radius, angle), color))
		b.pushVertex(vertex(polar(center, innerRadius, angle), color))

		i := 2 * k
		b.pushIndices(
			i, i+1, (i+3)%n,
			i, (i+2)%n, (i+3)%n,
		)
	}
}
