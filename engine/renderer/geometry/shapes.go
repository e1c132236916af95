package geometry

import (
	"github.com/Carmen-Shannon/gates/common"
	"github.com/chewxy/math32"
)

var (
	QuadCost        = Cost{Vertices: 4, Indices: 6}
	TriCost         = Cost{Vertices: 3, Indices: 3}
	LineCost        = Cost{Vertices: 2, Indices: 2}
	ThickLineCost   = Cost{Vertices: 4, Indices: 6}
	OutlineQuadCost = Cost{Vertices: 4, Indices: 8}
)

// CircleCost is the cost of a filled circle: a center vertex plus one ring vertex per segment.
func CircleCost(segments uint32) Cost {
	n := int(segments)
	return Cost{Vertices: n + 1, Indices: 3 * n}
}

// quadUV is the texture coordinate of each quad corner, counter-clockwise from the origin corner.
var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Quad appends an axis-aligned quad whose origin corner is pos.
//
// Parameters:
//   - b: the triangle buffer to write into
//   - pos: the corner with texture coordinate (0, 0)
//   - size: the width and height of the quad
//   - color: the tint applied to every corner
//   - slot: the texture slot sampled by the quad
func Quad(b *Buffer, pos, size common.Vec2, color common.Color, slot int) {
	b.begin()
	corners := [4]common.Vec2{
		pos,
		{X: pos.X + size.X, Y: pos.Y},
		{X: pos.X + size.X, Y: pos.Y + size.Y},
		{X: pos.X, Y: pos.Y + size.Y},
	}
	for i, p := range corners {
		v := vertex(p, color)
		v.TexCoord = quadUV[i]
		v.TexID = float32(slot)
		b.pushVertex(v)
	}
	b.pushIndices(0, 1, 2, 2, 3, 0)
}

// Tri appends a single filled triangle.
func Tri(b *Buffer, v1, v2, v3 common.Vec2, color common.Color) {
	b.begin()
	b.pushVertex(vertex(v1, color))
	b.pushVertex(vertex(v2, color))
	b.pushVertex(vertex(v3, color))
	b.pushIndices(0, 1, 2)
}

// Circle appends a filled circle tessellated as a fan of segments triangles around center.
// Ring vertex k sits at angle k*2π/segments; the last triangle wraps back to ring vertex 1.
// segments must be positive.
func Circle(b *Buffer, center common.Vec2, radius float32, segments uint32, color common.Color) {
	b.begin()
	inc := 2 * math32.Pi / float32(segments)

	b.pushVertex(vertex(center, color))
	for k := uint32(0); k < segments; k++ {
		b.pushVertex(vertex(polar(center, radius, float32(k)*inc), color))

		next := k + 2
		if k == segments-1 {
			next = 1
		}
		b.pushIndices(0, k+1, next)
	}
}

// Line appends a one pixel wide line segment to a line-list buffer.
func Line(b *Buffer, p1, p2 common.Vec2, color common.Color) {
	b.begin()
	b.pushVertex(vertex(p1, color))
	b.pushVertex(vertex(p2, color))
	b.pushIndices(0, 1)
}

// ThickLine appends a line segment of the given width as a quad. The corners are the endpoints
// displaced by ± the half-width perpendicular. Coincident endpoints produce non-finite positions.
func ThickLine(b *Buffer, p1, p2 common.Vec2, width float32, color common.Color) {
	b.begin()
	diff := p2.Sub(p1)
	off := diff.Scale(width / (diff.Len() * 2))

	corners := [4]common.Vec2{
		{X: p1.X + off.Y, Y: p1.Y - off.X},
		{X: p1.X - off.Y, Y: p1.Y + off.X},
		{X: p2.X - off.Y, Y: p2.Y + off.X},
		{X: p2.X + off.Y, Y: p2.Y - off.X},
	}
	for i, p := range corners {
		v := vertex(p, color)
		v.TexCoord = quadUV[i]
		b.pushVertex(v)
	}
	b.pushIndices(0, 1, 2, 2, 3, 0)
}

// OutlineQuad appends the four edges of an axis-aligned rectangle to a line-list buffer.
func OutlineQuad(b *Buffer, pos, size common.Vec2, color common.Color) {
	b.begin()
	b.pushVertex(vertex(pos, color))
	b.pushVertex(vertex(common.Vec2{X: pos.X, Y: pos.Y + size.Y}, color))
	b.pushVertex(vertex(pos.Add(size), color))
	b.pushVertex(vertex(common.Vec2{X: pos.X + size.X, Y: pos.Y}, color))
	b.pushIndices(0, 1, 1, 2, 2, 3, 3, 0)
}

// polar returns the point at the given radius and angle (radians) around center.
func polar(center common.Vec2, radius, angle float32) common.Vec2 {
	s, c := math32.Sincos(angle)
	return common.Vec2{X: c*radius + center.X, Y: s*radius + center.Y}
}
