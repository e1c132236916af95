package geometry

import (
	"github.com/Carmen-Shannon/gates/common"
	"github.com/chewxy/math32"
)

// BorderCircleCost is the cost of a bordered circle: three ring vertices per segment plus the center.
func BorderCircleCost(segments uint32) Cost {
	n := int(segments)
	return Cost{Vertices: 3*n + 1, Indices: 9 * n}
}

// BorderSemicircleCost is the cost of a bordered arc: three vertices for each of the
// segments+1 steps plus the closing center.
func BorderSemicircleCost(segments uint32) Cost {
	n := int(segments)
	return Cost{Vertices: 3*(n+1) + 1, Indices: 9 * n}
}

// BorderTri appends a triangle filled with inner and edged with a mitered band of outer.
// The inset vertices are emitted twice, once per color, so the band and the fill do not blend.
func BorderTri(b *Buffer, v1, v2, v3 common.Vec2, width float32, outer, inner common.Color) {
	b.begin()
	in := Inset(v1, v2, v3, width)

	for _, p := range [6]common.Vec2{v1, v2, v3, in[0], in[1], in[2]} {
		b.pushVertex(vertex(p, outer))
	}
	for _, p := range in {
		b.pushVertex(vertex(p, inner))
	}
	b.pushIndices(triangleBand[:]...)
	b.pushIndices(6, 7, 8)
}

// BorderCircle appends a circle filled with inner and edged with a ring of outer.
// Each segment emits an outer-ring vertex and an inner-ring vertex in the outer color, then the
// inner-ring vertex again in the inner color; the center closes the fill fan as the last vertex.
// segments must be positive.
func BorderCircle(b *Buffer, center common.Vec2, radius float32, segments uint32, width float32, outer, inner common.Color) {
	b.begin()
	inc := 2 * math32.Pi / float32(segments)
	innerRadius := radius - width/math32.Cos(inc/2)
	n := 3 * segments

	for k := uint32(0); k < segments; k++ {
		angle := float32(k) * inc
		ring := polar(center, innerRadius, angle)
		b.pushVertex(vertex(polar(center, radius, angle), outer))
		b.pushVertex(vertex(ring, outer))
		b.pushVertex(vertex(ring, inner))

		i := 3 * k
		b.pushIndices(
			i, i+1, (i+4)%n,
			i, (i+3)%n, (i+4)%n,
			i+2, (i+5)%n, n,
		)
	}
	b.pushVertex(vertex(center, inner))
}

// Arc describes a bordered circular arc from Start to End (radians) around Center.
type Arc struct {
	Center   common.Vec2
	Radius   float32
	Start    float32
	End      float32
	Segments uint32
	Width    float32
	Outer    common.Color
	Inner    common.Color
}

// BorderSemicircle appends a bordered arc whose fill fan closes at the arc's own center.
func BorderSemicircle(b *Buffer, a Arc) {
	borderArc(b, a, a.Center, false)
}

// BorderSemicircleCenterInside appends a bordered arc whose fill fan closes at pivot,
// a point inside the arc's radius. The fan starts at the inner ring.
func BorderSemicircleCenterInside(b *Buffer, a Arc, pivot common.Vec2) {
	borderArc(b, a, pivot, false)
}

// BorderSemicircleCenterOutside appends a bordered arc whose fill fan closes at pivot,
// a point outside the arc's radius. The fan starts at the outer ring so it covers the
// region between the arc and the pivot.
func BorderSemicircleCenterOutside(b *Buffer, a Arc, pivot common.Vec2) {
	borderArc(b, a, pivot, true)
}

// PivotOutside reports whether pivot lies strictly outside the arc's radius.
func PivotOutside(a Arc, pivot common.Vec2) bool {
	d := pivot.Sub(a.Center)
	return d.X*d.X+d.Y*d.Y > a.Radius*a.Radius
}

// borderArc emits segments+1 vertex triples along the arc and a closing vertex at pivot.
// segments must be positive.
func borderArc(b *Buffer, a Arc, pivot common.Vec2, fanFromOuter bool) {
	b.begin()
	inc := (a.End - a.Start) / float32(a.Segments)
	innerRadius := a.Radius - a.Width/math32.Cos(inc/2)
	closing := 3*a.Segments + 3

	for k := uint32(0); k <= a.Segments; k++ {
		angle := float32(k)*inc + a.Start
		outerPos := polar(a.Center, a.Radius, angle)
		innerPos := polar(a.Center, innerRadius, angle)

		b.pushVertex(vertex(outerPos, a.Outer))
		b.pushVertex(vertex(innerPos, a.Outer))
		if fanFromOuter {
			b.pushVertex(vertex(outerPos, a.Inner))
		} else {
			b.pushVertex(vertex(innerPos, a.Inner))
		}

		if k == a.Segments {
			break
		}
		i := 3 * k
		b.pushIndices(
			i, i+1, i+4,
			i, i+3, i+4,
			i+2, i+5, closing,
		)
	}
	b.pushVertex(vertex(pivot, a.Inner))
}
