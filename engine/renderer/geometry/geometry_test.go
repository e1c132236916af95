package geometry

import (
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer() *Buffer {
	return NewBuffer(20000, 30000)
}

func TestVertexSize(t *testing.T) {
	assert.Equal(t, 40, VertexSize)
}

func TestNewBufferRejectsZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { NewBuffer(0, 10) })
	assert.Panics(t, func() { NewBuffer(10, -1) })
}

func TestBufferFitsAndReset(t *testing.T) {
	b := NewBuffer(8, 12)
	assert.True(t, b.Fits(Cost{8, 12}))
	assert.False(t, b.Fits(Cost{9, 0}))

	Quad(b, common.V2(0, 0), common.V2(1, 1), common.White, 0)
	assert.True(t, b.Fits(QuadCost))
	Quad(b, common.V2(0, 0), common.V2(1, 1), common.White, 0)
	assert.False(t, b.Fits(TriCost))
	assert.True(t, b.Holds(QuadCost))
	assert.False(t, b.Holds(Cost{9, 0}))

	b.Reset()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.VertexCount())
	assert.Nil(t, b.VertexBytes())
}

func TestQuadLayout(t *testing.T) {
	b := newTestBuffer()
	Quad(b, common.V2(0, 0), common.V2(10, 10), common.White, 0)

	require.Equal(t, 4, b.VertexCount())
	require.Equal(t, 6, b.IndexCount())

	v := b.Vertices()
	assert.Equal(t, [3]float32{0, 0, 0}, v[0].Position)
	assert.Equal(t, [3]float32{10, 0, 0}, v[1].Position)
	assert.Equal(t, [3]float32{10, 10, 0}, v[2].Position)
	assert.Equal(t, [3]float32{0, 10, 0}, v[3].Position)

	assert.Equal(t, [2]float32{0, 0}, v[0].TexCoord)
	assert.Equal(t, [2]float32{1, 0}, v[1].TexCoord)
	assert.Equal(t, [2]float32{1, 1}, v[2].TexCoord)
	assert.Equal(t, [2]float32{0, 1}, v[3].TexCoord)

	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, b.Indices())
	assert.Len(t, b.VertexBytes(), 4*VertexSize)
	assert.Len(t, b.IndexBytes(), 6*IndexSize)
}

func TestQuadTrianglesAreCounterClockwise(t *testing.T) {
	b := newTestBuffer()
	Quad(b, common.V2(0, 0), common.V2(10, 10), common.White, 0)

	v := b.Vertices()
	idx := b.Indices()
	for tri := 0; tri < 2; tri++ {
		a, c, d := v[idx[tri*3]].Position, v[idx[tri*3+1]].Position, v[idx[tri*3+2]].Position
		cross := (c[0]-a[0])*(d[1]-a[1]) - (c[1]-a[1])*(d[0]-a[0])
		assert.Greater(t, cross, float32(0), "triangle %d", tri)
	}
}

func TestIndicesAreRelativeToPrimitiveBase(t *testing.T) {
	b := newTestBuffer()
	Tri(b, common.V2(0, 0), common.V2(1, 0), common.V2(0, 1), common.White)
	Quad(b, common.V2(0, 0), common.V2(1, 1), common.White, 3)

	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 5, 6, 3}, b.Indices())
	assert.Equal(t, float32(3), b.Vertices()[3].TexID)
	assert.Equal(t, float32(0), b.Vertices()[0].TexID)
}

func TestCircleCounts(t *testing.T) {
	for _, n := range []uint32{3, 8, 32} {
		b := newTestBuffer()
		Circle(b, common.V2(1, 1), 2, n, common.White)

		assert.Equal(t, int(n)+1, b.VertexCount())
		assert.Equal(t, 3*int(n), b.IndexCount(), "n triangles")
		assert.Equal(t, CircleCost(n), Cost{b.VertexCount(), b.IndexCount()})
	}
}

func TestCircleFanClosesOnFirstRingVertex(t *testing.T) {
	b := newTestBuffer()
	Circle(b, common.V2(0, 0), 1, 4, common.White)

	assert.Equal(t, []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 1,
	}, b.Indices())

	v := b.Vertices()
	assert.Equal(t, [3]float32{0, 0, 0}, v[0].Position)
	assert.InDelta(t, 1, v[1].Position[0], 1e-6)
	assert.InDelta(t, 1, v[2].Position[1], 1e-6)
}

func TestLineAndOutlineQuad(t *testing.T) {
	b := newTestBuffer()
	Line(b, common.V2(0, 0), common.V2(5, 5), common.Black)
	assert.Equal(t, []uint32{0, 1}, b.Indices())

	b.Reset()
	OutlineQuad(b, common.V2(1, 2), common.V2(3, 4), common.Black)
	v := b.Vertices()
	assert.Equal(t, [3]float32{1, 2, 0}, v[0].Position)
	assert.Equal(t, [3]float32{1, 6, 0}, v[1].Position)
	assert.Equal(t, [3]float32{4, 6, 0}, v[2].Position)
	assert.Equal(t, [3]float32{4, 2, 0}, v[3].Position)
	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 3, 3, 0}, b.Indices())
}

func TestThickLineCorners(t *testing.T) {
	b := newTestBuffer()
	ThickLine(b, common.V2(0, 0), common.V2(10, 0), 2, common.White)

	v := b.Vertices()
	require.Len(t, v, 4)
	assert.Equal(t, [3]float32{0, -1, 0}, v[0].Position)
	assert.Equal(t, [3]float32{0, 1, 0}, v[1].Position)
	assert.Equal(t, [3]float32{10, 1, 0}, v[2].Position)
	assert.Equal(t, [3]float32{10, -1, 0}, v[3].Position)
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, b.Indices())
}

func TestIncircleRightTriangle(t *testing.T) {
	// 3-4-5 right triangle has inradius (3+4-5)/2 = 1 and incenter (1, 1).
	center, r := Incircle(common.V2(0, 0), common.V2(4, 0), common.V2(0, 3))
	assert.InDelta(t, 1, r, 1e-5)
	assert.InDelta(t, 1, center.X, 1e-5)
	assert.InDelta(t, 1, center.Y, 1e-5)
}

func TestInsetKeepsConstantBandWidth(t *testing.T) {
	in := Inset(common.V2(0, 0), common.V2(4, 0), common.V2(0, 3), 0.5)
	// The inset triangle is a scaled copy around the incenter; its bottom edge sits 0.5 above y=0.
	assert.InDelta(t, 0.5, in[0].Y, 1e-5)
	assert.InDelta(t, 0.5, in[1].Y, 1e-5)
	assert.InDelta(t, 0.5, in[0].X, 1e-5)
}

func TestOutlineAndBorderTriCounts(t *testing.T) {
	b := newTestBuffer()
	OutlineTri(b, common.V2(0, 0), common.V2(4, 0), common.V2(0, 3), 0.5, common.White)
	assert.Equal(t, OutlineTriCost, Cost{b.VertexCount(), b.IndexCount()})

	b.Reset()
	BorderTri(b, common.V2(0, 0), common.V2(4, 0), common.V2(0, 3), 0.5, common.Black, common.White)
	assert.Equal(t, BorderTriCost, Cost{b.VertexCount(), b.IndexCount()})

	v := b.Vertices()
	assert.Equal(t, common.Black.Array(), v[5].Color)
	assert.Equal(t, common.White.Array(), v[6].Color)
	assert.Equal(t, v[3].Position, v[6].Position)
	assert.Equal(t, []uint32{6, 7, 8}, b.Indices()[18:])
}

func TestDegenerateTriangleYieldsNonFiniteGeometry(t *testing.T) {
	collinear := [3]common.Vec2{common.V2(0, 0), common.V2(1, 1), common.V2(2, 2)}

	_, r := Incircle(collinear[0], collinear[1], collinear[2])
	assert.InDelta(t, 0, r, 1e-3)

	b := newTestBuffer()
	OutlineTri(b, collinear[0], collinear[1], collinear[2], 0.1, common.White)
	require.Equal(t, 6, b.VertexCount())

	nonFinite := false
	for _, v := range b.Vertices()[3:] {
		for _, c := range v.Position[:2] {
			if math32.IsNaN(c) || math32.IsInf(c, 0) {
				nonFinite = true
			}
		}
	}
	assert.True(t, nonFinite, "collinear triangles are not repaired")
}

func TestOutlineCircle(t *testing.T) {
	b := newTestBuffer()
	OutlineCircle(b, common.V2(0, 0), 10, 4, 1, common.White)

	assert.Equal(t, OutlineCircleCost(4), Cost{b.VertexCount(), b.IndexCount()})
	assert.Equal(t, []uint32{6, 7, 1, 6, 0, 1}, b.Indices()[18:])

	inner := b.Vertices()[1].Position
	assert.InDelta(t, 10-1/math32.Cos(math32.Pi/4), inner[0], 1e-4)
}

func TestBorderCircleCounts(t *testing.T) {
	for _, n := range []uint32{3, 16, 40} {
		b := newTestBuffer()
		BorderCircle(b, common.V2(0, 0), 5, n, 1, common.Black, common.White)

		assert.Equal(t, 3*int(n)+1, b.VertexCount())
		assert.Equal(t, 9*int(n), b.IndexCount())

		last := b.Vertices()[b.VertexCount()-1]
		assert.Equal(t, [3]float32{0, 0, 0}, last.Position)
		assert.Equal(t, common.White.Array(), last.Color)
		for _, i := range b.Indices() {
			assert.Less(t, int(i), b.VertexCount())
		}
	}
}

func TestBorderSemicircleVariants(t *testing.T) {
	arc := Arc{
		Center:   common.V2(0, 0),
		Radius:   4,
		Start:    0,
		End:      math32.Pi,
		Segments: 6,
		Width:    1,
		Outer:    common.Black,
		Inner:    common.White,
	}
	pivot := common.V2(0, 10)

	b := newTestBuffer()
	BorderSemicircle(b, arc)
	assert.Equal(t, BorderSemicircleCost(6), Cost{b.VertexCount(), b.IndexCount()})
	assert.Equal(t, [3]float32{0, 0, 0}, b.Vertices()[b.VertexCount()-1].Position)
	assert.Equal(t, uint32(3*6+3), b.Indices()[8])

	b.Reset()
	BorderSemicircleCenterInside(b, arc, common.V2(0, 1))
	assert.Equal(t, [3]float32{0, 1, 0}, b.Vertices()[b.VertexCount()-1].Position)
	assert.Equal(t, b.Vertices()[1].Position, b.Vertices()[2].Position)

	b.Reset()
	BorderSemicircleCenterOutside(b, arc, pivot)
	v := b.Vertices()
	assert.Equal(t, v[0].Position, v[2].Position, "fan starts on the outer ring")
	assert.Equal(t, common.White.Array(), v[2].Color)
	assert.Equal(t, [3]float32{0, 10, 0}, v[len(v)-1].Position)

	assert.True(t, PivotOutside(arc, pivot))
	assert.False(t, PivotOutside(arc, common.V2(1, 1)))
}
