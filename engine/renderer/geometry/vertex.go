// Package geometry holds the CPU-side staging buffers of the batch renderer and the
// per-primitive generators that fill them.
package geometry

import (
	"unsafe"

	"github.com/Carmen-Shannon/gates/common"
)

// Vertex is a single batched vertex. Its memory layout matches the VertexInput struct of
// the batch shader: position at location 0, color at 1, tex_coord at 2 and tex_id at 3.
type Vertex struct {
	Position [3]float32 // offset  0: vec3<f32>
	Color    [4]float32 // offset 12: vec4<f32>, straight RGBA
	TexCoord [2]float32 // offset 28: vec2<f32>
	TexID    float32    // offset 36: f32, texture slot selector
}

// VertexSize is the size of a Vertex in bytes (40).
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// IndexSize is the size of a single index in bytes.
const IndexSize = 4

// Kind identifies which of the two staging buffers a primitive is written into.
type Kind int

const (
	// KindTriangles is the triangle-list buffer used by filled, outlined and bordered shapes.
	KindTriangles Kind = iota

	// KindLines is the line-list buffer used by thin lines and wireframe quads.
	KindLines
)

func (k Kind) String() string {
	switch k {
	case KindTriangles:
		return "triangles"
	case KindLines:
		return "lines"
	default:
		return "unknown"
	}
}

// Cost is the number of vertices and indices a primitive appends to its buffer.
type Cost struct {
	Vertices int
	Indices  int
}

// vertex builds an untextured vertex sampling the white slot.
func vertex(p common.Vec2, c common.Color) Vertex {
	return Vertex{
		Position: [3]float32{p.X, p.Y, 0},
		Color:    c.Array(),
	}
}
