package geometry

import (
	"fmt"

	"github.com/Carmen-Shannon/gates/common"
)

// Buffer is a fixed-capacity vertex/index arena with a write cursor.
// Both arenas are allocated once by NewBuffer and never grow; Reset only rewinds the cursors.
// Indices written through Push are relative to the vertex base captured by Begin.
type Buffer struct {
	vertices []Vertex
	indices  []uint32

	vertexCount int
	indexCount  int

	base uint32
}

// NewBuffer allocates a Buffer able to stage maxVertices vertices and maxIndices indices.
//
// Parameters:
//   - maxVertices: the vertex capacity, must be positive
//   - maxIndices: the index capacity, must be positive
//
// Returns:
//   - *Buffer: the new, empty buffer
func NewBuffer(maxVertices, maxIndices int) *Buffer {
	if maxVertices <= 0 || maxIndices <= 0 {
		panic(fmt.Sprintf("geometry: invalid buffer capacity %d vertices / %d indices", maxVertices, maxIndices))
	}
	return &Buffer{
		vertices: make([]Vertex, maxVertices),
		indices:  make([]uint32, maxIndices),
	}
}

// Reset rewinds both cursors. Staged contents are left in place and overwritten by later writes.
func (b *Buffer) Reset() {
	b.vertexCount = 0
	b.indexCount = 0
	b.base = 0
}

// VertexCount returns the number of vertices staged since the last Reset.
func (b *Buffer) VertexCount() int { return b.vertexCount }

// IndexCount returns the number of indices staged since the last Reset.
func (b *Buffer) IndexCount() int { return b.indexCount }

// MaxVertices returns the vertex capacity.
func (b *Buffer) MaxVertices() int { return len(b.vertices) }

// MaxIndices returns the index capacity.
func (b *Buffer) MaxIndices() int { return len(b.indices) }

// Empty reports whether nothing has been staged since the last Reset.
func (b *Buffer) Empty() bool {
	return b.indexCount == 0
}

// Fits reports whether a primitive of the given cost can be appended without exceeding capacity.
func (b *Buffer) Fits(c Cost) bool {
	return b.vertexCount+c.Vertices <= len(b.vertices) && b.indexCount+c.Indices <= len(b.indices)
}

// Holds reports whether a primitive of the given cost could ever fit in an empty buffer.
func (b *Buffer) Holds(c Cost) bool {
	return c.Vertices <= len(b.vertices) && c.Indices <= len(b.indices)
}

// begin marks the start of a new primitive; subsequent index writes are relative to it.
func (b *Buffer) begin() {
	b.base = uint32(b.vertexCount)
}

func (b *Buffer) pushVertex(v Vertex) {
	b.vertices[b.vertexCount] = v
	b.vertexCount++
}

func (b *Buffer) pushIndices(idx ...uint32) {
	for _, i := range idx {
		b.indices[b.indexCount] = b.base + i
		b.indexCount++
	}
}

// Vertices returns the staged vertices. The slice aliases the arena.
func (b *Buffer) Vertices() []Vertex {
	return b.vertices[:b.vertexCount]
}

// Indices returns the staged indices. The slice aliases the arena.
func (b *Buffer) Indices() []uint32 {
	return b.indices[:b.indexCount]
}

// VertexBytes returns the staged vertices as raw bytes for GPU upload.
func (b *Buffer) VertexBytes() []byte {
	return common.SliceToBytes(b.Vertices())
}

// IndexBytes returns the staged indices as raw bytes for GPU upload.
func (b *Buffer) IndexBytes() []byte {
	return common.SliceToBytes(b.Indices())
}
