package renderer

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUBatchUniform is the GPU-aligned representation of the batch uniform buffer.
// Matches the WGSL BatchUniform struct of the batch shader.
// Size: 128 bytes.
type GPUBatchUniform struct {
	ViewProjection [16]float32 // offset  0: u_view_projection (mat4x4<f32>)
	Transform      [16]float32 // offset 64: u_transform (mat4x4<f32>)
}

// Size returns the size of the GPUBatchUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUBatchUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUBatchUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUBatchUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProjection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Transform[i]))
	}
	return buf
}
