package renderer

import (
	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/renderer/geometry"
	"github.com/Carmen-Shannon/gates/engine/texture"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// BackendLimits are the per-batch capacities the backend must size its GPU resources for.
type BackendLimits struct {
	// MaxVertices is the vertex capacity of each geometry kind.
	MaxVertices int
	// MaxIndices is the index capacity of each geometry kind.
	MaxIndices int
	// MaxTextures is the number of sampler slots, including the white slot.
	MaxTextures int
}

// RendererBackend is the GPU capability set the batch renderer drives.
// Implementations own every GPU object; the renderer only hands them bytes, uniforms and textures.
type RendererBackend interface {
	// Init allocates GPU buffers, pipelines and bind groups sized for the given limits.
	//
	// Parameters:
	//   - limits: the per-batch capacities
	//
	// Returns:
	//   - error: an error if any GPU resource cannot be created
	Init(limits BackendLimits) error

	// Release frees every GPU resource created by Init.
	Release()

	// BeginFrame acquires the next surface texture. The first draw of the frame clears it to clear;
	// later draws load the previous contents.
	//
	// Parameters:
	//   - clear: the color the frame is cleared to
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame(clear common.Color) error

	// EndFrame presents the surface texture acquired by BeginFrame.
	EndFrame()

	// UploadGeometry writes the staged bytes of one geometry kind to its GPU buffers at offset 0.
	//
	// Parameters:
	//   - kind: the geometry kind being uploaded
	//   - vertices: the written vertex bytes
	//   - indices: the written index bytes
	UploadGeometry(kind geometry.Kind, vertices, indices []byte)

	// UploadUniforms writes the batch uniform buffer.
	//
	// Parameters:
	//   - u: the view-projection and transform matrices
	UploadUniforms(u GPUBatchUniform)

	// BindTextures binds textures to sampler slots 0..len(textures)-1, uploading any not yet on the GPU.
	//
	// Parameters:
	//   - textures: the occupied texture slots in slot order
	BindTextures(textures []texture.Texture)

	// Draw issues one indexed draw of the given kind covering indexCount indices.
	//
	// Parameters:
	//   - kind: the geometry kind to draw
	//   - indexCount: the number of staged indices
	Draw(kind geometry.Kind, indexCount int)

	// Resize reconfigures the surface for a new size in pixels.
	Resize(width, height int)
}
