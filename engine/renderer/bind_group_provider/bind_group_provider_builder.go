package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBuffer sets an owned buffer for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the buffer for the specified binding
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithSampler sets an owned sampler for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this sampler
//   - s: the sampler to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: a function that sets the sampler for the specified binding
func WithSampler(binding int, s *wgpu.Sampler) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.samplers[binding] = s
	}
}

// WithMeshBuffers sets the owned vertex and index buffers of a mesh provider.
//
// Parameters:
//   - vertices: the vertex buffer
//   - indices: the index buffer
//
// Returns:
//   - BindGroupProviderOption: a function that sets both geometry buffers
func WithMeshBuffers(vertices, indices *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.vertexBuffer = vertices
		p.indexBuffer = indices
	}
}
