package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label used as the prefix of every GPU resource label.
	label string

	// bindGroup is the GPU bind group built from the resources below, or nil until the backend creates it.
	bindGroup *wgpu.BindGroup
	// buffers holds the owned uniform or storage buffers, keyed by binding index.
	buffers map[int]*wgpu.Buffer
	// textureViews holds borrowed texture views keyed by binding index. They are not released with the provider.
	textureViews map[int]*wgpu.TextureView
	// samplers holds the owned samplers, keyed by binding index.
	samplers map[int]*wgpu.Sampler

	// vertexBuffer and indexBuffer are the owned geometry buffers of a mesh provider.
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	// indexCount is the number of indices staged for the next draw.
	indexCount int
}

// BindGroupProvider groups the GPU resources bound together at draw time.
//
// The batch backend keeps one provider per geometry kind for its vertex and index buffers,
// one for the uniform group and one for the texture group. A provider owns every buffer,
// sampler and bind group it holds and frees them on Release; texture views are borrowed from
// the backend's texture cache.
type BindGroupProvider interface {
	// Release releases every GPU resource owned by this provider.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the bind group, or nil if it has not been created.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group
	BindGroup() *wgpu.BindGroup

	// SetBindGroup replaces the bind group, releasing the previous one.
	//
	// Parameters:
	//   - bg: the new bind group
	SetBindGroup(bg *wgpu.BindGroup)

	// Buffer returns the buffer at a binding index.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer, or nil if not set
	Buffer(binding int) *wgpu.Buffer

	// SetBuffer stores an owned buffer at a binding index.
	SetBuffer(binding int, buf *wgpu.Buffer)

	// TextureView returns the texture view at a binding index.
	TextureView(binding int) *wgpu.TextureView

	// SetTextureView stores a borrowed texture view at a binding index.
	SetTextureView(binding int, tv *wgpu.TextureView)

	// Sampler returns the sampler at a binding index.
	Sampler(binding int) *wgpu.Sampler

	// SetSampler stores an owned sampler at a binding index.
	SetSampler(binding int, s *wgpu.Sampler)

	// Entries builds bind group entries for every resource in the layout descriptor, in entry order.
	//
	// Parameters:
	//   - descriptor: the layout the entries must satisfy
	//
	// Returns:
	//   - []wgpu.BindGroupEntry: the entries
	//   - bool: false if a binding in the layout has no resource
	Entries(descriptor wgpu.BindGroupLayoutDescriptor) ([]wgpu.BindGroupEntry, bool)

	// VertexBuffer returns the vertex buffer of a mesh provider.
	VertexBuffer() *wgpu.Buffer

	// SetVertexBuffer stores an owned vertex buffer.
	SetVertexBuffer(buf *wgpu.Buffer)

	// IndexBuffer returns the index buffer of a mesh provider.
	IndexBuffer() *wgpu.Buffer

	// SetIndexBuffer stores an owned index buffer.
	SetIndexBuffer(buf *wgpu.Buffer)

	// IndexCount returns the number of indices staged for the next draw.
	IndexCount() int

	// SetIndexCount sets the number of indices staged for the next draw.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a new, empty BindGroupProvider.
//
// Parameters:
//   - label: the debug label for this provider
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: a new instance of BindGroupProvider configured with the provided options
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:        label,
		buffers:      make(map[int]*wgpu.Buffer),
		textureViews: make(map[int]*wgpu.TextureView),
		samplers:     make(map[int]*wgpu.Sampler),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	if p.bindGroup != nil && p.bindGroup != bg {
		p.bindGroup.Release()
	}
	p.bindGroup = bg
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) TextureView(binding int) *wgpu.TextureView {
	return p.textureViews[binding]
}

func (p *bindGroupProvider) SetTextureView(binding int, tv *wgpu.TextureView) {
	p.textureViews[binding] = tv
}

func (p *bindGroupProvider) Sampler(binding int) *wgpu.Sampler {
	return p.samplers[binding]
}

func (p *bindGroupProvider) SetSampler(binding int, s *wgpu.Sampler) {
	p.samplers[binding] = s
}

func (p *bindGroupProvider) Entries(descriptor wgpu.BindGroupLayoutDescriptor) ([]wgpu.BindGroupEntry, bool) {
	entries := make([]wgpu.BindGroupEntry, len(descriptor.Entries))
	for i, layoutEntry := range descriptor.Entries {
		binding := int(layoutEntry.Binding)
		entry := wgpu.BindGroupEntry{Binding: layoutEntry.Binding}

		switch {
		case layoutEntry.Texture.SampleType != wgpu.TextureSampleTypeUndefined:
			entry.TextureView = p.textureViews[binding]
			if entry.TextureView == nil {
				return nil, false
			}
		case layoutEntry.Sampler.Type != wgpu.SamplerBindingTypeUndefined:
			entry.Sampler = p.samplers[binding]
			if entry.Sampler == nil {
				return nil, false
			}
		default:
			entry.Buffer = p.buffers[binding]
			if entry.Buffer == nil {
				return nil, false
			}
			entry.Size = wgpu.WholeSize
		}
		entries[i] = entry
	}
	return entries, true
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *bindGroupProvider) Release() {
	for i, s := range p.samplers {
		s.Release()
		delete(p.samplers, i)
	}
	for i, buf := range p.buffers {
		buf.Release()
		delete(p.buffers, i)
	}
	clear(p.textureViews)

	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	p.indexCount = 0
}
