// Package wgpu_backend implements the batch renderer's GPU backend on WebGPU.
package wgpu_backend

import (
	_ "embed"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/Carmen-Shannon/gates/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/gates/engine/renderer/geometry"
	"github.com/Carmen-Shannon/gates/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gates/engine/renderer/shader"
	"github.com/Carmen-Shannon/gates/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/batch.wgsl
var batchShaderSource string

const (
	uniformGroup = 0
	textureGroup = 1
)

// ErrTooManyTextureSlots is returned by Init when more texture slots are requested than the
// batch shader declares.
var ErrTooManyTextureSlots = errors.New("wgpu backend: too many texture slots")

// ErrNotInitialized is returned when a frame is started before Init.
var ErrNotInitialized = errors.New("wgpu backend: not initialized")

type wgpuBackend struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat        wgpu.TextureFormat
	presentMode          wgpu.PresentMode
	sampleCount          renderer.MSAASampleCount
	forceFallbackAdapter bool
	samplerData          SamplerStagingData
	width, height        int

	msaaTexture *wgpu.Texture
	msaaView    *wgpu.TextureView

	shader         shader.Shader
	layouts        []*wgpu.BindGroupLayout
	pipelineLayout *wgpu.PipelineLayout
	pipelines      map[geometry.Kind]pipeline.Pipeline
	meshes         map[geometry.Kind]bind_group_provider.BindGroupProvider
	uniforms       bind_group_provider.BindGroupProvider
	textures       bind_group_provider.BindGroupProvider

	uniformDescriptor wgpu.BindGroupLayoutDescriptor
	textureDescriptor wgpu.BindGroupLayoutDescriptor
	// slotBindings maps texture slot i to its binding index in the texture group.
	slotBindings []int

	cache    map[uint32]gpuTexture
	fallback gpuTexture
	bound    []uint32

	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	frameClear   wgpu.Color
	frameDrawn   bool
}

var _ renderer.RendererBackend = &wgpuBackend{}

// NewBackend creates the WebGPU instance, adapter, device and surface for a window and
// configures the surface at the given size. The calling goroutine is locked to its OS thread.
// GPU buffers and pipelines are created later by Init.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor of the target window
//   - width: the initial surface width in pixels
//   - height: the initial surface height in pixels
//   - options: a variadic list of options to configure the backend
//
// Returns:
//   - renderer.RendererBackend: the configured backend
func NewBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...BackendBuilderOption) renderer.RendererBackend {
	runtime.LockOSThread()
	b := &wgpuBackend{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
		sampleCount: renderer.MSAA4x,
		pipelines:   make(map[geometry.Kind]pipeline.Pipeline),
		meshes:      make(map[geometry.Kind]bind_group_provider.BindGroupProvider),
		cache:       make(map[uint32]gpuTexture),
	}
	for _, opt := range options {
		opt(b)
	}

	b.instance = wgpu.CreateInstance(nil)
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: b.forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Gates Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()

	b.configureSurface(width, height)
	return b
}

func toWgpuPresentMode(mode renderer.PresentMode) wgpu.PresentMode {
	if mode == renderer.PresentModeUncapped {
		return wgpu.PresentModeImmediate
	}
	return wgpu.PresentModeFifo
}

// configureSurface must be called with b.mu held or before the backend is shared.
func (b *wgpuBackend) configureSurface(width, height int) {
	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = pickSurfaceFormat(capabilities.Formats)
	if isSrgb(b.surfaceFormat) {
		logger.Logger().Warn("no linear surface format, colors will be gamma encoded twice", "format", b.surfaceFormat.String())
	}
	b.width, b.height = width, height

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseMSAA()
	if b.sampleCount <= 1 {
		return
	}
	msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "MSAA Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(b.sampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        b.surfaceFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	view, err := msaaTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	b.msaaTexture = msaaTexture
	b.msaaView = view
}

func (b *wgpuBackend) releaseMSAA() {
	if b.msaaView != nil {
		b.msaaView.Release()
		b.msaaView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
}

func (b *wgpuBackend) Init(limits renderer.BackendLimits) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, err := shader.NewShader("batch", batchShaderSource)
	if err != nil {
		return err
	}
	b.shader = s

	descriptors := s.BindGroupLayoutDescriptors()
	var ok bool
	if b.uniformDescriptor, ok = descriptors[uniformGroup]; !ok {
		return fmt.Errorf("batch shader declares no bind group %d", uniformGroup)
	}
	if b.textureDescriptor, ok = descriptors[textureGroup]; !ok {
		return fmt.Errorf("batch shader declares no bind group %d", textureGroup)
	}
	b.uniformDescriptor.Label = "Batch Uniform Layout"
	b.textureDescriptor.Label = "Batch Texture Layout"

	b.slotBindings = b.slotBindings[:0]
	samplerBinding := -1
	for _, entry := range b.textureDescriptor.Entries {
		switch {
		case entry.Texture.SampleType != wgpu.TextureSampleTypeUndefined:
			b.slotBindings = append(b.slotBindings, int(entry.Binding))
		case entry.Sampler.Type != wgpu.SamplerBindingTypeUndefined:
			samplerBinding = int(entry.Binding)
		}
	}
	if limits.MaxTextures > len(b.slotBindings) {
		return fmt.Errorf("%w: %d requested, shader declares %d", ErrTooManyTextureSlots, limits.MaxTextures, len(b.slotBindings))
	}
	if samplerBinding < 0 {
		return errors.New("batch shader declares no sampler in the texture group")
	}

	if err := b.createLayouts(); err != nil {
		return err
	}
	if err := b.createPipelines(); err != nil {
		return err
	}
	if err := b.createMeshes(limits); err != nil {
		return err
	}
	if err := b.createUniforms(); err != nil {
		return err
	}
	if err := b.createTextureGroup(samplerBinding); err != nil {
		return err
	}

	logger.Logger().Info("wgpu backend initialized",
		"format", b.surfaceFormat.String(),
		"msaa", int(b.sampleCount),
		"texture_slots", len(b.slotBindings),
	)
	return nil
}

func (b *wgpuBackend) createLayouts() error {
	uniformLayout, err := b.device.CreateBindGroupLayout(&b.uniformDescriptor)
	if err != nil {
		return fmt.Errorf("failed to create bind group layout for group %d: %w", uniformGroup, err)
	}
	textureLayout, err := b.device.CreateBindGroupLayout(&b.textureDescriptor)
	if err != nil {
		uniformLayout.Release()
		return fmt.Errorf("failed to create bind group layout for group %d: %w", textureGroup, err)
	}
	b.layouts = []*wgpu.BindGroupLayout{uniformLayout, textureLayout}

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Batch Pipeline Layout",
		BindGroupLayouts: b.layouts,
	})
	return err
}

func (b *wgpuBackend) createPipelines() error {
	module, err := b.device.CreateShaderModule(b.shader.Module())
	if err != nil {
		return err
	}
	defer module.Release()

	topologies := map[geometry.Kind]wgpu.PrimitiveTopology{
		geometry.KindTriangles: wgpu.PrimitiveTopologyTriangleList,
		geometry.KindLines:     wgpu.PrimitiveTopologyLineList,
	}
	for kind, topology := range topologies {
		p := pipeline.NewPipeline("batch-"+kind.String(), b.shader, pipeline.WithTopology(topology))
		if err := b.registerPipeline(p, module); err != nil {
			return fmt.Errorf("failed to create %s pipeline: %w", kind, err)
		}
		b.pipelines[kind] = p
	}
	return nil
}

func (b *wgpuBackend) registerPipeline(p pipeline.Pipeline, module *wgpu.ShaderModule) error {
	target := wgpu.ColorTargetState{
		Format:    b.surfaceFormat,
		WriteMask: p.WriteMask(),
	}
	if p.BlendEnabled() {
		target.Blend = p.BlendState()
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: b.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: p.Shader().VertexEntryPoint(),
			Buffers:    p.Shader().VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: p.Shader().FragmentEntryPoint(),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return err
	}
	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuBackend) createMeshes(limits renderer.BackendLimits) error {
	for _, kind := range []geometry.Kind{geometry.KindTriangles, geometry.KindLines} {
		label := "Batch " + kind.String()
		vertices, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label + " Vertex Buffer",
			Size:  uint64(limits.MaxVertices * geometry.VertexSize),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return err
		}
		indices, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label + " Index Buffer",
			Size:  uint64(limits.MaxIndices * geometry.IndexSize),
			Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			vertices.Release()
			return err
		}
		b.meshes[kind] = bind_group_provider.NewBindGroupProvider(label, bind_group_provider.WithMeshBuffers(vertices, indices))
	}
	return nil
}

func (b *wgpuBackend) createUniforms() error {
	entry := b.uniformDescriptor.Entries[0]
	size := common.Coalesce(entry.Buffer.MinBindingSize, uint64((&renderer.GPUBatchUniform{}).Size()))

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Batch Uniform Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.uniforms = bind_group_provider.NewBindGroupProvider("Batch Uniforms", bind_group_provider.WithBuffer(int(entry.Binding), buf))
	return b.rebuildBindGroup(b.uniforms, uniformGroup, b.uniformDescriptor)
}

func (b *wgpuBackend) createTextureGroup(samplerBinding int) error {
	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Batch Sampler",
		AddressModeU:  common.Coalesce(b.samplerData.AddressModeU, wgpu.AddressModeClampToEdge),
		AddressModeV:  common.Coalesce(b.samplerData.AddressModeV, wgpu.AddressModeClampToEdge),
		AddressModeW:  common.Coalesce(b.samplerData.AddressModeW, wgpu.AddressModeClampToEdge),
		MagFilter:     common.Coalesce(b.samplerData.MagFilter, wgpu.FilterModeLinear),
		MinFilter:     common.Coalesce(b.samplerData.MinFilter, wgpu.FilterModeLinear),
		MipmapFilter:  common.Coalesce(b.samplerData.MipmapFilter, wgpu.MipmapFilterModeLinear),
		LodMinClamp:   b.samplerData.LodMinClamp,
		LodMaxClamp:   common.Coalesce(b.samplerData.LodMaxClamp, 32.0),
		MaxAnisotropy: common.Coalesce(b.samplerData.MaxAnisotropy, 1),
	})
	if err != nil {
		return err
	}
	b.textures = bind_group_provider.NewBindGroupProvider("Batch Textures", bind_group_provider.WithSampler(samplerBinding, samp))

	b.fallback, err = b.uploadTexture(texture.NewTextureFromColor(common.White))
	if err != nil {
		return err
	}
	for _, binding := range b.slotBindings {
		b.textures.SetTextureView(binding, b.fallback.view)
	}
	b.bound = nil
	return b.rebuildBindGroup(b.textures, textureGroup, b.textureDescriptor)
}

func (b *wgpuBackend) rebuildBindGroup(provider bind_group_provider.BindGroupProvider, group int, descriptor wgpu.BindGroupLayoutDescriptor) error {
	entries, ok := provider.Entries(descriptor)
	if !ok {
		return fmt.Errorf("%s: bind group %d has unbound entries", provider.Label(), group)
	}
	bg, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  b.layouts[group],
		Entries: entries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bg)
	return nil
}

func (b *wgpuBackend) uploadTexture(tex texture.Texture) (gpuTexture, error) {
	staging := tex.StagingData()
	size := wgpu.Extent3D{
		Width:              staging.Width,
		Height:             staging.Height,
		DepthOrArrayLayers: 1,
	}
	gpuTex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tex.Label() + " Texture",
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		Size:          size,
		Format:        textureFormat,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return gpuTexture{}, err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  gpuTex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		staging.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  staging.Width * 4,
			RowsPerImage: staging.Height,
		},
		&size,
	)

	view, err := gpuTex.CreateView(nil)
	if err != nil {
		gpuTex.Release()
		return gpuTexture{}, err
	}
	return gpuTexture{texture: gpuTex, view: view}, nil
}

func (b *wgpuBackend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for kind, p := range b.pipelines {
		p.Release()
		delete(b.pipelines, kind)
	}
	for kind, m := range b.meshes {
		m.Release()
		delete(b.meshes, kind)
	}
	if b.uniforms != nil {
		b.uniforms.Release()
		b.uniforms = nil
	}
	if b.textures != nil {
		b.textures.Release()
		b.textures = nil
	}
	for id, t := range b.cache {
		t.release()
		delete(b.cache, id)
	}
	b.fallback.release()
	b.fallback = gpuTexture{}
	if b.pipelineLayout != nil {
		b.pipelineLayout.Release()
		b.pipelineLayout = nil
	}
	for _, l := range b.layouts {
		l.Release()
	}
	b.layouts = nil
	b.releaseMSAA()
	b.releaseFrame()

	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func (b *wgpuBackend) BeginFrame(clear common.Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.uniforms == nil {
		return ErrNotInitialized
	}
	if b.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	b.frameSurface = surfaceTexture
	b.frameView = view
	b.frameClear = wgpu.Color{R: float64(clear.R), G: float64(clear.G), B: float64(clear.B), A: float64(clear.A)}
	b.frameDrawn = false
	return nil
}

// colorAttachment targets the MSAA texture resolving into the frame view, or the frame view directly.
// The first pass of a frame clears; later passes load what earlier passes stored.
func (b *wgpuBackend) colorAttachment() wgpu.RenderPassColorAttachment {
	attachment := wgpu.RenderPassColorAttachment{
		View:       b.frameView,
		LoadOp:     wgpu.LoadOpLoad,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: b.frameClear,
	}
	if !b.frameDrawn {
		attachment.LoadOp = wgpu.LoadOpClear
	}
	if b.msaaView != nil {
		attachment.View = b.msaaView
		attachment.ResolveTarget = b.frameView
	}
	return attachment
}

// submitPass encodes one render pass, runs record inside it and submits the result.
func (b *wgpuBackend) submitPass(label string, record func(pass *wgpu.RenderPassEncoder)) {
	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		logger.Logger().Error("failed to create command encoder", "pass", label, "error", err)
		return
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{b.colorAttachment()},
	})
	if record != nil {
		record(pass)
	}
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		logger.Logger().Error("failed to finish command encoder", "pass", label, "error", err)
		return
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.frameDrawn = true
}

func (b *wgpuBackend) UploadGeometry(kind geometry.Kind, vertices, indices []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	mesh, ok := b.meshes[kind]
	if !ok {
		return
	}
	if len(vertices) > 0 {
		b.queue.WriteBuffer(mesh.VertexBuffer(), 0, vertices)
	}
	if len(indices) > 0 {
		b.queue.WriteBuffer(mesh.IndexBuffer(), 0, indices)
	}
	mesh.SetIndexCount(len(indices) / geometry.IndexSize)
}

func (b *wgpuBackend) UploadUniforms(u renderer.GPUBatchUniform) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.uniforms == nil {
		return
	}
	binding := int(b.uniformDescriptor.Entries[0].Binding)
	b.queue.WriteBuffer(b.uniforms.Buffer(binding), 0, u.Marshal())
}

func (b *wgpuBackend) BindTextures(textures []texture.Texture) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.textures == nil {
		return
	}
	ids := make([]uint32, 0, len(textures))
	for _, tex := range textures {
		ids = append(ids, tex.ID())
	}
	if slices.Equal(ids, b.bound) {
		return
	}

	for slot, binding := range b.slotBindings {
		view := b.fallback.view
		if slot < len(textures) {
			if resident, err := b.resident(textures[slot]); err != nil {
				logger.Logger().Error("texture upload failed, slot falls back to white",
					"texture", textures[slot].Label(), "slot", slot, "error", err)
			} else {
				view = resident.view
			}
		}
		b.textures.SetTextureView(binding, view)
	}
	if err := b.rebuildBindGroup(b.textures, textureGroup, b.textureDescriptor); err != nil {
		logger.Logger().Error("failed to rebuild texture bind group", "error", err)
		b.bound = nil
		return
	}
	b.bound = ids
}

func (b *wgpuBackend) resident(tex texture.Texture) (gpuTexture, error) {
	if t, ok := b.cache[tex.ID()]; ok {
		return t, nil
	}
	t, err := b.uploadTexture(tex)
	if err != nil {
		return gpuTexture{}, err
	}
	b.cache[tex.ID()] = t
	logger.Logger().Debug("texture uploaded", "texture", tex.Label(), "id", tex.ID())
	return t, nil
}

func (b *wgpuBackend) Draw(kind geometry.Kind, indexCount int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameView == nil || indexCount <= 0 {
		return
	}
	p, ok := b.pipelines[kind]
	if !ok {
		return
	}
	mesh := b.meshes[kind]

	b.submitPass("Batch "+kind.String()+" Pass", func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(p.RenderPipeline())
		pass.SetBindGroup(uniformGroup, b.uniforms.BindGroup(), nil)
		pass.SetBindGroup(textureGroup, b.textures.BindGroup(), nil)
		pass.SetVertexBuffer(0, mesh.VertexBuffer(), 0, wgpu.WholeSize)
		pass.SetIndexBuffer(mesh.IndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(indexCount), 1, 0, 0, 0)
	})
}

func (b *wgpuBackend) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	if !b.frameDrawn {
		b.submitPass("Clear Pass", nil)
	}
	b.surface.Present()
	b.releaseFrame()
}

func (b *wgpuBackend) releaseFrame() {
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
	b.frameDrawn = false
}

func (b *wgpuBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width <= 0 || height <= 0 || (width == b.width && height == b.height) {
		return
	}
	b.configureSurface(width, height)
	logger.Logger().Debug("surface resized", "width", width, "height", height)
}
