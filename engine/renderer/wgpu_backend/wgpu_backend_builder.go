package wgpu_backend

import "github.com/Carmen-Shannon/gates/engine/renderer"

// BackendBuilderOption is a functional option used to configure the wgpu backend during construction.
type BackendBuilderOption func(*wgpuBackend)

// WithPresentMode sets how frames are delivered to the display.
//
// Parameters:
//   - mode: the present mode (VSync or Uncapped)
//
// Returns:
//   - BackendBuilderOption: a function that applies the present mode
func WithPresentMode(mode renderer.PresentMode) BackendBuilderOption {
	return func(b *wgpuBackend) {
		b.presentMode = toWgpuPresentMode(mode)
	}
}

// WithMSAA sets the multisample count of the render target.
//
// Parameters:
//   - count: MSAAOff or MSAA4x
//
// Returns:
//   - BackendBuilderOption: a function that applies the sample count
func WithMSAA(count renderer.MSAASampleCount) BackendBuilderOption {
	return func(b *wgpuBackend) {
		if count == renderer.MSAAOff || count == renderer.MSAA4x {
			b.sampleCount = count
		}
	}
}

// WithForceSoftwareRenderer requests the fallback (software) adapter.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - BackendBuilderOption: a function that applies the adapter preference
func WithForceSoftwareRenderer(force bool) BackendBuilderOption {
	return func(b *wgpuBackend) {
		b.forceFallbackAdapter = force
	}
}

// WithSampler overrides the sampler shared by every texture slot.
//
// Parameters:
//   - data: the sampler configuration
//
// Returns:
//   - BackendBuilderOption: a function that applies the sampler configuration
func WithSampler(data SamplerStagingData) BackendBuilderOption {
	return func(b *wgpuBackend) {
		b.samplerData = data
	}
}
