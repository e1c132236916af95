package wgpu_backend

import "github.com/cogentcore/webgpu/wgpu"

// SamplerStagingData describes the sampler shared by every texture slot.
// Zero-valued fields fall back to clamp-to-edge addressing and linear filtering.
type SamplerStagingData struct {
	AddressModeU  wgpu.AddressMode
	AddressModeV  wgpu.AddressMode
	AddressModeW  wgpu.AddressMode
	MagFilter     wgpu.FilterMode
	MinFilter     wgpu.FilterMode
	MipmapFilter  wgpu.MipmapFilterMode
	LodMinClamp   float32
	LodMaxClamp   float32
	MaxAnisotropy uint16
}

// gpuTexture is a texture resident on the GPU, keyed in the backend cache by texture ID.
type gpuTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (t gpuTexture) release() {
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
}

// textureFormat stores texels unconverted, matching the linear surface format.
const textureFormat = wgpu.TextureFormatRGBA8Unorm

// linearFormats maps sRGB surface formats to their linear counterparts.
var linearFormats = map[wgpu.TextureFormat]wgpu.TextureFormat{
	wgpu.TextureFormatBGRA8UnormSrgb: wgpu.TextureFormatBGRA8Unorm,
	wgpu.TextureFormatRGBA8UnormSrgb: wgpu.TextureFormatRGBA8Unorm,
}

func isSrgb(format wgpu.TextureFormat) bool {
	_, ok := linearFormats[format]
	return ok
}

// pickSurfaceFormat chooses the first linear surface format, falling back to the first format.
// Vertex colors are already in display space and must not be encoded again.
//
// Parameters:
//   - formats: the formats supported by the surface, in preference order
//
// Returns:
//   - wgpu.TextureFormat: the chosen format, or TextureFormatUndefined when formats is empty
func pickSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined
	}
	for _, f := range formats {
		if !isSrgb(f) {
			return f
		}
	}
	return formats[0]
}
