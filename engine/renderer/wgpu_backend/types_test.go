package wgpu_backend

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPickSurfaceFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{"srgb listed first", []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm}, wgpu.TextureFormatBGRA8Unorm},
		{"linear only", []wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm}, wgpu.TextureFormatRGBA8Unorm},
		{"srgb only", []wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb}, wgpu.TextureFormatRGBA8UnormSrgb},
		{"none", nil, wgpu.TextureFormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickSurfaceFormat(tt.formats))
		})
	}
}

func TestTextureFormatIsLinear(t *testing.T) {
	assert.False(t, isSrgb(textureFormat))
	assert.True(t, isSrgb(wgpu.TextureFormatBGRA8UnormSrgb))
}
