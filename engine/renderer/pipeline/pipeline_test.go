package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("tris", nil)

	assert.Equal(t, "tris", p.PipelineKey())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOneMinusSrcAlpha, p.BlendState().Color.DstFactor)
	assert.Nil(t, p.RenderPipeline())
}

func TestNewPipelineOptions(t *testing.T) {
	additive := &wgpu.BlendState{
		Color: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOne, Operation: wgpu.BlendOperationAdd},
		Alpha: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOne, Operation: wgpu.BlendOperationAdd},
	}
	p := NewPipeline("lines", nil,
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithBlendEnabled(false),
		WithBlendState(additive),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed|wgpu.ColorWriteMaskAlpha),
	)

	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.False(t, p.BlendEnabled())
	assert.Same(t, additive, p.BlendState())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed|wgpu.ColorWriteMaskAlpha, p.WriteMask())
}

func TestReleaseWithoutGPUPipeline(t *testing.T) {
	p := NewPipeline("tris", nil)
	assert.NotPanics(t, p.Release)
	assert.Nil(t, p.RenderPipeline())
}
