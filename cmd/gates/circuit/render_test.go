package circuit

import (
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/Carmen-Shannon/gates/engine/renderer/geometry"
	"github.com/Carmen-Shannon/gates/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawOrderBackend keeps the kind of every draw in submission order.
type drawOrderBackend struct {
	draws []geometry.Kind
}

func (b *drawOrderBackend) Init(renderer.BackendLimits) error { return nil }
func (b *drawOrderBackend) Release()                          {}
func (b *drawOrderBackend) BeginFrame(common.Color) error     { return nil }
func (b *drawOrderBackend) EndFrame()                         {}
func (b *drawOrderBackend) Resize(int, int)                   {}

func (b *drawOrderBackend) UploadGeometry(geometry.Kind, []byte, []byte) {}
func (b *drawOrderBackend) UploadUniforms(renderer.GPUBatchUniform)      {}
func (b *drawOrderBackend) BindTextures([]texture.Texture)               {}

func (b *drawOrderBackend) Draw(kind geometry.Kind, _ int) {
	b.draws = append(b.draws, kind)
}

func TestRenderDrawsGridBehindCircuit(t *testing.T) {
	backend := &drawOrderBackend{}
	r := renderer.NewRenderer(backend)
	require.NoError(t, r.Init())

	fa := NewFullAdder()
	Render(r, fa.Circuit, DefaultTheme(), common.V2(-2, -4), common.V2(16, 6))

	// Grid lines first, then the gate bodies and wires, then the input gate outlines on top.
	assert.Equal(t, []geometry.Kind{geometry.KindLines, geometry.KindTriangles, geometry.KindLines}, backend.draws)
	assert.Equal(t, 3, r.Stats().DrawCalls)
}

func TestRenderAcceptsSwappedCorners(t *testing.T) {
	backend := &drawOrderBackend{}
	r := renderer.NewRenderer(backend)
	require.NoError(t, r.Init())

	Render(r, New(), DefaultTheme(), common.V2(3, 3), common.V2(0, 0))

	assert.Equal(t, []geometry.Kind{geometry.KindLines}, backend.draws)
	assert.Equal(t, 8, r.Stats().LinesDrawn)
}
