package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/renderer/geometry"
	"github.com/Carmen-Shannon/gates/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	kind       geometry.Kind
	indexCount int
}

type upload struct {
	kind     geometry.Kind
	vertices int
	indices  int
}

// fakeBackend records every call the renderer makes.
type fakeBackend struct {
	initErr  error
	frameErr error

	limits   BackendLimits
	uploads  []upload
	uniforms []GPUBatchUniform
	bound    [][]uint32
	draws    []drawCall

	frames    int
	presented int
	released  bool
	width     int
	height    int
}

func (f *fakeBackend) Init(limits BackendLimits) error {
	f.limits = limits
	return f.initErr
}

func (f *fakeBackend) Release() {
	f.released = true
}

func (f *fakeBackend) BeginFrame(clear common.Color) error {
	if f.frameErr != nil {
		return f.frameErr
	}
	f.frames++
	return nil
}

func (f *fakeBackend) EndFrame() {
	f.presented++
}

func (f *fakeBackend) UploadGeometry(kind geometry.Kind, vertices, indices []byte) {
	f.uploads = append(f.uploads, upload{
		kind:     kind,
		vertices: len(vertices) / geometry.VertexSize,
		indices:  len(indices) / geometry.IndexSize,
	})
}

func (f *fakeBackend) UploadUniforms(u GPUBatchUniform) {
	f.uniforms = append(f.uniforms, u)
}

func (f *fakeBackend) BindTextures(textures []texture.Texture) {
	ids := make([]uint32, len(textures))
	for i, t := range textures {
		ids[i] = t.ID()
	}
	f.bound = append(f.bound, ids)
}

func (f *fakeBackend) Draw(kind geometry.Kind, indexCount int) {
	f.draws = append(f.draws, drawCall{kind: kind, indexCount: indexCount})
}

func (f *fakeBackend) Resize(width, height int) {
	f.width, f.height = width, height
}

type fixedCamera [16]float32

func (c fixedCamera) ViewProjectionMatrix() [16]float32 {
	return c
}

func newTestRenderer(t *testing.T, options ...RendererBuilderOption) (*renderer, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{}
	r := NewRenderer(backend, options...).(*renderer)
	require.NoError(t, r.Init())
	r.BeginBatch()
	return r, backend
}

func finish(r Renderer) {
	r.EndBatch()
	r.FlushBatch()
}

func TestNewRendererDefaults(t *testing.T) {
	r, backend := newTestRenderer(t)

	assert.Equal(t, BackendLimits{MaxVertices: 20000, MaxIndices: 30000, MaxTextures: 8}, backend.limits)
	assert.Equal(t, backend.limits, r.Limits())
}

func TestInitWrapsBackendError(t *testing.T) {
	cause := errors.New("no adapter")
	r := NewRenderer(&fakeBackend{initErr: cause})

	err := r.Init()

	assert.ErrorIs(t, err, cause)
}

func TestCapacityOptionsIgnoreNonPositive(t *testing.T) {
	r := NewRenderer(&fakeBackend{}, WithMaxVertices(0), WithMaxIndices(-1), WithMaxTextures(4))

	assert.Equal(t, BackendLimits{MaxVertices: 20000, MaxIndices: 30000, MaxTextures: 4}, r.Limits())
}

func TestDrawCallsMatchCeilOfCost(t *testing.T) {
	tests := []struct {
		name        string
		maxVertices int
		maxIndices  int
		count       int
		draw        func(r Renderer)
		wantDraws   int
		want        Stats
	}{
		{
			name:        "quads",
			maxVertices: 8, maxIndices: 12,
			count:     10,
			draw:      func(r Renderer) { r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White) },
			wantDraws: 5,
			want:      Stats{TriVertices: 40, TriIndices: 60},
		},
		{
			name:        "triangles",
			maxVertices: 9, maxIndices: 9,
			count:     7,
			draw:      func(r Renderer) { r.DrawTri(common.V2(0, 0), common.V2(1, 0), common.V2(0, 1), common.White) },
			wantDraws: 3,
			want:      Stats{TriVertices: 21, TriIndices: 21},
		},
		{
			name:        "lines",
			maxVertices: 6, maxIndices: 6,
			count:     9,
			draw:      func(r Renderer) { r.DrawLine(common.V2(0, 0), common.V2(1, 1), common.White) },
			wantDraws: 3,
			want:      Stats{LineVertices: 18, LineIndices: 18},
		},
		{
			name:        "fits in one batch",
			maxVertices: 100, maxIndices: 100,
			count:     10,
			draw:      func(r Renderer) { r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White) },
			wantDraws: 1,
			want:      Stats{TriVertices: 40, TriIndices: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, backend := newTestRenderer(t, WithMaxVertices(tt.maxVertices), WithMaxIndices(tt.maxIndices))

			for range tt.count {
				tt.draw(r)
			}
			finish(r)

			assert.Len(t, backend.draws, tt.wantDraws)
			stats := r.Stats()
			assert.Equal(t, tt.wantDraws, stats.DrawCalls)
			assert.Equal(t, tt.want.TriVertices, stats.TriVertices)
			assert.Equal(t, tt.want.TriIndices, stats.TriIndices)
			assert.Equal(t, tt.want.LineVertices, stats.LineVertices)
			assert.Equal(t, tt.want.LineIndices, stats.LineIndices)
			for _, u := range backend.uploads {
				assert.LessOrEqual(t, u.vertices, tt.maxVertices)
				assert.LessOrEqual(t, u.indices, tt.maxIndices)
			}
			for _, d := range backend.draws {
				assert.LessOrEqual(t, d.indexCount, tt.maxIndices)
			}
		})
	}
}

func TestEmptyBatchIssuesNoDraw(t *testing.T) {
	r, backend := newTestRenderer(t)

	finish(r)

	assert.Empty(t, backend.draws)
	assert.Empty(t, backend.bound)
	assert.Empty(t, backend.uploads)
	assert.Len(t, backend.uniforms, 1)
	assert.Zero(t, r.Stats().DrawCalls)
}

func TestEndBatchUploadsWrittenBytesOnly(t *testing.T) {
	r, backend := newTestRenderer(t)

	r.DrawQuad(common.V2(0, 0), common.V2(10, 10), common.White)
	r.DrawLine(common.V2(0, 0), common.V2(1, 1), common.White)
	r.EndBatch()

	assert.Equal(t, []upload{
		{kind: geometry.KindTriangles, vertices: 4, indices: 6},
		{kind: geometry.KindLines, vertices: 2, indices: 2},
	}, backend.uploads)
	assert.Empty(t, backend.draws)

	r.FlushBatch()
	assert.Equal(t, []drawCall{
		{kind: geometry.KindTriangles, indexCount: 6},
		{kind: geometry.KindLines, indexCount: 2},
	}, backend.draws)
}

func TestSlotZeroIsWhite(t *testing.T) {
	white := texture.NewTextureFromColor(common.White)
	r, backend := newTestRenderer(t, WithWhiteTexture(white))

	r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White)
	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), white, common.White)
	finish(r)

	require.Len(t, backend.bound, 1)
	assert.Equal(t, []uint32{white.ID()}, backend.bound[0])
}

func TestTexturedQuadReusesSlot(t *testing.T) {
	white := texture.NewTextureFromColor(common.White)
	tex := texture.NewTextureFromColor(common.Black)
	r, backend := newTestRenderer(t, WithWhiteTexture(white))

	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), tex, common.White)
	r.DrawTexturedQuad(common.V2(2, 0), common.V2(1, 1), tex, common.White)

	assert.Equal(t, float32(1), r.tris.Vertices()[0].TexID)
	assert.Equal(t, float32(1), r.tris.Vertices()[4].TexID)

	finish(r)
	require.Len(t, backend.bound, 1)
	assert.Equal(t, []uint32{white.ID(), tex.ID()}, backend.bound[0])
	assert.Len(t, backend.draws, 1)
}

func TestTexturedQuadFlushesWhenSlotsFull(t *testing.T) {
	white := texture.NewTextureFromColor(common.White)
	a := texture.NewTextureFromColor(common.Black)
	b := texture.NewTextureFromColor(common.Transparent)
	r, backend := newTestRenderer(t, WithWhiteTexture(white), WithMaxTextures(2))

	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), a, common.White)
	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), a, common.White)
	assert.Empty(t, backend.draws)

	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), b, common.White)
	require.Len(t, backend.draws, 1)
	assert.Equal(t, 12, backend.draws[0].indexCount)

	finish(r)
	assert.Equal(t, [][]uint32{
		{white.ID(), a.ID()},
		{white.ID(), b.ID()},
	}, backend.bound)
	assert.Equal(t, 3, r.Stats().QuadsDrawn)
	assert.Equal(t, 2, r.Stats().DrawCalls)
}

func TestTexturedQuadDroppedWithSingleSlot(t *testing.T) {
	r, backend := newTestRenderer(t, WithMaxTextures(1))

	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), texture.NewTextureFromColor(common.Black), common.White)
	finish(r)

	assert.Zero(t, r.Stats().QuadsDrawn)
	assert.Empty(t, backend.draws)
}

func TestLineFlushKeepsTextureSlots(t *testing.T) {
	white := texture.NewTextureFromColor(common.White)
	tex := texture.NewTextureFromColor(common.Black)
	r, backend := newTestRenderer(t, WithWhiteTexture(white), WithMaxVertices(4), WithMaxIndices(8))

	r.DrawTexturedQuad(common.V2(0, 0), common.V2(1, 1), tex, common.White)
	for range 3 {
		r.DrawLine(common.V2(0, 0), common.V2(1, 1), common.White)
	}

	require.Len(t, backend.draws, 1)
	assert.Equal(t, geometry.KindLines, backend.draws[0].kind)
	assert.Empty(t, backend.bound)
	assert.True(t, r.slots.Contains(tex))

	finish(r)
	assert.Equal(t, [][]uint32{{white.ID(), tex.ID()}}, backend.bound)
	assert.Equal(t, []drawCall{
		{kind: geometry.KindLines, indexCount: 4},
		{kind: geometry.KindTriangles, indexCount: 6},
		{kind: geometry.KindLines, indexCount: 2},
	}, backend.draws)
}

func TestStatsCountEachPrimitiveOnce(t *testing.T) {
	r, backend := newTestRenderer(t)
	p := common.V2(0, 0)
	v2, v3 := common.V2(4, 0), common.V2(0, 3)
	c := common.White

	r.DrawQuad(p, common.V2(1, 1), c)
	r.DrawTri(p, v2, v3, c)
	r.DrawCircle(p, 1, 8, c)
	r.DrawLine(p, v2, c)
	r.DrawThickLine(p, v2, 1, c)
	r.OutlineQuad(p, common.V2(1, 1), c)
	r.OutlineTri(p, v2, v3, 0.1, c)
	r.OutlineCircle(p, 1, 8, 0.1, c)
	r.BorderTri(p, v2, v3, 0.1, c, c)
	r.BorderCircle(p, 1, 8, 0.1, c, c)
	r.BorderSemicircle(p, 1, 0, math.Pi, 8, 0.1, c, c)
	r.BorderSemicircleCenterInside(p, 1, 0, math.Pi, 8, 0.1, c, c, p)
	r.BorderSemicircleCenterOutside(p, 1, 0, math.Pi, 8, 0.1, c, c, common.V2(5, 5))
	r.BorderSemicircleCustomCenter(p, 1, 0, math.Pi, 8, 0.1, c, c, p)
	finish(r)

	var staged [2]upload
	for _, u := range backend.uploads {
		staged[u.kind].vertices += u.vertices
		staged[u.kind].indices += u.indices
	}
	require.NotZero(t, staged[geometry.KindTriangles].vertices)
	require.NotZero(t, staged[geometry.KindLines].vertices)

	assert.Equal(t, Stats{
		DrawCalls:           2,
		TriVertices:         staged[geometry.KindTriangles].vertices,
		TriIndices:          staged[geometry.KindTriangles].indices,
		LineVertices:        staged[geometry.KindLines].vertices,
		LineIndices:         staged[geometry.KindLines].indices,
		QuadsDrawn:          1,
		TrisDrawn:           1,
		CirclesDrawn:        1,
		LinesDrawn:          1,
		WideLinesDrawn:      1,
		QuadsOutlined:       1,
		TrisOutlined:        1,
		CirclesOutlined:     1,
		TrisBordered:        1,
		CirclesBordered:     1,
		SemicirclesBordered: 4,
	}, r.Stats())
	assert.Equal(t, 14, r.Stats().Primitives())

	r.ResetStats()
	assert.Equal(t, Stats{}, r.Stats())
}

func TestStatsSurviveBatches(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White)
	finish(r)
	r.BeginBatch()
	r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White)
	finish(r)

	assert.Equal(t, 2, r.Stats().QuadsDrawn)
	assert.Equal(t, 2, r.Stats().DrawCalls)
}

func TestZeroSegmentsIgnored(t *testing.T) {
	r, backend := newTestRenderer(t)
	p := common.V2(0, 0)

	r.DrawCircle(p, 1, 0, common.White)
	r.OutlineCircle(p, 1, 0, 0.1, common.White)
	r.BorderCircle(p, 1, 0, 0.1, common.White, common.Black)
	r.BorderSemicircle(p, 1, 0, math.Pi, 0, 0.1, common.White, common.Black)
	r.BorderSemicircleCustomCenter(p, 1, 0, math.Pi, 0, 0.1, common.White, common.Black, p)
	finish(r)

	assert.Equal(t, Stats{}, r.Stats())
	assert.Empty(t, backend.draws)
}

func TestOversizedPrimitiveDropped(t *testing.T) {
	r, backend := newTestRenderer(t, WithMaxVertices(8), WithMaxIndices(12))

	r.DrawQuad(common.V2(0, 0), common.V2(1, 1), common.White)
	r.DrawCircle(common.V2(0, 0), 1, 64, common.White)
	finish(r)

	assert.Zero(t, r.Stats().CirclesDrawn)
	assert.Equal(t, 1, r.Stats().QuadsDrawn)
	assert.Equal(t, []drawCall{{kind: geometry.KindTriangles, indexCount: 6}}, backend.draws)
}

func TestBorderSemicircleCustomCenterWritesArc(t *testing.T) {
	r, backend := newTestRenderer(t)

	r.BorderSemicircleCustomCenter(common.V2(0, 0), 1, 0, math.Pi, 6, 0.1, common.White, common.Black, common.V2(3, 0))
	r.EndBatch()

	require.Len(t, backend.uploads, 1)
	assert.Equal(t, 3*6+4, backend.uploads[0].vertices)
	assert.Equal(t, 9*6, backend.uploads[0].indices)
}

func TestUniformsFollowTransformState(t *testing.T) {
	r, backend := newTestRenderer(t)

	r.EndBatch()
	require.Len(t, backend.uniforms, 1)
	assert.Equal(t, common.IdentityMatrix(), backend.uniforms[0].ViewProjection)
	assert.Equal(t, common.IdentityMatrix(), backend.uniforms[0].Transform)

	var vp [16]float32
	common.Ortho(vp[:], 0, 100, 0, 50, -1, 1)
	r.SetViewProjection(vp)
	r.SetTransform([3]float32{1, 2, 3})
	r.EndBatch()

	last := backend.uniforms[len(backend.uniforms)-1]
	assert.Equal(t, vp, last.ViewProjection)
	assert.Equal(t, float32(1), last.Transform[12])
	assert.Equal(t, float32(2), last.Transform[13])
	assert.Equal(t, float32(3), last.Transform[14])

	cam := fixedCamera(common.IdentityMatrix())
	cam[0] = 7
	r.UseCamera(cam)
	r.EndBatch()
	assert.Equal(t, float32(7), backend.uniforms[len(backend.uniforms)-1].ViewProjection[0])
}

func TestFramePlumbing(t *testing.T) {
	r, backend := newTestRenderer(t)

	require.NoError(t, r.BeginFrame(common.Black))
	r.EndFrame()
	r.Resize(800, 600)
	r.Delete()

	assert.Equal(t, 1, backend.frames)
	assert.Equal(t, 1, backend.presented)
	assert.Equal(t, 800, backend.width)
	assert.Equal(t, 600, backend.height)
	assert.True(t, backend.released)
}

func TestBeginFrameWrapsError(t *testing.T) {
	cause := errors.New("surface lost")
	r, backend := newTestRenderer(t)
	backend.frameErr = cause

	assert.ErrorIs(t, r.BeginFrame(common.Black), cause)
}

func TestBatchUniformMarshal(t *testing.T) {
	u := GPUBatchUniform{ViewProjection: common.IdentityMatrix()}
	u.Transform[12] = 2.5

	buf := u.Marshal()

	require.Len(t, buf, 128)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(2.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[64+12*4:])))
}
