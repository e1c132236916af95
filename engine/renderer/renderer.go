package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/renderer/geometry"
	"github.com/Carmen-Shannon/gates/engine/renderer/texture_slot"
	"github.com/Carmen-Shannon/gates/engine/texture"
)

const (
	// DefaultMaxVertices is the default vertex capacity of each geometry kind.
	DefaultMaxVertices = 20000
	// DefaultMaxIndices is the default index capacity of each geometry kind.
	DefaultMaxIndices = 30000
	// DefaultMaxTextures is the default number of texture slots, including the white slot.
	DefaultMaxTextures = 8
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backend RendererBackend
	limits  BackendLimits
	white   texture.Texture

	tris  *geometry.Buffer
	lines *geometry.Buffer
	slots *texture_slot.Table

	viewProjection [16]float32
	transform      [16]float32

	stats Stats
}

// ViewProjector supplies a combined view-projection matrix, typically a camera.
type ViewProjector interface {
	// ViewProjectionMatrix returns projection × inverse(view) in column-major order.
	ViewProjectionMatrix() [16]float32
}

// Renderer is an immediate-mode 2D batch renderer.
//
// Shapes are staged into two fixed-capacity buffers, one for triangle geometry and one for thin lines,
// and drawn with at most one draw call per buffer per batch. A shape that would overflow its buffer,
// or a textured quad whose texture has no free slot, first triggers an automatic end, flush and begin
// of that buffer, so a batch never exceeds its capacity. The renderer is single-threaded: a frame is
// BeginBatch, any number of draw calls, EndBatch, then FlushBatch, all from the render thread.
type Renderer interface {
	// Init allocates the staging buffers and the backend's GPU resources.
	//
	// Returns:
	//   - error: an error if the backend fails to initialize
	Init() error

	// Delete releases the backend's GPU resources. The renderer must not be used afterwards.
	Delete()

	// Limits returns the per-batch capacities.
	//
	// Returns:
	//   - BackendLimits: the vertex, index and texture slot capacities
	Limits() BackendLimits

	// Resize reconfigures the backend surface for a new size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// BeginFrame acquires the next surface texture and records the clear color.
	//
	// Parameters:
	//   - clear: the background color of the frame
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame(clear common.Color) error

	// EndFrame presents the frame started by BeginFrame.
	EndFrame()

	// BeginBatch rewinds both staging buffers and seeds texture slot 0 with the white texture.
	BeginBatch()

	// EndBatch uploads the staged bytes of every non-empty buffer and the current uniforms.
	// It issues no draw call.
	EndBatch()

	// FlushBatch binds the occupied texture slots and issues one draw call per non-empty buffer,
	// then rewinds the buffers and the slot table. Staged vertex data is not cleared.
	FlushBatch()

	// DrawQuad draws an axis-aligned filled rectangle.
	//
	// Parameters:
	//   - pos: the bottom-left corner
	//   - size: the width and height
	//   - color: the fill color
	DrawQuad(pos, size common.Vec2, color common.Color)

	// DrawTexturedQuad draws an axis-aligned rectangle sampling tex, multiplied by tint.
	// A nil texture draws an untextured quad.
	//
	// Parameters:
	//   - pos: the bottom-left corner
	//   - size: the width and height
	//   - tex: the texture to sample
	//   - tint: the color multiplied with the texture
	DrawTexturedQuad(pos, size common.Vec2, tex texture.Texture, tint common.Color)

	// DrawTri draws a filled triangle.
	DrawTri(v1, v2, v3 common.Vec2, color common.Color)

	// DrawCircle draws a filled circle approximated by segments triangles.
	//
	// Parameters:
	//   - pos: the center
	//   - radius: the radius
	//   - segments: the number of fan triangles, ignored when zero
	//   - color: the fill color
	DrawCircle(pos common.Vec2, radius float32, segments uint32, color common.Color)

	// DrawLine draws a one pixel wide line.
	DrawLine(p1, p2 common.Vec2, color common.Color)

	// DrawThickLine draws a line of the given world-space width as a quad.
	DrawThickLine(p1, p2 common.Vec2, width float32, color common.Color)

	// OutlineQuad draws the four edges of a rectangle as thin lines.
	OutlineQuad(pos, size common.Vec2, color common.Color)

	// OutlineTri draws a mitered band of the given width along the inside of a triangle.
	// A degenerate triangle produces non-finite vertices.
	OutlineTri(v1, v2, v3 common.Vec2, width float32, color common.Color)

	// OutlineCircle draws a ring of the given width along the inside of a circle.
	OutlineCircle(pos common.Vec2, radius float32, segments uint32, width float32, color common.Color)

	// BorderTri draws a triangle filled with inner and edged with a mitered band of outer.
	BorderTri(v1, v2, v3 common.Vec2, width float32, outer, inner common.Color)

	// BorderCircle draws a circle filled with inner and edged with a ring of outer.
	BorderCircle(pos common.Vec2, radius float32, segments uint32, width float32, outer, inner common.Color)

	// BorderSemicircle draws a bordered arc from start to end radians, fanned from pos.
	//
	// Parameters:
	//   - pos: the arc center
	//   - radius: the outer radius
	//   - start, end: the arc bounds in radians
	//   - segments: the number of arc steps, ignored when zero
	//   - width: the border width
	//   - outer: the border color
	//   - inner: the fill color
	BorderSemicircle(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color)

	// BorderSemicircleCenterInside draws a bordered arc whose fill fans from center, a pivot lying
	// inside the arc's radius.
	BorderSemicircleCenterInside(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2)

	// BorderSemicircleCenterOutside draws a bordered arc whose fill fans from center, a pivot lying
	// outside the arc's radius. The fan starts from the outer ring.
	BorderSemicircleCenterOutside(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2)

	// BorderSemicircleCustomCenter picks BorderSemicircleCenterInside or BorderSemicircleCenterOutside
	// from the distance between center and pos.
	BorderSemicircleCustomCenter(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2)

	// SetViewProjection sets the view-projection matrix used by the next upload.
	//
	// Parameters:
	//   - m: the column-major matrix
	SetViewProjection(m [16]float32)

	// SetTransform sets the translation applied to every vertex of the next upload.
	//
	// Parameters:
	//   - t: the x, y, z translation
	SetTransform(t [3]float32)

	// UseCamera sets the view-projection matrix from a camera.
	UseCamera(c ViewProjector)

	// ResetStats zeroes every counter.
	ResetStats()

	// Stats returns a snapshot of the counters. Like every other method it must be called
	// from the render thread.
	//
	// Returns:
	//   - Stats: the counters accumulated since the last ResetStats
	Stats() Stats
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer driving the given backend.
// Capacities default to 20000 vertices, 30000 indices and 8 texture slots; Init must be called
// before the first batch.
//
// Parameters:
//   - backend: the GPU backend to drive
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backend RendererBackend, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		backend: backend,
		limits: BackendLimits{
			MaxVertices: DefaultMaxVertices,
			MaxIndices:  DefaultMaxIndices,
			MaxTextures: DefaultMaxTextures,
		},
		viewProjection: common.IdentityMatrix(),
		transform:      common.IdentityMatrix(),
	}

	for _, opt := range options {
		opt(r)
	}

	if r.white == nil {
		r.white = texture.NewTextureFromColor(common.White)
	}
	return r
}

func (r *renderer) Init() error {
	r.tris = geometry.NewBuffer(r.limits.MaxVertices, r.limits.MaxIndices)
	r.lines = geometry.NewBuffer(r.limits.MaxVertices, r.limits.MaxIndices)
	r.slots = texture_slot.NewTable(r.limits.MaxTextures, r.white)

	if err := r.backend.Init(r.limits); err != nil {
		return fmt.Errorf("failed to initialize renderer backend: %w", err)
	}
	logger.Logger().Info("renderer initialized",
		"max_vertices", r.limits.MaxVertices,
		"max_indices", r.limits.MaxIndices,
		"max_textures", r.limits.MaxTextures,
	)
	return nil
}

func (r *renderer) Delete() {
	r.backend.Release()
	r.tris, r.lines, r.slots = nil, nil, nil
}

func (r *renderer) Limits() BackendLimits {
	return r.limits
}

func (r *renderer) Resize(width, height int) {
	r.backend.Resize(width, height)
}

func (r *renderer) BeginFrame(clear common.Color) error {
	if err := r.backend.BeginFrame(clear); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) BeginBatch() {
	r.tris.Reset()
	r.lines.Reset()
	r.slots.Reset(r.white)
}

func (r *renderer) EndBatch() {
	r.upload(geometry.KindTriangles)
	r.upload(geometry.KindLines)
	r.uploadUniforms()
}

func (r *renderer) FlushBatch() {
	if !r.tris.Empty() || !r.lines.Empty() {
		r.backend.BindTextures(r.slots.Slots())
	}
	r.draw(geometry.KindTriangles)
	r.draw(geometry.KindLines)

	r.tris.Reset()
	r.lines.Reset()
	r.slots.Reset(r.white)
}

// cycle runs end, flush and begin for a single geometry kind. Only the triangle
// buffer samples textures, so only its cycle releases the slot table.
func (r *renderer) cycle(kind geometry.Kind) {
	logger.Logger().Debug("batch full, flushing", "kind", kind)

	r.upload(kind)
	r.uploadUniforms()
	if kind == geometry.KindTriangles && !r.tris.Empty() {
		r.backend.BindTextures(r.slots.Slots())
	}
	r.draw(kind)

	r.buffer(kind).Reset()
	if kind == geometry.KindTriangles {
		r.slots.Reset(r.white)
	}
}

func (r *renderer) buffer(kind geometry.Kind) *geometry.Buffer {
	if kind == geometry.KindLines {
		return r.lines
	}
	return r.tris
}

func (r *renderer) upload(kind geometry.Kind) {
	buf := r.buffer(kind)
	if buf.Empty() {
		return
	}
	r.backend.UploadGeometry(kind, buf.VertexBytes(), buf.IndexBytes())
}

func (r *renderer) uploadUniforms() {
	r.backend.UploadUniforms(GPUBatchUniform{
		ViewProjection: r.viewProjection,
		Transform:      r.transform,
	})
}

func (r *renderer) draw(kind geometry.Kind) {
	buf := r.buffer(kind)
	if buf.Empty() {
		return
	}
	r.backend.Draw(kind, buf.IndexCount())
	r.stats.DrawCalls++
	if kind == geometry.KindLines {
		r.stats.LineVertices += buf.VertexCount()
		r.stats.LineIndices += buf.IndexCount()
	} else {
		r.stats.TriVertices += buf.VertexCount()
		r.stats.TriIndices += buf.IndexCount()
	}
}

// reserve makes room for a primitive of the given cost, flushing its buffer when needed.
// It returns false when the primitive can never fit and must be dropped.
func (r *renderer) reserve(kind geometry.Kind, cost geometry.Cost, op string) bool {
	buf := r.buffer(kind)
	if !buf.Holds(cost) {
		logger.Logger().Warn("primitive exceeds batch capacity, dropped",
			"op", op,
			"vertices", cost.Vertices,
			"indices", cost.Indices,
			"max_vertices", buf.MaxVertices(),
			"max_indices", buf.MaxIndices(),
		)
		return false
	}
	if !buf.Fits(cost) {
		r.cycle(kind)
	}
	return true
}

func validSegments(op string, segments uint32) bool {
	if segments == 0 {
		logger.Logger().Debug("primitive with zero segments ignored", "op", op)
		return false
	}
	return true
}

func (r *renderer) DrawQuad(pos, size common.Vec2, color common.Color) {
	if !r.reserve(geometry.KindTriangles, geometry.QuadCost, "DrawQuad") {
		return
	}
	geometry.Quad(r.tris, pos, size, color, 0)
	r.stats.QuadsDrawn++
}

func (r *renderer) DrawTexturedQuad(pos, size common.Vec2, tex texture.Texture, tint common.Color) {
	if tex == nil {
		r.DrawQuad(pos, size, tint)
		return
	}
	if !r.reserve(geometry.KindTriangles, geometry.QuadCost, "DrawTexturedQuad") {
		return
	}

	slot, ok := r.slots.Resolve(tex)
	if !ok {
		r.cycle(geometry.KindTriangles)
		if slot, ok = r.slots.Resolve(tex); !ok {
			logger.Logger().Warn("no texture slot available, quad dropped",
				"texture", tex.Label(),
				"max_textures", r.limits.MaxTextures,
			)
			return
		}
	}
	geometry.Quad(r.tris, pos, size, tint, slot)
	r.stats.QuadsDrawn++
}

func (r *renderer) DrawTri(v1, v2, v3 common.Vec2, color common.Color) {
	if !r.reserve(geometry.KindTriangles, geometry.TriCost, "DrawTri") {
		return
	}
	geometry.Tri(r.tris, v1, v2, v3, color)
	r.stats.TrisDrawn++
}

func (r *renderer) DrawCircle(pos common.Vec2, radius float32, segments uint32, color common.Color) {
	if !validSegments("DrawCircle", segments) || !r.reserve(geometry.KindTriangles, geometry.CircleCost(segments), "DrawCircle") {
		return
	}
	geometry.Circle(r.tris, pos, radius, segments, color)
	r.stats.CirclesDrawn++
}

func (r *renderer) DrawLine(p1, p2 common.Vec2, color common.Color) {
	if !r.reserve(geometry.KindLines, geometry.LineCost, "DrawLine") {
		return
	}
	geometry.Line(r.lines, p1, p2, color)
	r.stats.LinesDrawn++
}

func (r *renderer) DrawThickLine(p1, p2 common.Vec2, width float32, color common.Color) {
	if !r.reserve(geometry.KindTriangles, geometry.ThickLineCost, "DrawThickLine") {
		return
	}
	geometry.ThickLine(r.tris, p1, p2, width, color)
	r.stats.WideLinesDrawn++
}

func (r *renderer) OutlineQuad(pos, size common.Vec2, color common.Color) {
	if !r.reserve(geometry.KindLines, geometry.OutlineQuadCost, "OutlineQuad") {
		return
	}
	geometry.OutlineQuad(r.lines, pos, size, color)
	r.stats.QuadsOutlined++
}

func (r *renderer) OutlineTri(v1, v2, v3 common.Vec2, width float32, color common.Color) {
	if !r.reserve(geometry.KindTriangles, geometry.OutlineTriCost, "OutlineTri") {
		return
	}
	geometry.OutlineTri(r.tris, v1, v2, v3, width, color)
	r.stats.TrisOutlined++
}

func (r *renderer) OutlineCircle(pos common.Vec2, radius float32, segments uint32, width float32, color common.Color) {
	if !validSegments("OutlineCircle", segments) || !r.reserve(geometry.KindTriangles, geometry.OutlineCircleCost(segments), "OutlineCircle") {
		return
	}
	geometry.OutlineCircle(r.tris, pos, radius, segments, width, color)
	r.stats.CirclesOutlined++
}

func (r *renderer) BorderTri(v1, v2, v3 common.Vec2, width float32, outer, inner common.Color) {
	if !r.reserve(geometry.KindTriangles, geometry.BorderTriCost, "BorderTri") {
		return
	}
	geometry.BorderTri(r.tris, v1, v2, v3, width, outer, inner)
	r.stats.TrisBordered++
}

func (r *renderer) BorderCircle(pos common.Vec2, radius float32, segments uint32, width float32, outer, inner common.Color) {
	if !validSegments("BorderCircle", segments) || !r.reserve(geometry.KindTriangles, geometry.BorderCircleCost(segments), "BorderCircle") {
		return
	}
	geometry.BorderCircle(r.tris, pos, radius, segments, width, outer, inner)
	r.stats.CirclesBordered++
}

// reserveArc validates and makes room for a bordered arc.
func (r *renderer) reserveArc(op string, segments uint32) bool {
	return validSegments(op, segments) && r.reserve(geometry.KindTriangles, geometry.BorderSemicircleCost(segments), op)
}

func arc(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color) geometry.Arc {
	return geometry.Arc{
		Center:   pos,
		Radius:   radius,
		Start:    start,
		End:      end,
		Segments: segments,
		Width:    width,
		Outer:    outer,
		Inner:    inner,
	}
}

func (r *renderer) BorderSemicircle(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color) {
	if !r.reserveArc("BorderSemicircle", segments) {
		return
	}
	geometry.BorderSemicircle(r.tris, arc(pos, radius, start, end, segments, width, outer, inner))
	r.stats.SemicirclesBordered++
}

func (r *renderer) BorderSemicircleCenterInside(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2) {
	if !r.reserveArc("BorderSemicircleCenterInside", segments) {
		return
	}
	geometry.BorderSemicircleCenterInside(r.tris, arc(pos, radius, start, end, segments, width, outer, inner), center)
	r.stats.SemicirclesBordered++
}

func (r *renderer) BorderSemicircleCenterOutside(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2) {
	if !r.reserveArc("BorderSemicircleCenterOutside", segments) {
		return
	}
	geometry.BorderSemicircleCenterOutside(r.tris, arc(pos, radius, start, end, segments, width, outer, inner), center)
	r.stats.SemicirclesBordered++
}

func (r *renderer) BorderSemicircleCustomCenter(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2) {
	a := arc(pos, radius, start, end, segments, width, outer, inner)
	if geometry.PivotOutside(a, center) {
		r.BorderSemicircleCenterOutside(pos, radius, start, end, segments, width, outer, inner, center)
		return
	}
	r.BorderSemicircleCenterInside(pos, radius, start, end, segments, width, outer, inner, center)
}

func (r *renderer) SetViewProjection(m [16]float32) {
	r.viewProjection = m
}

func (r *renderer) SetTransform(t [3]float32) {
	common.Translate(r.transform[:], t[0], t[1], t[2])
}

func (r *renderer) UseCamera(c ViewProjector) {
	r.viewProjection = c.ViewProjectionMatrix()
}

func (r *renderer) ResetStats() {
	r.stats = Stats{}
}

func (r *renderer) Stats() Stats {
	return r.stats
}
