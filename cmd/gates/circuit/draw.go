package circuit

import (
	"github.com/Carmen-Shannon/gates/common"
	"github.com/chewxy/math32"
)

// Canvas is the part of the batch renderer used to draw a circuit.
type Canvas interface {
	DrawQuad(pos, size common.Vec2, color common.Color)
	DrawCircle(pos common.Vec2, radius float32, segments uint32, color common.Color)
	DrawLine(p1, p2 common.Vec2, color common.Color)
	DrawThickLine(p1, p2 common.Vec2, width float32, color common.Color)
	OutlineQuad(pos, size common.Vec2, color common.Color)
	OutlineCircle(pos common.Vec2, radius float32, segments uint32, width float32, color common.Color)
	BorderTri(v1, v2, v3 common.Vec2, width float32, outer, inner common.Color)
	BorderCircle(pos common.Vec2, radius float32, segments uint32, width float32, outer, inner common.Color)
	BorderSemicircle(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color)
	BorderSemicircleCustomCenter(pos common.Vec2, radius, start, end float32, segments uint32, width float32, outer, inner common.Color, center common.Vec2)
}

// Theme holds the colors and sizes used by Draw.
type Theme struct {
	Body   common.Color
	Border common.Color
	Off    common.Color
	On     common.Color
	Grid   common.Color

	BorderWidth float32
	WireWidth   float32
	Segments    uint32
}

// DefaultTheme returns a dark theme with green live signals.
func DefaultTheme() Theme {
	return Theme{
		Body:        common.RGBA8(48, 52, 64, 255),
		Border:      common.RGBA8(200, 204, 214, 255),
		Off:         common.RGBA8(90, 30, 30, 255),
		On:          common.RGBA8(60, 220, 90, 255),
		Grid:        common.RGBA8(40, 40, 44, 255),
		BorderWidth: 0.06,
		WireWidth:   0.06,
		Segments:    24,
	}
}

// Signal returns the color of a wire or pin carrying on.
func (t Theme) Signal(on bool) common.Color {
	if on {
		return t.On
	}
	return t.Off
}

// Draw draws every wire and then every gate with its pins.
//
// Parameters:
//   - cv: the canvas, normally the batch renderer inside an open batch
//   - c: the circuit
//   - th: the theme
func Draw(cv Canvas, c *Circuit, th Theme) {
	for _, w := range c.Wires() {
		from, okFrom := c.Gate(w.From)
		to, okTo := c.Gate(w.To)
		if !okFrom || !okTo {
			continue
		}
		drawWire(cv, from.OutputPin(), to.InputPin(w.Pin), th.WireWidth, th.Signal(from.Output()))
	}
	for _, g := range c.Gates() {
		drawGate(cv, g, th)
		drawPins(cv, g, th)
	}
}

func drawWire(cv Canvas, from, to common.Vec2, width float32, color common.Color) {
	points := Route(from, to)
	for i := 1; i < len(points); i++ {
		cv.DrawThickLine(points[i-1], points[i], width, color)
	}
}

func drawGate(cv Canvas, g *Gate, th Theme) {
	p := g.Pos()
	half := GateSize / 2
	bw := th.BorderWidth

	switch g.Kind() {
	case KindInput:
		size := common.V2(GateSize, GateSize)
		cv.DrawQuad(g.Min(), size, th.Signal(g.Output()))
		cv.OutlineQuad(g.Min(), size, th.Border)
	case KindOutput:
		cv.BorderCircle(p, half*0.8, th.Segments, bw, th.Border, th.Signal(g.Output()))
	case KindAnd:
		cv.DrawQuad(g.Min(), common.V2(half, GateSize), th.Body)
		top := common.V2(p.X-half, p.Y-half+bw/2)
		bottom := common.V2(p.X-half, p.Y+half-bw/2)
		cv.DrawThickLine(top, common.V2(p.X, top.Y), bw, th.Border)
		cv.DrawThickLine(bottom, common.V2(p.X, bottom.Y), bw, th.Border)
		cv.DrawThickLine(common.V2(p.X-half+bw/2, p.Y-half), common.V2(p.X-half+bw/2, p.Y+half), bw, th.Border)
		cv.BorderSemicircle(p, half, -math32.Pi/2, math32.Pi/2, th.Segments, bw, th.Border, th.Body)
	case KindOr, KindXor:
		drawOrBody(cv, p, th)
		if g.Kind() == KindXor {
			x := p.X - half
			cv.DrawThickLine(common.V2(x, p.Y-half), common.V2(x, p.Y+half), bw, th.Border)
		}
	case KindNot:
		bubble := half * 0.2
		tip := common.V2(p.X+half-2*bubble, p.Y)
		cv.BorderTri(common.V2(p.X-half, p.Y-half), common.V2(p.X-half, p.Y+half), tip, bw, th.Border, th.Body)
		cv.BorderCircle(common.V2(tip.X+bubble, p.Y), bubble, th.Segments/2, bw/2, th.Border, th.Body)
	}
}

// drawOrBody draws a shield whose curved front is an arc around a point behind the gate,
// filled from a pivot just behind the body center.
func drawOrBody(cv Canvas, p common.Vec2, th Theme) {
	const radius float32 = 1.1
	half := GateSize / 2
	sweep := math32.Asin(half / radius)
	center := common.V2(p.X-0.6, p.Y)
	pivot := common.V2(p.X-0.35, p.Y)
	cv.BorderSemicircleCustomCenter(center, radius, -sweep, sweep, th.Segments, th.BorderWidth, th.Border, th.Body, pivot)
}

func drawPins(cv Canvas, g *Gate, th Theme) {
	half := GateSize / 2
	for i := 0; i < g.Kind().Inputs(); i++ {
		pin := g.InputPin(i)
		color := th.Signal(g.Input(i))
		cv.DrawThickLine(pin, common.V2(g.Pos().X-half, pin.Y), th.WireWidth, color)
		drawPin(cv, pin, color, th)
	}
	if g.HasOutputPin() {
		pin := g.OutputPin()
		color := th.Signal(g.Output())
		cv.DrawThickLine(common.V2(g.Pos().X+half, pin.Y), pin, th.WireWidth, color)
		drawPin(cv, pin, color, th)
	}
}

func drawPin(cv Canvas, pos common.Vec2, color common.Color, th Theme) {
	cv.DrawCircle(pos, PinRadius, th.Segments/2, color)
	cv.OutlineCircle(pos, PinRadius, th.Segments/2, th.BorderWidth/2, th.Border)
}

// Batcher is a Canvas that also controls its own batches.
type Batcher interface {
	Canvas
	BeginBatch()
	EndBatch()
	FlushBatch()
}

// Render draws a frame of the circuit view. The grid is flushed in a batch of its own before
// the circuit, since a flush draws its triangles before its lines and thin grid lines would
// otherwise cover every gate.
//
// Parameters:
//   - b: the batch renderer
//   - c: the circuit
//   - th: the theme
//   - lo: one corner of the visible world rectangle
//   - hi: the opposite corner
func Render(b Batcher, c *Circuit, th Theme, lo, hi common.Vec2) {
	b.BeginBatch()
	DrawGrid(b, common.V2(min(lo.X, hi.X), min(lo.Y, hi.Y)), common.V2(max(lo.X, hi.X), max(lo.Y, hi.Y)), 1, th.Grid)
	b.EndBatch()
	b.FlushBatch()

	b.BeginBatch()
	Draw(b, c, th)
	b.EndBatch()
	b.FlushBatch()
}

// maxGridLines bounds the lines drawn per axis when the view is zoomed far out.
const maxGridLines = 256

// DrawGrid draws thin lines every spacing units across the rectangle from lo to hi.
//
// Parameters:
//   - cv: the canvas
//   - lo: the corner with the smallest coordinates
//   - hi: the corner with the largest coordinates
//   - spacing: the distance between lines, nothing is drawn when not positive
//   - color: the line color
//
// Returns:
//   - int: the number of lines drawn
func DrawGrid(cv Canvas, lo, hi common.Vec2, spacing float32, color common.Color) int {
	if spacing <= 0 || hi.X < lo.X || hi.Y < lo.Y {
		return 0
	}
	for (hi.X-lo.X)/spacing > maxGridLines || (hi.Y-lo.Y)/spacing > maxGridLines {
		spacing *= 2
	}

	n := 0
	for x := math32.Ceil(lo.X/spacing) * spacing; x <= hi.X; x += spacing {
		cv.DrawLine(common.V2(x, lo.Y), common.V2(x, hi.Y), color)
		n++
	}
	for y := math32.Ceil(lo.Y/spacing) * spacing; y <= hi.Y; y += spacing {
		cv.DrawLine(common.V2(lo.X, y), common.V2(hi.X, y), color)
		n++
	}
	return n
}
