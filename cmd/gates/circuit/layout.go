package circuit

import "github.com/Carmen-Shannon/gates/common"

const (
	// GateSize is the edge length of a gate body in world units.
	GateSize float32 = 1
	// PinLength is the distance from the body edge to a pin center.
	PinLength float32 = 0.2
	// PinRadius is the radius of a drawn pin.
	PinRadius float32 = 0.08
	// PinSpacing is the vertical distance between the two inputs of a two-input gate.
	PinSpacing float32 = 0.5
)

// Min returns the corner of the gate body with the smallest coordinates.
func (g *Gate) Min() common.Vec2 {
	return g.pos.Sub(common.V2(GateSize/2, GateSize/2))
}

// Contains reports whether p lies inside the gate body.
func (g *Gate) Contains(p common.Vec2) bool {
	lo := g.Min()
	return p.X >= lo.X && p.X <= lo.X+GateSize && p.Y >= lo.Y && p.Y <= lo.Y+GateSize
}

// InputPin returns the center of input pin i.
func (g *Gate) InputPin(i int) common.Vec2 {
	x := g.pos.X - GateSize/2 - PinLength
	if len(g.sources) < 2 {
		return common.V2(x, g.pos.Y)
	}
	return common.V2(x, g.pos.Y-PinSpacing/2+float32(i)*PinSpacing)
}

// OutputPin returns the center of the output pin.
func (g *Gate) OutputPin() common.Vec2 {
	return common.V2(g.pos.X+GateSize/2+PinLength, g.pos.Y)
}

// HasOutputPin reports whether other gates can be wired from this gate.
func (g *Gate) HasOutputPin() bool {
	return g.kind != KindOutput
}

// Route returns the corner points of an orthogonal path from a source pin to a destination pin.
// The path turns at the horizontal midpoint and has three segments, or one when both pins share a row.
func Route(from, to common.Vec2) []common.Vec2 {
	if from.Y == to.Y {
		return []common.Vec2{from, to}
	}
	midX := (from.X + to.X) / 2
	return []common.Vec2{from, common.V2(midX, from.Y), common.V2(midX, to.Y), to}
}
