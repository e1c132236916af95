// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/chewxy/math32"

// Vec2 is a 2D point or direction in world or screen space.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	return v.Sub(o).Len()
}

// Color is a straight (non-premultiplied) RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	// White is opaque white, the neutral multiplier for untextured geometry.
	White = Color{1, 1, 1, 1}
	// Black is opaque black.
	Black = Color{0, 0, 0, 1}
	// Transparent has every component set to zero.
	Transparent = Color{}
)

// RGBA constructs a Color from float components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA8 constructs a Color from 8-bit components.
//
// Parameters:
//   - r, g, b, a: the color channels in the range [0, 255]
//
// Returns:
//   - Color: the normalized color
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Array returns the color as a [4]float32 in RGBA order, the layout used by vertex data.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Premultiplied returns the color with RGB scaled by alpha.
func (c Color) Premultiplied() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Bytes returns the color quantized to 8-bit RGBA, clamping each channel to [0, 1].
func (c Color) Bytes() [4]byte {
	q := func(v float32) byte {
		return byte(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
	}
	return [4]byte{q(c.R), q(c.G), q(c.B), q(c.A)}
}

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
}
