package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrthoMapsBoundsToClipSpace(t *testing.T) {
	var m [16]float32
	Ortho(m[:], -4, 4, -2, 2, -1, 1)

	x, y, z := TransformPoint(m[:], -4, -2, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
	assert.InDelta(t, 0.5, z, 1e-6)

	x, y, _ = TransformPoint(m[:], 4, 2, 0)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
}

func TestOrthoFlippedVerticalBounds(t *testing.T) {
	var m [16]float32
	Ortho(m[:], -1, 1, 1, -1, -1, 1)

	_, y, _ := TransformPoint(m[:], 0, 1, 0)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestTranslateAndInvert(t *testing.T) {
	var tr, inv, out [16]float32
	Translate(tr[:], 3, -2, 1)

	x, y, z := TransformPoint(tr[:], 1, 1, 1)
	assert.Equal(t, []float32{4, -1, 2}, []float32{x, y, z})

	require.True(t, Invert4(inv[:], tr[:]))
	Mul4(out[:], tr[:], inv[:])
	id := IdentityMatrix()
	for i := range out {
		assert.InDelta(t, id[i], out[i], 1e-6, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	out[0] = 7
	assert.False(t, Invert4(out[:], zero[:]))
	assert.Equal(t, float32(7), out[0])
}

func TestRotateZQuarterTurn(t *testing.T) {
	var m [16]float32
	RotateZ(m[:], Radians(90))

	x, y, _ := TransformPoint(m[:], 1, 0, 0)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]uint32{1, 2, 3}), 12)
}

func TestVec2(t *testing.T) {
	a := V2(3, 4)
	assert.Equal(t, float32(5), a.Len())
	assert.Equal(t, V2(4, 6), a.Add(V2(1, 2)))
	assert.Equal(t, V2(2, 2), a.Sub(V2(1, 2)))
	assert.Equal(t, V2(6, 8), a.Scale(2))
	assert.Equal(t, float32(5), V2(0, 0).Dist(a))
	assert.InDelta(t, math32.Sqrt(2), V2(1, 1).Len(), 1e-6)
}

func TestColor(t *testing.T) {
	assert.Equal(t, [4]float32{1, 1, 1, 1}, White.Array())
	assert.Equal(t, [4]byte{255, 0, 128, 255}, RGBA(1.5, -1, 0.5, 1).Bytes())
	assert.Equal(t, White, RGBA8(255, 255, 255, 255))
	assert.Equal(t, RGBA(0.5, 0.25, 0, 0.5), RGBA(1, 0.5, 0, 0.5).Premultiplied())
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", Coalesce[string]())
	assert.Equal(t, 2, Clamp(5, 0, 2))
	assert.Equal(t, float32(0.5), Clamp(float32(0.1), 0.5, 1))
	assert.Equal(t, 1, Clamp(1, 0, 2))
}
