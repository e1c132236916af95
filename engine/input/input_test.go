package input

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/stretchr/testify/assert"
)

func TestKeyTransitions(t *testing.T) {
	s := NewState()

	s.SetKey(common.KeyA, true)
	s.Update()
	assert.Equal(t, Button{Pressed: true, Held: true}, s.Key(common.KeyA))

	s.Update()
	assert.Equal(t, Button{Held: true}, s.Key(common.KeyA))

	s.SetKey(common.KeyA, false)
	s.Update()
	assert.Equal(t, Button{Released: true}, s.Key(common.KeyA))

	s.Update()
	assert.Equal(t, Button{}, s.Key(common.KeyA))
}

func TestPressAndReleaseBetweenFramesIsLost(t *testing.T) {
	s := NewState()
	s.SetMouseButton(common.MouseLeft, true)
	s.SetMouseButton(common.MouseLeft, false)
	s.Update()
	assert.Equal(t, Button{}, s.Mouse(common.MouseLeft))
}

func TestUnknownKeyMapsToZero(t *testing.T) {
	s := NewState()
	s.SetKey(-1, true)
	s.Update()
	assert.True(t, s.Key(0).Pressed)
}

func TestOutOfRangeIgnored(t *testing.T) {
	s := NewState()
	s.SetKey(common.KeyCount, true)
	s.SetMouseButton(common.MouseButtonCount, true)
	s.SetMouseButton(-1, true)
	s.Update()
	assert.Equal(t, Button{}, s.Key(common.KeyCount))
	assert.Equal(t, Button{}, s.Mouse(common.MouseButtonCount))
	assert.Equal(t, Button{}, s.Mouse(-1))
}

func TestMoveCursorNormalizes(t *testing.T) {
	s := NewState()
	tests := []struct {
		name string
		x, y float64
		want common.Vec2
	}{
		{"top left", 0, 0, common.V2(-1, -1)},
		{"center", 400, 300, common.V2(0, 0)},
		{"bottom right", 800, 600, common.V2(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.MoveCursor(tt.x, tt.y, 800, 600)
			got := s.MousePos()
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
		})
	}
}

func TestMoveCursorOutsideKeepsLast(t *testing.T) {
	s := NewState()
	s.MoveCursor(200, 150, 800, 600)
	s.MoveCursor(900, 150, 800, 600)
	got := s.MousePos()
	assert.InDelta(t, -0.5, got.X, 1e-6)
	assert.InDelta(t, -0.5, got.Y, 1e-6)
}

func TestWheelAccumulatesPerFrame(t *testing.T) {
	s := NewState()
	s.Scroll(1)
	s.Scroll(0.5)
	s.Update()
	assert.InDelta(t, 1.5, s.Wheel(), 1e-6)

	s.Update()
	assert.Zero(t, s.Wheel())
}

func TestConcurrentWriters(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Scroll(1)
				s.SetKey(common.KeySpace, j%2 == 0)
			}
		}()
	}
	wg.Wait()
	s.Update()
	assert.InDelta(t, 800, s.Wheel(), 1e-3)
}

func TestFocus(t *testing.T) {
	s := NewState()
	assert.False(t, s.Focused())
	s.SetFocused(true)
	assert.True(t, s.Focused())
}
