// Package input holds the keyboard and mouse state shared between the window's event
// callbacks and the frame loop.
//
// Callbacks write only the "new" snapshot. Once per frame the frame loop calls Update,
// which diffs the new snapshot against the previous one into per-button transitions.
package input

import (
	"math"
	"sync/atomic"

	"github.com/Carmen-Shannon/gates/common"
)

// Button is the per-frame state of a key or mouse button.
type Button struct {
	// Pressed is true only on the frame the button went down.
	Pressed bool
	// Held is true from the frame the button went down until it is released.
	Held bool
	// Released is true only on the frame the button went up.
	Released bool
}

// State is the double-buffered input state of one window.
// The writer methods are safe to call from the event thread while the frame thread reads.
type State struct {
	keysNew  [common.KeyCount]atomic.Bool
	mouseNew [common.MouseButtonCount]atomic.Bool
	cursorX  atomic.Uint32
	cursorY  atomic.Uint32
	wheelAcc atomic.Uint64
	focused  atomic.Bool

	// Owned by the frame thread.
	keysOld  [common.KeyCount]bool
	mouseOld [common.MouseButtonCount]bool
	keys     [common.KeyCount]Button
	mouse    [common.MouseButtonCount]Button
	wheel    float32
}

// NewState creates an empty input state with the cursor at the window center.
//
// Returns:
//   - *State: the new state
func NewState() *State {
	return &State{}
}

// SetKey records a key transition. Unknown keys (negative codes) map to key 0; codes past the
// table are ignored.
//
// Parameters:
//   - key: the key code
//   - down: true on press, false on release
func (s *State) SetKey(key int, down bool) {
	if key < 0 {
		key = 0
	}
	if key >= common.KeyCount {
		return
	}
	s.keysNew[key].Store(down)
}

// SetMouseButton records a mouse button transition. Out of range buttons are ignored.
//
// Parameters:
//   - button: the button index
//   - down: true on press, false on release
func (s *State) SetMouseButton(button int, down bool) {
	if button < 0 || button >= common.MouseButtonCount {
		return
	}
	s.mouseNew[button].Store(down)
}

// MoveCursor stores the cursor position normalized to [-1, 1] over the window.
// Positions beyond the window are ignored and the last in-bounds position is kept.
//
// Parameters:
//   - x, y: the cursor position in window pixels
//   - width, height: the window size in pixels
func (s *State) MoveCursor(x, y float64, width, height int) {
	if width <= 0 || height <= 0 || x > float64(width) || y > float64(height) {
		return
	}
	nx := float32(x/float64(width)*2 - 1)
	ny := float32(y/float64(height)*2 - 1)
	s.cursorX.Store(math.Float32bits(nx))
	s.cursorY.Store(math.Float32bits(ny))
}

// Scroll accumulates vertical wheel movement until the next Update.
//
// Parameters:
//   - delta: the wheel offset, positive away from the user
func (s *State) Scroll(delta float64) {
	for {
		old := s.wheelAcc.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if s.wheelAcc.CompareAndSwap(old, next) {
			return
		}
	}
}

// SetFocused records whether the cursor is inside the window.
func (s *State) SetFocused(focused bool) {
	s.focused.Store(focused)
}

// Update diffs the new snapshot against the previous one and takes the accumulated wheel
// movement. Call it once per frame before reading any state.
func (s *State) Update() {
	for i := range s.keysNew {
		s.keysOld[i] = diff(&s.keys[i], s.keysNew[i].Load(), s.keysOld[i])
	}
	for i := range s.mouseNew {
		s.mouseOld[i] = diff(&s.mouse[i], s.mouseNew[i].Load(), s.mouseOld[i])
	}
	s.wheel = float32(math.Float64frombits(s.wheelAcc.Swap(0)))
}

// diff updates b for one button and returns the value to keep as the old snapshot.
func diff(b *Button, now, old bool) bool {
	b.Pressed = false
	b.Released = false
	if now != old {
		if now {
			b.Pressed = !b.Held
			b.Held = true
		} else {
			b.Released = true
			b.Held = false
		}
	}
	return now
}

// Key returns the state of a key for the current frame.
//
// Parameters:
//   - key: the key code
//
// Returns:
//   - Button: the key state, zero for codes outside the table
func (s *State) Key(key int) Button {
	if key < 0 || key >= common.KeyCount {
		return Button{}
	}
	return s.keys[key]
}

// Mouse returns the state of a mouse button for the current frame.
//
// Parameters:
//   - button: the button index
//
// Returns:
//   - Button: the button state, zero for indices outside the table
func (s *State) Mouse(button int) Button {
	if button < 0 || button >= common.MouseButtonCount {
		return Button{}
	}
	return s.mouse[button]
}

// MousePos returns the cursor position normalized to [-1, 1], with +Y pointing down.
func (s *State) MousePos() common.Vec2 {
	return common.V2(
		math.Float32frombits(s.cursorX.Load()),
		math.Float32frombits(s.cursorY.Load()),
	)
}

// Wheel returns the wheel movement accumulated before the last Update.
func (s *State) Wheel() float32 {
	return s.wheel
}

// Focused reports whether the cursor is inside the window.
func (s *State) Focused() bool {
	return s.focused.Load()
}
