// Package texture_slot tracks which textures are bound to the sampler slots of the batch currently being built.
package texture_slot

import "github.com/Carmen-Shannon/gates/engine/texture"

// Table maps textures to sampler slot indices for one batch.
// Slot 0 always holds the reserved white texture; slots are handed out in insertion order and a
// texture resolves to the same slot until the table is reset.
type Table struct {
	slots []texture.Texture
	max   int
}

// NewTable creates a slot table with room for max textures, including the white slot.
//
// Parameters:
//   - max: the number of sampler slots, must be at least 1
//   - white: the texture reserved for slot 0
//
// Returns:
//   - *Table: the slot table
func NewTable(max int, white texture.Texture) *Table {
	if max < 1 {
		panic("texture slot table needs at least one slot")
	}
	t := &Table{
		slots: make([]texture.Texture, 0, max),
		max:   max,
	}
	t.Reset(white)
	return t
}

// Reset clears every slot and places white back in slot 0.
func (t *Table) Reset(white texture.Texture) {
	clear(t.slots)
	t.slots = append(t.slots[:0], white)
}

// Find returns the slot holding a texture with the same identity as tex.
//
// Returns:
//   - int: the slot index
//   - bool: false when the texture is not bound
func (t *Table) Find(tex texture.Texture) (int, bool) {
	id := tex.ID()
	for i, s := range t.slots {
		if s.ID() == id {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether tex is bound to a slot.
func (t *Table) Contains(tex texture.Texture) bool {
	_, ok := t.Find(tex)
	return ok
}

// Resolve returns the slot for tex, assigning the next free slot when it is not yet bound.
//
// Returns:
//   - int: the slot index
//   - bool: false when the texture is not bound and the table is full
func (t *Table) Resolve(tex texture.Texture) (int, bool) {
	if i, ok := t.Find(tex); ok {
		return i, true
	}
	if t.Full() {
		return 0, false
	}
	t.slots = append(t.slots, tex)
	return len(t.slots) - 1, true
}

// Full reports whether every slot is taken.
func (t *Table) Full() bool {
	return len(t.slots) >= t.max
}

// Len returns the number of occupied slots, including the white slot.
func (t *Table) Len() int {
	return len(t.slots)
}

// Max returns the slot capacity.
func (t *Table) Max() int {
	return t.max
}

// Slots returns the bound textures in slot order. The slice is owned by the table.
func (t *Table) Slots() []texture.Texture {
	return t.slots
}
