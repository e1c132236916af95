// Package circuit models a logic circuit of gates connected by wires, advanced one propagation step at a time.
package circuit

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Carmen-Shannon/gates/common"
)

var (
	// ErrUnknownGate is returned when an ID does not name a gate of the circuit.
	ErrUnknownGate = errors.New("circuit: unknown gate")
	// ErrPinOutOfRange is returned when a wire targets an input pin the gate does not have.
	ErrPinOutOfRange = errors.New("circuit: input pin out of range")
	// ErrPinConnected is returned when a wire targets an input pin that already has a source.
	ErrPinConnected = errors.New("circuit: input pin already connected")
	// ErrNoOutput is returned when a wire starts at a gate without an output pin.
	ErrNoOutput = errors.New("circuit: gate has no output pin")
	// ErrNotSwitch is returned when toggling a gate that is not an input switch.
	ErrNotSwitch = errors.New("circuit: gate is not an input")
)

// ID identifies a gate. IDs are random 64-bit values.
type ID uint64

// NewID returns a random gate ID.
func NewID() ID {
	return ID(rand.Uint64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Kind is the logic function of a gate.
type Kind int

const (
	// KindInput is a switch with no inputs whose output is set by the user.
	KindInput Kind = iota
	// KindOutput is a lamp showing its single input.
	KindOutput
	KindAnd
	KindOr
	KindNot
	KindXor
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "INPUT"
	case KindOutput:
		return "OUTPUT"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNot:
		return "NOT"
	case KindXor:
		return "XOR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Inputs returns the number of input pins of the kind.
func (k Kind) Inputs() int {
	switch k {
	case KindInput:
		return 0
	case KindOutput, KindNot:
		return 1
	default:
		return 2
	}
}

func (k Kind) eval(in []bool, current bool) bool {
	switch k {
	case KindInput:
		return current
	case KindOutput:
		return in[0]
	case KindAnd:
		return in[0] && in[1]
	case KindOr:
		return in[0] || in[1]
	case KindNot:
		return !in[0]
	case KindXor:
		return in[0] != in[1]
	default:
		return false
	}
}

// Gate is a node of the circuit. Its output changes only when the circuit steps.
type Gate struct {
	id     ID
	kind   Kind
	pos    common.Vec2
	label  string
	output bool

	sources []*Gate
	scratch []bool
}

// ID returns the gate's identifier.
func (g *Gate) ID() ID { return g.id }

// Kind returns the gate's logic function.
func (g *Gate) Kind() Kind { return g.kind }

// Pos returns the center of the gate body in world units.
func (g *Gate) Pos() common.Vec2 { return g.pos }

// Label returns the display name given when the gate was added.
func (g *Gate) Label() string { return g.label }

// Output returns the gate's current output signal.
func (g *Gate) Output() bool { return g.output }

// Input returns the signal on input pin i. An unconnected pin reads false.
func (g *Gate) Input(i int) bool {
	if i < 0 || i >= len(g.sources) || g.sources[i] == nil {
		return false
	}
	return g.sources[i].output
}

// Wire connects the output of one gate to an input pin of another.
type Wire struct {
	From ID
	To   ID
	Pin  int
}

// Circuit holds gates in insertion order and the wires between them.
// A Circuit is not safe for concurrent use.
type Circuit struct {
	gates []*Gate
	byID  map[ID]*Gate
	wires []Wire
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{byID: make(map[ID]*Gate)}
}

// Add places a new gate centered at pos.
//
// Parameters:
//   - kind: the logic function
//   - pos: the center of the gate body in world units
//   - label: a display name, may be empty
//
// Returns:
//   - ID: the new gate's identifier
func (c *Circuit) Add(kind Kind, pos common.Vec2, label string) ID {
	id := NewID()
	for _, taken := c.byID[id]; taken; _, taken = c.byID[id] {
		id = NewID()
	}
	n := kind.Inputs()
	g := &Gate{
		id:      id,
		kind:    kind,
		pos:     pos,
		label:   label,
		sources: make([]*Gate, n),
		scratch: make([]bool, n),
	}
	c.gates = append(c.gates, g)
	c.byID[id] = g
	return id
}

// Connect wires the output of from to input pin of to.
//
// Parameters:
//   - from: the source gate
//   - to: the destination gate
//   - pin: the destination input pin
//
// Returns:
//   - error: ErrUnknownGate, ErrNoOutput, ErrPinOutOfRange or ErrPinConnected
func (c *Circuit) Connect(from, to ID, pin int) error {
	src, ok := c.byID[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGate, from)
	}
	if !src.HasOutputPin() {
		return fmt.Errorf("%w: %s", ErrNoOutput, src.kind)
	}
	dst, ok := c.byID[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGate, to)
	}
	if pin < 0 || pin >= len(dst.sources) {
		return fmt.Errorf("%w: %s has %d inputs, got pin %d", ErrPinOutOfRange, dst.kind, len(dst.sources), pin)
	}
	if dst.sources[pin] != nil {
		return fmt.Errorf("%w: %s pin %d", ErrPinConnected, dst.kind, pin)
	}
	dst.sources[pin] = src
	c.wires = append(c.wires, Wire{From: from, To: to, Pin: pin})
	return nil
}

// Gate returns the gate with the given ID.
func (c *Circuit) Gate(id ID) (*Gate, bool) {
	g, ok := c.byID[id]
	return g, ok
}

// Gates returns the gates in insertion order. The slice must not be modified.
func (c *Circuit) Gates() []*Gate {
	return c.gates
}

// Wires returns the wires in connection order. The slice must not be modified.
func (c *Circuit) Wires() []Wire {
	return c.wires
}

// Signal returns the output of the gate with the given ID, false when it does not exist.
func (c *Circuit) Signal(id ID) bool {
	if g, ok := c.byID[id]; ok {
		return g.output
	}
	return false
}

// Set drives an input switch.
//
// Parameters:
//   - id: the input gate
//   - on: the new output
//
// Returns:
//   - error: ErrUnknownGate or ErrNotSwitch
func (c *Circuit) Set(id ID, on bool) error {
	g, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGate, id)
	}
	if g.kind != KindInput {
		return fmt.Errorf("%w: %s is %s", ErrNotSwitch, id, g.kind)
	}
	g.output = on
	return nil
}

// Toggle flips an input switch.
func (c *Circuit) Toggle(id ID) error {
	return c.Set(id, !c.Signal(id))
}

// Reset turns every output off.
func (c *Circuit) Reset() {
	for _, g := range c.gates {
		g.output = false
	}
}

// Step advances every gate by one propagation delay. All gates read the outputs of the previous step,
// so feedback loops oscillate or latch instead of recursing.
//
// Returns:
//   - bool: true if any output changed
func (c *Circuit) Step() bool {
	next := make([]bool, len(c.gates))
	for i, g := range c.gates {
		for pin := range g.sources {
			g.scratch[pin] = g.Input(pin)
		}
		next[i] = g.kind.eval(g.scratch, g.output)
	}

	changed := false
	for i, g := range c.gates {
		if g.output != next[i] {
			g.output = next[i]
			changed = true
		}
	}
	return changed
}

// Settle steps until no output changes.
//
// Parameters:
//   - maxSteps: the step limit
//
// Returns:
//   - bool: false if the circuit was still changing after maxSteps
func (c *Circuit) Settle(maxSteps int) bool {
	for range maxSteps {
		if !c.Step() {
			return true
		}
	}
	return false
}

// GateAt returns the topmost gate whose body contains p.
func (c *Circuit) GateAt(p common.Vec2) (ID, bool) {
	for i := len(c.gates) - 1; i >= 0; i-- {
		if g := c.gates[i]; g.Contains(p) {
			return g.id, true
		}
	}
	return 0, false
}
