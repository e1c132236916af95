package circuit

import "github.com/Carmen-Shannon/gates/common"

// FullAdder is a one-bit full adder with an inverted carry lamp.
type FullAdder struct {
	*Circuit

	A, B, CarryIn           ID
	Sum, CarryOut, NotCarry ID
}

// NewFullAdder lays out a full adder built from XOR, AND, OR and NOT gates.
func NewFullAdder() *FullAdder {
	c := New()
	fa := &FullAdder{Circuit: c}

	fa.A = c.Add(KindInput, common.V2(0, 0), "A")
	fa.B = c.Add(KindInput, common.V2(0, 2), "B")
	fa.CarryIn = c.Add(KindInput, common.V2(0, 4), "Cin")

	xor1 := c.Add(KindXor, common.V2(3, 1), "A^B")
	and1 := c.Add(KindAnd, common.V2(6, -1), "A&B")
	xor2 := c.Add(KindXor, common.V2(6, 1.5), "sum")
	and2 := c.Add(KindAnd, common.V2(6, 3.5), "carry")
	or1 := c.Add(KindOr, common.V2(9, 1.5), "cout")
	not1 := c.Add(KindNot, common.V2(12, 4), "!cout")

	fa.Sum = c.Add(KindOutput, common.V2(12, 0), "S")
	fa.CarryOut = c.Add(KindOutput, common.V2(12, 2), "Cout")
	fa.NotCarry = c.Add(KindOutput, common.V2(15, 4), "!Cout")

	wires := []Wire{
		{fa.A, xor1, 0}, {fa.B, xor1, 1},
		{fa.A, and1, 0}, {fa.B, and1, 1},
		{xor1, xor2, 0}, {fa.CarryIn, xor2, 1},
		{xor1, and2, 0}, {fa.CarryIn, and2, 1},
		{and1, or1, 0}, {and2, or1, 1},
		{xor2, fa.Sum, 0},
		{or1, fa.CarryOut, 0},
		{or1, not1, 0},
		{not1, fa.NotCarry, 0},
	}
	for _, w := range wires {
		if err := c.Connect(w.From, w.To, w.Pin); err != nil {
			panic(err)
		}
	}
	return fa
}

// Inputs returns the input switches in A, B, carry-in order.
func (fa *FullAdder) Inputs() []ID {
	return []ID{fa.A, fa.B, fa.CarryIn}
}
