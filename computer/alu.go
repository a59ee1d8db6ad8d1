package computer

// Adder is the arithmetic and flag unit. During the drive phase it
// computes the 12-bit sum of the accumulator and the general-purpose
// register into an internal buffer; the sum only becomes visible when a
// later ADD micro-order commits it during a compute phase. During every
// compute phase it recomputes the zero flag from the general-purpose
// register, then performs whichever arithmetic micro-order the control
// bus asserts.
type Adder struct {
	bus *Bus

	acc *Register
	gpr *Register
	flg *Register

	sum uint16 // buffered acc+gpr, captured during the drive phase
}

// NewAdder creates the arithmetic/flag unit over the accumulator,
// general-purpose register, and flag register.
func NewAdder(bus *Bus, acc, gpr, flg *Register) *Adder {
	return &Adder{
		bus: bus,
		acc: acc,
		gpr: gpr,
		flg: flg,
	}
}

// drive buffers the sum of acc and gpr. The adder never asserts the data
// bus; the buffered value is committed by ADD in the compute phase.
func (alu *Adder) drive() {
	alu.sum = (alu.acc.Get() + alu.gpr.Get()) & ACC_BITS
}

// tick recomputes the zero flag and performs the asserted micro-order.
// The gpr has already been clocked this phase, so a same-tick INCGPR is
// visible to the zero flag (the ISZ instruction depends on this).
func (alu *Adder) tick() {
	carry := alu.flg.Get() & FLAG_F

	if alu.gpr.Get() == 0 {
		alu.flg.Set(alu.flg.Get() | FLAG_Z)
	} else {
		alu.flg.Set(alu.flg.Get() & FLAG_F)
	}

	// The microcode asserts at most one of these per tick.
	ctrl := alu.bus.Control

	if ctrl&ADD != 0 {
		alu.acc.Set(alu.sum)
	}

	if ctrl&A_GPR != 0 {
		alu.gpr.Set(alu.acc.Get())
	}

	if ctrl&COMA != 0 {
		alu.acc.Set(^alu.acc.Get() & ACC_BITS)
	}

	if ctrl&COMF != 0 {
		alu.flg.Set(alu.flg.Get() ^ FLAG_F)
	}

	if ctrl&CLRA != 0 {
		alu.acc.Reset()
	}

	if ctrl&CLRF != 0 {
		alu.flg.Set(alu.flg.Get() & FLAG_Z)
	}

	if ctrl&ROL != 0 {
		alu.rotateLeft(carry)
	}

	if ctrl&ROR != 0 {
		alu.rotateRight(carry)
	}
}

// rotateLeft rotates the accumulator left through the carry flip-flop:
// the old bit 11 becomes the new carry, the old carry enters bit 0.
func (alu *Adder) rotateLeft(carry uint16) {
	acc := alu.acc.Get()

	if acc&0x0800 != 0 {
		alu.flg.Set(alu.flg.Get() | FLAG_F)
	} else {
		alu.flg.Set(alu.flg.Get() & FLAG_Z)
	}

	alu.acc.Set(((acc << 1) & ACC_BITS) | carry)
}

// rotateRight rotates the accumulator right through the carry flip-flop:
// the old bit 0 becomes the new carry, the old carry enters bit 11.
func (alu *Adder) rotateRight(carry uint16) {
	acc := alu.acc.Get()

	if acc&0x0001 != 0 {
		alu.flg.Set(alu.flg.Get() | FLAG_F)
	} else {
		alu.flg.Set(alu.flg.Get() & FLAG_Z)
	}

	alu.acc.Set((acc >> 1) | (carry << 11))
}
