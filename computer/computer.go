// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package computer

import (
	"fmt"
	"iter"
)

// Computer is the tick scheduler. It owns the bus, the seven registers,
// and the fixed component list, and advances everything in lock-step
// through the four-phase clock. All mutation of shared state happens
// inside Tick; the registry of components never changes after
// construction.
type Computer struct {
	Bus *Bus

	Pc   *Register // program counter (8 bits)
	Mar  *Register // memory address register (8 bits)
	Acc  *Register // accumulator (12 bits)
	Gpr  *Register // general-purpose register (12 bits)
	Flg  *Register // flag register (f and z)
	Opr  *Register // operation register (4 bits)
	Step *Register // step counter (4 bits, free-running)

	Xfer *GprBus  // direct register-to-register transfer unit
	Alu  *Adder   // arithmetic/flag unit
	Ram  *Memory  // 128-word memory
	Ctrl *Control // microprogrammed control unit

	Ticks int // ticks executed since the last reset

	// Component order matters only where two components touch the same
	// register in one phase: the gpr must be clocked before the alu so
	// the zero flag sees a same-tick increment.
	components []any

	halted bool
}

// NewComputer builds a machine around a program image and a microcode
// table. Both are validated here; the machine must not run with an
// invalid table or an oversized image.
func NewComputer(image []uint16, ucode Microcode) (c *Computer, err error) {
	err = ucode.Validate()
	if err != nil {
		return
	}

	bus := &Bus{}

	// Latch, drive, and increment trigger assignments. The direct-move
	// conditions (PC_GPR, A_GPR, GPR_OP) belong to the transfer and
	// arithmetic units alone and are deliberately absent from the
	// generic masks, keeping the compute-phase moves disjoint from the
	// latch phase.
	acc := NewRegister(bus, ACC_BITS, 0, 0, INCA)
	gpr := NewRegister(bus, ACC_BITS, M_GPR, GPR_M|GPR_MAR|GPR_PC, INCGPR)
	pc := NewRegister(bus, ADDR_BITS, GPR_PC, PC_MAR, INCPC)
	flg := NewRegister(bus, FLAG_BITS, 0, 0, 0)
	mar := NewRegister(bus, ADDR_BITS, PC_MAR|GPR_MAR, 0, 0)
	opr := NewRegister(bus, OP_BITS, 0, 0, 0)
	step := NewCounter(bus, STEP_BITS)

	ram, err := NewMemory(bus, mar, image)
	if err != nil {
		return
	}

	c = &Computer{
		Bus:  bus,
		Pc:   pc,
		Mar:  mar,
		Acc:  acc,
		Gpr:  gpr,
		Flg:  flg,
		Opr:  opr,
		Step: step,
		Xfer: NewGprBus(bus, pc, opr, gpr),
		Alu:  NewAdder(bus, acc, gpr, flg),
		Ram:  ram,
		Ctrl: NewControl(bus, ucode, opr, step, flg),
	}

	c.components = []any{
		c.Step, c.Pc, c.Acc, c.Gpr, c.Flg, c.Opr, c.Mar,
		c.Xfer, c.Alu, c.Ram,
	}

	c.Reset()

	return
}

// Reset zeroes every register and returns the machine to the start of a
// fetch cycle. Memory contents are left as loaded.
func (c *Computer) Reset() {
	for _, reg := range []*Register{c.Pc, c.Mar, c.Acc, c.Gpr, c.Flg, c.Opr, c.Step} {
		reg.Reset()
	}

	c.Bus.Data = 0
	c.Bus.Control = 0
	c.halted = false
	c.Ticks = 0
}

// Halted reports whether the machine has executed the halt opcode.
func (c *Computer) Halted() bool {
	return c.halted
}

// Tick advances the machine by one full clock period: decode, drive,
// compute, latch, in strict order across all components. Once the halt
// micro-order is decoded the machine freezes; ticking a halted machine is
// a caller error and returns ErrHalted.
func (c *Computer) Tick() (err error) {
	if c.halted {
		err = ErrHalted
		return
	}

	if c.Ctrl.decode() {
		c.halted = true
		return
	}

	for _, comp := range c.components {
		if d, ok := comp.(driver); ok {
			d.drive()
		}
	}

	for _, comp := range c.components {
		if t, ok := comp.(ticker); ok {
			t.tick()
		}
	}

	for _, comp := range c.components {
		if l, ok := comp.(latcher); ok {
			l.latch()
		}
	}

	c.Ticks++

	return
}

// Registers iterates the registers as (name, value) pairs, in the
// machine's documented order.
func (c *Computer) Registers() iter.Seq2[string, uint16] {
	return func(yield func(name string, value uint16) bool) {
		regs := []struct {
			name string
			reg  *Register
		}{
			{"pc", c.Pc},
			{"mar", c.Mar},
			{"acc", c.Acc},
			{"gpr", c.Gpr},
			{"flg", c.Flg},
			{"opr", c.Opr},
			{"sc", c.Step},
		}
		for _, entry := range regs {
			if !yield(entry.name, entry.reg.Get()) {
				return
			}
		}
	}
}

// String returns the current machine state as a string.
func (c *Computer) String() (text string) {
	for name, value := range c.Registers() {
		text += fmt.Sprintf("% 4s: 0x%04x\n", name, value)
	}
	text += fmt.Sprintf(" bus: 0x%04x\nctrl: %v\n", c.Bus.Data, c.Bus.Control)
	return
}
