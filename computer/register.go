package computer

// Width masks of the machine's registers and flags.
const (
	ACC_BITS  = uint16(0x0fff) // accumulator and gpr are 12 bits wide
	ADDR_BITS = uint16(0x00ff) // pc and mar hold 8-bit addresses
	OP_BITS   = uint16(0x000f) // operation register holds a 4-bit opcode
	STEP_BITS = uint16(0x000f) // step counter is 4 bits wide
	FLAG_BITS = uint16(0x0003) // flag register holds f and z
)

// Flag register bit assignments.
const (
	FLAG_F = uint16(1 << 0) // carry flip-flop, rotated through by ROL/ROR
	FLAG_Z = uint16(1 << 1) // zero indicator, recomputed from gpr every tick
)

// Register is a fixed-width storage cell on the shared bus. Its latch,
// drive, and increment behaviors are each gated by a configurable
// control-line mask, so a single type covers all seven register instances
// of the machine.
type Register struct {
	bus *Bus

	store uint16
	bits  uint16

	inMask   ControlWord // latch from bus when any of these lines assert
	outMask  ControlWord // drive to bus when any of these lines assert
	incrMask ControlWord // increment when any of these lines assert
	freeRun  bool        // increment unconditionally every tick
}

// NewRegister creates a register of the given width with the given
// latch, drive, and increment trigger conditions.
func NewRegister(bus *Bus, bits uint16, in, out, incr ControlWord) *Register {
	return &Register{
		bus:      bus,
		bits:     bits,
		inMask:   in,
		outMask:  out,
		incrMask: incr,
	}
}

// NewCounter creates a free-running register that increments every tick
// regardless of the control bus. The step counter is the only instance.
func NewCounter(bus *Bus, bits uint16) *Register {
	return &Register{
		bus:     bus,
		bits:    bits,
		freeRun: true,
	}
}

// Get returns the current stored value.
func (reg *Register) Get() uint16 {
	return reg.store
}

// Set stores a value, masked to the register's width.
func (reg *Register) Set(value uint16) {
	reg.store = value & reg.bits
}

// Reset zeroes the stored value.
func (reg *Register) Reset() {
	reg.store = 0
}

// Increment advances the stored value by one, wrapping at the register's
// width.
func (reg *Register) Increment() {
	reg.store = (reg.store + 1) & reg.bits
}

// drive asserts the stored value onto the data bus when the drive
// condition holds.
func (reg *Register) drive() {
	if reg.bus.Control&reg.outMask != 0 {
		reg.bus.Data = reg.store
	}
}

// tick increments the stored value when the increment condition holds.
func (reg *Register) tick() {
	if reg.freeRun || reg.bus.Control&reg.incrMask != 0 {
		reg.Increment()
	}
}

// latch captures the data bus when the latch condition holds.
func (reg *Register) latch() {
	if reg.bus.Control&reg.inMask != 0 {
		reg.store = reg.bus.Data & reg.bits
	}
}
