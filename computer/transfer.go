package computer

// GprBus performs the register-to-register transfers that cannot be
// expressed as a single bus transfer. PC_GPR moves two values at once (an
// exchange), and GPR_OP extracts a sub-field; both bypass the data bus
// entirely and act during the compute phase, after drive and before latch.
//
// The control lines it recognizes are excluded from the generic registers'
// latch and drive masks, so a direct move is never overwritten by a stale
// bus value in the same tick's latch phase.
type GprBus struct {
	bus *Bus

	pc  *Register
	opr *Register
	gpr *Register
}

// NewGprBus creates the direct transfer unit over the program counter,
// operation register, and general-purpose register.
func NewGprBus(bus *Bus, pc, opr, gpr *Register) *GprBus {
	return &GprBus{
		bus: bus,
		pc:  pc,
		opr: opr,
		gpr: gpr,
	}
}

// tick performs any direct move asserted on the control bus.
func (gb *GprBus) tick() {
	if gb.bus.Control&PC_GPR != 0 {
		// Exchange the address bytes of pc and gpr. The gpr keeps only
		// the 8-bit return address; its opcode bits are cleared.
		a := gb.pc.Get() & ADDR_BITS
		b := gb.gpr.Get() & ADDR_BITS
		gb.pc.Set(b)
		gb.gpr.Set(a)
	}

	if gb.bus.Control&GPR_OP != 0 {
		gb.opr.Set(gb.gpr.Get() >> 8)
	}
}
