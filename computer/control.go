package computer

// Control is the microprogrammed control unit. Once per tick, during the
// decode phase, it maps the current opcode and step counter to a control
// word, applies the conditional-increment and synchronous-reset logic,
// and publishes the result on the control bus. It is the only component
// that ever writes the control bus.
type Control struct {
	bus *Bus

	ucode Microcode

	opr  *Register
	step *Register
	flg  *Register

	opcode Opcode // opcode decoded on the most recent tick
}

// NewControl creates the control unit around an already validated
// microcode table.
func NewControl(bus *Bus, ucode Microcode, opr, step, flg *Register) *Control {
	return &Control{
		bus:   bus,
		ucode: ucode,
		opr:   opr,
		step:  step,
		flg:   flg,
	}
}

// Opcode returns the opcode decoded on the most recent tick.
func (ctrl *Control) Opcode() Opcode {
	return ctrl.opcode
}

// decode runs the decode phase. It reports true when the looked-up word
// asserts halt, in which case nothing is published and the tick must not
// proceed.
func (ctrl *Control) decode() (halt bool) {
	flags := ctrl.flg.Get()
	f := flags&FLAG_F != 0
	z := flags&FLAG_Z != 0

	step := ctrl.step.Get()

	var word ControlWord
	if step > FETCH_STEPS-1 {
		ctrl.opcode = Opcode(ctrl.opr.Get() & OP_BITS)
		word = ctrl.ucode.Lookup(ctrl.opcode, step)
	} else {
		word = ctrl.ucode[step]
	}

	// Conditional skips fold into a plain pc increment for this tick.
	if word&INCPCF != 0 && !f {
		word |= INCPC
	}
	if word&INCPCZ != 0 && z {
		word |= INCPC
	}

	// The step counter clear is synchronous: the cleared counter takes
	// effect within this same tick, and the emitted word becomes the
	// first fetch entry so the next instruction's fetch begins now.
	if word&CLRSC != 0 {
		ctrl.step.Reset()
		word = ctrl.ucode[0]
	}

	if word&HLT != 0 {
		halt = true
		return
	}

	ctrl.bus.Control = word

	return
}
