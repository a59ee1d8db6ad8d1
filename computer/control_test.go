package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestControl() (bus *Bus, opr, step, flg *Register, ctrl *Control) {
	bus = &Bus{}
	opr = NewRegister(bus, OP_BITS, 0, 0, 0)
	step = NewCounter(bus, STEP_BITS)
	flg = NewRegister(bus, FLAG_BITS, 0, 0, 0)
	ctrl = NewControl(bus, DefaultMicrocode(), opr, step, flg)
	return
}

func TestControlFetch(t *testing.T) {
	assert := assert.New(t)

	bus, _, step, _, ctrl := newTestControl()

	// The first three steps publish the fetch cycle regardless of the
	// operation register.
	for n, want := range []ControlWord{PC_MAR, M_GPR | INCPC, GPR_OP} {
		step.Set(uint16(n))
		assert.False(ctrl.decode())
		assert.Equal(want, bus.Control, "step %d", n)
	}
}

func TestControlExecute(t *testing.T) {
	assert := assert.New(t)

	bus, opr, step, _, ctrl := newTestControl()

	opr.Set(uint16(OP_ADD))
	for n, want := range map[uint16]ControlWord{
		3: GPR_MAR,
		4: M_GPR,
	} {
		step.Set(n)
		assert.False(ctrl.decode())
		assert.Equal(want, bus.Control, "step %d", n)
	}

	assert.Equal(OP_ADD, ctrl.Opcode())
}

func TestControlHalt(t *testing.T) {
	assert := assert.New(t)

	bus, opr, step, _, ctrl := newTestControl()

	opr.Set(uint16(OP_HLT))
	step.Set(3)

	bus.Control = GPR_OP // left over from the previous tick
	assert.True(ctrl.decode())
	assert.Equal(GPR_OP, bus.Control, "halt publishes nothing")
}

func TestControlSkipOnFlag(t *testing.T) {
	assert := assert.New(t)

	bus, opr, step, flg, ctrl := newTestControl()

	opr.Set(uint16(OP_SFZ))

	// F clear: the conditional folds into a plain pc increment.
	step.Set(3)
	assert.False(ctrl.decode())
	assert.Equal(INCPCF|INCPC, bus.Control)

	// F set: no increment this tick.
	flg.Set(FLAG_F)
	step.Set(3)
	assert.False(ctrl.decode())
	assert.Equal(INCPCF, bus.Control)
}

func TestControlSkipOnZero(t *testing.T) {
	assert := assert.New(t)

	bus, opr, step, flg, ctrl := newTestControl()

	opr.Set(uint16(OP_ISZ))

	// Z clear: no skip.
	step.Set(7)
	assert.False(ctrl.decode())
	assert.Equal(INCPCZ, bus.Control)

	// Z set: skip.
	flg.Set(FLAG_Z)
	step.Set(7)
	assert.False(ctrl.decode())
	assert.Equal(INCPCZ|INCPC, bus.Control)
}

// TestControlStepClear verifies the synchronous step counter reset: the
// tick that asserts CLRSC already behaves as the first fetch step.
func TestControlStepClear(t *testing.T) {
	assert := assert.New(t)

	bus, opr, step, _, ctrl := newTestControl()

	opr.Set(uint16(OP_JMP))
	step.Set(4) // jmp block: gpr -> pc, then clear

	assert.False(ctrl.decode())
	assert.Equal(uint16(0), step.Get())
	assert.Equal(PC_MAR, bus.Control, "clear tick emits the first fetch word")
}
