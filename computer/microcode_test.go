package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicrocodeLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(136, MICROCODE_WORDS)
	assert.Equal(128, HALT_REDIRECT)

	uc := DefaultMicrocode()
	assert.NoError(uc.Validate())

	// Fetch cycle.
	assert.Equal(PC_MAR, uc[0])
	assert.Equal(M_GPR|INCPC, uc[1])
	assert.Equal(GPR_OP, uc[2])

	// Fetch block padding is empty; the halt opcode never lands here.
	for step := 3; step < STEPS_PER_OPCODE; step++ {
		assert.Equal(ControlWord(0), uc[step])
	}

	// Spot checks of the execute blocks.
	assert.Equal(CLRA, uc[int(OP_CRA)<<3])
	assert.Equal(CLRSC, uc[int(OP_CRA)<<3+1])
	assert.Equal(INCPCF, uc[int(OP_SFZ)<<3])
	assert.Equal(ADD, uc[int(OP_ADD)<<3+2])
	assert.Equal(INCPCZ, uc[int(OP_ISZ)<<3+4])

	// Halt tail.
	assert.Equal(HLT, uc[HALT_REDIRECT])
	assert.Equal(CLRSC, uc[HALT_REDIRECT+1])
}

func TestMicrocodeLookup(t *testing.T) {
	assert := assert.New(t)

	uc := DefaultMicrocode()

	assert.Equal(GPR_MAR, uc.Lookup(OP_ADD, 3))
	assert.Equal(M_GPR, uc.Lookup(OP_ADD, 4))
	assert.Equal(ADD, uc.Lookup(OP_ADD, 5))
	assert.Equal(CLRSC, uc.Lookup(OP_ADD, 6))

	// Opcode 0 redirects into the halt tail instead of the fetch block.
	assert.Equal(HLT, uc.Lookup(OP_HLT, 3))
	assert.Equal(CLRSC, uc.Lookup(OP_HLT, 4))
}

func TestMicrocodeValidate(t *testing.T) {
	assert := assert.New(t)

	short := make(Microcode, MICROCODE_WORDS-1)
	assert.ErrorIs(short.Validate(), ErrMicrocodeSize)

	long := make(Microcode, MICROCODE_WORDS+1)
	assert.ErrorIs(long.Validate(), ErrMicrocodeSize)

	conflicted := DefaultMicrocode()
	conflicted[1] |= PC_MAR // memory and pc would both drive
	assert.ErrorIs(conflicted.Validate(), ErrMicrocodeConflict)

	twoGpr := make(Microcode, MICROCODE_WORDS)
	twoGpr[9] = GPR_M | GPR_MAR // one source, two destinations: fine
	assert.NoError(twoGpr.Validate())
}

func TestControlWordString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", ControlWord(0).String())
	assert.Equal("INCPC M_GPR", (M_GPR | INCPC).String())
	assert.Equal("HLT", HLT.String())
}
