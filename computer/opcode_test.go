package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordFields(t *testing.T) {
	assert := assert.New(t)

	word := MakeWord(OP_STA, 0x7f)
	assert.Equal(Word(0x0b7f), word)
	assert.Equal(OP_STA, word.Opcode())
	assert.Equal(uint16(0x7f), word.Operand())

	// Out-of-range fields are masked.
	assert.Equal(Word(0x0f01), MakeWord(Opcode(0xff), 0x101))
}

func TestOpcodeNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hlt", OP_HLT.String())
	assert.Equal("addi", OP_ADDI.String())
	assert.Equal("isz", OP_ISZ.String())

	assert.Equal("hlt", MakeWord(OP_HLT, 0).String())
	assert.Equal("add 0x08", MakeWord(OP_ADD, 8).String())
}

func TestOpcodeHasOperand(t *testing.T) {
	assert := assert.New(t)

	for op := OP_HLT; op <= OP_ROL; op++ {
		assert.False(op.HasOperand(), "%v", op)
	}
	for op := OP_ADD; op <= OP_ISZ; op++ {
		assert.True(op.HasOperand(), "%v", op)
	}
}
