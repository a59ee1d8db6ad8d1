// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tickN(t *testing.T, c *Computer, n int) {
	t.Helper()
	for range n {
		if err := c.Tick(); err != nil {
			t.Fatalf("tick %d: %v", c.Ticks, err)
		}
	}
}

func TestComputerFetch(t *testing.T) {
	assert := assert.New(t)

	c, err := NewComputer([]uint16{uint16(MakeWord(OP_ADD, 8))}, DefaultMicrocode())
	assert.NoError(err)

	// Step 0: pc drives the bus, mar latches it in the same tick.
	tickN(t, c, 1)
	assert.Equal(uint16(0), c.Mar.Get())
	assert.Equal(uint16(1), c.Step.Get())

	// Step 1: memory drives the instruction word, gpr latches, pc advances.
	tickN(t, c, 1)
	assert.Equal(uint16(0x908), c.Gpr.Get())
	assert.Equal(uint16(1), c.Pc.Get())

	// Step 2: the opcode field moves to the operation register directly.
	tickN(t, c, 1)
	assert.Equal(uint16(OP_ADD), c.Opr.Get())
}

func TestComputerAdd(t *testing.T) {
	assert := assert.New(t)

	image := make([]uint16, 9)
	image[0] = uint16(MakeWord(OP_ADD, 8))
	image[8] = 5

	c, err := NewComputer(image, DefaultMicrocode())
	assert.NoError(err)

	c.Acc.Set(3)

	// 3 fetch ticks, 3 execute ticks, 1 step-clear tick that doubles as
	// the next instruction's first fetch step.
	tickN(t, c, 7)

	assert.Equal(uint16(8), c.Acc.Get())
	assert.Equal(uint16(5), c.Gpr.Get())
	assert.Equal(uint16(1), c.Pc.Get())
	assert.Equal(uint16(0), c.Flg.Get()&FLAG_Z)
	assert.Equal(uint16(1), c.Step.Get(), "clear tick already counted the next fetch")
}

func TestComputerSkipFlagZero(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{uint16(MakeWord(OP_SFZ, 0))}

	c, err := NewComputer(image, DefaultMicrocode())
	assert.NoError(err)

	tickN(t, c, 4)
	assert.Equal(uint16(2), c.Pc.Get(), "f clear skips the next instruction")

	c.Reset()
	c.Flg.Set(FLAG_F)
	tickN(t, c, 4)
	assert.Equal(uint16(1), c.Pc.Get(), "f set does not skip")
}

// TestComputerSubroutine runs a single csr and checks the exchange
// semantics: the return address lands in memory at the target, execution
// continues past it, and the gpr is left holding the return address
// rather than a stale bus value.
func TestComputerSubroutine(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{uint16(MakeWord(OP_CSR, 10))}

	c, err := NewComputer(image, DefaultMicrocode())
	assert.NoError(err)

	tickN(t, c, 8)

	assert.Equal(uint16(1), c.Ram.Peek(10), "return address stored at the target")
	assert.Equal(uint16(11), c.Pc.Get(), "execution resumes after the link word")
	assert.Equal(uint16(1), c.Gpr.Get(), "gpr holds the exchanged return address")
}

func TestComputerIndirectJump(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{uint16(MakeWord(OP_JMPI, 8)), 0, 0, 0, 0, 0, 0, 0, 0x42}

	c, err := NewComputer(image, DefaultMicrocode())
	assert.NoError(err)

	tickN(t, c, 7)

	assert.Equal(uint16(0x42), c.Pc.Get())
}

// TestComputerSumLoop runs the summation demo image to completion: the
// loop adds six values through a walking pointer, counts iterations up
// from -6, and skips out when the counter reaches zero.
func TestComputerSumLoop(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{
		0x0100, // cra
		0x0a08, // addi 8
		0x0f08, // isz 8
		0x0f09, // isz 9
		0x0c01, // jmp 1
		0x0b07, // sta 7
		0x0000, // hlt
		0x0000,
		0x000a, // pointer to the data block
		0x0ffa, // -6
		1, 3, 5, 7, 9, 11,
	}

	c, err := NewComputer(image, DefaultMicrocode())
	assert.NoError(err)

	for n := 0; !c.Halted(); n++ {
		if !assert.Less(n, 1000, "program did not halt") {
			return
		}
		assert.NoError(c.Tick())
		assert.LessOrEqual(c.Step.Get(), uint16(8), "step counter stays in block")
	}

	assert.Equal(uint16(36), c.Ram.Peek(7), "sum of the six data words")
	assert.Equal(uint16(36), c.Acc.Get())
	assert.Equal(uint16(0), c.Ram.Peek(9), "counter ran up to zero")
	assert.Equal(uint16(0x10), c.Ram.Peek(8), "pointer walked past the data")
}

func TestComputerHaltFreeze(t *testing.T) {
	assert := assert.New(t)

	c, err := NewComputer([]uint16{0}, DefaultMicrocode())
	assert.NoError(err)

	// Three fetch ticks, then the halt micro-order freezes the machine
	// during decode of the fourth.
	tickN(t, c, 3)
	assert.False(c.Halted())
	assert.NoError(c.Tick())
	assert.True(c.Halted())

	before := c.Ticks
	pc := c.Pc.Get()

	assert.ErrorIs(c.Tick(), ErrHalted)
	assert.Equal(before, c.Ticks, "no progress after halt")
	assert.Equal(pc, c.Pc.Get())

	// Reset revives the machine.
	c.Reset()
	assert.False(c.Halted())
	assert.Equal(0, c.Ticks)
	assert.NoError(c.Tick())
}

func TestComputerImageTooLarge(t *testing.T) {
	assert := assert.New(t)

	_, err := NewComputer(make([]uint16, MEMORY_WORDS+1), DefaultMicrocode())
	assert.ErrorIs(err, ErrImageSize)
}

func TestComputerBadMicrocode(t *testing.T) {
	assert := assert.New(t)

	_, err := NewComputer(nil, make(Microcode, 3))
	assert.ErrorIs(err, ErrMicrocodeSize)
}

func TestComputerString(t *testing.T) {
	assert := assert.New(t)

	c, err := NewComputer(nil, DefaultMicrocode())
	assert.NoError(err)

	text := c.String()
	for _, name := range []string{"pc", "mar", "acc", "gpr", "flg", "opr", "sc", "bus", "ctrl"} {
		assert.Contains(text, name)
	}
}
