package computer

import (
	"fmt"
)

// Opcode is a machine instruction opcode, held in the high 4 bits of an
// instruction word. Opcode 0 is halt; its microcode lives in the reserved
// tail block of the table (see HALT_REDIRECT).
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0)  // hlt
	OP_CRA  = Opcode(1)  // cra
	OP_CTA  = Opcode(2)  // cta
	OP_ITA  = Opcode(3)  // ita
	OP_CRF  = Opcode(4)  // crf
	OP_CTF  = Opcode(5)  // ctf
	OP_SFZ  = Opcode(6)  // sfz
	OP_ROR  = Opcode(7)  // ror
	OP_ROL  = Opcode(8)  // rol
	OP_ADD  = Opcode(9)  // add
	OP_ADDI = Opcode(10) // addi
	OP_STA  = Opcode(11) // sta
	OP_JMP  = Opcode(12) // jmp
	OP_JMPI = Opcode(13) // jmpi
	OP_CSR  = Opcode(14) // csr
	OP_ISZ  = Opcode(15) // isz
)

// HasOperand reports whether the opcode consumes its address field.
// Opcodes hlt through rol ignore the operand.
func (op Opcode) HasOperand() bool {
	return op >= OP_ADD && op <= OP_ISZ
}

// Word is one machine word as laid out in a program image: a 4-bit opcode
// above an 8-bit address operand. The top 4 bits of the 16-bit storage
// cell are unused.
type Word uint16

// MakeWord packs an opcode and address operand into a machine word.
func MakeWord(op Opcode, addr uint16) Word {
	return Word((uint16(op)&OP_BITS)<<8 | (addr & ADDR_BITS))
}

// Opcode returns the instruction's opcode field.
func (w Word) Opcode() Opcode {
	return Opcode((w >> 8) & Word(OP_BITS))
}

// Operand returns the instruction's address field.
func (w Word) Operand() uint16 {
	return uint16(w) & ADDR_BITS
}

// String returns the assembly language representation of the word.
func (w Word) String() string {
	op := w.Opcode()
	if !op.HasOperand() {
		return op.String()
	}
	return fmt.Sprintf("%v 0x%02x", op, w.Operand())
}
