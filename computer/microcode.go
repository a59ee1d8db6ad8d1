package computer

// Layout of the microcode table. The first block holds the fetch cycle
// (3 of 8 slots used). Each opcode owns an 8-slot execute block at
// opcode*8, indexed by step counter minus 3. The halt opcode's natural
// block would collide with the fetch block, so its lookups are redirected
// into a reserved tail block by a constant index bias.
const (
	STEPS_PER_OPCODE = 8
	MICROCODE_WORDS  = STEPS_PER_OPCODE * (16 + 1) // opcode blocks + halt tail
	HALT_REDIRECT    = STEPS_PER_OPCODE * 16           // index bias for the halt opcode
	FETCH_STEPS      = 3                               // steps 0-2 are the fetch cycle
)

// Microcode is the lookup table mapping (opcode, step) to a control word.
// It is immutable once a Computer is constructed around it.
type Microcode []ControlWord

// Bus drive lines grouped by the register that drives them. A control
// word may assert drive lines from at most one source, or the single
// writer per tick invariant on the data bus breaks.
var driveSources = []ControlWord{
	PC_MAR,                   // pc drives
	GPR_M | GPR_MAR | GPR_PC, // gpr drives
	M_GPR,                    // memory drives
}

// Validate checks the construction-time invariants: the table covers the
// fetch, execute, and halt blocks exactly, and no control word asserts
// the data bus from two sources at once.
func (uc Microcode) Validate() (err error) {
	if len(uc) != MICROCODE_WORDS {
		return ErrMicrocodeSize
	}

	for _, word := range uc {
		drivers := 0
		for _, source := range driveSources {
			if word&source != 0 {
				drivers++
			}
		}
		if drivers > 1 {
			return ErrMicrocodeConflict
		}
	}

	return
}

// Lookup returns the control word for the given opcode and step counter
// value, applying the halt redirect.
func (uc Microcode) Lookup(op Opcode, step uint16) ControlWord {
	index := (int(op) << 3) | int(step-FETCH_STEPS)
	if op == OP_HLT {
		index |= HALT_REDIRECT
	}
	return uc[index]
}

// DefaultMicrocode returns the machine's standard microprogram.
func DefaultMicrocode() Microcode {
	uc := make(Microcode, MICROCODE_WORDS)

	// Fetch cycle.
	uc[0] = PC_MAR         // pc -> mar
	uc[1] = M_GPR | INCPC  // m -> gpr, pc+1 -> pc
	uc[2] = GPR_OP         // gpr(op) -> opr

	// Execute cycles, one block per opcode.
	execute := func(op Opcode, words ...ControlWord) {
		base := int(op) << 3
		if op == OP_HLT {
			base |= HALT_REDIRECT
		}
		copy(uc[base:], words)
	}

	execute(OP_CRA, CLRA, CLRSC)
	execute(OP_CTA, COMA, CLRSC)
	execute(OP_ITA, INCA, CLRSC)
	execute(OP_CRF, CLRF, CLRSC)
	execute(OP_CTF, COMF, CLRSC)
	execute(OP_SFZ, INCPCF, CLRSC)
	execute(OP_ROR, ROR, CLRSC)
	execute(OP_ROL, ROL, CLRSC)
	execute(OP_ADD, GPR_MAR, M_GPR, ADD, CLRSC)
	execute(OP_ADDI, GPR_MAR, M_GPR, GPR_MAR, M_GPR, ADD, CLRSC)
	execute(OP_STA, GPR_MAR, A_GPR, GPR_M, CLRSC)
	execute(OP_JMP, GPR_PC, CLRSC)
	execute(OP_JMPI, GPR_MAR, M_GPR, GPR_PC, CLRSC)
	execute(OP_CSR, GPR_MAR, PC_GPR, GPR_M, INCPC, CLRSC)
	execute(OP_ISZ, GPR_MAR, M_GPR, INCGPR, GPR_M, INCPCZ, CLRSC)
	execute(OP_HLT, HLT, CLRSC)

	return uc
}
