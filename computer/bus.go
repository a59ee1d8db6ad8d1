package computer

import (
	"strings"
)

// ControlWord is the wide flag value published on the control bus once per
// tick. Each bit enables one micro-operation; the microcode table is
// constructed so that simultaneously asserted bits never contend for the
// data bus.
type ControlWord uint32

// Control lines, numbered as in the original micro-order table.
const (
	GPR_M   = ControlWord(1 << 0)  // gpr -> m
	INCPC   = ControlWord(1 << 1)  // pc+1 -> pc
	GPR_PC  = ControlWord(1 << 2)  // gpr(ad) -> pc
	PC_MAR  = ControlWord(1 << 3)  // pc -> mar
	GPR_MAR = ControlWord(1 << 4)  // gpr(ad) -> mar
	GPR_OP  = ControlWord(1 << 5)  // gpr(op) -> opr
	M_GPR   = ControlWord(1 << 6)  // m -> gpr
	A_GPR   = ControlWord(1 << 7)  // acc -> gpr
	PC_GPR  = ControlWord(1 << 8)  // pc <-> gpr(ad)
	INCGPR  = ControlWord(1 << 9)  // gpr+1 -> gpr
	ADD     = ControlWord(1 << 10) // gpr+acc -> acc
	CLRA    = ControlWord(1 << 11) // 0 -> acc
	ROR     = ControlWord(1 << 12) // rotate right through f
	ROL     = ControlWord(1 << 13) // rotate left through f
	CLRF    = ControlWord(1 << 14) // 0 -> f
	COMF    = ControlWord(1 << 15) // ~f -> f
	COMA    = ControlWord(1 << 16) // ~acc -> acc
	INCA    = ControlWord(1 << 17) // acc+1 -> acc

	// The four reserved top bits are handled by the control unit itself,
	// before the word reaches the control bus.
	INCPCF = ControlWord(1 << 28) // pc+1 -> pc, only if f = 0
	INCPCZ = ControlWord(1 << 29) // pc+1 -> pc, only if z = 1
	CLRSC  = ControlWord(1 << 30) // 0 -> sc, synchronous
	HLT    = ControlWord(1 << 31) // halt
)

// controlNames maps each control line to its micro-order mnemonic.
var controlNames = []struct {
	line ControlWord
	name string
}{
	{GPR_M, "GPR_M"},
	{INCPC, "INCPC"},
	{GPR_PC, "GPR_PC"},
	{PC_MAR, "PC_MAR"},
	{GPR_MAR, "GPR_MAR"},
	{GPR_OP, "GPR_OP"},
	{M_GPR, "M_GPR"},
	{A_GPR, "A_GPR"},
	{PC_GPR, "PC_GPR"},
	{INCGPR, "INCGPR"},
	{ADD, "ADD"},
	{CLRA, "CLRA"},
	{ROR, "ROR"},
	{ROL, "ROL"},
	{CLRF, "CLRF"},
	{COMF, "COMF"},
	{COMA, "COMA"},
	{INCA, "INCA"},
	{INCPCF, "INCPCF"},
	{INCPCZ, "INCPCZ"},
	{CLRSC, "CLRSC"},
	{HLT, "HLT"},
}

// String returns the asserted micro-order mnemonics, space separated.
func (cw ControlWord) String() string {
	var names []string
	for _, entry := range controlNames {
		if cw&entry.line != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, " ")
}

// Bus is the shared state every component reads and writes through: one
// word-wide data bus and one control bus. It is created once by the
// Computer and handed to each component at construction; the tick
// scheduler is the only coordinator of access.
//
// The data bus has a single writer per tick (during the drive phase) and
// any number of readers (during the latch phase). The control bus is
// written only by the control unit, during the decode phase.
type Bus struct {
	Data    uint16      // Data bus lines.
	Control ControlWord // Control bus lines.
}
