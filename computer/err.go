package computer

import (
	"errors"

	"github.com/ttopal/Improved-Simple-Computer-Taub/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrMicrocodeSize     = errors.New(f("microcode table size invalid"))
	ErrMicrocodeConflict = errors.New(f("microcode word drives bus twice"))
	ErrImageSize         = errors.New(f("program image too large"))

	// Runtime errors
	ErrHalted = errors.New(f("machine halted"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrWordSyntax      = errors.New(f(".word syntax"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive arguments"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrProgramSize     = errors.New(f("program too large"))
)

// ErrLabelMissing reports a jump target that was never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseNumber reports a word that could not be parsed as a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression reports a $(...) expression that failed to evaluate.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembler error in its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
