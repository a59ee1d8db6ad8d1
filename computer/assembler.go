// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package computer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"MEMORY_WORDS": fmt.Sprintf("%#v", MEMORY_WORDS),
}

// mnemonicMap maps assembly mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{
	"hlt":  OP_HLT,
	"cra":  OP_CRA,
	"cta":  OP_CTA,
	"ita":  OP_ITA,
	"crf":  OP_CRF,
	"ctf":  OP_CTF,
	"sfz":  OP_SFZ,
	"ror":  OP_ROR,
	"rol":  OP_ROL,
	"add":  OP_ADD,
	"addi": OP_ADDI,
	"sta":  OP_STA,
	"jmp":  OP_JMP,
	"jmpi": OP_JMPI,
	"csr":  OP_CSR,
	"isz":  OP_ISZ,
}

// Assembler is a single pass assembler for the machine's instruction set.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Statements []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word. Negative values wrap at the
// machine's 12-bit word width.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 17)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		value = uint16(v64) & ACC_BITS
	} else {
		value = uint16(v64)
	}

	if invert {
		value = ^value & ACC_BITS
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64) & ACC_BITS
	return
}

// parseLine expands a source line into opcode words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Fields(line), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the current assembly address.
func (asm *Assembler) currentAddr() int {
	if len(asm.Statements) == 0 {
		return 0
	}

	last := asm.Statements[len(asm.Statements)-1]

	return last.Addr + len(last.Code)
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var code []Word
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(code) == 0 {
			return
		}
		st := Statement{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Code: code, LinkLabel: label}
		asm.Statements = append(asm.Statements, st)
	}()

	// .word VALUE... or .word LABEL
	if words[0] == ".word" {
		if len(words) < 2 {
			err = ErrWordSyntax
			return
		}
		for _, word := range words[1:] {
			value, value_err := asm.valueOf(word)
			if value_err != nil {
				if len(words) != 2 {
					err = value_err
					return
				}
				// A lone non-number is an address label,
				// linked after the whole source is scanned.
				label = word
				value = 0
			}
			code = append(code, Word(value))
		}
		return
	}

	op, ok := mnemonicMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]

	if !op.HasOperand() {
		if len(args) != 0 {
			err = ErrOperandExtra
			return
		}
		code = append(code, MakeWord(op, 0))
		return
	}

	if len(args) < 1 {
		err = ErrOperandMissing
		return
	}
	if len(args) > 1 {
		err = ErrOperandExtra
		return
	}

	value, value_err := asm.valueOf(args[0])
	if value_err != nil {
		// Not a number; treat as a jump label, linked after the
		// whole source has been scanned.
		label = args[0]
		value = 0
	} else if value > ADDR_BITS {
		err = ErrOperandRange
		return
	}

	code = append(code, MakeWord(op, value))

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Statements = asm.Statements[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Final linking of jump labels.
	for n := range asm.Statements {
		st := &asm.Statements[n]

		if len(st.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[st.LinkLabel]
		if !ok {
			err = ErrLabelMissing(st.LinkLabel)
			return
		}
		// Only the address byte is patched; the opcode field (or a
		// .word placeholder of zero) is left as assembled.
		linked := &st.Code[len(st.Code)-1]
		*linked = Word(uint16(*linked)&^ADDR_BITS | uint16(addr)&ADDR_BITS)
	}

	if len(asm.Statements) > 0 {
		last := asm.Statements[len(asm.Statements)-1]
		if last.Addr+len(last.Code) > MEMORY_WORDS {
			err = ErrProgramSize
			return
		}
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statements),
	}

	return
}
