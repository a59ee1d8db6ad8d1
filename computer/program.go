package computer

import (
	"iter"
)

// Statement is one assembled source line: its location, the words it
// parsed into, and the machine words it generated.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Code      []Word
	LinkLabel string
}

// Program is an assembled listing. Its Image is the memory image handed
// to the machine at construction.
type Program struct {
	Statements []Statement
}

// Debug locates the statement covering a memory address.
type Debug struct {
	*Statement
	Index int
}

// Debug returns the statement covering the given address, if any.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, st := range prog.Statements {
		if int(addr) >= st.Addr && int(addr) < st.Addr+len(st.Code) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(addr) - st.Addr,
			}
			break
		}
	}

	return
}

// Image returns the program as a memory image.
func (prog *Program) Image() (image []uint16) {
	for addr, word := range prog.Words() {
		for int(addr) >= len(image) {
			image = append(image, 0)
		}
		image[addr] = uint16(word)
	}

	return
}

// Words iterates the assembled machine words with their addresses.
func (prog *Program) Words() iter.Seq2[uint16, Word] {
	return func(yield func(addr uint16, word Word) bool) {
		for _, st := range prog.Statements {
			addr := uint16(st.Addr)
			for n, word := range st.Code {
				if !yield(addr+uint16(n), word) {
					return
				}
			}
		}
	}
}
