package emulator

import (
	"strings"

	"github.com/ttopal/Improved-Simple-Computer-Taub/computer"
)

// DemoSource is the stock demonstration program: it walks a pointer over
// the six data cells, summing 1+3+5+7+9+11 into the result cell under
// control of an ISZ loop counter, then halts.
const DemoSource = `
; Sum the odd numbers 1,3,5,7,9,11 into res.
        cra
loop:   addi ana        ; acc += word ana points at
        isz  ana        ; advance the pointer
        isz  ctr        ; count a loop iteration; skip jmp at zero
        jmp  loop
        sta  res
        hlt
res:    .word 0
ana:    .word data
ctr:    .word -6
data:   .word 1 3 5 7 9 11
`

// DemoProgram assembles DemoSource.
func DemoProgram() (prog *computer.Program, err error) {
	asm := &computer.Assembler{}
	return asm.Parse(strings.NewReader(DemoSource))
}
