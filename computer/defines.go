package computer

import (
	"fmt"
	"iter"
	"maps"
)

var _computer_defines = map[string]string{
	"MEMORY_WORDS":    fmt.Sprintf("%v", MEMORY_WORDS),
	"MICROCODE_WORDS": fmt.Sprintf("%v", MICROCODE_WORDS),
	"ACC_BITS":        fmt.Sprintf("%#x", ACC_BITS),
	"ADDR_BITS":       fmt.Sprintf("%#x", ADDR_BITS),
}

// Defines returns an iterator over the machine constants, for predefining
// into the assembler or for documentation.
func Defines() iter.Seq2[string, string] {
	return maps.All(_computer_defines)
}
