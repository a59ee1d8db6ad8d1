// Package computer implements a cycle-level simulation of the improved
// simple computer, a microprogrammed bus-architecture machine.
//
// The machine consists of seven registers (program counter, memory address
// register, accumulator, general-purpose register, flag register, operation
// register, and step counter), an adder with a carry flip-flop, 128 words of
// memory, and a control unit driven by a 136-entry microcode table. All
// components share a single data bus and a single control bus, and advance
// in lock-step through a four-phase clock: decode, drive, compute, latch.
//
// The package also provides an assembler for the machine's 16-opcode
// instruction set, supporting labels, equates, and compile-time Starlark
// expression evaluation.
package computer
