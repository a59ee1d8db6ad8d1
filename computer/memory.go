package computer

import (
	"fmt"
	"strings"
)

// MEMORY_WORDS is the size of the word-addressed memory.
const MEMORY_WORDS = 128

// Memory is the machine's word-addressed store. Instructions and data
// share the same address space. It drives the data bus on M_GPR and
// latches the data bus on GPR_M, in both cases at the address held by
// the memory address register.
type Memory struct {
	bus *Bus
	mar *Register

	store [MEMORY_WORDS]uint16
}

// NewMemory creates a memory preloaded with the given program image.
// The image is copied; it may be shorter than the memory but not longer.
func NewMemory(bus *Bus, mar *Register, image []uint16) (mem *Memory, err error) {
	if len(image) > MEMORY_WORDS {
		err = ErrImageSize
		return
	}

	mem = &Memory{
		bus: bus,
		mar: mar,
	}
	copy(mem.store[:], image)

	return
}

// address returns the current memory address. The address register is 8
// bits wide, wider than the store, so the index wraps at the memory size.
func (mem *Memory) address() int {
	return int(mem.mar.Get()) & (MEMORY_WORDS - 1)
}

// Peek returns the word at the given address without a bus transfer.
func (mem *Memory) Peek(addr uint16) uint16 {
	return mem.store[int(addr)&(MEMORY_WORDS-1)]
}

// Words returns a snapshot of the full memory contents.
func (mem *Memory) Words() []uint16 {
	words := make([]uint16, MEMORY_WORDS)
	copy(words, mem.store[:])
	return words
}

// drive asserts the addressed word onto the data bus when the read
// condition holds.
func (mem *Memory) drive() {
	if mem.bus.Control&M_GPR != 0 {
		mem.bus.Data = mem.store[mem.address()]
	}
}

// latch captures the data bus into the addressed word when the write
// condition holds.
func (mem *Memory) latch() {
	if mem.bus.Control&GPR_M != 0 {
		mem.store[mem.address()] = mem.bus.Data
	}
}

// String returns the non-zero tail-trimmed memory contents, one word per
// line, for diagnostic dumps.
func (mem *Memory) String() string {
	last := MEMORY_WORDS - 1
	for last > 0 && mem.store[last] == 0 {
		last--
	}

	var sb strings.Builder
	for addr := 0; addr <= last; addr++ {
		fmt.Fprintf(&sb, "%02x: %04x\n", addr, mem.store[addr])
	}
	return sb.String()
}
