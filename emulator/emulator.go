// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"time"

	"github.com/ttopal/Improved-Simple-Computer-Taub/computer"
	"github.com/ttopal/Improved-Simple-Computer-Taub/internal"
)

// CLOCK_HZ is the default simulated clock rate.
const CLOCK_HZ = 1843200.0

var _emulator_defines = map[string]string{
	"CLOCK_HZ": fmt.Sprintf("%v", int(CLOCK_HZ)),
}

// Emulator wraps the machine with its external collaborators: program
// loading, diagnostic trace output, and the wall-clock pacing loop. The
// core's only contract with the pacing loop is "advance one tick"; every
// call to the machine's Tick maps to exactly one four-phase cycle, never
// skipped or reordered.
type Emulator struct {
	Verbose            bool // If set, enables verbose logging.
	*computer.Computer      // Reference to the machine simulation.

	Program   *computer.Program  // Currently loaded program listing.
	Microcode computer.Microcode // Control store used at the next Reset.

	Trace io.Writer // Per-tick diagnostic dump, nil to disable.
	Hz    float64   // Simulated clock rate for Update pacing.

	simTime  float64
	lastTick time.Time
}

// NewEmulator creates a new emulator with the standard microprogram and
// clock rate, and no program loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:   &computer.Program{},
		Microcode: computer.DefaultMicrocode(),
		Hz:        CLOCK_HZ,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		computer.Defines(),
	)
}

// Reset builds a fresh machine from the loaded program and microcode.
func (emu *Emulator) Reset() (err error) {
	emu.Computer, err = computer.NewComputer(emu.Program.Image(), emu.Microcode)
	if err != nil {
		return
	}

	emu.simTime = 0
	emu.lastTick = time.Now()

	return
}

// LineNo returns the source line number of the instruction the program
// counter addresses, or 0 when no statement covers it.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Pc.Get())
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the machine, with trace output.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Computer.Tick()
	if err != nil {
		return
	}

	if emu.Trace != nil {
		word := computer.Word(emu.Ram.Peek(emu.Pc.Get()))
		fmt.Fprintf(emu.Trace, "tick %d  op %v  next %v\n%v",
			emu.Ticks, emu.Ctrl.Opcode(), word, emu.Computer)
	}

	done = emu.Halted()

	return
}

// Update advances the machine by as many ticks as the elapsed wall-clock
// time covers at the configured clock rate. Ticks are issued whole and in
// order; pacing only throttles how often they happen.
func (emu *Emulator) Update() (done bool, err error) {
	now := time.Now()
	emu.simTime += now.Sub(emu.lastTick).Seconds()
	emu.lastTick = now

	period := 1.0 / emu.Hz
	for emu.simTime > period {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
		emu.simTime -= period
	}

	return
}

// Run ticks the machine until it halts, or until limit ticks have
// elapsed when limit is non-zero.
func (emu *Emulator) Run(limit int) (err error) {
	for {
		done, err := emu.Tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if limit != 0 && emu.Ticks >= limit {
			return &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}
		}
	}
}
