// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math"

	"github.com/ezrec/x8/asm"
	"github.com/ezrec/x8/cpu"
	"github.com/ezrec/x8/internal"
	"github.com/ezrec/x8/isa"
)

var _emulator_defines = map[string]string{
	"INT32_MIN": fmt.Sprintf("%d", math.MinInt32),
	"INT32_MAX": fmt.Sprintf("%d", math.MaxInt32),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	StepLimit int          // Maximum ticks per Run; 0 is unbounded.
	Source    *isa.Program // Parsed listing of the loaded program.

	defines map[string]string
}

// NewEmulator creates a new emulator, with no program loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		defines: map[string]string{},
	}

	return
}

// Define adds an assembler predefine, visible to subsequent loads.
func (emu *Emulator) Define(name string, value string) {
	emu.defines[name] = value
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		maps.All(emu.defines),
	)
}

// Load assembles and links a program, and resets the CPU to run it.
// On error, the previously loaded program is kept.
func (emu *Emulator) Load(input io.Reader) (err error) {
	as := &asm.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		as.Predefine(name, value)
	}

	prog, err := as.Parse(input)
	if err != nil {
		return
	}

	exe, err := asm.Link(prog)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions, %d labels", exe.Len(), len(exe.Label))
	}

	emu.Source = prog
	emu.Cpu.Program = exe
	emu.Reset()

	return
}

// Reset the CPU to the start of the loaded program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// LineNo returns the current line number for the executing instruction,
// or 0 if there is none.
func (emu *Emulator) LineNo() int {
	if emu.Cpu.Program == nil {
		return 0
	}

	return emu.Cpu.Program.LineNo(emu.Cpu.Ip)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Program == nil {
		done = true
		err = ErrProgramMissing
		return
	}

	err = emu.Cpu.Tick()
	done = emu.Cpu.Halted()

	return
}

// Run ticks the emulator until the CPU halts. If StepLimit is set, Run
// fails with ErrStepLimit after that many ticks without halting.
func (emu *Emulator) Run() (err error) {
	for steps := 0; ; steps++ {
		if emu.StepLimit > 0 && steps >= emu.StepLimit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
