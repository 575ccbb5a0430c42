// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"
	"math/big"

	"github.com/ezrec/usm/machine"
)

// DefaultMaxSteps bounds Run when Emulator.MaxSteps is unset.
const DefaultMaxSteps = 1_000_000

// Emulator state. Machine + step accounting + observation sink.
//
// The machine model itself cannot fail; the only runtime error the
// emulator reports is an exhausted step budget.
type Emulator struct {
	Verbose  bool   // If set, enables verbose logging.
	MaxSteps uint64 // Step budget for Run; 0 means DefaultMaxSteps.

	Program  *machine.Program // Program under emulation.
	Observer machine.Observer // Sink for print and dump observations.

	machine *machine.Machine
	steps   uint64
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *machine.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
	}

	emu.Reset()

	return
}

// Reset loads the inputs into x1..xn of a fresh machine state. All
// other variables start at zero.
func (emu *Emulator) Reset(inputs ...*big.Int) {
	emu.machine = machine.NewMachine(emu.Program, machine.NewState(inputs...))
	emu.machine.Observer = emu.Observer
	emu.steps = 0
}

// Steps returns the steps executed since the last reset.
func (emu *Emulator) Steps() uint64 {
	return emu.steps
}

// State returns the current machine state.
func (emu *Emulator) State() *machine.State {
	return emu.machine.State
}

func (emu *Emulator) maxSteps() uint64 {
	if emu.MaxSteps > 0 {
		return emu.MaxSteps
	}

	return DefaultMaxSteps
}

// LineNo returns the source line of the instruction at the program
// counter, or 0 once halted.
func (emu *Emulator) LineNo() int {
	pc := emu.machine.State.PC
	if pc >= 0 && pc < len(emu.Program.Code) {
		return emu.Program.Code[pc].Line
	}

	return 0
}

// Step performs a single step of the emulator.
func (emu *Emulator) Step() (done bool) {
	// Propagate observation settings.
	emu.machine.Observer = emu.Observer

	if emu.machine.Halted() {
		done = true
		return
	}

	if emu.Verbose {
		pc := emu.machine.State.PC
		log.Printf("%4v: %v\n", pc, emu.Program.Code[pc])
	}

	emu.machine.Step()
	emu.steps += 1

	done = emu.machine.Halted()

	return
}

// Run steps the program to completion, or fails with ErrStepLimit
// once the step budget is spent.
func (emu *Emulator) Run() (err error) {
	limit := emu.maxSteps()

	for !emu.Step() {
		if emu.steps >= limit && !emu.machine.Halted() {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
			return
		}
	}

	return
}

// Output returns the value of the output variable y.
func (emu *Emulator) Output() *big.Int {
	return emu.machine.Output()
}
