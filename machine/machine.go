// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"math/big"
)

// Observer receives print and dump observations from a running
// Machine. Values passed to it are copies.
type Observer interface {
	// Print receives the value of one variable.
	Print(v Variable, value *big.Int)
	// Dump receives the machine state.
	Dump(st *State)
}

// Machine steps a Program over a State. It is fully synchronous and
// imposes no step limit; a bound on non-terminating programs is the
// caller's concern.
type Machine struct {
	Program  *Program
	State    *State
	Observer Observer // Optional sink for print/dump instructions.
}

// NewMachine creates a machine over a program and a run state.
func NewMachine(prog *Program, st *State) (m *Machine) {
	m = &Machine{
		Program: prog,
		State:   st,
	}

	return
}

// Halted reports whether the program counter has run past the
// program.
func (m *Machine) Halted() bool {
	return m.State.PC < 0 || m.State.PC >= len(m.Program.Code)
}

// Step executes one instruction. Stepping a halted machine does
// nothing.
func (m *Machine) Step() {
	if m.Halted() {
		return
	}

	in := m.Program.Code[m.State.PC]

	switch in.Op {
	case OP_INC:
		m.State.increment(in.Var)
	case OP_DEC:
		// Decrement at zero is a no-op, never negative.
		m.State.decrement(in.Var)
	case OP_JNZ:
		if !m.State.isZero(in.Var) {
			index, ok := m.Program.Labels[in.Target]
			if !ok {
				// A jump to an undefined label halts.
				m.State.PC = len(m.Program.Code)
				return
			}
			m.State.PC = index
			return
		}
	case OP_PRINT:
		if m.Observer != nil {
			m.Observer.Print(in.Var, m.State.Value(in.Var))
		}
	case OP_DUMP:
		if m.Observer != nil {
			m.Observer.Dump(m.State)
		}
	case OP_NOP:
		// No effect.
	}

	m.State.PC += 1
}

// Run steps until the machine halts. It does not return on programs
// that never halt.
func (m *Machine) Run() {
	for !m.Halted() {
		m.Step()
	}
}

// Output returns the value of the output variable y.
func (m *Machine) Output() *big.Int {
	return m.State.Value(Variable{Kind: VAR_Y})
}
