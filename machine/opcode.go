package machine

import (
	"fmt"
	"strings"
)

// Op is the operation of an Instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP   = Op(0) // nop
	OP_INC   = Op(1) // inc
	OP_DEC   = Op(2) // dec
	OP_JNZ   = Op(3) // jnz
	OP_PRINT = Op(4) // print
	OP_DUMP  = Op(5) // dump
)

// Instruction is one fully expanded machine instruction. Labels holds
// the jump labels bound to it, normally none or one; more than one
// happens when a labeled macro invocation expands to a body whose
// first line is itself labeled. Line is the source line it came from.
type Instruction struct {
	Op     Op
	Var    Variable
	Target Label
	Labels []Label
	Line   int
}

// MakeInc creates an increment instruction.
func MakeInc(v Variable) Instruction {
	return Instruction{Op: OP_INC, Var: v}
}

// MakeDec creates a decrement instruction.
func MakeDec(v Variable) Instruction {
	return Instruction{Op: OP_DEC, Var: v}
}

// MakeJnz creates a jump-if-non-zero instruction.
func MakeJnz(v Variable, target Label) Instruction {
	return Instruction{Op: OP_JNZ, Var: v, Target: target}
}

// MakeNop creates a no-op instruction.
func MakeNop() Instruction {
	return Instruction{Op: OP_NOP}
}

// MakePrint creates a print meta instruction.
func MakePrint(v Variable) Instruction {
	return Instruction{Op: OP_PRINT, Var: v}
}

// MakeDump creates a state-dump meta instruction.
func MakeDump() Instruction {
	return Instruction{Op: OP_DUMP}
}

// String renders the instruction in source syntax, labels included.
func (in Instruction) String() (out string) {
	var sb strings.Builder

	for _, label := range in.Labels {
		fmt.Fprintf(&sb, "[%v] ", label)
	}

	switch in.Op {
	case OP_INC:
		fmt.Fprintf(&sb, "%v <- %v + 1", in.Var, in.Var)
	case OP_DEC:
		fmt.Fprintf(&sb, "%v <- %v - 1", in.Var, in.Var)
	case OP_JNZ:
		fmt.Fprintf(&sb, "if %v != 0 goto %v", in.Var, in.Target)
	case OP_PRINT:
		fmt.Fprintf(&sb, "%v %v", in.Op, in.Var)
	default:
		sb.WriteString(in.Op.String())
	}

	out = sb.String()
	return
}
