package compiler

import (
	"github.com/ezrec/usm/machine"
)

// matchInstruction recognizes the literal instruction grammar over a
// token sequence. Literal instructions always take precedence over
// macros: a line matching this grammar is never macro matched, and a
// matching shape with a malformed operand is an error rather than a
// fall through.
func matchInstruction(tokens []string) (in machine.Instruction, ok bool, err error) {
	switch {
	case len(tokens) == 1 && tokens[0] == "nop":
		in, ok = machine.MakeNop(), true

	case len(tokens) == 1 && tokens[0] == "dump":
		in, ok = machine.MakeDump(), true

	case len(tokens) == 2 && tokens[0] == "print":
		var v machine.Variable
		v, err = machine.ParseVariable(tokens[1])
		if err != nil {
			return
		}
		in, ok = machine.MakePrint(v), true

	case len(tokens) == 5 && tokens[1] == "<-" && tokens[0] == tokens[2] &&
		(tokens[3] == "+" || tokens[3] == "-") && tokens[4] == "1":
		var v machine.Variable
		v, err = machine.ParseVariable(tokens[0])
		if err != nil {
			return
		}
		if tokens[3] == "+" {
			in, ok = machine.MakeInc(v), true
		} else {
			in, ok = machine.MakeDec(v), true
		}

	case len(tokens) == 6 && tokens[0] == "if" && tokens[2] == "!=" &&
		tokens[3] == "0" && tokens[4] == "goto":
		var v machine.Variable
		v, err = machine.ParseVariable(tokens[1])
		if err != nil {
			return
		}
		var target machine.Label
		target, err = machine.ParseLabel(tokens[5])
		if err != nil {
			return
		}
		in, ok = machine.MakeJnz(v, target), true
	}

	return
}
