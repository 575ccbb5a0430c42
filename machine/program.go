package machine

import (
	"fmt"
	"iter"
	"strings"
)

// Program is a fully expanded, label resolved instruction list. No
// partially expanded program is ever constructed. A label may map to
// len(Code), one past the last instruction; jumping to it halts.
type Program struct {
	Code   []Instruction
	Labels map[Label]int
}

// Instructions iterates the instructions in execution order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, in Instruction) bool) {
		for n, in := range prog.Code {
			if !yield(n, in) {
				return
			}
		}
	}
}

// String renders the program listing, one instruction per line.
func (prog *Program) String() (out string) {
	var sb strings.Builder

	for _, in := range prog.Instructions() {
		fmt.Fprintf(&sb, "%v\n", in)
	}

	out = sb.String()
	return
}
