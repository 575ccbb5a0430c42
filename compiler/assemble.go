package compiler

import (
	"slices"

	"github.com/ezrec/usm/machine"
)

// assemble builds the label table over the fully literal instruction
// stream. Automatic and explicit names share one Context, so a
// collision here means a source-level duplicate; the uniqueness check
// is a final safety net, not the primary mechanism.
//
// Labels left pending at end of source resolve to one past the last
// instruction; jumping there halts.
func assemble(code []machine.Instruction, trailing []machine.Label, trailingLine int) (prog *machine.Program, err error) {
	labels := make(map[machine.Label]int, 16)

	for n, in := range code {
		for _, label := range in.Labels {
			_, ok := labels[label]
			if ok {
				err = ErrLabelDuplicate{Label: label, LineNo: in.Line}
				return
			}
			labels[label] = n
		}
	}

	for _, label := range trailing {
		_, ok := labels[label]
		if ok {
			err = ErrLabelDuplicate{Label: label, LineNo: trailingLine}
			return
		}
		labels[label] = len(code)
	}

	prog = &machine.Program{
		Code:   slices.Clone(code),
		Labels: labels,
	}

	return
}
