package compiler

import (
	"strings"

	"github.com/ezrec/usm/machine"
)

// Context allocates collision-free automatic variables and labels for
// one compilation. It tracks the highest auxiliary index and the
// highest per-letter label index seen anywhere in the program,
// explicit or automatic, macro bodies included. Allocation is
// monotonic: a name is never reused or freed. The context is threaded
// explicitly through expansion, never package state.
type Context struct {
	MaxAux   int
	MaxLabel [len(machine.LabelLetters)]int
}

// Observe raises the high-water marks for a variable or label shaped
// token, in operand or label position. Other tokens are ignored.
func (ctx *Context) Observe(token string) {
	if v, err := machine.ParseVariable(token); err == nil {
		if v.Kind == machine.VAR_Z && v.Index > ctx.MaxAux {
			ctx.MaxAux = v.Index
		}
		return
	}

	if l, err := machine.ParseLabel(token); err == nil {
		n := strings.IndexByte(machine.LabelLetters, l.Letter)
		if l.Index > ctx.MaxLabel[n] {
			ctx.MaxLabel[n] = l.Index
		}
	}
}

// FreshVariable allocates an auxiliary variable unused by any
// variable seen so far.
func (ctx *Context) FreshVariable() machine.Variable {
	ctx.MaxAux += 1
	return machine.Variable{Kind: machine.VAR_Z, Index: ctx.MaxAux}
}

// FreshLabel allocates a label unused by any label seen so far. The
// letter is hint's first byte when that is in the label alphabet,
// else the first alphabet letter.
func (ctx *Context) FreshLabel(hint string) machine.Label {
	n := 0
	if len(hint) > 0 {
		if at := strings.IndexByte(machine.LabelLetters, hint[0]); at >= 0 {
			n = at
		}
	}

	ctx.MaxLabel[n] += 1
	return machine.Label{Letter: machine.LabelLetters[n], Index: ctx.MaxLabel[n]}
}
