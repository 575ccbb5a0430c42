package compiler

import (
	"errors"

	"github.com/ezrec/usm/machine"
	"github.com/ezrec/usm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrDirectiveUnknown = errors.New(f("unknown directive"))
	ErrMacroNesting     = errors.New(f("@def in @def prohibited"))
	ErrMacroLonely      = errors.New(f("@def without @end"))
	ErrMacroLonelyEnd   = errors.New(f("@end without @def"))

	// Pattern errors
	ErrPatternEmpty = errors.New(f("empty macro pattern"))

	// Matching errors
	ErrInstructionInvalid = errors.New(f("not an instruction or macro"))

	// Expansion errors
	ErrExpandDepth = errors.New(f("macro expansion too deep"))
)

type ErrPatternDuplicate string

func (err ErrPatternDuplicate) Error() string {
	return f("placeholder '{%v}' duplicated", string(err))
}

// ErrLabelDuplicate reports a label bound to more than one
// instruction after full expansion.
type ErrLabelDuplicate struct {
	Label  machine.Label
	LineNo int
}

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' duplicated", err.Label)
}

// ErrMacroRecursive reports an expansion that re-enters a definition
// already on its own expansion path.
type ErrMacroRecursive string

func (err ErrMacroRecursive) Error() string {
	return f("recursive expansion of macro '%v'", string(err))
}

// ErrMacro wraps an error raised while expanding a macro body line.
type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro '%v' line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}

// ErrSyntax wraps any compile error with the offending source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
