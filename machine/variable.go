package machine

import (
	"strconv"
)

// VarKind is the namespace of a Variable.
type VarKind int

//go:generate go tool stringer -linecomment -type=VarKind
const (
	VAR_NONE = VarKind(0) // -
	VAR_X    = VarKind(1) // x
	VAR_Z    = VarKind(2) // z
	VAR_Y    = VarKind(3) // y
)

// Variable names one machine register: an input (x1, x2, ...), an
// auxiliary (z1, z2, ...), or the output y. Indexes are 1-based; the
// output is a singleton and its index is always zero. The zero value
// means "no variable".
type Variable struct {
	Kind  VarKind
	Index int
}

// digits reports whether word is entirely decimal digits.
func digits(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseVariable parses a variable name.
func ParseVariable(word string) (v Variable, err error) {
	if word == "y" {
		v = Variable{Kind: VAR_Y}
		return
	}

	if len(word) < 2 {
		err = ErrVariableInvalid(word)
		return
	}

	var kind VarKind
	switch word[0] {
	case 'x':
		kind = VAR_X
	case 'z':
		kind = VAR_Z
	default:
		err = ErrVariableInvalid(word)
		return
	}

	if !digits(word[1:]) {
		err = ErrVariableInvalid(word)
		return
	}

	index, aerr := strconv.Atoi(word[1:])
	if aerr != nil || index < 1 {
		err = ErrVariableInvalid(word)
		return
	}

	v = Variable{Kind: kind, Index: index}
	return
}

// IsVariable reports whether word is a well formed variable name.
func IsVariable(word string) bool {
	_, err := ParseVariable(word)
	return err == nil
}

// String renders the variable in source syntax.
func (v Variable) String() string {
	switch v.Kind {
	case VAR_X, VAR_Z:
		return v.Kind.String() + strconv.Itoa(v.Index)
	}
	return v.Kind.String()
}

// Number enumerates variables for the numbering mode: y is 1, then
// x1, z1, x2, z2, ... continue 2, 3, 4, 5, ... The zero Variable is 0.
func (v Variable) Number() int {
	switch v.Kind {
	case VAR_Y:
		return 1
	case VAR_X:
		return 2 * v.Index
	case VAR_Z:
		return 2*v.Index + 1
	}
	return 0
}
