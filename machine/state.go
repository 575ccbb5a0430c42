package machine

import (
	"fmt"
	"iter"
	"maps"
	"math/big"
	"slices"
	"strings"
)

var one = big.NewInt(1)

// State is the variable store and program counter of one run. Each
// run owns its State exclusively; it is created fresh and discarded
// at halt. Variables not present read as zero.
type State struct {
	PC     int
	values map[Variable]*big.Int
}

// NewState creates a run state with x1..xn loaded from inputs. All
// other variables are zero.
func NewState(inputs ...*big.Int) (st *State) {
	st = &State{
		values: map[Variable]*big.Int{},
	}

	for n, value := range inputs {
		st.Set(Variable{Kind: VAR_X, Index: n + 1}, value)
	}

	return
}

// Value reads a variable. The returned value is a copy.
func (st *State) Value(v Variable) *big.Int {
	value, ok := st.values[v]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(value)
}

// Set writes a copy of value into a variable.
func (st *State) Set(v Variable, value *big.Int) {
	st.values[v] = new(big.Int).Set(value)
}

// increment adds one in place.
func (st *State) increment(v Variable) {
	value, ok := st.values[v]
	if !ok {
		value = new(big.Int)
		st.values[v] = value
	}
	value.Add(value, one)
}

// decrement subtracts one in place, clamping at zero.
func (st *State) decrement(v Variable) {
	value, ok := st.values[v]
	if !ok || value.Sign() == 0 {
		return
	}
	value.Sub(value, one)
}

// isZero reports whether a variable reads as zero.
func (st *State) isZero(v Variable) bool {
	value, ok := st.values[v]
	return !ok || value.Sign() == 0
}

// Variables iterates the explicitly set variables in enumeration
// order (y, x1, z1, x2, z2, ...). Values are copies.
func (st *State) Variables() iter.Seq2[Variable, *big.Int] {
	vars := slices.SortedFunc(maps.Keys(st.values), func(a, b Variable) int {
		return a.Number() - b.Number()
	})

	return func(yield func(v Variable, value *big.Int) bool) {
		for _, v := range vars {
			if !yield(v, new(big.Int).Set(st.values[v])) {
				return
			}
		}
	}
}

// String renders the state as "pc=0 y=0 x1=5 ...".
func (st *State) String() (out string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "pc=%v", st.PC)
	for v, value := range st.Variables() {
		fmt.Fprintf(&sb, " %v=%v", v, value)
	}

	out = sb.String()
	return
}
