package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   string
		kind   VarKind
		index  int
		out    string
		number int
	}){
		{"y", VAR_Y, 0, "y", 1},
		{"x1", VAR_X, 1, "x1", 2},
		{"z1", VAR_Z, 1, "z1", 3},
		{"x2", VAR_X, 2, "x2", 4},
		{"z2", VAR_Z, 2, "z2", 5},
		{"x12", VAR_X, 12, "x12", 24},
		{"z340", VAR_Z, 340, "z340", 681},
		{"x01", VAR_X, 1, "x1", 2}, // leading zeros normalize
	}

	for _, entry := range table {
		v, err := ParseVariable(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.kind, v.Kind, entry.word)
		assert.Equal(entry.index, v.Index, entry.word)
		assert.Equal(entry.out, v.String(), entry.word)
		assert.Equal(entry.number, v.Number(), entry.word)
		assert.True(IsVariable(entry.word), entry.word)
	}
}

func TestVariableParseInvalid(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"", "x", "z", "x0", "z0", "y1", "Y", "X1", "Z1",
		"x-1", "x+1", "x1.5", "xx1", "w1", "x1x", "$1", "%1",
		"x99999999999999999999999999",
	}

	for _, word := range table {
		_, err := ParseVariable(word)
		assert.Error(err, word)
		assert.False(IsVariable(word), word)
	}
}

func TestVariableZero(t *testing.T) {
	assert := assert.New(t)

	var v Variable
	assert.Equal(VAR_NONE, v.Kind)
	assert.Equal("-", v.String())
	assert.Equal(0, v.Number())
}

func TestLabelParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   string
		letter byte
		index  int
		number int
	}){
		{"A1", 'A', 1, 1},
		{"B1", 'B', 1, 2},
		{"C1", 'C', 1, 3},
		{"D1", 'D', 1, 4},
		{"E1", 'E', 1, 5},
		{"A2", 'A', 2, 6},
		{"E2", 'E', 2, 10},
		{"A10", 'A', 10, 46},
	}

	for _, entry := range table {
		l, err := ParseLabel(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.letter, l.Letter, entry.word)
		assert.Equal(entry.index, l.Index, entry.word)
		assert.Equal(entry.word, Label{Letter: entry.letter, Index: entry.index}.String())
		assert.Equal(entry.number, l.Number(), entry.word)
		assert.True(IsLabel(entry.word), entry.word)
	}
}

func TestLabelParseInvalid(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"", "A", "A0", "F1", "a1", "AB", "A-1", "A1B", "1A", "%A", "[A1]",
	}

	for _, word := range table {
		_, err := ParseLabel(word)
		assert.Error(err, word)
		assert.False(IsLabel(word), word)
	}
}

func TestLabelZero(t *testing.T) {
	assert := assert.New(t)

	var l Label
	assert.Equal("-", l.String())
	assert.Equal(0, l.Number())
}
