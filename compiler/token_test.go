package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		labels []string
		tokens []string
	}){
		{"", nil, []string{}},
		{"nop", nil, []string{"nop"}},
		{"[A1] x1 <- x1 + 1", []string{"A1"}, []string{"x1", "<-", "x1", "+", "1"}},
		{"[A1] [B2] nop", []string{"A1", "B2"}, []string{"nop"}},
		{"[%loop] v <- v - 1", []string{"%loop"}, []string{"v", "<-", "v", "-", "1"}},
		// Brackets count only at the front of the line.
		{"nop [A1]", nil, []string{"nop", "[A1]"}},
		{"  [A1]   nop  ", []string{"A1"}, []string{"nop"}},
	}

	for _, entry := range table {
		labels, tokens := scanLine(entry.text)
		assert.Equal(entry.labels, labels, entry.text)
		assert.Equal(entry.tokens, tokens, entry.text)
	}
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		out  string
	}){
		{"", ""},
		{"# whole line", ""},
		{"nop # trailing", "nop"},
		{"nop#glued", "nop"},
		{"   nop   ", "nop"},
		{"x1 <- x1 + 1 # one # two", "x1 <- x1 + 1"},
	}

	for _, entry := range table {
		assert.Equal(entry.out, stripComment(entry.text), entry.text)
	}
}
