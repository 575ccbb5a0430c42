package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCompiler(f *testing.F) {
	seeds := []string{
		"",
		"nop",
		"y <- y + 1",
		"x1 <- 0",
		"y <- x1 + x2",
		"[A1] x1 <- x1 - 1\nif x1 != 0 goto A1",
		"@def f {v}\n    v <- v + 1\n@end\nf z3",
		"@def f {v}\n    f v\n@end\nf y",
		"goto A1",
		"print y\ndump",
		"# comment\n\n   \n",
		"[A1] [A1] nop",
		"@def {v} <- {v2}\n@end\nx1 <- x2",
		"\x00\xff\xfe",
		"x999999999999999999999 <- 0",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		assert := assert.New(t)

		// Low nesting ceiling keeps mutated macro chains small.
		comp := &Compiler{DepthLimit: 8}

		prog, err := comp.Parse(strings.NewReader(input))
		if err != nil {
			// Every failure names a source line.
			var se *ErrSyntax
			assert.True(errors.As(err, &se), input)
			assert.GreaterOrEqual(se.LineNo, 0, input)
			assert.Nil(prog, input)
			return
		}

		// A compiled listing recompiles without error.
		listing := prog.String()
		second, err := comp.Parse(strings.NewReader(listing))
		assert.NoError(err, input)
		if err == nil {
			assert.Equal(listing, second.String(), input)
		}
	})
}
