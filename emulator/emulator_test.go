package emulator

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/usm/compiler"
	"github.com/ezrec/usm/machine"
)

func doRun(program []string, inputs []int64, t *testing.T) (emu *Emulator) {
	assert := assert.New(t)

	comp := &compiler.Compiler{}
	prog, err := comp.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	emu = NewEmulator(prog)

	values := make([]*big.Int, 0, len(inputs))
	for _, input := range inputs {
		values = append(values, big.NewInt(input))
	}
	emu.Reset(values...)

	err = emu.Run()
	assert.NoError(err)

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	comp := &compiler.Compiler{}
	prog, err := comp.Parse(strings.NewReader(""))
	assert.NoError(err)

	emu := NewEmulator(prog)
	assert.False(emu.Verbose)
	assert.True(emu.Step())
	assert.Equal(uint64(0), emu.Steps())
	assert.Equal(int64(0), emu.Output().Int64())
}

func TestEmulatorIncrement(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- y + 1",
		"y <- y + 1",
		"y <- y + 1",
	}

	emu := doRun(program, nil, t)
	assert.Equal(int64(3), emu.Output().Int64())
	assert.Equal(uint64(3), emu.Steps())
}

func TestEmulatorAdd(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- x1 + x2",
	}

	emu := doRun(program, []int64{3, 4}, t)
	assert.Equal(int64(7), emu.Output().Int64())

	// The operands survive the addition.
	x1 := machine.Variable{Kind: machine.VAR_X, Index: 1}
	x2 := machine.Variable{Kind: machine.VAR_X, Index: 2}
	assert.Equal(int64(3), emu.State().Value(x1).Int64())
	assert.Equal(int64(4), emu.State().Value(x2).Int64())
}

func TestEmulatorSubtract(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- x1 - x2",
	}

	emu := doRun(program, []int64{5, 2}, t)
	assert.Equal(int64(3), emu.Output().Int64())

	// Subtraction clamps at zero.
	emu = doRun(program, []int64{2, 5}, t)
	assert.Equal(int64(0), emu.Output().Int64())
}

func TestEmulatorMultiply(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- x1 * x2",
	}

	emu := doRun(program, []int64{6, 7}, t)
	assert.Equal(int64(42), emu.Output().Int64())

	emu = doRun(program, []int64{6, 0}, t)
	assert.Equal(int64(0), emu.Output().Int64())
}

func TestEmulatorDivide(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- x1 / x2",
	}

	// Floor division.
	emu := doRun(program, []int64{7, 2}, t)
	assert.Equal(int64(3), emu.Output().Int64())

	emu = doRun(program, []int64{6, 2}, t)
	assert.Equal(int64(3), emu.Output().Int64())

	emu = doRun(program, []int64{0, 5}, t)
	assert.Equal(int64(0), emu.Output().Int64())
}

func TestEmulatorZeroAssign(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"x1 <- 0",
	}

	emu := doRun(program, []int64{5}, t)

	x1 := machine.Variable{Kind: machine.VAR_X, Index: 1}
	assert.Equal(int64(0), emu.State().Value(x1).Int64())
	assert.Equal(int64(0), emu.Output().Int64())
}

func TestEmulatorMax(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"if x1 < x2 goto A1",
		"y <- x1",
		"goto A2",
		"[A1] y <- x2",
		"[A2] nop",
	}

	table := [](struct {
		x1, x2 int64
		max    int64
	}){
		{3, 5, 5},
		{5, 3, 5},
		{4, 4, 4},
		{0, 1, 1},
		{0, 0, 0},
	}

	for _, entry := range table {
		emu := doRun(program, []int64{entry.x1, entry.x2}, t)
		assert.Equal(entry.max, emu.Output().Int64())
	}
}

func TestEmulatorZeroTest(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"if x1 = 0 goto A1",
		"y <- y + 1",
		"[A1] nop",
	}

	emu := doRun(program, []int64{0}, t)
	assert.Equal(int64(0), emu.Output().Int64())

	emu = doRun(program, []int64{9}, t)
	assert.Equal(int64(1), emu.Output().Int64())
}

func TestEmulatorAlt(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mov y x1",
		"inc y",
		"inc y",
		"dec y",
		"jlt x2 y A1",
		"inc y",
		"[A1] nop",
	}

	// y = x1 + 1; the final increment is skipped when x2 < y.
	emu := doRun(program, []int64{10, 5}, t)
	assert.Equal(int64(11), emu.Output().Int64())

	emu = doRun(program, []int64{10, 20}, t)
	assert.Equal(int64(12), emu.Output().Int64())
}

func TestEmulatorUndefinedLabel(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"if x1 != 0 goto E4",
		"y <- y + 1",
	}

	emu := doRun(program, []int64{1}, t)
	assert.Equal(int64(0), emu.Output().Int64())
	assert.Equal(uint64(1), emu.Steps())
}

func TestEmulatorStepLimit(t *testing.T) {
	assert := assert.New(t)

	comp := &compiler.Compiler{}
	program := []string{
		"[A1] x1 <- x1 + 1",
		"if x1 != 0 goto A1",
	}

	prog, err := comp.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu := NewEmulator(prog)
	emu.MaxSteps = 100

	err = emu.Run()
	assert.Error(err)
	assert.True(errors.Is(err, ErrStepLimit))

	var re *ErrRuntime
	assert.True(errors.As(err, &re))
	assert.Contains([]int{1, 2}, re.LineNo)
	assert.Equal(uint64(100), emu.Steps())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"y <- x1 + x2",
	}

	emu := doRun(program, []int64{1, 2}, t)
	assert.Equal(int64(3), emu.Output().Int64())

	emu.Reset(big.NewInt(20), big.NewInt(30))
	assert.Equal(uint64(0), emu.Steps())
	assert.Equal(int64(0), emu.Output().Int64())

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(int64(50), emu.Output().Int64())
}

func TestEmulatorObserver(t *testing.T) {
	assert := assert.New(t)

	comp := &compiler.Compiler{}
	program := []string{
		"print x1",
		"y <- y + 1",
		"dump",
	}

	prog, err := comp.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu := NewEmulator(prog)
	recorder := &Recorder{}
	emu.Observer = recorder
	emu.Reset(big.NewInt(5))

	err = emu.Run()
	assert.NoError(err)

	assert.Equal([]string{"x1 = 5"}, recorder.Prints)
	assert.Equal([]string{"pc=2 y=1 x1=5"}, recorder.Dumps)
}

func TestEmulatorTextObserver(t *testing.T) {
	assert := assert.New(t)

	comp := &compiler.Compiler{}
	prog, err := comp.Parse(strings.NewReader("print y\ndump"))
	assert.NoError(err)

	out := &bytes.Buffer{}

	emu := NewEmulator(prog)
	emu.Observer = &TextObserver{Writer: out}
	emu.Reset()

	err = emu.Run()
	assert.NoError(err)

	assert.Equal("y = 0\npc=1\n", out.String())
}
