package emulator

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ezrec/usm/machine"
)

// TextObserver writes print and dump observations as text lines.
type TextObserver struct {
	Writer io.Writer
}

func (obs *TextObserver) Print(v machine.Variable, value *big.Int) {
	fmt.Fprintf(obs.Writer, "%v = %v\n", v, value)
}

func (obs *TextObserver) Dump(st *machine.State) {
	fmt.Fprintf(obs.Writer, "%v\n", st)
}

// Recorder retains observations for later inspection.
type Recorder struct {
	Prints []string
	Dumps  []string
}

func (obs *Recorder) Print(v machine.Variable, value *big.Int) {
	obs.Prints = append(obs.Prints, fmt.Sprintf("%v = %v", v, value))
}

func (obs *Recorder) Dump(st *machine.State) {
	obs.Dumps = append(obs.Dumps, st.String())
}
