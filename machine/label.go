package machine

import (
	"strconv"
	"strings"
)

// LabelLetters is the fixed label alphabet.
const LabelLetters = "ABCDE"

// Label names a jump target: a letter from the fixed alphabet plus a
// 1-based index. Labels are globally unique within one assembled
// program. The zero value means "no label".
type Label struct {
	Letter byte
	Index  int
}

// ParseLabel parses a label name.
func ParseLabel(word string) (l Label, err error) {
	if len(word) < 2 || !strings.Contains(LabelLetters, word[:1]) {
		err = ErrLabelInvalid(word)
		return
	}

	if !digits(word[1:]) {
		err = ErrLabelInvalid(word)
		return
	}

	index, aerr := strconv.Atoi(word[1:])
	if aerr != nil || index < 1 {
		err = ErrLabelInvalid(word)
		return
	}

	l = Label{Letter: word[0], Index: index}
	return
}

// IsLabel reports whether word is a well formed label name.
func IsLabel(word string) bool {
	_, err := ParseLabel(word)
	return err == nil
}

// String renders the label in source syntax.
func (l Label) String() string {
	if l == (Label{}) {
		return "-"
	}
	return string(l.Letter) + strconv.Itoa(l.Index)
}

// Number enumerates labels for the numbering mode: A1, B1, ... E1,
// A2, B2, ... map to 1, 2, ... The zero Label is 0.
func (l Label) Number() int {
	if l == (Label{}) {
		return 0
	}
	return (l.Index-1)*len(LabelLetters) + strings.IndexByte(LabelLetters, l.Letter) + 1
}
