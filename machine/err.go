package machine

import (
	"github.com/ezrec/usm/translate"
)

var f = translate.From

type ErrVariableInvalid string

func (err ErrVariableInvalid) Error() string {
	return f("'%v' is not a variable", string(err))
}

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a label", string(err))
}
