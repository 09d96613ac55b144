package loader

import (
	"github.com/ezrec/bandfuck/translate"
)

var f = translate.From

// ErrLoad indicates the location of a source read error.
type ErrLoad struct {
	Path   string
	LineNo int
	Err    error
}

func (err *ErrLoad) Error() string {
	if err.Path != "" {
		return f("%v: line %d %v", err.Path, err.LineNo, err.Err)
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
