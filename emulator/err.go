package emulator

import (
	"errors"

	"github.com/ezrec/bandfuck/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrJumpUnresolved = errors.New(f("jump target unresolved"))
	ErrInputExhausted = errors.New(f("input exhausted"))
)

// ErrUnmatched is a bracket without a partner.
type ErrUnmatched struct {
	Pos int
	Op  Opcode
}

func (err *ErrUnmatched) Error() string {
	return f("Unmatched '%c' at position %d", byte(err.Op), err.Pos)
}

// ErrInstruction is a character that is not an instruction.
type ErrInstruction byte

func (ei ErrInstruction) Error() string {
	return f("'%c' is not a valid instruction", byte(ei))
}

type ErrEOFPolicy string

func (err ErrEOFPolicy) Error() string {
	return f("'%v' is not an EOF policy", string(err))
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  int
	Op  Opcode
	Err error
}

func (err *ErrRuntime) Error() string {
	if err.Op.Valid() {
		return f("position %d '%c' %v", err.Pc, byte(err.Op), err.Err)
	}
	return f("position %d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
