package io

import (
	"context"
	"io"
	"strconv"
)

// printable is the allow-list of non-letter bytes that are sent as
// characters. 26 is the end-of-medium control.
var printable = [256]bool{
	'!': true, ' ': true, '.': true, ',': true, '?': true,
	'<': true, '>': true, '+': true, '-': true, '[': true, ']': true,
	'@': true, '\n': true, 26: true,
}

// Printable returns true if the value is sent as a character, rather than
// as its decimal value.
func Printable(value byte) bool {
	if (value >= 'A' && value <= 'Z') || (value >= 'a' && value <= 'z') {
		return true
	}

	return printable[value]
}

// Tape provides byte level I/O for a running program.
// Input supplies one byte per request, Output receives the program's output,
// and Diagnostic receives one line per reported problem.
type Tape struct {
	Input      io.Reader
	Output     io.Writer
	Diagnostic io.Writer
}

// Receive reads exactly one byte from Input. Whitespace is not skipped.
// Returns io.EOF when Input is exhausted, or not set.
func (tc *Tape) Receive() (value byte, err error) {
	return tc.ReceiveContext(context.Background())
}

// ReceiveContext is Receive, abandoned with ctx.Err() once ctx is done.
// Only an Input implementing ContextReader can be abandoned mid-read.
func (tc *Tape) ReceiveContext(ctx context.Context) (value byte, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	for {
		var n int
		if cr, ok := tc.Input.(ContextReader); ok {
			n, err = cr.ReadContext(ctx, one[:])
		} else {
			n, err = tc.Input.Read(one[:])
		}
		if n == 1 {
			value = one[0]
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Send writes a value to Output, as a character if Printable, otherwise
// as a decimal number.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	if Printable(value) {
		_, err = tc.Output.Write([]byte{value})
	} else {
		_, err = io.WriteString(tc.Output, strconv.Itoa(int(value)))
	}

	return
}

// Finish writes the end-of-output newline.
func (tc *Tape) Finish() (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{'\n'})
	return
}

// Report writes a diagnostic line for err.
func (tc *Tape) Report(err error) {
	if tc.Diagnostic == nil || err == nil {
		return
	}

	io.WriteString(tc.Diagnostic, ErrPrefix+err.Error()+"\n")
}
