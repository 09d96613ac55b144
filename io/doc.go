// Package io provides the byte level I/O channel for the interpreter.
//
// A Tape couples the program's input stream, output stream and diagnostic
// stream. Output follows the printable rule: letters and a small set of
// punctuation are written as characters, every other byte as its decimal
// value.
package io
