// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package loader reads program source text into a cleaned instruction stream.
//
// Lines starting with ";;" are comments. On every other line, each character
// that is not one of the eight instructions is dropped.
package loader

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ezrec/bandfuck/emulator"
)

const (
	COMMENT  = ";;"    // Comment line marker.
	MAX_LINE = 1 << 20 // Longest accepted source line, in bytes.
)

// Clean returns only the instructions of a single source line.
func Clean(line string) string {
	if strings.HasPrefix(line, COMMENT) {
		return ""
	}

	var sb strings.Builder
	for n := range len(line) {
		if emulator.Opcode(line[n]).Valid() {
			sb.WriteByte(line[n])
		}
	}

	return sb.String()
}

// Load reads and cleans every line of input.
func Load(input io.Reader) (prog emulator.Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	var lineno int
	var sb strings.Builder

	for scanner.Scan() {
		lineno++
		sb.WriteString(Clean(scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrLoad{LineNo: lineno + 1, Err: err}
		return
	}

	prog = emulator.Program(sb.String())
	return
}

// LoadFile reads and cleans the source file at path.
func LoadFile(path string) (prog emulator.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = Load(inf)
	if err != nil {
		var le *ErrLoad
		if errors.As(err, &le) {
			le.Path = path
		}
	}

	return
}
