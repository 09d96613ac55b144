package emulator

// Opcode is a single instruction symbol.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LEFT       = Opcode('<') // left
	OP_RIGHT      = Opcode('>') // right
	OP_INCREMENT  = Opcode('+') // increment
	OP_DECREMENT  = Opcode('-') // decrement
	OP_OUTPUT     = Opcode('.') // output
	OP_INPUT      = Opcode(',') // input
	OP_LOOP_BEGIN = Opcode('[') // begin
	OP_LOOP_END   = Opcode(']') // end
)

// Valid returns true if the opcode is one of the eight instructions.
func (op Opcode) Valid() bool {
	switch op {
	case OP_LEFT, OP_RIGHT, OP_INCREMENT, OP_DECREMENT,
		OP_OUTPUT, OP_INPUT, OP_LOOP_BEGIN, OP_LOOP_END:
		return true
	}
	return false
}

// Program is a cleaned instruction stream.
type Program string

// Len is the number of instructions in the program.
func (prog Program) Len() int {
	return len(prog)
}

// At returns the opcode at position pc.
func (prog Program) At(pc int) Opcode {
	return Opcode(prog[pc])
}
