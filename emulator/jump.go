package emulator

import (
	"iter"
)

const (
	NO_TARGET = -1 // Jump table entry for positions without a partner.
)

// JumpTable maps each matched loop bracket position to the position of its
// partner. The one table serves both directions.
type JumpTable []int

// Analyze matches the brackets of program in a single pass.
//
// Each loop end is paired with the innermost pending loop begin. Unmatched
// brackets get no table entry, and are returned as *ErrUnmatched
// diagnostics, in position order.
func Analyze(program Program) (jt JumpTable, diags []error) {
	jt = make(JumpTable, program.Len())
	for n := range jt {
		jt[n] = NO_TARGET
	}

	var pending Stack
	for pos := range program.Len() {
		switch program.At(pos) {
		case OP_LOOP_BEGIN:
			pending.Push(pos)
		case OP_LOOP_END:
			begin, ok := pending.Pop()
			if !ok {
				diags = append(diags, &ErrUnmatched{Pos: pos, Op: OP_LOOP_END})
				continue
			}
			jt[begin] = pos
			jt[pos] = begin
		}
	}

	// Unmatched begins can only follow every unmatched end, and the stack
	// holds them in ascending order.
	for _, pos := range pending.Data {
		diags = append(diags, &ErrUnmatched{Pos: pos, Op: OP_LOOP_BEGIN})
	}

	return
}

// Target returns the partner of the bracket at pos.
func (jt JumpTable) Target(pos int) (target int, ok bool) {
	if pos < 0 || pos >= len(jt) {
		target = NO_TARGET
		return
	}

	target = jt[pos]
	ok = target != NO_TARGET
	return
}

// Pairs iterates over the (begin, end) bracket pairs, ordered by begin.
func (jt JumpTable) Pairs() iter.Seq2[int, int] {
	return func(yield func(begin, end int) bool) {
		for begin, end := range jt {
			if end > begin {
				if !yield(begin, end) {
					return
				}
			}
		}
	}
}
