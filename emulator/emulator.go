// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator implements the execution engine.
//
// A program is first analyzed to pair its loop brackets into a jump table,
// then dispatched one instruction per Tick against a cyclic memory band.
// Input, output and diagnostics flow through an io.Tape.
package emulator

import (
	"context"
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log/slog"
	"maps"

	"github.com/ezrec/bandfuck/band"
	"github.com/ezrec/bandfuck/internal"
	"github.com/ezrec/bandfuck/io"
)

const (
	CANCEL_CHECK_TICKS = 4096 // Ticks between context checks in Run.
)

var _emulator_defines = map[string]string{
	"DEFAULT_SIZE":       fmt.Sprintf("%v", band.DEFAULT_SIZE),
	"CANCEL_CHECK_TICKS": fmt.Sprintf("%v", CANCEL_CHECK_TICKS),
}

var discard = slog.New(slog.DiscardHandler)

// Emulator state. Band + program + jump table + IO tape.
type Emulator struct {
	Verbose bool         // If set, logs every tick at debug level.
	Logger  *slog.Logger // Destination of log records. nil discards.
	EOF     EOFPolicy    // Input exhaustion policy.

	Band *band.Band // Memory band, persists across programs.
	Tape io.Tape    // Input, output and diagnostic streams.

	Program Program   // Currently loaded program.
	Jumps   JumpTable // Bracket pairs of Program.
	Pc      int       // Program counter.
	Loops   Stack     // Active loop begins, for introspection only.
	Ticks   int       // Instructions executed since Reset.

	finished bool
	ctx      context.Context // Context of the Run in progress.
}

// NewEmulator creates a new emulator with a band of size cells.
func NewEmulator(size int) (emu *Emulator) {
	emu = &Emulator{
		Band: band.NewBand(size),
	}

	return
}

func (emu *Emulator) logger() *slog.Logger {
	if emu.Logger == nil {
		return discard
	}
	return emu.Logger
}

// Defines returns an iterator over the emulator constants and settings.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	settings := map[string]string{
		"BAND_SIZE":      fmt.Sprintf("%v", emu.Band.Size()),
		"EOF":            emu.EOF.String(),
		"PROGRAM_LENGTH": fmt.Sprintf("%v", emu.Program.Len()),
	}

	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(settings))
}

// report a non-fatal problem to the tape. The tape line is the report;
// the log only traces it.
func (emu *Emulator) report(err error) {
	emu.Tape.Report(err)
	if emu.Verbose {
		emu.logger().Debug("diagnostic", "error", err)
	}
}

func (emu *Emulator) context() context.Context {
	if emu.ctx == nil {
		return context.Background()
	}
	return emu.ctx
}

// Reset prepares the emulator to run Program from the start.
// The jump table is rebuilt, and any bracket diagnostics are reported
// and returned. The band is left as is.
func (emu *Emulator) Reset() (diags []error) {
	emu.Pc = 0
	emu.Ticks = 0
	emu.finished = false
	emu.Loops.Reset()

	emu.Jumps, diags = Analyze(emu.Program)
	for _, diag := range diags {
		emu.report(diag)
	}

	if emu.Verbose {
		emu.logger().Debug("reset",
			"length", emu.Program.Len(),
			"diagnostics", len(diags))
	}

	return
}

// Done returns true once the program counter has reached the end.
func (emu *Emulator) Done() bool {
	return emu.Pc >= emu.Program.Len()
}

// Depth is the number of loops currently being executed.
func (emu *Emulator) Depth() int {
	return emu.Loops.Len()
}

// Tick performs a single instruction of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Pc

	if emu.Done() {
		done = true
		if !emu.finished {
			emu.finished = true
			err = emu.Tape.Finish()
			if err != nil {
				err = &ErrRuntime{Pc: pc, Err: err}
			}
		}
		return
	}

	op := emu.Program.At(pc)
	next := pc + 1

	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Op: op, Err: err}
		}
	}()

	if emu.Verbose {
		emu.logger().Debug("tick",
			"pc", pc,
			"op", op,
			"index", emu.Band.Index(),
			"cell", emu.Band.Read())
	}

	emu.Ticks++

	switch op {
	case OP_LEFT:
		emu.Band.Left()
	case OP_RIGHT:
		emu.Band.Right()
	case OP_INCREMENT:
		emu.Band.Increment()
	case OP_DECREMENT:
		emu.Band.Decrement()
	case OP_OUTPUT:
		err = emu.Tape.Send(emu.Band.Read())
		if err != nil {
			return
		}
	case OP_INPUT:
		err = emu.input()
		if err != nil {
			return
		}
	case OP_LOOP_BEGIN:
		if emu.Band.Read() == 0 {
			end, ok := emu.Jumps.Target(pc)
			if !ok {
				err = ErrJumpUnresolved
				return
			}
			next = end + 1
		} else if top, ok := emu.Loops.Peek(); !ok || top != pc {
			emu.Loops.Push(pc)
		}
	case OP_LOOP_END:
		if emu.Band.Read() != 0 {
			begin, ok := emu.Jumps.Target(pc)
			if !ok {
				err = ErrJumpUnresolved
				return
			}
			next = begin
		} else {
			emu.Loops.Pop()
		}
	default:
		emu.report(ErrInstruction(op))
	}

	emu.Pc = next

	return
}

// input reads one byte into the current cell, applying the EOF policy.
func (emu *Emulator) input() (err error) {
	value, err := emu.Tape.ReceiveContext(emu.context())
	if err == nil {
		emu.Band.Write(value)
		return
	}

	if !errors.Is(err, goio.EOF) {
		return
	}

	err = nil
	switch emu.EOF {
	case EOF_ZERO:
		emu.Band.Write(0)
	case EOF_KEEP:
	case EOF_ERROR:
		err = ErrInputExhausted
	}

	return
}

// Run ticks the program until it is done, fails, or ctx is cancelled.
// A pending input read is abandoned on cancel when the tape input is an
// io.ContextReader.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	emu.ctx = ctx
	defer func() { emu.ctx = nil }()

	for {
		if emu.Ticks%CANCEL_CHECK_TICKS == 0 {
			if err = ctx.Err(); err != nil {
				err = &ErrRuntime{Pc: emu.Pc, Err: err}
				return
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// Execute loads program, and runs it to completion.
// Bracket diagnostics are reported, but are not fatal.
func (emu *Emulator) Execute(program Program) (err error) {
	emu.Program = program
	emu.Reset()

	err = emu.Run(context.Background())

	if emu.Verbose {
		emu.logger().Debug("execute", "ticks", emu.Ticks, "error", err)
	}

	return
}
