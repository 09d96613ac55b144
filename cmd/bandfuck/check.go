package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/bandfuck/emulator"
	"github.com/ezrec/bandfuck/internal"
	"github.com/ezrec/bandfuck/translate"
)

var (
	ErrUnbalanced = errors.New(f("unbalanced brackets"))
)

func checkCmd() *cobra.Command {
	var sf sessionFlags
	var defines bool
	var pairs bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report unmatched brackets without running the program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sess, err := newSession(cmd, &sf)
			if err != nil {
				return
			}
			defer sess.Close()

			prog, err := sess.load(args[0])
			if err != nil {
				return
			}

			emu := sess.emu
			emu.Program = prog
			diags := emu.Reset()

			out := cmd.OutOrStdout()
			if pairs {
				for begin, end := range emu.Jumps.Pairs() {
					fmt.Fprintf(out, "%d %d\n", begin, end)
				}
			}
			if defines {
				for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
					fmt.Fprintf(out, "%v=%v\n", key, value)
				}
			}

			if len(diags) > 0 {
				// Each diagnostic has already been reported.
				err = ErrUnbalanced
				return
			}

			translate.To(out, "%d instructions, %d loops\n", prog.Len(), countPairs(emu.Jumps))
			return
		},
	}

	sf.register(cmd, "")
	cmd.Flags().BoolVar(&defines, "defines", false, "print the emulator settings")
	cmd.Flags().BoolVar(&pairs, "pairs", false, "print each matched bracket pair")

	return cmd
}

func countPairs(jt emulator.JumpTable) (count int) {
	for range jt.Pairs() {
		count++
	}
	return
}
