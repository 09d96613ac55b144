package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/bandfuck/stepper"
)

func stepCmd() *cobra.Command {
	var sf sessionFlags

	cmd := &cobra.Command{
		Use:   "step <file>",
		Short: "Step through a program interactively",
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

			sess.emu.Program = prog
			return stepper.Run(sess.emu)
		},
	}

	// The terminal belongs to the stepper, so input defaults to none,
	// and logs go to the trace file only.
	sf.register(cmd, "")
	sf.noConsole = true

	return cmd
}
