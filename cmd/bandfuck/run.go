package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ezrec/bandfuck/emulator"
	"github.com/ezrec/bandfuck/translate"
	"github.com/ezrec/bandfuck/watch"
)

func runCmd() *cobra.Command {
	var sf sessionFlags
	var watching bool
	var banner bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			path := args[0]

			// A rerun cannot replay stdin.
			if watching && !cmd.Flags().Changed("input") {
				sf.input = ""
			}

			sess, err := newSession(cmd, &sf)
			if err != nil {
				return
			}
			defer sess.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if watching {
				return runWatch(ctx, sess, path)
			}

			out := cmd.OutOrStdout()
			if banner {
				translate.To(out, "Loading Brainfuck program from: %v\n", path)
			}

			prog, err := sess.load(path)
			if err != nil {
				return
			}

			if banner {
				translate.To(out, "Executing program...\n")
			}

			err = runOnce(ctx, sess, prog)
			if err != nil {
				return
			}

			if banner {
				translate.To(out, "\nExecution finished successfully.\n")
			}

			return
		},
	}

	sf.register(cmd, "-")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "re-run the program when the file changes")
	cmd.Flags().BoolVar(&banner, "banner", false, "print progress messages around the program output")

	return cmd
}

// runOnce runs a loaded program on the session emulator.
func runOnce(ctx context.Context, sess *session, prog emulator.Program) (err error) {
	emu := sess.emu
	emu.Program = prog
	emu.Reset()

	sess.logger.Info("run", "length", prog.Len(), "band", emu.Band.Size(), "eof", emu.EOF)

	err = emu.Run(ctx)

	sess.logger.Info("done", "ticks", emu.Ticks, "error", err)

	return
}

// runWatch runs the program at path each time it changes, on a fresh band,
// until ctx is done.
func runWatch(ctx context.Context, sess *session, path string) (err error) {
	w, err := watch.NewWatcher(path, func(ctx context.Context) {
		prog, err := sess.load(path)
		if err != nil {
			return
		}

		sess.emu.Band.Reset()
		err = runOnce(ctx, sess, prog)
		if err != nil && !errors.Is(err, context.Canceled) {
			sess.emu.Tape.Report(err)
		}
	})
	if err != nil {
		return
	}
	w.Logger = sess.logger

	err = w.Start(ctx)
	if err != nil {
		return
	}
	defer w.Stop()

	w.Trigger()
	<-ctx.Done()

	return
}
