package main

import (
	"errors"
	goio "io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ezrec/bandfuck/config"
	"github.com/ezrec/bandfuck/emulator"
	"github.com/ezrec/bandfuck/io"
	"github.com/ezrec/bandfuck/loader"
	"github.com/ezrec/bandfuck/logs"
	"github.com/ezrec/bandfuck/translate"
)

var f = translate.From

var (
	ErrProgramLoad = errors.New(f("could not read or load the specified file"))
)

// sessionFlags are the settings shared by every subcommand.
type sessionFlags struct {
	config   string
	tapeSize int
	eof      string
	input    string
	output   string
	verbose  bool
	trace    string
	level    string
	journal  bool

	noConsole bool // Keep logs off the terminal.
}

func (sf *sessionFlags) register(cmd *cobra.Command, stdinDefault string) {
	flags := cmd.Flags()
	flags.StringVar(&sf.config, "config", "", "configuration file (.star or .yaml)")
	flags.IntVarP(&sf.tapeSize, "tape-size", "t", 0, "number of band cells")
	flags.StringVar(&sf.eof, "eof", "", "input exhaustion policy: zero, keep or error")
	flags.StringVarP(&sf.input, "input", "i", stdinDefault, "program input file, - for stdin")
	flags.StringVarP(&sf.output, "output", "o", "-", "program output file, - for stdout")
	flags.BoolVarP(&sf.verbose, "verbose", "v", false, "log every instruction")
	flags.StringVar(&sf.trace, "trace", "", "JSON trace log file")
	flags.StringVar(&sf.level, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&sf.journal, "journal", false, "also log to the systemd journal")
}

// session is an emulator configured from flags and configuration.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	emu     *emulator.Emulator
	closers []goio.Closer
}

func (sess *session) Close() (err error) {
	for n := len(sess.closers) - 1; n >= 0; n-- {
		err = errors.Join(err, sess.closers[n].Close())
	}
	return
}

func newSession(cmd *cobra.Command, sf *sessionFlags) (sess *session, err error) {
	sess = &session{}
	defer func() {
		if err != nil {
			sess.Close()
			sess = nil
		}
	}()

	sess.cfg, err = config.LoadOptional(sf.config)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("tape-size") {
		sess.cfg.TapeSize = sf.tapeSize
	}
	if flags.Changed("eof") {
		sess.cfg.EOF = sf.eof
	}
	if flags.Changed("verbose") {
		sess.cfg.Verbose = sf.verbose
	}
	if flags.Changed("trace") {
		sess.cfg.Trace = sf.trace
	}
	err = sess.cfg.Validate()
	if err != nil {
		return
	}

	level, err := logs.ParseLevel(sf.level)
	if err != nil {
		return
	}
	if sess.cfg.Verbose {
		level = slog.LevelDebug
	}

	var console goio.Writer
	if !sf.noConsole {
		console = cmd.ErrOrStderr()
	}

	logger, closer, err := logs.New(logs.Options{
		Writer:    console,
		Level:     level,
		TracePath: sess.cfg.Trace,
		Journal:   sf.journal,
	})
	if err != nil {
		return
	}
	sess.closers = append(sess.closers, closer)
	sess.logger = logger.With("run", uuid.NewString()[:8])

	policy, err := sess.cfg.EOFPolicy()
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(sess.cfg.TapeSize)
	emu.Verbose = sess.cfg.Verbose || sess.cfg.Trace != ""
	emu.Logger = sess.logger
	emu.EOF = policy
	emu.Tape.Diagnostic = cmd.ErrOrStderr()
	sess.emu = emu

	switch sf.input {
	case "":
	case "-":
		emu.Tape.Input = io.NewFeed(cmd.InOrStdin())
	default:
		var inf *os.File
		inf, err = os.Open(sf.input)
		if err != nil {
			return
		}
		sess.closers = append(sess.closers, inf)
		emu.Tape.Input = inf
	}

	switch sf.output {
	case "-":
		emu.Tape.Output = cmd.OutOrStdout()
	default:
		var ouf *os.File
		ouf, err = os.Create(sf.output)
		if err != nil {
			return
		}
		sess.closers = append(sess.closers, ouf)
		emu.Tape.Output = ouf
	}

	return
}

// load reads the program at path. A missing, unreadable or empty program
// is a load failure.
func (sess *session) load(path string) (prog emulator.Program, err error) {
	prog, err = loader.LoadFile(path)
	if err == nil && prog.Len() == 0 {
		err = ErrProgramLoad
	}
	if err != nil {
		sess.logger.Error("load", "path", path, "error", err)
		err = &exitError{code: EXIT_LOAD, err: err}
	}

	return
}
