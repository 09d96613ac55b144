// Package logs builds the structured logger for the interpreter.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the log destinations.
type Options struct {
	Writer    io.Writer  // Terminal destination, text format. nil for none.
	Level     slog.Level // Minimum level for Writer and Journal.
	TracePath string     // JSON trace file, at debug level. Empty for none.
	Journal   bool       // Also log to the systemd journal, if available.
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger fanning out to every destination in opts.
// The returned closer closes the trace file, if any.
func New(opts Options) (logger *slog.Logger, closer io.Closer, err error) {
	var handlers []slog.Handler
	closer = nopCloser{}

	var terminalHandler slog.Handler
	if opts.Writer != nil {
		terminalHandler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
			Level: opts.Level,
		})
		handlers = append(handlers, terminalHandler)
	}

	if opts.TracePath != "" {
		var trace *os.File
		trace, err = os.Create(opts.TracePath)
		if err != nil {
			return
		}
		closer = trace
		handlers = append(handlers, slog.NewJSONHandler(trace, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	if opts.Journal {
		journalHandler, jerr := slogjournal.NewHandler(&slogjournal.Options{
			Level: opts.Level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if jerr != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", jerr)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	logger = slog.New(slogmulti.Fanout(handlers...))
	return
}

// ParseLevel returns the level named by text: debug, info, warn or error.
func ParseLevel(text string) (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(text))
	return
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
