// Package logs builds the interpreter's slog logger.
package logs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Options struct {
	// Level is shared by every handler; a *slog.LevelVar allows changing it later.
	Level slog.Leveler
	// Terminal receives human-readable records, normally stderr.
	Terminal io.Writer
	// File, when non-nil, receives JSON records.
	File io.Writer
	// Journal adds a systemd journal handler.
	Journal bool
}

func New(opts Options) *slog.Logger {
	var handlers []slog.Handler

	var terminalHandler slog.Handler
	if opts.Terminal != nil {
		terminalHandler = slog.NewTextHandler(opts.Terminal, &slog.HandlerOptions{
			Level: opts.Level,
		})
		handlers = append(handlers, terminalHandler)
	}

	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, &slog.HandlerOptions{
			Level: opts.Level,
		}))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: opts.Level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// toJournalKey maps a key to the journal's field charset: upper-case letters, digits and '_'.
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
