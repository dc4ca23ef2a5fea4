package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/havrydotdev/treelox/config"
	"github.com/havrydotdev/treelox/logs"
	"github.com/havrydotdev/treelox/lox"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("treelox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: treelox [flags] [script]")
		fs.PrintDefaults()
	}

	flags := config.NewFlags(fs)
	if err := fs.Parse(args); err != nil {
		return lox.ExitUsage
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return lox.ExitUsage
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return lox.ExitUsage
	}

	level := new(slog.LevelVar)
	lvl, _ := cfg.Level()
	level.Set(lvl)

	logOpts := logs.Options{Level: level, Terminal: stderr, Journal: cfg.Journal}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "open log file: %v\n", err)
			return lox.ExitIOErr
		}
		defer f.Close()

		logOpts.File = f
	}
	logger := logs.New(logOpts)

	runner := lox.NewRunner(lox.Options{
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		PrintAST: cfg.PrintAST,
	})

	if fs.NArg() == 1 {
		return runner.RunFile(fs.Arg(0))
	}

	rl, err := lox.NewReadline(cfg.Prompt, cfg.HistoryFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return lox.ExitIOErr
	}
	defer rl.Close()

	fmt.Fprintln(stdout, "Welcome to treelox!")
	runner.RunPrompt(rl)

	return lox.ExitOK
}
