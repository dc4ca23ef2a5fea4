// Package config loads interpreter settings from a TOML file and the command line.
package config

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	// Prompt is shown before each line in interactive mode.
	Prompt string `toml:"prompt"`
	// HistoryFile keeps prompt history between sessions; empty disables it.
	HistoryFile string `toml:"history_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFile, when set, receives JSON log records in addition to stderr.
	LogFile string `toml:"log_file"`
	// Journal also sends log records to the systemd journal.
	Journal bool `toml:"journal"`
	// PrintAST prints every parsed statement before it runs.
	PrintAST bool `toml:"print_ast"`
}

func Default() Config {
	cfg := Config{
		Prompt:   "> ",
		LogLevel: "warn",
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".treelox_history")
	}

	return cfg
}

// Load decodes path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, "log level %q", c.LogLevel)
	}

	return level, nil
}

// Flags binds the command-line overrides for Config.
type Flags struct {
	fs     *flag.FlagSet
	path   string
	values Config
}

func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()

	fs.StringVar(&f.path, "config", "", "path to a TOML config file")
	fs.StringVar(&f.values.Prompt, "prompt", def.Prompt, "interactive prompt")
	fs.StringVar(&f.values.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&f.values.LogFile, "log-file", "", "also write JSON logs to this file")
	fs.BoolVar(&f.values.Journal, "journal", false, "also send logs to the systemd journal")
	fs.BoolVar(&f.values.PrintAST, "print-ast", false, "print each parsed statement before running it")

	return f
}

// Resolve loads the config file named by -config, if any, then applies
// the flags that were set explicitly. Call it after fs.Parse.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		var err error
		cfg, err = Load(f.path)
		if err != nil {
			return Config{}, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "prompt":
			cfg.Prompt = f.values.Prompt
		case "log-level":
			cfg.LogLevel = f.values.LogLevel
		case "log-file":
			cfg.LogFile = f.values.LogFile
		case "journal":
			cfg.Journal = f.values.Journal
		case "print-ast":
			cfg.PrintAST = f.values.PrintAST
		}
	})

	return cfg, cfg.Validate()
}
