package config

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "treelox.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

var ignoreHistory = cmpopts.IgnoreFields(Config{}, "HistoryFile")

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
prompt = "lox> "
log_level = "debug"
print_ast = true
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{Prompt: "lox> ", LogLevel: "debug", PrintAST: true}
	if diff := cmp.Diff(want, got, ignoreHistory); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `colour = "blue"`},
		{"bad level", `log_level = "loud"`},
		{"bad syntax", `prompt = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	} {
		got, err := Config{LogLevel: in}.Level()
		if err != nil || got != want {
			t.Errorf("Level(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
prompt = "file> "
log_level = "info"
journal = true
`)

	fs := flag.NewFlagSet("treelox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := NewFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-log-level", "error", "-print-ast", "script.lox"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := flags.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := Config{Prompt: "file> ", LogLevel: "error", Journal: true, PrintAST: true}
	if diff := cmp.Diff(want, got, ignoreHistory); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"script.lox"}, fs.Args()); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagsWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("treelox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := NewFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := flags.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
