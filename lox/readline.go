package lox

import (
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// NewReadline opens the terminal line editor used by the prompt.
func NewReadline(prompt, historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open line editor")
	}

	return rl, nil
}
