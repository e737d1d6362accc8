package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/bfg/configs"
	"github.com/reusee/bfg/sessions"
)

func runShell(
	ctx context.Context,
	newSession sessions.New,
	settings configs.Settings,
	strict bool,
) {
	historyFile := settings.Shell.HistoryFile
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".bfg_history")
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      settings.Shell.Prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	source := readlineSource{rl: rl}
	session := newSession(sessions.Options{
		Strict:      strict,
		Interactive: true,
		Input:       source,
	})
	if err := session.RunShell(ctx, source); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	session.Flush()
}

// readlineSource serves both the program prompt and the input
// instruction prompt from the same line editor.
type readlineSource struct {
	rl *readline.Instance
}

func (s readlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if err != nil {
		// Ctrl-C or Ctrl-D
		return "", io.EOF
	}
	return line, nil
}
