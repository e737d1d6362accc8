package configs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestSettingsDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		// no config files present
		func() SearchPaths {
			return nil
		},
	).Call(func(
		settings Settings,
	) {
		if settings.Tape.MaxCells != 30*1000 {
			t.Fatalf("got %d", settings.Tape.MaxCells)
		}
		if settings.Shell.Prompt != " > " {
			t.Fatalf("got %q", settings.Shell.Prompt)
		}
		if settings.Shell.InputPrompt != "\n?> " {
			t.Fatalf("got %q", settings.Shell.InputPrompt)
		}
		if settings.Strict || settings.Persistent || settings.Debug {
			t.Fatal()
		}
	})
}

func TestSettingsFromFile(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() SearchPaths {
			return SearchPaths{"test.cue", "test2.cue"}
		},
	).Call(func(
		settings Settings,
	) {
		if settings.Tape.MaxCells != 4096 {
			t.Fatalf("got %d", settings.Tape.MaxCells)
		}
		if settings.Shell.Prompt != ">> " {
			t.Fatalf("got %q", settings.Shell.Prompt)
		}
		if settings.Shell.HistoryFile != "/tmp/bfg_history" {
			t.Fatalf("got %q", settings.Shell.HistoryFile)
		}
		if !settings.Strict {
			t.Fatal()
		}
		if !settings.Debug {
			t.Fatal()
		}
	})
}
