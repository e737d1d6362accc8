package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/bfg/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Settings are the interpreter defaults read from bfg.cue files.
// Command line flags override them.
type Settings struct {
	Tape struct {
		// strict mode capacity, the language standard 30k when unset
		MaxCells int `json:"maxCells"`
	} `json:"tape"`
	Shell struct {
		Prompt      string `json:"prompt"`
		InputPrompt string `json:"inputPrompt"`
		HistoryFile string `json:"historyFile"`
	} `json:"shell"`
	Strict     bool `json:"strict"`
	Persistent bool `json:"persistent"`
	Debug      bool `json:"debug"`
}

var settingsSchema = `
tape?: {
	maxCells?: int & >0
}
shell?: {
	prompt?: string
	inputPrompt?: string
	historyFile?: string
}
strict?: bool
persistent?: bool
debug?: bool
`

type SearchPaths []string

func (Module) SearchPaths() SearchPaths {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bfg", "bfg.cue"))
	}
	paths = append(paths, "bfg.cue")
	// the loader treats a missing file as an error, keep existing ones only
	var existing SearchPaths
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}

func (Module) Loader(
	paths SearchPaths,
) Loader {
	return NewLoader(paths, settingsSchema)
}

func (Module) Settings(
	loader Loader,
) Settings {
	var settings Settings
	settings.Tape.MaxCells = vars.FirstNonZero(
		First[int](loader, "tape.maxCells"),
		30*1000,
	)
	settings.Shell.Prompt = vars.FirstNonZero(
		First[string](loader, "shell.prompt"),
		" > ",
	)
	settings.Shell.InputPrompt = vars.FirstNonZero(
		First[string](loader, "shell.inputPrompt"),
		"\n?> ",
	)
	settings.Shell.HistoryFile = First[string](loader, "shell.historyFile")
	settings.Strict = First[bool](loader, "strict")
	settings.Persistent = First[bool](loader, "persistent")
	settings.Debug = First[bool](loader, "debug")
	return settings
}
