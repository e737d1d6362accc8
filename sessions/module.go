package sessions

import (
	"bytes"
	"io"
	"os"

	"github.com/reusee/bfg/bfvm"
	"github.com/reusee/bfg/configs"
	"github.com/reusee/bfg/debugs"
	"github.com/reusee/bfg/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Stdout receives the decoded program output. Trace lines and reports
// go to logs.Writer instead.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// Options are the flags chosen once at startup. Interactive implies
// persistent and debug.
type Options struct {
	Strict      bool
	Persistent  bool
	Debug       bool
	Interactive bool

	// raw input line source for the input instruction
	Input bfvm.LineSource
}

type New func(opts Options) *Session

func (Module) New(
	logger logs.Logger,
	newSpan logs.NewSpan,
	trace logs.Writer,
	stdout Stdout,
	settings configs.Settings,
	tap debugs.Tap,
) New {
	return func(opts Options) *Session {
		s := &Session{
			strict:      opts.Strict,
			persistent:  opts.Persistent || opts.Interactive,
			debug:       opts.Debug || opts.Interactive,
			interactive: opts.Interactive,
			prompt:      settings.Shell.Prompt,
			logger:      logger,
			newSpan:     newSpan,
			tap:         tap,
			trace:       trace,
			stdout:      stdout,
		}
		if s.debug && !s.interactive {
			s.accum = new(bytes.Buffer)
		}
		in := bfvm.NewInputBuffer(opts.Input, settings.Shell.InputPrompt)
		s.vm = bfvm.NewVM(s.strict, settings.Tape.MaxCells, in, s.output)
		return s
	}
}
