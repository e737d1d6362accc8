package sessions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bfg/bfvm"
	"github.com/reusee/bfg/debugs"
	"github.com/reusee/bfg/logs"
)

// Session owns one VM and the mode flags chosen at startup. It feeds
// program text to the VM, prints the per-step trace and the end-of-run
// report, and applies the reset policy between executions.
type Session struct {
	strict      bool
	persistent  bool
	debug       bool
	interactive bool
	prompt      string

	vm      *bfvm.VM
	logger  logs.Logger
	newSpan logs.NewSpan
	tap     debugs.Tap
	trace   io.Writer
	stdout  io.Writer

	// program output withheld until Flush, active in traced batch runs
	accum *bytes.Buffer
}

// VM exposes the interpreter state, mainly for inspection and tests.
func (s *Session) VM() *bfvm.VM {
	return s.vm
}

func (s *Session) output(value byte) {
	if s.accum != nil {
		s.accum.WriteByte(value)
		return
	}
	if s.debug {
		fmt.Fprintf(s.stdout, "%c\n", value)
		return
	}
	fmt.Fprintf(s.stdout, "%c", value)
}

// RunScripts loads the given script texts into the program buffer and
// executes them as one batch. All sources are concatenated in order
// when the session is persistent, otherwise only the first one runs.
func (s *Session) RunScripts(ctx context.Context, sources []string) error {
	prog, ok := bfvm.LoadScripts(sources, s.persistent)
	if !ok {
		return nil
	}
	s.vm.Program.Append(prog)

	if err := s.execute(ctx); err != nil {
		return err
	}
	s.report()
	s.reset()
	return nil
}

// RunShell reads program lines until the source is exhausted,
// appending each to the program buffer and resuming execution exactly
// where the previous fragment halted. Tape, loop table, and program
// counter all carry over.
func (s *Session) RunShell(ctx context.Context, lines bfvm.LineSource) error {
	for {
		line, err := lines.ReadLine(s.prompt)
		if err != nil {
			// end of stream terminates the shell
			return nil
		}
		if strings.TrimSpace(line) == "%inspect" {
			s.inspect(ctx)
			continue
		}
		if line == "" {
			continue
		}

		s.vm.Program.Append(line)
		if err := s.execute(ctx); err != nil {
			s.logger.ErrorContext(ctx, "execution failed", "error", err)
			fmt.Fprintln(s.trace, err)
			// the faulty fragment cannot be resumed, start over
			s.vm.Reset()
			continue
		}
		s.report()
		s.reset()
	}
}

func (s *Session) execute(ctx context.Context) error {
	ctx, _ = s.newSpan(ctx, "")
	s.logger.DebugContext(ctx, "execute",
		"pc", s.vm.PC,
		"instructions", s.vm.Program.Len(),
	)

	for step, err := range s.vm.Run {
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if s.debug {
			fmt.Fprintf(s.trace, "PC: %3d ('%c'), PTR: *(%2d) = %3d\n",
				step.PC, step.Symbol, step.Ptr, step.Cell)
		}
	}
	return nil
}

// report prints the one-line end-of-run summary when tracing.
func (s *Session) report() {
	if !s.debug {
		return
	}
	fmt.Fprintf(s.trace, "Done with: %d instructions, %d steps, %d bytes\n",
		s.vm.Program.Len(), s.vm.Steps, s.vm.Tape.Size())
}

// reset applies the end-of-execution policy: a full wipe unless the
// session is persistent, in which case only the transient input
// remainder goes and everything else survives into the next execution.
func (s *Session) reset() {
	if s.persistent {
		s.vm.In.Clear()
		return
	}
	s.vm.Reset()
}

// Flush emits whatever output was withheld during execution: the
// accumulated program output of a traced batch run, or a final newline
// otherwise.
func (s *Session) Flush() {
	if s.accum != nil {
		fmt.Fprintln(s.trace, "Output:")
		fmt.Fprintln(s.stdout, s.accum.String())
		return
	}
	fmt.Fprintln(s.stdout)
}

func (s *Session) inspect(ctx context.Context) {
	s.tap(ctx, "shell", map[string]any{
		"pc":    s.vm.PC,
		"ptr":   s.vm.Tape.Ptr(),
		"cell":  s.vm.Tape.Read(),
		"cells": s.vm.Tape.Cells(),
		"loops": s.vm.Loops,
		"steps": s.vm.Steps,
	})
}
