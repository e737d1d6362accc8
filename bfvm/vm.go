package bfvm

// HaltReason tells how the last run ended.
type HaltReason uint8

const (
	HaltNone HaltReason = iota

	// the program counter ran off the end of the program
	HaltEndOfProgram

	// the input stream was exhausted while an input instruction was
	// waiting for data
	HaltInputEOF
)

// VM is the complete interpreter state: the program buffer, program
// counter, tape, loop table, input buffer, and step counter. A VM is
// owned by a single session and never shared; persistence across
// executions is a hand-off, not concurrent access.
type VM struct {
	Program *Program
	PC      int
	Tape    *Tape
	Loops   LoopTable
	In      *InputBuffer
	Out     Output
	Steps   int
	Halt    HaltReason

	strict   bool
	maxCells int
}

func NewVM(strict bool, maxCells int, in *InputBuffer, out Output) *VM {
	vm := &VM{
		In:       in,
		Out:      out,
		strict:   strict,
		maxCells: maxCells,
	}
	vm.Reset()
	return vm
}

// Reset discards the program, tape, loop table, counters, and any
// buffered input, giving the next execution a clean slate.
func (v *VM) Reset() {
	v.Program = new(Program)
	v.PC = 0
	v.Tape = NewTape(v.strict, v.maxCells)
	v.Loops = make(LoopTable)
	v.Steps = 0
	v.Halt = HaltNone
	if v.In != nil {
		v.In.Clear()
	}
}
