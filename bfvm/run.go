package bfvm

// Step is the trace record for one executed instruction. Ptr and Cell
// are sampled after the instruction took effect.
type Step struct {
	PC     int
	Symbol byte
	Ptr    int
	Cell   byte
}

// Run drives the fetch-execute-advance loop from the current program
// counter, yielding one Step per executed instruction. SyntaxError and
// Segfault are yielded as values and terminate the run; reaching the
// end of the program or exhausting the input stream halts cleanly,
// with the reason left in v.Halt.
func (v *VM) Run(yield func(Step, error) bool) {
	v.Halt = HaltNone
	for {
		sym, ok := v.Program.SymbolAt(v.PC)
		if !ok {
			v.Halt = HaltEndOfProgram
			return
		}

		next := v.PC + 1
		var err error

		switch opcodeFor(sym) {

		case OpLoopOpen, OpLoopClose:
			match, rerr := v.Loops.Resolve(v.Program, v.PC)
			if rerr != nil {
				err = rerr
				break
			}
			cell := v.Tape.Read()
			if (sym == SymLoopOpen) == (cell == 0) {
				// skip or repeat the loop body
				next = match + 1
			}

		case OpPtrLeft:
			err = v.move(-1, sym)
		case OpPtrRight:
			err = v.move(1, sym)

		case OpByteDec:
			v.Tape.Adjust(-1)
		case OpByteInc:
			v.Tape.Adjust(1)

		case OpInput:
			value, ok := v.In.Next()
			if !ok {
				v.Halt = HaltInputEOF
				return
			}
			v.Tape.Write(value)
		case OpOutput:
			v.Out(v.Tape.Read())

		case OpComment:
			// shell lines keep their comments, skip to the end of the line
			for {
				s, ok := v.Program.SymbolAt(next)
				if !ok {
					break
				}
				next++
				if s == SymNewline {
					break
				}
			}

		case OpNop:
			// stray text advances
		}

		if err != nil {
			yield(Step{}, err)
			return
		}

		v.Steps++
		if !yield(Step{
			PC:     v.PC,
			Symbol: sym,
			Ptr:    v.Tape.Ptr(),
			Cell:   v.Tape.Read(),
		}, nil) {
			return
		}
		v.PC = next
	}
}

func (v *VM) move(delta int, sym byte) error {
	if err := v.Tape.Move(delta); err != nil {
		return &Segfault{
			Pos:    v.PC,
			Symbol: sym,
			Reason: err,
		}
	}
	return nil
}
