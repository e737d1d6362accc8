package bfvm

// LoopTable caches matched bracket positions. Entries are symmetric:
// resolving either end records both directions, so repeated visits are
// O(1). The table persists together with the program buffer.
type LoopTable map[int]int

// Resolve returns the position of the bracket matching the one at pc,
// scanning the program on first encounter. Nesting is tracked with a
// counter; only the two loop symbols participate, anything else is
// skipped.
func (l LoopTable) Resolve(prog *Program, pc int) (int, error) {
	if match, ok := l[pc]; ok {
		return match, nil
	}

	sym, _ := prog.SymbolAt(pc)
	step := 1
	want := byte(SymLoopClose)
	if sym == SymLoopClose {
		step = -1
		want = SymLoopOpen
	}

	counter := 0
	for i := pc + step; ; i += step {
		s, ok := prog.SymbolAt(i)
		if !ok {
			break
		}
		switch s {
		case sym:
			// entering a nested loop
			counter++
		case want:
			if counter > 0 {
				counter--
				continue
			}
			l[pc] = i
			l[i] = pc
			return i, nil
		}
	}

	return 0, &SyntaxError{
		Pos:    pc,
		Symbol: sym,
	}
}
