package bfvm

import (
	"errors"
	"testing"
)

func TestLoopTableSymmetry(t *testing.T) {
	prog := new(Program)
	prog.Append("+[>[-]<]")

	loops := make(LoopTable)
	match, err := loops.Resolve(prog, 1)
	if err != nil {
		t.Fatal(err)
	}
	if match != 7 {
		t.Fatalf("got %d", match)
	}
	// both directions are recorded
	if loops[7] != 1 {
		t.Fatalf("got %v", loops)
	}

	// resolving the other end reuses the entry
	match, err = loops.Resolve(prog, 7)
	if err != nil {
		t.Fatal(err)
	}
	if match != 1 {
		t.Fatalf("got %d", match)
	}

	// the nested pair resolves independently
	match, err = loops.Resolve(prog, 3)
	if err != nil {
		t.Fatal(err)
	}
	if match != 5 {
		t.Fatalf("got %d", match)
	}
}

func TestLoopTableBackwardScan(t *testing.T) {
	prog := new(Program)
	prog.Append("[[-]]")

	loops := make(LoopTable)
	match, err := loops.Resolve(prog, 4)
	if err != nil {
		t.Fatal(err)
	}
	if match != 0 {
		t.Fatalf("got %d", match)
	}
	if loops[0] != 4 {
		t.Fatalf("got %v", loops)
	}
}

func TestLoopTableDangling(t *testing.T) {
	for _, code := range []string{"[", "]"} {
		prog := new(Program)
		prog.Append(code)

		loops := make(LoopTable)
		_, err := loops.Resolve(prog, 0)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("got %v", err)
		}
		if syntaxErr.Pos != 0 {
			t.Fatalf("got %d", syntaxErr.Pos)
		}
		if syntaxErr.Symbol != code[0] {
			t.Fatalf("got %c", syntaxErr.Symbol)
		}
		want := "Syntax error: dangling '" + code + "' at position 0."
		if err.Error() != want {
			t.Fatalf("got %q", err.Error())
		}
	}
}
