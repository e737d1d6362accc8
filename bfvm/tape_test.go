package bfvm

import (
	"errors"
	"testing"
)

func TestTapeWraparound(t *testing.T) {
	tape := NewTape(false, 0)

	// underflow: 0 - 1 wraps to 255
	tape.Adjust(-1)
	if v := tape.Read(); v != 255 {
		t.Fatalf("got %d", v)
	}

	// overflow: 255 + 1 stays at 255, the reference formula is
	// asymmetric and this behavior is kept
	tape.Adjust(1)
	if v := tape.Read(); v != 255 {
		t.Fatalf("got %d", v)
	}
}

func TestTapeLazyGrowth(t *testing.T) {
	tape := NewTape(false, 0)
	if tape.Size() != 1 {
		t.Fatalf("got %d", tape.Size())
	}

	for i := range 10 {
		if err := tape.Move(1); err != nil {
			t.Fatal(err)
		}
		if tape.Ptr() != i+1 {
			t.Fatalf("got %d", tape.Ptr())
		}
		// growth keeps pace with the pointer
		if tape.Ptr() >= tape.Size() {
			t.Fatalf("ptr %d size %d", tape.Ptr(), tape.Size())
		}
	}
	if tape.Size() != 11 {
		t.Fatalf("got %d", tape.Size())
	}
}

func TestTapeNegativePointer(t *testing.T) {
	tape := NewTape(false, 0)
	err := tape.Move(-1)
	if !errors.Is(err, ErrNegativePointer) {
		t.Fatalf("got %v", err)
	}
}

func TestTapeStrict(t *testing.T) {
	tape := NewTape(true, 3)
	if tape.Size() != 3 {
		t.Fatalf("got %d", tape.Size())
	}

	if err := tape.Move(1); err != nil {
		t.Fatal(err)
	}
	if err := tape.Move(1); err != nil {
		t.Fatal(err)
	}
	err := tape.Move(1)
	if !errors.Is(err, ErrAboveMaximum) {
		t.Fatalf("got %v", err)
	}

	// the default strict capacity is the language standard value
	tape = NewTape(true, 0)
	if tape.Size() != MaxCells {
		t.Fatalf("got %d", tape.Size())
	}
}

func TestTapeReadWrite(t *testing.T) {
	tape := NewTape(false, 0)
	tape.Write(65)
	if v := tape.Read(); v != 65 {
		t.Fatalf("got %d", v)
	}
	if len(tape.Cells()) != 1 || tape.Cells()[0] != 65 {
		t.Fatalf("got %v", tape.Cells())
	}
}
