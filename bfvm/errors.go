package bfvm

import "fmt"

// SyntaxError reports a loop bracket with no matching partner.
type SyntaxError struct {
	Pos    int
	Symbol byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: dangling '%c' at position %d.", e.Symbol, e.Pos)
}

// Segfault reports an out-of-bounds data pointer.
type Segfault struct {
	Pos    int
	Symbol byte
	Reason error
}

func (e *Segfault) Error() string {
	return fmt.Sprintf("Segfault at instruction #%d ('%c'): %s", e.Pos, e.Symbol, e.Reason)
}

func (e *Segfault) Unwrap() error {
	return e.Reason
}
