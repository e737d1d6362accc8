package bfvm

// The eight instruction symbols, plus the comment markers. Any other
// symbol is inert.
const (
	SymLoopOpen  = '['
	SymLoopClose = ']'
	SymPtrLeft   = '<'
	SymPtrRight  = '>'
	SymByteDec   = '-'
	SymByteInc   = '+'
	SymInput     = ','
	SymOutput    = '.'
	SymComment   = '#'
	SymNewline   = '\n'
)

type OpCode uint8

const (
	OpNop OpCode = iota
	OpLoopOpen
	OpLoopClose
	OpPtrLeft
	OpPtrRight
	OpByteDec
	OpByteInc
	OpInput
	OpOutput
	OpComment
)

var opcodes = func() (ret [256]OpCode) {
	ret[SymLoopOpen] = OpLoopOpen
	ret[SymLoopClose] = OpLoopClose
	ret[SymPtrLeft] = OpPtrLeft
	ret[SymPtrRight] = OpPtrRight
	ret[SymByteDec] = OpByteDec
	ret[SymByteInc] = OpByteInc
	ret[SymInput] = OpInput
	ret[SymOutput] = OpOutput
	ret[SymComment] = OpComment
	return
}()

func opcodeFor(sym byte) OpCode {
	return opcodes[sym]
}
