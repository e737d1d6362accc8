package bfvm

// LineSource supplies one line of raw text at a time. ReadLine blocks
// until a line is available; end of stream is signalled by an error,
// there is no other way to unblock.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// Output consumes one decoded character of program output.
type Output func(value byte)

// InputBuffer hands out single characters from prompted lines,
// refilling from the line source when drained. The remainder of a
// partially consumed line feeds later input instructions of the same
// execution.
type InputBuffer struct {
	source LineSource
	prompt string
	remain []byte
}

func NewInputBuffer(source LineSource, prompt string) *InputBuffer {
	return &InputBuffer{
		source: source,
		prompt: prompt,
	}
}

// Next returns the next character. ok is false when the line source is
// exhausted, which halts the program rather than failing it. Empty
// lines carry no character and trigger another read.
func (b *InputBuffer) Next() (value byte, ok bool) {
	for len(b.remain) == 0 {
		line, err := b.source.ReadLine(b.prompt)
		if err != nil {
			return 0, false
		}
		b.remain = []byte(line)
	}
	value = b.remain[0]
	b.remain = b.remain[1:]
	return value, true
}

// Buffered reports how many characters remain from the last line.
func (b *InputBuffer) Buffered() int {
	return len(b.remain)
}

// Clear drops the buffered remainder. Sessions call it between
// executions, the remainder never crosses them.
func (b *InputBuffer) Clear() {
	b.remain = nil
}
