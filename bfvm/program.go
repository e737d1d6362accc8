package bfvm

import "strings"

// Program is the append-only instruction buffer. File sources arrive
// with comments already stripped; shell lines are appended verbatim
// and the comment symbol is handled at execution time.
type Program struct {
	code []byte
}

// LoadScripts strips line comments from the given script texts and
// concatenates them into a single program. Only the first source is
// used unless all is true. ok reports whether at least one source was
// supplied.
func LoadScripts(sources []string, all bool) (prog string, ok bool) {
	if len(sources) == 0 {
		return "", false
	}
	if !all {
		sources = sources[:1]
	}
	var b strings.Builder
	for _, src := range sources {
		for line := range strings.Lines(src) {
			line = strings.TrimSpace(line)
			line, _, _ = strings.Cut(line, string(SymComment))
			b.WriteString(line)
		}
	}
	return b.String(), true
}

func (p *Program) Append(text string) {
	p.code = append(p.code, text...)
}

func (p *Program) Len() int {
	return len(p.code)
}

// SymbolAt returns the symbol at index i, reporting false when i is
// out of range.
func (p *Program) SymbolAt(i int) (byte, bool) {
	if i < 0 || i >= len(p.code) {
		return 0, false
	}
	return p.code[i], true
}

func (p *Program) String() string {
	return string(p.code)
}
