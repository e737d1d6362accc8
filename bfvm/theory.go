package bfvm

const Theory = `
# Theory of bfvm

bfvm is a minimal tape-machine interpreter built around four pieces of
state: an append-only program buffer, a program counter, a growable
byte tape with one pointer register, and a lazily built loop table.

## 1. Execution Model
Execution is a plain fetch-execute-advance loop exposed as an iterator:
each executed instruction yields a trace Step, and fatal conditions
(dangling bracket, out-of-bounds pointer) are yielded as error values
instead of being thrown. The caller decides whether a failure aborts
the whole run or only the current program unit.

## 2. Incremental Programs
The program buffer only ever grows. A halted VM whose counter sits at
the end of the buffer can be resumed after more text is appended; tape,
pointer, loop table, and step counter all carry over. This is what the
interactive shell builds on: every entered line is an append followed
by a resume.

## 3. Loop Table
Bracket matches are resolved on first encounter by a counting scan in
the bracket's direction and cached symmetrically, so loops cost a scan
once and O(1) afterwards. The table lives exactly as long as the
program buffer it indexes into.

## 4. Memory
The tape starts at a single cell and grows by one whenever the pointer
oversteps it; since the pointer moves one cell at a time, growth always
keeps pace. Strict mode replaces growth with a fixed arena of the
language-standard 30000 cells and treats overstepping as a fault.
Cell arithmetic wraps at the byte range boundaries using the reference
interpreter's exact formula, including its asymmetric top end.
`
