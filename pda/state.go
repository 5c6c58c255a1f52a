package pda

// Status is the mutable simulation cursor over an immutable Definition:
// the current state, the input position, and the started/finished flags.
// It is created at run start and mutated only by the step executor.
type Status struct {
	// Current is the state the automaton occupies. Nil only before the
	// first initialization.
	Current *State

	word       []Symbol
	InputIndex int

	// Started is set by the driver when a run begins; Step is a no-op
	// until then.
	Started bool

	// Finished is monotonic: once true, no further steps execute until
	// the next reset.
	Finished bool
}

// NewStatus creates a Status over the given input word. The word is split
// into per-rune symbols once, up front.
func NewStatus(word string) *Status {
	return &Status{word: SplitSymbols(word)}
}

// CurrentSymbol derives the symbol under the input cursor: word[index], or
// Epsilon once the cursor has consumed the whole word.
func (st *Status) CurrentSymbol() Symbol {
	if st.InputIndex < len(st.word) {
		return st.word[st.InputIndex]
	}
	return Epsilon
}

// AtEnd reports whether the whole input word has been consumed.
func (st *Status) AtEnd() bool {
	return st.InputIndex >= len(st.word)
}

// Word returns the input word as a plain string.
func (st *Status) Word() string {
	return JoinSymbols(st.word)
}

// advance moves the input cursor one symbol forward. The cursor never
// moves past the end of the word and never decreases.
func (st *Status) advance() {
	if st.InputIndex < len(st.word) {
		st.InputIndex++
	}
}
