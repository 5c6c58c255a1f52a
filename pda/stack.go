// Implements the simulation Stack, the LIFO symbol memory of the automaton.
// The Stack itself enforces no guard discipline: popping an empty stack
// reports failure and callers are expected to check first. Guard checks
// live in the step executor.

package pda

import "strings"

// Stack is an ordered sequence of symbols, bottom first. A fresh Stack is
// empty; the bottom marker is pushed by the driver at run initialization,
// not by the Stack itself.
type Stack struct {
	symbols []Symbol
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{symbols: make([]Symbol, 0, 16)}
}

// Reset discards all symbols.
func (s *Stack) Reset() {
	s.symbols = s.symbols[:0]
}

// Push appends a symbol to the top of the stack.
func (s *Stack) Push(sym Symbol) {
	s.symbols = append(s.symbols, sym)
}

// Pop removes and returns the top symbol. The second return value is false
// if the stack is empty; no error is raised.
func (s *Stack) Pop() (Symbol, bool) {
	if len(s.symbols) == 0 {
		return Epsilon, false
	}
	top := s.symbols[len(s.symbols)-1]
	s.symbols = s.symbols[:len(s.symbols)-1]
	return top, true
}

// Peek returns the top symbol without removing it. The second return value
// is false if the stack is empty.
func (s *Stack) Peek() (Symbol, bool) {
	if len(s.symbols) == 0 {
		return Epsilon, false
	}
	return s.symbols[len(s.symbols)-1], true
}

// Len returns the number of symbols on the stack.
func (s *Stack) Len() int {
	return len(s.symbols)
}

// Empty reports whether the stack holds no symbols at all.
func (s *Stack) Empty() bool {
	return len(s.symbols) == 0
}

// Contains reports whether the given symbol is present anywhere on the
// stack. Used for the idempotent bottom-marker reinsertion rule.
func (s *Stack) Contains(sym Symbol) bool {
	for _, x := range s.symbols {
		if x == sym {
			return true
		}
	}
	return false
}

// EffectivelyEmpty reports whether the stack is empty or holds only the
// bottom marker. This is the "empty stack" acceptance condition.
func (s *Stack) EffectivelyEmpty() bool {
	if len(s.symbols) == 0 {
		return true
	}
	return len(s.symbols) == 1 && s.symbols[0] == BottomMarker
}

// Snapshot returns a copy of the stack contents, bottom to top.
func (s *Stack) Snapshot() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// String renders the stack bottom to top, e.g. "[$ A B]".
func (s *Stack) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, sym := range s.symbols {
		sb.WriteString(string(sym))
		if i < len(s.symbols)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
