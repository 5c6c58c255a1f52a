package pda

// Selection names the (transition, operation) pair chosen to fire.
type Selection struct {
	Transition     *Transition
	OperationIndex int
}

// Operation returns the selected operation.
func (s Selection) Operation() Operation {
	return s.Transition.Operations[s.OperationIndex]
}

// matches evaluates the guard predicate of an operation against the
// current input symbol and stack. Both halves must hold:
//   - input match: the operation consumes this symbol, or nothing
//   - stack match: the operation pops nothing, or the stack top equals
//     the pop guard (an empty stack never satisfies a non-epsilon pop)
func matches(op Operation, input Symbol, stack *Stack) bool {
	if in := op.InputSymbol(); in != Epsilon && in != input {
		return false
	}
	pop := op.PopSymbol()
	if pop == Epsilon {
		return true
	}
	top, ok := stack.Peek()
	return ok && pop == top
}

// eachMatch walks the transitions sourced at the given state in declaration
// order, and within each transition its operations in declaration order,
// invoking fn for every operation whose guard matches. Iteration stops when
// fn returns true. This first-match scan is the whole selection policy:
// there is no branching and no backtracking.
func (d *Definition) eachMatch(from string, input Symbol, stack *Stack, fn func(Selection) bool) {
	for _, tr := range d.Transitions {
		if tr.From != from {
			continue
		}
		for i, op := range tr.Operations {
			if !matches(op, input, stack) {
				continue
			}
			if fn(Selection{Transition: tr, OperationIndex: i}) {
				return
			}
		}
	}
}

// Select returns the first (transition, operation) sourced at the given
// state whose guard matches, or ok=false when no guard holds.
func (d *Definition) Select(from string, input Symbol, stack *Stack) (sel Selection, ok bool) {
	d.eachMatch(from, input, stack, func(s Selection) bool {
		sel, ok = s, true
		return true
	})
	return sel, ok
}
