package pda

import "github.com/sirupsen/logrus"

// OutcomeKind classifies the result of one step.
type OutcomeKind string

const (
	// OutcomeNone means the step was a no-op: the run has not started or
	// has already finished.
	OutcomeNone OutcomeKind = "none"
	// OutcomeMoved means a transition fired.
	OutcomeMoved OutcomeKind = "moved"
	// OutcomeAccepted means no transition fired and an acceptance
	// condition held.
	OutcomeAccepted OutcomeKind = "accepted"
	// OutcomeRejected means no transition fired and no acceptance
	// condition held. The engine does not distinguish "stuck" from
	// "rejected": any non-accepting halt is a rejection.
	OutcomeRejected OutcomeKind = "rejected"
)

// Acceptance and rejection reasons. The two acceptance conditions are
// independent alternatives: either one suffices.
const (
	ReasonFinalState   = "final state"
	ReasonEmptyStack   = "empty stack"
	ReasonNoTransition = "no applicable transition, or end conditions unmet"
)

// Outcome is the result of one step. All "failure" during normal execution
// is modeled as an Outcome, never as an error or a panic.
type Outcome struct {
	Kind           OutcomeKind
	TransitionID   string
	OperationIndex int
	Reason         string
}

// Machine bundles one run's moving parts: the read-only definition, the
// mutable cursor, and the stack. It executes single steps; pacing,
// cancellation, and the phase machine live in Driver.
type Machine struct {
	Def       *Definition
	Status    *Status
	Stack     *Stack
	Observers ObserverList

	runID string
}

// NewMachine creates an initialized Machine for the given word.
func NewMachine(def *Definition, word string) *Machine {
	m := &Machine{
		Def:    def,
		Status: NewStatus(word),
		Stack:  NewStack(),
	}
	m.Init()
	return m
}

// Init resets the machine to its initial configuration: empty stack with
// the bottom marker, cursor at the first input symbol, current state set
// to the start state. A definition without a start flag falls back to the
// first declared state; that fallback masks a malformed definition, so it
// is logged instead of applied silently.
func (m *Machine) Init() {
	m.Stack.Reset()
	m.Stack.Push(BottomMarker)

	start, fellBack := m.Def.StartState()
	if fellBack && start != nil {
		logrus.Warnf("definition %q has no start state; falling back to first declared state %q",
			m.Def.Name, start.ID)
	}
	m.Status.Current = start
	m.Status.InputIndex = 0
	m.Status.Started = false
	m.Status.Finished = false
}

func (m *Machine) emit(ev Event) {
	ev.RunID = m.runID
	m.Observers.Observe(ev)
}

// Step executes one simulation step: select the first matching transition,
// apply its stack effect, advance the input, and move to the destination
// state — or, when no guard holds, evaluate the termination policy and
// finish the run. A machine that is not started or already finished
// returns OutcomeNone immediately.
func (m *Machine) Step() Outcome {
	if !m.Status.Started || m.Status.Finished {
		return Outcome{Kind: OutcomeNone, OperationIndex: -1}
	}

	cur := m.Status.Current
	m.emit(Event{Kind: EventStateActivated, StateID: cur.ID})

	symbol := m.Status.CurrentSymbol()

	var (
		out   Outcome
		fired bool
	)
	m.Def.eachMatch(cur.ID, symbol, m.Stack, func(sel Selection) bool {
		op := sel.Operation()
		if !m.applyPop(op) {
			// The selector's match predicate should make this
			// unreachable; degrade to a no-effect guard failure
			// and keep scanning rather than fault.
			logrus.Warnf("transition %s op %d: pop guard %q failed against stack %s",
				sel.Transition.ID, sel.OperationIndex, op.Pop, m.Stack)
			return false
		}
		m.applyPush(op)
		if op.InputSymbol() != Epsilon {
			m.Status.advance()
		}

		dest := m.Def.StateByID(sel.Transition.To)
		if dest == nil {
			logrus.Errorf("transition %s targets unknown state %q; halting run",
				sel.Transition.ID, sel.Transition.To)
			out = m.terminate()
			fired = true
			return true
		}
		m.Status.Current = dest

		m.emit(Event{
			Kind:           EventTransitionFired,
			TransitionID:   sel.Transition.ID,
			OperationIndex: sel.OperationIndex,
		})
		m.emit(Event{Kind: EventStateActivated, StateID: dest.ID})

		out = Outcome{
			Kind:           OutcomeMoved,
			TransitionID:   sel.Transition.ID,
			OperationIndex: sel.OperationIndex,
		}
		fired = true
		return true
	})

	if !fired {
		out = m.terminate()
	}

	m.emit(Event{Kind: EventStepCompleted, Outcome: out.Kind, Reason: out.Reason})
	return out
}

// applyPop performs the pop phase of a matched operation. It re-checks the
// guard defensively: the stack must be non-empty and the top must equal
// the pop symbol, except that a bottom-marker guard pops whatever is on
// top. On failure nothing is popped and false is returned.
func (m *Machine) applyPop(op Operation) bool {
	pop := op.PopSymbol()
	if pop == Epsilon {
		return true
	}
	top, ok := m.Stack.Peek()
	if !ok {
		return false
	}
	if top != pop && pop != BottomMarker {
		return false
	}
	m.Stack.Pop()
	return true
}

// applyPush performs the push phase: push symbols left to right, so the
// last one ends up on top. The bottom marker is reinserted idempotently —
// pushed only if it is not already present anywhere on the stack.
func (m *Machine) applyPush(op Operation) {
	for _, sym := range op.PushSymbols() {
		if sym == BottomMarker && m.Stack.Contains(BottomMarker) {
			continue
		}
		m.Stack.Push(sym)
	}
}

// terminate evaluates the termination policy once no transition fires, in
// priority order: accept by final state, accept by empty stack, otherwise
// reject. It marks the run finished in every case.
func (m *Machine) terminate() Outcome {
	m.Status.Finished = true

	atEnd := m.Status.AtEnd()
	cur := m.Status.Current

	if cur != nil && cur.Accepting && atEnd {
		logrus.Debugf("run accepted: %s", ReasonFinalState)
		m.emit(Event{Kind: EventRunAccepted, Reason: ReasonFinalState})
		return Outcome{Kind: OutcomeAccepted, OperationIndex: -1, Reason: ReasonFinalState}
	}
	if atEnd && m.Stack.EffectivelyEmpty() {
		logrus.Debugf("run accepted: %s", ReasonEmptyStack)
		m.emit(Event{Kind: EventRunAccepted, Reason: ReasonEmptyStack})
		return Outcome{Kind: OutcomeAccepted, OperationIndex: -1, Reason: ReasonEmptyStack}
	}

	logrus.Debugf("run rejected: %s", ReasonNoTransition)
	m.emit(Event{Kind: EventRunRejected, Reason: ReasonNoTransition})
	return Outcome{Kind: OutcomeRejected, OperationIndex: -1, Reason: ReasonNoTransition}
}
