package pda

// EventKind names one kind of observation event.
type EventKind string

const (
	// EventStateActivated reports that a state became the active one,
	// emitted at the start of each step and again after a move.
	EventStateActivated EventKind = "state_activated"
	// EventTransitionFired reports the (transition, operation) pair that
	// fired during a step.
	EventTransitionFired EventKind = "transition_fired"
	// EventStepCompleted reports the outcome of a finished step.
	EventStepCompleted EventKind = "step_completed"
	// EventRunAccepted reports an accepting halt, with its reason.
	EventRunAccepted EventKind = "run_accepted"
	// EventRunRejected reports a non-accepting halt, with its reason.
	EventRunRejected EventKind = "run_rejected"
	// EventRunStopped reports an external cancellation or a step-ceiling
	// halt. A stop is not a verdict: no accept/reject was reached.
	EventRunStopped EventKind = "run_stopped"
)

// Event is one observation emitted by the engine. Fields beyond Kind and
// RunID are populated per kind; identifiers are stable so observers can
// key presentation state (highlighting) externally without the engine's
// entities carrying any of it.
type Event struct {
	RunID          string
	Kind           EventKind
	StateID        string
	TransitionID   string
	OperationIndex int
	Outcome        OutcomeKind
	Reason         string
}

// Observer receives observation events between and within steps.
// Implementations must not block: the engine delivers events synchronously
// on its single thread of control.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(ev Event) { f(ev) }

// ObserverList fans one event out to several observers in order.
type ObserverList []Observer

// Observe implements Observer.
func (l ObserverList) Observe(ev Event) {
	for _, o := range l {
		o.Observe(ev)
	}
}
