package pda

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pda-sim/pda-sim/pda/trace"
)

// Phase is the driver's lifecycle state.
type Phase int

const (
	// PhaseNotStarted is the initial phase, restored by Reset.
	PhaseNotStarted Phase = iota
	// PhaseRunning means the step loop is live.
	PhaseRunning
	// PhaseFinished means the run halted with a verdict.
	PhaseFinished
	// PhaseStopped means the run was cancelled externally or hit the step
	// ceiling. It halts the loop exactly like PhaseFinished, but a stop
	// carries no accept/reject verdict.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// StopCause explains why a run ended in PhaseStopped.
type StopCause string

const (
	// CauseCancelled means Stop was called or the run context was done.
	CauseCancelled StopCause = "cancelled"
	// CauseStepLimit means the configured MaxSteps ceiling was reached.
	// The ceiling is an optional guard against automata that loop forever
	// without consuming input; the engine itself does not detect
	// non-termination.
	CauseStepLimit StopCause = "step limit reached"
)

// Verdict is the final result of a run.
type Verdict string

const (
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
	VerdictStopped  Verdict = "stopped"
)

// Result summarizes a finished run.
type Result struct {
	RunID   string
	Verdict Verdict
	Reason  string
	Steps   int
}

// Config carries the driver's pacing and observation policy. The zero
// value is a headless run: no delay, no step ceiling, no observers.
type Config struct {
	// Delay is the pause between steps. Its sole purpose is pacing
	// external observation; it has no bearing on correctness.
	Delay time.Duration
	// MaxSteps stops the run after this many steps. Zero disables the
	// ceiling.
	MaxSteps int
	// Observers receive observation events synchronously.
	Observers []Observer
	// Trace, when non-nil and not at LevelNone, records every step and
	// the run verdict.
	Trace *trace.RunTrace
}

// Driver owns the run loop around a Machine: the phase machine, pacing,
// cancellation, and trace recording. The Machine itself stays free of
// timing concerns.
type Driver struct {
	machine *Machine
	cfg     Config

	phase     Phase
	steps     int
	runID     string
	last      Outcome
	stopCause StopCause
	stopReq   atomic.Bool
}

// NewDriver creates a driver for one definition/word pair.
func NewDriver(def *Definition, word string, cfg Config) *Driver {
	m := NewMachine(def, word)
	m.Observers = ObserverList(cfg.Observers)
	return &Driver{machine: m, cfg: cfg}
}

// Machine exposes the underlying machine for observation and testing.
func (d *Driver) Machine() *Machine {
	return d.machine
}

// Phase returns the driver's current lifecycle phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// RunID returns the identifier of the current (or last) run. Empty before
// the first Start.
func (d *Driver) RunID() string {
	return d.runID
}

// Start begins a new run. Valid from NotStarted, Finished, or Stopped;
// starting over a finished run implicitly resets. Starting while Running
// is rejected.
func (d *Driver) Start() error {
	if d.phase == PhaseRunning {
		return ErrAlreadyRunning
	}
	d.machine.Init()
	d.machine.Status.Started = true
	d.runID = uuid.NewString()
	d.machine.runID = d.runID
	d.steps = 0
	d.last = Outcome{Kind: OutcomeNone, OperationIndex: -1}
	d.stopCause = ""
	d.stopReq.Store(false)
	d.phase = PhaseRunning
	logrus.Debugf("run %s started on word %q", d.runID, d.machine.Status.Word())
	return nil
}

// Stop requests cancellation of a running run. The request is cooperative:
// it is honored at the next suspension point, not pre-emptively mid-step.
// Calling Stop in any other phase is a no-op.
func (d *Driver) Stop() {
	if d.phase == PhaseRunning {
		d.stopReq.Store(true)
	}
}

// Reset re-initializes the machine and returns the driver to NotStarted.
// Valid from any phase, and idempotent.
func (d *Driver) Reset() {
	d.machine.Init()
	d.steps = 0
	d.last = Outcome{Kind: OutcomeNone, OperationIndex: -1}
	d.stopCause = ""
	d.stopReq.Store(false)
	d.phase = PhaseNotStarted
}

// StepOnce executes a single step under the driver's policy: honoring a
// pending stop request, enforcing the step ceiling, and recording the
// trace. Returns OutcomeNone when the driver is not running.
func (d *Driver) StepOnce() Outcome {
	if d.phase != PhaseRunning {
		return Outcome{Kind: OutcomeNone, OperationIndex: -1}
	}
	if d.stopReq.Load() {
		d.halt(CauseCancelled)
		return Outcome{Kind: OutcomeNone, OperationIndex: -1}
	}
	if d.cfg.MaxSteps > 0 && d.steps >= d.cfg.MaxSteps {
		d.halt(CauseStepLimit)
		return Outcome{Kind: OutcomeNone, OperationIndex: -1}
	}

	// Capture the pre-step cursor for the trace record.
	stateID := ""
	if cur := d.machine.Status.Current; cur != nil {
		stateID = cur.ID
	}
	inputIndex := d.machine.Status.InputIndex
	symbol := d.machine.Status.CurrentSymbol()

	out := d.machine.Step()
	d.steps++
	d.last = out

	d.recordStep(stateID, inputIndex, symbol, out)

	if out.Kind == OutcomeAccepted || out.Kind == OutcomeRejected {
		d.phase = PhaseFinished
		d.recordRun()
	}
	return out
}

// Run drives the step loop until the run halts, the context is done, or a
// stop is requested. The inter-step delay, when configured, gives external
// observers a chance to sample intermediate state; a headless caller
// leaves it at zero.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	if d.phase != PhaseRunning {
		if err := d.Start(); err != nil {
			return Result{}, err
		}
	}

	for d.phase == PhaseRunning {
		d.StepOnce()
		if d.phase != PhaseRunning {
			break
		}
		if err := d.pause(ctx); err != nil {
			d.halt(CauseCancelled)
			break
		}
	}

	return d.result(), nil
}

// pause suspends between steps for the configured delay, honoring context
// cancellation. With zero delay it still checks the context once.
func (d *Driver) pause(ctx context.Context) error {
	if d.cfg.Delay <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(d.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// halt moves the driver to PhaseStopped: the stack is reset, observers are
// told to clear transient highlighting, and the trace records a stopped
// run. A stop is a cancellation, not a verdict.
func (d *Driver) halt(cause StopCause) {
	d.machine.Stack.Reset()
	d.stopCause = cause
	d.phase = PhaseStopped
	d.machine.emit(Event{Kind: EventRunStopped, Reason: string(cause)})
	logrus.Debugf("run %s stopped: %s", d.runID, cause)
	d.recordRun()
}

func (d *Driver) result() Result {
	res := Result{RunID: d.runID, Steps: d.steps}
	switch {
	case d.phase == PhaseStopped:
		res.Verdict = VerdictStopped
		res.Reason = string(d.stopCause)
	case d.last.Kind == OutcomeAccepted:
		res.Verdict = VerdictAccepted
		res.Reason = d.last.Reason
	default:
		res.Verdict = VerdictRejected
		res.Reason = d.last.Reason
	}
	return res
}

func (d *Driver) recordStep(stateID string, inputIndex int, symbol Symbol, out Outcome) {
	t := d.cfg.Trace
	if t == nil || t.Level() != trace.LevelSteps {
		return
	}
	snapshot := d.machine.Stack.Snapshot()
	stack := make([]string, len(snapshot))
	for i, s := range snapshot {
		stack[i] = string(s)
	}
	t.RecordStep(trace.StepRecord{
		RunID:          d.runID,
		Index:          d.steps - 1,
		StateID:        stateID,
		InputIndex:     inputIndex,
		Symbol:         string(symbol),
		TransitionID:   out.TransitionID,
		OperationIndex: out.OperationIndex,
		Outcome:        string(out.Kind),
		Reason:         out.Reason,
		Stack:          stack,
	})
}

func (d *Driver) recordRun() {
	t := d.cfg.Trace
	if t == nil || t.Level() == trace.LevelNone {
		return
	}
	res := d.result()
	t.RecordRun(trace.RunRecord{
		RunID:      d.runID,
		Definition: d.machine.Def.Name,
		Word:       d.machine.Status.Word(),
		Verdict:    string(res.Verdict),
		Reason:     res.Reason,
		Steps:      d.steps,
	})
}
