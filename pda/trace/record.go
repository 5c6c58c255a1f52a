// Package trace provides run-trace recording for pushdown-automaton
// simulations. This package has no dependencies on pda/ — it stores pure
// data types keyed by stable state/transition identifiers.
package trace

// StepRecord captures one executed simulation step.
type StepRecord struct {
	RunID          string   `json:"run_id"`
	Index          int      `json:"index"`
	StateID        string   `json:"state"`
	InputIndex     int      `json:"input_index"`
	Symbol         string   `json:"symbol,omitempty"` // empty at end of word (epsilon)
	TransitionID   string   `json:"transition,omitempty"`
	OperationIndex int      `json:"operation"` // -1 when no transition fired
	Outcome        string   `json:"outcome"`
	Reason         string   `json:"reason,omitempty"`
	Stack          []string `json:"stack"` // bottom to top, after the step
}

// RunRecord captures a completed (or stopped) run.
type RunRecord struct {
	RunID      string `json:"run_id"`
	Definition string `json:"definition,omitempty"`
	Word       string `json:"word"`
	Verdict    string `json:"verdict"`
	Reason     string `json:"reason,omitempty"`
	Steps      int    `json:"steps"`
}
