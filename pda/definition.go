package pda

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// State is a node of the automaton graph.
type State struct {
	ID        string `yaml:"id"`
	Start     bool   `yaml:"start,omitempty"`
	Accepting bool   `yaml:"accepting,omitempty"`
}

// Operation is one guarded stack/input action attached to a transition.
// Input and Pop are single symbols; Push may hold several symbols, pushed
// left to right so the last one ends up on top. The empty string (or the
// literal "ε" in definition files) means epsilon for any of the three.
type Operation struct {
	Input string `yaml:"input,omitempty"`
	Pop   string `yaml:"pop,omitempty"`
	Push  string `yaml:"push,omitempty"`
}

// InputSymbol returns the normalized input guard symbol.
func (op Operation) InputSymbol() Symbol {
	return NormalizeSymbol(op.Input)
}

// PopSymbol returns the normalized stack-pop guard symbol.
func (op Operation) PopSymbol() Symbol {
	return NormalizeSymbol(op.Pop)
}

// PushSymbols returns the normalized push sequence in push order. An
// epsilon push yields an empty slice.
func (op Operation) PushSymbols() []Symbol {
	if NormalizeSymbol(op.Push) == Epsilon {
		return nil
	}
	return SplitSymbols(op.Push)
}

// String renders the operation in the conventional input,pop/push form.
func (op Operation) String() string {
	render := func(s Symbol) string {
		if s == Epsilon {
			return "ε"
		}
		return string(s)
	}
	push := NormalizeSymbol(op.Push)
	return fmt.Sprintf("%s,%s/%s", render(op.InputSymbol()), render(op.PopSymbol()), render(push))
}

// Transition is a directed edge of the automaton graph. Its operations are
// evaluated in declaration order.
type Transition struct {
	ID         string      `yaml:"id,omitempty"`
	From       string      `yaml:"from"`
	To         string      `yaml:"to"`
	Operations []Operation `yaml:"operations"`
}

// Definition is the immutable automaton graph: the complete set of states
// and transitions. It is read-only for the duration of a run; all mutable
// cursor state lives in Status.
type Definition struct {
	Name        string        `yaml:"name,omitempty"`
	States      []*State      `yaml:"states"`
	Transitions []*Transition `yaml:"transitions"`
}

// StateByID returns the state with the given ID, or nil.
func (d *Definition) StateByID(id string) *State {
	for _, st := range d.States {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// TransitionByID returns the transition with the given ID, or nil.
func (d *Definition) TransitionByID(id string) *Transition {
	for _, tr := range d.Transitions {
		if tr.ID == id {
			return tr
		}
	}
	return nil
}

// StartState returns the state flagged as start. If several states carry
// the flag, the first in declaration order wins. If none does, the first
// declared state is returned and fellBack is true; callers surface that as
// a malformed-definition warning rather than swallowing it.
func (d *Definition) StartState() (start *State, fellBack bool) {
	for _, st := range d.States {
		if st.Start {
			return st, false
		}
	}
	if len(d.States) == 0 {
		return nil, true
	}
	return d.States[0], true
}

// normalize fills in defaulted transition IDs (t0, t1, ...) and maps the
// spelled-out epsilon literal to the empty string on every operation.
func (d *Definition) normalize() {
	for i, tr := range d.Transitions {
		if tr.ID == "" {
			tr.ID = fmt.Sprintf("t%d", i)
		}
		for j := range tr.Operations {
			op := &tr.Operations[j]
			op.Input = string(NormalizeSymbol(op.Input))
			op.Pop = string(NormalizeSymbol(op.Pop))
			op.Push = string(NormalizeSymbol(op.Push))
		}
	}
}

// InspectDefinition decodes and normalizes a YAML definition and returns
// it together with its static diagnostics, without rejecting it. Only a
// YAML decoding failure is an error.
func InspectDefinition(data []byte) (*Definition, []Diagnostic, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, nil, fmt.Errorf("decode definition: %w", err)
	}
	def.normalize()
	return &def, def.Check(), nil
}

// ParseDefinition decodes a YAML definition, normalizes it, and rejects it
// if any error-severity diagnostic is found (see Check).
func ParseDefinition(data []byte) (*Definition, error) {
	def, diags, err := InspectDefinition(data)
	if err != nil {
		return nil, err
	}
	for _, diag := range diags {
		if diag.Severity == SeverityError {
			return nil, fmt.Errorf("invalid definition: %s", diag.Message)
		}
	}
	return def, nil
}

// LoadDefinition reads and parses a YAML definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", path, err)
	}
	return def, nil
}
