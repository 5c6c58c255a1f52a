package pda

import "fmt"

// Severity classifies a definition diagnostic.
type Severity string

const (
	// SeverityError marks a definition the engine cannot run.
	SeverityError Severity = "error"
	// SeverityWarning marks a smell the engine recovers from (for example
	// the missing-start-state fallback), surfaced rather than swallowed.
	SeverityWarning Severity = "warning"
)

// Diagnostic is one finding from a static definition check.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Check runs static diagnostics over the definition. Errors make the
// definition unusable; warnings flag recoverable smells.
func (d *Definition) Check() []Diagnostic {
	var diags []Diagnostic

	if len(d.States) == 0 {
		diags = append(diags, Diagnostic{SeverityError, "definition has no states"})
		return diags
	}

	seen := make(map[string]bool, len(d.States))
	for _, st := range d.States {
		if st.ID == "" {
			diags = append(diags, Diagnostic{SeverityError, "state with empty id"})
			continue
		}
		if seen[st.ID] {
			diags = append(diags, Diagnostic{SeverityError, fmt.Sprintf("duplicate state id %q", st.ID)})
		}
		seen[st.ID] = true
	}

	starts := 0
	for _, st := range d.States {
		if st.Start {
			starts++
		}
	}
	switch {
	case starts == 0:
		diags = append(diags, Diagnostic{SeverityWarning,
			"no state flagged as start; the first declared state will be used"})
	case starts > 1:
		diags = append(diags, Diagnostic{SeverityWarning,
			fmt.Sprintf("%d states flagged as start; the first in declaration order wins", starts)})
	}

	for _, tr := range d.Transitions {
		if !seen[tr.From] {
			diags = append(diags, Diagnostic{SeverityError,
				fmt.Sprintf("transition %s references unknown source state %q", tr.ID, tr.From)})
		}
		if !seen[tr.To] {
			diags = append(diags, Diagnostic{SeverityError,
				fmt.Sprintf("transition %s references unknown destination state %q", tr.ID, tr.To)})
		}
		if len(tr.Operations) == 0 {
			diags = append(diags, Diagnostic{SeverityWarning,
				fmt.Sprintf("transition %s has no operations and can never fire", tr.ID)})
		}
	}

	for _, st := range d.States {
		if !d.reachable(st.ID) {
			diags = append(diags, Diagnostic{SeverityWarning,
				fmt.Sprintf("state %q is unreachable from the start state", st.ID)})
		}
	}

	return diags
}

// reachable reports whether the given state can be reached from the start
// state (fallback included) by following transitions.
func (d *Definition) reachable(id string) bool {
	start, _ := d.StartState()
	if start == nil {
		return false
	}
	visited := map[string]bool{start.ID: true}
	frontier := []string{start.ID}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == id {
			return true
		}
		for _, tr := range d.Transitions {
			if tr.From == cur && !visited[tr.To] {
				visited[tr.To] = true
				frontier = append(frontier, tr.To)
			}
		}
	}
	return visited[id]
}
