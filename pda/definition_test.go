package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
name: sample
states:
  - id: q0
    start: true
  - id: q1
    accepting: true
transitions:
  - from: q0
    to: q1
    operations:
      - input: a
        pop: "ε"
        push: "XY"
  - id: back
    from: q1
    to: q0
    operations:
      - input: "ε"
        pop: X
`

func TestParseDefinition_NormalizesEpsilonAndDefaultsIDs(t *testing.T) {
	def, err := ParseDefinition([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "sample", def.Name)
	require.Len(t, def.Transitions, 2)

	// The first transition has no explicit ID and gets a positional one;
	// explicit IDs are kept.
	assert.Equal(t, "t0", def.Transitions[0].ID)
	assert.Equal(t, "back", def.Transitions[1].ID)

	// The spelled-out epsilon literal is normalized to the empty string.
	op := def.Transitions[0].Operations[0]
	assert.Equal(t, Symbol("a"), op.InputSymbol())
	assert.Equal(t, Epsilon, op.PopSymbol())
	assert.Equal(t, []Symbol{"X", "Y"}, op.PushSymbols())

	back := def.Transitions[1].Operations[0]
	assert.Equal(t, Epsilon, back.InputSymbol())
	assert.Equal(t, Symbol("X"), back.PopSymbol())
	assert.Nil(t, back.PushSymbols())
}

func TestParseDefinition_RejectsUnknownStateReferences(t *testing.T) {
	_, err := ParseDefinition([]byte(`
states:
  - id: q0
    start: true
transitions:
  - from: q0
    to: nowhere
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestParseDefinition_RejectsDuplicateStateIDs(t *testing.T) {
	_, err := ParseDefinition([]byte(`
states:
  - id: q0
    start: true
  - id: q0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCheck_Warnings(t *testing.T) {
	def := &Definition{
		States: []*State{
			{ID: "a"},
			{ID: "b", Start: true},
			{ID: "c", Start: true},
			{ID: "orphan"},
		},
		Transitions: []*Transition{
			{ID: "t0", From: "b", To: "a", Operations: []Operation{{Input: "x"}}},
			{ID: "t1", From: "a", To: "b"},
		},
	}

	diags := def.Check()

	var warnings []string
	for _, d := range diags {
		require.Equal(t, SeverityWarning, d.Severity, "only warnings expected: %s", d)
		warnings = append(warnings, d.Message)
	}
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "2 states flagged as start")
	assert.Contains(t, warnings[1], "no operations")
	assert.Contains(t, warnings[2], `state "c" is unreachable`)
	assert.Contains(t, warnings[3], `state "orphan" is unreachable`)
}

func TestStartState_FallbackIsFlagged(t *testing.T) {
	def := &Definition{States: []*State{{ID: "q0"}, {ID: "q1"}}}

	start, fellBack := def.StartState()

	require.NotNil(t, start)
	assert.Equal(t, "q0", start.ID)
	assert.True(t, fellBack, "missing start flag must be surfaced, not silently defaulted")
}

func TestStartState_FirstFlaggedWins(t *testing.T) {
	def := &Definition{States: []*State{
		{ID: "q0"},
		{ID: "q1", Start: true},
		{ID: "q2", Start: true},
	}}

	start, fellBack := def.StartState()

	require.NotNil(t, start)
	assert.Equal(t, "q1", start.ID)
	assert.False(t, fellBack)
}

func TestLoadDefinition_Testdata(t *testing.T) {
	def, err := LoadDefinition("../testdata/anbn.yaml")
	require.NoError(t, err)
	assert.Equal(t, "anbn", def.Name)
	assert.Len(t, def.States, 3)
	assert.Len(t, def.Transitions, 5)
	assert.NotNil(t, def.StateByID("q2"))
	assert.Nil(t, def.StateByID("missing"))
	assert.NotNil(t, def.TransitionByID("push-a"))
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "a,A/XY", Operation{Input: "a", Pop: "A", Push: "XY"}.String())
	assert.Equal(t, "ε,ε/ε", Operation{}.String())
}
