package trace

import "testing"

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"none", "steps", ""} {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q): got false, want true", level)
		}
	}
	if IsValidLevel("everything") {
		t.Error("IsValidLevel(everything): got true, want false")
	}
}

func TestRunTrace_LevelNoneRecordsNothing(t *testing.T) {
	rt := New(LevelNone)

	rt.RecordStep(StepRecord{RunID: "r"})
	rt.RecordRun(RunRecord{RunID: "r"})

	if len(rt.Steps) != 0 || len(rt.Runs) != 0 {
		t.Errorf("LevelNone recorded data: %d steps, %d runs", len(rt.Steps), len(rt.Runs))
	}
}

func TestRunTrace_EmptyLevelDefaultsToNone(t *testing.T) {
	rt := New("")
	if rt.Level() != LevelNone {
		t.Errorf("New(\"\"): level %q, want none", rt.Level())
	}
}

func TestRunTrace_RecordsAtStepsLevel(t *testing.T) {
	rt := New(LevelSteps)

	rt.RecordStep(StepRecord{RunID: "r", Index: 0, Outcome: "moved"})
	rt.RecordStep(StepRecord{RunID: "r", Index: 1, Outcome: "accepted"})
	rt.RecordRun(RunRecord{RunID: "r", Word: "a", Verdict: "accepted", Steps: 2})

	if len(rt.Steps) != 2 {
		t.Fatalf("steps recorded: got %d, want 2", len(rt.Steps))
	}
	if rt.Steps[1].Outcome != "accepted" {
		t.Errorf("step 1 outcome: got %q, want accepted", rt.Steps[1].Outcome)
	}
	if len(rt.Runs) != 1 || rt.Runs[0].Verdict != "accepted" {
		t.Errorf("run record: got %+v", rt.Runs)
	}
}
