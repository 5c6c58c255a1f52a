package trace

import "testing"

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	if s.TotalRuns != 0 || s.TotalSteps != 0 {
		t.Errorf("nil trace: got %+v, want zero values", s)
	}
	if s.VerdictByWord == nil {
		t.Error("nil trace: VerdictByWord must be non-nil")
	}
}

func TestSummarize_CountsVerdictsAndMoves(t *testing.T) {
	rt := New(LevelSteps)
	rt.RecordRun(RunRecord{Word: "ab", Verdict: "accepted", Steps: 3})
	rt.RecordRun(RunRecord{Word: "ba", Verdict: "rejected", Steps: 1})
	rt.RecordRun(RunRecord{Word: "aa", Verdict: "stopped", Steps: 5})
	rt.RecordStep(StepRecord{Outcome: "moved"})
	rt.RecordStep(StepRecord{Outcome: "moved"})
	rt.RecordStep(StepRecord{Outcome: "accepted"})

	s := Summarize(rt)

	if s.TotalRuns != 3 || s.AcceptedRuns != 1 || s.RejectedRuns != 1 || s.StoppedRuns != 1 {
		t.Errorf("run counts: got %+v", s)
	}
	if s.TotalSteps != 3 || s.Moves != 2 {
		t.Errorf("step counts: got steps=%d moves=%d, want 3/2", s.TotalSteps, s.Moves)
	}
	if s.VerdictByWord["ab"] != "accepted" || s.VerdictByWord["ba"] != "rejected" {
		t.Errorf("verdict map: got %v", s.VerdictByWord)
	}
}
