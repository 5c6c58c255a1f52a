package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	TotalRuns    int
	AcceptedRuns int
	RejectedRuns int
	StoppedRuns  int
	TotalSteps   int
	Moves        int
	// VerdictByWord maps each input word to its final verdict. Later runs
	// of the same word overwrite earlier ones (runs are deterministic, so
	// they agree anyway).
	VerdictByWord map[string]string
}

// Summarize computes aggregate statistics from a RunTrace. Safe for nil or
// empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		VerdictByWord: make(map[string]string),
	}
	if rt == nil {
		return summary
	}

	summary.TotalRuns = len(rt.Runs)
	for _, r := range rt.Runs {
		switch r.Verdict {
		case "accepted":
			summary.AcceptedRuns++
		case "rejected":
			summary.RejectedRuns++
		default:
			summary.StoppedRuns++
		}
		summary.VerdictByWord[r.Word] = r.Verdict
	}

	summary.TotalSteps = len(rt.Steps)
	for _, s := range rt.Steps {
		if s.Outcome == "moved" {
			summary.Moves++
		}
	}

	return summary
}
