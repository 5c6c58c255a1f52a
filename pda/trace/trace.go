package trace

// Level controls the verbosity of run tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelSteps captures every executed step plus the run verdict.
	LevelSteps Level = "steps"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:  true,
	LevelSteps: true,
	"":         true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized
// trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// RunTrace collects step and run records during simulation.
type RunTrace struct {
	level Level
	Steps []StepRecord
	Runs  []RunRecord
}

// New creates a RunTrace ready for recording at the given level.
func New(level Level) *RunTrace {
	if level == "" {
		level = LevelNone
	}
	return &RunTrace{
		level: level,
		Steps: make([]StepRecord, 0),
		Runs:  make([]RunRecord, 0),
	}
}

// Level returns the trace level this RunTrace records at.
func (rt *RunTrace) Level() Level {
	return rt.level
}

// RecordStep appends a step record. No-op at LevelNone.
func (rt *RunTrace) RecordStep(record StepRecord) {
	if rt.level == LevelNone {
		return
	}
	rt.Steps = append(rt.Steps, record)
}

// RecordRun appends a run record. No-op at LevelNone.
func (rt *RunTrace) RecordRun(record RunRecord) {
	if rt.level == LevelNone {
		return
	}
	rt.Runs = append(rt.Runs, record)
}
