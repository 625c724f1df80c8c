package domain

import "time"

// StageResult records one attempted stage.
type StageResult struct {
	Stage    StageName     `json:"stage"`
	Passed   bool          `json:"passed"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}

// RunReport covers every stage attempted in one invocation. Under the "all"
// sequence a failing stage is the last entry: later stages never run.
type RunReport struct {
	Stages []StageResult `json:"stages"`
	Passed bool          `json:"passed"`
}
