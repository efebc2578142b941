package journal

import "time"

// #region decision-entry
// DecisionEntry is a single row in the decisions table.
type DecisionEntry struct {
	ID           string
	ChatID       int64
	SourceGame   int
	TargetGame   int
	Combination  string
	RenderedText string
	CreatedAt    time.Time
}

// #endregion decision-entry

// #region resolution-entry
// ResolutionEntry is a single row in the resolutions table.
type ResolutionEntry struct {
	ChatID             int64
	TargetGame         int
	Status             string // "correct" | "failed" | "incorrect"
	VerificationOffset int
	FinalText          string
	CreatedAt          time.Time
}

// #endregion resolution-entry

// #region stats
// Stats summarizes prediction outcomes for reporting.
type Stats struct {
	Total     int
	Correct   int
	Incorrect int
	Failed    int
	Pending   int
	Accuracy  float64 // percentage, 0 when no predictions
}

// #endregion stats
