// Package replay drives recorded chat transcripts through a fresh engine
// entirely in-memory, for regression fixtures and offline debugging of
// prediction behavior.
package replay

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jokerbot/internal/engine"
)

// #region types

// StepResult captures what the engine did with one transcript message.
type StepResult struct {
	Index  int
	Result engine.Result
}

// Encode renders the step as a compact action string, the same encoding a
// transcript's expected list uses.
func (s StepResult) Encode() string {
	if s.Result.Deferred() {
		return "defer"
	}
	var parts []string
	if s.Result.Send != nil {
		parts = append(parts, fmt.Sprintf("predict:%d", s.Result.Send.TargetGame))
	}
	if s.Result.Edit != nil {
		parts = append(parts, fmt.Sprintf("resolve:%d:%s", s.Result.Edit.TargetGame, s.Result.Edit.Status))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalMessages int
	Deferred      int
	Predictions   int
	Correct       int
	Failed        int
	NoOps         int
	StillPending  int
}

// Mismatch pairs an expected action with what actually happened.
type Mismatch struct {
	Index int
	Want  string
	Got   string
}

// #endregion types

// #region replay

// Replay processes every message in order through a fresh engine and
// returns per-message results plus aggregate stats.
func Replay(messages []Message, log *zap.Logger) ([]StepResult, Summary) {
	eng := engine.New(log)
	results := make([]StepResult, 0, len(messages))
	summary := Summary{TotalMessages: len(messages)}

	for i, msg := range messages {
		res := eng.Process(msg.Text)
		step := StepResult{Index: i, Result: res}
		results = append(results, step)

		switch {
		case res.Deferred():
			summary.Deferred++
		case res.Send == nil && res.Edit == nil:
			summary.NoOps++
		}
		if res.Send != nil {
			summary.Predictions++
		}
		if res.Edit != nil {
			switch res.Edit.Status {
			case engine.StatusCorrect:
				summary.Correct++
			case engine.StatusFailed:
				summary.Failed++
			}
		}
	}

	summary.StillPending = eng.Store().Counts()[engine.StatusPending]
	return results, summary
}

// Verify compares replay results against a transcript's expected actions.
// Returns nil when everything matches or the transcript has no expectations.
func Verify(tr *Transcript, results []StepResult) []Mismatch {
	if len(tr.Expected) == 0 {
		return nil
	}
	var mismatches []Mismatch
	for i, step := range results {
		if i >= len(tr.Expected) {
			break
		}
		got := step.Encode()
		if got != tr.Expected[i] {
			mismatches = append(mismatches, Mismatch{Index: i, Want: tr.Expected[i], Got: got})
		}
	}
	return mismatches
}

// #endregion replay
