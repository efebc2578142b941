package engine

// #region status
// Status tracks a prediction through its verification lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCorrect   Status = "correct"
	StatusFailed    Status = "failed"
	StatusIncorrect Status = "incorrect"
)

// #endregion status

// #region prediction
// Prediction is one forward-looking entry, keyed by the game it targets.
// Created by the decision engine, mutated only by the verification engine,
// never deleted for the process lifetime.
type Prediction struct {
	TargetGame  int
	Combination string // 3 distinct suits, code-point sorted
	Status      Status
	SourceGame  int

	// VerificationOffset is how many games elapsed before resolution.
	// 4 is the sentinel for an exhausted window.
	VerificationOffset int

	RenderedText string // text sent at creation time, basis for edits
	FinalText    string // set once resolved
}

// #endregion prediction

// #region decision
// Action values for a processing decision.
const (
	ActionDefer   = "defer"
	ActionPredict = "predict"
	ActionSkip    = "skip"
)

// Decision records what the pipeline decided for one message and why.
type Decision struct {
	Action string // "defer" | "predict" | "skip"
	Reason string
}

// #endregion decision

// #region instructions
// Send instructs the transport to emit a new prediction message.
type Send struct {
	SourceGame  int
	TargetGame  int
	Combination string
	Text        string
}

// Edit instructs the transport to rewrite a previously sent prediction.
type Edit struct {
	TargetGame int
	Status     Status
	Offset     int
	Text       string
}

// #endregion instructions

// #region result
// Result bundles everything one message produced: the decision, an optional
// send instruction, and an optional edit instruction. A single message can
// both trigger a new prediction and resolve an older pending one.
type Result struct {
	Decision Decision
	Send     *Send
	Edit     *Edit
}

// Deferred reports whether the reconciler short-circuited this message.
func (r Result) Deferred() bool {
	return r.Decision.Action == ActionDefer
}

// #endregion result
