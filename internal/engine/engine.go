// Package engine holds the prediction and verification pipeline: it decides
// when a game message warrants a forward prediction and resolves pending
// predictions against later messages within a bounded lookahead window.
package engine

import (
	"go.uber.org/zap"

	"jokerbot/internal/cards"
)

// #region engine-struct

// Engine owns all per-chat mutable state: the prediction ledger, the dedup
// fingerprint set, and the pending-temporary map. It is not safe for
// concurrent use; the hosting layer serializes messages per chat and gives
// each chat its own Engine.
type Engine struct {
	log      *zap.Logger
	store    *Store
	seen     map[uint64]struct{} // dedup fingerprints, grows for process lifetime
	deferred map[int]string      // game id → last in-progress message text
}

// #endregion engine-struct

// #region constructor

// New creates an engine with empty state. A nil logger disables logging.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		log:      log,
		store:    NewStore(),
		seen:     make(map[uint64]struct{}),
		deferred: make(map[int]string),
	}
}

// #endregion constructor

// #region process

// Process runs one message through the full pipeline:
// parse → reconcile (may short-circuit) → decide → verify.
// Both new and edited messages go through the same path.
func (e *Engine) Process(message string) Result {
	game, hasGame := cards.GameNumber(message)

	if e.reconcile(message, game, hasGame) {
		return Result{Decision: Decision{Action: ActionDefer, Reason: "in-progress indicator present"}}
	}

	decision, send := e.decide(message, game, hasGame)
	edit := e.verify(message, game, hasGame)

	return Result{Decision: decision, Send: send, Edit: edit}
}

// #endregion process

// #region accessors

// Store exposes the prediction ledger for inspection and replay summaries.
func (e *Engine) Store() *Store {
	return e.store
}

// DeferredMessage returns the recorded in-progress text for a game, if any.
func (e *Engine) DeferredMessage(game int) (string, bool) {
	text, ok := e.deferred[game]
	return text, ok
}

// #endregion accessors
