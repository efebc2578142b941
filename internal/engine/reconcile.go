package engine

import (
	"strings"

	"go.uber.org/zap"
)

// #region indicator-sets
// inProgressIndicators mark a game whose result message is still being
// revealed through successive edits. Disjoint from the suit set.
var inProgressIndicators = []string{"⏰", "▶", "🕐", "➡️"}

// finalIndicators mark a completed game. The same glyphs double as the
// success indicators consulted by the verification engine.
var finalIndicators = []string{"✅", "🔰"}

// #endregion indicator-sets

// #region reconcile
// reconcile classifies a message as in-progress or final for its game.
// An in-progress message is recorded verbatim and short-circuits the rest
// of the pipeline; a final message clears any deferred record for the same
// game and lets processing continue. Messages with neither indicator pass
// through untouched.
func (e *Engine) reconcile(message string, game int, hasGame bool) (deferred bool) {
	if !hasGame {
		return false
	}

	if containsAny(message, inProgressIndicators) {
		e.deferred[game] = message
		e.log.Info("in-progress message deferred",
			zap.Int("game", game),
			zap.Int("deferred_games", len(e.deferred)))
		return true
	}

	if containsAny(message, finalIndicators) {
		if _, ok := e.deferred[game]; ok {
			delete(e.deferred, game)
			e.log.Info("final edit received for deferred game", zap.Int("game", game))
		}
	}

	return false
}

// #endregion reconcile

// #region helpers
func containsAny(message string, glyphs []string) bool {
	for _, g := range glyphs {
		if strings.Contains(message, g) {
			return true
		}
	}
	return false
}

// #endregion helpers
