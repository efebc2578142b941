package engine

import (
	"fmt"
	"hash/fnv"
	"strings"

	"go.uber.org/zap"

	"jokerbot/internal/cards"
)

// #region template
// predictionTemplate renders the message sent for a new prediction. The
// status placeholder must appear verbatim exactly once; resolution rewrites
// it by exact substring substitution.
const (
	predictionTemplate = "🔵%d 🔵3K: statut :⏳"
	statusPlaceholder  = "statut :⏳"
	statusPrefix       = "statut :"
	failureMarker      = "❌⭕"
)

// successMarkers index by verification offset 0-3.
var successMarkers = [4]string{"✅0️⃣", "✅1️⃣", "✅2️⃣", "✅3️⃣"}

// RenderPrediction formats the prediction text for a target game.
func RenderPrediction(targetGame int) string {
	return fmt.Sprintf(predictionTemplate, targetGame)
}

// rewriteStatus substitutes the placeholder with an outcome marker.
func rewriteStatus(rendered, marker string) string {
	return strings.Replace(rendered, statusPlaceholder, statusPrefix+marker, 1)
}

// #endregion template

// #region known-combinations
// knownCombinations is the historical list of observed winning combinations,
// normalized. Consulted for logging only: any 3-distinct-suit outcome is
// accepted whether or not it appears here.
var knownCombinations = func() map[string]struct{} {
	raw := []string{
		"♥️♠️♦️", "♥️♦️♠️", "♥️♣️♠️", "♥️♠️♣️",
		"♦️♥️♠️", "♦️♣️♥️", "♦️♣️♠️", "♠️♦️♥️",
		"♠️♣️♥️", "♠️♦️♣️", "♣️♦️♠️", "♣️♠️♦️",
		"♣️♦️♥️", "♣️♥️♦️", "♣️♠️♥️",
		"♥️♦️♣️", "♣️♥️♦️",
	}
	m := make(map[string]struct{}, len(raw))
	for _, c := range raw {
		m[cards.Normalize(cards.Extract(c))] = struct{}{}
	}
	return m
}()

// #endregion known-combinations

// #region decide
// decide runs the prediction decision algorithm on a message that passed the
// reconciler. Group 1 is evaluated before group 2; the first group holding
// exactly 3 distinct suits wins and suppresses the other. The dedup gate
// applies after the semantic checks succeed.
func (e *Engine) decide(message string, game int, hasGame bool) (Decision, *Send) {
	if !hasGame {
		e.log.Debug("no game identifier", zap.String("message", preview(message)))
		return Decision{Action: ActionSkip, Reason: "no game identifier"}, nil
	}

	groups := cards.ParenGroups(message)
	if len(groups) == 0 {
		e.log.Debug("no parenthesized groups", zap.Int("game", game))
		return Decision{Action: ActionSkip, Reason: "no parenthesized groups"}, nil
	}

	limit := len(groups)
	if limit > 2 {
		limit = 2
	}
	for i := 0; i < limit; i++ {
		symbols := cards.Extract(groups[i])
		if len(cards.Distinct(symbols)) != 3 {
			continue
		}
		combination := cards.Normalize(symbols)

		if _, known := knownCombinations[combination]; known {
			e.log.Info("combination matches known set",
				zap.Int("game", game), zap.String("combination", combination))
		} else {
			e.log.Info("combination outside known set, accepted anyway",
				zap.Int("game", game), zap.String("combination", combination))
		}

		fp := fingerprint(message)
		if _, dup := e.seen[fp]; dup {
			e.log.Info("duplicate message suppressed", zap.Int("game", game))
			return Decision{Action: ActionSkip, Reason: "duplicate message"}, nil
		}

		target := game + 1
		if e.store.Has(target) {
			e.log.Info("prediction already exists for target",
				zap.Int("target_game", target))
			return Decision{Action: ActionSkip, Reason: "target already predicted"}, nil
		}

		e.seen[fp] = struct{}{}
		rendered := RenderPrediction(target)
		e.store.Put(&Prediction{
			TargetGame:   target,
			Combination:  combination,
			Status:       StatusPending,
			SourceGame:   game,
			RenderedText: rendered,
		})

		e.log.Info("prediction made",
			zap.Int("source_game", game),
			zap.Int("target_game", target),
			zap.String("combination", combination))

		return Decision{
				Action: ActionPredict,
				Reason: fmt.Sprintf("group %d holds 3 distinct suits", i+1),
			}, &Send{
				SourceGame:  game,
				TargetGame:  target,
				Combination: combination,
				Text:        rendered,
			}
	}

	e.log.Debug("no group with 3 distinct suits", zap.Int("game", game))
	return Decision{Action: ActionSkip, Reason: "no group with 3 distinct suits"}, nil
}

// #endregion decide

// #region fingerprint
// fingerprint hashes the raw message text with FNV-1a. Content-based so
// dedup behavior is reproducible across runs.
func fingerprint(message string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(message))
	return h.Sum64()
}

// #endregion fingerprint

// #region preview
// preview truncates a message for log fields.
func preview(message string) string {
	const max = 50
	runes := []rune(message)
	if len(runes) <= max {
		return message
	}
	return string(runes[:max]) + "…"
}

// #endregion preview
