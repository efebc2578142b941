package engine

import (
	"go.uber.org/zap"

	"jokerbot/internal/cards"
)

// #region window
// verificationWindow is the number of games after the target during which a
// prediction can still resolve (offsets 0 through 3 inclusive).
const verificationWindow = 3

// exhaustedOffset is the sentinel recorded when the window closes without a
// success.
const exhaustedOffset = 4

// #endregion window

// #region verify
// verify scans pending predictions in ascending target game order and tries
// to resolve one against the incoming message. A message resolves at most
// one prediction; scanning stops at the first resolution.
func (e *Engine) verify(message string, game int, hasGame bool) *Edit {
	if !hasGame {
		return nil
	}

	pending := e.store.Pending()
	if len(pending) == 0 {
		return nil
	}

	hasSuccess := containsAny(message, finalIndicators)
	symbolCount := 0
	if groups := cards.ParenGroups(message); len(groups) > 0 {
		symbolCount = cards.Count(groups[0])
	}

	for _, p := range pending {
		offset := game - p.TargetGame
		if offset < 0 || offset > verificationWindow {
			continue
		}

		switch {
		case hasSuccess && symbolCount >= 3:
			p.Status = StatusCorrect
			p.VerificationOffset = offset
			p.FinalText = rewriteStatus(p.RenderedText, successMarkers[offset])
			e.log.Info("prediction verified",
				zap.Int("target_game", p.TargetGame),
				zap.Int("offset", offset),
				zap.Int("symbol_count", symbolCount))
			return &Edit{
				TargetGame: p.TargetGame,
				Status:     StatusCorrect,
				Offset:     offset,
				Text:       p.FinalText,
			}

		case hasSuccess:
			// Success glyph but too few symbols in the first group: not
			// enough evidence either way, leave the prediction pending.
			e.log.Debug("success indicator without enough symbols",
				zap.Int("target_game", p.TargetGame),
				zap.Int("game", game),
				zap.Int("symbol_count", symbolCount))

		case offset == verificationWindow:
			p.Status = StatusFailed
			p.VerificationOffset = exhaustedOffset
			p.FinalText = rewriteStatus(p.RenderedText, failureMarker)
			e.log.Info("prediction failed, window exhausted",
				zap.Int("target_game", p.TargetGame))
			return &Edit{
				TargetGame: p.TargetGame,
				Status:     StatusFailed,
				Offset:     exhaustedOffset,
				Text:       p.FinalText,
			}
		}
	}

	return nil
}

// #endregion verify
