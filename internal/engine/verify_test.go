package engine

import (
	"strings"
	"testing"
)

// predictFor seeds a pending prediction targeting game 745.
func predictFor745(t *testing.T, e *Engine) {
	t.Helper()
	res := e.Process("#n744 (♥️♠️♦️)")
	if res.Send == nil || res.Send.TargetGame != 745 {
		t.Fatalf("seed prediction failed: %+v", res)
	}
}

func TestVerifySuccessAtOffsetOne(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// Game 746, success glyph, 4 total symbols in the first group.
	res := e.Process("#n746 ✅ (♥️♥️♠️♦️)")

	if res.Edit == nil {
		t.Fatal("expected an edit instruction")
	}
	if res.Edit.TargetGame != 745 || res.Edit.Offset != 1 {
		t.Fatalf("expected target 745 offset 1, got %+v", res.Edit)
	}
	if !strings.Contains(res.Edit.Text, "statut :✅1️⃣") {
		t.Fatalf("expected offset-1 marker in %q", res.Edit.Text)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusCorrect || p.VerificationOffset != 1 {
		t.Fatalf("bad resolved prediction: %+v", p)
	}
	if p.FinalText != res.Edit.Text {
		t.Fatal("final text must match the edit instruction")
	}
}

func TestVerifySuccessAtEveryOffset(t *testing.T) {
	for offset := 0; offset <= 3; offset++ {
		e := newTestEngine()
		predictFor745(t, e)

		// Walk games forward without indicators until the success message.
		for g := 745; g < 745+offset; g++ {
			e.Process(sprintGame(g))
		}
		res := e.Process(sprintGame(745+offset) + " ✅ (♥️♠️♦️)")

		if res.Edit == nil || res.Edit.Offset != offset {
			t.Fatalf("offset %d: expected resolution, got %+v", offset, res.Edit)
		}
		if !strings.Contains(res.Edit.Text, successMarkers[offset]) {
			t.Fatalf("offset %d: wrong marker in %q", offset, res.Edit.Text)
		}
	}
}

func TestWindowBoundaryExcludesOffsetFour(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// Game 749 is outside [745, 748]; it must never resolve the prediction.
	res := e.Process("#n749 ✅ (♥️♠️♦️)")

	if res.Edit != nil {
		t.Fatalf("message N+4 must not resolve, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusPending {
		t.Fatalf("prediction should remain pending, got %s", p.Status)
	}
}

func TestExhaustionFailsAtOffsetThree(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	for _, msg := range []string{"#n745 (♥️)", "#n746 (♠️)", "#n747 rien"} {
		if res := e.Process(msg); res.Edit != nil {
			t.Fatalf("premature resolution on %q: %+v", msg, res.Edit)
		}
	}
	res := e.Process("#n748 toujours rien")

	if res.Edit == nil {
		t.Fatal("offset 3 without success must fail the prediction")
	}
	if res.Edit.Status != StatusFailed || res.Edit.Offset != exhaustedOffset {
		t.Fatalf("expected failed/offset 4, got %+v", res.Edit)
	}
	if !strings.Contains(res.Edit.Text, "statut :❌⭕") {
		t.Fatalf("expected failure marker in %q", res.Edit.Text)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusFailed || p.VerificationOffset != 4 {
		t.Fatalf("bad failed prediction: %+v", p)
	}
}

func TestSuccessWithTooFewSymbolsIsInconclusive(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	res := e.Process("#n745 ✅ (♥️♠️)")

	if res.Edit != nil {
		t.Fatalf("2 symbols must not resolve, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusPending {
		t.Fatalf("expected pending, got %s", p.Status)
	}
}

func TestSuccessWithTooFewSymbolsAtWindowEndStaysPending(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	for g := 745; g <= 747; g++ {
		e.Process(sprintGame(g))
	}
	// Offset 3 with a success glyph but under 3 symbols: neither the success
	// branch nor the exhaustion branch fires. The prediction stays pending
	// forever — accepted limitation, there is no later sweep.
	res := e.Process("#n748 ✅ (♥️)")

	if res.Edit != nil {
		t.Fatalf("expected no resolution, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusPending {
		t.Fatalf("expected pending forever, got %s", p.Status)
	}
}

func TestPredictionNeverReachingWindowStaysPending(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// No message for games 745..748 ever arrives. Nothing resolves and the
	// entry is never evicted — accepted limitation of the design.
	if res := e.Process("#n900 ✅ (♥️♠️♦️)"); res.Edit != nil {
		t.Fatalf("far-future message must not resolve, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusPending {
		t.Fatalf("expected pending, got %s", p.Status)
	}
}

func TestAtMostOneResolutionPerMessage(t *testing.T) {
	e := newTestEngine()

	// Two pending predictions with overlapping windows: 745 and 747.
	predictFor745(t, e)
	if res := e.Process("#n746 (♣️♦️♠️)"); res.Send == nil {
		t.Fatal("seed for 747 failed")
	}

	// Game 747 is offset 2 for the 745 prediction and offset 0 for 747.
	// Ascending target order means 745 resolves; 747 must stay pending.
	res := e.Process("#n747 ✅ (♥️♠️♦️)")

	if res.Edit == nil || res.Edit.TargetGame != 745 {
		t.Fatalf("expected 745 to resolve first, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(747)
	if p.Status != StatusPending {
		t.Fatalf("747 should still be pending, got %s", p.Status)
	}

	// The next success message resolves 747 in turn.
	res = e.Process("#n747 encore ✅ (♣️♦️♠️)")
	if res.Edit == nil || res.Edit.TargetGame != 747 {
		t.Fatalf("expected 747 to resolve next, got %+v", res.Edit)
	}
}

func TestResolvedPredictionIsTerminal(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// Two distinct suits only, so no new prediction is created here; the
	// three total symbols still resolve 745 at offset 0.
	e.Process("#n745 ✅ (♥️♥️♠️)")
	// A later success in the old window must not touch the resolved entry.
	res := e.Process("#n746 ✅✅ (♥️♠️♦️♣️)")

	if res.Edit != nil {
		t.Fatalf("no pending prediction should resolve, got %+v", res.Edit)
	}
	p, _ := e.Store().Get(745)
	if p.Status != StatusCorrect || p.VerificationOffset != 0 {
		t.Fatalf("terminal state must not change: %+v", p)
	}
}

func TestVerificationCountsTotalNotDistinct(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// Three occurrences of a single suit: total count 3 satisfies the
	// verification threshold even though only one suit type is present.
	res := e.Process("#n745 ✅ (♥️♥️♥️)")

	if res.Edit == nil || res.Edit.Status != StatusCorrect {
		t.Fatalf("total symbol count governs verification, got %+v", res)
	}
}

func TestMessageCanPredictAndResolveTogether(t *testing.T) {
	e := newTestEngine()
	predictFor745(t, e)

	// Game 745's final message both resolves the 745 prediction (offset 0)
	// and triggers a new prediction for 746.
	res := e.Process("#n745 ✅ (♥️♦️♣️)")

	if res.Send == nil || res.Send.TargetGame != 746 {
		t.Fatalf("expected new prediction for 746, got %+v", res.Send)
	}
	if res.Edit == nil || res.Edit.TargetGame != 745 {
		t.Fatalf("expected resolution of 745, got %+v", res.Edit)
	}
}

func sprintGame(n int) string {
	return "#n" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
