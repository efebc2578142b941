package engine

import (
	"strings"
	"testing"
)

func newTestEngine() *Engine {
	return New(nil)
}

func TestPredictOnThreeDistinctSuits(t *testing.T) {
	e := newTestEngine()

	res := e.Process("#n744 (♥️♠️♦️) résultat final")

	if res.Decision.Action != ActionPredict {
		t.Fatalf("expected predict, got %s: %s", res.Decision.Action, res.Decision.Reason)
	}
	if res.Send == nil {
		t.Fatal("expected a send instruction")
	}
	if res.Send.TargetGame != 745 {
		t.Fatalf("expected target 745, got %d", res.Send.TargetGame)
	}
	if res.Send.Combination != "♠️♥️♦️" {
		t.Fatalf("unexpected combination %q", res.Send.Combination)
	}
	if !strings.Contains(res.Send.Text, "745") {
		t.Fatalf("rendered text must embed target game: %q", res.Send.Text)
	}
	if strings.Count(res.Send.Text, statusPlaceholder) != 1 {
		t.Fatalf("placeholder must appear exactly once in %q", res.Send.Text)
	}

	p, ok := e.Store().Get(745)
	if !ok {
		t.Fatal("prediction not stored")
	}
	if p.Status != StatusPending || p.SourceGame != 744 || p.VerificationOffset != 0 {
		t.Fatalf("bad stored prediction: %+v", p)
	}
}

func TestNoDecisionWithoutGameIdentifier(t *testing.T) {
	e := newTestEngine()

	res := e.Process("(♥️♠️♦️) mais pas d'identifiant")

	if res.Decision.Action != ActionSkip || res.Send != nil {
		t.Fatalf("expected skip without send, got %+v", res)
	}
}

func TestNoDecisionWithoutParentheses(t *testing.T) {
	e := newTestEngine()

	res := e.Process("#n744 ♥️♠️♦️ sans parenthèses")

	if res.Decision.Action != ActionSkip {
		t.Fatalf("expected skip, got %s", res.Decision.Action)
	}
	if res.Send != nil || res.Edit != nil {
		t.Fatal("expected neither send nor edit")
	}
}

func TestRepeatsDoNotAddDistinctness(t *testing.T) {
	e := newTestEngine()

	// Four symbols but only two distinct suits.
	res := e.Process("#n744 (♥️♥️♠️♠️)")

	if res.Decision.Action != ActionSkip {
		t.Fatalf("expected skip, got %s", res.Decision.Action)
	}
}

func TestFourDistinctSuitsRejected(t *testing.T) {
	e := newTestEngine()

	res := e.Process("#n744 (♥️♠️♦️♣️)")

	if res.Send != nil {
		t.Fatal("exactly 3 distinct suits required, got a prediction from 4")
	}
}

func TestSecondGroupOnlyWhenFirstInvalid(t *testing.T) {
	e := newTestEngine()

	// Group 1 has 2 distinct suits, group 2 has 3: group 2 wins.
	res := e.Process("#n744 (♥️♠️) puis (♣️♦️♠️)")

	if res.Decision.Action != ActionPredict {
		t.Fatalf("expected predict from group 2, got %s: %s", res.Decision.Action, res.Decision.Reason)
	}
	if res.Send.Combination != "♠️♦️♣️" {
		t.Fatalf("unexpected combination %q", res.Send.Combination)
	}
}

func TestFirstGroupSuppressesSecond(t *testing.T) {
	e := newTestEngine()

	// Both groups valid; the combination must come from group 1.
	res := e.Process("#n744 (♥️♠️♦️) et (♣️♦️♠️)")

	if res.Send == nil || res.Send.Combination != "♠️♥️♦️" {
		t.Fatalf("expected group 1 combination, got %+v", res.Send)
	}
}

func TestThirdGroupNeverConsidered(t *testing.T) {
	e := newTestEngine()

	res := e.Process("#n744 (♥️) (♠️) (♥️♠️♦️)")

	if res.Send != nil {
		t.Fatal("only the first two groups are semantically meaningful")
	}
}

func TestDuplicateMessageSuppressed(t *testing.T) {
	e := newTestEngine()
	msg := "#n744 (♥️♠️♦️)"

	first := e.Process(msg)
	second := e.Process(msg)

	if first.Send == nil {
		t.Fatal("first message should predict")
	}
	if second.Send != nil {
		t.Fatal("identical message must not produce a second prediction")
	}
	if second.Decision.Reason != "duplicate message" {
		t.Fatalf("unexpected reason %q", second.Decision.Reason)
	}
	if e.Store().Len() != 1 {
		t.Fatalf("expected exactly one prediction, got %d", e.Store().Len())
	}
}

func TestTargetAlreadyPredictedSkips(t *testing.T) {
	e := newTestEngine()

	first := e.Process("#n744 (♥️♠️♦️)")
	// Different text, same source game: target 745 is already taken.
	second := e.Process("#n744 (♣️♦️♠️) variante")

	if first.Send == nil {
		t.Fatal("first message should predict")
	}
	if second.Send != nil {
		t.Fatal("second prediction for the same target must be suppressed")
	}
	p, _ := e.Store().Get(745)
	if p.Combination != "♠️♥️♦️" {
		t.Fatalf("first prediction must win, got %q", p.Combination)
	}
}

func TestUnknownCombinationStillAccepted(t *testing.T) {
	e := newTestEngine()

	// Every 3-distinct-suit set appears in the known list, so exercise the
	// accept-regardless path through the public contract instead: the
	// combination below is valid and must predict.
	res := e.Process("#n900 (♣️♥️♠️)")

	if res.Decision.Action != ActionPredict {
		t.Fatalf("3 distinct suits must always predict, got %s", res.Decision.Action)
	}
}

func TestFingerprintIsStable(t *testing.T) {
	if fingerprint("abc") != fingerprint("abc") {
		t.Fatal("fingerprint must be deterministic")
	}
	if fingerprint("abc") == fingerprint("abd") {
		t.Fatal("distinct texts should fingerprint differently")
	}
}
