package date

import (
	"testing"

	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/stats"
)

func coffeeScenario(t *testing.T) content.DateScenario {
	t.Helper()
	s, ok := content.Default().Scenario("coffee")
	if !ok {
		t.Fatal("coffee scenario missing from built-in catalog")
	}
	return s
}

func TestProgress_FullRun(t *testing.T) {
	p := New(coffeeScenario(t))

	line, ok := p.Current()
	if !ok || line.Speaker != content.SpeakerPartner {
		t.Fatalf("expected opening partner line, got %+v ok=%v", line, ok)
	}

	if !p.Continue() {
		t.Fatal("Continue failed on partner line")
	}

	line, ok = p.Current()
	if !ok || line.Speaker != content.SpeakerPlayer {
		t.Fatalf("expected player line, got %+v ok=%v", line, ok)
	}

	if !p.Choose(0) {
		t.Fatal("Choose failed on player line")
	}
	if p.AffectionGained != 2 {
		t.Errorf("expected accumulated affection 2, got %d", p.AffectionGained)
	}
	if len(p.ChosenTags) != 2 || p.ChosenTags[0] != stats.Strength || p.ChosenTags[1] != stats.Health {
		t.Errorf("unexpected tags: %v", p.ChosenTags)
	}

	if !p.Continue() {
		t.Fatal("Continue failed on closing partner line")
	}
	if !p.Completed {
		t.Error("expected date to be complete after last line")
	}
	if _, ok := p.Current(); ok {
		t.Error("Current should report no line after completion")
	}
}

func TestProgress_WrongActionIsRejected(t *testing.T) {
	p := New(coffeeScenario(t))

	// Choosing on a partner line does nothing.
	if p.Choose(0) {
		t.Error("Choose should fail on a partner line")
	}
	if p.LineIndex != 0 || p.AffectionGained != 0 {
		t.Errorf("rejected choice changed state: %+v", p)
	}

	p.Continue()

	// Continuing on a player line does nothing.
	if p.Continue() {
		t.Error("Continue should fail on a player line")
	}

	// Out-of-range option index does nothing.
	if p.Choose(-1) || p.Choose(3) {
		t.Error("out-of-range option index should fail")
	}
	if p.LineIndex != 1 {
		t.Errorf("rejected actions advanced the dialogue: index=%d", p.LineIndex)
	}
}

func TestProgress_ActionsAfterCompletionAreRejected(t *testing.T) {
	p := New(coffeeScenario(t))
	p.Continue()
	p.Choose(1)
	p.Continue()

	if !p.Completed {
		t.Fatal("expected completion")
	}
	if p.Continue() || p.Choose(0) {
		t.Error("completed date accepted further actions")
	}
}

func TestProgress_NegativeBonusAccumulates(t *testing.T) {
	s, ok := content.Default().Scenario("commitment")
	if !ok {
		t.Fatal("commitment scenario missing")
	}

	p := New(s)
	p.Continue()
	if !p.Choose(1) {
		t.Fatal("Choose failed")
	}
	if p.AffectionGained != -10 {
		t.Errorf("expected accumulated affection -10, got %d", p.AffectionGained)
	}
}
