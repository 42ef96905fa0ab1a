package session

import (
	"math"
	"testing"
	"time"

	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/achievement/builtin"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/relationship"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// fakeRand replays fixed sequences. Exhausted sequences fall back to
// values that keep random events out of the way.
type fakeRand struct {
	floats []float64
	ints   []int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0.99
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fakeRand) Intn(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func newTestSession(t *testing.T, rng Rand) *Session {
	t.Helper()

	evaluator, err := achievement.NewEvaluator(builtin.Definitions())
	if err != nil {
		t.Fatalf("failed to build evaluator: %v", err)
	}

	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	s, err := New("test-session", Setup{
		PlayerName: "Alex",
		PartnerID:  "jordan",
	}, content.Default(), evaluator, DefaultTuning(), rng, now)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}
	return s
}

func notesOfKind(notes []Notification, kind NotificationKind) []Notification {
	var out []Notification
	for _, n := range notes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestNew_CatalogPartnerAndDefaults(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	if s.Partner.Name != "Jordan" || s.Partner.Personality != "ambitious" {
		t.Errorf("partner not resolved from catalog: %+v", s.Partner)
	}
	if s.Partner.Affection != 10 {
		t.Errorf("expected initial affection 10, got %d", s.Partner.Affection)
	}
	if s.Partner.RelationshipStatus != relationship.Stranger {
		t.Errorf("expected stranger, got %s", s.Partner.RelationshipStatus)
	}
	if s.Player.Stats != content.Default().InitialStats {
		t.Errorf("expected catalog initial stats, got %+v", s.Player.Stats)
	}
	if s.Player.Day != 1 {
		t.Errorf("expected day 1, got %d", s.Player.Day)
	}

	want := stats.Stability(s.Player.Stats, stats.DefaultTuning())
	if s.Player.StabilityIndex != want {
		t.Errorf("expected stability %d, got %d", want, s.Player.StabilityIndex)
	}
}

func TestNew_UnknownPartnerFails(t *testing.T) {
	evaluator, _ := achievement.NewEvaluator(builtin.Definitions())
	_, err := New("x", Setup{PartnerID: "nobody"}, content.Default(), evaluator, DefaultTuning(), &fakeRand{}, time.Now)
	if err == nil {
		t.Fatal("expected error for unknown partner id")
	}
}

func TestPerformActivity_WorkOvertime(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	notes, ok := s.PerformActivity("work")
	if !ok {
		t.Fatal("work activity rejected")
	}

	if got := s.Player.Stats.Value(stats.Wealth); got != 38 {
		t.Errorf("expected wealth 38, got %d", got)
	}
	if got := s.Player.Stats.Value(stats.Health); got != 47 {
		t.Errorf("expected health 47, got %d", got)
	}
	if got := s.Player.Stats.Value(stats.Strength); got != 33 {
		t.Errorf("expected strength 33, got %d", got)
	}
	if s.Player.Day != 2 {
		t.Errorf("expected day 2, got %d", s.Player.Day)
	}

	want := stats.Stability(s.Player.Stats, stats.DefaultTuning())
	if s.Player.StabilityIndex != want {
		t.Errorf("stability not recomputed: want %d, got %d", want, s.Player.StabilityIndex)
	}

	if len(notesOfKind(notes, NoteActivityCompleted)) != 1 {
		t.Errorf("expected one activity notification, got %+v", notes)
	}
	if s.ActiveEvent != nil {
		t.Error("event triggered despite roll above chance")
	}
}

func TestPerformActivity_UnknownIsNoOp(t *testing.T) {
	s := newTestSession(t, &fakeRand{})
	beforeStats := s.Player.Stats
	beforeAffection := s.Partner.Affection

	if _, ok := s.PerformActivity("nap"); ok {
		t.Fatal("unknown activity accepted")
	}
	if s.Player.Stats != beforeStats || s.Player.Day != 1 || s.Partner.Affection != beforeAffection {
		t.Error("no-op changed state")
	}
}

func TestPerformActivity_BlockedByPendingEvent(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	pending := content.Default().Events[0]
	s.ActiveEvent = &pending

	if _, ok := s.PerformActivity("work"); ok {
		t.Fatal("activity accepted while event pending")
	}
	if s.Player.Day != 1 {
		t.Errorf("blocked activity advanced the day: %d", s.Player.Day)
	}
}

func TestPerformActivity_TriggersEvent(t *testing.T) {
	// Roll below the 0.3 event chance; pick catalog event index 1.
	s := newTestSession(t, &fakeRand{floats: []float64{0.1}, ints: []int{1}})

	notes, ok := s.PerformActivity("work")
	if !ok {
		t.Fatal("work activity rejected")
	}
	if s.ActiveEvent == nil {
		t.Fatal("expected a pending event")
	}
	if s.ActiveEvent.ID != "flu_season" {
		t.Errorf("expected flu_season, got %s", s.ActiveEvent.ID)
	}

	triggered := notesOfKind(notes, NoteEventTriggered)
	if len(triggered) != 1 {
		t.Fatalf("expected one trigger notification, got %+v", notes)
	}
	if triggered[0].SuggestedMillis != 1500 {
		t.Errorf("expected 1500ms prompt delay, got %d", triggered[0].SuggestedMillis)
	}

	// A second activity is blocked until the event resolves.
	if _, ok := s.PerformActivity("gym"); ok {
		t.Error("activity accepted while event pending")
	}
}

func TestResolveEvent_AppliesEffectsAndMultiplier(t *testing.T) {
	s := newTestSession(t, &fakeRand{floats: []float64{0.1}, ints: []int{1}})
	s.PerformActivity("work")

	// flu_season choice 1: wealth +4, health -8, affection -3, x0.85.
	notes, ok := s.ResolveEvent(1)
	if !ok {
		t.Fatal("resolve rejected")
	}

	if got := s.Player.Stats.Value(stats.Wealth); got != 42 {
		t.Errorf("expected wealth 42, got %d", got)
	}
	if got := s.Player.Stats.Value(stats.Health); got != 39 {
		t.Errorf("expected health 39, got %d", got)
	}

	base := stats.Stability(s.Player.Stats, stats.DefaultTuning())
	want := stats.Clamp(int(math.Round(float64(base) * 0.85)))
	if s.Player.StabilityIndex != want {
		t.Errorf("expected stability %d after multiplier, got %d", want, s.Player.StabilityIndex)
	}

	if s.Partner.Affection != 7 {
		t.Errorf("expected affection 7, got %d", s.Partner.Affection)
	}
	if s.EventsOvercome != 1 {
		t.Errorf("expected one event overcome, got %d", s.EventsOvercome)
	}
	if s.ActiveEvent != nil {
		t.Error("event still pending after resolution")
	}
	if s.Player.Day != 2 {
		t.Errorf("resolving an event must not advance the day: %d", s.Player.Day)
	}

	resolved := notesOfKind(notes, NoteEventResolved)
	if len(resolved) != 1 || resolved[0].RiskTier != content.RiskHigh {
		t.Errorf("unexpected resolution notes: %+v", notes)
	}
}

func TestResolveEvent_OutOfRangeChoiceIsNoOp(t *testing.T) {
	s := newTestSession(t, &fakeRand{floats: []float64{0.1}, ints: []int{1}})
	s.PerformActivity("work")

	if _, ok := s.ResolveEvent(5); ok {
		t.Fatal("out-of-range choice accepted")
	}
	if s.ActiveEvent == nil {
		t.Error("rejected choice cleared the pending event")
	}
}

func TestStartDate_GateBlocksUnderAffection(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	// hiking requires affection 30, session starts at 10.
	if s.StartDate("hiking") {
		t.Fatal("gated scenario accepted")
	}
	if s.ActiveDate != nil {
		t.Error("rejected date left progress behind")
	}
}

func TestDateFlow_CompleteAppliesAccumulator(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	if !s.StartDate("coffee") {
		t.Fatal("coffee date rejected")
	}
	if s.StartDate("coffee") {
		t.Error("second date accepted while one is active")
	}
	if _, ok := s.PerformActivity("work"); ok {
		t.Error("activity accepted while date active")
	}

	// Partner line, player choice 0 (strength+health, +2), partner line.
	if !s.AdvanceDialogue(0) || !s.AdvanceDialogue(0) || !s.AdvanceDialogue(0) {
		t.Fatal("dialogue did not advance")
	}

	notes, ok := s.CompleteDate()
	if !ok {
		t.Fatal("complete rejected after finished dialogue")
	}

	// Jordan is ambitious: strength and health weigh 0.05 each, so the
	// chosen tags convert to +1 strength and +1 health.
	if got := s.Player.Stats.Value(stats.Strength); got != 36 {
		t.Errorf("expected strength 36, got %d", got)
	}
	if got := s.Player.Stats.Value(stats.Health); got != 51 {
		t.Errorf("expected health 51, got %d", got)
	}
	if s.Partner.Affection != 12 {
		t.Errorf("expected affection 12, got %d", s.Partner.Affection)
	}
	if s.Player.Day != 2 {
		t.Errorf("expected day 2, got %d", s.Player.Day)
	}
	if s.ActiveDate != nil {
		t.Error("date still active after completion")
	}
	if len(notesOfKind(notes, NoteDateCompleted)) != 1 {
		t.Errorf("expected one date notification, got %+v", notes)
	}
}

func TestCompleteDate_BeforeDialogueEndsIsNoOp(t *testing.T) {
	s := newTestSession(t, &fakeRand{})
	s.StartDate("coffee")
	s.AdvanceDialogue(0)

	if _, ok := s.CompleteDate(); ok {
		t.Fatal("incomplete date accepted completion")
	}
	if s.ActiveDate == nil {
		t.Error("rejected completion dropped the date")
	}
}

func TestCancelDate_DiscardsAccumulator(t *testing.T) {
	s := newTestSession(t, &fakeRand{})
	s.StartDate("coffee")
	s.AdvanceDialogue(0)
	s.AdvanceDialogue(0)

	if !s.CancelDate() {
		t.Fatal("cancel rejected")
	}
	if s.ActiveDate != nil {
		t.Error("date still active after cancel")
	}
	if s.Partner.Affection != 10 || s.Player.Day != 1 {
		t.Errorf("cancel applied the accumulator: affection=%d day=%d", s.Partner.Affection, s.Player.Day)
	}
	if s.CancelDate() {
		t.Error("cancel accepted with no active date")
	}
}

func TestRelationshipTransition_EmitsExactlyOneNote(t *testing.T) {
	s := newTestSession(t, &fakeRand{})
	s.Partner.Affection = 18
	s.Partner.RelationshipStatus = relationship.StatusFor(18)

	s.StartDate("coffee")
	s.AdvanceDialogue(0)
	s.AdvanceDialogue(0) // +2 affection: 18 -> 20, stranger -> acquaintance
	s.AdvanceDialogue(0)

	notes, ok := s.CompleteDate()
	if !ok {
		t.Fatal("complete rejected")
	}
	if s.Partner.Affection != 20 {
		t.Fatalf("expected affection 20, got %d", s.Partner.Affection)
	}
	if s.Partner.RelationshipStatus != relationship.Acquaintance {
		t.Errorf("expected acquaintance, got %s", s.Partner.RelationshipStatus)
	}

	changes := notesOfKind(notes, NoteRelationshipChanged)
	if len(changes) != 1 {
		t.Fatalf("expected exactly one status change note, got %d", len(changes))
	}
	if changes[0].OldStatus != relationship.Stranger || changes[0].NewStatus != relationship.Acquaintance {
		t.Errorf("unexpected transition: %+v", changes[0])
	}
}

func TestAchievements_UnlockOnceWithDisplayHint(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	// Default stats sit above 50 stability, so the first action
	// unlocks the first stability achievement.
	notes, _ := s.PerformActivity("meditate")
	unlocks := notesOfKind(notes, NoteAchievementUnlocked)
	if len(unlocks) != 1 || unlocks[0].Achievement.ID != builtin.FirstStableID {
		t.Fatalf("expected first_stable unlock, got %+v", unlocks)
	}
	if unlocks[0].SuggestedMillis != 3000 {
		t.Errorf("expected 3000ms display hint, got %d", unlocks[0].SuggestedMillis)
	}
	if len(s.Player.Achievements) != 1 {
		t.Errorf("achievement not recorded on player: %+v", s.Player.Achievements)
	}

	// A second qualifying action must not unlock it again.
	notes, _ = s.PerformActivity("meditate")
	if len(notesOfKind(notes, NoteAchievementUnlocked)) != 0 {
		t.Errorf("achievement unlocked twice: %+v", notes)
	}
}

func TestAvailableScenarios_AnnotatesGates(t *testing.T) {
	s := newTestSession(t, &fakeRand{})

	for _, view := range s.AvailableScenarios() {
		want := view.RequiredAffection <= s.Partner.Affection
		if view.Unlocked != want {
			t.Errorf("scenario %s: unlocked=%v want %v", view.ID, view.Unlocked, want)
		}
	}
}

func TestMatchmaker_BrowseAndSwipe(t *testing.T) {
	catalog := content.Default()
	mm := NewMatchmaker(catalog, &fakeRand{floats: []float64{0.5, 0.7}}, 0.6)

	matches := mm.Browse(catalog.InitialStats)
	if len(matches) != len(catalog.Partners) {
		t.Fatalf("expected %d matches, got %d", len(catalog.Partners), len(matches))
	}
	for _, m := range matches {
		if m.CompatibilityScore < 0 || m.CompatibilityScore > 100 {
			t.Errorf("match %s score out of range: %d", m.ID, m.CompatibilityScore)
		}
	}

	matched, err := mm.Swipe("sam")
	if err != nil || !matched {
		t.Errorf("expected match on roll 0.5 < 0.6, got %v err=%v", matched, err)
	}
	matched, err = mm.Swipe("sam")
	if err != nil || matched {
		t.Errorf("expected no match on roll 0.7, got %v err=%v", matched, err)
	}
	if _, err := mm.Swipe("nobody"); err == nil {
		t.Error("expected error for unknown partner")
	}
}
