package builtin

import (
	"testing"
	"time"

	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/stats"
)

func evaluator(t *testing.T) *achievement.Evaluator {
	t.Helper()
	e, err := achievement.NewEvaluator(Definitions())
	if err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	return e
}

func unlockedIDs(got []achievement.Achievement) map[string]bool {
	ids := make(map[string]bool, len(got))
	for _, a := range got {
		ids[a.ID] = true
	}
	return ids
}

func TestDefinitions_Count(t *testing.T) {
	if got := evaluator(t).Count(); got != 9 {
		t.Errorf("expected 9 builtin achievements, got %d", got)
	}
}

func TestStabilityTiers(t *testing.T) {
	e := evaluator(t)

	got := unlockedIDs(e.Evaluate(achievement.Metrics{Stability: 80}, nil, time.Now()))
	if !got[FirstStableID] || !got[VeryStableID] {
		t.Errorf("expected both stability tiers at 80: %v", got)
	}
	if got[MaxStableID] {
		t.Error("max_stable should not unlock at 80")
	}

	got = unlockedIDs(e.Evaluate(achievement.Metrics{Stability: 100}, nil, time.Now()))
	if !got[MaxStableID] {
		t.Error("max_stable should unlock at 100")
	}
}

func TestStatAchievements(t *testing.T) {
	e := evaluator(t)

	m := achievement.Metrics{}
	m.Stats = m.Stats.Apply(map[stats.Key]int{stats.Wealth: 80, stats.Strength: 80})

	got := unlockedIDs(e.Evaluate(m, nil, time.Now()))
	if !got[WealthyID] || !got[BuffID] {
		t.Errorf("expected wealthy and buff: %v", got)
	}
}

func TestAllRounder(t *testing.T) {
	e := evaluator(t)

	m := achievement.Metrics{}
	for _, k := range stats.Keys() {
		m.Stats = m.Stats.Apply(map[stats.Key]int{k: 60})
	}

	got := unlockedIDs(e.Evaluate(m, nil, time.Now()))
	if !got[AllRounderID] {
		t.Errorf("expected all_rounder with all stats at 60: %v", got)
	}
}

func TestAffectionAchievements(t *testing.T) {
	e := evaluator(t)

	got := unlockedIDs(e.Evaluate(achievement.Metrics{Affection: 15}, nil, time.Now()))
	if !got[FirstDateID] {
		t.Errorf("expected first_date at affection 15: %v", got)
	}
	if got[RelationshipID] {
		t.Error("relationship should not unlock at affection 15")
	}

	got = unlockedIDs(e.Evaluate(achievement.Metrics{Affection: 80}, nil, time.Now()))
	if !got[RelationshipID] {
		t.Errorf("expected relationship at affection 80: %v", got)
	}
}

func TestSurvivor(t *testing.T) {
	e := evaluator(t)

	got := unlockedIDs(e.Evaluate(achievement.Metrics{EventsOvercome: 4}, nil, time.Now()))
	if got[SurvivorID] {
		t.Error("survivor should not unlock at 4 events")
	}

	got = unlockedIDs(e.Evaluate(achievement.Metrics{EventsOvercome: 5}, nil, time.Now()))
	if !got[SurvivorID] {
		t.Errorf("expected survivor at 5 events: %v", got)
	}
}
