package compat

import (
	"testing"

	"github.com/AccelByte/heartsim/pkg/stats"
)

func ambitious() stats.Weights {
	return stats.Weights{
		stats.Wealth:       0.3,
		stats.Intelligence: 0.3,
		stats.Education:    0.2,
		stats.Looks:        0.1,
		stats.Strength:     0.05,
		stats.Health:       0.05,
	}
}

func TestScore_FullMarksAtThresholds(t *testing.T) {
	// Every attribute at or above weight*100 contributes fully.
	s := stats.Stats{Wealth: 30, Intelligence: 30, Education: 20, Looks: 10, Strength: 5, Health: 5}
	if got := Score(s, ambitious()); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestScore_ZeroStats(t *testing.T) {
	if got := Score(stats.Stats{}, ambitious()); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestScore_PartialContribution(t *testing.T) {
	// Only wealth present, at half its threshold of 30: the wealth
	// share contributes 50, everything else 0.
	s := stats.Stats{Wealth: 15}
	got := Score(s, ambitious())
	want := 15 // 0.3*50 / 1.0
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestScore_EmptyWeights(t *testing.T) {
	if got := Score(stats.Stats{Wealth: 100}, stats.Weights{}); got != 0 {
		t.Errorf("expected 0 for empty weights, got %d", got)
	}
}

func TestScore_Range(t *testing.T) {
	prefs := ambitious()
	cases := []stats.Stats{
		{},
		{Wealth: 100, Strength: 100, Looks: 100, Intelligence: 100, Education: 100, Health: 100},
		{Wealth: 1, Health: 99},
	}
	for _, s := range cases {
		got := Score(s, prefs)
		if got < 0 || got > 100 {
			t.Errorf("score out of range for %+v: %d", s, got)
		}
	}
}

func TestDialogueBonuses(t *testing.T) {
	prefs := ambitious()

	bonuses := DialogueBonuses([]stats.Key{stats.Wealth, stats.Intelligence}, prefs)

	if bonuses[stats.Wealth] != 3 {
		t.Errorf("expected wealth bonus 3, got %d", bonuses[stats.Wealth])
	}
	if bonuses[stats.Intelligence] != 3 {
		t.Errorf("expected intelligence bonus 3, got %d", bonuses[stats.Intelligence])
	}
	if len(bonuses) != 2 {
		t.Errorf("unexpected bonus entries: %v", bonuses)
	}
}

func TestDialogueBonuses_StacksRepeatedTags(t *testing.T) {
	prefs := ambitious()

	bonuses := DialogueBonuses([]stats.Key{stats.Wealth, stats.Wealth}, prefs)

	if bonuses[stats.Wealth] != 6 {
		t.Errorf("expected stacked wealth bonus 6, got %d", bonuses[stats.Wealth])
	}
}

func TestDialogueBonuses_IgnoresUnknownAndZeroWeight(t *testing.T) {
	prefs := stats.Weights{stats.Wealth: 1.0}

	bonuses := DialogueBonuses([]stats.Key{"charisma", stats.Health}, prefs)

	if len(bonuses) != 0 {
		t.Errorf("expected no bonuses, got %v", bonuses)
	}
}
