package stats

import "testing"

func allEqual(v int) Stats {
	return Stats{Wealth: v, Strength: v, Looks: v, Intelligence: v, Education: v, Health: v}
}

func TestStability_InRange(t *testing.T) {
	tuning := DefaultTuning()

	cases := []Stats{
		{},
		allEqual(100),
		{Wealth: 100},
		{Wealth: 100, Strength: 100, Looks: 100},
		{Wealth: 30, Strength: 35, Looks: 40, Intelligence: 45, Education: 35, Health: 50},
	}

	for _, s := range cases {
		got := Stability(s, tuning)
		if got < 0 || got > 100 {
			t.Errorf("stability out of range for %+v: %d", s, got)
		}
	}
}

func TestStability_MaxWhenEqualAtMax(t *testing.T) {
	got := Stability(allEqual(100), DefaultTuning())
	if got != 100 {
		t.Errorf("expected stability 100 for all attributes at 100, got %d", got)
	}
}

func TestStability_EqualDistributionBlendsMean(t *testing.T) {
	// With zero deviation the balance score is 100, so the index is
	// round(100*w + mean*(1-w)).
	got := Stability(allEqual(50), DefaultTuning())
	want := 80 // 100*0.6 + 50*0.4
	if got != want {
		t.Errorf("expected stability %d for even 50s, got %d", want, got)
	}
}

func TestStability_DecreasesWithSpread(t *testing.T) {
	tuning := DefaultTuning()

	// Same mean (50), increasing spread between min and max.
	narrow := Stats{Wealth: 45, Strength: 55, Looks: 45, Intelligence: 55, Education: 45, Health: 55}
	wide := Stats{Wealth: 20, Strength: 80, Looks: 20, Intelligence: 80, Education: 20, Health: 80}
	wider := Stats{Wealth: 0, Strength: 100, Looks: 0, Intelligence: 100, Education: 0, Health: 100}

	even := Stability(allEqual(50), tuning)
	s1 := Stability(narrow, tuning)
	s2 := Stability(wide, tuning)
	s3 := Stability(wider, tuning)

	if !(even > s1 && s1 > s2 && s2 > s3) {
		t.Errorf("stability should strictly decrease with spread at fixed mean: %d, %d, %d, %d", even, s1, s2, s3)
	}
}

func TestStability_ReferenceDeviationKnob(t *testing.T) {
	spread := Stats{Wealth: 20, Strength: 80, Looks: 20, Intelligence: 80, Education: 20, Health: 80}

	lenient := Stability(spread, Tuning{ReferenceDeviation: 50, BalanceWeight: 0.6})
	harsh := Stability(spread, Tuning{ReferenceDeviation: 35, BalanceWeight: 0.6})

	if harsh >= lenient {
		t.Errorf("narrower reference deviation should punish imbalance harder: harsh=%d lenient=%d", harsh, lenient)
	}
}
