// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package stats

import "math"

// Tuning holds the difficulty constants of the stability index.
type Tuning struct {
	// ReferenceDeviation normalizes the attribute spread. A narrower
	// reference punishes imbalance more harshly.
	ReferenceDeviation float64

	// BalanceWeight blends the balance score against the raw mean.
	// Higher values reward even distribution over raw magnitude.
	BalanceWeight float64
}

// DefaultTuning returns the shipped difficulty constants.
func DefaultTuning() Tuning {
	return Tuning{
		ReferenceDeviation: 50,
		BalanceWeight:      0.6,
	}
}

// Stability maps a full attribute set to the 0-100 stability index.
//
// The index rewards both high and evenly distributed attributes: the
// population standard deviation of the six values is normalized against
// the reference deviation to a 0-100 balance score, which is then
// blended with the arithmetic mean by the balance weight.
//
// The function is pure and total. It must be recomputed from scratch
// after every stat mutation, never incrementally adjusted.
func Stability(s Stats, t Tuning) int {
	values := s.Values()

	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(values))
	deviation := math.Sqrt(variance)

	balance := 100 - (deviation/t.ReferenceDeviation)*100
	if balance < 0 {
		balance = 0
	}
	if balance > 100 {
		balance = 100
	}

	blended := balance*t.BalanceWeight + mean*(1-t.BalanceWeight)

	return Clamp(int(math.Round(blended)))
}
