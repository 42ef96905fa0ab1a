// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package stats

import (
	"fmt"
	"math"
)

// Weights is a per-attribute preference distribution. Weights are
// non-negative and by convention sum to 1.0 within a personality.
type Weights map[Key]float64

// weightSumTolerance absorbs rounding in hand-authored distributions
// (e.g. 0.17*4 + 0.16*2).
const weightSumTolerance = 0.02

// Validate checks that all keys are known, all weights are
// non-negative, and the distribution sums to 1.0 within tolerance.
func (w Weights) Validate() error {
	sum := 0.0
	for k, weight := range w {
		if !IsValidKey(k) {
			return fmt.Errorf("unknown attribute key in weights: %s", k)
		}
		if weight < 0 {
			return fmt.Errorf("negative weight for %s: %f", k, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights sum to %.3f, expected 1.0", sum)
	}
	return nil
}

// Get returns the weight for k, or 0 when absent.
func (w Weights) Get(k Key) float64 {
	return w[k]
}
