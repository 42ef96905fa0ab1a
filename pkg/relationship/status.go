// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package relationship derives a discrete relationship status from a
// continuous affection value. Status is always recomputed from
// affection, never stored as independently mutable state.
package relationship

// Status is the discrete relationship stage with a partner.
type Status string

const (
	Stranger     Status = "stranger"
	Acquaintance Status = "acquaintance"
	Dating       Status = "dating"
	Committed    Status = "committed"
)

// Fixed affection thresholds. Affection below AcquaintanceAt is
// stranger; at or above CommittedAt is committed.
const (
	AcquaintanceAt = 20
	DatingAt       = 40
	CommittedAt    = 80
)

const (
	// MinAffection is the affection floor.
	MinAffection = 0
	// MaxAffection is the affection ceiling.
	MaxAffection = 100
)

// StatusFor derives the relationship status from the current affection
// value. It is total over [0,100] and non-decreasing in affection.
func StatusFor(affection int) Status {
	switch {
	case affection >= CommittedAt:
		return Committed
	case affection >= DatingAt:
		return Dating
	case affection >= AcquaintanceAt:
		return Acquaintance
	default:
		return Stranger
	}
}

// ApplyDelta applies an affection delta and clamps the result to
// [0,100]. Affection only ever changes through this function.
func ApplyDelta(affection, delta int) int {
	next := affection + delta
	if next < MinAffection {
		return MinAffection
	}
	if next > MaxAffection {
		return MaxAffection
	}
	return next
}
