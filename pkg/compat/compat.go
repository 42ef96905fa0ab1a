// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package compat scores player attributes against a partner's
// preference weights. Two independent mechanisms exist: a weighted
// ratio percentage used when browsing potential matches, and a
// per-attribute stat bonus used when a date's chosen dialogue tags
// are applied at completion. Both are pure functions of their inputs.
package compat

import (
	"math"

	"github.com/AccelByte/heartsim/pkg/stats"
)

// Score computes the 0-100 compatibility percentage between a stat
// record and a preference distribution.
//
// Each weight is read as a threshold of weight*100 points: an
// attribute at or above its threshold contributes fully, below it
// contributes proportionally. Contributions combine by weight share.
func Score(s stats.Stats, prefs stats.Weights) int {
	totalWeight := 0.0
	weighted := 0.0

	for _, k := range stats.Keys() {
		weight := prefs.Get(k)
		if weight <= 0 {
			continue
		}

		threshold := weight * 100
		contribution := float64(s.Value(k)) / threshold * 100
		if contribution > 100 {
			contribution = 100
		}

		weighted += weight * contribution
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	score := int(math.Round(weighted / totalWeight))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// DialogueBonuses converts the attribute tags accumulated over a
// date's chosen dialogue options into a partial stat change set.
// Each tagged attribute earns round(preference*10) points; repeating
// a tag stacks its bonus.
func DialogueBonuses(tags []stats.Key, prefs stats.Weights) map[stats.Key]int {
	bonuses := make(map[stats.Key]int)
	for _, tag := range tags {
		if !stats.IsValidKey(tag) {
			continue
		}
		bonus := int(math.Round(prefs.Get(tag) * 10))
		if bonus == 0 {
			continue
		}
		bonuses[tag] += bonus
	}
	return bonuses
}
