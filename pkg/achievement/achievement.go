// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package achievement evaluates a fixed catalog of unlock predicates
// against the player's accumulated metrics. Unlocks are monotonic for
// a session: the evaluator only ever reports achievements that are not
// already in the caller's unlocked set.
package achievement

import (
	"time"

	"github.com/AccelByte/heartsim/pkg/stats"
)

// Metrics is the snapshot of session state an unlock predicate may
// inspect.
type Metrics struct {
	Stats          stats.Stats
	Stability      int
	Affection      int
	EventsOvercome int
}

// Definition is an immutable catalog template for one achievement.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string

	// Criteria reports whether the achievement qualifies for the
	// given metrics. It must be pure.
	Criteria func(Metrics) bool
}

// Achievement is an unlocked instance of a catalog definition. The
// unlock timestamp is set exactly once, when the evaluator first
// reports it.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}
