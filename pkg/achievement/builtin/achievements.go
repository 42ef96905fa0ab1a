// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package builtin holds the shipped achievement catalog.
package builtin

import (
	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// Achievement identifiers. IDs are stable and catalog-defined.
const (
	FirstStableID  = "first_stable"
	VeryStableID   = "very_stable"
	MaxStableID    = "max_stable"
	WealthyID      = "wealthy"
	BuffID         = "buff"
	FirstDateID    = "first_date"
	RelationshipID = "relationship"
	AllRounderID   = "all_rounder"
	SurvivorID     = "survivor"
)

// SurvivorEventsNeeded is the number of negative events a player must
// come through for the survivor achievement.
const SurvivorEventsNeeded = 5

// Definitions returns the shipped achievement catalog in unlock-check
// order.
func Definitions() []achievement.Definition {
	return []achievement.Definition{
		{
			ID:          FirstStableID,
			Title:       "Finding Balance",
			Description: "Reach 50% Stability Index",
			Icon:        "⚖️",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stability >= 50
			},
		},
		{
			ID:          VeryStableID,
			Title:       "Rock Solid",
			Description: "Reach 80% Stability Index",
			Icon:        "🏔️",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stability >= 80
			},
		},
		{
			ID:          MaxStableID,
			Title:       "Perfectly Balanced",
			Description: "Reach 100% Stability Index",
			Icon:        "🌟",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stability >= 100
			},
		},
		{
			ID:          WealthyID,
			Title:       "Making Bank",
			Description: "Reach 80+ Wealth stat",
			Icon:        "💰",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stats.Value(stats.Wealth) >= 80
			},
		},
		{
			ID:          BuffID,
			Title:       "Iron Will",
			Description: "Reach 80+ Strength stat",
			Icon:        "💪",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stats.Value(stats.Strength) >= 80
			},
		},
		{
			ID:          FirstDateID,
			Title:       "First Date",
			Description: "Go on your first date",
			Icon:        "💕",
			Criteria: func(m achievement.Metrics) bool {
				return m.Affection >= 15
			},
		},
		{
			ID:          RelationshipID,
			Title:       "Official",
			Description: "Start a relationship",
			Icon:        "💑",
			Criteria: func(m achievement.Metrics) bool {
				return m.Affection >= 80
			},
		},
		{
			ID:          AllRounderID,
			Title:       "Renaissance Person",
			Description: "Have all stats above 60",
			Icon:        "🎯",
			Criteria: func(m achievement.Metrics) bool {
				return m.Stats.AllAtLeast(60)
			},
		},
		{
			ID:          SurvivorID,
			Title:       "Survivor",
			Description: "Come through 5 rough patches",
			Icon:        "🛡️",
			Criteria: func(m achievement.Metrics) bool {
				return m.EventsOvercome >= SurvivorEventsNeeded
			},
		},
	}
}
