// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package metrics defines the application's Prometheus collectors.
// They are registered by the metrics server at startup and incremented
// from the session layer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SessionsStarted counts initialized game sessions.
	SessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "heartsim_sessions_started_total",
		Help: "Total number of game sessions initialized",
	})

	// ActivitiesPerformed counts completed daily activities.
	ActivitiesPerformed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heartsim_activities_performed_total",
		Help: "Total number of daily activities performed",
	}, []string{"activity_id"})

	// DatesCompleted counts completed date scenarios.
	DatesCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heartsim_dates_completed_total",
		Help: "Total number of date scenarios completed",
	}, []string{"scenario_id"})

	// EventsResolved counts resolved random events by type.
	EventsResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heartsim_events_resolved_total",
		Help: "Total number of random events resolved",
	}, []string{"event_type"})

	// AchievementsUnlocked counts achievement unlocks.
	AchievementsUnlocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heartsim_achievements_unlocked_total",
		Help: "Total number of achievements unlocked",
	}, []string{"achievement_id"})

	// RejectedCommands counts gameplay commands ignored as no-ops.
	RejectedCommands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heartsim_rejected_commands_total",
		Help: "Total number of gameplay commands rejected as no-ops",
	}, []string{"operation"})
)

// Collectors returns every collector for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SessionsStarted,
		ActivitiesPerformed,
		DatesCompleted,
		EventsResolved,
		AchievementsUnlocked,
		RejectedCommands,
	}
}
