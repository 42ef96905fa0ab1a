// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/relationship"
)

// NotificationKind tags a notification for the presentation layer.
type NotificationKind string

const (
	NoteActivityCompleted   NotificationKind = "activity_completed"
	NoteDateCompleted       NotificationKind = "date_completed"
	NoteEventTriggered      NotificationKind = "event_triggered"
	NoteEventResolved       NotificationKind = "event_resolved"
	NoteAchievementUnlocked NotificationKind = "achievement_unlocked"
	NoteRelationshipChanged NotificationKind = "relationship_status_changed"
)

// Suggested display timings, in milliseconds. Presentation layers are
// free to ignore them.
const (
	achievementDisplayMillis = 3000
	eventPromptDelayMillis   = 1500
)

// Notification is a presentation hint emitted by session operations.
// Only the fields relevant to the kind are populated.
type Notification struct {
	Kind            NotificationKind `json:"kind"`
	Message         string           `json:"message"`
	SuggestedMillis int              `json:"suggested_ms,omitempty"`

	Achievement *achievement.Achievement `json:"achievement,omitempty"`

	OldStatus relationship.Status `json:"old_status,omitempty"`
	NewStatus relationship.Status `json:"new_status,omitempty"`

	ActivityID      string `json:"activity_id,omitempty"`
	ScenarioID      string `json:"scenario_id,omitempty"`
	AffectionGained int    `json:"affection_gained,omitempty"`

	EventID   string            `json:"event_id,omitempty"`
	EventType content.EventType `json:"event_type,omitempty"`
	RiskTier  content.RiskTier  `json:"risk_tier,omitempty"`
}
