// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package session orchestrates one playthrough: it owns the player and
// partner state, runs the daily activity loop, drives dates and random
// events, and emits notifications for the presentation layer. All
// derived values (stability index, relationship status) are recomputed
// from base state after every mutation, never incremented in place.
package session

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/date"
	"github.com/AccelByte/heartsim/pkg/relationship"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// Tuning bundles the session-level knobs. Zero values are not usable;
// start from DefaultTuning.
type Tuning struct {
	Stability stats.Tuning

	// EventChance is the probability of a random event triggering
	// after an activity or a completed date, in [0, 1].
	EventChance float64

	// MatchChance is the probability that a swipe turns into a match,
	// in [0, 1].
	MatchChance float64

	// AffectionDecay is subtracted from affection after every
	// completed activity. Zero disables decay.
	AffectionDecay int
}

// DefaultTuning returns the standard gameplay knobs.
func DefaultTuning() Tuning {
	return Tuning{
		Stability:      stats.DefaultTuning(),
		EventChance:    0.3,
		MatchChance:    0.6,
		AffectionDecay: 0,
	}
}

// Player is the player's side of a session.
type Player struct {
	Name   string      `json:"name"`
	Avatar string      `json:"avatar"`
	Stats  stats.Stats `json:"stats"`

	// StabilityIndex is recomputed from Stats after every mutation.
	// An event's stability multiplier may push it off the pure
	// recomputation until the next one.
	StabilityIndex int `json:"stability_index"`

	Day          int                       `json:"day"`
	Achievements []achievement.Achievement `json:"achievements"`
}

// Partner is the active partner in a session.
type Partner struct {
	Name        string        `json:"name"`
	Avatar      string        `json:"avatar"`
	Personality string        `json:"personality"`
	Preferences stats.Weights `json:"preferences"`
	Affection   int           `json:"affection"`

	// RelationshipStatus is recomputed from Affection after every
	// change.
	RelationshipStatus relationship.Status `json:"relationship_status"`
}

// Setup is the input for starting a session. PartnerID selects a
// catalog potential partner; otherwise PartnerName, PartnerAvatar and
// PersonalityID describe an ad-hoc partner. Stats, when zero, fall
// back to the catalog's initial allocation.
type Setup struct {
	PlayerName   string      `json:"player_name"`
	PlayerAvatar string      `json:"player_avatar"`
	Stats        stats.Stats `json:"stats"`

	PartnerID     string `json:"partner_id"`
	PartnerName   string `json:"partner_name"`
	PartnerAvatar string `json:"partner_avatar"`
	PersonalityID string `json:"personality_id"`
}

// Session is one playthrough. It is not safe for concurrent use; the
// manager serializes access.
type Session struct {
	ID      string  `json:"id"`
	Player  Player  `json:"player"`
	Partner Partner `json:"partner"`

	// ActiveDate is non-nil while a date is in progress.
	ActiveDate *date.Progress `json:"active_date,omitempty"`

	// ActiveEvent is non-nil while a random event awaits resolution.
	// No activity or date may start until it is resolved.
	ActiveEvent *content.RandomEvent `json:"active_event,omitempty"`

	// EventsOvercome counts resolved negative events.
	EventsOvercome int `json:"events_overcome"`

	CreatedAt time.Time `json:"created_at"`

	catalog   *content.Catalog
	evaluator *achievement.Evaluator
	tuning    Tuning
	rng       Rand
	now       func() time.Time
}

// New builds a session from a setup. It errors on an unknown partner
// or personality id; every later gameplay mistake is a no-op instead.
func New(id string, setup Setup, catalog *content.Catalog, evaluator *achievement.Evaluator, tuning Tuning, rng Rand, now func() time.Time) (*Session, error) {
	partner := Partner{
		Name:   setup.PartnerName,
		Avatar: setup.PartnerAvatar,
	}
	personalityID := setup.PersonalityID

	if setup.PartnerID != "" {
		entry, ok := catalog.Partner(setup.PartnerID)
		if !ok {
			return nil, fmt.Errorf("unknown partner %s", setup.PartnerID)
		}
		partner.Name = entry.Name
		partner.Avatar = entry.Avatar
		personalityID = entry.PersonalityID
	}

	if personalityID == "" && len(catalog.Personalities) > 0 {
		personalityID = catalog.Personalities[0].ID
		logrus.Warnf("session setup has no personality, falling back to %s", personalityID)
	}

	personality, ok := catalog.Personality(personalityID)
	if !ok {
		return nil, fmt.Errorf("unknown personality %s", personalityID)
	}
	partner.Personality = personality.ID
	partner.Preferences = personality.Preferences
	partner.Affection = relationship.ApplyDelta(0, catalog.InitialAffection)
	partner.RelationshipStatus = relationship.StatusFor(partner.Affection)

	playerStats := setup.Stats
	if playerStats == (stats.Stats{}) {
		playerStats = catalog.InitialStats
	}
	playerStats = playerStats.Clamped()

	s := &Session{
		ID: id,
		Player: Player{
			Name:   setup.PlayerName,
			Avatar: setup.PlayerAvatar,
			Stats:  playerStats,
			Day:    1,
		},
		Partner:   partner,
		CreatedAt: now(),
		catalog:   catalog,
		evaluator: evaluator,
		tuning:    tuning,
		rng:       rng,
		now:       now,
	}
	s.Player.StabilityIndex = stats.Stability(s.Player.Stats, tuning.Stability)

	return s, nil
}

// ScenarioView is a date scenario annotated with its unlock state for
// the session's current affection.
type ScenarioView struct {
	content.DateScenario
	Unlocked bool `json:"unlocked"`
}

// AvailableScenarios lists every date scenario with its unlock state.
func (s *Session) AvailableScenarios() []ScenarioView {
	views := make([]ScenarioView, 0, len(s.catalog.Scenarios))
	for _, scenario := range s.catalog.Scenarios {
		views = append(views, ScenarioView{
			DateScenario: scenario,
			Unlocked:     s.Partner.Affection >= scenario.RequiredAffection,
		})
	}
	return views
}

// Activities lists the activity catalog.
func (s *Session) Activities() []content.Activity {
	return s.catalog.Activities
}

func (s *Session) recomputeStability() {
	s.Player.StabilityIndex = stats.Stability(s.Player.Stats, s.tuning.Stability)
}

// applyAffection shifts affection by delta and recomputes the status,
// returning the statuses before and after.
func (s *Session) applyAffection(delta int) (relationship.Status, relationship.Status) {
	before := s.Partner.RelationshipStatus
	s.Partner.Affection = relationship.ApplyDelta(s.Partner.Affection, delta)
	s.Partner.RelationshipStatus = relationship.StatusFor(s.Partner.Affection)
	return before, s.Partner.RelationshipStatus
}

func achievementMetrics(s *Session) achievement.Metrics {
	return achievement.Metrics{
		Stats:          s.Player.Stats,
		Stability:      s.Player.StabilityIndex,
		Affection:      s.Partner.Affection,
		EventsOvercome: s.EventsOvercome,
	}
}

func (s *Session) unlockedIDs() []string {
	ids := make([]string, 0, len(s.Player.Achievements))
	for _, a := range s.Player.Achievements {
		ids = append(ids, a.ID)
	}
	return ids
}
