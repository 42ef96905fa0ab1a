// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/common"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/metrics"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// Manager owns every live session and serializes access to them. All
// gameplay entry points go through it; it layers tracing and metrics
// over the session operations.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	catalog    *content.Catalog
	evaluator  *achievement.Evaluator
	tuning     Tuning
	rng        Rand
	now        func() time.Time
	matchmaker *Matchmaker
}

// NewManager builds a manager over a validated catalog.
func NewManager(catalog *content.Catalog, evaluator *achievement.Evaluator, tuning Tuning, rng Rand) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		catalog:    catalog,
		evaluator:  evaluator,
		tuning:     tuning,
		rng:        rng,
		now:        time.Now,
		matchmaker: NewMatchmaker(catalog, rng, tuning.MatchChance),
	}
}

// Initialize starts a new session and registers it.
func (m *Manager) Initialize(ctx context.Context, setup Setup) (*Session, error) {
	scope := common.NewScope(ctx, "session.Initialize")
	defer scope.Finish()

	id := uuid.NewString()
	s, err := New(id, setup, m.catalog, m.evaluator, m.tuning, m.rng, m.now)
	if err != nil {
		scope.TraceError(err)
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	metrics.SessionsStarted.Inc()
	scope.Log.WithField("sessionID", id).Infof("session started for %s", s.Player.Name)

	return s, nil
}

// Get returns a registered session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// PerformActivity runs an activity on a session. applied is false for
// gameplay no-ops; err signals an unknown session.
func (m *Manager) PerformActivity(ctx context.Context, sessionID, activityID string) (s *Session, notes []Notification, applied bool, err error) {
	scope := common.NewScope(ctx, "session.PerformActivity")
	defer scope.Finish()
	scope.SetAttributes("activityID", activityID)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err = fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, nil, false, err
	}

	notes, applied = s.PerformActivity(activityID)
	if !applied {
		metrics.RejectedCommands.WithLabelValues("perform_activity").Inc()
		return s, nil, false, nil
	}

	metrics.ActivitiesPerformed.WithLabelValues(activityID).Inc()
	m.countUnlocks(notes)
	return s, notes, true, nil
}

// StartDate begins a date scenario on a session.
func (m *Manager) StartDate(ctx context.Context, sessionID, scenarioID string) (*Session, bool, error) {
	scope := common.NewScope(ctx, "session.StartDate")
	defer scope.Finish()
	scope.SetAttributes("scenarioID", scenarioID)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, false, err
	}

	applied := s.StartDate(scenarioID)
	if !applied {
		metrics.RejectedCommands.WithLabelValues("start_date").Inc()
	}
	return s, applied, nil
}

// AdvanceDialogue advances the active date's dialogue on a session.
func (m *Manager) AdvanceDialogue(ctx context.Context, sessionID string, optionIndex int) (*Session, bool, error) {
	scope := common.NewScope(ctx, "session.AdvanceDialogue")
	defer scope.Finish()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, false, err
	}

	applied := s.AdvanceDialogue(optionIndex)
	if !applied {
		metrics.RejectedCommands.WithLabelValues("advance_dialogue").Inc()
	}
	return s, applied, nil
}

// CompleteDate settles a finished date on a session.
func (m *Manager) CompleteDate(ctx context.Context, sessionID string) (*Session, []Notification, bool, error) {
	scope := common.NewScope(ctx, "session.CompleteDate")
	defer scope.Finish()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, nil, false, err
	}

	notes, applied := s.CompleteDate()
	if !applied {
		metrics.RejectedCommands.WithLabelValues("complete_date").Inc()
		return s, nil, false, nil
	}

	for _, n := range notes {
		if n.Kind == NoteDateCompleted {
			metrics.DatesCompleted.WithLabelValues(n.ScenarioID).Inc()
		}
	}
	m.countUnlocks(notes)
	return s, notes, true, nil
}

// CancelDate abandons the active date on a session.
func (m *Manager) CancelDate(ctx context.Context, sessionID string) (*Session, bool, error) {
	scope := common.NewScope(ctx, "session.CancelDate")
	defer scope.Finish()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, false, err
	}

	applied := s.CancelDate()
	if !applied {
		metrics.RejectedCommands.WithLabelValues("cancel_date").Inc()
	}
	return s, applied, nil
}

// ResolveEvent settles the pending random event on a session.
func (m *Manager) ResolveEvent(ctx context.Context, sessionID string, choiceIndex int) (*Session, []Notification, bool, error) {
	scope := common.NewScope(ctx, "session.ResolveEvent")
	defer scope.Finish()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, nil, false, err
	}

	notes, applied := s.ResolveEvent(choiceIndex)
	if !applied {
		metrics.RejectedCommands.WithLabelValues("resolve_event").Inc()
		return s, nil, false, nil
	}

	for _, n := range notes {
		if n.Kind == NoteEventResolved {
			metrics.EventsResolved.WithLabelValues(string(n.EventType)).Inc()
		}
	}
	m.countUnlocks(notes)
	return s, notes, true, nil
}

// BrowseMatches scores the partner catalog against a session's stats.
func (m *Manager) BrowseMatches(ctx context.Context, sessionID string) ([]ScoredMatch, error) {
	scope := common.NewScope(ctx, "session.BrowseMatches")
	defer scope.Finish()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		err := fmt.Errorf("unknown session %s", sessionID)
		scope.TraceError(err)
		return nil, err
	}

	return m.matchmaker.Browse(s.Player.Stats), nil
}

// BrowseCatalog scores the partner catalog against arbitrary stats,
// for callers without a session yet.
func (m *Manager) BrowseCatalog(playerStats stats.Stats) []ScoredMatch {
	return m.matchmaker.Browse(playerStats)
}

// Swipe rolls a match on a catalog partner.
func (m *Manager) Swipe(ctx context.Context, partnerID string) (bool, error) {
	scope := common.NewScope(ctx, "session.Swipe")
	defer scope.Finish()
	scope.SetAttributes("partnerID", partnerID)

	m.mu.Lock()
	defer m.mu.Unlock()

	matched, err := m.matchmaker.Swipe(partnerID)
	if err != nil {
		scope.TraceError(err)
	}
	return matched, err
}

func (m *Manager) countUnlocks(notes []Notification) {
	for _, n := range notes {
		if n.Kind == NoteAchievementUnlocked && n.Achievement != nil {
			metrics.AchievementsUnlocked.WithLabelValues(n.Achievement.ID).Inc()
		}
	}
}
