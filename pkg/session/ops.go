// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/heartsim/pkg/compat"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/date"
	"github.com/AccelByte/heartsim/pkg/relationship"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// PerformActivity runs one daily activity: applies its attribute
// changes, recomputes stability, advances the day, and may trigger a
// random event. It reports false, leaving the session untouched, when
// the activity is unknown or a date or event is in progress.
func (s *Session) PerformActivity(activityID string) ([]Notification, bool) {
	if s.ActiveEvent != nil || s.ActiveDate != nil {
		logrus.Debugf("session %s: activity %s rejected, date or event in progress", s.ID, activityID)
		return nil, false
	}

	activity, ok := s.catalog.Activity(activityID)
	if !ok {
		logrus.Debugf("session %s: unknown activity %s", s.ID, activityID)
		return nil, false
	}

	s.Player.Stats = s.Player.Stats.Apply(activity.StatChanges)
	s.recomputeStability()
	s.Player.Day++

	notes := []Notification{{
		Kind:       NoteActivityCompleted,
		Message:    fmt.Sprintf("%s complete. Day %d begins.", activity.Name, s.Player.Day),
		ActivityID: activity.ID,
	}}

	if s.tuning.AffectionDecay > 0 {
		before, after := s.applyAffection(-s.tuning.AffectionDecay)
		notes = s.appendStatusChange(notes, before, after)
	}

	notes = s.checkAchievements(notes)
	notes = s.maybeTriggerEvent(notes)
	return notes, true
}

// StartDate begins a scenario. It reports false when the scenario is
// unknown, its affection gate is not met, or a date or event is
// already in progress.
func (s *Session) StartDate(scenarioID string) bool {
	if s.ActiveDate != nil || s.ActiveEvent != nil {
		logrus.Debugf("session %s: date %s rejected, date or event in progress", s.ID, scenarioID)
		return false
	}

	scenario, ok := s.catalog.Scenario(scenarioID)
	if !ok {
		logrus.Debugf("session %s: unknown scenario %s", s.ID, scenarioID)
		return false
	}
	if s.Partner.Affection < scenario.RequiredAffection {
		logrus.Debugf("session %s: scenario %s gated at affection %d, have %d",
			s.ID, scenarioID, scenario.RequiredAffection, s.Partner.Affection)
		return false
	}

	s.ActiveDate = date.New(scenario)
	return true
}

// AdvanceDialogue moves the active date forward: on a partner line it
// continues past it (optionIndex is ignored), on a player line it
// selects the given option. It reports false when no date is active or
// the action does not fit the current line.
func (s *Session) AdvanceDialogue(optionIndex int) bool {
	if s.ActiveDate == nil {
		return false
	}

	line, ok := s.ActiveDate.Current()
	if !ok {
		return false
	}
	if line.Speaker == content.SpeakerPlayer {
		return s.ActiveDate.Choose(optionIndex)
	}
	return s.ActiveDate.Continue()
}

// CompleteDate settles a finished date: converts the chosen attribute
// tags into preference-weighted stat bonuses, applies the accumulated
// affection, advances the day, and may trigger a random event. It
// reports false while the dialogue is not yet complete.
func (s *Session) CompleteDate() ([]Notification, bool) {
	if s.ActiveDate == nil || !s.ActiveDate.Completed {
		logrus.Debugf("session %s: complete-date rejected, no finished date", s.ID)
		return nil, false
	}

	progress := s.ActiveDate
	s.ActiveDate = nil

	bonuses := compat.DialogueBonuses(progress.ChosenTags, s.Partner.Preferences)
	s.Player.Stats = s.Player.Stats.Apply(bonuses)
	s.recomputeStability()
	s.Player.Day++

	before, after := s.applyAffection(progress.AffectionGained)

	notes := []Notification{{
		Kind:            NoteDateCompleted,
		Message:         fmt.Sprintf("%s finished. %s feels %+d closer.", progress.Scenario.Name, s.Partner.Name, progress.AffectionGained),
		ScenarioID:      progress.Scenario.ID,
		AffectionGained: progress.AffectionGained,
	}}
	notes = s.appendStatusChange(notes, before, after)
	notes = s.checkAchievements(notes)
	notes = s.maybeTriggerEvent(notes)
	return notes, true
}

// CancelDate abandons the active date. The accumulator is discarded:
// nothing chosen so far affects the session. It reports false when no
// date is active.
func (s *Session) CancelDate() bool {
	if s.ActiveDate == nil {
		return false
	}
	s.ActiveDate = nil
	return true
}

// ResolveEvent settles the pending random event with one of its
// choices: applies the effects, recomputes stability and scales it by
// the choice's multiplier, and shifts affection. Negative events count
// toward the survivor tally. It reports false when no event is pending
// or the choice index is out of range.
func (s *Session) ResolveEvent(choiceIndex int) ([]Notification, bool) {
	if s.ActiveEvent == nil {
		logrus.Debugf("session %s: resolve-event rejected, no pending event", s.ID)
		return nil, false
	}
	event := *s.ActiveEvent
	if choiceIndex < 0 || choiceIndex >= len(event.Choices) {
		logrus.Debugf("session %s: event %s choice %d out of range", s.ID, event.ID, choiceIndex)
		return nil, false
	}
	s.ActiveEvent = nil

	choice := event.Choices[choiceIndex]
	s.Player.Stats = s.Player.Stats.Apply(choice.Effects)
	s.recomputeStability()
	s.Player.StabilityIndex = stats.Clamp(int(math.Round(float64(s.Player.StabilityIndex) * choice.StabilityMultiplier)))

	before, after := s.applyAffection(choice.AffectionChange)

	if event.Type == content.EventNegative {
		s.EventsOvercome++
	}

	notes := []Notification{{
		Kind:      NoteEventResolved,
		Message:   fmt.Sprintf("%s resolved: %s", event.Title, choice.Text),
		EventID:   event.ID,
		EventType: event.Type,
		RiskTier:  choice.Risk,
	}}
	notes = s.appendStatusChange(notes, before, after)
	notes = s.checkAchievements(notes)
	return notes, true
}

func (s *Session) appendStatusChange(notes []Notification, before, after relationship.Status) []Notification {
	if before == after {
		return notes
	}
	return append(notes, Notification{
		Kind:      NoteRelationshipChanged,
		Message:   fmt.Sprintf("You and %s are now %s.", s.Partner.Name, after),
		OldStatus: before,
		NewStatus: after,
	})
}

func (s *Session) checkAchievements(notes []Notification) []Notification {
	m := achievementMetrics(s)
	newly := s.evaluator.Evaluate(m, s.unlockedIDs(), s.now())
	for i := range newly {
		unlocked := newly[i]
		s.Player.Achievements = append(s.Player.Achievements, unlocked)
		notes = append(notes, Notification{
			Kind:            NoteAchievementUnlocked,
			Message:         fmt.Sprintf("Achievement unlocked: %s", unlocked.Title),
			SuggestedMillis: achievementDisplayMillis,
			Achievement:     &unlocked,
		})
	}
	return notes
}

func (s *Session) maybeTriggerEvent(notes []Notification) []Notification {
	if s.ActiveEvent != nil || len(s.catalog.Events) == 0 {
		return notes
	}
	if s.rng.Float64() >= s.tuning.EventChance {
		return notes
	}

	event := s.catalog.Events[s.rng.Intn(len(s.catalog.Events))]
	s.ActiveEvent = &event
	logrus.Debugf("session %s: event %s triggered", s.ID, event.ID)

	return append(notes, Notification{
		Kind:            NoteEventTriggered,
		Message:         event.Title,
		SuggestedMillis: eventPromptDelayMillis,
		EventID:         event.ID,
		EventType:       event.Type,
	})
}
