// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package date tracks an in-progress scripted date. Dialogue is
// consumed strictly in sequence; the accumulator gathers affection and
// attribute tags across chosen options and is applied by the session
// orchestrator only at completion.
package date

import (
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// Progress is the transient state of one active date.
type Progress struct {
	Scenario  content.DateScenario `json:"scenario"`
	LineIndex int                  `json:"line_index"`

	// Accumulated across chosen options, applied at completion.
	AffectionGained int         `json:"affection_gained"`
	ChosenTags      []stats.Key `json:"chosen_tags"`

	Completed bool `json:"completed"`
}

// New starts a date at the first dialogue line.
func New(scenario content.DateScenario) *Progress {
	return &Progress{Scenario: scenario}
}

// Current returns the dialogue line awaiting the caller, or false when
// the date is complete.
func (p *Progress) Current() (content.DialogueLine, bool) {
	if p.Completed || p.LineIndex >= len(p.Scenario.Dialogue) {
		return content.DialogueLine{}, false
	}
	return p.Scenario.Dialogue[p.LineIndex], true
}

// Continue advances past a partner line. It reports false, without
// changing state, if the current line expects a player choice or the
// date is already complete.
func (p *Progress) Continue() bool {
	line, ok := p.Current()
	if !ok || line.Speaker != content.SpeakerPartner {
		return false
	}
	p.advance()
	return true
}

// Choose selects an option at a player line, folds its affection bonus
// and attribute tags into the accumulator, and advances. It reports
// false, without changing state, on a partner line, an out-of-range
// option index, or a completed date.
func (p *Progress) Choose(optionIndex int) bool {
	line, ok := p.Current()
	if !ok || line.Speaker != content.SpeakerPlayer {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(line.Options) {
		return false
	}

	option := line.Options[optionIndex]
	p.AffectionGained += option.AffectionBonus
	p.ChosenTags = append(p.ChosenTags, option.Tags...)
	p.advance()
	return true
}

func (p *Progress) advance() {
	if p.LineIndex < len(p.Scenario.Dialogue)-1 {
		p.LineIndex++
		return
	}
	p.Completed = true
}
