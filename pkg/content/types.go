// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package content holds the static game catalogs: activities, partner
// personalities, potential partners, date scenarios and random events.
// Catalog entries are pure data with no behavior; a built-in catalog
// ships with the binary and can be replaced by a YAML file.
package content

import "github.com/AccelByte/heartsim/pkg/stats"

// Activity is one selectable daily action. Only listed attributes
// change when it is performed; the stability change is informational
// (stability is always recomputed, never incremented directly).
type Activity struct {
	ID              string            `json:"id" yaml:"id"`
	Name            string            `json:"name" yaml:"name"`
	Description     string            `json:"description" yaml:"description"`
	Icon            string            `json:"icon" yaml:"icon"`
	StatChanges     map[stats.Key]int `json:"stat_changes" yaml:"stat_changes"`
	StabilityChange int               `json:"stability_change" yaml:"stability_change"`
	Duration        int               `json:"duration" yaml:"duration"`
}

// Personality is a partner archetype with its preference weights.
type Personality struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Preferences stats.Weights `json:"preferences" yaml:"preferences"`
}

// PotentialPartner is a browsable match-catalog entry.
type PotentialPartner struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Avatar            string   `json:"avatar" yaml:"avatar"`
	Age               int      `json:"age" yaml:"age"`
	Bio               string   `json:"bio" yaml:"bio"`
	PersonalityID     string   `json:"personality_id" yaml:"personality_id"`
	Traits            []string `json:"traits" yaml:"traits"`
	CompatibilityHint string   `json:"compatibility_hint" yaml:"compatibility_hint"`
}

// Speaker tags a dialogue line as the partner's or the player's.
type Speaker string

const (
	SpeakerPartner Speaker = "partner"
	SpeakerPlayer  Speaker = "player"
)

// DialogueOption is a selectable player response. Its attribute tags
// and affection bonus feed the date accumulator.
type DialogueOption struct {
	Text           string      `json:"text" yaml:"text"`
	Tags           []stats.Key `json:"stats" yaml:"stats"`
	AffectionBonus int         `json:"affection_bonus" yaml:"affection_bonus"`
}

// DialogueLine is one entry in a scenario's fixed dialogue sequence.
// Partner lines carry text and no options; player lines carry options.
type DialogueLine struct {
	Speaker Speaker          `json:"speaker" yaml:"speaker"`
	Text    string           `json:"text,omitempty" yaml:"text,omitempty"`
	Options []DialogueOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// DateScenario is a scripted date with an affection gate and an
// ordered dialogue sequence. Dialogue is consumed strictly in order.
type DateScenario struct {
	ID                string         `json:"id" yaml:"id"`
	Name              string         `json:"name" yaml:"name"`
	Icon              string         `json:"icon" yaml:"icon"`
	Description       string         `json:"description" yaml:"description"`
	RequiredAffection int            `json:"required_affection" yaml:"required_affection"`
	Dialogue          []DialogueLine `json:"dialogue" yaml:"dialogue"`
}

// RiskTier is cosmetic framing for an event choice.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// EventType is cosmetic framing for an event. Negative events feed the
// eventsOvercome counter when resolved.
type EventType string

const (
	EventPositive EventType = "positive"
	EventNegative EventType = "negative"
	EventNeutral  EventType = "neutral"
)

// RandomEventChoice is one way to resolve a random event. The
// stability multiplier applies after stability is recomputed from the
// post-effect stats.
type RandomEventChoice struct {
	Text                string            `json:"text" yaml:"text"`
	Risk                RiskTier          `json:"risk" yaml:"risk"`
	Effects             map[stats.Key]int `json:"effects" yaml:"effects"`
	AffectionChange     int               `json:"affection_change" yaml:"affection_change"`
	StabilityMultiplier float64           `json:"stability_multiplier" yaml:"stability_multiplier"`
}

// RandomEvent is a catalog entry drawn at random after activities and
// dates.
type RandomEvent struct {
	ID          string              `json:"id" yaml:"id"`
	Title       string              `json:"title" yaml:"title"`
	Category    string              `json:"category" yaml:"category"`
	Description string              `json:"description" yaml:"description"`
	Type        EventType           `json:"type" yaml:"type"`
	Choices     []RandomEventChoice `json:"choices" yaml:"choices"`
}

// Catalog bundles every content table plus the default starting
// allocation.
type Catalog struct {
	Activities       []Activity         `json:"activities" yaml:"activities"`
	Personalities    []Personality      `json:"personalities" yaml:"personalities"`
	Partners         []PotentialPartner `json:"partners" yaml:"partners"`
	Scenarios        []DateScenario     `json:"scenarios" yaml:"scenarios"`
	Events           []RandomEvent      `json:"events" yaml:"events"`
	InitialStats     stats.Stats        `json:"initial_stats" yaml:"initial_stats"`
	InitialAffection int                `json:"initial_affection" yaml:"initial_affection"`
}

// Activity returns the activity with the given id.
func (c *Catalog) Activity(id string) (Activity, bool) {
	for _, a := range c.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Personality returns the personality with the given id.
func (c *Catalog) Personality(id string) (Personality, bool) {
	for _, p := range c.Personalities {
		if p.ID == id {
			return p, true
		}
	}
	return Personality{}, false
}

// Partner returns the potential partner with the given id.
func (c *Catalog) Partner(id string) (PotentialPartner, bool) {
	for _, p := range c.Partners {
		if p.ID == id {
			return p, true
		}
	}
	return PotentialPartner{}, false
}

// Scenario returns the date scenario with the given id.
func (c *Catalog) Scenario(id string) (DateScenario, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return DateScenario{}, false
}
