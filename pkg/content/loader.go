// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/AccelByte/heartsim/pkg/stats"
	"gopkg.in/yaml.v3"
)

// Load reads a full catalog from a YAML file, replacing the built-in
// one. Supports environment variable expansion in the form ${VAR_NAME}
// or ${VAR_NAME:default}.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var catalog Catalog
	if err := yaml.Unmarshal([]byte(expanded), &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML content: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content catalog: %w", err)
	}

	return &catalog, nil
}

// Validate checks the catalog for the errors that would otherwise
// surface mid-session: duplicate ids, dangling references, malformed
// dialogue, out-of-range gates and weights.
func (c *Catalog) Validate() error {
	if len(c.Activities) == 0 {
		return fmt.Errorf("catalog has no activities")
	}
	if len(c.Personalities) == 0 {
		return fmt.Errorf("catalog has no personalities")
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("catalog has no date scenarios")
	}

	activityIDs := make(map[string]bool)
	for _, a := range c.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity with empty ID found")
		}
		if activityIDs[a.ID] {
			return fmt.Errorf("duplicate activity ID: %s", a.ID)
		}
		activityIDs[a.ID] = true

		for k := range a.StatChanges {
			if !stats.IsValidKey(k) {
				return fmt.Errorf("activity %s changes unknown attribute: %s", a.ID, k)
			}
		}
	}

	personalityIDs := make(map[string]bool)
	for _, p := range c.Personalities {
		if p.ID == "" {
			return fmt.Errorf("personality with empty ID found")
		}
		if personalityIDs[p.ID] {
			return fmt.Errorf("duplicate personality ID: %s", p.ID)
		}
		personalityIDs[p.ID] = true

		if err := p.Preferences.Validate(); err != nil {
			return fmt.Errorf("personality %s: %w", p.ID, err)
		}
	}

	partnerIDs := make(map[string]bool)
	for _, p := range c.Partners {
		if p.ID == "" {
			return fmt.Errorf("potential partner with empty ID found")
		}
		if partnerIDs[p.ID] {
			return fmt.Errorf("duplicate partner ID: %s", p.ID)
		}
		partnerIDs[p.ID] = true

		if !personalityIDs[p.PersonalityID] {
			return fmt.Errorf("partner %s references unknown personality: %s", p.ID, p.PersonalityID)
		}
	}

	scenarioIDs := make(map[string]bool)
	for _, s := range c.Scenarios {
		if s.ID == "" {
			return fmt.Errorf("date scenario with empty ID found")
		}
		if scenarioIDs[s.ID] {
			return fmt.Errorf("duplicate scenario ID: %s", s.ID)
		}
		scenarioIDs[s.ID] = true

		if s.RequiredAffection < 0 || s.RequiredAffection > 100 {
			return fmt.Errorf("scenario %s has affection gate out of range: %d", s.ID, s.RequiredAffection)
		}
		if len(s.Dialogue) == 0 {
			return fmt.Errorf("scenario %s has no dialogue", s.ID)
		}

		for i, line := range s.Dialogue {
			switch line.Speaker {
			case SpeakerPartner:
				if line.Text == "" {
					return fmt.Errorf("scenario %s line %d: partner line has no text", s.ID, i)
				}
				if len(line.Options) > 0 {
					return fmt.Errorf("scenario %s line %d: partner line must not have options", s.ID, i)
				}
			case SpeakerPlayer:
				if len(line.Options) == 0 {
					return fmt.Errorf("scenario %s line %d: player line has no options", s.ID, i)
				}
				for j, opt := range line.Options {
					for _, tag := range opt.Tags {
						if !stats.IsValidKey(tag) {
							return fmt.Errorf("scenario %s line %d option %d tags unknown attribute: %s", s.ID, i, j, tag)
						}
					}
				}
			default:
				return fmt.Errorf("scenario %s line %d: unknown speaker %q", s.ID, i, line.Speaker)
			}
		}
	}

	eventIDs := make(map[string]bool)
	for _, e := range c.Events {
		if e.ID == "" {
			return fmt.Errorf("random event with empty ID found")
		}
		if eventIDs[e.ID] {
			return fmt.Errorf("duplicate event ID: %s", e.ID)
		}
		eventIDs[e.ID] = true

		switch e.Type {
		case EventPositive, EventNegative, EventNeutral:
		default:
			return fmt.Errorf("event %s has unknown type %q", e.ID, e.Type)
		}

		if len(e.Choices) == 0 {
			return fmt.Errorf("event %s has no choices", e.ID)
		}
		for i, choice := range e.Choices {
			switch choice.Risk {
			case RiskLow, RiskMedium, RiskHigh:
			default:
				return fmt.Errorf("event %s choice %d has unknown risk tier %q", e.ID, i, choice.Risk)
			}
			if choice.StabilityMultiplier <= 0 {
				return fmt.Errorf("event %s choice %d has non-positive stability multiplier", e.ID, i)
			}
			for k := range choice.Effects {
				if !stats.IsValidKey(k) {
					return fmt.Errorf("event %s choice %d affects unknown attribute: %s", e.ID, i, k)
				}
			}
		}
	}

	if err := c.InitialStats.Validate(); err != nil {
		return fmt.Errorf("initial stats: %w", err)
	}
	if c.InitialAffection < 0 || c.InitialAffection > 100 {
		return fmt.Errorf("initial affection out of range: %d", c.InitialAffection)
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
