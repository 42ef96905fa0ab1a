// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package session

import (
	"fmt"

	"github.com/AccelByte/heartsim/pkg/compat"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// ScoredMatch is a browsable partner annotated with the compatibility
// score for a specific player.
type ScoredMatch struct {
	content.PotentialPartner
	Preferences        stats.Weights `json:"preferences"`
	CompatibilityScore int           `json:"compatibility_score"`
}

// Matchmaker scores the partner catalog against player stats and rolls
// swipe outcomes.
type Matchmaker struct {
	catalog *content.Catalog
	rng     Rand
	chance  float64
}

// NewMatchmaker builds a matchmaker over the catalog. chance is the
// swipe match probability in [0, 1].
func NewMatchmaker(catalog *content.Catalog, rng Rand, chance float64) *Matchmaker {
	return &Matchmaker{catalog: catalog, rng: rng, chance: chance}
}

// Browse returns every catalog partner scored against the given stats,
// in catalog order.
func (m *Matchmaker) Browse(s stats.Stats) []ScoredMatch {
	matches := make([]ScoredMatch, 0, len(m.catalog.Partners))
	for _, partner := range m.catalog.Partners {
		personality, ok := m.catalog.Personality(partner.PersonalityID)
		if !ok {
			continue
		}
		matches = append(matches, ScoredMatch{
			PotentialPartner:   partner,
			Preferences:        personality.Preferences,
			CompatibilityScore: compat.Score(s, personality.Preferences),
		})
	}
	return matches
}

// Swipe rolls whether a right-swipe on the given partner becomes a
// match. An unknown partner id is an error; a failed roll is not.
func (m *Matchmaker) Swipe(partnerID string) (bool, error) {
	if _, ok := m.catalog.Partner(partnerID); !ok {
		return false, fmt.Errorf("unknown partner %s", partnerID)
	}
	return m.rng.Float64() < m.chance, nil
}
