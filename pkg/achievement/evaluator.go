// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package achievement

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Evaluator scans the catalog for newly qualifying achievements.
type Evaluator struct {
	defs []Definition
}

// NewEvaluator creates an evaluator over the given catalog.
// Returns an error on duplicate or empty IDs or a nil criteria.
func NewEvaluator(defs []Definition) (*Evaluator, error) {
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("achievement definition with empty ID")
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("achievement %s already registered", def.ID)
		}
		if def.Criteria == nil {
			return nil, fmt.Errorf("achievement %s has no criteria", def.ID)
		}
		seen[def.ID] = true
	}

	return &Evaluator{defs: defs}, nil
}

// Evaluate returns every achievement that qualifies under m and is not
// already unlocked, in catalog order, each stamped with now as its
// unlock time. A single action may unlock more than one at once.
// The evaluator never un-unlocks.
func (e *Evaluator) Evaluate(m Metrics, unlockedIDs []string, now time.Time) []Achievement {
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	var newly []Achievement
	for _, def := range e.defs {
		if unlocked[def.ID] {
			continue
		}

		if !def.Criteria(m) {
			continue
		}

		logrus.Debugf("achievement %s unlocked (stability=%d affection=%d eventsOvercome=%d)",
			def.ID, m.Stability, m.Affection, m.EventsOvercome)

		newly = append(newly, Achievement{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			UnlockedAt:  now,
		})
	}

	return newly
}

// Definitions returns the catalog in evaluation order.
func (e *Evaluator) Definitions() []Definition {
	return e.defs
}

// Count returns the number of catalog definitions.
func (e *Evaluator) Count() int {
	return len(e.defs)
}
