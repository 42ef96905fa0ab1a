// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package stats

import "fmt"

// Key identifies one of the six player attributes.
type Key string

const (
	Wealth       Key = "wealth"
	Strength     Key = "strength"
	Looks        Key = "looks"
	Intelligence Key = "intelligence"
	Education    Key = "education"
	Health       Key = "health"
)

// Keys returns all attribute keys in canonical order.
// The attribute set is fixed; keys are never added or removed at runtime.
func Keys() []Key {
	return []Key{Wealth, Strength, Looks, Intelligence, Education, Health}
}

// IsValidKey reports whether k names one of the six attributes.
func IsValidKey(k Key) bool {
	switch k {
	case Wealth, Strength, Looks, Intelligence, Education, Health:
		return true
	}
	return false
}

const (
	// MinValue is the lower bound of every attribute.
	MinValue = 0
	// MaxValue is the upper bound of every attribute.
	MaxValue = 100
)

// Clamp bounds an attribute value to [MinValue, MaxValue].
// Clamping is normal policy, not an error condition.
func Clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// Stats is the fixed record of the six player attributes.
// Every field is kept in [0,100] by the mutation helpers.
type Stats struct {
	Wealth       int `json:"wealth" yaml:"wealth"`
	Strength     int `json:"strength" yaml:"strength"`
	Looks        int `json:"looks" yaml:"looks"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Education    int `json:"education" yaml:"education"`
	Health       int `json:"health" yaml:"health"`
}

// Value returns the attribute named by k. Unknown keys return 0.
func (s Stats) Value(k Key) int {
	switch k {
	case Wealth:
		return s.Wealth
	case Strength:
		return s.Strength
	case Looks:
		return s.Looks
	case Intelligence:
		return s.Intelligence
	case Education:
		return s.Education
	case Health:
		return s.Health
	}
	return 0
}

func (s *Stats) set(k Key, v int) {
	switch k {
	case Wealth:
		s.Wealth = v
	case Strength:
		s.Strength = v
	case Looks:
		s.Looks = v
	case Intelligence:
		s.Intelligence = v
	case Education:
		s.Education = v
	case Health:
		s.Health = v
	}
}

// Values returns the six attribute magnitudes in canonical key order.
func (s Stats) Values() []int {
	values := make([]int, 0, len(Keys()))
	for _, k := range Keys() {
		values = append(values, s.Value(k))
	}
	return values
}

// Apply returns a copy of s with the partial change set applied.
// Only listed attributes change; every written value is re-clamped.
// Unknown keys are ignored.
func (s Stats) Apply(changes map[Key]int) Stats {
	out := s
	for k, delta := range changes {
		if !IsValidKey(k) {
			continue
		}
		out.set(k, Clamp(out.Value(k)+delta))
	}
	return out
}

// Clamped returns a copy of s with every attribute bounded to [0,100].
// Used when accepting externally supplied allocations.
func (s Stats) Clamped() Stats {
	out := s
	for _, k := range Keys() {
		out.set(k, Clamp(out.Value(k)))
	}
	return out
}

// AllAtLeast reports whether every attribute is at or above n.
func (s Stats) AllAtLeast(n int) bool {
	for _, k := range Keys() {
		if s.Value(k) < n {
			return false
		}
	}
	return true
}

// Validate checks that every attribute already lies in [0,100].
func (s Stats) Validate() error {
	for _, k := range Keys() {
		v := s.Value(k)
		if v < MinValue || v > MaxValue {
			return fmt.Errorf("attribute %s out of range: %d", k, v)
		}
	}
	return nil
}
