package domain

import (
	"fmt"

	"github.com/aretw0/diploma/pkg/schema"
)

// Bounds shared by the entities.
const (
	MinLevel = 1
	MaxLevel = 3

	MinPct = 0
	MaxPct = 100

	MinQuality = 0
	MaxQuality = 100

	MinStamina = 0
	MaxStamina = 100

	MinAnswerSkill = 0
	MaxAnswerSkill = 3
)

func validateName(key, name string) error {
	if name == "" {
		return schema.Invalid(key, "must be a non-empty string", nil)
	}
	return nil
}

// validateLevel checks the 1/2/3 scales (intelligence, loyalty, complexity).
func validateLevel(key string, v int) error {
	if v < MinLevel || v > MaxLevel {
		return schema.Invalid(key, "must be 1, 2 or 3", v)
	}
	return nil
}

func validateRange(key string, v, lo, hi int) error {
	if v < lo || v > hi {
		return schema.Invalid(key, fmt.Sprintf("must be between %d and %d", lo, hi), v)
	}
	return nil
}

// clamp applies delta to value and saturates the result to [lo, hi].
// value must already lie in [lo, hi]; the comparisons are arranged so that
// extreme deltas never overflow.
func clamp(value, delta, lo, hi int) int {
	if delta > hi-value {
		return hi
	}
	if next := value + delta; next >= lo {
		return next
	}
	return lo
}
