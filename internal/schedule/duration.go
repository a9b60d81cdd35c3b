package schedule

import "github.com/alexanderramin/semainier/internal/domain"

// Units converts a qualitative activity size into its unit cost. The
// mapping is fixed and exhaustive over the closed enum; unknown variants
// never reach this point because ParseDurationSize rejects them at the
// deserialization boundary.
func Units(size domain.DurationSize) int {
	switch size {
	case domain.DurationSmall:
		return 1
	case domain.DurationMedium:
		return 3
	case domain.DurationLarge:
		return 6
	}
	return 0
}

// DurationMinutes returns the wall-clock length of an activity for a given
// unit length.
func DurationMinutes(size domain.DurationSize, unitMinutes int) int {
	return Units(size) * unitMinutes
}
