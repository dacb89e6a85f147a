package pets

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// DeriveMood calcula el mood según los días completos que la mascota lleva en el refugio.
// Adoptada => happy, sin recalcular.
func DeriveMood(createdAt, now time.Time, adopted bool) Mood {
	if adopted {
		return MoodHappy
	}

	elapsed := int64(now.Sub(createdAt) / day)
	switch {
	case elapsed < 1:
		return MoodHappy
	case elapsed <= 3:
		return MoodExcited
	default:
		return MoodSad
	}
}

// ParseMood normaliza a minúsculas y valida contra los moods conocidos.
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MoodHappy, MoodSad, MoodCalm, MoodPlayful, MoodExcited:
		return m, true
	default:
		return m, false
	}
}
