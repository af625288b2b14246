package availability

import (
	"time"

	"bookwise/models"
)

// FindBestSlot picks a single slot from an already-computed candidate list.
// With a preferred time it returns the slot whose start is nearest to it,
// earliest slot winning among equidistant candidates; without one it returns
// the first (earliest) slot. Returns nil on an empty list. Pure selection: no
// store access, no side effects.
func FindBestSlot(slots []models.TimeSlot, preferred *time.Time) *models.TimeSlot {
	if len(slots) == 0 {
		return nil
	}
	if preferred == nil {
		best := slots[0]
		return &best
	}

	bestIdx := 0
	bestDist := absDuration(slots[0].Start.Sub(*preferred))
	for i := 1; i < len(slots); i++ {
		if d := absDuration(slots[i].Start.Sub(*preferred)); d < bestDist {
			bestIdx, bestDist = i, d
		}
	}
	best := slots[bestIdx]
	return &best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
