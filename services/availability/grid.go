package availability

import "time"

// SlotGranularity is the fixed step at which candidate slot start times are
// generated.
const SlotGranularity = 15 * time.Minute

// SlotCandidates enumerates candidate slot start times inside one shift
// window, spaced by step and aligned to the grid anchored at shiftStart.
// The first candidate is the earliest grid instant at or after
// max(shiftStart, rangeStart); enumeration stops once a slot of the given
// duration would no longer fit entirely inside the shift.
//
// Pure function; exclusion rules (lead time, time off, conflicts) are applied
// downstream.
func SlotCandidates(shiftStart, shiftEnd, rangeStart time.Time, duration, step time.Duration) []time.Time {
	if duration <= 0 || step <= 0 || !shiftStart.Before(shiftEnd) {
		return nil
	}

	start := shiftStart
	if rangeStart.After(start) {
		offset := rangeStart.Sub(shiftStart)
		steps := offset / step
		if offset%step != 0 {
			steps++
		}
		start = shiftStart.Add(steps * step)
	}

	var candidates []time.Time
	for t := start; !t.Add(duration).After(shiftEnd); t = t.Add(step) {
		candidates = append(candidates, t)
	}
	return candidates
}
