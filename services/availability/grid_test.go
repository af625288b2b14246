package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func TestSlotCandidatesFullShift(t *testing.T) {
	// 09:00-11:00 shift, 30 minute service: last start that still fits is 10:30.
	got := SlotCandidates(at(9, 0), at(11, 0), at(0, 0), 30*time.Minute, SlotGranularity)

	require.Len(t, got, 7)
	assert.Equal(t, at(9, 0), got[0])
	assert.Equal(t, at(9, 15), got[1])
	assert.Equal(t, at(10, 30), got[6])
}

func TestSlotCandidatesStayWithinShift(t *testing.T) {
	got := SlotCandidates(at(9, 0), at(10, 0), at(0, 0), 45*time.Minute, SlotGranularity)

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.False(t, last.Add(45*time.Minute).After(at(10, 0)), "slot must not extend past shift end")
	assert.Equal(t, at(9, 15), last)
}

func TestSlotCandidatesAdvancePastRangeStart(t *testing.T) {
	// Range starts mid-grid: first candidate is the next grid-aligned point.
	got := SlotCandidates(at(9, 0), at(12, 0), at(9, 50), time.Hour, SlotGranularity)

	require.NotEmpty(t, got)
	assert.Equal(t, at(10, 0), got[0])

	// Range start exactly on the grid is kept as-is.
	got = SlotCandidates(at(9, 0), at(12, 0), at(10, 15), time.Hour, SlotGranularity)
	require.NotEmpty(t, got)
	assert.Equal(t, at(10, 15), got[0])
}

func TestSlotCandidatesAlignToShiftStart(t *testing.T) {
	// A 09:10 shift start produces a 09:10-phased grid, not a clock-aligned one.
	got := SlotCandidates(at(9, 10), at(10, 0), at(0, 0), 15*time.Minute, SlotGranularity)

	require.NotEmpty(t, got)
	assert.Equal(t, at(9, 10), got[0])
	assert.Equal(t, at(9, 25), got[1])
}

func TestSlotCandidatesDegenerateInputs(t *testing.T) {
	assert.Nil(t, SlotCandidates(at(10, 0), at(9, 0), at(0, 0), 30*time.Minute, SlotGranularity), "inverted shift")
	assert.Nil(t, SlotCandidates(at(9, 0), at(9, 0), at(0, 0), 30*time.Minute, SlotGranularity), "empty shift")
	assert.Nil(t, SlotCandidates(at(9, 0), at(10, 0), at(0, 0), 0, SlotGranularity), "zero duration")
	assert.Nil(t, SlotCandidates(at(9, 0), at(10, 0), at(0, 0), 30*time.Minute, 0), "zero step")
	assert.Nil(t, SlotCandidates(at(9, 0), at(10, 0), at(0, 0), 2*time.Hour, SlotGranularity), "service longer than shift")
}

func TestSlotCandidatesExactFit(t *testing.T) {
	// Service exactly the length of the shift yields one candidate.
	got := SlotCandidates(at(9, 0), at(10, 0), at(0, 0), time.Hour, SlotGranularity)

	require.Len(t, got, 1)
	assert.Equal(t, at(9, 0), got[0])
}
