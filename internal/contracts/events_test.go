package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventHistory_SortedByDate(t *testing.T) {
	d1 := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	h := EventHistory{
		{EntityID: "c", Date: d3},
		{EntityID: "a", Date: d1},
		{EntityID: "b", Date: d2},
	}

	sorted := h.SortedByDate()

	assert.Equal(t, "a", sorted[0].EntityID)
	assert.Equal(t, "b", sorted[1].EntityID)
	assert.Equal(t, "c", sorted[2].EntityID)

	// Input order is untouched
	assert.Equal(t, "c", h[0].EntityID)
}

func TestEventHistory_SortedByDate_StableTies(t *testing.T) {
	d := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	h := EventHistory{
		{EntityID: "first", Date: d},
		{EntityID: "second", Date: d},
		{EntityID: "third", Date: d},
	}

	sorted := h.SortedByDate()

	assert.Equal(t, "first", sorted[0].EntityID)
	assert.Equal(t, "second", sorted[1].EntityID)
	assert.Equal(t, "third", sorted[2].EntityID)
}

func TestDefaultDecisionThresholds(t *testing.T) {
	thresholds := DefaultDecisionThresholds()
	assert.Equal(t, 2, thresholds.MinOccurrenceCount)
	assert.InDelta(t, 0.15, thresholds.MinOccurrenceRate, 1e-9)
}
