package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGapsBetweenEvents(t *testing.T) {
	base := date(2026, time.June, 1)

	t.Run("fewer than two events", func(t *testing.T) {
		assert.Empty(t, gapsBetweenEvents(history("ent")))
		assert.Empty(t, gapsBetweenEvents(history("ent", base)))
	})

	t.Run("consecutive differences in days", func(t *testing.T) {
		h := history("ent", base, base.AddDate(0, 0, 3), base.AddDate(0, 0, 10))
		assert.Equal(t, []int{3, 7}, gapsBetweenEvents(h))
	})

	t.Run("same-day duplicates are dropped entirely", func(t *testing.T) {
		// Three events, two on the same day: only one gap, not two
		h := history("ent", base, base, base.AddDate(0, 0, 5))
		assert.Equal(t, []int{5}, gapsBetweenEvents(h))
	})
}

func TestPeriodicityScore(t *testing.T) {
	tests := []struct {
		name string
		gaps []int
		want float64
	}{
		{"no gaps", nil, 0.0},
		{"two gaps is insufficient regardless of variance", []int{1, 2}, 0.0},
		{"perfectly regular spacing", []int{7, 7, 7, 7}, 1.0},
		{"regular monthly-ish spacing", []int{30, 30, 30}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, periodicityScore(tt.gaps), 1e-9)
		})
	}

	t.Run("irregular spacing scores below regular", func(t *testing.T) {
		irregular := periodicityScore([]int{1, 15, 3, 40})
		regular := periodicityScore([]int{7, 7, 8})
		assert.Less(t, irregular, regular)
		assert.Greater(t, irregular, 0.0)
		assert.Less(t, irregular, 1.0)
	})

	t.Run("matches canonical formula", func(t *testing.T) {
		// gaps [2,4,6]: mean=4, population std=sqrt(8/3), cv=std/4
		gaps := []int{2, 4, 6}
		cv := stddevOfInts(gaps) / 4.0
		assert.InDelta(t, 1.0/(1.0+cv), periodicityScore(gaps), 1e-9)
	})
}

func TestStddevOfInts(t *testing.T) {
	assert.Zero(t, stddevOfInts(nil))
	assert.Zero(t, stddevOfInts([]int{5}))
	assert.Zero(t, stddevOfInts([]int{7, 7, 7}))

	// population stddev of [2,4,6] = sqrt(((-2)^2+0+2^2)/3) = sqrt(8/3)
	assert.InDelta(t, 1.632993161855452, stddevOfInts([]int{2, 4, 6}), 1e-9)
}

func TestMeanOfInts(t *testing.T) {
	assert.Zero(t, meanOfInts(nil))
	assert.InDelta(t, 4.0, meanOfInts([]int{2, 4, 6}), 1e-9)
}
