package features

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
)

func newTestExtractor() *Extractor {
	return New(zerolog.Nop())
}

// weeklyHistory returns n events spaced exactly 7 days apart starting from start.
func weeklyHistory(entityID string, start time.Time, n int) contracts.EventHistory {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, 7*i))
	}
	return history(entityID, dates...)
}

func TestComputeEntityStats_EmptyHistory(t *testing.T) {
	e := newTestExtractor()

	stats := e.ComputeEntityStats("empty", contracts.EventHistory{})

	assert.Empty(t, stats.WeekdayStats)
	assert.Zero(t, stats.TotalEvents)
	assert.Zero(t, stats.HistorySpanDays)
	assert.Zero(t, stats.StddevGapBetweenEvents)
	assert.Zero(t, stats.PeriodicityScore)
}

func TestComputeEntityStats_SingleEvent(t *testing.T) {
	e := newTestExtractor()

	stats := e.ComputeEntityStats("single", history("single", date(2026, time.June, 1)))

	assert.Equal(t, 1, stats.TotalEvents)
	assert.Zero(t, stats.HistorySpanDays)
	assert.Zero(t, stats.StddevGapBetweenEvents)
	assert.Zero(t, stats.PeriodicityScore)
	assert.Equal(t, 1, stats.WeekdayStats[0].OccurrenceCount)
}

func TestComputeEntityStats_WeeklyEntity(t *testing.T) {
	e := newTestExtractor()

	// 5 Mondays, 7 days apart: gaps [7,7,7,7]
	h := weeklyHistory("weekly", date(2026, time.June, 1), 5)
	stats := e.ComputeEntityStats("weekly", h)

	assert.Equal(t, 5, stats.TotalEvents)
	assert.Equal(t, 28, stats.HistorySpanDays)
	assert.Zero(t, stats.StddevGapBetweenEvents)
	assert.InDelta(t, 1.0, stats.PeriodicityScore, 1e-9)

	monday := stats.WeekdayStats[0]
	assert.Equal(t, 5, monday.OccurrenceCount)
	assert.Equal(t, 5, monday.TotalOpportunities)
	assert.InDelta(t, 1.0, monday.OccurrenceRate, 1e-9)
}

func TestComputeEntityStats_SortsUnorderedInput(t *testing.T) {
	e := newTestExtractor()

	h := history("unordered",
		date(2026, time.June, 15),
		date(2026, time.June, 1),
		date(2026, time.June, 8),
	)

	stats := e.ComputeEntityStats("unordered", h)
	assert.Equal(t, 14, stats.HistorySpanDays)
	assert.Equal(t, 3, stats.WeekdayStats[0].OccurrenceCount)
}

func TestComputeEntityStats_Idempotent(t *testing.T) {
	e := newTestExtractor()
	h := weeklyHistory("ent", date(2026, time.June, 1), 4)

	first := e.ComputeEntityStats("ent", h)
	second := e.ComputeEntityStats("ent", h)

	assert.Equal(t, first, second)

	// Second call must have been served from cache
	cacheStats := e.CacheStats()
	assert.Equal(t, 1, cacheStats.CacheSize)
	assert.Equal(t, 1, cacheStats.CachedEntities)
}

func TestCacheStats_Monotonicity(t *testing.T) {
	e := newTestExtractor()
	start := date(2026, time.June, 1)

	// Same entity, growing history: distinct keys per size
	e.ComputeEntityStats("grow", weeklyHistory("grow", start, 2))
	e.ComputeEntityStats("grow", weeklyHistory("grow", start, 3))
	e.ComputeEntityStats("other", weeklyHistory("other", start, 2))

	cacheStats := e.CacheStats()
	assert.Equal(t, 3, cacheStats.CacheSize)
	assert.Equal(t, 2, cacheStats.CachedEntities)
}

func TestClearEntity_ExactMatchOnly(t *testing.T) {
	e := newTestExtractor()
	start := date(2026, time.June, 1)

	// "A" must not clear "A1" or "AB", nor "ent_1" clear "ent_10"
	for _, id := range []string{"A", "A1", "AB", "ent_1", "ent_10"} {
		e.ComputeEntityStats(id, weeklyHistory(id, start, 3))
	}
	require.Equal(t, 5, e.CacheStats().CacheSize)

	e.ClearEntity("A")
	assert.Equal(t, 4, e.CacheStats().CacheSize)

	e.ClearEntity("ent_1")
	stats := e.CacheStats()
	assert.Equal(t, 3, stats.CacheSize)
	assert.Equal(t, 3, stats.CachedEntities)

	// Cleared entity recomputes from scratch without error
	e.ComputeEntityStats("A", weeklyHistory("A", start, 3))
	assert.Equal(t, 4, e.CacheStats().CacheSize)
}

func TestClearAll(t *testing.T) {
	e := newTestExtractor()
	start := date(2026, time.June, 1)

	e.ComputeEntityStats("a", weeklyHistory("a", start, 2))
	e.ComputeEntityStats("b", weeklyHistory("b", start, 2))
	require.Equal(t, 2, e.CacheStats().CacheSize)

	e.ClearAll()
	stats := e.CacheStats()
	assert.Zero(t, stats.CacheSize)
	assert.Zero(t, stats.CachedEntities)
}

func TestExtractFeatures(t *testing.T) {
	e := newTestExtractor()

	h := weeklyHistory("weekly", date(2026, time.June, 1), 5)

	t.Run("target on the event weekday", func(t *testing.T) {
		// 2026-07-06 is a Monday in week 2 of July
		features := e.ExtractFeatures("weekly", date(2026, time.July, 6), h)

		assert.Equal(t, 5, features.WeekdayOccurrenceCount)
		assert.InDelta(t, 1.0, features.WeekdayOccurrenceRate, 1e-9)
		assert.InDelta(t, 1.0, features.PeriodicityScore, 1e-9)
		assert.Zero(t, features.StddevGapBetweenEvents)
		assert.Equal(t, 2, features.WeekOfMonth)
	})

	t.Run("target on a quiet weekday", func(t *testing.T) {
		// 2026-07-05 is a Sunday: no events ever on Sundays
		features := e.ExtractFeatures("weekly", date(2026, time.July, 5), h)

		assert.Zero(t, features.WeekdayOccurrenceCount)
		assert.Zero(t, features.WeekdayOccurrenceRate)
	})

	t.Run("empty history yields zero weekday features", func(t *testing.T) {
		features := e.ExtractFeatures("nobody", date(2026, time.July, 6), contracts.EventHistory{})

		assert.Zero(t, features.WeekdayOccurrenceCount)
		assert.Zero(t, features.WeekdayOccurrenceRate)
		assert.Equal(t, 2, features.WeekOfMonth)
	})
}

func TestShouldPredictEvent_InsufficientSample(t *testing.T) {
	e := newTestExtractor()

	// One Monday event among Tuesday events: Monday count is 1 < 2
	h := history("ent",
		date(2026, time.June, 1), // Mon
		date(2026, time.June, 2), // Tue
		date(2026, time.June, 9), // Tue
	)

	decision := e.ShouldPredictEvent("ent", date(2026, time.June, 15), h, contracts.DefaultDecisionThresholds())

	assert.False(t, decision.ShouldPredict)
	assert.Zero(t, decision.Confidence)
	assert.Contains(t, decision.Reason, "insufficient sample (1 < 2)")
}

func TestShouldPredictEvent_RateTooLow(t *testing.T) {
	e := newTestExtractor()

	// Two Mondays 98 days apart: 15 Monday opportunities, rate 2/15 < 0.15
	h := history("rare",
		date(2026, time.January, 5), // Mon
		date(2026, time.April, 13),  // Mon
	)

	decision := e.ShouldPredictEvent("rare", date(2026, time.April, 20), h, contracts.DefaultDecisionThresholds())

	assert.False(t, decision.ShouldPredict)
	assert.InDelta(t, 2.0/15.0, decision.Confidence, 1e-9)
	assert.Contains(t, decision.Reason, "occurrence rate too low")
}

func TestShouldPredictEvent_Authorized(t *testing.T) {
	e := newTestExtractor()

	// Mondays June 1/8/15, final event Tue July 7: 6 Monday opportunities,
	// count 3, rate 0.5
	h := history("ent",
		date(2026, time.June, 1),
		date(2026, time.June, 8),
		date(2026, time.June, 15),
		date(2026, time.July, 7),
	)

	decision := e.ShouldPredictEvent("ent", date(2026, time.July, 13), h, contracts.DefaultDecisionThresholds())

	assert.True(t, decision.ShouldPredict)
	assert.InDelta(t, 0.5, decision.Confidence, 1e-9)
	assert.Contains(t, decision.Reason, "prediction authorized")
	assert.Contains(t, decision.Reason, "n=3")
}

func TestShouldPredictEvent_CustomThresholds(t *testing.T) {
	e := newTestExtractor()

	h := weeklyHistory("weekly", date(2026, time.June, 1), 5)

	strict := contracts.DecisionThresholds{MinOccurrenceCount: 10, MinOccurrenceRate: 0.15}
	decision := e.ShouldPredictEvent("weekly", date(2026, time.July, 6), h, strict)

	assert.False(t, decision.ShouldPredict)
	assert.Contains(t, decision.Reason, "insufficient sample (5 < 10)")
}

func TestShouldPredictEvent_PopulatesIdentity(t *testing.T) {
	e := newTestExtractor()
	target := date(2026, time.July, 6)

	decision := e.ShouldPredictEvent("ent-42", target, contracts.EventHistory{}, contracts.DefaultDecisionThresholds())

	assert.Equal(t, "ent-42", decision.EntityID)
	assert.True(t, decision.TargetDate.Equal(target))
	assert.False(t, decision.ShouldPredict)
}
