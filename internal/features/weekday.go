package features

import (
	"time"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
)

// computeWeekdayStats 요일별 발생 통계 계산
// history는 날짜 오름차순으로 정렬되어 있어야 함.
// 분모는 고정 상수가 아니라 관측 구간 [minDate, maxDate] 안에서
// 해당 요일이 실제로 돌아온 달력상 횟수를 쓴다.
func computeWeekdayStats(history contracts.EventHistory) contracts.WeekdayStats {
	stats := contracts.WeekdayStats{}
	if len(history) == 0 {
		return stats
	}

	counts := make(map[int]int, 7)
	for _, event := range history {
		counts[temporal.WeekdayIndex(event.Date)]++
	}

	minDate := history[0].Date
	maxDate := history[len(history)-1].Date

	for weekday := 0; weekday < 7; weekday++ {
		occurrenceCount := counts[weekday]
		totalOpportunities := countWeekdayInRange(minDate, maxDate, weekday)

		occurrenceRate := 0.0
		if totalOpportunities > 0 {
			occurrenceRate = float64(occurrenceCount) / float64(totalOpportunities)
		}

		stats[weekday] = contracts.WeekdayStat{
			OccurrenceCount:    occurrenceCount,
			OccurrenceRate:     occurrenceRate,
			TotalOpportunities: totalOpportunities,
		}
	}

	return stats
}

// countWeekdayInRange [start, end] 구간(양 끝 포함)에서 특정 요일의 달력상 횟수
// 구간 길이에 선형이지만 이벤트 이력 규모에서는 충분히 빠름
func countWeekdayInRange(start, end time.Time, targetWeekday int) int {
	count := 0
	current := temporal.Midnight(start)
	last := temporal.Midnight(end)

	for !current.After(last) {
		if temporal.WeekdayIndex(current) == targetWeekday {
			count++
		}
		current = current.AddDate(0, 0, 1)
	}

	return count
}
