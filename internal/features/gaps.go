package features

import (
	"math"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
)

// gapsBetweenEvents 연속 이벤트 사이의 간격(일 단위) 계산
// history는 날짜 오름차순으로 정렬되어 있어야 함.
// 같은 날의 중복 이벤트(간격 0)는 목록에서 완전히 제외함
func gapsBetweenEvents(history contracts.EventHistory) []int {
	if len(history) < 2 {
		return nil
	}

	var gaps []int
	for i := 1; i < len(history); i++ {
		gap := temporal.DaysBetween(history[i-1].Date, history[i].Date)
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}

	return gaps
}

// periodicityScore 간격 기반 규칙성 점수 [0,1]
// 간격이 3개 미만이면 표본 부족으로 0.0.
// score = 1 / (1 + cv), cv = 모표준편차 / 평균.
// 완전히 규칙적인 간격(std=0)이면 1.0, 불규칙할수록 0에 수렴
func periodicityScore(gaps []int) float64 {
	if len(gaps) < 3 {
		return 0.0
	}

	mean := meanOfInts(gaps)
	if mean == 0 {
		// 간격은 모두 양수라 실제로는 도달 불가, 0 나눗셈 방지용
		return 0.0
	}

	cv := stddevOfInts(gaps) / mean
	return 1.0 / (1.0 + cv)
}

// meanOfInts 정수 슬라이스의 평균
func meanOfInts(values []int) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// stddevOfInts 모표준편차 (N으로 나눔)
// 원소가 2개 미만이면 0.0
func stddevOfInts(values []int) float64 {
	if len(values) < 2 {
		return 0.0
	}

	mean := meanOfInts(values)
	sumSq := 0.0
	for _, v := range values {
		diff := float64(v) - mean
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(values)))
}
