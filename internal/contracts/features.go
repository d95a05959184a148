package contracts

import "time"

// WeekdayStat 요일별 발생 통계
// Invariant: TotalOpportunities > 0 이면 OccurrenceCount <= TotalOpportunities
type WeekdayStat struct {
	OccurrenceCount    int     `json:"occurrence_count"`
	OccurrenceRate     float64 `json:"occurrence_rate"`     // OccurrenceCount / TotalOpportunities (기회 0이면 0.0)
	TotalOpportunities int     `json:"total_opportunities"` // 기간 내 해당 요일의 달력상 횟수
}

// WeekdayStats 요일 인덱스(0=월 … 6=일) → 통계
type WeekdayStats map[int]WeekdayStat

// EntityStats 엔티티별 파생 통계 (캐시 단위, 생성 후 불변)
type EntityStats struct {
	WeekdayStats           WeekdayStats `json:"weekday_stats"`
	StddevGapBetweenEvents float64      `json:"stddev_gap_between_events"`
	PeriodicityScore       float64      `json:"periodicity_score"` // [0,1], 간격 규칙성
	TotalEvents            int          `json:"total_events"`
	HistorySpanDays        int          `json:"history_span_days"`
}

// FeatureVector 특정 대상일에 투영된 피처 벡터 (캐시하지 않음)
type FeatureVector struct {
	WeekdayOccurrenceRate  float64 `json:"weekday_occurrence_rate"`
	WeekdayOccurrenceCount int     `json:"weekday_occurrence_count"`
	StddevGapBetweenEvents float64 `json:"stddev_gap_between_events"`
	PeriodicityScore       float64 `json:"periodicity_score"`
	WeekOfMonth            int     `json:"week_of_month"`
}

// Decision 예측 여부 판정 결과
type Decision struct {
	EntityID      string    `json:"entity_id"`
	TargetDate    time.Time `json:"target_date"`
	ShouldPredict bool      `json:"should_predict"`
	Confidence    float64   `json:"confidence"` // 발생률 기반, 샘플 부족 거절 시 0.0
	Reason        string    `json:"reason"`
}

// DecisionThresholds 판정 규칙 임계값
// 범위 검증은 하지 않음 (호출자 책임)
type DecisionThresholds struct {
	MinOccurrenceCount int     // 최소 발생 횟수
	MinOccurrenceRate  float64 // 최소 발생률
}

// DefaultDecisionThresholds 기본 임계값
func DefaultDecisionThresholds() DecisionThresholds {
	return DecisionThresholds{
		MinOccurrenceCount: 2,
		MinOccurrenceRate:  0.15,
	}
}

// CacheStats 추출기 캐시 통계
type CacheStats struct {
	CacheSize      int `json:"cache_size"`      // 캐시 엔트리 수
	CachedEntities int `json:"cached_entities"` // 고유 엔티티 수
}
