package features

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
)

// cacheKeySep 캐시 키에서 엔티티 ID와 이력 크기를 구분하는 예약 구분자
const cacheKeySep = ":"

// Extractor computes occurrence features from an entity's event history
// ⭐ SSOT: 발생 피처 계산과 통계 캐시는 이 구조체에서만
//
// 캐시는 (엔티티 ID, 이력 크기)를 키로 쓴다. 크기만으로 유효성을
// 판단하므로 같은 크기로 내용이 바뀐 이력은 구분하지 못한다 —
// 값싼 무효화 휴리스틱이며, 이력이 추가만 되는 전제에서 정확함
type Extractor struct {
	mu    sync.RWMutex
	cache map[string]contracts.EntityStats
	log   zerolog.Logger
}

// New creates a new extractor with an empty cache.
// 요청/세션 단위로 격리된 캐시가 필요하면 새 인스턴스를 만들 것
func New(log zerolog.Logger) *Extractor {
	return &Extractor{
		cache: make(map[string]contracts.EntityStats),
		log:   log.With().Str("component", "features.extractor").Logger(),
	}
}

// ComputeEntityStats 엔티티 전역 통계 계산 (캐시됨)
// 캐시 히트면 저장된 값을 그대로 반환하고 재계산하지 않음
func (e *Extractor) ComputeEntityStats(entityID string, history contracts.EventHistory) contracts.EntityStats {
	key := cacheKey(entityID, len(history))

	e.mu.RLock()
	stats, hit := e.cache[key]
	e.mu.RUnlock()

	if hit {
		e.log.Debug().Str("entity_id", entityID).Msg("cache hit")
		return stats
	}

	e.log.Debug().
		Str("entity_id", entityID).
		Int("events", len(history)).
		Msg("computing entity stats")

	sorted := history.SortedByDate()

	weekdayStats := computeWeekdayStats(sorted)
	gaps := gapsBetweenEvents(sorted)
	periodicity := periodicityScore(gaps)

	spanDays := 0
	if len(sorted) > 1 {
		spanDays = temporal.DaysBetween(sorted[0].Date, sorted[len(sorted)-1].Date)
	}

	stats = contracts.EntityStats{
		WeekdayStats:           weekdayStats,
		StddevGapBetweenEvents: stddevOfInts(gaps),
		PeriodicityScore:       periodicity,
		TotalEvents:            len(history),
		HistorySpanDays:        spanDays,
	}

	e.mu.Lock()
	e.cache[key] = stats
	e.mu.Unlock()

	return stats
}

// ExtractFeatures 대상일 기준 피처 벡터 추출
// 캐시된 엔티티 통계를 대상일로 투영하는 순수 연산, 결과는 캐시하지 않음
func (e *Extractor) ExtractFeatures(entityID string, targetDate time.Time, history contracts.EventHistory) contracts.FeatureVector {
	stats := e.ComputeEntityStats(entityID, history)

	weekday := temporal.WeekdayIndex(targetDate)

	// 이력이 비어 있으면 요일 통계가 없으므로 0 기본값 사용
	weekdayInfo, ok := stats.WeekdayStats[weekday]
	if !ok {
		weekdayInfo = contracts.WeekdayStat{}
	}

	return contracts.FeatureVector{
		WeekdayOccurrenceRate:  weekdayInfo.OccurrenceRate,
		WeekdayOccurrenceCount: weekdayInfo.OccurrenceCount,
		StddevGapBetweenEvents: stats.StddevGapBetweenEvents,
		PeriodicityScore:       stats.PeriodicityScore,
		WeekOfMonth:            temporal.WeekOfMonth(targetDate),
	}
}

// ShouldPredictEvent 대상일에 이벤트를 예측할지 판정
// 규칙은 순서대로 평가되며 먼저 맞는 규칙이 승리함:
//  1. 발생 횟수 < 최소 → 거절 (confidence 0.0)
//  2. 발생률 < 최소 → 거절 (confidence = 발생률)
//  3. 그 외 → 예측 승인 (confidence = 발생률)
func (e *Extractor) ShouldPredictEvent(entityID string, targetDate time.Time, history contracts.EventHistory, thresholds contracts.DecisionThresholds) contracts.Decision {
	featureVec := e.ExtractFeatures(entityID, targetDate, history)

	decision := contracts.Decision{
		EntityID:   entityID,
		TargetDate: targetDate,
	}

	occurrenceCount := featureVec.WeekdayOccurrenceCount
	occurrenceRate := featureVec.WeekdayOccurrenceRate

	if occurrenceCount < thresholds.MinOccurrenceCount {
		decision.ShouldPredict = false
		decision.Confidence = 0.0
		decision.Reason = fmt.Sprintf("insufficient sample (%d < %d)", occurrenceCount, thresholds.MinOccurrenceCount)
		return decision
	}

	if occurrenceRate < thresholds.MinOccurrenceRate {
		decision.ShouldPredict = false
		decision.Confidence = occurrenceRate
		decision.Reason = fmt.Sprintf("occurrence rate too low (%.1f%% < %.1f%%)", occurrenceRate*100, thresholds.MinOccurrenceRate*100)
		return decision
	}

	decision.ShouldPredict = true
	decision.Confidence = occurrenceRate
	decision.Reason = fmt.Sprintf("prediction authorized (rate: %.1f%%, n=%d)", occurrenceRate*100, occurrenceCount)
	return decision
}

// ClearEntity 특정 엔티티의 캐시 엔트리만 제거
// 키의 마지막 구분자 앞부분을 엔티티 ID와 정확히 비교하므로
// "ent_1"이 "ent_10"의 엔트리를 지우는 접두사 충돌이 없음
func (e *Extractor) ClearEntity(entityID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key := range e.cache {
		if entityFromKey(key) == entityID {
			delete(e.cache, key)
		}
	}

	e.log.Debug().Str("entity_id", entityID).Msg("cache cleared for entity")
}

// ClearAll 캐시 전체 비우기
func (e *Extractor) ClearAll() {
	e.mu.Lock()
	e.cache = make(map[string]contracts.EntityStats)
	e.mu.Unlock()

	e.log.Debug().Msg("cache fully cleared")
}

// CacheStats 캐시 크기와 고유 엔티티 수 반환
func (e *Extractor) CacheStats() contracts.CacheStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	entities := make(map[string]struct{})
	for key := range e.cache {
		entities[entityFromKey(key)] = struct{}{}
	}

	return contracts.CacheStats{
		CacheSize:      len(e.cache),
		CachedEntities: len(entities),
	}
}

// cacheKey builds the cache key for an entity and its history size.
func cacheKey(entityID string, historySize int) string {
	return entityID + cacheKeySep + strconv.Itoa(historySize)
}

// entityFromKey 캐시 키에서 엔티티 ID 추출
// 크기 접미사에는 구분자가 없으므로 마지막 구분자를 기준으로 자르면
// 엔티티 ID 자체에 구분자가 들어 있어도 정확함
func entityFromKey(key string) string {
	idx := strings.LastIndex(key, cacheKeySep)
	if idx < 0 {
		return key
	}
	return key[:idx]
}
