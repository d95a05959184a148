package contracts

import (
	"context"
	"time"
)

// EventRepository 엔티티별 이벤트 이력 저장소
// ⭐ SSOT: 이벤트 데이터 접근 인터페이스는 여기서만 정의
type EventRepository interface {
	// GetHistory returns the full dated history for an entity, ordered by date ascending.
	GetHistory(ctx context.Context, entityID string) (EventHistory, error)

	// ListEntityIDs returns every entity id that has at least one event.
	ListEntityIDs(ctx context.Context) ([]string, error)

	// SaveEvents inserts event records, ignoring duplicates.
	SaveEvents(ctx context.Context, events []EventRecord) error
}

// DecisionStore 스윕 판정 결과 저장소
type DecisionStore interface {
	// SaveDecisions persists decisions produced by a sweep for a target date.
	SaveDecisions(ctx context.Context, decisions []Decision) error

	// GetDecisionsByDate returns decisions previously stored for a target date.
	GetDecisionsByDate(ctx context.Context, targetDate time.Time) ([]Decision, error)
}
