package data

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
)

// EventRepository implements contracts.EventRepository
// ⭐ SSOT: 이벤트 이력 저장소는 여기서만
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// GetHistory 엔티티의 전체 이벤트 이력 조회 (날짜 오름차순)
func (r *EventRepository) GetHistory(ctx context.Context, entityID string) (contracts.EventHistory, error) {
	query := `
		SELECT entity_id, event_date
		FROM events
		WHERE entity_id = $1
		ORDER BY event_date ASC
	`

	rows, err := r.pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events contracts.EventHistory
	for rows.Next() {
		var e contracts.EventRecord
		if err := rows.Scan(&e.EntityID, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListEntityIDs 이벤트가 1건 이상 있는 모든 엔티티 ID 조회
func (r *EventRepository) ListEntityIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT entity_id
		FROM events
		ORDER BY entity_id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveEvents 이벤트 레코드 저장 (중복은 무시)
func (r *EventRepository) SaveEvents(ctx context.Context, events []contracts.EventRecord) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO events (entity_id, event_date)
		VALUES ($1, $2)
		ON CONFLICT (entity_id, event_date) DO NOTHING
	`

	for _, e := range events {
		if _, err := r.pool.Exec(ctx, query, e.EntityID, e.Date); err != nil {
			return err
		}
	}
	return nil
}

var _ contracts.EventRepository = (*EventRepository)(nil)
