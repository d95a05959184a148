package data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
)

// DecisionRepository implements contracts.DecisionStore
// ⭐ SSOT: 스윕 판정 결과 저장소는 여기서만
type DecisionRepository struct {
	pool *pgxpool.Pool
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(pool *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{pool: pool}
}

// SaveDecisions 스윕 판정 결과 저장 (같은 엔티티/대상일이면 갱신)
func (r *DecisionRepository) SaveDecisions(ctx context.Context, decisions []contracts.Decision) error {
	if len(decisions) == 0 {
		return nil
	}

	query := `
		INSERT INTO predictions (entity_id, target_date, should_predict, confidence, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (entity_id, target_date) DO UPDATE SET
			should_predict = EXCLUDED.should_predict,
			confidence = EXCLUDED.confidence,
			reason = EXCLUDED.reason,
			created_at = EXCLUDED.created_at
	`

	for _, d := range decisions {
		if _, err := r.pool.Exec(ctx, query,
			d.EntityID, d.TargetDate, d.ShouldPredict, d.Confidence, d.Reason,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetDecisionsByDate 특정 대상일의 판정 결과 조회
func (r *DecisionRepository) GetDecisionsByDate(ctx context.Context, targetDate time.Time) ([]contracts.Decision, error) {
	query := `
		SELECT entity_id, target_date, should_predict, confidence, reason
		FROM predictions
		WHERE target_date = $1
		ORDER BY entity_id ASC
	`

	rows, err := r.pool.Query(ctx, query, targetDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []contracts.Decision
	for rows.Next() {
		var d contracts.Decision
		if err := rows.Scan(&d.EntityID, &d.TargetDate, &d.ShouldPredict, &d.Confidence, &d.Reason); err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

var _ contracts.DecisionStore = (*DecisionRepository)(nil)
