package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
)

// Broadcaster 스윕 진행 중 판정 결과를 구독자에게 전달
// 구현이 없어도(NIL) 스윕 자체는 동작해야 함
type Broadcaster interface {
	Publish(decision contracts.Decision)
}

// Summary 스윕 1회 실행 결과 요약
type Summary struct {
	TargetDate time.Time `json:"target_date"`
	Entities   int       `json:"entities"`
	Accepted   int       `json:"accepted"`
	Rejected   int       `json:"rejected"`
	Failed     int       `json:"failed"`
}

// Sweeper runs the decision rule across every known entity for a target date
// ⭐ SSOT: 전체 엔티티 일괄 판정은 여기서만
type Sweeper struct {
	events      contracts.EventRepository
	store       contracts.DecisionStore
	extractor   *features.Extractor
	thresholds  contracts.DecisionThresholds
	broadcaster Broadcaster
	log         zerolog.Logger
}

// New creates a new sweeper. store와 broadcaster는 nil 허용
func New(
	events contracts.EventRepository,
	store contracts.DecisionStore,
	extractor *features.Extractor,
	thresholds contracts.DecisionThresholds,
	broadcaster Broadcaster,
	log zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		events:      events,
		store:       store,
		extractor:   extractor,
		thresholds:  thresholds,
		broadcaster: broadcaster,
		log:         log.With().Str("component", "sweep").Logger(),
	}
}

// Run 모든 엔티티에 대해 대상일 판정 실행
// 엔티티 단위 실패는 건너뛰고 계속 진행, 컨텍스트 취소 시 중단
func (s *Sweeper) Run(ctx context.Context, targetDate time.Time) (*Summary, error) {
	entityIDs, err := s.events.ListEntityIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entity ids: %w", err)
	}

	summary := &Summary{TargetDate: targetDate, Entities: len(entityIDs)}
	var decisions []contracts.Decision

	for _, entityID := range entityIDs {
		select {
		case <-ctx.Done():
			s.log.Warn().Msg("context cancelled during sweep")
			return summary, ctx.Err()
		default:
		}

		hist, err := s.events.GetHistory(ctx, entityID)
		if err != nil {
			s.log.Error().Err(err).
				Str("entity_id", entityID).
				Msg("failed to load history")
			summary.Failed++
			continue
		}

		decision := s.extractor.ShouldPredictEvent(entityID, targetDate, hist, s.thresholds)
		decisions = append(decisions, decision)

		if decision.ShouldPredict {
			summary.Accepted++
		} else {
			summary.Rejected++
		}

		if s.broadcaster != nil {
			s.broadcaster.Publish(decision)
		}
	}

	if s.store != nil && len(decisions) > 0 {
		if err := s.store.SaveDecisions(ctx, decisions); err != nil {
			return summary, fmt.Errorf("save decisions: %w", err)
		}
	}

	s.log.Info().
		Time("target_date", targetDate).
		Int("entities", summary.Entities).
		Int("accepted", summary.Accepted).
		Int("rejected", summary.Rejected).
		Int("failed", summary.Failed).
		Msg("sweep completed")

	return summary, nil
}
