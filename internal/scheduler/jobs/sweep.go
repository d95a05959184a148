package jobs

import (
	"context"
	"time"

	"github.com/EnamSon/temporal-event-predictor/internal/sweep"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
	"github.com/EnamSon/temporal-event-predictor/pkg/config"
)

// SweepJob 매일 전체 엔티티에 대해 예측 판정 스윕 실행
// 대상일은 오늘 + HorizonDays
type SweepJob struct {
	sweeper *sweep.Sweeper
	cfg     *config.Config
}

// NewSweepJob creates a new sweep job
func NewSweepJob(sweeper *sweep.Sweeper, cfg *config.Config) *SweepJob {
	return &SweepJob{
		sweeper: sweeper,
		cfg:     cfg,
	}
}

// Name returns the job name
func (j *SweepJob) Name() string {
	return "decision-sweep"
}

// Schedule returns the cron schedule expression
func (j *SweepJob) Schedule() string {
	return j.cfg.Sweep.Schedule
}

// Run executes the sweep for the configured horizon
func (j *SweepJob) Run(ctx context.Context) error {
	targetDate := temporal.Midnight(time.Now().UTC()).AddDate(0, 0, j.cfg.Sweep.HorizonDays)

	_, err := j.sweeper.Run(ctx, targetDate)
	return err
}
