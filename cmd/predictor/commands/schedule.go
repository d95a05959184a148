package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/data"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/internal/scheduler"
	"github.com/EnamSon/temporal-event-predictor/internal/scheduler/jobs"
	"github.com/EnamSon/temporal-event-predictor/internal/sweep"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "스케줄러 실행 (매일 자동 스윕)",
	Long: `cron 스케줄러를 실행해 매일 자동으로 판정 스윕을 수행합니다.

스케줄은 SWEEP_SCHEDULE 환경변수로 설정 (기본: 매일 05:00).

Example:
  go run ./cmd/predictor schedule`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Scheduler ===")

	cfg, log, db, err := initDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	eventRepo := data.NewEventRepository(db.Pool)
	decisionRepo := data.NewDecisionRepository(db.Pool)
	extractor := features.New(log.Zerolog())

	thresholds := contracts.DecisionThresholds{
		MinOccurrenceCount: cfg.Decision.MinOccurrenceCount,
		MinOccurrenceRate:  cfg.Decision.MinOccurrenceRate,
	}

	sweeper := sweep.New(eventRepo, decisionRepo, extractor, thresholds, nil, log.Zerolog())

	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewSweepJob(sweeper, cfg)); err != nil {
		return fmt.Errorf("add sweep job: %w", err)
	}

	sched.Start()
	fmt.Printf("✅ Scheduler started (sweep schedule: %s)\n", cfg.Sweep.Schedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
