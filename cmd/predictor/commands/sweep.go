package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/data"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/internal/sweep"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
)

var (
	// sweep 플래그
	sweepDate string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "전체 엔티티 일괄 판정 실행",
	Long: `모든 엔티티에 대해 대상 날짜의 예측 판정을 실행하고 저장합니다.

Example:
  go run ./cmd/predictor sweep --date 2026-09-07
  go run ./cmd/predictor sweep`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepDate, "date", "", "대상 날짜 (YYYY-MM-DD, 기본: 내일)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Decision Sweep ===")

	ctx := cmd.Context()

	var targetDate time.Time
	var err error
	if sweepDate != "" {
		targetDate, err = time.Parse("2006-01-02", sweepDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	} else {
		targetDate = temporal.Midnight(time.Now().UTC()).AddDate(0, 0, 1)
	}

	fmt.Printf("📅 Target date: %s\n\n", targetDate.Format("2006-01-02"))

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

	summary, err := sweeper.Run(ctx, targetDate)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Printf("✅ Sweep completed: %d entities (%d predict, %d skip, %d failed)\n",
		summary.Entities, summary.Accepted, summary.Rejected, summary.Failed)

	cacheStats := extractor.CacheStats()
	fmt.Printf("📦 Cache: %d entries, %d entities\n", cacheStats.CacheSize, cacheStats.CachedEntities)

	return nil
}
