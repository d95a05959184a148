package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/data"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
)

var (
	// predict 플래그
	predictEntity string
	predictDate   string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "특정 엔티티/날짜 판정 조회",
	Long: `특정 엔티티의 이력으로 대상 날짜의 피처와 판정을 출력합니다.

Example:
  go run ./cmd/predictor predict --entity user-42 --date 2026-09-07
  go run ./cmd/predictor predict --entity user-42`,
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringVar(&predictEntity, "entity", "", "엔티티 ID")
	predictCmd.Flags().StringVar(&predictDate, "date", "", "대상 날짜 (YYYY-MM-DD, 기본: 내일)")
	_ = predictCmd.MarkFlagRequired("entity")
}

func runPredict(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Predict for %s ===\n\n", predictEntity)

	ctx := cmd.Context()

	// 날짜 파싱
	var targetDate time.Time
	var err error
	if predictDate != "" {
		targetDate, err = time.Parse("2006-01-02", predictDate)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	} else {
		targetDate = temporal.Midnight(time.Now().UTC()).AddDate(0, 0, 1) // 기본: 내일
	}

	cfg, log, db, err := initDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	eventRepo := data.NewEventRepository(db.Pool)
	extractor := features.New(log.Zerolog())

	hist, err := eventRepo.GetHistory(ctx, predictEntity)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	if len(hist) == 0 {
		fmt.Printf("⚠️ No events found for %s\n", predictEntity)
		return nil
	}

	fmt.Printf("📊 History: %d events\n", len(hist))

	stats := extractor.ComputeEntityStats(predictEntity, hist)
	fmt.Printf("📅 Span: %d days, periodicity: %.2f, gap stddev: %.2f\n\n",
		stats.HistorySpanDays, stats.PeriodicityScore, stats.StddevGapBetweenEvents)

	featureVec := extractor.ExtractFeatures(predictEntity, targetDate, hist)
	fmt.Printf("=== Features for %s ===\n", targetDate.Format("2006-01-02"))
	fmt.Printf("  Weekday occurrence rate:  %.1f%%\n", featureVec.WeekdayOccurrenceRate*100)
	fmt.Printf("  Weekday occurrence count: %d\n", featureVec.WeekdayOccurrenceCount)
	fmt.Printf("  Week of month:            %d\n", featureVec.WeekOfMonth)

	thresholds := contracts.DecisionThresholds{
		MinOccurrenceCount: cfg.Decision.MinOccurrenceCount,
		MinOccurrenceRate:  cfg.Decision.MinOccurrenceRate,
	}

	decision := extractor.ShouldPredictEvent(predictEntity, targetDate, hist, thresholds)

	fmt.Println("\n=== Decision ===")
	if decision.ShouldPredict {
		fmt.Printf("✅ PREDICT (confidence: %.0f%%)\n", decision.Confidence*100)
	} else {
		fmt.Printf("❌ SKIP (confidence: %.0f%%)\n", decision.Confidence*100)
	}
	fmt.Printf("   Reason: %s\n", decision.Reason)

	return nil
}
