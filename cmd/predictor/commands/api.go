package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/EnamSon/temporal-event-predictor/internal/api"
	"github.com/EnamSon/temporal-event-predictor/internal/api/handlers"
	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/data"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/internal/sweep"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 실행",
	Long: `피처 추출/판정 API 서버를 실행합니다.

Endpoints:
  GET    /health
  GET    /api/entities/{id}/features?date=YYYY-MM-DD
  GET    /api/entities/{id}/decision?date=YYYY-MM-DD
  GET    /api/entities/{id}/stats
  GET    /api/cache/stats
  DELETE /api/cache?entity=<id>
  POST   /api/sweep/run?date=YYYY-MM-DD
  GET    /api/sweep/decisions?date=YYYY-MM-DD
  GET    /api/sweep/stream (websocket)

Example:
  go run ./cmd/predictor api`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := initDeps()
	if err != nil {
		return err
	}
	defer db.Close()

	// 저장소
	eventRepo := data.NewEventRepository(db.Pool)
	decisionRepo := data.NewDecisionRepository(db.Pool)

	// 추출기 (서버 수명 동안 캐시 공유)
	extractor := features.New(log.Zerolog())

	thresholds := contracts.DecisionThresholds{
		MinOccurrenceCount: cfg.Decision.MinOccurrenceCount,
		MinOccurrenceRate:  cfg.Decision.MinOccurrenceRate,
	}

	// 실시간 스트림 허브 + 스위퍼
	hub := api.NewHub(log)
	sweeper := sweep.New(eventRepo, decisionRepo, extractor, thresholds, hub, log.Zerolog())

	// 핸들러
	featureHandler := handlers.NewFeatureHandler(eventRepo, extractor, thresholds, log)
	cacheHandler := handlers.NewCacheHandler(extractor, log)
	sweepHandler := handlers.NewSweepHandler(sweeper, decisionRepo, log)

	router := api.NewRouter(cfg, featureHandler, cacheHandler, sweepHandler, hub, log)
	server := api.New(cfg, log, router)

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
