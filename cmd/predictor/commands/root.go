package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EnamSon/temporal-event-predictor/pkg/config"
	"github.com/EnamSon/temporal-event-predictor/pkg/database"
	"github.com/EnamSon/temporal-event-predictor/pkg/logger"
)

var (
	// Global flags
	env     string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "predictor",
	Short: "Temporal Event Predictor - 반복 이벤트 발생 예측 서비스",
	Long: `Temporal Event Predictor CLI

엔티티별 이벤트 이력에서 발생 통계(요일 발생률, 간격 규칙성)를 추출해
특정 날짜에 이벤트를 예측할지 판정합니다.

Usage:
  go run ./cmd/predictor [command]

Examples:
  go run ./cmd/predictor api
  go run ./cmd/predictor predict --entity user-42 --date 2026-09-07
  go run ./cmd/predictor sweep --date 2026-09-07
  go run ./cmd/predictor schedule`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment override (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initDeps 공통 의존성 초기화 (설정 → 로거 → DB)
func initDeps() (*config.Config, *logger.Logger, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	// 플래그가 환경변수보다 우선
	if env != "" {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return cfg, log, db, nil
}
