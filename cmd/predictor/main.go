package main

import (
	"os"

	"github.com/EnamSon/temporal-event-predictor/cmd/predictor/commands"
)

// main is the entry point for the predictor CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/predictor [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
