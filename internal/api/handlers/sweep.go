package handlers

import (
	"net/http"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/sweep"
	"github.com/EnamSon/temporal-event-predictor/pkg/logger"
)

// SweepHandler handles sweep API endpoints
type SweepHandler struct {
	sweeper *sweep.Sweeper
	store   contracts.DecisionStore
	logger  *logger.Logger
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(sweeper *sweep.Sweeper, store contracts.DecisionStore, log *logger.Logger) *SweepHandler {
	return &SweepHandler{
		sweeper: sweeper,
		store:   store,
		logger:  log,
	}
}

// RunSweep runs a decision sweep for a target date
// POST /api/sweep/run?date=YYYY-MM-DD
func (h *SweepHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	targetDate, err := parseTargetDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.sweeper.Run(r.Context(), targetDate)
	if err != nil {
		h.logger.WithError(err).Error("Sweep failed")
		respondError(w, http.StatusInternalServerError, "sweep failed")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetDecisions returns stored decisions for a target date
// GET /api/sweep/decisions?date=YYYY-MM-DD
func (h *SweepHandler) GetDecisions(w http.ResponseWriter, r *http.Request) {
	targetDate, err := parseTargetDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	decisions, err := h.store.GetDecisionsByDate(r.Context(), targetDate)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load decisions")
		respondError(w, http.StatusInternalServerError, "failed to load decisions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"target_date": targetDate.Format("2006-01-02"),
		"count":       len(decisions),
		"decisions":   decisions,
	})
}
