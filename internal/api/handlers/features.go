package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/internal/temporal"
	"github.com/EnamSon/temporal-event-predictor/pkg/logger"
)

// FeatureHandler handles feature extraction API endpoints
// ⭐ SSOT: 피처/판정 API 핸들러는 이 구조체에서만
type FeatureHandler struct {
	events     contracts.EventRepository
	extractor  *features.Extractor
	thresholds contracts.DecisionThresholds
	logger     *logger.Logger
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(
	events contracts.EventRepository,
	extractor *features.Extractor,
	thresholds contracts.DecisionThresholds,
	log *logger.Logger,
) *FeatureHandler {
	return &FeatureHandler{
		events:     events,
		extractor:  extractor,
		thresholds: thresholds,
		logger:     log,
	}
}

// GetFeatures extracts the feature vector for an entity and target date
// GET /api/entities/{id}/features?date=YYYY-MM-DD
func (h *FeatureHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	entityID, targetDate, hist, ok := h.loadRequest(w, r)
	if !ok {
		return
	}

	featureVec := h.extractor.ExtractFeatures(entityID, targetDate, hist)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entity_id":   entityID,
		"target_date": targetDate.Format("2006-01-02"),
		"features":    featureVec,
	})
}

// GetDecision evaluates the predict/no-predict rule for an entity and target date
// GET /api/entities/{id}/decision?date=YYYY-MM-DD
func (h *FeatureHandler) GetDecision(w http.ResponseWriter, r *http.Request) {
	entityID, targetDate, hist, ok := h.loadRequest(w, r)
	if !ok {
		return
	}

	decision := h.extractor.ShouldPredictEvent(entityID, targetDate, hist, h.thresholds)

	respondJSON(w, http.StatusOK, decision)
}

// GetStats returns the cached entity-level statistics
// GET /api/entities/{id}/stats
func (h *FeatureHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	entityID, _, hist, ok := h.loadRequest(w, r)
	if !ok {
		return
	}

	stats := h.extractor.ComputeEntityStats(entityID, hist)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entity_id": entityID,
		"stats":     stats,
	})
}

// loadRequest resolves the entity id, target date, and event history.
// 이력이 없는 엔티티도 유효함 (빈 이력 → 0 피처)
func (h *FeatureHandler) loadRequest(w http.ResponseWriter, r *http.Request) (string, time.Time, contracts.EventHistory, bool) {
	ctx := r.Context()
	entityID := mux.Vars(r)["id"]

	if entityID == "" {
		respondError(w, http.StatusBadRequest, "entity id is required")
		return "", time.Time{}, nil, false
	}

	targetDate, err := parseTargetDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", time.Time{}, nil, false
	}

	hist, err := h.events.GetHistory(ctx, entityID)
	if err != nil {
		h.logger.WithError(err).WithField("entity_id", entityID).Error("Failed to load event history")
		respondError(w, http.StatusInternalServerError, "failed to load event history")
		return "", time.Time{}, nil, false
	}

	return entityID, targetDate, hist, true
}

// parseTargetDate reads the date query parameter, defaulting to today (UTC).
func parseTargetDate(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return temporal.Midnight(time.Now().UTC()), nil
	}
	return time.Parse("2006-01-02", dateStr)
}
