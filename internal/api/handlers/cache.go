package handlers

import (
	"net/http"

	"github.com/EnamSon/temporal-event-predictor/internal/features"
	"github.com/EnamSon/temporal-event-predictor/pkg/logger"
)

// CacheHandler handles extractor cache admin endpoints
type CacheHandler struct {
	extractor *features.Extractor
	logger    *logger.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(extractor *features.Extractor, log *logger.Logger) *CacheHandler {
	return &CacheHandler{
		extractor: extractor,
		logger:    log,
	}
}

// GetStats returns cache size and distinct entity count
// GET /api/cache/stats
func (h *CacheHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.extractor.CacheStats())
}

// Clear clears the cache, either fully or for a single entity
// DELETE /api/cache?entity=<id>
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	entityID := r.URL.Query().Get("entity")

	if entityID != "" {
		h.extractor.ClearEntity(entityID)
		h.logger.WithField("entity_id", entityID).Info("Cache cleared for entity")
	} else {
		h.extractor.ClearAll()
		h.logger.Info("Cache fully cleared")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"cleared": true,
		"entity":  entityID,
		"cache":   h.extractor.CacheStats(),
	})
}
