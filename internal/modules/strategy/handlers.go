package strategy

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/domain"
)

// Handlers exposes strategy classification for UI filtering without
// running the full pipeline
type Handlers struct {
	selector *Selector
	log      zerolog.Logger
}

// NewHandlers creates strategy HTTP handlers
func NewHandlers(selector *Selector, log zerolog.Logger) *Handlers {
	return &Handlers{
		selector: selector,
		log:      log.With().Str("handler", "strategies").Logger(),
	}
}

// HandleRank returns the full catalog classified and ranked for a client.
// Query params: profile (required), horizon_years, age.
func (h *Handlers) HandleRank(w http.ResponseWriter, r *http.Request) {
	profile := domain.RiskProfile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		http.Error(w, "Unknown or missing profile", http.StatusBadRequest)
		return
	}

	horizon := queryInt(r, "horizon_years", 5)
	age := queryInt(r, "age", 40)

	ranked := h.selector.Rank(profile, horizon, age)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"strategies": ranked})
}

// HandleClassify returns the compatibility tier for one strategy.
// Path param: name. Query params: profile (required), horizon_years, age.
func (h *Handlers) HandleClassify(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.selector.catalog.HasStrategy(name) {
		http.Error(w, "Unknown strategy", http.StatusNotFound)
		return
	}

	profile := domain.RiskProfile(r.URL.Query().Get("profile"))
	if !profile.Valid() {
		http.Error(w, "Unknown or missing profile", http.StatusBadRequest)
		return
	}

	horizon := queryInt(r, "horizon_years", 5)
	age := queryInt(r, "age", 40)

	tier := h.selector.Classify(name, profile, horizon, age)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"strategy": name,
		"tier":     tier,
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
