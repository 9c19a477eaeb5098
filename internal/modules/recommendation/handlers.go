package recommendation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/domain"
	"github.com/rmoura/advisor/internal/events"
)

// Handlers exposes the recommendation pipeline over HTTP
type Handlers struct {
	service *Service
	repo    *Repository
	events  *events.Manager
	log     zerolog.Logger
}

// NewHandlers creates recommendation HTTP handlers
func NewHandlers(service *Service, repo *Repository, eventManager *events.Manager, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		repo:    repo,
		events:  eventManager,
		log:     log.With().Str("handler", "recommendations").Logger(),
	}
}

// GenerateRequest is the request body for POST /api/recommendations/generate
type GenerateRequest struct {
	Client           domain.ClientProfile  `json:"client"`
	Goal             domain.InvestmentGoal `json:"goal"`
	StrategyOverride string                `json:"strategy_override,omitempty"`
}

// GenerateResponse wraps the stored recommendation key and the result
type GenerateResponse struct {
	UUID           string                 `json:"uuid"`
	Recommendation *domain.Recommendation `json:"recommendation"`
}

// HandleGenerate runs the pipeline and stores the result
func (h *Handlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.service.Generate(r.Context(), req.Client, req.Goal, req.StrategyOverride)
	if err != nil {
		if domain.IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to generate recommendation")
		http.Error(w, "Failed to generate recommendation", http.StatusInternalServerError)
		return
	}

	id, err := h.repo.Save(rec)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to store recommendation")
		http.Error(w, "Failed to store recommendation", http.StatusInternalServerError)
		return
	}
	h.events.Emit(events.RecommendationStored, "recommendation", map[string]interface{}{"uuid": id})

	writeJSON(w, http.StatusOK, GenerateResponse{UUID: id, Recommendation: rec})
}

// HandleList returns recent stored recommendations
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	stored, err := h.repo.List(50)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list recommendations")
		http.Error(w, "Failed to list recommendations", http.StatusInternalServerError)
		return
	}
	if stored == nil {
		stored = []*StoredRecommendation{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": stored})
}

// HandleGet returns one stored recommendation by uuid
func (h *Handlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	stored, err := h.repo.GetByUUID(id)
	if err != nil {
		h.log.Error().Err(err).Str("uuid", id).Msg("Failed to load recommendation")
		http.Error(w, "Failed to load recommendation", http.StatusInternalServerError)
		return
	}
	if stored == nil {
		http.Error(w, "Recommendation not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
