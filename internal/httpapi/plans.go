package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wayfarer/planner/internal/planner"
	"github.com/wayfarer/planner/internal/planreq"
)

// PlansHandler serves POST /v1/plans.
type PlansHandler struct {
	Planner *planner.Planner
	Log     zerolog.Logger
}

func NewPlansHandler(p *planner.Planner, log zerolog.Logger) *PlansHandler {
	return &PlansHandler{Planner: p, Log: log.With().Str("component", "httpapi.plans").Logger()}
}

// RegisterRoutes mounts the plans endpoints onto r.
func RegisterRoutes(r chi.Router, h *PlansHandler) {
	r.Post("/v1/plans", h.Create)
}

type errorResponse struct {
	PlanID string `json:"planId"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}

// Create decodes a planreq.Request, runs it through the planner, and
// writes the resulting plan.Plan (or a structured error) as JSON.
func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	planID := uuid.New().String()

	var req planreq.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, planID, planner.KindInvalidRequest, err)
		return
	}

	result, err := h.Planner.Plan(r.Context(), req)
	if err != nil {
		var perr *planner.Error
		kind := planner.KindInfeasible
		if errors.As(err, &perr) {
			kind = perr.Kind
		}
		h.Log.Warn().Str("plan_id", planID).Err(err).Msg("plan request failed")
		writeError(w, planID, kind, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Plan-ID", planID)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func writeError(w http.ResponseWriter, planID string, kind planner.Kind, err error) {
	status := http.StatusUnprocessableEntity
	switch kind {
	case planner.KindInvalidRequest:
		status = http.StatusBadRequest
	case planner.KindTimeout:
		status = http.StatusGatewayTimeout
	case planner.KindDataSource:
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{PlanID: planID, Kind: string(kind), Error: err.Error()})
}
