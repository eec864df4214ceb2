package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/ge-sync/internal/converter"
	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

type SyncRunner interface {
	Run(ctx context.Context, req model.SyncRequest) (model.SyncResult, error)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type handler struct {
	runner SyncRunner
}

func NewSyncHandler(runner SyncRunner) *handler {
	return &handler{runner: runner}
}

// Routes registers the trigger endpoints. A finished run answers 200 even
// when the sync failed; the body's success flag carries the outcome.
func (h *handler) Routes(r chi.Router) {
	r.Post("/orders", h.SyncOrders)
	r.Post("/inbound", h.SyncInbound)
	r.Post("/inventory/{type}", h.SyncInventory)
}

func (h *handler) SyncOrders(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, model.SyncRequest{Flow: model.FlowOrders})
}

func (h *handler) SyncInbound(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, model.SyncRequest{Flow: model.FlowInbound})
}

func (h *handler) SyncInventory(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, model.SyncRequest{
		Flow:          model.FlowInventory,
		InventoryType: model.InventoryType(strings.ToUpper(chi.URLParam(r, "type"))),
	})
}

func (h *handler) run(w http.ResponseWriter, r *http.Request, req model.SyncRequest) {
	res, err := h.runner.Run(r.Context(), req)
	if err != nil {
		code := mapErrorToStatus(err)
		writeJSON(r.Context(), w, code, errorResponse{Code: code, Message: err.Error()})
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.SyncResultToDTO(req, res))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrUnknownFlow):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrSyncInProgress):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "write response", logger.ErrorF(err))
	}
}
