package queues

import (
	"encoding/json"
	"net/http"

	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/httpx"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler { return &Handler{service: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	if list == nil {
		list = []Info{}
	}
	httpx.WriteSuccess(w, http.StatusOK, list)
}

func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req domain.AdjustQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "queue_name and action are required")
		return
	}
	res, err := h.service.Adjust(r.Context(), req)
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, res)
}
