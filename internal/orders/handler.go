package orders

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bunueleria-system/internal/domain"
	"bunueleria-system/internal/httpx"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler { return &Handler{service: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, order)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := ListFilter{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
		Queue:  r.URL.Query().Get("queue"),
	}
	list, err := h.service.List(r.Context(), f)
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	httpx.WriteSuccess(w, http.StatusOK, list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, order)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Order ID and status are required")
		return
	}
	if err := h.service.UpdateStatus(r.Context(), req); err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Order status updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Order deleted")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}
