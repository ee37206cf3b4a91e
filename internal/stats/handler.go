package stats

import (
	"net/http"
	"time"

	"bunueleria-system/internal/httpx"
)

type Handler struct {
	repo RepositoryInterface
}

func NewHandler(repo RepositoryInterface) *Handler { return &Handler{repo: repo} }

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	s, err := h.repo.Daily(r.Context(), date)
	if err != nil {
		httpx.WriteFailure(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, s)
}
