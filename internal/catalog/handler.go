package catalog

import (
	"net/http"

	"bunueleria-system/internal/httpx"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler { return &Handler{catalog: c} }

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	httpx.WriteSuccess(w, http.StatusOK, h.catalog.Items())
}
