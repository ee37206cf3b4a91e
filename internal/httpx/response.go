package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"bunueleria-system/internal/domain"
)

// Envelope is the wire shape every endpoint answers with.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, Envelope{Success: true, Data: data})
}

func WriteMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Envelope{Success: true, Message: msg})
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Envelope{Success: false, Error: msg})
}

// WriteFailure maps a service error onto the taxonomy: validation failures
// are 400, missing records 404, everything else 500.
func WriteFailure(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrQueueNotFound):
		WriteError(w, http.StatusNotFound, "Queue not found")
	default:
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
