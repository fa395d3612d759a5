package handlers

import (
	"errors"
	"net/http"

	"regionsBack/internal/models"
	"regionsBack/internal/services"
)

const (
	msgOpenFailed   = "Failed to open file"
	msgDecodeFailed = "Failed to parse UTF-8"
	msgNotFound     = "Not Found"
	msgServerError  = "Internal Server Error"
)

// RegionHandler serves one regions document. Each route gets its own instance.
type RegionHandler struct {
	Service *services.RegionService
}

func (h *RegionHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GetRegions(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidEncoding):
			writeText(w, http.StatusInternalServerError, msgDecodeFailed)
		default:
			writeText(w, http.StatusInternalServerError, msgOpenFailed)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// NotFound answers every request that no route matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, msgNotFound)
}

// ServerError answers with a bare 500 for failures outside the handlers.
func ServerError(w http.ResponseWriter) {
	writeText(w, http.StatusInternalServerError, msgServerError)
}

// writeText writes msg as is. http.Error would append a newline.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
