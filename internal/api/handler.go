package api

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/engine/manager"
	"Go2TrafficStats/internal/model"
	"Go2TrafficStats/pkg/countlog"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// MaxBodyBytes bounds the size of a posted count log.
const MaxBodyBytes = 32 << 20

// APIHandler holds the dependencies for API handlers.
type APIHandler struct {
	cfg *config.Config
}

// NewRouter wires the API routes.
func NewRouter(cfg *config.Config) *mux.Router {
	h := &APIHandler{cfg: cfg}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/summary", h.summaryHandler).Methods("POST")
	r.HandleFunc("/healthz", h.healthHandler).Methods("GET")
	return r
}

// summaryHandler summarizes the count log sent as the request body.
// Every request gets its own Manager, so requests never share accumulator state.
func (h *APIHandler) summaryHandler(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	src := countlog.NewReaderFrom(body, h.cfg.DelimiterRune())

	summary, err := manager.NewManager(h.cfg).Run(r.Context(), src)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	jsonBytes, err := json.Marshal(summary)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(jsonBytes); err != nil {
		log.Printf("Error writing summary response: %v", err)
	}
}

func (h *APIHandler) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrMalformedRow), errors.Is(err, model.ErrParse), errors.Is(err, model.ErrIO):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
