package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
)

const maxBodyBytes = 1 << 20

// Predictor runs a single prediction.
type Predictor interface {
	Execute(ctx context.Context, req dto.PredictRequest) (dto.PredictResponse, error)
}

// ResultLister answers the stored-result queries.
type ResultLister interface {
	Execute(ctx context.Context, filter dto.ResultFilter) (dto.ResultListResponse, error)
}

// StatisticsReader summarises the stored results.
type StatisticsReader interface {
	Execute(ctx context.Context) (dto.StatisticsResponse, error)
}

// RecentLister lists the in-memory recent predictions.
type RecentLister interface {
	Execute() dto.RecentListResponse
}

// PredictionHandler serves the prediction and result endpoints.
type PredictionHandler struct {
	predict Predictor
	results ResultLister
	stats   StatisticsReader
	recent  RecentLister
	logger  *slog.Logger
}

// NewPredictionHandler creates the handler.
func NewPredictionHandler(predict Predictor, results ResultLister, stats StatisticsReader, recent RecentLister, logger *slog.Logger) *PredictionHandler {
	return &PredictionHandler{
		predict: predict,
		results: results,
		stats:   stats,
		recent:  recent,
		logger:  logger,
	}
}

// RegisterRoutes registers the prediction and result endpoints on mux.
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /predict", h.Predict)

	mux.HandleFunc("GET /results", h.ListResults)
	mux.HandleFunc("GET /results/city/{city}", h.ListByCity)
	mux.HandleFunc("GET /results/category/{category}", h.ListByCategory)
	mux.HandleFunc("GET /results/recent", h.ListRecent)
	mux.HandleFunc("GET /results/statistics", h.Statistics)
}

// Predict handles POST /predict.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	var req dto.PredictRequest
	if err := dec.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		case errors.As(err, &typeErr) && typeErr.Field != "":
			h.writeError(w, r, typeMismatch(typeErr))
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		return
	}
	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.predict.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListResults handles GET /results.
func (h *PredictionHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, dto.ResultFilter{})
}

// ListByCity handles GET /results/city/{city}.
func (h *PredictionHandler) ListByCity(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, dto.ResultFilter{City: r.PathValue("city")})
}

// ListByCategory handles GET /results/category/{category}.
func (h *PredictionHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, dto.ResultFilter{Category: r.PathValue("category")})
}

func (h *PredictionHandler) list(w http.ResponseWriter, r *http.Request, filter dto.ResultFilter) {
	resp, err := h.results.Execute(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListRecent handles GET /results/recent.
func (h *PredictionHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.recent.Execute())
}

// Statistics handles GET /results/statistics.
func (h *PredictionHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stats.Execute(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
