// cmd/converterd/server.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unitconv/internal/common/config"
	apierrors "unitconv/internal/common/errors"
	"unitconv/internal/common/logger"
	"unitconv/internal/common/metrics"
	"unitconv/internal/common/observability"
	"unitconv/internal/common/validation"
	"unitconv/internal/gemini"
	"unitconv/internal/models"
	cu "unitconv/internal/ops/convert-units"
	ir "unitconv/internal/ops/interpret-request"
	"unitconv/internal/units"
	"unitconv/pkg/catalog"
)

// server wires the operation handlers to the REST surface.
type server struct {
	cfg       *config.Config
	log       logger.Logger
	obs       *observability.Observability
	convert   *cu.Handler
	interpret *ir.Handler
	responder *apierrors.Responder
	catalog   *catalog.Catalog
}

func newServer(
	cfg *config.Config,
	log logger.Logger,
	obs *observability.Observability,
	convert *cu.Handler,
	interpret *ir.Handler,
	cat *catalog.Catalog,
) *server {
	return &server{
		cfg:       cfg,
		log:       log,
		obs:       obs,
		convert:   convert,
		interpret: interpret,
		responder: apierrors.NewResponder(log),
		catalog:   cat,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/convert", s.instrument(cu.TaskType, s.handleConvert))
	mux.HandleFunc("POST /api/v1/interpret", s.instrument(ir.TaskType, s.handleInterpret))
	mux.HandleFunc("GET /api/v1/categories", s.instrument("categories", s.handleCategories))

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// pprof registers itself on the default mux.
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// instrument assigns the request ID and tracks in-flight work per operation.
func (s *server) instrument(operation string, next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		metrics.RequestsActive.WithLabelValues(operation).Inc()
		defer metrics.RequestsActive.WithLabelValues(operation).Dec()

		next(w, r, requestID)
	}
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request, requestID string) {
	start := time.Now()
	ctx := r.Context()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.responder.WriteError(w, requestID, apierrors.NewInvalidInputError("request body is not valid JSON"))
		return
	}

	if result := validation.ValidateInput(payload, cu.GetInputSchema()); !result.Valid {
		stdErr := apierrors.NewInvalidInputError(strings.Join(result.GetErrorMessages(), "; "))
		metrics.ConversionsFailed.WithLabelValues(categoryLabel(payload), string(stdErr.Code)).Inc()
		s.responder.WriteError(w, requestID, stdErr)
		return
	}

	input := &cu.Input{
		Value:    payload["value"],
		FromUnit: payload["from_unit"].(string),
		ToUnit:   payload["to_unit"].(string),
		Category: payload["category"].(string),
	}

	output, err := s.convert.Execute(ctx, input)
	if err != nil {
		stdErr := standardizeError(err)
		metrics.ConversionsFailed.WithLabelValues(input.Category, string(stdErr.Code)).Inc()
		s.obs.RecordRequestProcessed(ctx, cu.TaskType, "error")
		s.obs.RecordRequestDuration(ctx, cu.TaskType, time.Since(start), "error")
		s.responder.WriteError(w, requestID, stdErr)
		return
	}

	metrics.ConversionsCompleted.WithLabelValues(string(output.Category)).Inc()
	s.obs.RecordRequestProcessed(ctx, cu.TaskType, "success")
	s.obs.RecordRequestDuration(ctx, cu.TaskType, time.Since(start), "success")

	s.writeJSON(w, http.StatusOK, output)
}

func (s *server) handleInterpret(w http.ResponseWriter, r *http.Request, requestID string) {
	start := time.Now()
	ctx := r.Context()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.responder.WriteError(w, requestID, apierrors.NewInvalidInputError("request body is not valid JSON"))
		return
	}

	if result := validation.ValidateInput(payload, ir.GetInputSchema()); !result.Valid {
		s.responder.WriteError(w, requestID, apierrors.NewInvalidInputError(strings.Join(result.GetErrorMessages(), "; ")))
		return
	}

	text, _ := payload["text"].(string)
	request, err := s.interpret.Execute(ctx, &ir.Input{Text: text})
	if err != nil {
		s.finishInterpret(ctx, start, "error")
		s.responder.WriteError(w, requestID, standardizeError(err))
		return
	}

	// The interpreted request feeds straight into the conversion engine.
	output, err := s.convert.Execute(ctx, &cu.Input{
		Value:    request.Value,
		FromUnit: request.FromUnit,
		ToUnit:   request.ToUnit,
		Category: string(request.Category),
	})
	if err != nil {
		stdErr := standardizeError(err)
		metrics.ConversionsFailed.WithLabelValues(string(request.Category), string(stdErr.Code)).Inc()
		s.finishInterpret(ctx, start, "error")
		s.responder.WriteError(w, requestID, stdErr)
		return
	}

	metrics.ConversionsCompleted.WithLabelValues(string(output.Category)).Inc()
	s.finishInterpret(ctx, start, "success")

	s.writeJSON(w, http.StatusOK, models.InterpretationResult{
		Text:             text,
		ConversionResult: *output,
	})
}

func (s *server) finishInterpret(ctx context.Context, start time.Time, status string) {
	metrics.InterpretRequests.WithLabelValues(status).Inc()
	metrics.InterpretDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	s.obs.RecordRequestProcessed(ctx, ir.TaskType, status)
	s.obs.RecordRequestDuration(ctx, ir.TaskType, time.Since(start), status)
}

func (s *server) handleCategories(w http.ResponseWriter, r *http.Request, requestID string) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.catalog.Categories,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *server) handleReady(w http.ResponseWriter, r *http.Request) {
	// The interpret path cannot work without the provider credential.
	if s.cfg.Gemini.APIKey == "" {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"reason": "provider credential is not configured",
			"time":   time.Now().Format(time.RFC3339),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("response encoding failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// standardizeError classifies an operation sentinel into the coded error
// model. The sentinel text is the code; the wrapped remainder is the detail.
func standardizeError(err error) *apierrors.StandardError {
	detail := err.Error()
	if idx := strings.Index(detail, ": "); idx >= 0 {
		detail = detail[idx+2:]
	}

	switch {
	case errors.Is(err, units.ErrLookup):
		return apierrors.NewLookupFailureError(detail)
	case errors.Is(err, gemini.ErrService):
		return apierrors.NewServiceFailureError(errors.New(detail))
	case errors.Is(err, ir.ErrJSONMalformed):
		return apierrors.NewJSONMalformedError(errors.New(detail))
	case errors.Is(err, ir.ErrSchemaViolation):
		return apierrors.NewSchemaViolationError(detail)
	case errors.Is(err, ir.ErrNumericCoercion), errors.Is(err, cu.ErrNumericCoercion):
		return apierrors.NewNumericCoercionError(detail)
	case errors.Is(err, ir.ErrInvalidInput), errors.Is(err, cu.ErrInvalidInput):
		return apierrors.NewInvalidInputError(detail)
	default:
		return apierrors.NewInternalError(err)
	}
}

func categoryLabel(payload map[string]interface{}) string {
	if c, ok := payload["category"].(string); ok && c != "" {
		return c
	}
	return "unknown"
}
