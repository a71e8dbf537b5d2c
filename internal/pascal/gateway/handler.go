package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/internal/pascal/calculator"
	"github.com/msto63/pascal/internal/pascal/service"
	coreGrpc "github.com/msto63/pascal/pkg/core/grpc"
	"github.com/msto63/pascal/pkg/core/health"
	"github.com/msto63/pascal/pkg/core/logging"
)

// maxBodySize bounds request bodies; a request is three short strings
const maxBodySize = 64 * 1024

// Evaluator runs calculations for the gateway
type Evaluator interface {
	Evaluate(ctx context.Context, req *service.EvaluateRequest) (*service.EvaluateResponse, error)
}

// OperatorInfo describes one supported operator
type OperatorInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// OperatorsResponse lists the supported operators
type OperatorsResponse struct {
	Operators []OperatorInfo `json:"operators"`
	Total     int            `json:"total"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Handler serves the REST and WebSocket API
type Handler struct {
	evaluator Evaluator
	health    *health.Registry
	logger    *logging.Logger
	router    *httprouter.Router
}

// NewHandler creates the API handler. registry may be nil.
func NewHandler(evaluator Evaluator, registry *health.Registry) *Handler {
	h := &Handler{
		evaluator: evaluator,
		health:    registry,
		logger:    logging.New("pascal-gateway"),
		router:    httprouter.New(),
	}
	h.setupRoutes()
	return h
}

func (h *Handler) setupRoutes() {
	h.router.POST("/api/v1/evaluate", h.handleEvaluate)
	h.router.Handler(http.MethodGet, "/api/v1/evaluate/ws", NewWebSocketHandler(h.evaluator))
	h.router.GET("/api/v1/operators", h.handleOperators)
	h.router.GET("/health", h.handleHealth)

	// httprouter sets the Allow header before calling these
	h.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed", r.Method)
	})
	h.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, http.StatusNotFound, "not_found", "Not found", r.URL.Path)
	})
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req service.EvaluateRequest
	if err := h.readJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body", err.Error())
		return
	}

	resp, err := h.evaluator.Evaluate(r.Context(), &req)
	if err != nil {
		requestID := coreGrpc.GetRequestID(r.Context())
		h.logger.WithRequestID(requestID).LogError(mdwerror.Wrap(err, "Evaluate failed").
			WithOperation("gateway.Evaluate"))
		h.writeError(w, mdwerror.GetCode(err).HTTPStatus(), "evaluation_failed", "Evaluation failed", err.Error())
		return
	}

	status := http.StatusOK
	if !resp.OK {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, resp)
}

func (h *Handler) handleOperators(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ops := calculator.Operators()
	resp := OperatorsResponse{
		Operators: make([]OperatorInfo, len(ops)),
		Total:     len(ops),
	}
	for i, op := range ops {
		resp.Operators[i] = OperatorInfo{Symbol: op.Symbol(), Name: op.Name()}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.health == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": string(health.StatusHealthy)})
		return
	}

	report := h.health.CheckWithTimeout(5 * time.Second)
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

func (h *Handler) readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
