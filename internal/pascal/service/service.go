package service

import (
	"context"
	"encoding/json"
	"math"
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/internal/pascal/calculator"
	"github.com/msto63/pascal/internal/pascal/presenter"
	"github.com/msto63/pascal/pkg/core/logging"
)

// EvaluateRequest is a single two-operand calculation
type EvaluateRequest struct {
	First    string `json:"first"`
	Second   string `json:"second"`
	Operator string `json:"operator"`
}

// EvaluateResponse carries either the result or the alert for a failure
type EvaluateResponse struct {
	OK        bool    `json:"ok"`
	Display   string  `json:"display,omitempty"`
	Value     float64 `json:"value"`
	ErrorKind string  `json:"error_kind,omitempty"`
	Title     string  `json:"title,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// MarshalJSON omits value on failures and for non-finite results, which
// JSON cannot represent; display still carries "+Inf", "-Inf" or "NaN".
func (r EvaluateResponse) MarshalJSON() ([]byte, error) {
	type plain EvaluateResponse
	out := struct {
		plain
		Value *float64 `json:"value,omitempty"`
	}{plain: plain(r)}
	if r.OK && !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
		out.Value = &r.Value
	}
	return json.Marshal(out)
}

// Alert returns the alert of a failed response
func (r *EvaluateResponse) Alert() presenter.Alert {
	return presenter.Alert{Title: r.Title, Message: r.Message}
}

// Stats holds evaluation counters
type Stats struct {
	Total           uint64 `json:"total"`
	Succeeded       uint64 `json:"succeeded"`
	InvalidOperand  uint64 `json:"invalid_operand"`
	MissingOperator uint64 `json:"missing_operator"`
	DivisionByZero  uint64 `json:"division_by_zero"`
}

// Failed returns the number of failed evaluations
func (s Stats) Failed() uint64 {
	return s.InvalidOperand + s.MissingOperator + s.DivisionByZero
}

// Service is the Pascal calculation service
type Service struct {
	logger *logging.Logger

	total           atomic.Uint64
	succeeded       atomic.Uint64
	invalidOperand  atomic.Uint64
	missingOperator atomic.Uint64
	divisionByZero  atomic.Uint64
}

// Config holds service configuration
type Config struct {
	// Logger overrides the default "pascal" logger
	Logger *logging.Logger
}

// NewService creates a new Pascal service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("pascal")
	}

	return &Service{logger: logger}, nil
}

// Evaluate runs one calculation. Evaluation failures are reported in the
// response; the error return is reserved for a cancelled context.
func (s *Service) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "evaluation cancelled").
			WithCode(mdwerror.CodeTimeout).
			WithOperation("service.Evaluate")
	}
	if req == nil {
		req = &EvaluateRequest{}
	}

	start := time.Now()
	s.total.Add(1)

	result, err := calculator.Evaluate(req.First, req.Second, req.Operator)
	if err != nil {
		kind, _ := calculator.KindOf(err)
		s.countFailure(kind)

		alert := presenter.AlertFor(kind)
		s.logger.Info("Evaluation rejected",
			"first", req.First,
			"operator", req.Operator,
			"second", req.Second,
			"kind", kind.String(),
		)

		return &EvaluateResponse{
			OK:        false,
			ErrorKind: kind.String(),
			Title:     alert.Title,
			Message:   alert.Message,
		}, nil
	}

	s.succeeded.Add(1)
	s.logger.Debug("Evaluated",
		"first", req.First,
		"operator", req.Operator,
		"second", req.Second,
		"display", result.Display,
		"duration", time.Since(start),
	)

	return &EvaluateResponse{
		OK:      true,
		Display: result.Display,
		Value:   result.Value,
	}, nil
}

// Stats returns a snapshot of the evaluation counters
func (s *Service) Stats() Stats {
	return Stats{
		Total:           s.total.Load(),
		Succeeded:       s.succeeded.Load(),
		InvalidOperand:  s.invalidOperand.Load(),
		MissingOperator: s.missingOperator.Load(),
		DivisionByZero:  s.divisionByZero.Load(),
	}
}

func (s *Service) countFailure(kind calculator.ErrorKind) {
	switch kind {
	case calculator.InvalidOperand:
		s.invalidOperand.Add(1)
	case calculator.MissingOperator:
		s.missingOperator.Add(1)
	case calculator.DivisionByZero:
		s.divisionByZero.Add(1)
	}
}
