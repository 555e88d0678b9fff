// Package pipeline implements the cross-cutting stages wrapped around the
// booking operation: audit, input validation, authentication and logging.
// The stages form an explicit middleware chain so the nesting order is a
// documented, testable configuration.
package pipeline

import (
	"context"
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"minicab/internal/audit"
	"minicab/internal/domain"
	"minicab/internal/payment"
	"minicab/internal/pricing"
)

// Request carries the arguments of one booking call through the chain.
type Request struct {
	User       *domain.User
	DistanceKm float64
	Pricing    pricing.Strategy
	Payment    payment.Method
}

// Handler processes a booking request.
type Handler func(ctx context.Context, req Request) (*domain.Confirmation, error)

// Middleware wraps a Handler with one cross-cutting stage.
type Middleware func(next Handler) Handler

// Chain wraps h with the given middleware. The first middleware becomes the
// outermost stage.
func Chain(h Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// Deps contains the collaborators the stages need. Auditor and Telemetry
// may be nil; Logger falls back to the standard logger.
type Deps struct {
	Logger    *log.Logger
	Auditor   *audit.Recorder
	Telemetry *newrelic.Application
}

// Wrap applies the fixed stage order around core: audit outermost, then
// input validation, then authentication, with logging innermost next to the
// core operation. Effective call order: audit-begin, validate, auth,
// log-start, core, log-end, audit-captured.
func Wrap(core Handler, deps Deps) Handler {
	return Chain(core,
		Audit(deps.Auditor),
		ValidateInput(deps.Logger),
		LoginRequired(deps.Logger),
		Logging(deps.Logger, deps.Telemetry),
	)
}

func printf(l *log.Logger, format string, args ...any) {
	if l == nil {
		l = log.Default()
	}
	l.Printf(format, args...)
}
