package pipeline

import (
	"context"
	"fmt"
	"log"
	"math"

	"minicab/internal/domain"
)

// longDistanceKm is the threshold above which a booking is allowed but a
// warning is logged.
const longDistanceKm = 500.0

// ValidateInput checks the requested distance before the booking proceeds.
// NaN and infinite distances are rejected, as are zero and negative ones.
// Very long distances pass with a warning.
func ValidateInput(l *log.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (*domain.Confirmation, error) {
			d := req.DistanceKm

			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("%w, got %v", ErrDistanceNotANumber, d)
			}
			if d <= 0 {
				return nil, fmt.Errorf("%w, got %g", ErrDistanceNotPositive, d)
			}
			if d > longDistanceKm {
				printf(l, "[VALIDATION] warning: long distance booking (%g km)", d)
			}

			return next(ctx, req)
		}
	}
}
