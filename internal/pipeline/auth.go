package pipeline

import (
	"context"
	"fmt"
	"log"

	"minicab/internal/domain"
)

// LoginRequired ensures an authenticated user is present on the request
// before the booking proceeds.
func LoginRequired(l *log.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (*domain.Confirmation, error) {
			if req.User == nil {
				return nil, ErrUserRequired
			}
			if !req.User.Authenticated {
				return nil, fmt.Errorf("%w: %s", ErrNotAuthenticated, req.User.Name)
			}

			printf(l, "[AUTH] %s authenticated successfully", req.User.Name)
			return next(ctx, req)
		}
	}
}
