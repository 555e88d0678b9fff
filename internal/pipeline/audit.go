package pipeline

import (
	"context"

	"minicab/internal/audit"
	"minicab/internal/domain"
)

// Audit records booking transactions for compliance. A begin record is
// captured unconditionally; the captured record is written only after the
// wrapped chain succeeds, so failed calls leave a begin record with no
// matching captured record.
func Audit(rec *audit.Recorder) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (*domain.Confirmation, error) {
			actor := ""
			if req.User != nil {
				actor = req.User.Name
			}

			_ = rec.Capture(ctx, audit.EventBookingBegin, actor, req.DistanceKm)

			conf, err := next(ctx, req)
			if err != nil {
				return nil, err
			}

			_ = rec.Capture(ctx, audit.EventBookingCaptured, actor, req.DistanceKm)
			return conf, nil
		}
	}
}
