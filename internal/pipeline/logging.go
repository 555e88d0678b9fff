package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"minicab/internal/domain"
)

// Logging records a start marker before the wrapped operation and a
// success or failure marker with the elapsed duration after it. Failures
// are re-returned unmodified. When a New Relic application is configured,
// the call runs inside a transaction and errors are noticed on it.
func Logging(l *log.Logger, app *newrelic.Application) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (*domain.Confirmation, error) {
			var txn *newrelic.Transaction
			if app != nil {
				txn = app.StartTransaction("book_ride")
				defer txn.End()
				ctx = newrelic.NewContext(ctx, txn)
			}

			start := time.Now()
			printf(l, "[LOG] executing book_ride at %s", start.Format("15:04:05"))

			conf, err := next(ctx, req)
			elapsed := time.Since(start)

			if err != nil {
				if txn != nil {
					txn.NoticeError(err)
				}
				printf(l, "[LOG] book_ride failed after %.3fs: %v", elapsed.Seconds(), err)
				return nil, err
			}

			printf(l, "[LOG] book_ride completed successfully in %.3fs", elapsed.Seconds())
			return conf, nil
		}
	}
}
