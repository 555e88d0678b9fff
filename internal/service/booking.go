package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"minicab/internal/audit"
	"minicab/internal/config"
	"minicab/internal/domain"
	"minicab/internal/payment"
	"minicab/internal/pipeline"
	"minicab/internal/pricing"
)

// BookingService orchestrates fare calculation and payment behind the
// cross-cutting request pipeline. Pricing strategies and payment methods
// are injected per call, so new variants need no changes here.
type BookingService struct {
	cfg     *config.AppConfig
	handler pipeline.Handler
}

// NewBookingService creates a BookingService with its request pipeline
// assembled. logger, auditor and nrApp may be nil.
func NewBookingService(cfg *config.AppConfig, logger *log.Logger, auditor *audit.Recorder, nrApp *newrelic.Application) *BookingService {
	s := &BookingService{cfg: cfg}
	s.handler = pipeline.Wrap(s.bookRide, pipeline.Deps{
		Logger:    logger,
		Auditor:   auditor,
		Telemetry: nrApp,
	})
	return s
}

// BookRideRequest contains the parameters for booking a ride.
type BookRideRequest struct {
	User       *domain.User
	DistanceKm float64
	Pricing    pricing.Strategy
	Payment    payment.Method
}

// BookRide books a ride. The call runs through the full request pipeline;
// pipeline failures and payment failures surface to the caller unmodified.
func (s *BookingService) BookRide(ctx context.Context, req BookRideRequest) (*domain.Confirmation, error) {
	return s.handler(ctx, pipeline.Request{
		User:       req.User,
		DistanceKm: req.DistanceKm,
		Pricing:    req.Pricing,
		Payment:    req.Payment,
	})
}

// bookRide is the core operation. It runs only after every pipeline stage
// has passed.
func (s *BookingService) bookRide(ctx context.Context, req pipeline.Request) (*domain.Confirmation, error) {
	fare := req.Pricing.CalculateFare(req.DistanceKm)

	paymentText, err := req.Payment.Pay(ctx, fare)
	if err != nil {
		return nil, err
	}

	return &domain.Confirmation{
		BookingID:      generateBookingID(),
		AppName:        s.cfg.AppName(),
		Passenger:      req.User.Name,
		DistanceKm:     req.DistanceKm,
		Fare:           fare,
		CurrencySymbol: s.cfg.CurrencySymbol(),
		PaymentText:    paymentText,
		CreatedAt:      time.Now(),
	}, nil
}

// generateBookingID derives an id from the millisecond clock. Ids are not
// unique within the same millisecond window; callers needing a uniqueness
// guarantee should use a random token instead.
func generateBookingID() string {
	return fmt.Sprintf("BOOKING_%05d", time.Now().UnixMilli()%100000)
}
