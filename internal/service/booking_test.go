package service_test

import (
	"bytes"
	"context"
	"log"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicab/internal/audit"
	"minicab/internal/config"
	"minicab/internal/domain"
	"minicab/internal/payment"
	"minicab/internal/pipeline"
	"minicab/internal/pricing"
	"minicab/internal/service"
)

// mockPayment is a payment method that records calls and can inject errors.
type mockPayment struct {
	PayCallCount int32
	PayError     error
	LastAmount   float64
}

func (m *mockPayment) Name() domain.MethodName { return "Mock" }

func (m *mockPayment) Validate(amount float64) bool { return true }

func (m *mockPayment) Pay(ctx context.Context, amount float64) (string, error) {
	atomic.AddInt32(&m.PayCallCount, 1)
	m.LastAmount = amount
	if m.PayError != nil {
		return "", m.PayError
	}
	return "Paid using Mock", nil
}

func (m *mockPayment) TransactionFee(amount float64) float64 { return 0 }

// economyPricing is a caller-defined strategy, proving the open set.
type economyPricing struct{}

func (economyPricing) CalculateFare(distanceKm float64) float64 {
	return 30 + distanceKm*8
}

func newService(t *testing.T) (*service.BookingService, *audit.Recorder, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	rec := audit.NewRecorder(nil)
	svc := service.NewBookingService(config.New(), log.New(&buf, "", 0), rec, nil)
	return svc, rec, &buf
}

func authenticatedUser() *domain.User {
	return &domain.User{Name: "Alice Johnson", Authenticated: true}
}

func TestBookRide_NormalPricingUPI(t *testing.T) {
	t.Parallel()

	svc, rec, _ := newService(t)

	conf, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       authenticatedUser(),
		DistanceKm: 5.0,
		Pricing:    pricing.Normal{},
		Payment:    payment.NewUPI(),
	})
	require.NoError(t, err)
	require.NotNil(t, conf)

	assert.InDelta(t, 100.0, conf.Fare, 1e-9)
	assert.Equal(t, "Alice Johnson", conf.Passenger)
	assert.Equal(t, 5.0, conf.DistanceKm)
	assert.Equal(t, "Mini Cab Booking System", conf.AppName)
	assert.Contains(t, conf.BookingID, "BOOKING_")
	assert.Contains(t, conf.PaymentText, "UPI")
	assert.Contains(t, conf.PaymentText, "100")

	// UPI carries no fee.
	assert.Zero(t, payment.NewUPI().TransactionFee(conf.Fare))

	text := service.FormatConfirmation(conf)
	assert.Contains(t, text, "UPI")
	assert.Contains(t, text, "100")
	assert.Contains(t, text, "Alice Johnson")

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Equal(t, audit.EventBookingCaptured, records[1].Kind)
}

func TestBookRide_SurgePricingCard(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)

	conf, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       authenticatedUser(),
		DistanceKm: 10.0,
		Pricing:    pricing.Surge{},
		Payment:    payment.NewCard(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 350.0, conf.Fare, 1e-9)
	assert.InDelta(t, 5.25, payment.NewCard().TransactionFee(conf.Fare), 1e-9)
	assert.Contains(t, conf.PaymentText, "Card")
}

func TestBookRide_CallerDefinedStrategy(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)

	conf, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       authenticatedUser(),
		DistanceKm: 7.0,
		Pricing:    economyPricing{},
		Payment:    payment.NewWallet(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 86.0, conf.Fare, 1e-9)
}

func TestBookRide_UnauthenticatedUser_NoPaymentSideEffect(t *testing.T) {
	t.Parallel()

	svc, rec, _ := newService(t)
	mock := &mockPayment{}

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       &domain.User{Name: "Bob Smith", Authenticated: false},
		DistanceKm: 5.0,
		Pricing:    pricing.Normal{},
		Payment:    mock,
	})
	require.ErrorIs(t, err, pipeline.ErrNotAuthenticated)
	assert.Contains(t, err.Error(), "Bob Smith")

	// Fare and payment logic never ran.
	assert.Zero(t, atomic.LoadInt32(&mock.PayCallCount))

	// Audit keeps the begin record only.
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, audit.EventBookingBegin, records[0].Kind)
}

func TestBookRide_InvalidDistance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		distanceKm float64
	}{
		{"zero distance", 0},
		{"negative distance", -1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, _ := newService(t)
			mock := &mockPayment{}

			_, err := svc.BookRide(context.Background(), service.BookRideRequest{
				User:       authenticatedUser(),
				DistanceKm: tc.distanceKm,
				Pricing:    pricing.Normal{},
				Payment:    mock,
			})
			require.ErrorIs(t, err, pipeline.ErrDistanceNotPositive)
			assert.Zero(t, atomic.LoadInt32(&mock.PayCallCount))
		})
	}
}

func TestBookRide_LongDistance_SucceedsWithWarning(t *testing.T) {
	t.Parallel()

	svc, _, buf := newService(t)

	conf, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       authenticatedUser(),
		DistanceKm: 600,
		Pricing:    pricing.Normal{},
		Payment:    payment.NewCard(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 6050.0, conf.Fare, 1e-9)
	assert.Contains(t, buf.String(), "long distance booking")
}

func TestBookRide_AmountOutOfRange_Propagated(t *testing.T) {
	t.Parallel()

	svc, rec, _ := newService(t)

	// Surge over 2500km prices above the wallet maximum.
	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		User:       authenticatedUser(),
		DistanceKm: 2500,
		Pricing:    pricing.Surge{},
		Payment:    payment.NewWallet(),
	})

	var oor *payment.AmountOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, domain.MethodWallet, oor.Method)
	assert.Greater(t, oor.Amount, oor.Max)

	// Core ran and failed, so the captured record is skipped.
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, audit.EventBookingBegin, records[0].Kind)
}
