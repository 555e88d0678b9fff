package domain

import "time"

// MethodName identifies a payment method variant.
type MethodName string

const (
	MethodUPI    MethodName = "UPI"
	MethodCard   MethodName = "Card"
	MethodWallet MethodName = "Wallet"
)

// Confirmation represents a completed booking. It is built per call and
// never persisted.
type Confirmation struct {
	BookingID      string
	AppName        string
	Passenger      string
	DistanceKm     float64
	Fare           float64
	CurrencySymbol string
	PaymentText    string
	CreatedAt      time.Time
}
