package payment

import (
	"context"
	"fmt"

	"minicab/internal/domain"
)

// Method is the contract every payment variant implements. Pay simulates the
// transaction: no external gateway is called and nothing is persisted.
type Method interface {
	// Name returns the variant name, e.g. "UPI".
	Name() domain.MethodName

	// Validate reports whether the amount is within the variant's limits.
	Validate(amount float64) bool

	// Pay processes the amount and returns a confirmation text.
	// Returns an AmountOutOfRangeError when the amount is outside limits.
	Pay(ctx context.Context, amount float64) (string, error)

	// TransactionFee returns the fee for the amount, independent of whether
	// the amount would validate.
	TransactionFee(amount float64) float64
}

// AmountOutOfRangeError is returned by Pay when the amount falls outside the
// variant's [Min, Max] range.
type AmountOutOfRangeError struct {
	Method domain.MethodName
	Amount float64
	Min    float64
	Max    float64
}

func (e *AmountOutOfRangeError) Error() string {
	return fmt.Sprintf("%s payment of %g must be between %g and %g", e.Method, e.Amount, e.Min, e.Max)
}

// limits carries the per-variant amount range and fee rate.
type limits struct {
	name       domain.MethodName
	minAmount  float64
	maxAmount  float64
	feePercent float64
}

func (l limits) Name() domain.MethodName {
	return l.name
}

func (l limits) Validate(amount float64) bool {
	return amount >= l.minAmount && amount <= l.maxAmount
}

func (l limits) Pay(ctx context.Context, amount float64) (string, error) {
	if !l.Validate(amount) {
		return "", &AmountOutOfRangeError{
			Method: l.name,
			Amount: amount,
			Min:    l.minAmount,
			Max:    l.maxAmount,
		}
	}
	return fmt.Sprintf("Paid %g using %s", amount, l.name), nil
}

func (l limits) TransactionFee(amount float64) float64 {
	return amount * l.feePercent / 100
}

// UPI carries no transaction fee.
type UPI struct{ limits }

// NewUPI creates a UPI payment method.
func NewUPI() UPI {
	return UPI{limits{name: domain.MethodUPI, minAmount: 1.0, maxAmount: 100000.0, feePercent: 0.0}}
}

// Card charges a 1.5% transaction fee.
type Card struct{ limits }

// NewCard creates a credit/debit card payment method.
func NewCard() Card {
	return Card{limits{name: domain.MethodCard, minAmount: 10.0, maxAmount: 500000.0, feePercent: 1.5}}
}

// Wallet charges a 0.5% transaction fee.
type Wallet struct{ limits }

// NewWallet creates an in-app wallet payment method.
func NewWallet() Wallet {
	return Wallet{limits{name: domain.MethodWallet, minAmount: 5.0, maxAmount: 50000.0, feePercent: 0.5}}
}
