package service

import (
	"fmt"
	"strings"

	"minicab/internal/domain"
)

// FormatConfirmation formats the confirmation as a string (for console/print).
// The service itself never writes to the console; callers decide how to
// display the result.
func FormatConfirmation(c *domain.Confirmation) string {
	divider := strings.Repeat("=", 60)
	return fmt.Sprintf(`
%s
%s
%s
Booking ID: %s
Passenger: %s
Distance: %g km
Fare: %s%g
Payment: %s
%s
`,
		divider,
		c.AppName,
		divider,
		c.BookingID,
		c.Passenger,
		c.DistanceKm,
		c.CurrencySymbol, c.Fare,
		c.PaymentText,
		divider,
	)
}
