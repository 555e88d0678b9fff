package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"minicab/internal/audit"
	"minicab/internal/config"
	"minicab/internal/domain"
	"minicab/internal/payment"
	"minicab/internal/pricing"
	"minicab/internal/service"
	"minicab/internal/telemetry"
)

// EconomyPricing is a caller-defined budget strategy. The booking service
// needs no changes to support it.
type EconomyPricing struct{}

func (EconomyPricing) CalculateFare(distanceKm float64) float64 {
	return 30 + distanceKm*8
}

func main() {
	cfg := config.Default()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	var auditor *audit.Recorder
	if cfg.AuditLoggingEnabled() {
		auditor = audit.NewRecorder(os.Stderr)
	}

	nrApp := telemetry.NewApplication(cfg.AppName())

	bookingService := service.NewBookingService(cfg, logger, auditor, nrApp)

	ctx := context.Background()
	alice := &domain.User{Name: "Alice Johnson", Authenticated: true}

	fmt.Println(cfg.EnvironmentInfo())

	book := func(label string, req service.BookRideRequest) {
		fmt.Printf("\n[%s]\n", label)
		conf, err := bookingService.BookRide(ctx, req)
		if err != nil {
			fmt.Printf("booking failed: %v\n", err)
			return
		}
		fmt.Print(service.FormatConfirmation(conf))
	}

	book("normal pricing + UPI", service.BookRideRequest{
		User: alice, DistanceKm: 5.0, Pricing: pricing.Normal{}, Payment: payment.NewUPI(),
	})
	book("surge pricing + Card", service.BookRideRequest{
		User: alice, DistanceKm: 10.0, Pricing: pricing.Surge{}, Payment: payment.NewCard(),
	})
	book("normal pricing + Wallet", service.BookRideRequest{
		User: alice, DistanceKm: 3.5, Pricing: pricing.Normal{}, Payment: payment.NewWallet(),
	})
	book("caller-defined economy pricing", service.BookRideRequest{
		User: alice, DistanceKm: 7.0, Pricing: EconomyPricing{}, Payment: payment.NewWallet(),
	})

	bob := &domain.User{Name: "Bob Smith", Authenticated: false}
	book("unauthenticated user", service.BookRideRequest{
		User: bob, DistanceKm: 5.0, Pricing: pricing.Normal{}, Payment: payment.NewUPI(),
	})

	// A second reference to the shared store sees mutations made through
	// the first.
	other := config.Default()
	if err := other.Set("debug_mode", true); err != nil {
		fmt.Printf("set debug_mode: %v\n", err)
	}
	fmt.Printf("\ndebug_mode via first reference: %v\n", cfg.Get("debug_mode", false))

	if err := cfg.Set("app_name", "Rogue Cabs"); err != nil {
		fmt.Printf("set app_name rejected: %v\n", err)
	}

	fmt.Printf("\nTransaction fees on %s500:\n", cfg.CurrencySymbol())
	for _, m := range []payment.Method{payment.NewUPI(), payment.NewCard(), payment.NewWallet()} {
		fmt.Printf("  %-6s %s%.2f\n", m.Name(), cfg.CurrencySymbol(), m.TransactionFee(500))
	}

	ok, msg := cfg.ValidateBookingParams(5.0, 100.0)
	fmt.Printf("\nvalidate 5km / 100: %v (%s)\n", ok, msg)
	ok, msg = cfg.ValidateBookingParams(1000.0, 5000.0)
	fmt.Printf("validate 1000km / 5000: %v (%s)\n", ok, msg)

	fmt.Println("\nSupported payment methods:")
	for _, name := range cfg.SupportedPaymentMethods() {
		fmt.Printf("  %s supported=%v\n", name, cfg.IsPaymentMethodSupported(name))
	}

	fmt.Printf("\naudit records captured: %d\n", len(auditor.Records()))
}
