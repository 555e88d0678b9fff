package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	// ErrRestrictedKey is returned when trying to change a protected setting.
	ErrRestrictedKey = errors.New("configuration key is restricted")

	// ErrUnknownKey is returned when the configuration key does not exist.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// restrictedKeys cannot be changed through Set once the store is built.
// ResetToDefaults is the only way to restore them.
var restrictedKeys = map[string]bool{
	"app_name":      true,
	"version":       true,
	"currency_code": true,
}

// AppConfig holds all application-wide settings: app metadata, currency,
// booking limits and operational flags. It is read-mostly; writes happen
// only through Set and ResetToDefaults, guarded by an RWMutex.
type AppConfig struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates a configuration store populated with defaults, with selected
// fields overridable via environment variables.
func New() *AppConfig {
	return &AppConfig{values: defaults()}
}

var (
	defaultOnce  sync.Once
	defaultStore *AppConfig
)

// Default returns the shared process-wide configuration store. Every caller
// gets the same instance; initialization runs exactly once.
func Default() *AppConfig {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// defaults builds the full default field set.
func defaults() map[string]any {
	return map[string]any{
		// App metadata.
		"app_name":     "Mini Cab Booking System",
		"version":      "1.0",
		"release_date": time.Date(2026, time.January, 29, 0, 0, 0, 0, time.UTC),

		// Currency.
		"currency":      "₹",
		"currency_code": "INR",

		// Environment.
		"environment": getEnv("ENVIRONMENT", "production"),
		"debug_mode":  getBoolEnv("DEBUG_MODE", false),

		// Booking limits, in km and currency units.
		"min_booking_distance": 1.0,
		"max_booking_distance": 500.0,
		"min_booking_fare":     5.0,
		"max_booking_fare":     50000.0,

		// Payment settings.
		"supported_payment_methods": []string{"UPI", "Card", "Wallet"},
		"payment_timeout_seconds":   getIntEnv("PAYMENT_TIMEOUT_SECONDS", 30),

		// Operational settings.
		"max_concurrent_bookings":       1000,
		"booking_confirmation_required": true,
		"enable_surge_pricing":          true,
		"surge_multiplier_max":          2.5,

		// Audit and logging.
		"enable_audit_logging":       true,
		"enable_transaction_logging": true,
		"log_retention_days":         90,
	}
}

// Get returns the value stored under key, or def when the key is absent.
func (c *AppConfig) Get(key string, def any) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// Set updates a configuration field. Restricted keys and unknown keys are
// rejected and leave the store unchanged.
func (c *AppConfig) Set(key string, value any) error {
	if restrictedKeys[key] {
		return fmt.Errorf("%w: %q", ErrRestrictedKey, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.values[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	c.values[key] = value
	return nil
}

// GetAll returns a snapshot of every configuration field.
func (c *AppConfig) GetAll() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]any, len(c.values))
	for k, v := range c.values {
		snapshot[k] = v
	}
	return snapshot
}

// ResetToDefaults restores every field, restricted ones included.
func (c *AppConfig) ResetToDefaults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = defaults()
}

// ValidateBookingParams checks a distance and fare against the configured
// limits. The first failing check determines the returned message.
func (c *AppConfig) ValidateBookingParams(distanceKm, fare float64) (bool, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	minDist := c.values["min_booking_distance"].(float64)
	maxDist := c.values["max_booking_distance"].(float64)
	minFare := c.values["min_booking_fare"].(float64)
	maxFare := c.values["max_booking_fare"].(float64)
	currency := c.values["currency"].(string)

	switch {
	case distanceKm < minDist:
		return false, fmt.Sprintf("Distance %gkm is below minimum %gkm", distanceKm, minDist)
	case distanceKm > maxDist:
		return false, fmt.Sprintf("Distance %gkm exceeds maximum %gkm", distanceKm, maxDist)
	case fare < minFare:
		return false, fmt.Sprintf("Fare %s%g is below minimum %s%g", currency, fare, currency, minFare)
	case fare > maxFare:
		return false, fmt.Sprintf("Fare %s%g exceeds maximum %s%g", currency, fare, currency, maxFare)
	}
	return true, "Booking parameters valid"
}

// IsPaymentMethodSupported reports whether the named method is configured.
func (c *AppConfig) IsPaymentMethodSupported(name string) bool {
	for _, m := range c.SupportedPaymentMethods() {
		if m == name {
			return true
		}
	}
	return false
}

// EnvironmentInfo returns a short app/version/environment banner.
func (c *AppConfig) EnvironmentInfo() string {
	return fmt.Sprintf("%s v%s (%s)", c.AppName(), c.stringVal("version"), c.stringVal("environment"))
}

// AppName returns the configured application name.
func (c *AppConfig) AppName() string {
	return c.stringVal("app_name")
}

// CurrencySymbol returns the configured currency symbol.
func (c *AppConfig) CurrencySymbol() string {
	return c.stringVal("currency")
}

// SupportedPaymentMethods returns a copy of the configured method names.
func (c *AppConfig) SupportedPaymentMethods() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	methods, _ := c.values["supported_payment_methods"].([]string)
	out := make([]string, len(methods))
	copy(out, methods)
	return out
}

// AuditLoggingEnabled reports whether booking calls should be audited.
func (c *AppConfig) AuditLoggingEnabled() bool {
	return c.boolVal("enable_audit_logging")
}

func (c *AppConfig) stringVal(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, _ := c.values[key].(string)
	return v
}

func (c *AppConfig) boolVal(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, _ := c.values[key].(bool)
	return v
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
