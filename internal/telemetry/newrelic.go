package telemetry

import (
	"log"
	"os"
	"strconv"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewApplication initializes New Relic from NEW_RELIC_ENABLED and
// NEW_RELIC_LICENSE_KEY. Returns nil when telemetry is disabled, the key is
// missing or initialization fails; callers treat a nil application as "no
// telemetry".
func NewApplication(appName string) *newrelic.Application {
	enabled, err := strconv.ParseBool(os.Getenv("NEW_RELIC_ENABLED"))
	if err != nil || !enabled {
		return nil
	}

	licenseKey := os.Getenv("NEW_RELIC_LICENSE_KEY")
	if licenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(licenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("failed to initialize New Relic: %v", err)
		return nil
	}

	log.Printf("New Relic enabled: app=%s", appName)
	return app
}
