package pricing

// Strategy calculates a ride fare from a distance. The set of strategies is
// open: callers may supply their own implementations without any change to
// the booking service.
//
// Strategies do not validate the distance; that is the request pipeline's
// job. They must be side-effect free.
type Strategy interface {
	CalculateFare(distanceKm float64) float64
}

// Normal is the standard linear fare.
type Normal struct{}

const (
	normalBaseFare  = 50.0
	normalPerKmRate = 10.0
)

// CalculateFare returns base fare plus the per-km charge.
func (Normal) CalculateFare(distanceKm float64) float64 {
	return normalBaseFare + distanceKm*normalPerKmRate
}

// Surge is peak-hours pricing with a higher base and per-km rate.
type Surge struct{}

const (
	surgeBaseFare  = 100.0
	surgePerKmRate = 25.0
)

// CalculateFare returns the surge base fare plus the surge per-km charge.
func (Surge) CalculateFare(distanceKm float64) float64 {
	return surgeBaseFare + distanceKm*surgePerKmRate
}

// Estimate pairs a distance with a strategy so the strategy can be swapped
// at runtime while the distance stays fixed.
type Estimate struct {
	DistanceKm float64
	Strategy   Strategy
}

// Fare asks the current strategy for the fare.
func (e Estimate) Fare() float64 {
	return e.Strategy.CalculateFare(e.DistanceKm)
}
