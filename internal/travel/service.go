package travel

import (
	"context"
)

// Point is a coordinate pair the service measures between.
type Point struct {
	Lat float64
	Lon float64
}

// Service is the travel-time abstraction the CVRPTW builder and ACO
// refiner depend on. Implementations must never block past their own
// configured timeout; on any failure they are expected to fall back
// to Haversine rather than propagate the error; every method reports
// a degraded flag instead, which the builder uses to log the
// degradation.
type Service interface {
	// Route returns driving duration in seconds between a and b.
	Route(ctx context.Context, a, b Point) (seconds float64, degraded bool)
	// Distance returns great-circle or driving distance in kilometres.
	Distance(ctx context.Context, a, b Point) (km float64, degraded bool)
	// Matrix returns an N×N table of driving minutes between every
	// pair of points. degraded is true when any fallback was used for
	// any cell.
	Matrix(ctx context.Context, points []Point) (minutes [][]int, degraded bool)
	// Refresh forces the next call to re-probe external availability.
	Refresh()
}
