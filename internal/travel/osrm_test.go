package travel

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKmKnownDistance(t *testing.T) {
	// Singapore Marina Bay to Changi Airport, roughly 17km apart.
	km := HaversineKm(1.2838, 103.8591, 1.3644, 103.9915)
	assert.InDelta(t, 17.0, km, 2.0)
}

func TestHaversineKmZeroDistance(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(1.29, 103.85, 1.29, 103.85), 1e-9)
}

func TestOSRMServiceFallsBackWhenDisabled(t *testing.T) {
	svc := NewOSRMService(Config{Enabled: false}, zerolog.Nop())
	a := Point{Lat: 1.29, Lon: 103.85}
	b := Point{Lat: 1.36, Lon: 103.99}

	seconds, degraded := svc.Route(context.Background(), a, b)
	require.True(t, degraded)
	assert.Greater(t, seconds, 0.0)

	km, degraded := svc.Distance(context.Background(), a, b)
	require.True(t, degraded)
	assert.Greater(t, km, 0.0)
}

func TestOSRMServiceMatrixFallsBackWhenUnreachable(t *testing.T) {
	svc := NewOSRMService(Config{Enabled: true, BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())
	points := make([]Point, 2)
	points[0] = Point{Lat: 1.29, Lon: 103.85}
	points[1] = Point{Lat: 1.36, Lon: 103.99}

	minutes, degraded := svc.Matrix(context.Background(), points)
	require.True(t, degraded)
	require.Len(t, minutes, 2)
	assert.Equal(t, 0, minutes[0][0])
	assert.Greater(t, minutes[0][1], 0)
}

func TestOSRMServiceMatrixDiagonalAlwaysZero(t *testing.T) {
	svc := NewOSRMService(Config{Enabled: false}, zerolog.Nop())
	points := []Point{{Lat: 1.29, Lon: 103.85}, {Lat: 1.30, Lon: 103.86}, {Lat: 1.31, Lon: 103.87}}
	minutes, _ := svc.Matrix(context.Background(), points)
	for i := range points {
		assert.Equal(t, 0, minutes[i][i])
	}
}
