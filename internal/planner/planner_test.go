package planner_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/planner"
	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
	"github.com/wayfarer/planner/internal/poi/memcatalog"
	"github.com/wayfarer/planner/internal/travel"
)

func openAllWeek() map[string][]string {
	labels := []string{"open 24 hours"}
	return map[string][]string{
		poi.Monday: labels, poi.Tuesday: labels, poi.Wednesday: labels,
		poi.Thursday: labels, poi.Friday: labels, poi.Saturday: labels, poi.Sunday: labels,
	}
}

func fixturePOI(id string, roles []poi.Role, themes []string, lat, lon float64) poi.POI {
	return poi.POI{
		ID:          id,
		Name:        "POI " + id,
		Roles:       roles,
		Themes:      themes,
		Coordinates: poi.Coordinates{Lat: lat, Lon: lon, Set: true},
		Rating:      poi.Rating{Value: 4.5, Known: true},
		ReviewCount: poi.ReviewCount{Value: 500, Known: true},
		PriceLevel:  poi.PriceLevel{Value: 2, Known: true},
		OpenHours:   openAllWeek(),
	}
}

func buildFixtureCatalog() *memcatalog.Catalog {
	var pois []poi.POI
	for i := 0; i < 6; i++ {
		lat := 48.85 + float64(i)*0.01
		lon := 2.35 + float64(i)*0.01
		pois = append(pois, fixturePOI(
			"attr-"+string(rune('a'+i)),
			memcatalog.ParseRoles("attraction"),
			[]string{"cultural_history"},
			lat, lon,
		))
	}
	for i := 0; i < 4; i++ {
		lat := 48.86 + float64(i)*0.01
		lon := 2.34 + float64(i)*0.01
		pois = append(pois, fixturePOI(
			"meal-"+string(rune('a'+i)),
			memcatalog.ParseRoles("meal"),
			[]string{"food"},
			lat, lon,
		))
	}
	pois = append(pois, fixturePOI("hotel-1", memcatalog.ParseRoles("accommodation"), []string{"lodging"}, 48.857, 2.351))
	return memcatalog.New(pois...)
}

func newTestPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	svc := travel.NewOSRMService(travel.Config{Enabled: false}, zerolog.Nop())
	cat := buildFixtureCatalog()
	return planner.New(cat, svc, zerolog.Nop())
}

func TestPlanHappyPath(t *testing.T) {
	p := newTestPlanner(t)
	req := planreq.Request{
		Destination:    "Paris",
		NumDays:        2,
		BudgetTier:     planreq.BudgetSensible,
		Pacing:         planreq.PacingBalanced,
		InterestThemes: []string{"cultural_history"},
	}

	result, err := p.Plan(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Days, 2)
	for _, day := range result.Days {
		assert.GreaterOrEqual(t, day.MealsCount, 0)
		if len(day.Stops) > 0 {
			assert.Equal(t, "depot", day.Stops[0].Role)
			assert.Equal(t, "depot", day.Stops[len(day.Stops)-1].Role)
		}
	}
	assert.Equal(t, "cvrptw+aco", result.Metrics.OptimizationMethod)
}

func TestPlanRejectsInvalidRequest(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.Plan(context.Background(), planreq.Request{})
	require.Error(t, err)
	var perr *planner.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.KindInvalidRequest, perr.Kind)
}

func TestPlanMapsOracleFailureToDataSource(t *testing.T) {
	svc := travel.NewOSRMService(travel.Config{Enabled: false}, zerolog.Nop())
	p := planner.New(failingOracle{}, svc, zerolog.Nop())

	_, err := p.Plan(context.Background(), planreq.Request{
		Destination: "Nowhere",
		NumDays:     1,
	})
	require.Error(t, err)
	var perr *planner.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, planner.KindDataSource, perr.Kind)
}

type failingOracle struct{}

func (failingOracle) FetchCandidates(context.Context, maut.Query) ([]poi.POI, error) {
	return nil, assertErr
}

var assertErr = &testOracleErr{}

type testOracleErr struct{}

func (*testOracleErr) Error() string { return "oracle unavailable" }
