package cvrptw_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarer/planner/internal/cvrptw"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
	"github.com/wayfarer/planner/internal/timeutil"
	"github.com/wayfarer/planner/internal/travel"
)

func singaporeScenario(t *testing.T) (cvrptw.Problem, planreq.Normalized) {
	t.Helper()
	req, err := planreq.Normalize(planreq.Request{
		Destination: "Singapore",
		NumDays:     1,
		Pacing:      planreq.PacingBalanced,
	})
	require.NoError(t, err)

	sel := maut.Selection{
		Scored: []maut.Scored{
			{POI: poi.POI{
				ID: "attr-1", Name: "Gardens by the Bay", Roles: []poi.Role{poi.RoleAttraction},
				Themes:      []string{"nature"},
				Coordinates: poi.Coordinates{Lat: 1.2816, Lon: 103.8636, Set: true},
				OpenHours:   map[string][]string{},
			}, Score: 0.9},
			{POI: poi.POI{
				ID: "attr-2", Name: "Merlion Park", Roles: []poi.Role{poi.RoleAttraction},
				Themes:      []string{"cultural_history"},
				Coordinates: poi.Coordinates{Lat: 1.2868, Lon: 103.8545, Set: true},
			}, Score: 0.8},
			{POI: poi.POI{
				ID: "meal-1", Name: "Lau Pa Sat", Roles: []poi.Role{poi.RoleMeal},
				Coordinates: poi.Coordinates{Lat: 1.2807, Lon: 103.8503, Set: true},
				OpenHours:   map[string][]string{},
			}, Score: 0.7},
		},
	}

	svc := travel.NewOSRMService(travel.Config{Enabled: false}, zerolog.Nop())
	builder := cvrptw.NewBuilder(svc, zerolog.Nop())
	depot := poi.Coordinates{Lat: 1.2903, Lon: 103.852, Set: true}

	problem, err := builder.Build(context.Background(), sel, depot, req)
	require.NoError(t, err)
	return problem, req
}

func TestBuilderMaterialisesOneNodePerSelectedPOIPerDay(t *testing.T) {
	problem, req := singaporeScenario(t)
	assert.Equal(t, req.NumDays, len(problem.DaySpecs))
	// depot + 3 POIs * 1 day
	assert.Len(t, problem.Nodes, 4)
	assert.Equal(t, poi.RoleDepot, problem.Nodes[0].Role)
}

func TestSolverProducesDepotBookendedRoutes(t *testing.T) {
	problem, _ := singaporeScenario(t)
	solver := cvrptw.NewSolver()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sol, err := solver.Solve(ctx, problem, cvrptw.SolveOptions{TimeLimit: 50 * time.Millisecond})
	require.NoError(t, err)
	require.Len(t, sol.Days, 1)

	stops := sol.Days[0].Stops
	require.GreaterOrEqual(t, len(stops), 2)
	assert.Equal(t, 0, stops[0].NodeIdx)
	assert.Equal(t, 0, stops[len(stops)-1].NodeIdx)
}

func TestSolverPinsMandatoryPOIToItsDayAndWindow(t *testing.T) {
	req, err := planreq.Normalize(planreq.Request{
		Destination: "Singapore",
		NumDays:     2,
		Pacing:      planreq.PacingBalanced,
		Mandatory: map[string]planreq.Mandatory{
			"museum-1": {Day: 2, WindowStart: "14:00", WindowEnd: "16:00"},
		},
	})
	require.NoError(t, err)

	sel := maut.Selection{
		Scored: []maut.Scored{
			{POI: poi.POI{
				ID: "attr-1", Name: "Gardens by the Bay", Roles: []poi.Role{poi.RoleAttraction},
				Themes:      []string{"nature"},
				Coordinates: poi.Coordinates{Lat: 1.2816, Lon: 103.8636, Set: true},
				OpenHours:   map[string][]string{},
			}, Score: 0.9},
			{POI: poi.POI{
				ID: "meal-1", Name: "Lau Pa Sat", Roles: []poi.Role{poi.RoleMeal},
				Coordinates: poi.Coordinates{Lat: 1.2807, Lon: 103.8503, Set: true},
				OpenHours:   map[string][]string{},
			}, Score: 0.7},
			{POI: poi.POI{
				ID: "museum-1", Name: "National Museum", Roles: []poi.Role{poi.RoleAttraction},
				Themes:      []string{"cultural_history"},
				Coordinates: poi.Coordinates{Lat: 1.2966, Lon: 103.8485, Set: true},
			}, Score: 0.6},
		},
	}

	svc := travel.NewOSRMService(travel.Config{Enabled: false}, zerolog.Nop())
	builder := cvrptw.NewBuilder(svc, zerolog.Nop())
	depot := poi.Coordinates{Lat: 1.2903, Lon: 103.852, Set: true}

	problem, err := builder.Build(context.Background(), sel, depot, req)
	require.NoError(t, err)

	solver := cvrptw.NewSolver()
	sol, err := solver.Solve(context.Background(), problem, cvrptw.SolveOptions{TimeLimit: 100 * time.Millisecond})
	require.NoError(t, err)
	require.Len(t, sol.Days, 2)

	wantStart, _ := timeutil.ParseTimeString("14:00")
	wantEnd, _ := timeutil.ParseTimeString("16:00")

	var found bool
	for dayIdx, route := range sol.Days {
		for _, stop := range route.Stops {
			n := problem.Nodes[stop.NodeIdx]
			if n.POIID != "museum-1" {
				continue
			}
			found = true
			assert.Equal(t, 1, dayIdx, "mandatory POI pinned to day 2 must land on the second route")
			assert.GreaterOrEqualf(t, stop.Arrival, wantStart, "arrival %d before mandatory window start", stop.Arrival)
			assert.LessOrEqualf(t, stop.Depart, wantEnd, "departure %d after mandatory window end", stop.Depart)
		}
	}
	assert.True(t, found, "mandatory POI must be routed, never dropped")
}

func TestSolverRespectsAtMostOneVisitPerBasePOI(t *testing.T) {
	problem, _ := singaporeScenario(t)
	solver := cvrptw.NewSolver()
	sol, err := solver.Solve(context.Background(), problem, cvrptw.SolveOptions{TimeLimit: 50 * time.Millisecond})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, day := range sol.Days {
		for _, stop := range day.Stops {
			n := problem.Nodes[stop.NodeIdx]
			if n.POIID == "" {
				continue
			}
			seen[n.POIID]++
		}
	}
	for id, count := range seen {
		assert.LessOrEqualf(t, count, 1, "poi %s visited %d times", id, count)
	}
}
