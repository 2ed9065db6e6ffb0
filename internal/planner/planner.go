package planner

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/wayfarer/planner/internal/aco"
	"github.com/wayfarer/planner/internal/cvrptw"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/plan"
	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
	"github.com/wayfarer/planner/internal/travel"
)

// Planner is the process-wide, goroutine-safe handle every request
// runs its pipeline through. Construct one per process; each call to
// Plan owns its own Selection, Problem, Solution, and ACO state, per
// the no-shared-mutable-state resource model.
type Planner struct {
	Selector *maut.Selector
	Builder  *cvrptw.Builder
	Solver   *cvrptw.Solver
	ACOCfg   aco.Config
	Travel   travel.Service
	Log      zerolog.Logger
}

// New wires a Planner from its collaborators.
func New(oracle maut.CatalogOracle, travelSvc travel.Service, log zerolog.Logger) *Planner {
	return &Planner{
		Selector: maut.NewSelector(oracle),
		Builder:  cvrptw.NewBuilder(travelSvc, log),
		Solver:   cvrptw.NewSolver(),
		ACOCfg:   aco.DefaultConfig(),
		Travel:   travelSvc,
		Log:      log.With().Str("component", "planner").Logger(),
	}
}

// Plan runs the full Selector -> Builder -> Solver -> Refiner pipeline
// for one request.
func (p *Planner) Plan(ctx context.Context, req planreq.Request) (*plan.Plan, error) {
	normalized, err := planreq.Normalize(req)
	if err != nil {
		return nil, newError(KindInvalidRequest, "request failed normalization", err)
	}

	sel, err := p.Selector.Select(ctx, normalized)
	if err != nil {
		return nil, newError(KindDataSource, "catalog oracle failure", err)
	}

	depot := resolveDepot(normalized, sel)

	problem, err := p.Builder.Build(ctx, sel, depot, normalized)
	if err != nil {
		return nil, newError(KindDataSource, "failed to build routing problem", err)
	}
	if problem.Degraded {
		p.Log.Info().Str("kind", string(KindDegraded)).Msg("transit matrix used haversine fallback")
	}

	timeLimit := normalized.TimeLimit
	if timeLimit <= 0 {
		timeLimit = cvrptw.DefaultTimeLimit
	}
	solveCtx, cancel := context.WithTimeout(ctx, timeLimit+time.Second)
	defer cancel()

	solution, err := p.Solver.Solve(solveCtx, problem, cvrptw.SolveOptions{TimeLimit: timeLimit})
	if err != nil {
		return nil, newError(KindInfeasible, "solver failed", err)
	}
	if len(solution.Days) == 0 {
		if solveCtx.Err() != nil {
			return nil, newError(KindTimeout, "solver exhausted its time budget without a solution", solveCtx.Err())
		}
		return nil, newError(KindInfeasible, "no feasible solution found", nil)
	}

	preACODistance := p.totalDistance(ctx, problem, solution)

	refiner := aco.NewRefiner(p.Travel, p.ACOCfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	refined := refiner.Refine(ctx, problem, solution)

	postACODistance := p.totalDistance(ctx, problem, refined)

	result := toPlan(problem, refined)
	result.Metrics = plan.Metrics{
		TotalDistanceCVRPTWKm: preACODistance,
		TotalDistanceACOKm:    postACODistance,
		OptimizationMethod:    "cvrptw+aco",
	}
	return &result, nil
}

func (p *Planner) totalDistance(ctx context.Context, problem cvrptw.Problem, sol cvrptw.Solution) float64 {
	total := 0.0
	for _, day := range sol.Days {
		total += aco.TourDistanceKm(ctx, p.Travel, problem, day)
	}
	return total
}

func resolveDepot(req planreq.Normalized, sel maut.Selection) poi.Coordinates {
	if req.Depot != nil {
		return poi.Coordinates{Lat: req.Depot.Lat, Lon: req.Depot.Lon, Set: true}
	}
	if sel.ChosenHotel != nil {
		return sel.ChosenHotel.Coordinates
	}
	return poi.Coordinates{}
}
