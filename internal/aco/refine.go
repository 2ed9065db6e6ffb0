package aco

import (
	"context"
	"math/rand"

	"github.com/wayfarer/planner/internal/cvrptw"
	"github.com/wayfarer/planner/internal/travel"
)

// Refiner re-sequences each day's non-depot stops to shorten the
// intra-day tour, reverting to the CVRPTW order whenever a reorder
// would violate any stop's time window or the day's schedule.
type Refiner struct {
	Config Config
	Travel travel.Service
	Rand   *rand.Rand
}

func NewRefiner(svc travel.Service, cfg Config, rng *rand.Rand) *Refiner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Refiner{Config: cfg, Travel: svc, Rand: rng}
}

// Refine runs the colony over every day with more than two non-depot
// stops and returns a new Solution with improved (or unchanged)
// orderings: a reorder that is infeasible or longer by the travel
// service's distance is discarded. It never adds, removes, or
// duplicates a stop.
func (r *Refiner) Refine(ctx context.Context, problem cvrptw.Problem, sol cvrptw.Solution) cvrptw.Solution {
	out := cvrptw.Solution{Dropped: sol.Dropped}
	for _, day := range sol.Days {
		out.Days = append(out.Days, r.refineDay(ctx, problem, day))
	}
	return out
}

func (r *Refiner) refineDay(ctx context.Context, problem cvrptw.Problem, day cvrptw.DayRoute) cvrptw.DayRoute {
	if len(day.Stops) < 2 {
		return day
	}
	interior := day.Stops[1 : len(day.Stops)-1]
	if len(interior) <= 2 {
		return day
	}

	points := make([]Point, len(interior))
	for i, s := range interior {
		n := problem.Nodes[s.NodeIdx]
		points[i] = Point{X: n.Lon, Y: n.Lat}
	}

	colony, err := New(points, r.Config)
	if err != nil {
		return day
	}
	result := colony.Run(r.Rand)

	reordered := make([]cvrptw.Stop, len(interior))
	for i, cityIdx := range result.BestTour {
		reordered[i] = interior[cityIdx]
	}

	ds := findDaySpec(problem, day.DayIndex)
	rescheduled, feasible := reschedule(problem, ds, reordered)
	if !feasible {
		return day
	}

	full := make([]cvrptw.Stop, 0, len(rescheduled)+2)
	full = append(full, day.Stops[0])
	full = append(full, rescheduled...)
	full = append(full, day.Stops[len(day.Stops)-1])
	candidate := cvrptw.DayRoute{DayIndex: day.DayIndex, Stops: full}
	if TourDistanceKm(ctx, r.Travel, problem, candidate) > TourDistanceKm(ctx, r.Travel, problem, day) {
		return day
	}
	return candidate
}

func findDaySpec(problem cvrptw.Problem, dayIndex int) cvrptw.DaySpec {
	for _, ds := range problem.DaySpecs {
		if ds.DayIndex == dayIndex {
			return ds
		}
	}
	return cvrptw.DaySpec{}
}

// reschedule recomputes arrival/departure for a reordered interior
// stop list against each stop's own window; any violation reports
// infeasible so the caller reverts to the CVRPTW order, per the
// "verify then revert" resolution of the ACO/time-window open
// question.
func reschedule(problem cvrptw.Problem, ds cvrptw.DaySpec, stops []cvrptw.Stop) ([]cvrptw.Stop, bool) {
	out := make([]cvrptw.Stop, len(stops))
	cursor := ds.StartMin
	prev := 0
	for i, s := range stops {
		n := problem.Nodes[s.NodeIdx]
		transit := problem.Transit[prev][s.NodeIdx]
		arrival := cursor + transit
		if arrival < n.Window.Open {
			arrival = n.Window.Open
		}
		if arrival > n.Window.Close {
			return nil, false
		}
		depart := arrival + n.ServiceMinutes
		if depart > n.Window.Close {
			return nil, false
		}
		out[i] = cvrptw.Stop{NodeIdx: s.NodeIdx, Arrival: arrival, Depart: depart}
		cursor = depart
		prev = s.NodeIdx
	}
	if cursor+problem.Transit[prev][0] > ds.EndMin+60 {
		return nil, false
	}
	return out, true
}

// TourDistanceKm reports the Haversine-consistent distance of a
// day's ordering, for the idempotence/1.2x-bound property tests.
func TourDistanceKm(ctx context.Context, svc travel.Service, problem cvrptw.Problem, day cvrptw.DayRoute) float64 {
	total := 0.0
	for i := 0; i+1 < len(day.Stops); i++ {
		a := problem.Nodes[day.Stops[i].NodeIdx]
		b := problem.Nodes[day.Stops[i+1].NodeIdx]
		km, _ := svc.Distance(ctx, travel.Point{Lat: a.Lat, Lon: a.Lon}, travel.Point{Lat: b.Lat, Lon: b.Lon})
		total += km
	}
	return total
}
