package cvrptw

import (
	"context"
	"sort"
	"time"

	"github.com/wayfarer/planner/internal/poi"
)

// SolveOptions bounds the search.
type SolveOptions struct {
	TimeLimit time.Duration
}

// DefaultTimeLimit matches the spec's default solver budget.
const DefaultTimeLimit = 15 * time.Second

// Stop is one visited node with its computed schedule.
type Stop struct {
	NodeIdx int
	Arrival int
	Depart  int
}

// DayRoute is one day-vehicle's solution: depot, stops, depot.
type DayRoute struct {
	DayIndex int
	Stops    []Stop // includes leading and trailing depot stops
}

// Solution is the Solver's output.
type Solution struct {
	Days    []DayRoute
	Dropped []int // node indices left unrouted
}

// Solver runs construction + guided-local-search-style improvement
// over a Problem.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

// Solve returns the best solution found within opts.TimeLimit (or
// DefaultTimeLimit). An empty Solution (no days) signals infeasibility
// to the caller, which maps it to the INFEASIBLE/TIMEOUT error kinds.
func (s *Solver) Solve(ctx context.Context, p Problem, opts SolveOptions) (Solution, error) {
	limit := opts.TimeLimit
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	deadline := time.Now().Add(limit)

	eng := newEngine(p)
	eng.construct()

	for time.Now().Before(deadline) && ctx.Err() == nil {
		improved := eng.improveOnce()
		if !improved {
			eng.diversify()
		}
		if eng.staleRounds > maxStaleRounds {
			break
		}
	}

	return eng.solution(), nil
}

const maxStaleRounds = 30

// engine holds all mutable search state for one Solve call.
type engine struct {
	p Problem

	// routed[day] = ordered non-depot node indices.
	routed map[int][]int
	// usedBase tracks which base POI ids already have a routed copy,
	// enforcing the disjunction cardinality-1 constraint.
	usedBase map[string]bool
	// byDay buckets candidate node indices by their single valid day.
	byDay map[int][]int

	// penalty[i][j] accumulates guided-local-search edge penalties.
	penalty map[[2]int]int

	staleRounds int
}

func newEngine(p Problem) *engine {
	e := &engine{
		p:        p,
		routed:   map[int][]int{},
		usedBase: map[string]bool{},
		byDay:    map[int][]int{},
		penalty:  map[[2]int]int{},
	}
	for _, n := range p.Nodes {
		if n.POIID == "" {
			continue
		}
		e.byDay[n.Day] = append(e.byDay[n.Day], n.Idx)
	}
	for day := range e.byDay {
		sort.Slice(e.byDay[day], func(i, j int) bool {
			return e.byDay[day][i] < e.byDay[day][j]
		})
	}
	return e
}

func (e *engine) arcCost(i, j int) int {
	ni, nj := e.p.Nodes[i], e.p.Nodes[j]
	cost := e.p.Transit[i][j] + ni.ServiceMinutes
	if ni.Role == poi.RoleMeal && nj.Role == poi.RoleMeal {
		cost += MealToMealPenalty
	}
	if ni.ThemePrimary != "" && ni.ThemePrimary == nj.ThemePrimary {
		cost += SameThemeArcPenalty
	}
	cost += e.penalty[[2]int{i, j}]
	return cost
}

// construct builds a first solution with greedy cheapest-insertion per
// day, mandatory nodes first, mirroring OR-Tools' PATH_CHEAPEST_ARC
// first-solution strategy.
func (e *engine) construct() {
	for _, ds := range e.p.DaySpecs {
		day := ds.DayIndex
		route := []int{} // non-depot node indices, in order

		candidates := append([]int{}, e.byDay[day]...)
		sort.Slice(candidates, func(i, j int) bool {
			a, b := e.p.Nodes[candidates[i]], e.p.Nodes[candidates[j]]
			if a.IsMandatory != b.IsMandatory {
				return a.IsMandatory
			}
			// Meals next: a day with available meal candidates should
			// get one routed before the remaining attraction/hotel
			// picks crowd out its time budget, keeping meals_count at
			// or above the day's required minimum.
			aMeal, bMeal := a.Role == poi.RoleMeal, b.Role == poi.RoleMeal
			if aMeal != bMeal {
				return aMeal
			}
			return candidates[i] < candidates[j]
		})

		for _, c := range candidates {
			n := e.p.Nodes[c]
			if e.usedBase[n.POIID] {
				continue
			}
			if mealCount(e.p.Nodes, route) >= MaxMealsPerDay && n.Role == poi.RoleMeal {
				continue
			}
			pos, _, delta, ok := e.bestInsertion(ds, route, c)
			if !ok || delta > dropPenalty(n) {
				continue
			}
			route = insertAt(route, pos, c)
			e.usedBase[n.POIID] = true
		}
		e.routed[day] = route
	}
}

// dropPenalty is the cost the solver treats a node's omission as
// "paying", per the disjunction-with-penalty model: a node is only
// worth inserting when its marginal route cost undercuts this.
func dropPenalty(n Node) int {
	if n.IsMandatory {
		return DropPenaltyMandatory
	}
	return DropPenaltyBase
}

// bestInsertion finds the cheapest feasible position to insert node c
// into route for day ds, checking time-window and day-budget
// feasibility by simulating the schedule. delta is the marginal route
// cost the insertion adds, for comparison against c's drop penalty.
func (e *engine) bestInsertion(ds DaySpec, route []int, c int) (pos int, arrival int, delta int, ok bool) {
	before := e.routeCost(ds, route)
	bestCost := -1
	bestPos := -1
	bestArrival := 0
	for i := 0; i <= len(route); i++ {
		trial := insertAt(append([]int{}, route...), i, c)
		sched, feasible := e.schedule(ds, trial)
		if !feasible {
			continue
		}
		cost := e.routeCost(ds, trial)
		if bestCost == -1 || cost < bestCost {
			bestCost = cost
			bestPos = i
			bestArrival = sched[i].Arrival
		}
	}
	if bestPos == -1 {
		return 0, 0, 0, false
	}
	return bestPos, bestArrival, bestCost - before, true
}

// schedule simulates arrival/departure times for a candidate ordering
// and reports whether every window and the day budget is respected.
func (e *engine) schedule(ds DaySpec, route []int) ([]Stop, bool) {
	stops := make([]Stop, len(route))
	cursor := ds.StartMin
	prev := 0 // depot
	for i, idx := range route {
		n := e.p.Nodes[idx]
		transit := e.p.Transit[prev][idx]
		arrival := cursor + transit
		if arrival < n.Window.Open {
			arrival = n.Window.Open
		}
		// The vehicle's departure from the depot may be delayed anywhere
		// inside the day window, so the slack cap only binds between
		// successive stops, not on the first leg.
		if i > 0 && arrival-cursor-transit > MaxSlackMinutes {
			return nil, false
		}
		if arrival > n.Window.Close {
			return nil, false
		}
		depart := arrival + n.ServiceMinutes
		if depart > n.Window.Close {
			return nil, false
		}
		stops[i] = Stop{NodeIdx: idx, Arrival: arrival, Depart: depart}
		cursor = depart
		prev = idx
	}
	// Return to depot.
	finalCursor := cursor + e.p.Transit[prev][0]
	if finalCursor > ds.EndMin+60 {
		return nil, false
	}
	return stops, true
}

func (e *engine) routeCost(ds DaySpec, route []int) int {
	total := 0
	prev := 0
	for _, idx := range route {
		total += e.arcCost(prev, idx)
		prev = idx
	}
	total += e.p.Transit[prev][0]
	return total
}

func mealCount(nodes []Node, route []int) int {
	n := 0
	for _, idx := range route {
		if nodes[idx].Role == poi.RoleMeal {
			n++
		}
	}
	return n
}

func insertAt(route []int, pos, v int) []int {
	route = append(route, 0)
	copy(route[pos+1:], route[pos:])
	route[pos] = v
	return route
}

// improveOnce runs one pass of 2-opt within each day's route plus an
// attempt to insert a currently-dropped node, returning whether
// anything changed.
func (e *engine) improveOnce() bool {
	changed := false
	for _, ds := range e.p.DaySpecs {
		day := ds.DayIndex
		route := e.routed[day]
		if len(route) < 3 {
			continue
		}
		bestCost := e.routeCost(ds, route)
		for i := 0; i < len(route)-1; i++ {
			for j := i + 1; j < len(route); j++ {
				trial := reversed(route, i, j)
				sched, feasible := e.schedule(ds, trial)
				if !feasible {
					continue
				}
				_ = sched
				cost := e.routeCost(ds, trial)
				if cost < bestCost {
					bestCost = cost
					route = trial
					changed = true
				}
			}
		}
		e.routed[day] = route
	}

	if e.tryInsertDropped() {
		changed = true
	}

	if changed {
		e.staleRounds = 0
	} else {
		e.staleRounds++
	}
	return changed
}

func reversed(route []int, i, j int) []int {
	out := append([]int{}, route...)
	for a, b := i, j; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}
	return out
}

// tryInsertDropped attempts to route any base POI not yet used,
// favouring mandatory copies, since their drop penalty is effectively
// unbounded.
func (e *engine) tryInsertDropped() bool {
	changed := false
	for _, ds := range e.p.DaySpecs {
		day := ds.DayIndex
		for _, c := range e.byDay[day] {
			n := e.p.Nodes[c]
			if e.usedBase[n.POIID] {
				continue
			}
			route := e.routed[day]
			if mealCount(e.p.Nodes, route) >= MaxMealsPerDay && n.Role == poi.RoleMeal {
				continue
			}
			pos, _, delta, ok := e.bestInsertion(ds, route, c)
			if !ok || delta > dropPenalty(n) {
				continue
			}
			e.routed[day] = insertAt(route, pos, c)
			e.usedBase[n.POIID] = true
			changed = true
		}
	}
	return changed
}

// diversify bumps the penalty on the one routed arc with the highest
// cost/(1+penalty) utility across all routes, the guided-local-search
// escape mechanism, then clears
// the stale counter so the next improveOnce pass explores differently.
func (e *engine) diversify() {
	type edge struct {
		i, j int
		util float64
	}
	var worst edge
	for day, route := range e.routed {
		_ = day
		prev := 0
		for _, idx := range route {
			cost := e.arcCost(prev, idx)
			util := float64(cost) / float64(1+e.penalty[[2]int{prev, idx}])
			if util > worst.util {
				worst = edge{prev, idx, util}
			}
			prev = idx
		}
	}
	if worst.util > 0 {
		e.penalty[[2]int{worst.i, worst.j}]++
	}
	e.staleRounds = 0
}

// solution renders the engine's current routed map into the public
// Solution shape, with depot stops prepended/appended.
func (e *engine) solution() Solution {
	var sol Solution
	anyRoute := false
	for _, ds := range e.p.DaySpecs {
		route := e.routed[ds.DayIndex]
		if len(route) == 0 {
			sol.Days = append(sol.Days, DayRoute{DayIndex: ds.DayIndex})
			continue
		}
		anyRoute = true
		stops, feasible := e.schedule(ds, route)
		if !feasible {
			sol.Days = append(sol.Days, DayRoute{DayIndex: ds.DayIndex})
			continue
		}
		full := make([]Stop, 0, len(stops)+2)
		full = append(full, Stop{NodeIdx: 0, Arrival: ds.StartMin, Depart: ds.StartMin})
		full = append(full, stops...)
		last := stops[len(stops)-1]
		prevIdx := stops[len(stops)-1].NodeIdx
		endArrival := last.Depart + e.p.Transit[prevIdx][0]
		full = append(full, Stop{NodeIdx: 0, Arrival: endArrival, Depart: endArrival})
		sol.Days = append(sol.Days, DayRoute{DayIndex: ds.DayIndex, Stops: full})
	}

	for _, n := range e.p.Nodes {
		if n.POIID != "" && !e.usedBase[n.POIID] {
			sol.Dropped = append(sol.Dropped, n.Idx)
		}
	}
	if !anyRoute {
		return Solution{}
	}
	return sol
}
