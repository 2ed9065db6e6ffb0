package cvrptw

import (
	"time"

	"github.com/wayfarer/planner/internal/poi"
)

// DropPenaltyBase is the cost the solver pays to leave a
// non-mandatory POI unvisited. Mandatory copies use
// DropPenaltyMandatory instead, making their omission effectively
// forbidden short of total infeasibility.
const (
	DropPenaltyBase      = 2000
	DropPenaltyMandatory = 1e7
)

// Arc penalty constants.
const (
	MealToMealPenalty    = 40
	SameThemeArcPenalty  = 15
	MaxSlackMinutes      = 120
	MaxMealsPerDay        = 3
)

// ServiceMinutes gives the dwell time, by pacing and role.
var ServiceMinutes = map[string]map[poi.Role]int{
	"relaxed":  {poi.RoleAttraction: 120, poi.RoleMeal: 75, poi.RoleAccommodation: 0},
	"balanced": {poi.RoleAttraction: 90, poi.RoleMeal: 60, poi.RoleAccommodation: 0},
	"packed":   {poi.RoleAttraction: 60, poi.RoleMeal: 45, poi.RoleAccommodation: 0},
}

// Node is one (POI, day) replication, or the depot (index 0, present
// in every day's route).
type Node struct {
	Idx            int
	POIID          string // base catalog id; empty for the depot
	CompositeID    string // "<poi_id>#day<k>"; empty for the depot
	Name           string
	Role           poi.Role
	Lat, Lon       float64
	ServiceMinutes int
	ThemePrimary   string
	IsMandatory    bool
	// Day is the single day this node copy belongs to; -1 for the
	// depot, which exists on every day.
	Day int
	// Window is this node's single valid arrival/departure window on
	// Day (builder materialises exactly one window per day copy,
	// already intersected with opening hours and role defaults).
	Window poi.Window
}

// DaySpec is one day-vehicle's time budget.
type DaySpec struct {
	DayIndex int
	Date     time.Time
	StartMin int
	EndMin   int
	DepotID  string
}

// Problem is the Builder's output and the Solver's input.
type Problem struct {
	DaySpecs []DaySpec
	Nodes    []Node // Nodes[0] is always the depot
	Transit  [][]int // minutes, N x N, Nodes-indexed
	Degraded bool    // true if the transit matrix used a Haversine fallback
}

// BaseGroups returns, for every base POI id, the indices of every
// day-copy Node sharing that id — the disjunction groups the solver
// enforces cardinality-1 over.
func (p Problem) BaseGroups() map[string][]int {
	groups := map[string][]int{}
	for _, n := range p.Nodes {
		if n.POIID == "" {
			continue
		}
		groups[n.POIID] = append(groups[n.POIID], n.Idx)
	}
	return groups
}
