package planner

import (
	"github.com/wayfarer/planner/internal/cvrptw"
	"github.com/wayfarer/planner/internal/plan"
	"github.com/wayfarer/planner/internal/poi"
)

// toPlan converts the solver's node-index-based Solution into the
// public, self-describing plan.Plan shape.
func toPlan(problem cvrptw.Problem, sol cvrptw.Solution) plan.Plan {
	dayByIndex := map[int]cvrptw.DaySpec{}
	for _, ds := range problem.DaySpecs {
		dayByIndex[ds.DayIndex] = ds
	}

	out := plan.Plan{Days: make([]plan.Day, 0, len(sol.Days))}
	for _, route := range sol.Days {
		ds := dayByIndex[route.DayIndex]
		day := plan.Day{Date: ds.Date}
		for _, s := range route.Stops {
			n := problem.Nodes[s.NodeIdx]
			day.Stops = append(day.Stops, plan.Stop{
				POIID:        n.POIID,
				Name:         n.Name,
				Role:         string(n.Role),
				Arrival:      s.Arrival,
				StartService: s.Arrival,
				Depart:       s.Depart,
				Lat:          n.Lat,
				Lon:          n.Lon,
			})
			if n.Role == poi.RoleMeal {
				day.MealsCount++
			}
		}
		out.Days = append(out.Days, day)
	}
	return out
}
