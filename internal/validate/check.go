package validate

import (
	"fmt"

	"github.com/wayfarer/planner/internal/cvrptw"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/plan"
	"github.com/wayfarer/planner/internal/poi"
)

var mealWindows = map[string]poi.Window{
	"breakfast": {Open: 7 * 60, Close: 10 * 60},
	"lunch":     {Open: 12 * 60, Close: 14 * 60},
	"dinner":    {Open: 18 * 60, Close: 21 * 60},
}

const maxDayOverrunMinutes = 60

// Check runs every post-hoc rule from the governing spec against p,
// using sel for POI/theme metadata and daySpecs for each day's budget
// window.
func Check(p plan.Plan, sel maut.Selection, daySpecs []cvrptw.DaySpec) Report {
	byID := map[string]poi.POI{}
	for _, s := range sel.Scored {
		byID[s.POI.ID] = s.POI
	}

	var violations []Violation
	stats := Stats{TotalDays: len(p.Days), ThemeDistribution: map[string]int{}}

	for dayIdx, day := range p.Days {
		dayNum := dayIdx + 1
		var ds cvrptw.DaySpec
		if dayIdx < len(daySpecs) {
			ds = daySpecs[dayIdx]
		}

		mealsToday := 0
		var prevRole string
		for _, stop := range day.Stops {
			if stop.Role == string(poi.RoleDepot) {
				if stop.Arrival > ds.EndMin+maxDayOverrunMinutes && ds.EndMin > 0 {
					overrun := stop.Arrival - ds.EndMin
					violations = append(violations, Violation{
						Kind: KindDayOverrun, Severity: SeverityWarning, Day: dayNum, POIID: stop.Name,
						Message: fmt.Sprintf("day %d ends %d min past limit", dayNum, overrun),
					})
				}
				continue
			}

			stats.TotalStops++
			if prevRole == string(poi.RoleMeal) && stop.Role == string(poi.RoleMeal) {
				violations = append(violations, Violation{
					Kind: KindConsecutiveMeals, Severity: SeverityError, Day: dayNum, POIID: stop.POIID,
					Message: fmt.Sprintf("consecutive meals on day %d", dayNum),
				})
			}

			if stop.Role == string(poi.RoleMeal) {
				mealsToday++
				if !inAnyMealWindow(stop.Arrival) {
					violations = append(violations, Violation{
						Kind: KindMealTiming, Severity: SeverityWarning, Day: dayNum, POIID: stop.POIID,
						Message: fmt.Sprintf("meal at unusual time on day %d", dayNum),
					})
				}
			}

			if candidate, ok := byID[stop.POIID]; ok {
				checkOpeningHours(candidate, stop, dayNum, day, &violations)
				for _, theme := range candidate.Themes {
					stats.ThemeDistribution[theme]++
				}
			}

			prevRole = stop.Role
		}
		stats.MealsPerDay = append(stats.MealsPerDay, mealsToday)
		stats.TotalMeals += mealsToday
	}

	for i, count := range stats.MealsPerDay {
		switch {
		case count < 1 && sel.Counts.Meal > 0:
			violations = append(violations, Violation{
				Kind: KindInsufficientMeals, Severity: SeverityError, Day: i + 1,
				Message: fmt.Sprintf("day %d: only %d meals", i+1, count),
			})
		case count < 1:
			// No meal POIs were ever available to select, so the plan
			// can't be faulted for omitting them: degrade to a warning.
			violations = append(violations, Violation{
				Kind: KindInsufficientMeals, Severity: SeverityWarning, Day: i + 1,
				Message: fmt.Sprintf("day %d: no meals (none available)", i+1),
			})
		case count > 3:
			violations = append(violations, Violation{
				Kind: KindExcessiveMeals, Severity: SeverityWarning, Day: i + 1,
				Message: fmt.Sprintf("day %d: %d meals (max 3 recommended)", i+1, count),
			})
		}
	}

	for _, theme := range sel.SelectedThemes {
		if theme == "" {
			continue
		}
		if stats.ThemeDistribution[theme] == 0 {
			violations = append(violations, Violation{
				Kind: KindThemeImbalance, Severity: SeverityWarning,
				Message: fmt.Sprintf("missing theme in itinerary: %s", theme),
			})
		}
	}

	valid := true
	for _, v := range violations {
		if v.Severity == SeverityError {
			valid = false
			break
		}
	}

	return Report{Valid: valid, Violations: violations, Stats: stats}
}

func inAnyMealWindow(arrival int) bool {
	for _, w := range mealWindows {
		if arrival >= w.Open && arrival <= w.Close {
			return true
		}
	}
	return false
}

func checkOpeningHours(p poi.POI, stop plan.Stop, dayNum int, day plan.Day, violations *[]Violation) {
	role := poi.RoleAttraction
	if stop.Role == string(poi.RoleMeal) {
		role = poi.RoleMeal
	}
	labels := p.OpenHours[day.Date.Weekday().String()]
	windows, closed := poi.ResolveDay(labels, role, poi.Window{Open: 0, Close: 24 * 60})
	if closed {
		*violations = append(*violations, Violation{
			Kind: KindPOIClosed, Severity: SeverityError, Day: dayNum, POIID: stop.POIID,
			Message: fmt.Sprintf("%s closed on %s", stop.Name, day.Date.Weekday()),
		})
		return
	}
	inWindow := false
	for _, w := range windows {
		if stop.Arrival >= w.Open && stop.Depart <= w.Close {
			inWindow = true
			break
		}
	}
	if !inWindow && len(windows) > 0 {
		*violations = append(*violations, Violation{
			Kind: KindOutsideHours, Severity: SeverityWarning, Day: dayNum, POIID: stop.POIID,
			Message: fmt.Sprintf("%s visited outside hours", stop.Name),
		})
	}
}
