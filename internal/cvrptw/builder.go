package cvrptw

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
	"github.com/wayfarer/planner/internal/timeutil"
	"github.com/wayfarer/planner/internal/travel"
)

// Builder translates a MAUT selection into a typed CVRPTW Problem.
type Builder struct {
	Travel travel.Service
	Log    zerolog.Logger
}

func NewBuilder(svc travel.Service, log zerolog.Logger) *Builder {
	return &Builder{Travel: svc, Log: log.With().Str("component", "cvrptw.builder").Logger()}
}

// Build constructs the DaySpecs, Nodes (including depot), and transit
// matrix for one request.
func (b *Builder) Build(ctx context.Context, sel maut.Selection, depot poi.Coordinates, req planreq.Normalized) (Problem, error) {
	daySpecs := buildDaySpecs(req)

	nodes := []Node{{
		Idx: 0, Role: poi.RoleDepot, Lat: depot.Lat, Lon: depot.Lon, Day: -1,
	}}

	serviceTable := ServiceMinutes[string(req.Pacing)]
	if serviceTable == nil {
		serviceTable = ServiceMinutes["balanced"]
	}

	for _, sp := range sel.Scored {
		mandatory, isMandatory := req.Mandatory[sp.POI.ID]
		materialized := 0
		for k, ds := range daySpecs {
			role := primaryRoleFor(sp.POI)
			dayWindow := poi.Window{Open: ds.StartMin, Close: ds.EndMin}

			var windows []poi.Window
			var closed bool
			if isMandatory && mandatory.Day == k+1 {
				start, _ := timeutil.ParseTimeString(mandatory.WindowStart)
				end, _ := timeutil.ParseTimeString(mandatory.WindowEnd)
				windows = []poi.Window{{Open: start, Close: end}}
			} else if isMandatory {
				// This day isn't the mandatory day for this POI; skip
				// it entirely so it only ever appears on its pinned day.
				continue
			} else {
				labels := labelsForDate(sp.POI.OpenHours, ds.Date)
				windows, closed = poi.ResolveDay(labels, role, dayWindow)
			}
			if closed || len(windows) == 0 {
				continue
			}

			for _, w := range windows {
				idx := len(nodes)
				nodes = append(nodes, Node{
					Idx:            idx,
					POIID:          sp.POI.ID,
					CompositeID:    fmt.Sprintf("%s#day%d", sp.POI.ID, k),
					Name:           sp.POI.Name,
					Role:           role,
					Lat:            sp.POI.Coordinates.Lat,
					Lon:            sp.POI.Coordinates.Lon,
					ServiceMinutes: serviceTable[role],
					ThemePrimary:   primaryTheme(sp.POI.Themes, req.SelectedThemes),
					IsMandatory:    isMandatory,
					Day:            k,
					Window:         w,
				})
				materialized++
			}
		}
		if materialized == 0 {
			b.Log.Debug().Str("poi_id", sp.POI.ID).Msg("poi has no valid day, dropped from problem")
		}
	}

	transit, degraded := b.transitMatrix(ctx, nodes)

	return Problem{DaySpecs: daySpecs, Nodes: nodes, Transit: transit, Degraded: degraded}, nil
}

func buildDaySpecs(req planreq.Normalized) []DaySpec {
	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	horizon := req.Pacing.Horizon()
	specs := make([]DaySpec, req.NumDays)
	for k := 0; k < req.NumDays; k++ {
		date := start.AddDate(0, 0, k)
		specs[k] = DaySpec{
			DayIndex: k,
			Date:     date,
			StartMin: 9 * 60,
			EndMin:   9*60 + horizon,
			DepotID:  "depot",
		}
	}
	return specs
}

// primaryRoleFor picks the single role a Node is materialised under.
// Accommodation wins whenever present. Otherwise multi-role POIs
// (e.g. a cafe that is both meal and attraction) are treated as meal
// first, since meal-cadence constraints are the tighter binding one;
// the disjunction still ensures only one visit regardless of which
// role wins.
func primaryRoleFor(p poi.POI) poi.Role {
	if poi.HasRole(p.Roles, poi.RoleAccommodation) {
		return poi.RoleAccommodation
	}
	if poi.HasRole(p.Roles, poi.RoleMeal) {
		return poi.RoleMeal
	}
	return poi.RoleAttraction
}

func primaryTheme(themes []string, selected [3]string) string {
	for _, t := range themes {
		for _, s := range selected {
			if t == s && s != "" {
				return s
			}
		}
	}
	return ""
}

func labelsForDate(openHours map[string][]string, date time.Time) []string {
	if openHours == nil {
		return nil
	}
	return openHours[date.Weekday().String()]
}

func (b *Builder) transitMatrix(ctx context.Context, nodes []Node) ([][]int, bool) {
	points := make([]travel.Point, len(nodes))
	for i, n := range nodes {
		points[i] = travel.Point{Lat: n.Lat, Lon: n.Lon}
	}
	minutes, degraded := b.Travel.Matrix(ctx, points)
	if degraded {
		b.Log.Info().Int("n", len(nodes)).Msg("transit matrix degraded to haversine fallback")
	}
	return minutes, degraded
}
