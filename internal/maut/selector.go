package maut

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
)

// MinRating and MinReviews are the oracle pre-filter floors the
// selector always requests.
const (
	MinRating  = 2.0
	MinReviews = 10
)

// Selector scores and trims the catalog oracle's candidates.
type Selector struct {
	Oracle CatalogOracle
}

func NewSelector(oracle CatalogOracle) *Selector {
	return &Selector{Oracle: oracle}
}

// Select runs the full MAUT pipeline: fetch, score, trim, depot pick.
func (s *Selector) Select(ctx context.Context, req planreq.Normalized) (Selection, error) {
	quotas := RoleQuotaFor(req.NumDays)

	query := Query{
		Destination:      req.Destination,
		Themes:           req.SelectedThemes,
		Quotas:           quotas,
		MinRating:        MinRating,
		MinReviews:       MinReviews,
		HalalOnly:        req.Flags.IsMuslim,
		WheelchairOnly:   req.Flags.WheelchairAccessible,
		ExcludedThemes:   req.ExcludedThemes,
		ExcludeNightlife: req.Flags.ExcludeNightlife,
		SeedLat:          req.SeedLat,
		SeedLon:          req.SeedLon,
	}

	candidates, err := s.Oracle.FetchCandidates(ctx, query)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %v", ErrDataSource, err)
	}

	candidates = lo.Filter(candidates, func(p poi.POI, _ int) bool { return p.Valid() })

	scored := make([]Scored, 0, len(candidates))
	for _, p := range candidates {
		scored = append(scored, Scored{
			POI:   p,
			Score: Score(req.Flags, req.DietaryRestrictions, req.BudgetTier, req.SelectedThemes, p),
		})
	}

	trimmed, counts := trim(scored, quotas, req.SelectedThemes)

	sort.SliceStable(trimmed, func(i, j int) bool { return trimmed[i].Score > trimmed[j].Score })

	sel := Selection{
		Scored:         trimmed,
		SelectedThemes: req.SelectedThemes,
		Counts:         counts,
	}
	sel.ChosenHotel = chooseHotel(trimmed)
	return sel, nil
}

// trim applies the role-quota, theme-balanced trim policy described
// in the selector's contract: accommodation and meal streams are
// simple top-K; attractions are bucketed by selected theme first,
// with leftover quota topped up from the global ranking.
func trim(scored []Scored, quotas RoleQuota, themes [3]string) ([]Scored, Counts) {
	byRole := func(role poi.Role) []Scored {
		bunch := lo.Filter(scored, func(s Scored, _ int) bool { return poi.HasRole(s.POI.Roles, role) })
		sort.SliceStable(bunch, func(i, j int) bool { return bunch[i].Score > bunch[j].Score })
		return bunch
	}

	chosen := map[string]bool{}
	var out []Scored
	var counts Counts

	accommodations := byRole(poi.RoleAccommodation)
	for _, s := range accommodations {
		if counts.Accommodation >= quotas.Accommodation {
			break
		}
		if chosen[s.POI.ID] {
			continue
		}
		chosen[s.POI.ID] = true
		out = append(out, s)
		counts.Accommodation++
	}

	meals := byRole(poi.RoleMeal)
	for _, s := range meals {
		if counts.Meal >= quotas.Meal {
			break
		}
		if chosen[s.POI.ID] {
			continue
		}
		chosen[s.POI.ID] = true
		out = append(out, s)
		counts.Meal++
	}

	attractions := byRole(poi.RoleAttraction)
	out, counts.Attraction = trimAttractionsThemeBalanced(out, attractions, chosen, quotas.Attraction, themes)

	return out, counts
}

// trimAttractionsThemeBalanced divides the attraction quota into three
// buckets aligned with the selected themes (floor + spread remainder
// left-to-right), fills each from the highest-scored attractions
// carrying that theme, then tops up any unfilled quota from the
// global attraction ranking.
func trimAttractionsThemeBalanced(out []Scored, attractions []Scored, chosen map[string]bool, quota int, themes [3]string) ([]Scored, int) {
	if quota <= 0 {
		return out, 0
	}
	base := quota / 3
	remainder := quota % 3
	bucketSizes := [3]int{base, base, base}
	for i := 0; i < remainder; i++ {
		bucketSizes[i]++
	}

	added := 0
	for bucket, theme := range themes {
		if theme == "" {
			continue
		}
		n := 0
		for _, s := range attractions {
			if n >= bucketSizes[bucket] {
				break
			}
			if chosen[s.POI.ID] || !lo.Contains(s.POI.Themes, theme) {
				continue
			}
			chosen[s.POI.ID] = true
			out = append(out, s)
			n++
			added++
		}
	}

	for _, s := range attractions {
		if added >= quota {
			break
		}
		if chosen[s.POI.ID] {
			continue
		}
		chosen[s.POI.ID] = true
		out = append(out, s)
		added++
	}

	return out, added
}

// chooseHotel picks the top-scored pure-accommodation POI, if any, to
// serve as the suggested depot.
func chooseHotel(scored []Scored) *poi.POI {
	var best *Scored
	for i := range scored {
		s := &scored[i]
		if !poi.HasRole(s.POI.Roles, poi.RoleAccommodation) ||
			poi.HasRole(s.POI.Roles, poi.RoleAttraction) || poi.HasRole(s.POI.Roles, poi.RoleMeal) {
			continue
		}
		if best == nil || s.Score > best.Score {
			best = s
		}
	}
	if best == nil {
		return nil
	}
	p := best.POI
	return &p
}
