package maut

import (
	"math"

	"github.com/wayfarer/planner/internal/planreq"
	"github.com/wayfarer/planner/internal/poi"
)

// Dimension is one axis of the weighted-sum utility score.
type Dimension string

const (
	DimInterest   Dimension = "interest"
	DimCost       Dimension = "cost"
	DimPopularity Dimension = "popularity"
	DimChild      Dimension = "child"
	DimDietary    Dimension = "dietary"
	DimPet        Dimension = "pet"
	DimAccess     Dimension = "access"
)

// BaseWeights fixes each dimension's contribution before
// renormalisation over the applicable subset.
var BaseWeights = map[Dimension]float64{
	DimInterest:   0.30,
	DimCost:       0.20,
	DimPopularity: 0.10,
	DimChild:      0.10,
	DimDietary:    0.10,
	DimPet:        0.10,
	DimAccess:     0.10,
}

// applicableDims computes the dimension subset that applies to a
// given POI under the request's flags and dietary restrictions.
func applicableDims(flags planreq.ResolvedFlags, dietary []planreq.DietaryRestriction, p poi.POI) map[Dimension]bool {
	dims := map[Dimension]bool{DimInterest: true, DimCost: true, DimPopularity: true}
	if flags.HasChild {
		dims[DimChild] = true
	}
	if flags.HasPets {
		dims[DimPet] = true
	}
	if flags.IsMuslim && hasDietary(dietary, planreq.DietaryHalal) && poi.HasRole(p.Roles, poi.RoleMeal) {
		dims[DimDietary] = true
	}
	if flags.WheelchairAccessible {
		dims[DimAccess] = true
	}
	return dims
}

func hasDietary(list []planreq.DietaryRestriction, want planreq.DietaryRestriction) bool {
	for _, d := range list {
		if d == want {
			return true
		}
	}
	return false
}

// renormalize L1-normalises BaseWeights over the applicable subset so
// weights sum to 1.
func renormalize(dims map[Dimension]bool) map[Dimension]float64 {
	sum := 0.0
	for d := range dims {
		sum += BaseWeights[d]
	}
	out := make(map[Dimension]float64, len(dims))
	if sum <= 0 {
		return out
	}
	for d := range dims {
		out[d] = BaseWeights[d] / sum
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// interestScore rewards POIs whose themes overlap the selected three;
// it only applies to pure attractions (no meal/accommodation role).
func interestScore(p poi.POI, selected [3]string) float64 {
	if !poi.HasRole(p.Roles, poi.RoleAttraction) ||
		poi.HasRole(p.Roles, poi.RoleMeal) || poi.HasRole(p.Roles, poi.RoleAccommodation) {
		return 0
	}
	sel := map[string]bool{selected[0]: true, selected[1]: true, selected[2]: true}
	hit := 0
	for _, theme := range p.Themes {
		if sel[theme] {
			hit++
		}
	}
	return float64(hit) / 3.0
}

func costScore(p poi.POI, tier planreq.BudgetTier) float64 {
	if !p.PriceLevel.Known {
		return 1.0
	}
	target := planreq.BudgetTargets[tier]
	if target == 0 {
		target = 4.0
	}
	dist := math.Abs(float64(p.PriceLevel.Value) - target)
	return math.Max(0, 1.0-dist/3.0)
}

func popularityScore(p poi.POI) float64 {
	r := 0.0
	if p.Rating.Known {
		r = clamp01(p.Rating.Value / 5.0)
	}
	if !p.ReviewCount.Known || p.ReviewCount.Value <= 0 {
		return 0.5 * r
	}
	rc := math.Min(1.0, math.Log10(1.0+float64(p.ReviewCount.Value))/3.0)
	return 0.7*r + 0.3*rc
}

func dietaryScore(dietary []planreq.DietaryRestriction, p poi.POI) float64 {
	if len(dietary) == 0 {
		return 0.5
	}
	score := 0.0
	for _, d := range dietary {
		switch d {
		case planreq.DietaryHalal:
			if p.Attributes.HalalFood {
				score = math.Max(score, 1.0)
			}
		case planreq.DietaryVegan:
			if p.Attributes.VeganOptions {
				score = math.Max(score, 1.0)
			}
		case planreq.DietaryVegetarian:
			if p.Attributes.VegetarianOptions || p.Attributes.VeganOptions {
				score = math.Max(score, 1.0)
			}
		}
	}
	return score
}

// Score computes the final weighted-sum utility for a POI, in [0, 1].
func Score(flags planreq.ResolvedFlags, dietary []planreq.DietaryRestriction, tier planreq.BudgetTier, selected [3]string, p poi.POI) float64 {
	dims := applicableDims(flags, dietary, p)
	w := renormalize(dims)

	total := 0.0
	if w[DimInterest] > 0 {
		total += w[DimInterest] * interestScore(p, selected)
	}
	if w[DimCost] > 0 {
		total += w[DimCost] * costScore(p, tier)
	}
	if w[DimPopularity] > 0 {
		total += w[DimPopularity] * popularityScore(p)
	}
	if w[DimChild] > 0 && p.Attributes.KidsFriendly {
		total += w[DimChild] * 1.0
	}
	if w[DimDietary] > 0 {
		total += w[DimDietary] * dietaryScore(dietary, p)
	}
	if w[DimPet] > 0 && p.Attributes.PetsFriendly {
		total += w[DimPet] * 1.0
	}
	if w[DimAccess] > 0 && p.Attributes.AnyAccessible() {
		total += w[DimAccess] * 1.0
	}
	return total
}
