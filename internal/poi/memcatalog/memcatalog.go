// Package memcatalog is an in-memory maut.CatalogOracle fixture for
// tests and for the demo cmd/server binary. It is not a production
// data source: the real POI database access layer is an external
// collaborator per the governing specification.
package memcatalog

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/wayfarer/planner/internal/maut"
	"github.com/wayfarer/planner/internal/poi"
)

// Catalog is a fixed slice of POIs, filtered in-process the way a real
// catalog's SQL WHERE clause would.
type Catalog struct {
	POIs []poi.POI
}

func New(pois ...poi.POI) *Catalog {
	return &Catalog{POIs: pois}
}

func (c *Catalog) FetchCandidates(_ context.Context, q maut.Query) ([]poi.POI, error) {
	out := lo.Filter(c.POIs, func(p poi.POI, _ int) bool {
		if p.Rating.Known && p.Rating.Value < q.MinRating {
			return false
		}
		if p.ReviewCount.Known && p.ReviewCount.Value < q.MinReviews {
			return false
		}
		if q.HalalOnly && !p.Attributes.HalalFood && poi.HasRole(p.Roles, poi.RoleMeal) {
			return false
		}
		if q.WheelchairOnly && !p.Attributes.AnyAccessible() {
			return false
		}
		for _, excluded := range q.ExcludedThemes {
			if lo.Contains(p.Themes, excluded) {
				return false
			}
		}
		if q.ExcludeNightlife && lo.Contains(p.Themes, "nightlife") {
			return false
		}
		return true
	})
	return out, nil
}

// ParseRoles is a small convenience for building fixtures in tests.
func ParseRoles(s string) []poi.Role {
	parts := strings.Split(s, ",")
	roles := make([]poi.Role, 0, len(parts))
	for _, p := range parts {
		roles = append(roles, poi.Role(strings.TrimSpace(p)))
	}
	return roles
}
