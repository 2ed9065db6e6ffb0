package maut

import (
	"context"

	"github.com/wayfarer/planner/internal/poi"
)

// RoleQuota carries the per-role candidate ceiling the oracle should
// aim for; it may over-return, the selector re-applies quotas.
type RoleQuota struct {
	Attraction    int
	Meal          int
	Accommodation int
}

// Query is what the selector asks the catalog oracle for.
type Query struct {
	Destination      string
	Themes           [3]string
	Quotas           RoleQuota
	MinRating        float64
	MinReviews       int
	HalalOnly        bool
	WheelchairOnly   bool
	ExcludedThemes   []string
	ExcludeNightlife bool
	SeedLat, SeedLon *float64
}

// CatalogOracle is the external catalog collaborator (§6 of the
// governing spec: "fetch_candidates"). Implementations may be backed
// by a database, a remote service, or — for tests — an in-memory
// fixture (see poi/memcatalog).
type CatalogOracle interface {
	FetchCandidates(ctx context.Context, q Query) ([]poi.POI, error)
}

// RoleQuotaFor computes the per-role candidate quota for a given
// number of days, per the spec's fixed growth curves.
func RoleQuotaFor(numDays int) RoleQuota {
	d := numDays
	if d < 1 {
		d = 1
	}
	return RoleQuota{
		Attraction:    minInt(12*d, 300),
		Meal:          minInt(5*d, 50),
		Accommodation: minInt(d+5, 15),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
