package planreq

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/wayfarer/planner/internal/timeutil"
)

// FallbackThemes pads a short interest list out to three entries.
var FallbackThemes = []string{"shopping", "cultural_history", "nature"}

// Normalized is the outcome of Normalize: the resolved day count, the
// three selected themes, and the unambiguous flag set. The selector
// and builder consume this instead of the raw Request.
type Normalized struct {
	Request
	NumDays        int
	SelectedThemes [3]string
	Flags          ResolvedFlags
}

// Normalize validates req and derives the fields the rest of the
// pipeline needs. It never contacts the catalog oracle.
func Normalize(req Request) (Normalized, error) {
	if req.Destination == "" {
		return Normalized{}, ErrMissingDestination
	}

	n := Normalized{Request: req}
	n.NumDays = resolveNumDays(req)
	if n.NumDays < minDays || n.NumDays > maxDays {
		return Normalized{}, ErrInvalidNumDays
	}

	themes := derivedThemes(req.InterestThemes)
	copy(n.SelectedThemes[:], themes)

	n.Flags = ResolvedFlags{
		HasChild:             derivedBool(req.Flags.HasChild, req.Travelers.Children > 0),
		HasPets:              derivedBool(req.Flags.HasPets, req.Travelers.Pets > 0),
		WheelchairAccessible: boolVal(req.Flags.WheelchairAccessible),
		IsMuslim:             boolVal(req.Flags.IsMuslim),
		ExcludeNightlife:     boolVal(req.Flags.ExcludeNightlife),
	}

	for poiID, m := range req.Mandatory {
		if m.Day < 1 || m.Day > n.NumDays {
			return Normalized{}, fmt.Errorf("%w: poi %q day %d", ErrMandatoryDay, poiID, m.Day)
		}
		if !isHHMM(m.WindowStart) || !isHHMM(m.WindowEnd) {
			return Normalized{}, fmt.Errorf("%w: poi %q", ErrMandatoryWindow, poiID)
		}
	}

	return n, nil
}

// derivedBool applies the "explicit wins, else derive" rule: a nil
// override falls through to the derived value.
func derivedBool(explicit *bool, derived bool) bool {
	if explicit != nil {
		return *explicit
	}
	return derived
}

func resolveNumDays(req Request) int {
	if req.NumDays > 0 {
		return req.NumDays
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() {
		days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
		if days > 0 {
			return days
		}
	}
	return 3
}

// derivedThemes deduplicates the requested themes (preserving order)
// and pads the list with the fallback themes, in order, skipping
// entries already present, until exactly three remain.
func derivedThemes(requested []string) []string {
	themes := lo.Uniq(requested)
	for _, fallback := range FallbackThemes {
		if len(themes) >= 3 {
			break
		}
		if !lo.Contains(themes, fallback) {
			themes = append(themes, fallback)
		}
	}
	return themes[:min(3, len(themes))]
}

// isHHMM reports whether s parses as a well-formed HH:MM time of day,
// rejecting out-of-range hours/minutes (e.g. "99:00", "09:99") that a
// shape-only check would let through.
func isHHMM(s string) bool {
	minutes, err := timeutil.ParseTimeString(s)
	if err != nil {
		return false
	}
	return timeutil.IsValidTimeOfDay(minutes)
}
