package poi

import (
	"regexp"
	"strconv"
	"strings"
)

// Role-default windows, intersected with whatever the catalog label
// resolves to (or used outright when no label exists).
var DefaultWindows = map[Role]Window{
	RoleAttraction:    {Open: 9 * 60, Close: 19 * 60},
	RoleMeal:          {Open: 10 * 60, Close: 22 * 60},
	RoleAccommodation: {Open: 0, Close: 24 * 60},
}

var hoursLabelRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*$`)

// ParseHoursLabel parses a single free-form open-hours label scraped
// from the catalog. It recognises "closed", "open 24 hours", and
// "H[:MM] am|pm-H[:MM] am|pm" (case/whitespace tolerant). A close time
// at or before the open time is lifted past midnight to 24:00. Any
// other text is treated as "no information" (ok=false) so the caller
// falls back to the role default.
func ParseHoursLabel(label string) (w Window, closed bool, ok bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case s == "closed":
		return Window{}, true, true
	case s == "open 24 hours":
		return Window{Open: 0, Close: 24 * 60}, false, true
	}

	m := hoursLabelRe.FindStringSubmatch(s)
	if m == nil {
		return Window{}, false, false
	}
	open := to24h(m[1], m[2], m[3])
	close := to24h(m[4], m[5], m[6])
	if close <= open {
		close = 24 * 60
	}
	return Window{Open: open, Close: close}, false, true
}

func to24h(hourStr, minStr, meridiem string) int {
	h, _ := strconv.Atoi(hourStr)
	min := 0
	if minStr != "" {
		min, _ = strconv.Atoi(minStr)
	}
	h %= 12
	if meridiem == "pm" {
		h += 12
	}
	return h*60 + min
}

// Intersect returns the overlap of two windows; ok is false when the
// overlap is zero-length or negative.
func Intersect(a, b Window) (Window, bool) {
	open := a.Open
	if b.Open > open {
		open = b.Open
	}
	close := a.Close
	if b.Close < close {
		close = b.Close
	}
	if close <= open {
		return Window{}, false
	}
	return Window{Open: open, Close: close}, true
}

// ResolveDay computes the effective window(s) for role on one day,
// given the POI's raw OpenHours labels for that day's weekday (which
// may be absent). dayWindow is the caller's DaySpec window for that calendar
// day; the result is always intersected with it plus the role default.
//
// closed reports that the catalog explicitly marks the POI closed that
// day: callers must omit the node entirely rather than fall back.
func ResolveDay(labels []string, role Role, dayWindow Window) (windows []Window, closed bool) {
	roleDefault, hasDefault := DefaultWindows[role]
	if !hasDefault {
		roleDefault = Window{Open: 0, Close: 24 * 60}
	}
	base, ok := Intersect(dayWindow, roleDefault)
	if !ok {
		return nil, false
	}

	if len(labels) == 0 {
		return []Window{base}, false
	}

	var out []Window
	anyParsed := false
	for _, label := range labels {
		w, isClosed, parsed := ParseHoursLabel(label)
		if isClosed {
			return nil, true
		}
		if !parsed {
			continue
		}
		anyParsed = true
		if iw, ok := Intersect(w, base); ok {
			out = append(out, iw)
		}
	}
	if !anyParsed {
		// Nothing parseable: treat as "no information".
		return []Window{base}, false
	}
	return out, false
}
