package maut

import "github.com/wayfarer/planner/internal/poi"

// Scored pairs a POI with its computed utility.
type Scored struct {
	POI   poi.POI
	Score float64
}

// Counts reports how many POIs were selected per role, for logging
// and for the quota-monotonicity property test.
type Counts struct {
	Attraction    int
	Meal          int
	Accommodation int
}

// Selection is the Selector's output: the trimmed, scored candidate
// set, the three themes it scored against, role counts, and the
// chosen depot hotel, if any.
type Selection struct {
	Scored         []Scored
	SelectedThemes [3]string
	Counts         Counts
	ChosenHotel    *poi.POI
}
