package planreq

import "errors"

// Normalize-time validation errors. These map to the planner's
// INVALID_REQUEST kind and are raised before any oracle call.
var (
	ErrMissingDestination = errors.New("planreq: destination is required")
	ErrInvalidNumDays     = errors.New("planreq: num_days must resolve to a value in [1, 30]")
	ErrMandatoryDay       = errors.New("planreq: mandatory entry references a day outside num_days")
	ErrMandatoryWindow    = errors.New("planreq: mandatory window is not well-formed HH:MM-HH:MM")
)

const (
	minDays = 1
	maxDays = 30
)
