// Package travel provides the driving-time abstraction the CVRPTW
// builder and ACO refiner depend on: route, distance, and matrix
// lookups against an OSRM-compatible HTTP service, with a Haversine
// great-circle fallback when the service is disabled, unreachable, or
// returns something the caller can't use.
//
// Availability of the external service is probed once and memoized
// for the process lifetime (Service.Refresh forces a re-probe).
package travel
