// Package cvrptw builds and solves the per-request vehicle-routing
// problem: one vehicle per day, starting and ending at a depot, with
// time windows, meal-count bounds, and per-POI disjunctions enforcing
// at most one visit across the whole plan.
//
// There is no off-the-shelf pure-Go constraint-routing solver with
// the disjunction/cumulative-dimension machinery this problem needs
// (the reference implementation leaned on Google OR-Tools, which has
// no usable cgo-free Go binding). The Solver therefore builds a first
// solution with a path-cheapest-arc construction and improves it with
// a guided-local-search-style penalized descent, the way OR-Tools'
// own GUIDED_LOCAL_SEARCH metaheuristic operates, sized for the
// problem scale this package actually sees (at most a few hundred
// nodes across up to 30 day-vehicles).
package cvrptw
