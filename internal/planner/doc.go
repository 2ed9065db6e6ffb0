// Package planner wires the MAUT selector, CVRPTW builder/solver, and
// ACO refiner into the single request-scoped entry point external
// callers use: Plan(ctx, Request) (*plan.Plan, error).
//
// It owns no persistence and no HTTP concerns; those are external
// collaborators constructed once by the caller (see cmd/server) and
// passed in as interfaces.
package planner
