// Package httpapi exposes the planner over HTTP: a single POST
// /v1/plans endpoint that decodes a planreq.Request, runs it through
// the planner.Planner pipeline, and returns the resulting plan.Plan
// (or a structured error) as JSON.
package httpapi
