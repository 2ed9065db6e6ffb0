// Package maut implements the multi-attribute utility selector: it
// scores candidate POIs against a request's preferences, then trims
// the scored set to a per-role quota with theme-balanced bucketing
// for attractions.
//
// It has no HTTP or database dependencies of its own — candidates are
// supplied by a CatalogOracle the caller constructs, so this package
// is testable with an in-memory fixture and swappable in production
// for a real catalog-backed implementation.
package maut
