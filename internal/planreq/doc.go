// Package planreq defines the inbound planning Request and its
// normalisation rules: day-count resolution, theme padding, and flag
// derivation from traveler composition. Normalize must run before the
// request reaches the selector; a Request that fails Normalize never
// calls the catalog oracle.
package planreq
