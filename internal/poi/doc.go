// Package poi defines the catalog entity shared by every pipeline stage
// and the open-hours grammar used by both the CVRPTW builder and the
// validator.
//
// It has no database or HTTP dependencies — it operates purely on
// structs and is safe to import from the selector, builder, and
// validator without pulling in any external collaborator.
package poi
