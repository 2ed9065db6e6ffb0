package maut

import "errors"

// ErrDataSource wraps any failure surfaced by the catalog oracle. The
// planner maps it to the DATA_SOURCE error kind.
var ErrDataSource = errors.New("maut: catalog oracle failure")
