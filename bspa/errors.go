package bspa

import "errors"

// ErrNoFittingSpace is returned by prepare (and surfaces through
// Expand; Estimate reports it as 0) when no open space admits any
// remaining candidate block. beam treats any non-nil Expand error as branch exhaustion,
// so this need not match beam's own sentinel.
var ErrNoFittingSpace = errors.New("bspa: no open space fits a remaining block")
