package beam

import "errors"

// ErrBranchExhausted indicates a single branch could not be expanded
// any further this cycle.
var ErrBranchExhausted = errors.New("beam: branch exhausted")

// ErrExhausted indicates every branch returned ErrBranchExhausted in
// the same cycle; no branch advanced.
var ErrExhausted = errors.New("beam: all branches exhausted")
