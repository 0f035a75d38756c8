package core

import "errors"

// Precondition failures on aggregate operations. None of these mutate
// any state; callers report them and move on.
var (
	ErrEmptyCollection     = errors.New("need at least one top and one bottom")
	ErrIncompleteSelection = errors.New("both a top and a bottom must be selected")
	ErrGarmentNotFound     = errors.New("garment not found")
	ErrOutfitNotFound      = errors.New("outfit not found")
)
