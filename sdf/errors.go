package sdf

import "errors"

// ErrNegativeParam is returned when padding or spread is negative.
var ErrNegativeParam = errors.New("sdf: padding and spread must be non-negative")
