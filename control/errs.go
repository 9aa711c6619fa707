package control

import "github.com/zeebo/errs"

// Error is the error class for control block encoding and decoding.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a field is read in a way its type does
// not support, e.g. Data on a Null block.
var ErrInvalidOperation = Error.New("invalid operation")
