package ryu

import "github.com/zeebo/errs"

// Error is the error class for this package. Values of this class are only
// ever raised as panics on precondition violations.
var Error = errs.Class("ryu")
