//go:build ryu_small

package ryu

import "github.com/calebcase/ryu/internal/pow5"

// powerTable rebuilds powers of five from a handful of anchors.
type powerTable = pow5.Small
