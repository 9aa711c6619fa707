//go:build !ryu_small

package ryu

import "github.com/calebcase/ryu/internal/pow5"

// powerTable is the precomputed table. Build with -tags ryu_small to trade
// speed for a smaller binary.
type powerTable = pow5.Full
