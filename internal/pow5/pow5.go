// Package pow5 provides the power-of-five tables used to scale binary
// floating point mantissas into decimal without arbitrary precision
// arithmetic.
//
// Two interchangeable tables are available. Full keeps every entry in
// memory. Small keeps one anchor every PowTableSize powers and rebuilds the
// rest on demand with a single 64x128 bit multiplication. Both return
// bit-identical entries for every valid index.
package pow5

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("pow5")

const (
	// SplitBits is the width of every Split entry.
	SplitBits = 125

	// InvSplitBits is the fixed-point precision of every InvSplit entry.
	InvSplitBits = 125

	// SplitSize is the number of Split entries; 5^325 is the largest power
	// reached while formatting the smallest float64 subnormal.
	SplitSize = 326

	// InvSplitSize is the number of InvSplit entries.
	InvSplitSize = 342
)

// Uint128 is a 128-bit unsigned integer split into two machine words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Table returns normalised powers of five.
type Table interface {
	// Split returns 5^i normalised to SplitBits bits.
	Split(i int) Uint128

	// InvSplit returns a SplitBits wide fixed-point reciprocal of 5^i,
	// rounded up.
	InvSplit(i int) Uint128
}

var (
	_ Table = Full{}
	_ Table = Small{}
)

func checkSplit(i int) {
	if i < 0 || i >= SplitSize {
		panic(Error.New("split index out of range: %d", i))
	}
}

func checkInvSplit(i int) {
	if i < 0 || i >= InvSplitSize {
		panic(Error.New("inverse split index out of range: %d", i))
	}
}
