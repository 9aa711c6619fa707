package pow5

// Full is the precomputed table. It trades roughly 10KiB of read-only data
// for a single load per lookup.
type Full struct{}

// Split implements Table.
func (Full) Split(i int) Uint128 {
	checkSplit(i)

	return splitTable[i]
}

// InvSplit implements Table.
func (Full) InvSplit(i int) Uint128 {
	checkInvSplit(i)

	return invSplitTable[i]
}
