package pow5

import (
	"math/bits"

	"github.com/calebcase/ryu/internal/arith"
)

// PowTableSize is the distance between two anchors of the Small table.
const PowTableSize = 26

// Small rebuilds entries from anchors every PowTableSize powers. It keeps
// well under 1KiB of data at the cost of two 64-bit multiplications per
// lookup.
type Small struct{}

// pow5Table[i] is 5^i exactly.
var pow5Table = [PowTableSize]uint64{
	1, 5, 25, 125,
	625, 3125, 15625, 78125,
	390625, 1953125, 9765625, 48828125,
	244140625, 1220703125, 6103515625, 30517578125,
	152587890625, 762939453125, 3814697265625, 19073486328125,
	95367431640625, 476837158203125, 2384185791015625, 11920928955078125,
	59604644775390625, 298023223876953125,
}

// splitAnchors[k] is splitTable[k*PowTableSize].
var splitAnchors = [13]Uint128{
	{0x1000000000000000, 0x0000000000000000}, // 5^0
	{0x14adf4b7320334b9, 0x0000000000000000}, // 5^26
	{0x1aba4714957d300d, 0x0e549208b31adb10}, // 5^52
	{0x1145b7e285bf98f5, 0x6dc6ad264d8f0866}, // 5^78
	{0x1652efdc6018a1fc, 0xeb1dbd923d8596ca}, // 5^104
	{0x1cda62055b2d9d83, 0xb4c1b80b22ae923c}, // 5^130
	{0x12a5568b9f52f416, 0x5bb28b4e8f7e4c30}, // 5^156
	{0x1819651531f9e78f, 0xf08aed437682d4fb}, // 5^182
	{0x1f25c186a6f04c28, 0xb4ee134ad99bf150}, // 5^208
	{0x1420eb449c8842e6, 0x16499ecb70c25f03}, // 5^234
	{0x1a03fde214caf085, 0x85a56ead360865b0}, // 5^260
	{0x10cfeb353a97dad8, 0x093db1d57999890b}, // 5^286
	{0x15baaf44fa52673e, 0xcf38bb735e3f36ac}, // 5^312
}

// invSplitAnchors[k] is the inverse split entry for 5^(k*PowTableSize); the
// last anchor lies beyond InvSplitSize so every index has an anchor above
// it.
var invSplitAnchors = [15]Uint128{
	{0x2000000000000000, 0x0000000000000001}, // 5^-0
	{0x18c240c4aecb13bb, 0x52a6c95fc0655034}, // 5^-26
	{0x1327fc58da0f6ff5, 0x7ca8d50071dfc806}, // 5^-52
	{0x1da48ce468e7c702, 0x6520247d3556476e}, // 5^-78
	{0x16ef5b40c2fc7779, 0x6139cdd76802e6e9}, // 5^-104
	{0x11bebdf578b2f391, 0xf951a7ff43de8c79}, // 5^-130
	{0x1b758d848fac54b0, 0x7be8bee8d6e957e8}, // 5^-156
	{0x153eda614071a3b7, 0x8bd3f9e999a423ea}, // 5^-182
	{0x10701bd527b4978c, 0x0848f973cb3ee3ce}, // 5^-208
	{0x196fbb9bb44db44d, 0x153285ebb9efbfa2}, // 5^-234
	{0x13ae3591f5b4d936, 0xadeee7f86c07b696}, // 5^-260
	{0x1e74404f3daada91, 0x4d686a4eaf182222}, // 5^-286
	{0x17900ea4fda7c257, 0x98c0a106e09ebd9f}, // 5^-312
	{0x123b140576d820b2, 0x8f20e37371497d0e}, // 5^-338
	{0x1c35f4275f7a29ad, 0xb043138134743d85}, // 5^-364
}

// splitOffsets holds a 2-bit correction per index, sixteen per word, that
// is added to the low word of a rebuilt Split entry.
var splitOffsets = [21]uint32{
	0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x40000000, 0x59695995, 0x55545555, 0x56555515,
	0x41150504, 0x40555410, 0x44555145, 0x44504540,
	0x45555550, 0x40004000, 0x96440440, 0x55565565,
	0x54454045, 0x40154151, 0x55559155, 0x51405555,
	0x00000105,
}

// invSplitOffsets is splitOffsets for InvSplit entries.
var invSplitOffsets = [22]uint32{
	0x54544554, 0x04055545, 0x10041000, 0x00400414,
	0x40010000, 0x41155555, 0x00000454, 0x00010044,
	0x40000000, 0x44000041, 0x50454450, 0x55550054,
	0x51655554, 0x40004000, 0x01000001, 0x00010500,
	0x51515411, 0x05555554, 0x50411500, 0x40040000,
	0x05040110, 0x00000000,
}

func offset(words []uint32, i int) uint64 {
	return uint64(words[i/16]>>(uint(i%16)<<1)) & 3
}

// Split implements Table.
func (Small) Split(i int) Uint128 {
	checkSplit(i)

	base := i / PowTableSize
	base2 := base * PowTableSize
	off := i - base2

	mul := splitAnchors[base]
	if off == 0 {
		return mul
	}

	m := pow5Table[off]

	high1, low1 := bits.Mul64(m, mul.Hi)
	high0, low0 := bits.Mul64(m, mul.Lo)

	sum, carry := bits.Add64(high0, low1, 0)
	high1 += carry

	// high1 | sum | low0
	delta := uint(arith.Pow5Bits(i) - arith.Pow5Bits(base2))

	return Uint128{
		Hi: arith.ShiftRight128(sum, high1, delta),
		Lo: arith.ShiftRight128(low0, sum, delta) + offset(splitOffsets[:], i),
	}
}

// InvSplit implements Table.
func (Small) InvSplit(i int) Uint128 {
	checkInvSplit(i)

	base := (i + PowTableSize - 1) / PowTableSize
	base2 := base * PowTableSize
	off := base2 - i

	mul := invSplitAnchors[base]
	if off == 0 {
		return mul
	}

	m := pow5Table[off]

	// The anchor is rounded up by one; undo that before scaling.
	high1, low1 := bits.Mul64(m, mul.Hi)
	high0, low0 := bits.Mul64(m, mul.Lo-1)

	sum, carry := bits.Add64(high0, low1, 0)
	high1 += carry

	// high1 | sum | low0
	delta := uint(arith.Pow5Bits(base2) - arith.Pow5Bits(i))

	return Uint128{
		Hi: arith.ShiftRight128(sum, high1, delta),
		Lo: arith.ShiftRight128(low0, sum, delta) + 1 + offset(invSplitOffsets[:], i),
	}
}
