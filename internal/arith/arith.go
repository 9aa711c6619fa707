// Package arith provides the fixed-width integer primitives used by the
// shortest float formatting algorithms.
//
// The logarithm approximations are single multiply-and-shift operations by a
// precomputed rational constant. They are exact only within the documented
// ranges, which cover every exponent reachable from a float32 or float64.
package arith

import "math/bits"

// Pow5Bits returns the number of bits needed to represent 5^e, i.e.
// ceil(log2(5^e)), or 1 when e is 0.
//
// Requires 0 <= e <= 3528.
func Pow5Bits(e int) int {
	// log2(5) ≈ 2.32192809489 ≈ 1217359 / 2^19
	return int((uint32(e)*1217359)>>19) + 1
}

// Log10Pow2 returns floor(log10(2^e)).
//
// Requires 0 <= e <= 1650.
func Log10Pow2(e int) int {
	// log10(2) ≈ 0.30102999566 ≈ 78913 / 2^18
	return int((uint32(e) * 78913) >> 18)
}

// Log10Pow5 returns floor(log10(5^e)).
//
// Requires 0 <= e <= 2620.
func Log10Pow5(e int) int {
	// log10(5) ≈ 0.69897000433 ≈ 732923 / 2^20
	return int((uint32(e) * 732923) >> 20)
}

// Pow5Factor returns the largest p such that 5^p divides v. v must be
// non-zero.
func Pow5Factor(v uint64) int {
	count := 0
	for {
		q := v / 5
		if v-5*q != 0 {
			return count
		}
		v = q
		count++
	}
}

// Pow5Factor32 is Pow5Factor for 32-bit values.
func Pow5Factor32(v uint32) int {
	count := 0
	for {
		q := v / 5
		if v-5*q != 0 {
			return count
		}
		v = q
		count++
	}
}

// MultipleOfPowerOf5 reports whether 5^p divides v.
func MultipleOfPowerOf5(v uint64, p int) bool {
	return Pow5Factor(v) >= p
}

// MultipleOfPowerOf5_32 reports whether 5^p divides v.
func MultipleOfPowerOf5_32(v uint32, p int) bool {
	return Pow5Factor32(v) >= p
}

// MultipleOfPowerOf2 reports whether 2^p divides v. Requires p < 64.
func MultipleOfPowerOf2(v uint64, p int) bool {
	return v&(1<<uint(p)-1) == 0
}

// MultipleOfPowerOf2_32 reports whether 2^p divides v. Requires p < 32.
func MultipleOfPowerOf2_32(v uint32, p int) bool {
	return v&(1<<uint(p)-1) == 0
}

// ShiftRight128 returns the low 64 bits of (hi:lo) >> dist.
//
// Requires 0 < dist < 64.
func ShiftRight128(lo, hi uint64, dist uint) uint64 {
	return hi<<(64-dist) | lo>>dist
}

// MulShift64 returns (m * (hi:lo)) >> j computed exactly.
//
// The full product is up to 192 bits wide; only the upper 128 bits are
// formed. Requires 64 <= j < 128 and a result that fits in 64 bits.
func MulShift64(m, hi, lo uint64, j int) uint64 {
	b0hi, _ := bits.Mul64(m, lo)
	b2hi, b2lo := bits.Mul64(m, hi)

	sum, carry := bits.Add64(b2lo, b0hi, 0)
	b2hi += carry

	dist := uint(j - 64)
	if dist == 0 {
		return sum
	}

	return ShiftRight128(sum, b2hi, dist)
}

// MulShift32 returns (m * factor) >> shift using a 64-bit intermediate.
//
// Requires shift > 32 and a result that fits in 32 bits.
func MulShift32(m uint32, factor uint64, shift int) uint32 {
	factorLo := factor & 0xffff_ffff
	factorHi := factor >> 32

	bits0 := uint64(m) * factorLo
	bits1 := uint64(m) * factorHi

	sum := bits0>>32 + bits1

	return uint32(sum >> uint(shift-32))
}

// DecimalLength17 returns the number of decimal digits in v.
//
// Requires v < 10^17; the 64-bit shortest representation never needs more
// than 17 digits.
func DecimalLength17(v uint64) int {
	switch {
	case v >= 10000000000000000:
		return 17
	case v >= 1000000000000000:
		return 16
	case v >= 100000000000000:
		return 15
	case v >= 10000000000000:
		return 14
	case v >= 1000000000000:
		return 13
	case v >= 100000000000:
		return 12
	case v >= 10000000000:
		return 11
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	}

	return 1
}

// DecimalLength9 returns the number of decimal digits in v.
//
// Requires v < 10^9.
func DecimalLength9(v uint32) int {
	switch {
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	}

	return 1
}
