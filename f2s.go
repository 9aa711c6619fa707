package ryu

import (
	"github.com/calebcase/ryu/internal/arith"
	"github.com/calebcase/ryu/internal/pow5"
)

// float32 scaling reuses the high word of the float64 tables.
const (
	float32InvSplitBits = pow5.InvSplitBits - 64
	float32SplitBits    = pow5.SplitBits - 64
)

func mulPow5InvDivPow2(m uint32, q, j int) uint32 {
	return arith.MulShift32(m, powerTable{}.InvSplit(q).Hi+1, j)
}

func mulPow5DivPow2(m uint32, i, j int) uint32 {
	return arith.MulShift32(m, powerTable{}.Split(i).Hi, j)
}

// f2d computes the shortest decimal for a finite, non-zero float32.
func f2d(d Decomposition) Decimal {
	e2 := int(d.Exp) - 2
	m2 := uint32(d.Mantissa)
	acceptBounds := m2&1 == 0

	mv := 4 * m2
	mp := 4*m2 + 2
	mmShift := uint32(1)
	if unevenGap32(d) {
		mmShift = 0
	}
	mm := 4*m2 - 1 - mmShift

	var (
		vr, vp, vm        uint32
		e10               int
		vmIsTrailingZeros bool
		vrIsTrailingZeros bool
		lastRemovedDigit  uint32
	)

	if e2 >= 0 {
		q := arith.Log10Pow2(e2)
		e10 = q

		k := float32InvSplitBits + arith.Pow5Bits(q) - 1
		i := -e2 + q + k
		vr = mulPow5InvDivPow2(mv, q, i)
		vp = mulPow5InvDivPow2(mp, q, i)
		vm = mulPow5InvDivPow2(mm, q, i)

		if q != 0 && (vp-1)/10 <= vm/10 {
			// The loop below will not run, but the first removed
			// digit is still needed for rounding. Recompute it one
			// power lower; q-1 keeps the result within 32 bits.
			l := float32InvSplitBits + arith.Pow5Bits(q-1) - 1
			lastRemovedDigit = mulPow5InvDivPow2(mv, q-1, -e2+q-1+l) % 10
		}

		if q <= 9 {
			// Only one of mp, mv and mm can be a multiple of 5, if any.
			switch {
			case mv%5 == 0:
				vrIsTrailingZeros = arith.MultipleOfPowerOf5_32(mv, q)
			case acceptBounds:
				vmIsTrailingZeros = arith.MultipleOfPowerOf5_32(mm, q)
			case arith.MultipleOfPowerOf5_32(mp, q):
				vp--
			}
		}
	} else {
		q := arith.Log10Pow5(-e2)
		e10 = q + e2

		i := -e2 - q
		k := arith.Pow5Bits(i) - float32SplitBits
		j := q - k
		vr = mulPow5DivPow2(mv, i, j)
		vp = mulPow5DivPow2(mp, i, j)
		vm = mulPow5DivPow2(mm, i, j)

		if q != 0 && (vp-1)/10 <= vm/10 {
			j = q - 1 - (arith.Pow5Bits(i+1) - float32SplitBits)
			lastRemovedDigit = mulPow5DivPow2(mv, i+1, j) % 10
		}

		switch {
		case q <= 1:
			vrIsTrailingZeros = true
			if acceptBounds {
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		case q < 31:
			vrIsTrailingZeros = arith.MultipleOfPowerOf2_32(mv, q-1)
		}
	}

	removed := 0

	var output uint32

	if vmIsTrailingZeros || vrIsTrailingZeros {
		for vp/10 > vm/10 {
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vr % 10

			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}

		if vmIsTrailingZeros {
			for vm%10 == 0 {
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vr % 10

				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}

		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// Exactly halfway: round to even.
			lastRemovedDigit = 4
		}

		output = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			output++
		}
	} else {
		for vp/10 > vm/10 {
			lastRemovedDigit = vr % 10

			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}

		output = vr
		if vr == vm || lastRemovedDigit >= 5 {
			output++
		}
	}

	return Decimal{
		Neg:    d.Neg,
		Digits: uint64(output),
		Exp:    int32(e10 + removed),
	}
}
