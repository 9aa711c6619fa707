package ryu

import (
	"github.com/calebcase/ryu/internal/arith"
	"github.com/calebcase/ryu/internal/pow5"
)

// mulShiftAll64 scales the interval around the binary mantissa m2 by one
// table entry and returns the scaled value and its upper and lower bounds.
func mulShiftAll64(m2 uint64, mul pow5.Uint128, j int, mmShift uint64) (vr, vp, vm uint64) {
	vr = arith.MulShift64(4*m2, mul.Hi, mul.Lo, j)
	vp = arith.MulShift64(4*m2+2, mul.Hi, mul.Lo, j)
	vm = arith.MulShift64(4*m2-1-mmShift, mul.Hi, mul.Lo, j)

	return vr, vp, vm
}

// d2dSmallInt handles integers in [1, 2^53) without the table lookup. The
// digits keep no trailing zeros.
func d2dSmallInt(d Decomposition) (Decimal, bool) {
	if d.Exp > 0 || d.Exp < -float64MantBits {
		return Decimal{}, false
	}

	shift := uint(-d.Exp)
	if d.Mantissa&(1<<shift-1) != 0 {
		return Decimal{}, false
	}

	v := Decimal{
		Neg:    d.Neg,
		Digits: d.Mantissa >> shift,
	}

	for {
		q := v.Digits / 10
		if v.Digits-10*q != 0 {
			break
		}

		v.Digits = q
		v.Exp++
	}

	return v, true
}

// d2d computes the shortest decimal for a finite, non-zero float64.
func d2d(d Decomposition) Decimal {
	// The bounds computation needs two extra bits.
	e2 := int(d.Exp) - 2
	m2 := d.Mantissa
	acceptBounds := m2&1 == 0

	// Step 2: the interval of valid decimal representations is
	// (4*m2 - 1 - mmShift, 4*m2 + 2) scaled by 2^e2.
	mv := 4 * m2
	mmShift := uint64(1)
	if unevenGap64(d) {
		mmShift = 0
	}

	// Step 3: convert to a decimal power base.
	var (
		vr, vp, vm        uint64
		e10               int
		vmIsTrailingZeros bool
		vrIsTrailingZeros bool
	)

	if e2 >= 0 {
		q := arith.Log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = q

		k := pow5.InvSplitBits + arith.Pow5Bits(q) - 1
		i := -e2 + q + k
		vr, vp, vm = mulShiftAll64(m2, powerTable{}.InvSplit(q), i, mmShift)

		if q <= 21 {
			// Only one of mp, mv and mm can be a multiple of 5, if any.
			switch {
			case mv%5 == 0:
				vrIsTrailingZeros = arith.MultipleOfPowerOf5(mv, q)
			case acceptBounds:
				vmIsTrailingZeros = arith.MultipleOfPowerOf5(mv-1-mmShift, q)
			case arith.MultipleOfPowerOf5(mv+2, q):
				vp--
			}
		}
	} else {
		q := arith.Log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = q + e2

		i := -e2 - q
		k := arith.Pow5Bits(i) - pow5.SplitBits
		j := q - k
		vr, vp, vm = mulShiftAll64(m2, powerTable{}.Split(i), j, mmShift)

		switch {
		case q <= 1:
			// mv = 4*m2 always has at least two trailing zero bits.
			vrIsTrailingZeros = true
			if acceptBounds {
				// mm = mv - 1 - mmShift has one trailing zero bit
				// iff mmShift is 1.
				vmIsTrailingZeros = mmShift == 1
			} else {
				// mp = mv + 2 always has one trailing zero bit.
				vp--
			}
		case q < 63:
			// -e2 >= q, so only the factors of two in mv matter.
			vrIsTrailingZeros = arith.MultipleOfPowerOf2(mv, q)
		}
	}

	// Step 4: find the shortest representation in the interval.
	removed := 0
	lastRemovedDigit := uint64(0)

	var output uint64

	if vmIsTrailingZeros || vrIsTrailingZeros {
		// Rare: a bound or the value itself is exact.
		for {
			vpDiv10 := vp / 10
			vmDiv10 := vm / 10
			if vpDiv10 <= vmDiv10 {
				break
			}

			vmMod10 := vm - 10*vmDiv10
			vrDiv10 := vr / 10
			vrMod10 := vr - 10*vrDiv10

			vmIsTrailingZeros = vmIsTrailingZeros && vmMod10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vrMod10

			vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
			removed++
		}

		if vmIsTrailingZeros {
			for {
				vmDiv10 := vm / 10
				vmMod10 := vm - 10*vmDiv10
				if vmMod10 != 0 {
					break
				}

				vpDiv10 := vp / 10
				vrDiv10 := vr / 10
				vrMod10 := vr - 10*vrDiv10

				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vrMod10

				vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
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
		roundUp := false

		vpDiv100 := vp / 100
		vmDiv100 := vm / 100
		if vpDiv100 > vmDiv100 {
			// Two digits at a time.
			vrDiv100 := vr / 100
			vrMod100 := vr - 100*vrDiv100

			roundUp = vrMod100 >= 50

			vr, vp, vm = vrDiv100, vpDiv100, vmDiv100
			removed += 2
		}

		for {
			vpDiv10 := vp / 10
			vmDiv10 := vm / 10
			if vpDiv10 <= vmDiv10 {
				break
			}

			vrDiv10 := vr / 10
			vrMod10 := vr - 10*vrDiv10

			roundUp = vrMod10 >= 5

			vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
			removed++
		}

		output = vr
		if vr == vm || roundUp {
			output++
		}
	}

	return Decimal{
		Neg:    d.Neg,
		Digits: output,
		Exp:    int32(e10 + removed),
	}
}
