package ryu

import "github.com/calebcase/ryu/internal/arith"

const (
	// MaxLen64 is the longest output of any float64 formatter, e.g.
	// "-1.2345678901234567E-308" or "-0.000012345678901234567".
	MaxLen64 = 24

	// MaxLen32 is the longest output of any float32 formatter, e.g.
	// "-0.0000123456789" or "-1234567890123.0".
	MaxLen32 = 16
)

func checkLen(result []byte, need int) {
	if len(result) < need {
		panic(Error.New("buffer too small: have %d bytes, need %d", len(result), need))
	}
}

// D2SBuffered writes f in scientific notation to result and returns the
// number of bytes written. The layout is [-]D[.DDD]E[-]X with at least one
// exponent digit, e.g. "1.234E0", "5E-324", "-1.7976931348623157E308".
// Special values are written as "NaN", "Infinity", "-Infinity", "0E0" and
// "-0E0".
//
// It panics if len(result) < MaxLen64.
func D2SBuffered(f float64, result []byte) int {
	checkLen(result, MaxLen64)

	d, class := Shortest64(f)

	return formatScientific(result, d, class)
}

// F2SBuffered is D2SBuffered for float32 values.
//
// It panics if len(result) < MaxLen32.
func F2SBuffered(f float32, result []byte) int {
	checkLen(result, MaxLen32)

	d, class := Shortest32(f)

	return formatScientific(result, d, class)
}

// D2S returns f in the layout of D2SBuffered.
func D2S(f float64) string {
	var buf [MaxLen64]byte

	n := D2SBuffered(f, buf[:])

	return string(buf[:n])
}

// F2S returns f in the layout of F2SBuffered.
func F2S(f float32) string {
	var buf [MaxLen32]byte

	n := F2SBuffered(f, buf[:])

	return string(buf[:n])
}

func formatScientific(result []byte, d Decimal, class Class) int {
	index := 0

	switch class {
	case NaN:
		return copy(result, "NaN")
	case Infinite:
		if d.Neg {
			return copy(result, "-Infinity")
		}
		return copy(result, "Infinity")
	case Zero:
		if d.Neg {
			return copy(result, "-0E0")
		}
		return copy(result, "0E0")
	}

	if d.Neg {
		result[index] = '-'
		index++
	}

	olength := arith.DecimalLength17(d.Digits)

	// Write all digits one position to the right and pull the first one
	// back in front of the decimal point.
	writeMantissa64(result[index+1:index+1+olength], d.Digits)
	result[index] = result[index+1]

	if olength > 1 {
		result[index+1] = '.'
		index += olength + 1
	} else {
		index++
	}

	result[index] = 'E'
	index++

	return index + writeExponent(result[index:], int(d.Exp)+olength-1)
}
