package ryu

import "github.com/calebcase/ryu/internal/arith"

// Largest number of integer digits written in plain notation. Beyond that
// the value switches to scientific notation.
const (
	maxPlainDigits64 = 16
	maxPlainDigits32 = 13
)

// Pretty64Buffered writes f to result in the notation a person would write
// by hand and returns the number of bytes written:
//
//	1234e7   -> 12340000000.0
//	1234e-2  -> 12.34
//	1234e-6  -> 0.001234
//	1e30     -> 1e30
//	1234e30  -> 1.234e33
//
// Zero is written as "0.0" or "-0.0", NaN as "NaN" and the infinities as
// "inf" and "-inf".
//
// It panics if len(result) < MaxLen64.
func Pretty64Buffered(f float64, result []byte) int {
	checkLen(result, MaxLen64)

	d, class := Shortest64(f)

	return formatPretty(result, d, class, maxPlainDigits64)
}

// Pretty32Buffered is Pretty64Buffered for float32 values. Plain notation
// is used up to 13 integer digits.
//
// It panics if len(result) < MaxLen32.
func Pretty32Buffered(f float32, result []byte) int {
	checkLen(result, MaxLen32)

	d, class := Shortest32(f)

	return formatPretty(result, d, class, maxPlainDigits32)
}

// AppendDecimal appends d in the notation of Pretty64Buffered. d.Digits
// must be below 10^17 and the scientific exponent below 1000 in magnitude.
func AppendDecimal(dst []byte, d Decimal) []byte {
	if d.Digits >= 1e17 {
		panic(Error.New("decimal has more than 17 digits: %d", d.Digits))
	}

	if kk := arith.DecimalLength17(d.Digits) + int(d.Exp); kk <= -999 || kk >= 1000 {
		panic(Error.New("decimal exponent out of range: %d", d.Exp))
	}

	class := Finite
	if d.Digits == 0 {
		class = Zero
	}

	var buf [MaxLen64]byte

	n := formatPretty(buf[:], d, class, maxPlainDigits64)

	return append(dst, buf[:n]...)
}

func formatPretty(result []byte, d Decimal, class Class, maxPlain int) int {
	index := 0

	switch class {
	case NaN:
		return copy(result, "NaN")
	case Infinite:
		if d.Neg {
			return copy(result, "-inf")
		}
		return copy(result, "inf")
	case Zero:
		if d.Neg {
			return copy(result, "-0.0")
		}
		return copy(result, "0.0")
	}

	if d.Neg {
		result[index] = '-'
		index++
	}

	length := arith.DecimalLength17(d.Digits)
	k := int(d.Exp)

	// 10^(kk-1) <= value < 10^kk
	kk := length + k

	switch {
	case 0 <= k && kk <= maxPlain:
		// 1234e7 -> 12340000000.0
		writeMantissa64(result[index:index+length], d.Digits)
		for i := length; i < kk; i++ {
			result[index+i] = '0'
		}
		result[index+kk] = '.'
		result[index+kk+1] = '0'

		return index + kk + 2
	case 0 < kk && kk <= maxPlain:
		// 1234e-2 -> 12.34
		writeMantissa64(result[index+1:index+1+length], d.Digits)
		copy(result[index:index+kk], result[index+1:index+1+kk])
		result[index+kk] = '.'

		return index + length + 1
	case -5 < kk && kk <= 0:
		// 1234e-6 -> 0.001234
		result[index] = '0'
		result[index+1] = '.'

		offset := 2 - kk
		for i := 2; i < offset; i++ {
			result[index+i] = '0'
		}
		writeMantissa64(result[index+offset:index+offset+length], d.Digits)

		return index + offset + length
	case length == 1:
		// 1e30
		result[index] = byte('0' + d.Digits)
		result[index+1] = 'e'

		return index + 2 + writeExponent(result[index+2:], kk-1)
	}

	// 1234e30 -> 1.234e33
	writeMantissa64(result[index+1:index+1+length], d.Digits)
	result[index] = result[index+1]
	result[index+1] = '.'
	result[index+length+1] = 'e'

	return index + length + 2 + writeExponent(result[index+length+2:], kk-1)
}
