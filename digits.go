package ryu

// digitTable holds the two ASCII digits of every value in [0, 100).
const digitTable = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// putPair writes the two digits of v < 100 to dst[0:2].
func putPair(dst []byte, v uint32) {
	dst[0] = digitTable[2*v]
	dst[1] = digitTable[2*v+1]
}

// writeMantissa64 writes the decimal digits of v right-aligned into dst,
// which must be exactly as long as the number of digits. v < 10^17.
func writeMantissa64(dst []byte, v uint64) {
	i := len(dst)

	if v>>32 != 0 {
		// One 64-bit division leaves at most nine digits.
		q := v / 100000000
		low := uint32(v - 100000000*q)
		v = q

		c := low % 10000
		low /= 10000
		d := low % 10000

		putPair(dst[i-2:], c%100)
		putPair(dst[i-4:], c/100)
		putPair(dst[i-6:], d%100)
		putPair(dst[i-8:], d/100)
		i -= 8
	}

	writeMantissa32(dst[:i], uint32(v))
}

// writeMantissa32 writes the decimal digits of v right-aligned into dst.
func writeMantissa32(dst []byte, v uint32) {
	i := len(dst)

	for v >= 10000 {
		c := v % 10000
		v /= 10000

		putPair(dst[i-2:], c%100)
		putPair(dst[i-4:], c/100)
		i -= 4
	}

	if v >= 100 {
		putPair(dst[i-2:], v%100)
		v /= 100
		i -= 2
	}

	if v >= 10 {
		putPair(dst[i-2:], v)
	} else {
		dst[i-1] = byte('0' + v)
	}
}

// writeExponent writes a decimal exponent, |k| < 1000, with a leading minus
// sign when negative and returns the number of bytes written.
func writeExponent(dst []byte, k int) int {
	n := 0
	if k < 0 {
		dst[0] = '-'
		k = -k
		n++
	}

	switch {
	case k >= 100:
		putPair(dst[n:], uint32(k/10))
		dst[n+2] = byte('0' + k%10)
		return n + 3
	case k >= 10:
		putPair(dst[n:], uint32(k))
		return n + 2
	}

	dst[n] = byte('0' + k)

	return n + 1
}
