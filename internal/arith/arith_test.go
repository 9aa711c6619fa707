package arith

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func pow(base, e int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(e)), nil)
}

// floorLog10 returns floor(log10(v)) for v >= 1.
func floorLog10(v *big.Int) int {
	return len(v.String()) - 1
}

func TestPow5Bits(t *testing.T) {
	require.Equal(t, 1, Pow5Bits(0))

	for e := 1; e <= 3528; e++ {
		require.Equal(t, pow(5, e).BitLen(), Pow5Bits(e), "e=%d", e)
	}
}

func TestLog10Pow2(t *testing.T) {
	for e := 0; e <= 1650; e++ {
		require.Equal(t, floorLog10(pow(2, e)), Log10Pow2(e), "e=%d", e)
	}
}

func TestLog10Pow5(t *testing.T) {
	for e := 0; e <= 2620; e++ {
		require.Equal(t, floorLog10(pow(5, e)), Log10Pow5(e), "e=%d", e)
	}
}

func TestPow5Factor(t *testing.T) {
	require.Equal(t, 0, Pow5Factor(1))
	require.Equal(t, 0, Pow5Factor(4))
	require.Equal(t, 1, Pow5Factor(5))
	require.Equal(t, 2, Pow5Factor(50))
	require.Equal(t, 27, Pow5Factor(7450580596923828125))
	require.Equal(t, 13, Pow5Factor32(1220703125))

	require.True(t, MultipleOfPowerOf5(625, 4))
	require.False(t, MultipleOfPowerOf5(625, 5))
	require.True(t, MultipleOfPowerOf5_32(3125, 5))
	require.False(t, MultipleOfPowerOf5_32(3124, 1))
}

func TestMultipleOfPowerOf2(t *testing.T) {
	require.True(t, MultipleOfPowerOf2(8, 3))
	require.False(t, MultipleOfPowerOf2(8, 4))
	require.True(t, MultipleOfPowerOf2(1<<62, 62))
	require.True(t, MultipleOfPowerOf2_32(12, 2))
	require.False(t, MultipleOfPowerOf2_32(12, 3))
	require.True(t, MultipleOfPowerOf2_32(7, 0))
}

func TestShiftRight128(t *testing.T) {
	require.Equal(t, uint64(1)<<60, ShiftRight128(0, 1, 4))
	require.Equal(t, uint64(0xf000_0000_0000_0000|0x0fff_ffff_ffff_ffff), ShiftRight128(0xffff_ffff_ffff_fff0, 0xf, 4))
}

func TestMulShift64(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 10000; i++ {
		m := r.Uint64() >> 9
		hi := r.Uint64() >> 3
		lo := r.Uint64()
		j := 116 + r.IntN(12)

		mul := new(big.Int).SetUint64(hi)
		mul.Lsh(mul, 64)
		mul.Or(mul, new(big.Int).SetUint64(lo))

		want := new(big.Int).SetUint64(m)
		want.Mul(want, mul)
		want.Rsh(want, uint(j))

		require.Equal(t, want.Uint64(), MulShift64(m, hi, lo, j), "m=%x mul=%x j=%d", m, mul, j)
	}
}

func TestMulShift64NoShift(t *testing.T) {
	require.Equal(t, uint64(2), MulShift64(3, 0, 1<<63|1<<62, 64))
	require.Equal(t, uint64(5), MulShift64(5, 1, 0, 64))
}

func TestMulShift32(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 10000; i++ {
		m := r.Uint32() >> 6
		factor := r.Uint64() >> 3
		shift := 33 + r.IntN(31)

		want := new(big.Int).SetUint64(uint64(m))
		want.Mul(want, new(big.Int).SetUint64(factor))
		want.Rsh(want, uint(shift))

		if want.BitLen() > 32 {
			continue
		}

		require.Equal(t, uint32(want.Uint64()), MulShift32(m, factor, shift), "m=%x factor=%x shift=%d", m, factor, shift)
	}
}

func TestDecimalLength(t *testing.T) {
	v := uint64(1)
	for n := 1; n <= 17; n++ {
		require.Equal(t, n, DecimalLength17(v), "v=%d", v)
		require.Equal(t, n, DecimalLength17(v*10-1), "v=%d", v*10-1)
		v *= 10
	}
	require.Equal(t, 1, DecimalLength17(0))

	w := uint32(1)
	for n := 1; n <= 9; n++ {
		require.Equal(t, n, DecimalLength9(w), "w=%d", w)
		require.Equal(t, n, DecimalLength9(w*10-1), "w=%d", w*10-1)
		w *= 10
	}
}
