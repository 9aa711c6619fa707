package ryu_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ryu"
)

func TestDecompose(t *testing.T) {
	type TC struct {
		Input    float64
		Expected ryu.Decomposition
	}

	tcs := []TC{
		{0, ryu.Decomposition{Class: ryu.Zero}},
		{math.Copysign(0, -1), ryu.Decomposition{Class: ryu.Zero, Neg: true}},
		{math.Inf(-1), ryu.Decomposition{Class: ryu.Infinite, Neg: true}},
		{math.NaN(), ryu.Decomposition{Class: ryu.NaN}},
		{1, ryu.Decomposition{Mantissa: 1 << 52, Exp: -52}},
		{-3, ryu.Decomposition{Neg: true, Mantissa: 3 << 51, Exp: -51}},
		{math.SmallestNonzeroFloat64, ryu.Decomposition{Mantissa: 1, Exp: -1074}},
		{math.Float64frombits(0x0010000000000000), ryu.Decomposition{Mantissa: 1 << 52, Exp: -1074}},
		{math.MaxFloat64, ryu.Decomposition{Mantissa: 1<<53 - 1, Exp: 971}},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.Input), func(t *testing.T) {
			d := ryu.Decompose64(tc.Input)
			require.Equal(t, tc.Expected, d, spew.Sdump(d))
		})
	}

	t.Run("float32", func(t *testing.T) {
		require.Equal(t,
			ryu.Decomposition{Mantissa: 1 << 23, Exp: -23},
			ryu.Decompose32(1))
		require.Equal(t,
			ryu.Decomposition{Mantissa: 1, Exp: -149},
			ryu.Decompose32(math.SmallestNonzeroFloat32))
		require.Equal(t,
			ryu.Decomposition{Mantissa: 1<<24 - 1, Exp: 104},
			ryu.Decompose32(math.MaxFloat32))
		require.Equal(t,
			ryu.Decomposition{Class: ryu.NaN, Neg: true},
			ryu.Decompose32(math.Float32frombits(0xffc00000)))
	})

	// The decomposition is exact.
	t.Run("value", func(t *testing.T) {
		for _, f := range []float64{1, 0.1, 1e300, 5e-324, 123.456} {
			d := ryu.Decompose64(f)
			require.Equal(t, f, math.Ldexp(float64(d.Mantissa), int(d.Exp)))
		}
	})
}

func TestClassString(t *testing.T) {
	require.Equal(t, "finite", ryu.Finite.String())
	require.Equal(t, "zero", ryu.Zero.String())
	require.Equal(t, "infinite", ryu.Infinite.String())
	require.Equal(t, "nan", ryu.NaN.String())
	require.Equal(t, "invalid", ryu.Class(42).String())
}

func TestShortest(t *testing.T) {
	type TC struct {
		Input    float64
		Expected ryu.Decimal
	}

	tcs := []TC{
		{1, ryu.Decimal{Digits: 1}},
		{1200, ryu.Decimal{Digits: 12, Exp: 2}},
		{0.3, ryu.Decimal{Digits: 3, Exp: -1}},
		{-1.5, ryu.Decimal{Neg: true, Digits: 15, Exp: -1}},
		{1e23, ryu.Decimal{Digits: 1, Exp: 23}},
		{5e-324, ryu.Decimal{Digits: 5, Exp: -324}},
		{math.MaxFloat64, ryu.Decimal{Digits: 17976931348623157, Exp: 292}},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.Input), func(t *testing.T) {
			d, class := ryu.Shortest64(tc.Input)
			require.Equal(t, ryu.Finite, class)
			require.Equal(t, tc.Expected, d)
		})
	}

	t.Run("special", func(t *testing.T) {
		d, class := ryu.Shortest64(math.Copysign(0, -1))
		require.Equal(t, ryu.Zero, class)
		require.Equal(t, ryu.Decimal{Neg: true}, d)

		_, class = ryu.Shortest64(math.NaN())
		require.Equal(t, ryu.NaN, class)

		d, class = ryu.Shortest32(float32(math.Inf(-1)))
		require.Equal(t, ryu.Infinite, class)
		require.True(t, d.Neg)
	})

	t.Run("float32", func(t *testing.T) {
		d, class := ryu.Shortest32(0.1)
		require.Equal(t, ryu.Finite, class)
		require.Equal(t, ryu.Decimal{Digits: 1, Exp: -1}, d)

		d, _ = ryu.Shortest32(math.MaxFloat32)
		require.Equal(t, ryu.Decimal{Digits: 34028235, Exp: 31}, d)
	})
}

// Exact halfway cases keep the even digit.
func TestRoundToEven(t *testing.T) {
	// 2^-25 = 2.98023223876953125e-8
	require.Equal(t, "2.9802322387695312E-8", ryu.D2S(math.Ldexp(1, -25)))

	// 2^-12 = 0.000244140625
	require.Equal(t, "2.4414062E-4", ryu.F2S(float32(math.Ldexp(1, -12))))

	// 0.439453125
	require.Equal(t, "4.3945312E-1", ryu.F2S(0.439453125))
}

// At a power of two the gap below is half the gap above.
func TestUnevenGap(t *testing.T) {
	for e := -1022; e <= 1023; e += 7 {
		f := math.Ldexp(1, e)

		for _, v := range []float64{f, math.Nextafter(f, 0), math.Nextafter(f, math.Inf(1))} {
			s := ryu.D2S(v)

			parsed, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err, s)
			require.Equal(t, v, parsed, s)
			require.Len(t, digits(s), len(digits(strconv.FormatFloat(v, 'e', -1, 64))), s)
		}
	}

	for e := -126; e <= 127; e++ {
		f := float32(math.Ldexp(1, e))

		for _, v := range []float32{f, math.Nextafter32(f, 0), math.Nextafter32(f, float32(math.Inf(1)))} {
			s := ryu.F2S(v)

			parsed, err := strconv.ParseFloat(s, 32)
			require.NoError(t, err, s)
			require.Equal(t, v, float32(parsed), s)
			require.Len(t, digits(s), len(digits(strconv.FormatFloat(float64(v), 'e', -1, 32))), s)
		}
	}
}

// digits returns the significant digits of a number in scientific notation.
func digits(s string) string {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimRight(strings.Replace(s, ".", "", 1), "0")
}

func TestRoundtrip64(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x5eed, 64))

	var b ryu.Buffer

	for i := 0; i < 200000; i++ {
		f := math.Float64frombits(rng.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}

		raw := ryu.D2S(f)

		parsed, err := strconv.ParseFloat(raw, 64)
		require.NoError(t, err, raw)
		require.Equal(t, math.Float64bits(f), math.Float64bits(parsed), raw)

		// As short as the shortest formatting in strconv.
		require.Len(t, digits(raw), len(digits(strconv.FormatFloat(f, 'e', -1, 64))), raw)

		pretty := string(b.Format(f))

		parsed, err = strconv.ParseFloat(pretty, 64)
		require.NoError(t, err, pretty)
		require.Equal(t, math.Float64bits(f), math.Float64bits(parsed), pretty)
	}
}

func TestRoundtrip32(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x5eed, 32))

	var b ryu.Buffer

	for i := 0; i < 200000; i++ {
		f := math.Float32frombits(rng.Uint32())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			continue
		}

		raw := ryu.F2S(f)

		parsed, err := strconv.ParseFloat(raw, 32)
		require.NoError(t, err, raw)
		require.Equal(t, math.Float32bits(f), math.Float32bits(float32(parsed)), raw)

		require.Len(t, digits(raw), len(digits(strconv.FormatFloat(float64(f), 'e', -1, 32))), raw)

		pretty := string(b.Format32(f))

		parsed, err = strconv.ParseFloat(pretty, 32)
		require.NoError(t, err, pretty)
		require.Equal(t, math.Float32bits(f), math.Float32bits(float32(parsed)), pretty)
	}
}

func TestSubnormals(t *testing.T) {
	for m := uint64(1); m < 1<<52; m = m*3 + 1 {
		f := math.Float64frombits(m)

		s := ryu.D2S(f)

		parsed, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		require.Equal(t, f, parsed, s)
	}

	for m := uint32(1); m < 1<<23; m = m*3 + 1 {
		f := math.Float32frombits(m)

		s := ryu.F2S(f)

		parsed, err := strconv.ParseFloat(s, 32)
		require.NoError(t, err, s)
		require.Equal(t, f, float32(parsed), s)
	}
}

func TestDeterministic(t *testing.T) {
	inputs := []float64{0.1, 1.7976931348623157e308, 5e-324, -123.456, 1e22}

	for _, f := range inputs {
		first := ryu.D2S(f)
		for i := 0; i < 8; i++ {
			require.Equal(t, first, ryu.D2S(f))
		}
	}
}

func TestTableName(t *testing.T) {
	name := ryu.TableName()
	require.Contains(t, []string{"full", "small"}, name)
}
