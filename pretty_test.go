package ryu_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ryu"
)

func pretty64(f float64) string {
	buf := make([]byte, ryu.MaxLen64)
	n := ryu.Pretty64Buffered(f, buf)

	return string(buf[:n])
}

func pretty32(f float32) string {
	buf := make([]byte, ryu.MaxLen32)
	n := ryu.Pretty32Buffered(f, buf)

	return string(buf[:n])
}

func TestPretty64(t *testing.T) {
	type TC struct {
		Input    float64
		Expected string
	}

	tcs := []TC{
		// Special values.
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},

		// Integers up to 16 digits.
		{1, "1.0"},
		{-1, "-1.0"},
		{100, "100.0"},
		{1e15, "1000000000000000.0"},
		{9007199254740991, "9007199254740991.0"},
		{9.0608011534336e15, "9060801153433600.0"},
		{1e16, "1e16"},
		{12345678901234567, "1.2345678901234568e16"},

		// Decimal point inside the digits.
		{1.234, "1.234"},
		{123.456, "123.456"},
		{-123.456, "-123.456"},
		{123456789012345.6, "123456789012345.6"},
		{1.2345678901234567, "1.2345678901234567"},

		// Leading zeros.
		{0.3, "0.3"},
		{0.1, "0.1"},
		{0.00012345, "0.00012345"},
		{1e-5, "0.00001"},
		{-0.000012345678901234567, "-0.000012345678901234568"},
		{1e-6, "1e-6"},

		// Scientific.
		{1.23e40, "1.23e40"},
		{1.23e-40, "1.23e-40"},
		{1e22, "1e22"},
		{5e-324, "5e-324"},
		{math.MaxFloat64, "1.7976931348623157e308"},
		{2.2250738585072014e-308, "2.2250738585072014e-308"},
		{-1.2345678901234567e-308, "-1.2345678901234567e-308"},
		{-2.109808898695963e16, "-2.109808898695963e16"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Expected), func(t *testing.T) {
			require.Equal(t, tc.Expected, pretty64(tc.Input))
			require.Equal(t, tc.Expected, ryu.FormatFloat64(tc.Input))
		})
	}
}

func TestPretty32(t *testing.T) {
	type TC struct {
		Input    float32
		Expected string
	}

	tcs := []TC{
		{0, "0.0"},
		{float32(math.Copysign(0, -1)), "-0.0"},
		{float32(math.NaN()), "NaN"},
		{float32(math.Inf(1)), "inf"},
		{float32(math.Inf(-1)), "-inf"},

		{1, "1.0"},
		{200, "200.0"},
		{1e12, "1000000000000.0"},
		{1234567890123, "1234568000000.0"},
		{1e13, "1e13"},
		{12345678901234, "1.2345679e13"},
		{3.355445e7, "33554450.0"},

		{1.234, "1.234"},
		{3.0540412e5, "305404.12"},
		{4103.9003, "4103.9004"},

		{0.1, "0.1"},
		{2.4414062e-4, "0.00024414062"},
		{1e-5, "0.00001"},
		{-0.000012345678, "-0.000012345678"},
		{1e-6, "1e-6"},

		{math.MaxFloat32, "3.4028235e38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{-2.47e-43, "-2.47e-43"},
		{1.5846085e29, "1.5846086e29"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Expected), func(t *testing.T) {
			require.Equal(t, tc.Expected, pretty32(tc.Input))
			require.Equal(t, tc.Expected, ryu.FormatFloat32(tc.Input))
		})
	}
}

func TestAppendDecimal(t *testing.T) {
	type TC struct {
		Input    ryu.Decimal
		Expected string
	}

	tcs := []TC{
		{ryu.Decimal{Digits: 0}, "0.0"},
		{ryu.Decimal{Neg: true}, "-0.0"},
		{ryu.Decimal{Digits: 1234, Exp: 7}, "12340000000.0"},
		{ryu.Decimal{Digits: 1234, Exp: -2}, "12.34"},
		{ryu.Decimal{Digits: 1200, Exp: -2}, "12.00"},
		{ryu.Decimal{Digits: 1234, Exp: -6}, "0.001234"},
		{ryu.Decimal{Digits: 1, Exp: 30}, "1e30"},
		{ryu.Decimal{Digits: 1234, Exp: 30, Neg: true}, "-1.234e33"},
		{ryu.Decimal{Digits: 99999999999999999, Exp: 900}, "9.9999999999999999e916"},
	}

	for _, tc := range tcs {
		t.Run(tc.Expected, func(t *testing.T) {
			require.Equal(t, tc.Expected, string(ryu.AppendDecimal(nil, tc.Input)))
			require.Equal(t, "x="+tc.Expected, string(ryu.AppendDecimal([]byte("x="), tc.Input)))
		})
	}

	t.Run("out of range", func(t *testing.T) {
		require.Panics(t, func() { ryu.AppendDecimal(nil, ryu.Decimal{Digits: 1e17}) })
		require.Panics(t, func() { ryu.AppendDecimal(nil, ryu.Decimal{Digits: 1, Exp: 999}) })
		require.Panics(t, func() { ryu.AppendDecimal(nil, ryu.Decimal{Digits: 1, Exp: -1000}) })
	})
}
