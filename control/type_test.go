package control

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	type TC struct {
		b  byte
		t  Type
		ok bool
	}

	tcs := []TC{
		{0b_1111_1111, Data, true},
		{0b_1000_0000, Data, true},
		{0b_0111_1111, DataSize, true},
		{0b_0100_0000, DataSize, true},
		{0b_0011_1111, Data1, true},
		{0b_0010_0000, Data1, true},
		{0b_0001_1111, Data2, true},
		{0b_0001_0000, Data2, true},
		{0b_0000_1111, DataSizeSize, true},
		{0b_0000_1000, DataSizeSize, true},
		{0b_0000_0111, Unknown, false},
		{0b_0000_0010, Unknown, false},
		{0b_0000_0001, Empty, true},
		{0b_0000_0000, Null, true},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%08b", tc.b), func(t *testing.T) {
			typ, ok := Types.Match(tc.b)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.t, typ)
		})
	}

	// Every byte matches at most one type.
	for b := 0; b < 256; b++ {
		n := 0
		for _, typ := range Types {
			if typ.Match(byte(b)) {
				n++
			}
		}
		require.LessOrEqual(t, n, 1, "%08b", b)
	}
}
