package integer

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/ryu/control"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk:  &Block{Value: 0, Negative: false},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "-0",
			blk:  &Block{Value: 0, Negative: true},
			data: []byte{
				0b0000_0001,
			},
		},
		{
			name: "+1",
			blk:  &Block{Value: 1, Negative: false},
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name: "-1",
			blk:  &Block{Value: 1, Negative: true},
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name: "-127",
			blk:  &Block{Value: 127, Negative: true},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "+127",
			blk:  &Block{Value: 127, Negative: false},
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name: "+32767",
			blk:  &Block{Value: 32767, Negative: false},
			data: []byte{
				0b1111_1111,
				0b1111_1110,
			},
		},
		{
			name: "+18446744073709551615",
			blk:  &Block{Value: math.MaxUint64, Negative: false},
			data: []byte{
				0b0000_0001,
				0b1111_1111, 0b1111_1111, 0b1111_1111, 0b1111_1111,
				0b1111_1111, 0b1111_1111, 0b1111_1111, 0b1111_1110,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// These checks ensure that our test case name matches the value.
				i, ok := new(big.Int).SetString(tc.name, 10)
				require.True(t, ok)
				require.Equal(t, 0, i.Cmp(blk.BigInt()))
				require.Equal(t, tc.name[0] == '-', blk.Negative)
			})
		})
	}

	t.Run("overflow", func(t *testing.T) {
		blk := &Block{}

		err := blk.UnmarshalBinary([]byte{0b0000_0010, 0, 0, 0, 0, 0, 0, 0, 0})
		require.Error(t, err)
		require.True(t, Error.Has(err))

		err = blk.UnmarshalBinary(nil)
		require.Error(t, err)
	})
}

func TestInt64(t *testing.T) {
	for _, i := range []int64{0, 1, -1, 63, -64, math.MaxInt64, math.MinInt64} {
		b := FromInt64(i)

		got, ok := b.Int64()
		require.True(t, ok, "%d", i)
		require.Equal(t, i, got)
		require.Zero(t, big.NewInt(i).Cmp(b.BigInt()))
	}

	_, ok := Block{Value: 1 << 63}.Int64()
	require.False(t, ok)

	_, ok = Block{Value: 1<<63 + 1, Negative: true}.Int64()
	require.False(t, ok)
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    *Block
		data   []byte
	}

	tcs := []TC{
		{
			name: "0",
			blk:  &Block{Value: 0},
			data: []byte{
				0b1000_0000,
			},
		},
		{
			name: "+1",
			blk:  &Block{Value: 1},
			data: []byte{
				0b1000_0010,
			},
		},
		{
			name: "-1",
			blk:  &Block{Value: 1, Negative: true},
			data: []byte{
				0b1000_0011,
			},
		},
		{
			name: "-63",
			blk:  &Block{Value: 63, Negative: true},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "+64",
			blk:  &Block{Value: 64},
			data: []byte{
				0b0100_0000,
				0b1000_0000,
			},
		},
		{
			name: "+4095",
			blk:  &Block{Value: 4095},
			data: []byte{
				0b0011_1111,
				0b1111_1110,
			},
		},
		{
			name: "+4096",
			blk:  &Block{Value: 4096},
			data: []byte{
				0b0100_0001,
				0b0010_0000,
				0b0000_0000,
			},
		},
		{
			name: "-524287",
			blk:  &Block{Value: 524287, Negative: true},
			data: []byte{
				0b0001_1111,
				0b1111_1111,
				0b1111_1111,
			},
		},
		{
			name:   "null",
			schema: Schema{Nullable: true},
			blk:    nil,
			data: []byte{
				0b0000_0000,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := &bytes.Buffer{}

			e := NewEncoder(tc.schema, control.NewEncoder(buf))

			err := e.Encode(tc.blk)
			require.NoError(t, err)
			require.Equal(t, tc.data, buf.Bytes())

			d := NewDecoder(tc.schema, control.NewDecoder(buf))

			require.True(t, d.Next())
			require.Equal(t, tc.blk, d.Block())

			require.False(t, d.Next())
			require.NoError(t, d.Err())
		})
	}

	t.Run("null not allowed", func(t *testing.T) {
		e := NewEncoder(Schema{}, control.NewEncoder(&bytes.Buffer{}))

		err := e.Encode(nil)
		require.Error(t, err)
		require.True(t, Error.Has(err))

		d := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer([]byte{0})))

		require.False(t, d.Next())
		require.True(t, Error.Has(d.Err()))
	})
}
