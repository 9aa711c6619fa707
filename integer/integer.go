package integer

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/ryu/control"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is a signed integer in sign and magnitude form. A negative zero is
// representable and kept distinct from zero.
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 returns the block for i.
func FromInt64(i int64) Block {
	if i < 0 {
		// Two's complement negation gives the right magnitude for
		// math.MinInt64 as well.
		return Block{Value: uint64(-i), Negative: true}
	}

	return Block{Value: uint64(i)}
}

// Int64 returns the value as an int64. ok is false if it does not fit.
func (b Block) Int64() (i int64, ok bool) {
	switch {
	case !b.Negative && b.Value <= math.MaxInt64:
		return int64(b.Value), true
	case b.Negative && b.Value <= 1<<63:
		return -int64(b.Value), true
	}

	return 0, false
}

// BigInt returns the value as a big.Int. The sign of a negative zero is lost.
func (b Block) BigInt() *big.Int {
	i := new(big.Int).SetUint64(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The layout is the big-endian magnitude shifted left by one with the sign in
// the lowest bit, using as few bytes as possible.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetUint64(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty")
	}

	i := new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	if !i.IsUint64() {
		return Error.New("overflow: %d bits", i.BitLen())
	}

	b.Value = i.Uint64()
	b.Negative = negative

	return nil
}

// Schema for an integer.
type Schema struct {
	Nullable bool
}

// Decoder reads integers from control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder

	blk *Block
	err error
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Next reads the following integer. It returns false at the end of the
// input or on error.
func (d *Decoder) Next() (ok bool) {
	d.blk = nil

	if d.err != nil || !d.cd.Next() {
		if d.err == nil {
			d.err = d.cd.Err()
		}

		return false
	}

	d.blk, d.err = d.decode()

	return d.err == nil
}

func (d *Decoder) decode() (b *Block, err error) {
	defer Error.WrapP(&err)

	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null in non-nullable field")
		}

		return nil, nil
	case control.Empty:
		return nil, Error.New("empty field")
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	b = &Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Block returns the integer read by the last call to Next. It is nil for a
// null field.
func (d *Decoder) Block() *Block {
	return d.blk
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Encoder writes integers as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes b. A nil b is written as null if the schema allows it.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil {
		if !e.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		return e.ce.Null()
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
