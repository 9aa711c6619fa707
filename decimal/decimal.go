package decimal

import (
	"math/big"

	shopspring "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/ryu"
	"github.com/calebcase/ryu/control"
	"github.com/calebcase/ryu/integer"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// MaxScale is the largest scale magnitude that can be encoded.
const MaxScale = 1<<21 - 1

// Scale sizes, stored in the lowest two bits of the encoding.
const (
	scaleNone  = 0b00
	scaleSmall = 0b01
	scaleMid   = 0b10
	scaleLarge = 0b11
)

// scaleBits is the width of the zig-zagged scale for each scale size.
var scaleBits = [4]uint{0, 6, 14, 22}

// Block is a fixed point base 10 decimal number: Value * 10^Scale.
type Block struct {
	Value integer.Block
	Scale int32
}

// FromDecimal returns the block holding d exactly.
func FromDecimal(d ryu.Decimal) Block {
	return Block{
		Value: integer.Block{
			Value:    d.Digits,
			Negative: d.Neg,
		},
		Scale: d.Exp,
	}
}

// FromFloat64 returns the shortest decimal that reads back as f. Zeros keep
// their sign. NaN and the infinities have no decimal form.
func FromFloat64(f float64) (b Block, err error) {
	d, class := ryu.Shortest64(f)
	if class == ryu.NaN || class == ryu.Infinite {
		return b, Error.New("not a finite number: %s", class)
	}

	return FromDecimal(d), nil
}

// FromFloat32 is FromFloat64 with float32 precision, so FromFloat32(0.1) is
// 1e-1 and not the 0.100000001490116... of the widened value.
func FromFloat32(f float32) (b Block, err error) {
	d, class := ryu.Shortest32(f)
	if class == ryu.NaN || class == ryu.Infinite {
		return b, Error.New("not a finite number: %s", class)
	}

	return FromDecimal(d), nil
}

// Decimal returns the value as an arbitrary precision decimal. The sign of a
// negative zero is lost.
func (b Block) Decimal() shopspring.Decimal {
	return shopspring.NewFromBigInt(b.Value.BigInt(), b.Scale)
}

// String formats the number like ryu.FormatFloat64 would, keeping trailing
// zeros implied by the scale (1200e-2 is "12.00"). Values with more than 17
// digits are written in full.
func (b Block) String() string {
	d := ryu.Decimal{
		Neg:    b.Value.Negative,
		Digits: b.Value.Value,
		Exp:    b.Scale,
	}

	if d.Digits < 1e17 && d.Exp > -900 && d.Exp < 900 {
		return string(ryu.AppendDecimal(nil, d))
	}

	return b.Decimal().String()
}

func scaleSize(zz uint32) uint8 {
	switch {
	case zz == 0:
		return scaleNone
	case zz < 1<<scaleBits[scaleSmall]:
		return scaleSmall
	case zz < 1<<scaleBits[scaleMid]:
		return scaleMid
	}

	return scaleLarge
}

func zigzag(scale int32) uint32 {
	if scale < 0 {
		return uint32(-scale)<<1 | 1
	}

	return uint32(scale) << 1
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The integer value with its sign bit comes first, then the scale with its
// sign bit, then two bits of scale size. The result is big-endian with no
// leading zero bytes.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Scale > MaxScale || b.Scale < -MaxScale {
		return nil, Error.New("scale out of range: %d", b.Scale)
	}

	zz := zigzag(b.Scale)
	size := scaleSize(zz)

	i := new(big.Int).SetUint64(b.Value.Value)

	i.Lsh(i, 1)
	if b.Value.Negative {
		i.SetBit(i, 0, 1)
	}

	i.Lsh(i, scaleBits[size])
	i.Or(i, big.NewInt(int64(zz)))

	i.Lsh(i, 2)
	i.Or(i, big.NewInt(int64(size)))

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only the encoding
// produced by MarshalBinary is accepted: the scale must use the smallest
// size that holds it.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty")
	}

	i := new(big.Int).SetBytes(data)

	size := uint8(i.Bit(1)<<1 | i.Bit(0))
	i.Rsh(i, 2)

	bits := scaleBits[size]

	mask := new(big.Int).Lsh(big.NewInt(1), bits)
	mask.Sub(mask, big.NewInt(1))

	zz := uint32(new(big.Int).And(i, mask).Uint64())
	i.Rsh(i, bits)

	if scaleSize(zz) != size {
		return Error.New("non-canonical scale size %02b for %d", size, zz)
	}

	scale := int32(zz >> 1)
	if zz&1 == 1 {
		scale = -scale
	}

	vb := i.Bytes()
	if len(vb) == 0 {
		vb = []byte{0}
	}

	var value integer.Block

	err = value.UnmarshalBinary(vb)
	if err != nil {
		return Error.Wrap(err)
	}

	b.Value = value
	b.Scale = scale

	return nil
}

// Schema represents a configured number format.
type Schema struct {
	Nullable bool
}

// Decoder reads decimals from control blocks.
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

// Next reads the following decimal. It returns false at the end of the input
// or on error.
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

// Block returns the decimal read by the last call to Next. It is nil for a
// null field.
func (d *Decoder) Block() *Block {
	return d.blk
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Encoder writes decimals as control blocks.
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

// EncodeFloat64 writes the shortest decimal form of f.
func (e *Encoder) EncodeFloat64(f float64) (err error) {
	b, err := FromFloat64(f)
	if err != nil {
		return err
	}

	return e.Encode(&b)
}

// EncodeFloat32 writes the shortest decimal form of f.
func (e *Encoder) EncodeFloat32(f float32) (err error) {
	b, err := FromFloat32(f)
	if err != nil {
		return err
	}

	return e.Encode(&b)
}
