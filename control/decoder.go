package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks one field at a time:
//
//	d := control.NewDecoder(r)
//	for d.Next() {
//		switch d.Type() {
//		case control.Null:
//		default:
//			data, err := d.Data()
//		}
//	}
//	err := d.Err()
type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r. If r is also an io.Seeker
// unread payloads are skipped without copying.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	d.s, _ = r.(io.Seeker)

	return d
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return oops.Trace(err)
	}

	return nil
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return oops.Trace(err)
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return oops.Trace(err)
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished || d.consumed == 0 {
		return nil
	}

	switch d.t {
	case Data1, Data2:
		// Small enough to just read directly.
		_, err = d.Data()
		if err != nil {
			return err
		}
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	}

	d.finished = true

	return nil
}

// Next advances to the following field. It returns false at the end of the
// input or on error; Err distinguishes the two.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.Seek() != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = oops.Trace(err)
		}

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

// Consumed returns the number of bytes read so far.
func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the payload size of the current field in bytes.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeBytes := make([]byte, uint64(d.value[0]&d.t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() || size.Uint64() > MaxDataSize {
			return 0, Error.New("unimplemented: size=%s", size)
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	switch d.t {
	case Data, Data1, Data2, DataSize, DataSizeSize:
	default:
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already skipped: %s", d.t)
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	d.data = make([]byte, d.size)

	switch d.t {
	case Data:
		d.data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		err = d.read(d.data)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}
