package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
	Written() uint64
}

type encoder struct {
	w       io.Writer
	written uint64
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(p []byte) (err error) {
	n, err := e.w.Write(p)
	e.written += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Data writes data in the smallest block that holds it. Leading bits of the
// first byte are folded into the control byte when they are zero.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		err = e.write([]byte{
			DataSize.Prefix | byte(size-1),
		})
		if err != nil {
			return err
		}

		return e.write(data)
	case uint64(size) <= MaxDataSize:
		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()

		err = e.write([]byte{
			DataSizeSize.Prefix | byte(len(sb)-1),
		})
		if err != nil {
			return err
		}

		err = e.write(sb)
		if err != nil {
			return err
		}

		return e.write(data)
	}

	return Error.New("unimplemented: size=%d", size)
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{
		Empty.Prefix,
	})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{
		Null.Prefix,
	})
}

func (e *encoder) Written() uint64 {
	return e.written
}
