package ryu

// Buffer formats floats in the notation of Pretty64Buffered without
// allocating. The zero value is ready to use.
//
// The slice returned by a call aliases the Buffer and is only valid until
// the next call. A Buffer must not be used from more than one goroutine at
// a time.
type Buffer struct {
	bytes [MaxLen64]byte
}

// Float is the set of types a Buffer can format.
type Float interface {
	float32 | float64
}

// Format writes f and returns a view of the bytes written.
func (b *Buffer) Format(f float64) []byte {
	n := Pretty64Buffered(f, b.bytes[:])

	return b.bytes[:n:n]
}

// Format32 writes f with float32 precision and returns a view of the bytes
// written.
func (b *Buffer) Format32(f float32) []byte {
	n := Pretty32Buffered(f, b.bytes[:])

	return b.bytes[:n:n]
}

// FormatFloat formats f with the precision of its type.
func FormatFloat[F Float](b *Buffer, f F) []byte {
	if v, ok := any(f).(float32); ok {
		return b.Format32(v)
	}

	return b.Format(float64(f))
}

// AppendFloat64 appends the pretty form of f to dst.
func AppendFloat64(dst []byte, f float64) []byte {
	var b Buffer

	return append(dst, b.Format(f)...)
}

// AppendFloat32 appends the pretty form of f to dst.
func AppendFloat32(dst []byte, f float32) []byte {
	var b Buffer

	return append(dst, b.Format32(f)...)
}

// FormatFloat64 returns the pretty form of f.
func FormatFloat64(f float64) string {
	var b Buffer

	return string(b.Format(f))
}

// FormatFloat32 returns the pretty form of f.
func FormatFloat32(f float32) string {
	var b Buffer

	return string(b.Format32(f))
}
