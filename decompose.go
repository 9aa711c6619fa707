package ryu

import "math"

const (
	float64MantBits = 52
	float64ExpBits  = 11
	float64Bias     = 1023

	float32MantBits = 23
	float32ExpBits  = 8
	float32Bias     = 127

	// Smallest binary exponents, shared by subnormals and the smallest
	// normal of each width.
	float64MinExp = 1 - float64Bias - float64MantBits
	float32MinExp = 1 - float32Bias - float32MantBits
)

// Class is the IEEE-754 category of a value.
type Class uint8

// Value categories. Only Finite values go through the shortest decimal
// search; the others have fixed renderings.
const (
	Finite Class = iota
	Zero
	Infinite
	NaN
)

func (c Class) String() string {
	switch c {
	case Finite:
		return "finite"
	case Zero:
		return "zero"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	}

	return "invalid"
}

// Decomposition is a float split into sign, integer mantissa and binary
// exponent so that a Finite value equals ±Mantissa * 2^Exp.
//
// Normal values carry the implicit leading mantissa bit. Subnormals have no
// implicit bit and use the smallest exponent of their width. For Zero,
// Infinite and NaN only Class and Neg are meaningful.
type Decomposition struct {
	Class    Class
	Neg      bool
	Mantissa uint64
	Exp      int32
}

// Decompose64 splits f into its parts.
func Decompose64(f float64) Decomposition {
	bits := math.Float64bits(f)

	d := Decomposition{
		Neg: bits>>(float64MantBits+float64ExpBits) != 0,
	}

	mant := bits & (1<<float64MantBits - 1)
	exp := uint32(bits>>float64MantBits) & (1<<float64ExpBits - 1)

	switch {
	case exp == 1<<float64ExpBits-1 && mant != 0:
		d.Class = NaN
	case exp == 1<<float64ExpBits-1:
		d.Class = Infinite
	case exp == 0 && mant == 0:
		d.Class = Zero
	case exp == 0:
		d.Mantissa = mant
		d.Exp = float64MinExp
	default:
		d.Mantissa = 1<<float64MantBits | mant
		d.Exp = int32(exp) - float64Bias - float64MantBits
	}

	return d
}

// Decompose32 splits f into its parts.
func Decompose32(f float32) Decomposition {
	bits := math.Float32bits(f)

	d := Decomposition{
		Neg: bits>>(float32MantBits+float32ExpBits) != 0,
	}

	mant := bits & (1<<float32MantBits - 1)
	exp := (bits >> float32MantBits) & (1<<float32ExpBits - 1)

	switch {
	case exp == 1<<float32ExpBits-1 && mant != 0:
		d.Class = NaN
	case exp == 1<<float32ExpBits-1:
		d.Class = Infinite
	case exp == 0 && mant == 0:
		d.Class = Zero
	case exp == 0:
		d.Mantissa = uint64(mant)
		d.Exp = float32MinExp
	default:
		d.Mantissa = uint64(1<<float32MantBits | mant)
		d.Exp = int32(exp) - float32Bias - float32MantBits
	}

	return d
}

// unevenGap64 reports whether the predecessor of d is half as far away as
// its successor. That is the case when the mantissa is a power of two and
// the value is above the smallest normal, where the exponent steps down.
func unevenGap64(d Decomposition) bool {
	return d.Mantissa == 1<<float64MantBits && d.Exp > float64MinExp
}

func unevenGap32(d Decomposition) bool {
	return d.Mantissa == 1<<float32MantBits && d.Exp > float32MinExp
}

// Decimal is a decimal floating point value ±Digits * 10^Exp.
//
// Values produced by Shortest64 and Shortest32 have the fewest digits that
// parse back to the original float, with no trailing zeros in Digits except
// for the value zero.
type Decimal struct {
	Neg    bool
	Digits uint64
	Exp    int32
}

// Shortest64 returns the shortest decimal that round-trips to f. For Zero
// the result is a signed zero; for Infinite and NaN only Neg is set.
func Shortest64(f float64) (Decimal, Class) {
	d := Decompose64(f)
	if d.Class != Finite {
		return Decimal{Neg: d.Neg}, d.Class
	}

	if v, ok := d2dSmallInt(d); ok {
		return v, Finite
	}

	return d2d(d), Finite
}

// Shortest32 returns the shortest decimal that round-trips to f when parsed
// as a float32.
func Shortest32(f float32) (Decimal, Class) {
	d := Decompose32(f)
	if d.Class != Finite {
		return Decimal{Neg: d.Neg}, d.Class
	}

	return f2d(d), Finite
}
