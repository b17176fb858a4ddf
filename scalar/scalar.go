// Package scalar defines the closed set of numeric element kinds a vector can
// be parameterized over, and the deterministic "unsafe" cast rule applied when
// a value is stored under a given kind.
//
// Values travel as float64 everywhere; Convert quantizes a float64 to what a
// component of the given kind actually holds. The rules are:
//
//   - float kinds round to nearest, ties to even (Float16 via a binary16
//     round-trip, Float32 via the native conversion, Float64/Float identity)
//   - integer kinds truncate toward zero, then wrap modulo 2^bits
//     (two's complement for signed kinds); NaN and ±Inf map to 0
//
// Because the carrier is float64, integer kinds are exact up to 2^53.
package scalar

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-geom/internal/f16"
)

// Kind identifies one numeric element representation.
type Kind uint8

const (
	// Float is the native floating kind (binary64). It is the default kind
	// for every vector constructor.
	Float Kind = iota
	// Int is the platform integer kind (strconv.IntSize bits, signed).
	Int
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float16
	Float32
	Float64

	numKinds
)

var kindNames = [numKinds]string{
	Float:   "float",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float16: "float16",
	Float32: "float32",
	Float64: "float64",
}

var kindBits = [numKinds]int{
	Float:   64,
	Int:     strconv.IntSize,
	Int8:    8,
	Int16:   16,
	Int32:   32,
	Int64:   64,
	Uint8:   8,
	Uint16:  16,
	Uint32:  32,
	Uint64:  64,
	Float16: 16,
	Float32: 32,
	Float64: 64,
}

// String returns the lower-case name of the kind, or "kind(n)" for values
// outside the closed set.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Bits returns the storage width of the kind in bits, or 0 for an invalid
// kind.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}

	return kindBits[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	switch k {
	case Float, Float16, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool {
	return k.Valid() && !k.IsFloat()
}

// Signed reports whether k can represent negative values. An invalid kind
// reports false.
func (k Kind) Signed() bool {
	switch k {
	case Uint8, Uint16, Uint32, Uint64:
		return false
	default:
		return k.Valid()
	}
}

// Convert quantizes v to the value a component of kind k holds, applying the
// package cast rules. Panics if k is not a valid kind; callers are expected
// to validate user-supplied kinds first.
func (k Kind) Convert(v float64) float64 {
	switch k {
	case Float, Float64:
		return v
	case Float32:
		return float64(float32(v))
	case Float16:
		return f16.Quantize(v)
	default:
		return wrapInt(v, uint(kindBits[k]), k.Signed())
	}
}

// wrapInt truncates v toward zero and wraps it into the range of a
// bits-wide integer. math.Mod is exact for float64, so the wrap itself
// introduces no rounding error.
func wrapInt(v float64, bits uint, signed bool) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	span := math.Ldexp(1, int(bits)) // 2^bits
	t := math.Mod(math.Trunc(v), span)

	if signed {
		half := span / 2
		if t >= half {
			t -= span
		} else if t < -half {
			t += span
		}
	} else if t < 0 {
		t += span
	}

	return t
}
