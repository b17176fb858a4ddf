// Package f16 implements IEEE-754 binary16 (half precision) encoding and
// decoding. It backs the float16 scalar kind: values are stored and computed
// as float64 elsewhere, and round-trip through this package whenever a cast
// to float16 is requested.
package f16

import "math"

// Bits is a raw IEEE-754 binary16 bit pattern:
// 1 sign bit, 5 exponent bits (bias 15), 10 fraction bits.
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// ToFloat32 decodes a binary16 bit pattern into a float32.
// The conversion is exact: every binary16 value is representable in binary32.
func ToFloat32(h Bits) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> 10
	frac := uint32(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign) // ±0
		}
		// Subnormal: shift the fraction up until the implicit leading 1
		// appears, tracking the exponent, then strip it.
		e := int32(-14)
		m := frac
		for m&0x0400 == 0 {
			m <<= 1
			e--
		}
		m &= 0x03FF

		return math.Float32frombits(sign | uint32(e+127)<<23 | m<<13)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask) // ±Inf
		}

		return math.Float32frombits(sign | f32ExpMask | frac<<13) // NaN
	default:
		return math.Float32frombits(sign | uint32(int32(exp)-15+127)<<23 | frac<<13)
	}
}

// FromFloat32 encodes a float32 into the nearest binary16 bit pattern,
// rounding to nearest with ties to even. Overflow encodes ±Inf; values too
// small for a subnormal encode ±0.
func FromFloat32(f float32) Bits {
	bits := math.Float32bits(f)
	sign := Bits(bits >> 16 & uint32(signMask))
	exp := int32(bits & f32ExpMask >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask // ±Inf
		}
		// Keep the top fraction bits, force non-zero so NaN stays NaN.
		nan := Bits(frac >> 13)
		if nan == 0 {
			nan = 1
		}

		return sign | expMask | nan
	}

	// Rebias from binary32 (127) to binary16 (15).
	e := exp - 127 + 15

	// Assembly below uses addition, not OR, so a fraction that rounds up to
	// 1<<10 carries into the exponent (up to the next binade, or from the
	// largest subnormal to the smallest normal).
	switch {
	case e >= 0x1F:
		return sign | expMask // overflow to ±Inf
	case e <= 0:
		if e < -11 {
			return sign // underflows below half the smallest subnormal
		}
		// Subnormal result: prepend the implicit 1 and shift into place.
		m := frac | 0x00800000
		shift := uint32(14 - e)

		return sign + roundShift(m, shift)
	default:
		return sign + Bits(e)<<10 + roundShift(frac, 13)
	}
}

// roundShift shifts m right, rounding to nearest with ties to even.
// The carry out of the fraction is allowed to ripple into the exponent,
// which is exactly the IEEE behavior for rounding up to the next binade.
func roundShift(m, shift uint32) Bits {
	v := m >> shift
	rem := m & (1<<shift - 1)
	half := uint32(1) << (shift - 1)

	if rem > half || (rem == half && v&1 == 1) {
		v++
	}

	return Bits(v)
}

// Quantize rounds a float64 through binary16 and back, yielding the value a
// float16 component actually holds.
func Quantize(v float64) float64 {
	return float64(ToFloat32(FromFloat32(float32(v))))
}
