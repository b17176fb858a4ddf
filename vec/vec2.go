package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-geom/scalar"
)

// Vec2 is a mutable 2-component vector. Components are held canonically as
// float64 and quantized through the carried scalar kind on every write; the
// kind is fixed at construction. Each Vec2 owns its storage exclusively —
// construction from another vector always copies.
type Vec2 struct {
	kind scalar.Kind
	e    Tuple2
}

// V2 returns a native-float vector with the given components.
func V2(x, y float64) *Vec2 {
	return &Vec2{e: Tuple2{x, y}}
}

// New2 builds a Vec2 of kind k from any combination of like forms:
//
//   - no arguments: the zero vector
//   - a single scalar (or 1-length sequence): broadcast to both components
//   - a single 2-length sequence: component-wise copy
//   - pieces whose lengths sum to 2: concatenated in argument order
//
// Arguments whose lengths do not sum to exactly 2 fail with ErrInvalidArity;
// a non-numeric element fails with ErrInvalidElementType.
func New2(k scalar.Kind, parts ...Vec2Like) (*Vec2, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	t, err := MakeTuple2(parts...)
	if err != nil {
		return nil, err
	}

	return wrap2(k, t), nil
}

// wrap2 builds a Vec2 of kind k, quantizing each canonical component.
func wrap2(k scalar.Kind, t Tuple2) *Vec2 {
	return &Vec2{kind: k, e: Tuple2{k.Convert(t[0]), k.Convert(t[1])}}
}

// quantize re-applies the receiver's kind to its storage after an in-place
// operation, so in-place results are never implicitly widened.
func (v *Vec2) quantize() *Vec2 {
	v.e[0] = v.kind.Convert(v.e[0])
	v.e[1] = v.kind.Convert(v.e[1])

	return v
}

// Kind returns the scalar kind carried by the vector.
func (v *Vec2) Kind() scalar.Kind { return v.kind }

// Len returns the component count, always 2.
func (v *Vec2) Len() int { return 2 }

// X returns the first component.
func (v *Vec2) X() float64 { return v.e[0] }

// Y returns the second component.
func (v *Vec2) Y() float64 { return v.e[1] }

// SetX sets the first component, quantized to the vector's kind.
func (v *Vec2) SetX(x float64) { v.e[0] = v.kind.Convert(x) }

// SetY sets the second component, quantized to the vector's kind.
func (v *Vec2) SetY(y float64) { v.e[1] = v.kind.Convert(y) }

// At returns component i. Panics if i is outside [0, 2).
func (v *Vec2) At(i int) float64 {
	if i < 0 || i >= 2 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 2)", i))
	}

	return v.e[i]
}

// SetAt sets component i, quantized to the vector's kind. Panics if i is
// outside [0, 2).
func (v *Vec2) SetAt(i int, value float64) {
	if i < 0 || i >= 2 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 2)", i))
	}
	v.e[i] = v.kind.Convert(value)
}

// Tuple returns the components as an interchange tuple.
func (v *Vec2) Tuple() Tuple2 { return v.e }

// Clone returns a copy of the vector with the same kind and components.
func (v *Vec2) Clone() *Vec2 {
	c := *v

	return &c
}

// String returns a debug representation including the scalar kind.
func (v *Vec2) String() string {
	return fmt.Sprintf("Vec2[%s](%g, %g)", v.kind, v.e[0], v.e[1])
}

// Equal reports whether other has exactly the same components. Comparison is
// exact — float vectors are deliberately not fuzzy-compared. The operand is
// coerced like any other; a wrong-length operand panics with
// ErrShapeMismatch.
func (v *Vec2) Equal(other Vec2Like) bool {
	t, _ := operand2(other)

	return v.e[0] == t[0] && v.e[1] == t[1]
}

// Add returns v + other as a new vector.
func (v *Vec2) Add(other Vec2Like) *Vec2 {
	t, f := operand2(other)
	out := v.e
	vecmath.AddBlockInPlace(out[:], t[:])

	return wrap2(resultKind(v.kind, f, false), out)
}

// AddSelf adds other into the receiver and returns it.
func (v *Vec2) AddSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	vecmath.AddBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Sub returns v − other as a new vector.
func (v *Vec2) Sub(other Vec2Like) *Vec2 {
	t, f := operand2(other)

	return wrap2(resultKind(v.kind, f, false), Tuple2{v.e[0] - t[0], v.e[1] - t[1]})
}

// SubSelf subtracts other from the receiver and returns it.
func (v *Vec2) SubSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	v.e[0] -= t[0]
	v.e[1] -= t[1]

	return v.quantize()
}

// Mul returns the component-wise product v * other as a new vector.
func (v *Vec2) Mul(other Vec2Like) *Vec2 {
	t, f := operand2(other)
	var out Tuple2
	vecmath.MulBlock(out[:], v.e[:], t[:])

	return wrap2(resultKind(v.kind, f, false), out)
}

// MulSelf multiplies the receiver component-wise by other and returns it.
func (v *Vec2) MulSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	vecmath.MulBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Div returns the true-division quotient v / other as a new vector. Integer
// receivers promote to the native float kind. Division by zero follows IEEE
// rules on the float64 carrier (±Inf or NaN; integer kinds quantize those
// to 0).
func (v *Vec2) Div(other Vec2Like) *Vec2 {
	t, _ := operand2(other)

	return wrap2(resultKind(v.kind, true, true), Tuple2{v.e[0] / t[0], v.e[1] / t[1]})
}

// DivSelf divides the receiver by other and returns it. The receiver's kind
// is kept: integer vectors truncate the quotient.
func (v *Vec2) DivSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	v.e[0] /= t[0]
	v.e[1] /= t[1]

	return v.quantize()
}

// FloorDiv returns the floored quotient v // other as a new vector.
func (v *Vec2) FloorDiv(other Vec2Like) *Vec2 {
	t, f := operand2(other)
	q0, _ := floorDivMod(v.e[0], t[0])
	q1, _ := floorDivMod(v.e[1], t[1])

	return wrap2(resultKind(v.kind, f, false), Tuple2{q0, q1})
}

// FloorDivSelf floors the receiver's quotient by other in place and
// returns it.
func (v *Vec2) FloorDivSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	v.e[0], _ = floorDivMod(v.e[0], t[0])
	v.e[1], _ = floorDivMod(v.e[1], t[1])

	return v.quantize()
}

// Mod returns the remainder of floored division as a new vector. The
// remainder takes the divisor's sign, matching the floored quotient so that
// q*b + r == a.
func (v *Vec2) Mod(other Vec2Like) *Vec2 {
	t, f := operand2(other)
	_, r0 := floorDivMod(v.e[0], t[0])
	_, r1 := floorDivMod(v.e[1], t[1])

	return wrap2(resultKind(v.kind, f, false), Tuple2{r0, r1})
}

// ModSelf reduces the receiver modulo other in place and returns it.
func (v *Vec2) ModSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	_, v.e[0] = floorDivMod(v.e[0], t[0])
	_, v.e[1] = floorDivMod(v.e[1], t[1])

	return v.quantize()
}

// DivMod returns the floored quotient and remainder as two new vectors.
func (v *Vec2) DivMod(other Vec2Like) (*Vec2, *Vec2) {
	t, f := operand2(other)
	q0, r0 := floorDivMod(v.e[0], t[0])
	q1, r1 := floorDivMod(v.e[1], t[1])
	k := resultKind(v.kind, f, false)

	return wrap2(k, Tuple2{q0, q1}), wrap2(k, Tuple2{r0, r1})
}

// Pow returns v raised component-wise to other as a new vector.
func (v *Vec2) Pow(other Vec2Like) *Vec2 {
	t, f := operand2(other)

	return wrap2(resultKind(v.kind, f, false),
		Tuple2{math.Pow(v.e[0], t[0]), math.Pow(v.e[1], t[1])})
}

// PowSelf raises the receiver component-wise to other and returns it.
func (v *Vec2) PowSelf(other Vec2Like) *Vec2 {
	t, _ := operand2(other)
	v.e[0] = math.Pow(v.e[0], t[0])
	v.e[1] = math.Pow(v.e[1], t[1])

	return v.quantize()
}

// MatMul is the 1-D matrix product of two vectors, which is the dot product.
// It exists so the operator set is complete; prefer Dot.
func (v *Vec2) MatMul(other Vec2Like) float64 { return v.Dot(other) }

// Neg returns −v as a new vector. Unsigned kinds wrap.
func (v *Vec2) Neg() *Vec2 {
	return wrap2(v.kind, Tuple2{-v.e[0], -v.e[1]})
}

// Abs returns the component-wise absolute value as a new vector.
func (v *Vec2) Abs() *Vec2 {
	return wrap2(v.kind, Tuple2{math.Abs(v.e[0]), math.Abs(v.e[1])})
}

// dot2 is the shared sum-of-products; Dot and MagnitudeSq both use it so
// v.Dot(v) == v.MagnitudeSq() holds exactly.
func dot2(a, b Tuple2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Dot returns the dot product with other. The result is integral when both
// sides hold integer kinds.
func (v *Vec2) Dot(other Vec2Like) float64 {
	t, _ := operand2(other)

	return dot2(v.e, t)
}

// Magnitude returns the Euclidean length, always computed in floating point.
func (v *Vec2) Magnitude() float64 {
	return math.Sqrt(dot2(v.e, v.e))
}

// MagnitudeSq returns the squared length. It avoids the square root and its
// precision loss; prefer it for comparisons.
func (v *Vec2) MagnitudeSq() float64 {
	return dot2(v.e, v.e)
}

// SetMagnitude rescales the vector in place to the given length and returns
// it. Fails with ErrDegenerateVector if the vector has zero magnitude.
func (v *Vec2) SetMagnitude(m float64) (*Vec2, error) {
	cur := v.Magnitude()
	if cur == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], m/cur)

	return v.quantize(), nil
}

// Normalize returns a unit-length vector in the same direction as a new
// vector; integer receivers promote to the native float kind. Fails with
// ErrDegenerateVector on a zero-magnitude vector.
func (v *Vec2) Normalize() (*Vec2, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	var out Tuple2
	vecmath.ScaleBlock(out[:], v.e[:], 1/m)

	return wrap2(resultKind(v.kind, true, true), out), nil
}

// NormalizeSelf normalizes the vector in place and returns it, keeping the
// receiver's kind. Fails with ErrDegenerateVector on a zero-magnitude
// vector.
func (v *Vec2) NormalizeSelf() (*Vec2, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], 1/m)

	return v.quantize(), nil
}

// Perpendicular returns the vector rotated by +90°, (−y, x), as a new
// vector.
func (v *Vec2) Perpendicular() *Vec2 {
	return wrap2(v.kind, Tuple2{-v.e[1], v.e[0]})
}

// PerpendicularSelf rotates the vector by +90° in place and returns it.
func (v *Vec2) PerpendicularSelf() *Vec2 {
	v.e[0], v.e[1] = -v.e[1], v.e[0]

	return v.quantize()
}

// Angle returns the direction of the vector, atan2(y, x), in radians.
func (v *Vec2) Angle() float64 {
	return math.Atan2(v.e[1], v.e[0])
}

// AngleBetween returns the unsigned angle to other in [0, π]. The cosine is
// clamped to [−1, 1] before acos so floating-point drift cannot produce NaN;
// a zero-magnitude side still yields NaN.
func (v *Vec2) AngleBetween(other Vec2Like) float64 {
	t, _ := operand2(other)
	cos := dot2(v.e, t) / math.Sqrt(dot2(v.e, v.e)*dot2(t, t))

	return math.Acos(clamp(cos, -1, 1))
}

// SignedAngle returns the signed angle to other in (−π, π], positive when
// other lies counter-clockwise of v.
func (v *Vec2) SignedAngle(other Vec2Like) float64 {
	t, _ := operand2(other)
	dot := v.e[0]*t[0] + v.e[1]*t[1]
	det := v.e[0]*t[1] - v.e[1]*t[0]

	return math.Atan2(det, dot)
}

// Distance returns the Euclidean distance to other.
func (v *Vec2) Distance(other Vec2Like) float64 {
	return math.Sqrt(v.DistanceSq(other))
}

// DistanceSq returns the squared distance to other, the squared magnitude of
// the difference vector.
func (v *Vec2) DistanceSq(other Vec2Like) float64 {
	t, _ := operand2(other)
	d := Tuple2{v.e[0] - t[0], v.e[1] - t[1]}

	return dot2(d, d)
}

// Lerp linearly interpolates toward other by t as a new vector. t is not
// clamped, so extrapolation beyond the segment is permitted; t = 0 and t = 1
// reproduce the endpoints exactly.
func (v *Vec2) Lerp(other Vec2Like, t float64) *Vec2 {
	o, _ := operand2(other)

	return wrap2(resultKind(v.kind, true, false), lerp2(v.e, o, t))
}

// lerp2 interpolates in the endpoint-exact (1−t)a + tb form.
func lerp2(a, b Tuple2, t float64) Tuple2 {
	s := 1 - t

	return Tuple2{s*a[0] + t*b[0], s*a[1] + t*b[1]}
}

// SmoothStep interpolates toward other with the smoothstep ease: t is
// clamped to [0, 1] and remapped to t²(3−2t) before the linear blend.
func (v *Vec2) SmoothStep(other Vec2Like, t float64) *Vec2 {
	o, _ := operand2(other)

	return wrap2(resultKind(v.kind, true, false), lerp2(v.e, o, smoothT(t)))
}

// AsType returns a copy of the vector converted to kind k, the single
// sanctioned conversion between scalar kinds. Fails with ErrUnsupportedCast
// for a kind outside the closed set.
func (v *Vec2) AsType(k scalar.Kind) (*Vec2, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	return wrap2(k, v.e), nil
}
