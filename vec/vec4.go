package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-geom/scalar"
)

// Vec4 is a mutable 4-component vector. See Vec2 for the storage and
// quantization model; Vec4 adds the z and w components.
type Vec4 struct {
	kind scalar.Kind
	e    Tuple4
}

// V4 returns a native-float vector with the given components.
func V4(x, y, z, w float64) *Vec4 {
	return &Vec4{e: Tuple4{x, y, z, w}}
}

// New4 builds a Vec4 of kind k from any combination of like forms whose
// lengths sum to 4 (a 3-vector plus a scalar, two 2-vectors, four scalars,
// ...), following the rules documented on New2.
func New4(k scalar.Kind, parts ...Vec4Like) (*Vec4, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	t, err := MakeTuple4(parts...)
	if err != nil {
		return nil, err
	}

	return wrap4(k, t), nil
}

// wrap4 builds a Vec4 of kind k, quantizing each canonical component.
func wrap4(k scalar.Kind, t Tuple4) *Vec4 {
	return &Vec4{kind: k, e: Tuple4{
		k.Convert(t[0]), k.Convert(t[1]), k.Convert(t[2]), k.Convert(t[3]),
	}}
}

func (v *Vec4) quantize() *Vec4 {
	for i := range v.e {
		v.e[i] = v.kind.Convert(v.e[i])
	}

	return v
}

// Kind returns the scalar kind carried by the vector.
func (v *Vec4) Kind() scalar.Kind { return v.kind }

// Len returns the component count, always 4.
func (v *Vec4) Len() int { return 4 }

// X returns the first component.
func (v *Vec4) X() float64 { return v.e[0] }

// Y returns the second component.
func (v *Vec4) Y() float64 { return v.e[1] }

// Z returns the third component.
func (v *Vec4) Z() float64 { return v.e[2] }

// W returns the fourth component.
func (v *Vec4) W() float64 { return v.e[3] }

// SetX sets the first component, quantized to the vector's kind.
func (v *Vec4) SetX(x float64) { v.e[0] = v.kind.Convert(x) }

// SetY sets the second component, quantized to the vector's kind.
func (v *Vec4) SetY(y float64) { v.e[1] = v.kind.Convert(y) }

// SetZ sets the third component, quantized to the vector's kind.
func (v *Vec4) SetZ(z float64) { v.e[2] = v.kind.Convert(z) }

// SetW sets the fourth component, quantized to the vector's kind.
func (v *Vec4) SetW(w float64) { v.e[3] = v.kind.Convert(w) }

// At returns component i. Panics if i is outside [0, 4).
func (v *Vec4) At(i int) float64 {
	if i < 0 || i >= 4 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 4)", i))
	}

	return v.e[i]
}

// SetAt sets component i, quantized to the vector's kind. Panics if i is
// outside [0, 4).
func (v *Vec4) SetAt(i int, value float64) {
	if i < 0 || i >= 4 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 4)", i))
	}
	v.e[i] = v.kind.Convert(value)
}

// Tuple returns the components as an interchange tuple.
func (v *Vec4) Tuple() Tuple4 { return v.e }

// Clone returns a copy of the vector with the same kind and components.
func (v *Vec4) Clone() *Vec4 {
	c := *v

	return &c
}

// String returns a debug representation including the scalar kind.
func (v *Vec4) String() string {
	return fmt.Sprintf("Vec4[%s](%g, %g, %g, %g)", v.kind, v.e[0], v.e[1], v.e[2], v.e[3])
}

// Equal reports whether other has exactly the same components; see
// Vec2.Equal for the comparison rules.
func (v *Vec4) Equal(other Vec4Like) bool {
	t, _ := operand4(other)

	return v.e[0] == t[0] && v.e[1] == t[1] && v.e[2] == t[2] && v.e[3] == t[3]
}

// Add returns v + other as a new vector.
func (v *Vec4) Add(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	out := v.e
	vecmath.AddBlockInPlace(out[:], t[:])

	return wrap4(resultKind(v.kind, f, false), out)
}

// AddSelf adds other into the receiver and returns it.
func (v *Vec4) AddSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	vecmath.AddBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Sub returns v − other as a new vector.
func (v *Vec4) Sub(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	var out Tuple4
	for i := range out {
		out[i] = v.e[i] - t[i]
	}

	return wrap4(resultKind(v.kind, f, false), out)
}

// SubSelf subtracts other from the receiver and returns it.
func (v *Vec4) SubSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	for i := range v.e {
		v.e[i] -= t[i]
	}

	return v.quantize()
}

// Mul returns the component-wise product v * other as a new vector.
func (v *Vec4) Mul(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	var out Tuple4
	vecmath.MulBlock(out[:], v.e[:], t[:])

	return wrap4(resultKind(v.kind, f, false), out)
}

// MulSelf multiplies the receiver component-wise by other and returns it.
func (v *Vec4) MulSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	vecmath.MulBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Div returns the true-division quotient v / other as a new vector; see
// Vec2.Div for the promotion and division-by-zero rules.
func (v *Vec4) Div(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	var out Tuple4
	for i := range out {
		out[i] = v.e[i] / t[i]
	}

	return wrap4(resultKind(v.kind, true, true), out)
}

// DivSelf divides the receiver by other and returns it, keeping the
// receiver's kind.
func (v *Vec4) DivSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	for i := range v.e {
		v.e[i] /= t[i]
	}

	return v.quantize()
}

// FloorDiv returns the floored quotient v // other as a new vector.
func (v *Vec4) FloorDiv(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	var out Tuple4
	for i := range out {
		out[i], _ = floorDivMod(v.e[i], t[i])
	}

	return wrap4(resultKind(v.kind, f, false), out)
}

// FloorDivSelf floors the receiver's quotient by other in place and
// returns it.
func (v *Vec4) FloorDivSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	for i := range v.e {
		v.e[i], _ = floorDivMod(v.e[i], t[i])
	}

	return v.quantize()
}

// Mod returns the remainder of floored division as a new vector.
func (v *Vec4) Mod(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	var out Tuple4
	for i := range out {
		_, out[i] = floorDivMod(v.e[i], t[i])
	}

	return wrap4(resultKind(v.kind, f, false), out)
}

// ModSelf reduces the receiver modulo other in place and returns it.
func (v *Vec4) ModSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	for i := range v.e {
		_, v.e[i] = floorDivMod(v.e[i], t[i])
	}

	return v.quantize()
}

// DivMod returns the floored quotient and remainder as two new vectors.
func (v *Vec4) DivMod(other Vec4Like) (*Vec4, *Vec4) {
	t, f := operand4(other)
	var q, r Tuple4
	for i := range q {
		q[i], r[i] = floorDivMod(v.e[i], t[i])
	}
	k := resultKind(v.kind, f, false)

	return wrap4(k, q), wrap4(k, r)
}

// Pow returns v raised component-wise to other as a new vector.
func (v *Vec4) Pow(other Vec4Like) *Vec4 {
	t, f := operand4(other)
	var out Tuple4
	for i := range out {
		out[i] = math.Pow(v.e[i], t[i])
	}

	return wrap4(resultKind(v.kind, f, false), out)
}

// PowSelf raises the receiver component-wise to other and returns it.
func (v *Vec4) PowSelf(other Vec4Like) *Vec4 {
	t, _ := operand4(other)
	for i := range v.e {
		v.e[i] = math.Pow(v.e[i], t[i])
	}

	return v.quantize()
}

// MatMul is the 1-D matrix product of two vectors, which is the dot product.
func (v *Vec4) MatMul(other Vec4Like) float64 { return v.Dot(other) }

// Neg returns −v as a new vector. Unsigned kinds wrap.
func (v *Vec4) Neg() *Vec4 {
	return wrap4(v.kind, Tuple4{-v.e[0], -v.e[1], -v.e[2], -v.e[3]})
}

// Abs returns the component-wise absolute value as a new vector.
func (v *Vec4) Abs() *Vec4 {
	return wrap4(v.kind, Tuple4{
		math.Abs(v.e[0]), math.Abs(v.e[1]), math.Abs(v.e[2]), math.Abs(v.e[3]),
	})
}

// dot4 is the shared sum-of-products; Dot and MagnitudeSq both use it so
// v.Dot(v) == v.MagnitudeSq() holds exactly.
func dot4(a, b Tuple4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Dot returns the dot product with other, over all four components.
func (v *Vec4) Dot(other Vec4Like) float64 {
	t, _ := operand4(other)

	return dot4(v.e, t)
}

// Cross treats both operands as directions: it returns the right-handed
// cross product of the xyz parts with w forced to 0 (the cross product of
// two directions is a direction). This is the module's fixed 4-D
// convention; the w components of the operands are ignored.
func (v *Vec4) Cross(other Vec4Like) *Vec4 {
	t, f := operand4(other)

	return wrap4(resultKind(v.kind, f, false), Tuple4{
		v.e[1]*t[2] - v.e[2]*t[1],
		v.e[2]*t[0] - v.e[0]*t[2],
		v.e[0]*t[1] - v.e[1]*t[0],
		0,
	})
}

// Magnitude returns the Euclidean length, always computed in floating point.
func (v *Vec4) Magnitude() float64 {
	return math.Sqrt(dot4(v.e, v.e))
}

// MagnitudeSq returns the squared length; prefer it for comparisons.
func (v *Vec4) MagnitudeSq() float64 {
	return dot4(v.e, v.e)
}

// SetMagnitude rescales the vector in place to the given length and returns
// it. Fails with ErrDegenerateVector if the vector has zero magnitude.
func (v *Vec4) SetMagnitude(m float64) (*Vec4, error) {
	cur := v.Magnitude()
	if cur == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], m/cur)

	return v.quantize(), nil
}

// Normalize returns a unit-length vector in the same direction as a new
// vector. Fails with ErrDegenerateVector on a zero-magnitude vector.
func (v *Vec4) Normalize() (*Vec4, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	var out Tuple4
	vecmath.ScaleBlock(out[:], v.e[:], 1/m)

	return wrap4(resultKind(v.kind, true, true), out), nil
}

// NormalizeSelf normalizes the vector in place and returns it, keeping the
// receiver's kind. Fails with ErrDegenerateVector on a zero-magnitude
// vector.
func (v *Vec4) NormalizeSelf() (*Vec4, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], 1/m)

	return v.quantize(), nil
}

// AngleBetween returns the unsigned angle to other in [0, π]; see
// Vec2.AngleBetween for the clamping rule.
func (v *Vec4) AngleBetween(other Vec4Like) float64 {
	t, _ := operand4(other)
	cos := dot4(v.e, t) / math.Sqrt(dot4(v.e, v.e)*dot4(t, t))

	return math.Acos(clamp(cos, -1, 1))
}

// Distance returns the Euclidean distance to other.
func (v *Vec4) Distance(other Vec4Like) float64 {
	return math.Sqrt(v.DistanceSq(other))
}

// DistanceSq returns the squared distance to other.
func (v *Vec4) DistanceSq(other Vec4Like) float64 {
	t, _ := operand4(other)
	var d Tuple4
	for i := range d {
		d[i] = v.e[i] - t[i]
	}

	return dot4(d, d)
}

// Lerp linearly interpolates toward other by t as a new vector; t is not
// clamped, and t = 0 and t = 1 reproduce the endpoints exactly.
func (v *Vec4) Lerp(other Vec4Like, t float64) *Vec4 {
	o, _ := operand4(other)

	return wrap4(resultKind(v.kind, true, false), lerp4(v.e, o, t))
}

func lerp4(a, b Tuple4, t float64) Tuple4 {
	s := 1 - t

	return Tuple4{s*a[0] + t*b[0], s*a[1] + t*b[1], s*a[2] + t*b[2], s*a[3] + t*b[3]}
}

// SmoothStep interpolates toward other with the smoothstep ease: t is
// clamped to [0, 1] and remapped to t²(3−2t) before the linear blend.
func (v *Vec4) SmoothStep(other Vec4Like, t float64) *Vec4 {
	o, _ := operand4(other)

	return wrap4(resultKind(v.kind, true, false), lerp4(v.e, o, smoothT(t)))
}

// AsType returns a copy of the vector converted to kind k. Fails with
// ErrUnsupportedCast for a kind outside the closed set.
func (v *Vec4) AsType(k scalar.Kind) (*Vec4, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	return wrap4(k, v.e), nil
}
