package vec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-geom/scalar"
)

// Vec3 is a mutable 3-component vector. See Vec2 for the storage and
// quantization model; Vec3 adds the z component and the cross product.
type Vec3 struct {
	kind scalar.Kind
	e    Tuple3
}

// V3 returns a native-float vector with the given components.
func V3(x, y, z float64) *Vec3 {
	return &Vec3{e: Tuple3{x, y, z}}
}

// New3 builds a Vec3 of kind k from any combination of like forms whose
// lengths sum to 3 (a 2-vector plus a scalar, three scalars, a single
// 3-length sequence, ...), following the rules documented on New2.
func New3(k scalar.Kind, parts ...Vec3Like) (*Vec3, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	t, err := MakeTuple3(parts...)
	if err != nil {
		return nil, err
	}

	return wrap3(k, t), nil
}

// wrap3 builds a Vec3 of kind k, quantizing each canonical component.
func wrap3(k scalar.Kind, t Tuple3) *Vec3 {
	return &Vec3{kind: k, e: Tuple3{k.Convert(t[0]), k.Convert(t[1]), k.Convert(t[2])}}
}

func (v *Vec3) quantize() *Vec3 {
	v.e[0] = v.kind.Convert(v.e[0])
	v.e[1] = v.kind.Convert(v.e[1])
	v.e[2] = v.kind.Convert(v.e[2])

	return v
}

// Kind returns the scalar kind carried by the vector.
func (v *Vec3) Kind() scalar.Kind { return v.kind }

// Len returns the component count, always 3.
func (v *Vec3) Len() int { return 3 }

// X returns the first component.
func (v *Vec3) X() float64 { return v.e[0] }

// Y returns the second component.
func (v *Vec3) Y() float64 { return v.e[1] }

// Z returns the third component.
func (v *Vec3) Z() float64 { return v.e[2] }

// SetX sets the first component, quantized to the vector's kind.
func (v *Vec3) SetX(x float64) { v.e[0] = v.kind.Convert(x) }

// SetY sets the second component, quantized to the vector's kind.
func (v *Vec3) SetY(y float64) { v.e[1] = v.kind.Convert(y) }

// SetZ sets the third component, quantized to the vector's kind.
func (v *Vec3) SetZ(z float64) { v.e[2] = v.kind.Convert(z) }

// At returns component i. Panics if i is outside [0, 3).
func (v *Vec3) At(i int) float64 {
	if i < 0 || i >= 3 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 3)", i))
	}

	return v.e[i]
}

// SetAt sets component i, quantized to the vector's kind. Panics if i is
// outside [0, 3).
func (v *Vec3) SetAt(i int, value float64) {
	if i < 0 || i >= 3 {
		panic(fmt.Sprintf("vec: index %d out of range [0, 3)", i))
	}
	v.e[i] = v.kind.Convert(value)
}

// Tuple returns the components as an interchange tuple.
func (v *Vec3) Tuple() Tuple3 { return v.e }

// Clone returns a copy of the vector with the same kind and components.
func (v *Vec3) Clone() *Vec3 {
	c := *v

	return &c
}

// String returns a debug representation including the scalar kind.
func (v *Vec3) String() string {
	return fmt.Sprintf("Vec3[%s](%g, %g, %g)", v.kind, v.e[0], v.e[1], v.e[2])
}

// Equal reports whether other has exactly the same components; see
// Vec2.Equal for the comparison rules.
func (v *Vec3) Equal(other Vec3Like) bool {
	t, _ := operand3(other)

	return v.e[0] == t[0] && v.e[1] == t[1] && v.e[2] == t[2]
}

// Add returns v + other as a new vector.
func (v *Vec3) Add(other Vec3Like) *Vec3 {
	t, f := operand3(other)
	out := v.e
	vecmath.AddBlockInPlace(out[:], t[:])

	return wrap3(resultKind(v.kind, f, false), out)
}

// AddSelf adds other into the receiver and returns it.
func (v *Vec3) AddSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	vecmath.AddBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Sub returns v − other as a new vector.
func (v *Vec3) Sub(other Vec3Like) *Vec3 {
	t, f := operand3(other)

	return wrap3(resultKind(v.kind, f, false),
		Tuple3{v.e[0] - t[0], v.e[1] - t[1], v.e[2] - t[2]})
}

// SubSelf subtracts other from the receiver and returns it.
func (v *Vec3) SubSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	v.e[0] -= t[0]
	v.e[1] -= t[1]
	v.e[2] -= t[2]

	return v.quantize()
}

// Mul returns the component-wise product v * other as a new vector.
func (v *Vec3) Mul(other Vec3Like) *Vec3 {
	t, f := operand3(other)
	var out Tuple3
	vecmath.MulBlock(out[:], v.e[:], t[:])

	return wrap3(resultKind(v.kind, f, false), out)
}

// MulSelf multiplies the receiver component-wise by other and returns it.
func (v *Vec3) MulSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	vecmath.MulBlockInPlace(v.e[:], t[:])

	return v.quantize()
}

// Div returns the true-division quotient v / other as a new vector; see
// Vec2.Div for the promotion and division-by-zero rules.
func (v *Vec3) Div(other Vec3Like) *Vec3 {
	t, _ := operand3(other)

	return wrap3(resultKind(v.kind, true, true),
		Tuple3{v.e[0] / t[0], v.e[1] / t[1], v.e[2] / t[2]})
}

// DivSelf divides the receiver by other and returns it, keeping the
// receiver's kind.
func (v *Vec3) DivSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	v.e[0] /= t[0]
	v.e[1] /= t[1]
	v.e[2] /= t[2]

	return v.quantize()
}

// FloorDiv returns the floored quotient v // other as a new vector.
func (v *Vec3) FloorDiv(other Vec3Like) *Vec3 {
	t, f := operand3(other)
	var out Tuple3
	for i := range out {
		out[i], _ = floorDivMod(v.e[i], t[i])
	}

	return wrap3(resultKind(v.kind, f, false), out)
}

// FloorDivSelf floors the receiver's quotient by other in place and
// returns it.
func (v *Vec3) FloorDivSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	for i := range v.e {
		v.e[i], _ = floorDivMod(v.e[i], t[i])
	}

	return v.quantize()
}

// Mod returns the remainder of floored division as a new vector.
func (v *Vec3) Mod(other Vec3Like) *Vec3 {
	t, f := operand3(other)
	var out Tuple3
	for i := range out {
		_, out[i] = floorDivMod(v.e[i], t[i])
	}

	return wrap3(resultKind(v.kind, f, false), out)
}

// ModSelf reduces the receiver modulo other in place and returns it.
func (v *Vec3) ModSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	for i := range v.e {
		_, v.e[i] = floorDivMod(v.e[i], t[i])
	}

	return v.quantize()
}

// DivMod returns the floored quotient and remainder as two new vectors.
func (v *Vec3) DivMod(other Vec3Like) (*Vec3, *Vec3) {
	t, f := operand3(other)
	var q, r Tuple3
	for i := range q {
		q[i], r[i] = floorDivMod(v.e[i], t[i])
	}
	k := resultKind(v.kind, f, false)

	return wrap3(k, q), wrap3(k, r)
}

// Pow returns v raised component-wise to other as a new vector.
func (v *Vec3) Pow(other Vec3Like) *Vec3 {
	t, f := operand3(other)

	return wrap3(resultKind(v.kind, f, false),
		Tuple3{math.Pow(v.e[0], t[0]), math.Pow(v.e[1], t[1]), math.Pow(v.e[2], t[2])})
}

// PowSelf raises the receiver component-wise to other and returns it.
func (v *Vec3) PowSelf(other Vec3Like) *Vec3 {
	t, _ := operand3(other)
	v.e[0] = math.Pow(v.e[0], t[0])
	v.e[1] = math.Pow(v.e[1], t[1])
	v.e[2] = math.Pow(v.e[2], t[2])

	return v.quantize()
}

// MatMul is the 1-D matrix product of two vectors, which is the dot product.
func (v *Vec3) MatMul(other Vec3Like) float64 { return v.Dot(other) }

// Neg returns −v as a new vector. Unsigned kinds wrap.
func (v *Vec3) Neg() *Vec3 {
	return wrap3(v.kind, Tuple3{-v.e[0], -v.e[1], -v.e[2]})
}

// Abs returns the component-wise absolute value as a new vector.
func (v *Vec3) Abs() *Vec3 {
	return wrap3(v.kind, Tuple3{math.Abs(v.e[0]), math.Abs(v.e[1]), math.Abs(v.e[2])})
}

// dot3 is the shared sum-of-products; Dot and MagnitudeSq both use it so
// v.Dot(v) == v.MagnitudeSq() holds exactly.
func dot3(a, b Tuple3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Dot returns the dot product with other.
func (v *Vec3) Dot(other Vec3Like) float64 {
	t, _ := operand3(other)

	return dot3(v.e, t)
}

// Cross returns the right-handed cross product with other as a new vector:
// (y₁z₂−z₁y₂, z₁x₂−x₁z₂, x₁y₂−y₁x₂).
func (v *Vec3) Cross(other Vec3Like) *Vec3 {
	t, f := operand3(other)

	return wrap3(resultKind(v.kind, f, false), Tuple3{
		v.e[1]*t[2] - v.e[2]*t[1],
		v.e[2]*t[0] - v.e[0]*t[2],
		v.e[0]*t[1] - v.e[1]*t[0],
	})
}

// Magnitude returns the Euclidean length, always computed in floating point.
func (v *Vec3) Magnitude() float64 {
	return math.Sqrt(dot3(v.e, v.e))
}

// MagnitudeSq returns the squared length; prefer it for comparisons.
func (v *Vec3) MagnitudeSq() float64 {
	return dot3(v.e, v.e)
}

// SetMagnitude rescales the vector in place to the given length and returns
// it. Fails with ErrDegenerateVector if the vector has zero magnitude.
func (v *Vec3) SetMagnitude(m float64) (*Vec3, error) {
	cur := v.Magnitude()
	if cur == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], m/cur)

	return v.quantize(), nil
}

// Normalize returns a unit-length vector in the same direction as a new
// vector. Fails with ErrDegenerateVector on a zero-magnitude vector.
func (v *Vec3) Normalize() (*Vec3, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	var out Tuple3
	vecmath.ScaleBlock(out[:], v.e[:], 1/m)

	return wrap3(resultKind(v.kind, true, true), out), nil
}

// NormalizeSelf normalizes the vector in place and returns it, keeping the
// receiver's kind. Fails with ErrDegenerateVector on a zero-magnitude
// vector.
func (v *Vec3) NormalizeSelf() (*Vec3, error) {
	m := v.Magnitude()
	if m == 0 {
		return nil, ErrDegenerateVector
	}
	vecmath.ScaleBlock(v.e[:], v.e[:], 1/m)

	return v.quantize(), nil
}

// AngleBetween returns the unsigned angle to other in [0, π]; see
// Vec2.AngleBetween for the clamping rule.
func (v *Vec3) AngleBetween(other Vec3Like) float64 {
	t, _ := operand3(other)
	cos := dot3(v.e, t) / math.Sqrt(dot3(v.e, v.e)*dot3(t, t))

	return math.Acos(clamp(cos, -1, 1))
}

// Distance returns the Euclidean distance to other.
func (v *Vec3) Distance(other Vec3Like) float64 {
	return math.Sqrt(v.DistanceSq(other))
}

// DistanceSq returns the squared distance to other.
func (v *Vec3) DistanceSq(other Vec3Like) float64 {
	t, _ := operand3(other)
	d := Tuple3{v.e[0] - t[0], v.e[1] - t[1], v.e[2] - t[2]}

	return dot3(d, d)
}

// Lerp linearly interpolates toward other by t as a new vector; t is not
// clamped, and t = 0 and t = 1 reproduce the endpoints exactly.
func (v *Vec3) Lerp(other Vec3Like, t float64) *Vec3 {
	o, _ := operand3(other)

	return wrap3(resultKind(v.kind, true, false), lerp3(v.e, o, t))
}

func lerp3(a, b Tuple3, t float64) Tuple3 {
	s := 1 - t

	return Tuple3{s*a[0] + t*b[0], s*a[1] + t*b[1], s*a[2] + t*b[2]}
}

// SmoothStep interpolates toward other with the smoothstep ease: t is
// clamped to [0, 1] and remapped to t²(3−2t) before the linear blend.
func (v *Vec3) SmoothStep(other Vec3Like, t float64) *Vec3 {
	o, _ := operand3(other)

	return wrap3(resultKind(v.kind, true, false), lerp3(v.e, o, smoothT(t)))
}

// AsType returns a copy of the vector converted to kind k. Fails with
// ErrUnsupportedCast for a kind outside the closed set.
func (v *Vec3) AsType(k scalar.Kind) (*Vec3, error) {
	if !k.Valid() {
		return nil, ErrUnsupportedCast
	}

	return wrap3(k, v.e), nil
}
