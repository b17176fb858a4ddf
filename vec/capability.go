package vec

import "github.com/cwbudde/algo-geom/scalar"

// Vec2c is the read-only contract every 2-component vector-like value
// satisfies: accessors, equality, value operators producing new vectors,
// geometric queries, and kind conversion. *Vec2 is the one concrete
// implementation; mutation lives on it alone.
type Vec2c interface {
	Kind() scalar.Kind
	Len() int
	X() float64
	Y() float64
	At(i int) float64
	Tuple() Tuple2

	Equal(other Vec2Like) bool
	Add(other Vec2Like) *Vec2
	Sub(other Vec2Like) *Vec2
	Mul(other Vec2Like) *Vec2
	Div(other Vec2Like) *Vec2
	FloorDiv(other Vec2Like) *Vec2
	Mod(other Vec2Like) *Vec2
	DivMod(other Vec2Like) (*Vec2, *Vec2)
	Pow(other Vec2Like) *Vec2
	MatMul(other Vec2Like) float64
	Neg() *Vec2
	Abs() *Vec2
	Clone() *Vec2

	Magnitude() float64
	MagnitudeSq() float64
	Normalize() (*Vec2, error)
	Perpendicular() *Vec2
	Dot(other Vec2Like) float64
	Angle() float64
	AngleBetween(other Vec2Like) float64
	SignedAngle(other Vec2Like) float64
	Distance(other Vec2Like) float64
	DistanceSq(other Vec2Like) float64
	Lerp(other Vec2Like, t float64) *Vec2
	SmoothStep(other Vec2Like, t float64) *Vec2

	AsType(k scalar.Kind) (*Vec2, error)
}

// Vec3c is the read-only contract for 3-component vectors.
type Vec3c interface {
	Kind() scalar.Kind
	Len() int
	X() float64
	Y() float64
	Z() float64
	At(i int) float64
	Tuple() Tuple3

	Equal(other Vec3Like) bool
	Add(other Vec3Like) *Vec3
	Sub(other Vec3Like) *Vec3
	Mul(other Vec3Like) *Vec3
	Div(other Vec3Like) *Vec3
	FloorDiv(other Vec3Like) *Vec3
	Mod(other Vec3Like) *Vec3
	DivMod(other Vec3Like) (*Vec3, *Vec3)
	Pow(other Vec3Like) *Vec3
	MatMul(other Vec3Like) float64
	Neg() *Vec3
	Abs() *Vec3
	Clone() *Vec3

	Magnitude() float64
	MagnitudeSq() float64
	Normalize() (*Vec3, error)
	Dot(other Vec3Like) float64
	Cross(other Vec3Like) *Vec3
	AngleBetween(other Vec3Like) float64
	Distance(other Vec3Like) float64
	DistanceSq(other Vec3Like) float64
	Lerp(other Vec3Like, t float64) *Vec3
	SmoothStep(other Vec3Like, t float64) *Vec3

	AsType(k scalar.Kind) (*Vec3, error)
}

// Vec4c is the read-only contract for 4-component vectors.
type Vec4c interface {
	Kind() scalar.Kind
	Len() int
	X() float64
	Y() float64
	Z() float64
	W() float64
	At(i int) float64
	Tuple() Tuple4

	Equal(other Vec4Like) bool
	Add(other Vec4Like) *Vec4
	Sub(other Vec4Like) *Vec4
	Mul(other Vec4Like) *Vec4
	Div(other Vec4Like) *Vec4
	FloorDiv(other Vec4Like) *Vec4
	Mod(other Vec4Like) *Vec4
	DivMod(other Vec4Like) (*Vec4, *Vec4)
	Pow(other Vec4Like) *Vec4
	MatMul(other Vec4Like) float64
	Neg() *Vec4
	Abs() *Vec4
	Clone() *Vec4

	Magnitude() float64
	MagnitudeSq() float64
	Normalize() (*Vec4, error)
	Dot(other Vec4Like) float64
	Cross(other Vec4Like) *Vec4
	AngleBetween(other Vec4Like) float64
	Distance(other Vec4Like) float64
	DistanceSq(other Vec4Like) float64
	Lerp(other Vec4Like, t float64) *Vec4
	SmoothStep(other Vec4Like, t float64) *Vec4

	AsType(k scalar.Kind) (*Vec4, error)
}

var (
	_ Vec2c = (*Vec2)(nil)
	_ Vec3c = (*Vec3)(nil)
	_ Vec4c = (*Vec4)(nil)
)
