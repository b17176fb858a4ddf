// Package vec provides fixed-dimension 2-, 3-, and 4-component vectors for
// real-time geometry work: positions, directions, colors, and transform
// inputs.
//
// Every vector carries a scalar kind (see package scalar) fixed at
// construction; components are held canonically as float64 and quantized
// through the kind on every write. Value operators (Add, Mul, Normalize, ...)
// return a new vector; their *Self counterparts mutate the receiver and
// return it for chaining, and never widen the receiver's kind — results are
// cast back down under the package's deterministic cast rules.
//
// Wherever an operand is expected, any "like" form is accepted: a concrete
// vector, a read-only capability value (Vec2c/Vec3c/Vec4c), a tuple, a fixed
// array, a numeric slice, or a bare scalar (broadcast to all components).
// Operators panic with ErrShapeMismatch when an operand's length is neither
// 1 nor the vector dimension; constructors report coercion failures as
// errors instead.
//
// # Usage
//
// Construct directly, or from any like form with an explicit kind:
//
//	v := vec.V2(3, 4)
//	v.Magnitude() // 5
//
//	w, _ := vec.New3(scalar.Int32, []float64{1, 2, 3})
//	w.Kind() // scalar.Int32
//
// Compose larger vectors from smaller pieces:
//
//	q, _ := vec.New4(scalar.Float, vec.V2(1, 2), vec.V2(3, 4))
//	q.Tuple() // (1, 2, 3, 4)
//
// Equality is exact under the receiver's kind; float vectors are not
// fuzzy-compared. Normalizing a zero-magnitude vector fails with
// ErrDegenerateVector rather than propagating NaN.
package vec
