package vec_test

import (
	"errors"
	"math"
	"testing"

	fscalar "gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-geom/scalar"
	"github.com/cwbudde/algo-geom/vec"
)

func TestNew3Forms(t *testing.T) {
	tests := []struct {
		name  string
		parts []vec.Vec3Like
		want  vec.Tuple3
	}{
		{name: "no arguments", parts: nil, want: vec.Tuple3{0, 0, 0}},
		{name: "scalar broadcast", parts: []vec.Vec3Like{2}, want: vec.Tuple3{2, 2, 2}},
		{name: "three scalars", parts: []vec.Vec3Like{1, 2, 3}, want: vec.Tuple3{1, 2, 3}},
		{name: "slice", parts: []vec.Vec3Like{[]float64{1, 2, 3}}, want: vec.Tuple3{1, 2, 3}},
		{name: "vector plus scalar", parts: []vec.Vec3Like{vec.V2(1, 2), 3}, want: vec.Tuple3{1, 2, 3}},
		{name: "scalar plus vector", parts: []vec.Vec3Like{1, vec.V2(2, 3)}, want: vec.Tuple3{1, 2, 3}},
		{name: "tuple plus scalar", parts: []vec.Vec3Like{vec.Tuple2{1, 2}, 3}, want: vec.Tuple3{1, 2, 3}},
		{name: "vector copies", parts: []vec.Vec3Like{vec.V3(4, 5, 6)}, want: vec.Tuple3{4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := vec.New3(scalar.Float, tt.parts...)
			if err != nil {
				t.Fatalf("New3: %v", err)
			}
			if v.Tuple() != tt.want {
				t.Errorf("New3 = %v, want %v", v.Tuple(), tt.want)
			}
		})
	}
}

// A 2-length sequence alone cannot fill a 3-vector.
func TestNew3Arity(t *testing.T) {
	if _, err := vec.New3(scalar.Float, []float64{1, 2}); !errors.Is(err, vec.ErrInvalidArity) {
		t.Errorf("New3 error = %v, want %v", err, vec.ErrInvalidArity)
	}
	if _, err := vec.New3(scalar.Float, vec.V2(1, 2)); !errors.Is(err, vec.ErrInvalidArity) {
		t.Errorf("New3 error = %v, want %v", err, vec.ErrInvalidArity)
	}
	if _, err := vec.New3(scalar.Float, vec.V2(1, 2), vec.V2(3, 4)); !errors.Is(err, vec.ErrInvalidArity) {
		t.Errorf("New3 error = %v, want %v", err, vec.ErrInvalidArity)
	}
}

func TestCross(t *testing.T) {
	// Concrete: x̂ × ŷ == ẑ.
	got := vec.V3(1, 0, 0).Cross(vec.V3(0, 1, 0))
	if !got.Equal(vec.V3(0, 0, 1)) {
		t.Errorf("x × y = %v", got)
	}

	// Anticommutative.
	if got := vec.V3(0, 1, 0).Cross(vec.V3(1, 0, 0)); !got.Equal(vec.V3(0, 0, -1)) {
		t.Errorf("y × x = %v", got)
	}

	// The cross product is orthogonal to both operands.
	a, b := vec.V3(1.5, -2, 0.5), vec.V3(0.25, 3, -1)
	c := a.Cross(b)
	if got := c.Dot(a); !fscalar.EqualWithinAbs(got, 0, tol) {
		t.Errorf("(a×b)·a = %v", got)
	}
	if got := c.Dot(b); !fscalar.EqualWithinAbs(got, 0, tol) {
		t.Errorf("(a×b)·b = %v", got)
	}

	// Parallel operands produce the zero vector.
	if got := a.Cross(a.Mul(2)); !got.Equal(vec.V3(0, 0, 0)) {
		t.Errorf("a × 2a = %v", got)
	}
}

func TestVec3DotMagnitude(t *testing.T) {
	v := vec.V3(1, 2, 2)
	if got := v.Magnitude(); got != 3 {
		t.Errorf("Magnitude = %v", got)
	}
	if v.Dot(v) != v.MagnitudeSq() {
		t.Errorf("Dot(v) = %v, MagnitudeSq = %v", v.Dot(v), v.MagnitudeSq())
	}
	if got := v.Dot(vec.V3(3, 0, -1)); got != 1 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a, b := vec.V3(1, 2, 3), vec.V3(4, 5, 6)

	if got := a.Add(b); !got.Equal(vec.V3(5, 7, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); !got.Equal(vec.V3(3, 3, 3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); !got.Equal(vec.V3(4, 10, 18)) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Add(1); !got.Equal(vec.V3(2, 3, 4)) {
		t.Errorf("broadcast Add = %v", got)
	}

	mustPanicWith(t, vec.ErrShapeMismatch, func() { a.Add([]float64{1, 2}) })

	c := a.Clone()
	c.AddSelf(b).SubSelf(1)
	if !c.Equal(vec.V3(4, 6, 8)) {
		t.Errorf("in-place chain = %v", c)
	}
	if !a.Equal(vec.V3(1, 2, 3)) {
		t.Errorf("clone aliased the source: %v", a)
	}
}

func TestVec3Normalize(t *testing.T) {
	n, err := vec.V3(1, 2, 2).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !fscalar.EqualWithinAbs(n.Magnitude(), 1, tol) {
		t.Errorf("|n| = %v", n.Magnitude())
	}

	if _, err := vec.V3(0, 0, 0).Normalize(); !errors.Is(err, vec.ErrDegenerateVector) {
		t.Errorf("Normalize error = %v", err)
	}
}

func TestVec3AngleBetween(t *testing.T) {
	a := vec.V3(1, 0, 0)

	if got := a.AngleBetween(vec.V3(0, 0, 1)); !fscalar.EqualWithinAbs(got, math.Pi/2, tol) {
		t.Errorf("AngleBetween = %v", got)
	}
	if got := a.AngleBetween(vec.V3(-1, 0, 0)); !fscalar.EqualWithinAbs(got, math.Pi, tol) {
		t.Errorf("AngleBetween opposite = %v", got)
	}
	// Clamping keeps parallel vectors out of NaN territory.
	v := vec.V3(0.1, 0.2, 0.7)
	if got := v.AngleBetween(v.Mul(7)); math.IsNaN(got) {
		t.Error("AngleBetween parallel is NaN")
	}
}

func TestVec3Distance(t *testing.T) {
	a, b := vec.V3(1, 1, 1), vec.V3(2, 3, 3)

	if got := a.DistanceSq(b); got != 9 {
		t.Errorf("DistanceSq = %v", got)
	}
	if got := a.Distance(b); got != 3 {
		t.Errorf("Distance = %v", got)
	}
}

func TestVec3LerpSmoothStep(t *testing.T) {
	v, w := vec.V3(0.1, -0.7, 2.3), vec.V3(1.9, 0.3, -4.4)

	if got := v.Lerp(w, 0); !got.Equal(v) {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := v.Lerp(w, 1); !got.Equal(w) {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := vec.V3(0, 0, 0).SmoothStep(vec.V3(2, 4, 8), 0.5); !got.Equal(vec.V3(1, 2, 4)) {
		t.Errorf("SmoothStep(0.5) = %v", got)
	}
}

func TestVec3AsType(t *testing.T) {
	v := vec.V3(1.9, -2.9, 300)
	w, err := v.AsType(scalar.Int8)
	if err != nil {
		t.Fatalf("AsType: %v", err)
	}
	if w.Kind() != scalar.Int8 || !w.Equal(vec.V3(1, -2, 44)) {
		t.Errorf("AsType = %v", w)
	}
}

func TestVec3Accessors(t *testing.T) {
	v := vec.V3(1, 2, 3)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.Len() != 3 {
		t.Errorf("accessors: %v", v)
	}
	v.SetZ(9)
	if v.At(2) != 9 {
		t.Errorf("SetZ: %v", v)
	}
	if got := v.String(); got != "Vec3[float](1, 2, 9)" {
		t.Errorf("String = %q", got)
	}
}
