package vec_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-geom/vec"
)

func TestMakeTuple2(t *testing.T) {
	got, err := vec.MakeTuple2(1, 2)
	if err != nil {
		t.Fatalf("MakeTuple2: %v", err)
	}
	if got != (vec.Tuple2{1, 2}) {
		t.Errorf("MakeTuple2 = %v", got)
	}
	if got.X() != 1 || got.Y() != 2 {
		t.Errorf("accessors: %v", got)
	}
}

func TestMakeTuple3(t *testing.T) {
	got, err := vec.MakeTuple3(vec.Tuple2{1, 2}, 3)
	if err != nil {
		t.Fatalf("MakeTuple3: %v", err)
	}
	if got.X() != 1 || got.Y() != 2 || got.Z() != 3 {
		t.Errorf("MakeTuple3 = %v", got)
	}
}

func TestMakeTuple4(t *testing.T) {
	got, err := vec.MakeTuple4(vec.Tuple3{1, 2, 3}, 4)
	if err != nil {
		t.Fatalf("MakeTuple4: %v", err)
	}
	if got.X() != 1 || got.Y() != 2 || got.Z() != 3 || got.W() != 4 {
		t.Errorf("MakeTuple4 = %v", got)
	}

	if _, err := vec.MakeTuple4(vec.Tuple3{1, 2, 3}); !errors.Is(err, vec.ErrInvalidArity) {
		t.Errorf("MakeTuple4 error = %v", err)
	}
}

// Tuples have value semantics: assignment copies.
func TestTupleImmutability(t *testing.T) {
	a := vec.Tuple2{1, 2}
	b := a
	b[0] = 9
	if a[0] != 1 {
		t.Errorf("tuple aliased: %v", a)
	}
}

// Any value satisfying the read-only capability is accepted wherever a
// like-operand is expected, and capability values can be consumed without
// access to the concrete type.
func TestCapabilityConformance(t *testing.T) {
	var c vec.Vec2c = vec.V2(3, 4)
	if got := c.Magnitude(); got != 5 {
		t.Errorf("capability Magnitude = %v", got)
	}

	// A capability value used as an operand.
	if got := vec.V2(1, 1).Add(c); !got.Equal(vec.V2(4, 5)) {
		t.Errorf("capability operand = %v", got)
	}

	var c3 vec.Vec3c = vec.V3(1, 2, 3)
	if got := vec.V3(0, 0, 0).Add(c3); !got.Equal(vec.V3(1, 2, 3)) {
		t.Errorf("capability operand = %v", got)
	}

	var c4 vec.Vec4c = vec.V4(1, 2, 3, 4)
	if got := c4.MagnitudeSq(); got != 30 {
		t.Errorf("capability MagnitudeSq = %v", got)
	}
}
