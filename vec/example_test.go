package vec_test

import (
	"fmt"

	"github.com/cwbudde/algo-geom/scalar"
	"github.com/cwbudde/algo-geom/vec"
)

func ExampleV2() {
	v := vec.V2(3, 4)
	fmt.Println(v.Magnitude())

	// Output:
	// 5
}

func ExampleNew4() {
	// Compose a 4-vector from two 2-vectors.
	q, _ := vec.New4(scalar.Float, vec.V2(1, 2), vec.V2(3, 4))
	fmt.Println(q)

	// Output:
	// Vec4[float](1, 2, 3, 4)
}

func ExampleVec3_Cross() {
	n := vec.V3(1, 0, 0).Cross(vec.V3(0, 1, 0))
	fmt.Println(n)

	// Output:
	// Vec3[float](0, 0, 1)
}

func ExampleVec2_Lerp() {
	a, b := vec.V2(0, 0), vec.V2(10, 20)
	fmt.Println(a.Lerp(b, 0.25))

	// Output:
	// Vec2[float](2.5, 5)
}

func ExampleVec2_AsType() {
	v, _ := vec.V2(2, 0).AsType(scalar.Int32)
	fmt.Println(v.Kind(), v)

	// Output:
	// int32 Vec2[int32](2, 0)
}
