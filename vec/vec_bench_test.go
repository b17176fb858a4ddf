package vec_test

import (
	"testing"

	"github.com/cwbudde/algo-geom/scalar"
	"github.com/cwbudde/algo-geom/vec"
)

func BenchmarkVec3Add(b *testing.B) {
	u, v := vec.V3(1, 2, 3), vec.V3(4, 5, 6)
	var sink *vec.Vec3
	for i := 0; i < b.N; i++ {
		sink = u.Add(v)
	}
	_ = sink
}

func BenchmarkVec3AddSelf(b *testing.B) {
	u, v := vec.V3(1, 2, 3), vec.V3(4, 5, 6)
	for i := 0; i < b.N; i++ {
		u.AddSelf(v)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	u, v := vec.V3(1, 2, 3), vec.V3(4, 5, 6)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = u.Dot(v)
	}
	_ = sink
}

func BenchmarkVec3Cross(b *testing.B) {
	u, v := vec.V3(1, 2, 3), vec.V3(4, 5, 6)
	var sink *vec.Vec3
	for i := 0; i < b.N; i++ {
		sink = u.Cross(v)
	}
	_ = sink
}

func BenchmarkVec2Normalize(b *testing.B) {
	v := vec.V2(3, 4)
	var sink *vec.Vec2
	for i := 0; i < b.N; i++ {
		sink, _ = v.Normalize()
	}
	_ = sink
}

func BenchmarkVec4Lerp(b *testing.B) {
	u, v := vec.V4(0, 0, 0, 0), vec.V4(1, 2, 3, 4)
	var sink *vec.Vec4
	for i := 0; i < b.N; i++ {
		sink = u.Lerp(v, 0.5)
	}
	_ = sink
}

func BenchmarkNew4Compose(b *testing.B) {
	p, q := vec.V2(1, 2), vec.V2(3, 4)
	var sink *vec.Vec4
	for i := 0; i < b.N; i++ {
		sink, _ = vec.New4(scalar.Float, p, q)
	}
	_ = sink
}
