package vec

import "github.com/cwbudde/algo-geom/scalar"

// Vec2Like is the set of values accepted wherever a 2-component operand is
// expected: *Vec2 or any Vec2c, Tuple2, [2]float64, a numeric slice
// ([]float64, []float32, []int, or []any of scalars), or a bare numeric
// scalar, which broadcasts to all components.
//
// Whether an operand counts as float-valued for result-kind promotion is
// decided by its Go type, not its values: Tuple2, [2]float64, []float64, and
// []float32 are float operands even when they hold whole numbers, []int and
// the integer scalar types are integer operands, and a vector operand follows
// its Kind. So intVec.Add(Tuple2{1, 2}) promotes to the float kind while
// intVec.Add([]int{1, 2}) keeps the receiver's kind.
type Vec2Like = any

// Vec3Like is the 3-component analogue of Vec2Like, additionally accepting
// Tuple3, [3]float64, and Vec3c values.
type Vec3Like = any

// Vec4Like is the 4-component analogue of Vec2Like, additionally accepting
// Tuple4, [4]float64, and Vec4c values.
type Vec4Like = any

// flatten appends the scalar components of one like-form part to dst and
// reports whether the part counts as float-valued for result-kind promotion.
// The report is keyed to the part's Go type as documented on Vec2Like, never
// to the values it holds. Unrecognized values fail with
// ErrInvalidElementType.
func flatten(dst []float64, part any) ([]float64, bool, error) {
	switch p := part.(type) {
	case float64:
		return append(dst, p), true, nil
	case float32:
		return append(dst, float64(p)), true, nil
	case int:
		return append(dst, float64(p)), false, nil
	case int8:
		return append(dst, float64(p)), false, nil
	case int16:
		return append(dst, float64(p)), false, nil
	case int32:
		return append(dst, float64(p)), false, nil
	case int64:
		return append(dst, float64(p)), false, nil
	case uint:
		return append(dst, float64(p)), false, nil
	case uint8:
		return append(dst, float64(p)), false, nil
	case uint16:
		return append(dst, float64(p)), false, nil
	case uint32:
		return append(dst, float64(p)), false, nil
	case uint64:
		return append(dst, float64(p)), false, nil
	case Tuple2:
		return append(dst, p[0], p[1]), true, nil
	case Tuple3:
		return append(dst, p[0], p[1], p[2]), true, nil
	case Tuple4:
		return append(dst, p[0], p[1], p[2], p[3]), true, nil
	case [2]float64:
		return append(dst, p[0], p[1]), true, nil
	case [3]float64:
		return append(dst, p[0], p[1], p[2]), true, nil
	case [4]float64:
		return append(dst, p[0], p[1], p[2], p[3]), true, nil
	case []float64:
		return append(dst, p...), true, nil
	case []float32:
		for _, e := range p {
			dst = append(dst, float64(e))
		}

		return dst, true, nil
	case []int:
		for _, e := range p {
			dst = append(dst, float64(e))
		}

		return dst, false, nil
	case []any:
		isFloat := false
		for _, e := range p {
			var (
				f   bool
				err error
			)
			n := len(dst)
			dst, f, err = flatten(dst, e)
			if err != nil {
				return dst, false, err
			}
			// Elements of a generic sequence must be bare scalars.
			if len(dst) != n+1 {
				return dst, false, ErrInvalidElementType
			}
			isFloat = isFloat || f
		}

		return dst, isFloat, nil
	case Vec2c:
		t := p.Tuple()

		return append(dst, t[0], t[1]), p.Kind().IsFloat(), nil
	case Vec3c:
		t := p.Tuple()

		return append(dst, t[0], t[1], t[2]), p.Kind().IsFloat(), nil
	case Vec4c:
		t := p.Tuple()

		return append(dst, t[0], t[1], t[2], t[3]), p.Kind().IsFloat(), nil
	default:
		return dst, false, ErrInvalidElementType
	}
}

// operand coerces a binary operand: one component broadcasts, n components
// apply component-wise, anything else is a shape mismatch.
func operand(n int, like any) ([4]float64, bool, error) {
	var out [4]float64

	buf, isFloat, err := flatten(make([]float64, 0, 4), like)
	if err != nil {
		return out, false, err
	}

	switch len(buf) {
	case 1:
		for i := 0; i < n; i++ {
			out[i] = buf[0]
		}
	case n:
		copy(out[:], buf)
	default:
		return out, false, ErrShapeMismatch
	}

	return out, isFloat, nil
}

// operand2 is the panicking operand coercion used by Vec2 operators.
func operand2(like Vec2Like) (Tuple2, bool) {
	buf, isFloat, err := operand(2, like)
	if err != nil {
		panic(err)
	}

	return Tuple2{buf[0], buf[1]}, isFloat
}

// operand3 is the panicking operand coercion used by Vec3 operators.
func operand3(like Vec3Like) (Tuple3, bool) {
	buf, isFloat, err := operand(3, like)
	if err != nil {
		panic(err)
	}

	return Tuple3{buf[0], buf[1], buf[2]}, isFloat
}

// operand4 is the panicking operand coercion used by Vec4 operators.
func operand4(like Vec4Like) (Tuple4, bool) {
	buf, isFloat, err := operand(4, like)
	if err != nil {
		panic(err)
	}

	return Tuple4{buf[0], buf[1], buf[2], buf[3]}, isFloat
}

// resultKind picks the scalar kind of a value operator's result: float
// receivers keep their kind, integer receivers promote to the native float
// kind for true division or when the operand is float-valued.
func resultKind(recv scalar.Kind, operandFloat, div bool) scalar.Kind {
	if recv.IsFloat() {
		return recv
	}
	if div || operandFloat {
		return scalar.Float
	}

	return recv
}
