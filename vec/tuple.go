package vec

// Tuple2 is an immutable ordered pair of scalars, used as a lightweight
// construction and interchange value. Tuples have no geometry; convert to a
// vector for that.
type Tuple2 [2]float64

// X returns the first component.
func (t Tuple2) X() float64 { return t[0] }

// Y returns the second component.
func (t Tuple2) Y() float64 { return t[1] }

// Tuple3 is an immutable ordered triple of scalars.
type Tuple3 [3]float64

// X returns the first component.
func (t Tuple3) X() float64 { return t[0] }

// Y returns the second component.
func (t Tuple3) Y() float64 { return t[1] }

// Z returns the third component.
func (t Tuple3) Z() float64 { return t[2] }

// Tuple4 is an immutable ordered quadruple of scalars.
type Tuple4 [4]float64

// X returns the first component.
func (t Tuple4) X() float64 { return t[0] }

// Y returns the second component.
func (t Tuple4) Y() float64 { return t[1] }

// Z returns the third component.
func (t Tuple4) Z() float64 { return t[2] }

// W returns the fourth component.
func (t Tuple4) W() float64 { return t[3] }

// MakeTuple2 builds a Tuple2 from any combination of like forms whose
// component counts sum to 2, following the construction rules documented on
// New2.
func MakeTuple2(parts ...Vec2Like) (Tuple2, error) {
	buf, err := makeTuple(2, parts)
	if err != nil {
		return Tuple2{}, err
	}

	return Tuple2{buf[0], buf[1]}, nil
}

// MakeTuple3 builds a Tuple3 from any combination of like forms whose
// component counts sum to 3.
func MakeTuple3(parts ...Vec3Like) (Tuple3, error) {
	buf, err := makeTuple(3, parts)
	if err != nil {
		return Tuple3{}, err
	}

	return Tuple3{buf[0], buf[1], buf[2]}, nil
}

// MakeTuple4 builds a Tuple4 from any combination of like forms whose
// component counts sum to 4.
func MakeTuple4(parts ...Vec4Like) (Tuple4, error) {
	buf, err := makeTuple(4, parts)
	if err != nil {
		return Tuple4{}, err
	}

	return Tuple4{buf[0], buf[1], buf[2], buf[3]}, nil
}

// makeTuple implements the shared constructor coercion: no arguments yield
// zeros, a single scalar (or 1-length sequence) broadcasts, a single n-length
// sequence copies, and several pieces concatenate in argument order when
// their lengths sum to n.
func makeTuple(n int, parts []any) ([4]float64, error) {
	var out [4]float64

	if len(parts) == 0 {
		return out, nil
	}

	buf := make([]float64, 0, 4)

	if len(parts) == 1 {
		buf, _, err := flatten(buf, parts[0])
		if err != nil {
			return out, err
		}

		switch len(buf) {
		case 1:
			for i := 0; i < n; i++ {
				out[i] = buf[0]
			}

			return out, nil
		case n:
			copy(out[:], buf)

			return out, nil
		default:
			return out, ErrInvalidArity
		}
	}

	var err error
	for _, p := range parts {
		buf, _, err = flatten(buf, p)
		if err != nil {
			return out, err
		}
		if len(buf) > n {
			return out, ErrInvalidArity
		}
	}

	if len(buf) != n {
		return out, ErrInvalidArity
	}
	copy(out[:], buf)

	return out, nil
}
