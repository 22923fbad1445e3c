package gm

// Affine represents an axis-aligned affine transformation. Each axis is scaled
// independently before the Translation is added. This is the shape of the
// mapping between scale and paint space when no non-linear transform is involved.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Scale       Vec
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{Scale: VecOne}
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(Affine{Scale: VecOne, Translation: translate})
}

func (a Affine) Scaled(scale Vec) Affine {
	return a.Mul(Affine{Scale: scale})
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return point.MulEach(a.Scale).Add(a.Translation)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
func (a Affine) TransformVec(vec Vec) Vec {
	return vec.MulEach(a.Scale)
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Scale:       a.Scale.MulEach(other.Scale),
		Translation: a.Transform(other.Translation),
	}
}

// Inverse returns the inverse of the Affine transformation.
// This method will panic if an inverse can not be calculated.
func (a Affine) Inverse() Affine {
	inverse, ok := a.TryInverse()
	if !ok {
		panic("affine transform with zero scale is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	if a.Scale.X == 0 || a.Scale.Y == 0 {
		return Affine{}, false
	}

	scale := VecOne.DivEach(a.Scale)
	inverse = Affine{
		Scale:       scale,
		Translation: a.Translation.MulEach(scale).Mul(-1),
	}

	return inverse, true
}
