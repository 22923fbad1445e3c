package gm

import (
	"fmt"
	"math"
)

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// Vec is a point or a vector in either scale or paint space.
type Vec struct {
	X, Y float64
}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) DivEach(other Vec) Vec {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Min returns the component wise minimum of both vectors.
func (v Vec) Min(other Vec) Vec {
	return Vec{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component wise maximum of both vectors.
func (v Vec) Max(other Vec) Vec {
	return Vec{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

func (v Vec) Abs() Vec {
	return Vec{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
