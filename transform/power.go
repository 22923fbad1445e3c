package transform

import (
	"math"

	"github.com/oliverbestmann/scalemap"
)

// Power raises values to the power of Exponent. The sign of the input is kept,
// so the transform is defined for negative values too.
type Power struct {
	Exponent float64
}

func NewPower(exponent float64) *Power {
	return &Power{Exponent: exponent}
}

func (p *Power) Transform(s float64) float64 {
	return signedPow(s, p.Exponent)
}

func (p *Power) InvTransform(t float64) float64 {
	return signedPow(t, 1/p.Exponent)
}

func (p *Power) Bounded(s float64) float64 {
	return s
}

func (p *Power) Copy() scalemap.Transform {
	return &Power{Exponent: p.Exponent}
}

func signedPow(value, exponent float64) float64 {
	if value < 0 {
		return -math.Pow(-value, exponent)
	}

	return math.Pow(value, exponent)
}
