package transform

import "github.com/oliverbestmann/scalemap"

// Null does not transform at all.
type Null struct{}

func (Null) Transform(s float64) float64 {
	return s
}

func (Null) InvTransform(t float64) float64 {
	return t
}

func (Null) Bounded(s float64) float64 {
	return s
}

func (n Null) Copy() scalemap.Transform {
	return n
}
