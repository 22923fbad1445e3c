package gm

import "math/rand/v2"

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomVecIn returns a vector uniformly sampled from within the given rect.
func RandomVecIn(r Rect) Vec {
	return Vec{
		X: RandomIn(r.Min.X, r.Max.X),
		Y: RandomIn(r.Min.Y, r.Max.Y),
	}
}
