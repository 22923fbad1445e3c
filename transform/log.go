package transform

import (
	"math"

	"github.com/oliverbestmann/scalemap"
)

const (
	// LogMin is the smallest value accepted by the Log transform.
	LogMin = 1.0e-150

	// LogMax is the largest value accepted by the Log transform.
	LogMax = 1.0e150
)

// Log is a logarithmic transform. Values are clamped into [LogMin, LogMax].
type Log struct{}

func (Log) Transform(s float64) float64 {
	return math.Log(s)
}

func (Log) InvTransform(t float64) float64 {
	return math.Exp(t)
}

func (Log) Bounded(s float64) float64 {
	return max(LogMin, min(s, LogMax))
}

func (l Log) Copy() scalemap.Transform {
	return l
}
