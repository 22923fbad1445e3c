// Package transform provides the non-linear transforms that can be installed
// into a scalemap.ScaleMap.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oliverbestmann/scalemap"
)

var ErrUnknownTransform = errors.New("unknown transform")

var _ scalemap.Transform = Null{}
var _ scalemap.Transform = Log{}
var _ scalemap.Transform = (*Power)(nil)

// Parse returns the transform with the given name. The exponent is only used by
// the power transform. An empty name or "none" returns a nil transform.
func Parse(name string, exponent float64) (scalemap.Transform, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil

	case "null", "identity":
		return Null{}, nil

	case "log":
		return Log{}, nil

	case "pow", "power":
		if exponent == 0 {
			return nil, errors.New("power transform needs a non zero exponent")
		}

		return NewPower(exponent), nil

	default:
		return nil, fmt.Errorf("parse %q: %w", name, ErrUnknownTransform)
	}
}
