package scalemap

import (
	"fmt"
	"log/slog"
	"math"
)

// ScaleMap maps values of a scale interval to a paint interval.
//
// The zero value is not usable, use New to create a ScaleMap. Copying a
// ScaleMap by value shares the Transform; use Clone to get an independent copy.
// A ScaleMap is not safe for concurrent use while it is being mutated.
type ScaleMap struct {
	s1, s2 float64
	p1, p2 float64

	transform Transform

	// cached conversion factor and transformed s1. slope equals cnv,
	// except for an empty scale interval where every value maps to p1.
	cnv   float64
	slope float64
	ts1   float64
}

// New returns a ScaleMap mapping the scale interval [0, 1] to the paint interval [0, 1].
func New() *ScaleMap {
	return &ScaleMap{
		s2:    1,
		p2:    1,
		cnv:   1,
		slope: 1,
	}
}

// Clone returns a copy of the map. The transform, if any, is copied too.
func (m *ScaleMap) Clone() *ScaleMap {
	clone := *m
	if m.transform != nil {
		clone.transform = m.transform.Copy()
	}

	return &clone
}

// Equal reports whether both maps have the same intervals and conversion factor.
// The transforms are not compared.
func (m *ScaleMap) Equal(other *ScaleMap) bool {
	return m.s1 == other.s1 &&
		m.s2 == other.s2 &&
		m.p1 == other.p1 &&
		m.p2 == other.p2 &&
		m.cnv == other.cnv &&
		m.ts1 == other.ts1
}

func (m *ScaleMap) S1() float64 {
	return m.s1
}

func (m *ScaleMap) S2() float64 {
	return m.s2
}

func (m *ScaleMap) P1() float64 {
	return m.p1
}

func (m *ScaleMap) P2() float64 {
	return m.p2
}

// PDist returns the length of the paint interval.
func (m *ScaleMap) PDist() float64 {
	return math.Abs(m.p2 - m.p1)
}

// SDist returns the length of the scale interval.
func (m *ScaleMap) SDist() float64 {
	return math.Abs(m.s2 - m.s1)
}

// Transform maps a value from scale to paint coordinates.
func (m *ScaleMap) Transform(s float64) float64 {
	if m.transform != nil {
		s = m.transform.Transform(s)
	}

	return m.p1 + (s-m.ts1)*m.slope
}

// InvTransform maps a value from paint to scale coordinates.
func (m *ScaleMap) InvTransform(p float64) float64 {
	s := m.ts1 + (p-m.p1)/m.cnv
	if m.transform != nil {
		s = m.transform.InvTransform(s)
	}

	return s
}

// IsInverting reports whether growing scale values map to shrinking paint values.
func (m *ScaleMap) IsInverting() bool {
	return (m.p1 < m.p2) != (m.s1 < m.s2)
}

// SetTransformation installs a new transform, nil removes the current one.
// The map takes ownership of the transform. The current scale interval is
// applied again so that it is clamped to the domain of the new transform.
func (m *ScaleMap) SetTransformation(transform Transform) {
	m.transform = transform
	m.SetScaleInterval(m.s1, m.s2)
}

// Transformation returns the installed transform or nil.
func (m *ScaleMap) Transformation() Transform {
	return m.transform
}

// SetScaleInterval sets the boundaries of the scale interval. If a transform is
// installed, both bounds are clamped into its domain.
func (m *ScaleMap) SetScaleInterval(s1, s2 float64) {
	m.s1, m.s2 = s1, s2

	if m.transform != nil {
		m.s1 = m.transform.Bounded(s1)
		m.s2 = m.transform.Bounded(s2)

		if m.s1 != s1 || m.s2 != s2 {
			slog.Debug(
				"Scale interval clamped to transform domain",
				slog.Float64("s1", s1),
				slog.Float64("s2", s2),
				slog.Float64("boundedS1", m.s1),
				slog.Float64("boundedS2", m.s2),
			)
		}
	}

	m.updateFactor()
}

// SetPaintInterval sets the boundaries of the paint interval.
func (m *ScaleMap) SetPaintInterval(p1, p2 float64) {
	m.p1, m.p2 = p1, p2
	m.updateFactor()
}

func (m *ScaleMap) updateFactor() {
	ts1, ts2 := m.s1, m.s2
	if m.transform != nil {
		ts1 = m.transform.Transform(ts1)
		ts2 = m.transform.Transform(ts2)
	}

	m.ts1 = ts1

	if ts1 == ts2 {
		slog.Debug("Degenerate scale interval", slog.Float64("s", m.s1))
		m.cnv = 1
		m.slope = 0
		return
	}

	m.cnv = (m.p2 - m.p1) / (ts2 - ts1)
	m.slope = m.cnv
}

func (m *ScaleMap) String() string {
	return fmt.Sprintf("ScaleMap(s=[%v, %v], p=[%v, %v])", m.s1, m.s2, m.p1, m.p2)
}
