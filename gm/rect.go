package gm

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle spanning from Min to Max.
//
// In the x, y, width, height view, Min is the origin and Max the origin
// plus the size. A normalized rect has Min <= Max on both axes.
type Rect struct {
	Min, Max Vec
}

// RectWithPoints returns the normalized rect spanned by a and b.
func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

// RectOf builds a rect from its left and top edges and its size.
func RectOf(x, y, width, height float64) Rect {
	return RectWithOriginAndSize(Vec{X: x, Y: y}, Vec{X: width, Y: height})
}

func (r Rect) Left() float64 {
	return r.Min.X
}

func (r Rect) Top() float64 {
	return r.Min.Y
}

func (r Rect) Right() float64 {
	return r.Max.X
}

func (r Rect) Bottom() float64 {
	return r.Max.Y
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

// Normalized returns the rect with a non negative width and height.
// The origin is moved accordingly.
func (r Rect) Normalized() Rect {
	return RectWithPoints(r.Min, r.Max)
}

func (r Rect) IsNormalized() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ToImageRectangle rounds the rect outwards to whole pixels.
func (r Rect) ToImageRectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
