// Package cpmap places chipmunk physics geometry into paint space using a
// pair of scale maps, one per axis.
package cpmap

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/scalemap"
	"github.com/oliverbestmann/scalemap/gm"
)

func Vector(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func Vec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}

// Rect converts a bounding box into a rect. The bottom of the box is the
// minimum y value, which becomes the top of the rect.
func Rect(bb cp.BB) gm.Rect {
	return gm.Rect{
		Min: gm.Vec{X: bb.L, Y: bb.B},
		Max: gm.Vec{X: bb.R, Y: bb.T},
	}
}

func BB(r gm.Rect) cp.BB {
	return cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
}

// Transform returns a chipmunk transform mapping scale to paint coordinates,
// e.g. to debug draw a space onto a plot. This only works for maps without
// a non-linear transform.
func Transform(xMap, yMap *scalemap.ScaleMap) (cp.Transform, bool) {
	affine, ok := scalemap.AsAffine(xMap, yMap)
	if !ok {
		return cp.Transform{}, false
	}

	return cp.NewTransform(
		affine.Scale.X, 0, affine.Translation.X,
		0, affine.Scale.Y, affine.Translation.Y,
	), true
}

// TransformVector maps a vector from scale to paint coordinates.
func TransformVector(xMap, yMap *scalemap.ScaleMap, v cp.Vector) cp.Vector {
	return Vector(scalemap.TransformPoint(xMap, yMap, Vec(v)))
}

// InvTransformVector maps a vector from paint to scale coordinates,
// e.g. to query a space at the position of the mouse cursor.
func InvTransformVector(xMap, yMap *scalemap.ScaleMap, v cp.Vector) cp.Vector {
	return Vector(scalemap.InvTransformPoint(xMap, yMap, Vec(v)))
}

// TransformBB maps a bounding box from scale to paint coordinates following
// the pixel conventions of scalemap.TransformRect.
func TransformBB(xMap, yMap *scalemap.ScaleMap, bb cp.BB) cp.BB {
	return BB(scalemap.TransformRect(xMap, yMap, Rect(bb)))
}

// InvTransformBB maps a bounding box from paint to scale coordinates.
func InvTransformBB(xMap, yMap *scalemap.ScaleMap, bb cp.BB) cp.BB {
	return BB(scalemap.InvTransformRect(xMap, yMap, Rect(bb)))
}
