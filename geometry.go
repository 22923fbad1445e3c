package scalemap

import "github.com/oliverbestmann/scalemap/gm"

// TransformPoint maps a point from scale to paint coordinates.
func TransformPoint(xMap, yMap *ScaleMap, point gm.Vec) gm.Vec {
	return gm.Vec{
		X: xMap.Transform(point.X),
		Y: yMap.Transform(point.Y),
	}
}

// InvTransformPoint maps a point from paint to scale coordinates.
func InvTransformPoint(xMap, yMap *ScaleMap, point gm.Vec) gm.Vec {
	return gm.Vec{
		X: xMap.InvTransform(point.X),
		Y: yMap.InvTransform(point.Y),
	}
}

// TransformRect maps a rectangle from scale to paint coordinates.
//
// The result is normalized. Edges that are close to zero relative to the size of
// the rect are snapped to exactly zero. The rect covers the pixels from the first
// to the last edge inclusive, so its size is one larger than the distance
// between the edges.
func TransformRect(xMap, yMap *ScaleMap, rect gm.Rect) gm.Rect {
	x1 := xMap.Transform(rect.Left())
	x2 := xMap.Transform(rect.Right())
	y1 := yMap.Transform(rect.Top())
	y2 := yMap.Transform(rect.Bottom())

	if x2 < x1 {
		x1, x2 = x2, x1
	}

	if y2 < y1 {
		y1, y2 = y2, y1
	}

	x1, x2 = snapToZero(x1, x2)
	y1, y2 = snapToZero(y1, y2)

	return gm.RectOf(x1, y1, x2-x1+1, y2-y1+1)
}

// InvTransformRect maps a rectangle from paint to scale coordinates. It reverses
// the pixel convention of TransformRect, but does not snap to zero.
func InvTransformRect(xMap, yMap *ScaleMap, rect gm.Rect) gm.Rect {
	x1 := xMap.InvTransform(rect.Left())
	x2 := xMap.InvTransform(rect.Right() - 1)
	y1 := yMap.InvTransform(rect.Top())
	y2 := yMap.InvTransform(rect.Bottom() - 1)

	return gm.RectOf(x1, y1, x2-x1, y2-y1).Normalized()
}

func snapToZero(v1, v2 float64) (float64, float64) {
	span := v2 - v1

	if gm.FuzzyIsZero(v1, span) {
		v1 = 0
	}

	if gm.FuzzyIsZero(v2, span) {
		v2 = 0
	}

	return v1, v2
}
