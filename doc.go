// Package scalemap maps coordinates between a scale space, holding the data
// values of a plot axis, and a paint space, holding device positions along
// that axis.
//
// A ScaleMap is configured with a scale interval, a paint interval and an
// optional non-linear Transform. Every mutation recomputes a cached conversion
// factor, so the scalar transforms are a single multiply and add:
//
//	var xMap = scalemap.New()
//	xMap.SetScaleInterval(0, 100)
//	xMap.SetPaintInterval(0, 10)
//	xMap.Transform(50) // 5
//
// Points and rectangles are mapped with a pair of maps, one per axis, using
// TransformPoint and TransformRect.
package scalemap
