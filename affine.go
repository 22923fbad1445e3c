package scalemap

import "github.com/oliverbestmann/scalemap/gm"

// AsAffine returns the affine transformation equivalent to mapping points with
// the given pair of maps. This is only possible if neither map has a transform
// installed.
func AsAffine(xMap, yMap *ScaleMap) (gm.Affine, bool) {
	if xMap.transform != nil || yMap.transform != nil {
		return gm.Affine{}, false
	}

	return gm.Affine{
		Scale: gm.Vec{X: xMap.slope, Y: yMap.slope},
		Translation: gm.Vec{
			X: xMap.p1 - xMap.ts1*xMap.slope,
			Y: yMap.p1 - yMap.ts1*yMap.slope,
		},
	}, true
}
