package scalemap

// Transform is a non-linear, invertible mapping applied within scale space
// before the linear mapping to paint space. Implementations live in the
// transform package.
type Transform interface {
	// Transform maps a scale value into the transformed scale space.
	Transform(s float64) float64

	// InvTransform reverses Transform. InvTransform(Transform(s)) must equal s
	// within floating point tolerance for every s in the valid domain.
	InvTransform(t float64) float64

	// Bounded clamps s into the valid domain of the transform.
	Bounded(s float64) float64

	// Copy returns an independent copy of the transform.
	Copy() Transform
}
