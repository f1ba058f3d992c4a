package hyperdisk

// DefaultProximityThreshold is the normalized-space radius FindPointNear
// uses unless overridden.
const DefaultProximityThreshold = 0.03

// GraphOption configures a Graph during creation.
//
// Example:
//
//	g := hyperdisk.NewGraph(hyperdisk.WithProximityThreshold(0.05))
type GraphOption func(*graphOptions)

// graphOptions holds optional configuration for Graph creation.
type graphOptions struct {
	proximityThreshold float64
}

// defaultGraphOptions returns the default graph options.
func defaultGraphOptions() graphOptions {
	return graphOptions{
		proximityThreshold: DefaultProximityThreshold,
	}
}

// WithProximityThreshold sets the radius, in normalized units, within which
// FindPointNear considers a point hit. Non-positive values are ignored.
func WithProximityThreshold(t float64) GraphOption {
	return func(o *graphOptions) {
		if t > 0 {
			o.proximityThreshold = t
		}
	}
}
