package common

import "math"

// Engine-wide geometry limits. These bound compile-time model data and are
// checked when a model definition is loaded.
const (
	// MaxNeighbors is the maximum number of precomputed neighbors per LED point.
	MaxNeighbors = 7

	// NeighborThreshold is the maximum distance (model units) at which two
	// points are considered neighbors. Neighbor tables are truncated here.
	NeighborThreshold float32 = 30.0

	// MaxLedsPerFace bounds the LED count of a single face.
	MaxLedsPerFace = 128

	// AbsoluteMaxLeds is a sanity bound on total LED count for any model.
	AbsoluteMaxLeds = 10000

	// AbsoluteMaxFaces is a sanity bound on face count for any model.
	AbsoluteMaxFaces = 32

	// MaxEdges is the maximum number of edges per face (hexagon).
	MaxEdges = 6
)

// Math constants shared by scenes and the engine core.
const (
	PtPi     float32 = math.Pi
	PtTwoPi  float32 = 2.0 * math.Pi
	PtHalfPi float32 = math.Pi / 2.0
)

// Implied parameter ranges for the semantic parameter types.
const (
	RatioMin       float32 = 0.0
	RatioMax       float32 = 1.0
	SignedRatioMin float32 = -1.0
	SignedRatioMax float32 = 1.0
	AngleMin       float32 = 0.0
	AngleMax       float32 = PtPi
	SignedAngleMin float32 = -PtPi
	SignedAngleMax float32 = PtPi
)
