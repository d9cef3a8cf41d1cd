// Package model holds the compile-time geometry of an LED sculpture — point
// positions, face topology, edge connectivity, LED groups, and per-point
// neighbor tables — and the runtime interface scenes use to query it.
//
// Definitions are frozen data, typically emitted by cmd/modelgen from a YAML
// model source. The runtime never mutates them; every component past the
// loader sees them through the Model interface.
package model

import "github.com/go-gl/mathgl/mgl32"

// FaceType identifies the polygon class of a face. The numeric value of the
// polygonal types equals the side count.
type FaceType uint8

const (
	FaceTypeNone     FaceType = 0
	FaceTypeStrip    FaceType = 1
	FaceTypeCircle   FaceType = 2
	FaceTypeTriangle FaceType = 3
	FaceTypeSquare   FaceType = 4
	FaceTypePentagon FaceType = 5
	FaceTypeHexagon  FaceType = 6
)

// Sides returns the polygon side count, or 0 for non-polygonal types.
func (t FaceType) Sides() int {
	if t >= FaceTypeTriangle && t <= FaceTypeHexagon {
		return int(t)
	}
	return 0
}

// String returns the lower-case type name.
func (t FaceType) String() string {
	switch t {
	case FaceTypeStrip:
		return "strip"
	case FaceTypeCircle:
		return "circle"
	case FaceTypeTriangle:
		return "triangle"
	case FaceTypeSquare:
		return "square"
	case FaceTypePentagon:
		return "pentagon"
	case FaceTypeHexagon:
		return "hexagon"
	default:
		return "none"
	}
}

// PointData is one LED's geometric record in the definition.
type PointData struct {
	// ID is the dense 0-based LED index.
	ID uint16

	// FaceID is the logical id of the face this LED belongs to.
	FaceID uint8

	// X, Y, Z is the LED position in model units.
	X, Y, Z float32
}

// Neighbor is one entry in a point's precomputed neighbor table.
type Neighbor struct {
	// PointID is the neighboring LED's index.
	PointID uint16

	// Distance is the Euclidean distance to the neighbor in model units.
	Distance float32
}

// NeighborData is the precomputed neighbor table for one point: up to
// MaxNeighbors entries sorted ascending by distance and truncated at
// NeighborThreshold.
type NeighborData struct {
	PointID   uint16
	Neighbors []Neighbor
}

// FaceTypeData describes a class of face shared by one or more instances.
type FaceTypeData struct {
	// ID indexes this type from FaceData.TypeID.
	ID uint8

	// Type is the polygon class.
	Type FaceType

	// NumLeds is how many LEDs every face of this type carries.
	NumLeds uint16

	// EdgeLengthMM is the physical edge length.
	EdgeLengthMM float32
}

// FaceData is one face instance.
type FaceData struct {
	// ID is the logical face id, matching the physical wiring order that
	// determines each face's offset into the LED buffer.
	ID uint8

	// GeometricID is the face's position in the geometric layout — the id
	// the scene-facing API addresses. Logical and geometric ids may differ
	// when the model remaps face order while preserving wiring.
	GeometricID uint8

	// TypeID indexes into the definition's FaceTypes.
	TypeID uint8

	// Rotation is the face's rotation index within its plane.
	Rotation uint8

	// Vertices are the face's corner positions, 3 to 8 entries in winding
	// order.
	Vertices []mgl32.Vec3
}

// EdgeData is one face edge and its adjacency.
type EdgeData struct {
	// FaceID is the logical id of the owning face.
	FaceID uint8

	// EdgeIndex is the edge's position within the face, 0-based.
	EdgeIndex uint8

	// StartVertex and EndVertex are the edge endpoints.
	StartVertex, EndVertex mgl32.Vec3

	// ConnectedFaceID is the logical id of the adjacent face, or -1 for an
	// open boundary.
	ConnectedFaceID int8
}

// LedGroupData names a subset of LEDs within a face type, by face-local LED
// index. Two groups sharing a name on the same face type are identical.
type LedGroupData struct {
	Name       string
	FaceTypeID uint8
	LedIndices []uint16
}

// HardwareData carries the physical LED metadata the output driver and
// power budgeting care about.
type HardwareData struct {
	LedType            string
	ColorOrder         string
	LedDiameterMM      float32
	LedSpacingMM       float32
	MaxCurrentPerLedMA uint16
	AvgCurrentPerLedMA uint16
}

// Definition is the frozen description of one sculpture. Instances are
// package-level data built at generation time; the runtime only reads them.
type Definition struct {
	// Name identifies the model (e.g. "DodecaRGB").
	Name string

	// LedCount is the total LED count; must not exceed AbsoluteMaxLeds.
	LedCount int

	// FaceCount is the face count; must not exceed AbsoluteMaxFaces.
	FaceCount int

	// SphereRadius is the precomputed bounding-sphere radius, or 0 if the
	// generator did not supply one (the runtime then derives it once).
	SphereRadius float32

	Points    []PointData
	FaceTypes []FaceTypeData
	Faces     []FaceData
	Edges     []EdgeData
	LedGroups []LedGroupData
	Neighbors []NeighborData
	Hardware  HardwareData
}
