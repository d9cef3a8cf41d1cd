package model

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxValidationErrors caps the detailed messages a report carries; overflow
// is counted separately.
const maxValidationErrors = 10

// planarEpsilon is the tolerated out-of-plane distance for face vertices and
// LED positions, in model units.
const planarEpsilon = 1.0

// coordinateLimit bounds plausible model coordinates, in model units.
const coordinateLimit = 10000.0

// GeometricValidation summarizes the geometric checks.
type GeometricValidation struct {
	AllFacesPlanar           bool
	AllLedsWithinFaces       bool
	EdgeConnectivityComplete bool
	VertexCoordinatesSane    bool
	LedCoordinatesSane       bool

	NonPlanarFaces     int
	MisplacedLeds      int
	OrphanedEdges      int
	InvalidCoordinates int
}

// DataIntegrityValidation summarizes the data integrity checks.
type DataIntegrityValidation struct {
	FaceIDsUnique        bool
	LedIndicesSequential bool
	EdgeDataComplete     bool
	IndicesInBounds      bool

	DuplicateFaceIDs   int
	MissingLedIndices  int
	OutOfBoundsIndices int
}

// Validation is the structured report Validate returns. Callers decide what
// to do with failures; validation never mutates state.
type Validation struct {
	IsValid      bool
	TotalChecks  int
	FailedChecks int

	Geometric     GeometricValidation
	DataIntegrity DataIntegrityValidation

	// Errors holds up to maxValidationErrors detailed messages.
	Errors []string

	// ErrorOverflow counts errors dropped past the cap.
	ErrorOverflow int
}

func (v *Validation) addError(format string, args ...any) {
	if len(v.Errors) < maxValidationErrors {
		v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
	} else {
		v.ErrorOverflow++
	}
}

func (v *Validation) check(ok bool) {
	v.TotalChecks++
	if !ok {
		v.FailedChecks++
	}
}

func (m *runtimeModel) Validate(checkGeometric, checkIntegrity bool) Validation {
	v := Validation{}
	v.Geometric = GeometricValidation{
		AllFacesPlanar:           true,
		AllLedsWithinFaces:       true,
		EdgeConnectivityComplete: true,
		VertexCoordinatesSane:    true,
		LedCoordinatesSane:       true,
	}
	v.DataIntegrity = DataIntegrityValidation{
		FaceIDsUnique:        true,
		LedIndicesSequential: true,
		EdgeDataComplete:     true,
		IndicesInBounds:      true,
	}

	if checkGeometric {
		m.validateGeometry(&v)
	}
	if checkIntegrity {
		m.validateIntegrity(&v)
	}

	v.IsValid = v.FailedChecks == 0
	return v
}

func (m *runtimeModel) validateGeometry(v *Validation) {
	for i := range m.faces {
		f := &m.faces[i]

		for _, vert := range f.vertices {
			if !saneCoord(vert) {
				v.Geometric.VertexCoordinatesSane = false
				v.Geometric.InvalidCoordinates++
				v.addError("face %d has invalid vertex coordinates", f.id)
			}
		}

		if len(f.vertices) >= 4 {
			if !coplanar(f.vertices) {
				v.Geometric.AllFacesPlanar = false
				v.Geometric.NonPlanarFaces++
				v.addError("face %d vertices are not coplanar", f.id)
			}
		}
	}
	v.check(v.Geometric.AllFacesPlanar)
	v.check(v.Geometric.VertexCoordinatesSane)

	for i := range m.points {
		p := &m.points[i]
		if !saneCoord(p.position) {
			v.Geometric.LedCoordinatesSane = false
			v.Geometric.InvalidCoordinates++
			v.addError("point %d has invalid coordinates", p.id)
			continue
		}
		idx := -1
		if int(p.faceID) < len(m.logicalToIndex) {
			idx = m.logicalToIndex[p.faceID]
		}
		if idx < 0 {
			continue
		}
		f := &m.faces[idx]
		if len(f.vertices) >= 3 && !pointNearPolygon(p.position, f.vertices) {
			v.Geometric.AllLedsWithinFaces = false
			v.Geometric.MisplacedLeds++
			v.addError("point %d lies outside face %d", p.id, f.id)
		}
	}
	v.check(v.Geometric.LedCoordinatesSane)
	v.check(v.Geometric.AllLedsWithinFaces)

	// Every connected edge must have a reciprocal edge on the neighbor.
	for _, e := range m.def.Edges {
		if e.ConnectedFaceID < 0 {
			continue
		}
		if !m.hasReciprocalEdge(e) {
			v.Geometric.EdgeConnectivityComplete = false
			v.Geometric.OrphanedEdges++
			v.addError("face %d edge %d connects to face %d without a reciprocal edge",
				e.FaceID, e.EdgeIndex, e.ConnectedFaceID)
		}
	}
	v.check(v.Geometric.EdgeConnectivityComplete)
}

func (m *runtimeModel) hasReciprocalEdge(e EdgeData) bool {
	for _, other := range m.def.Edges {
		if other.FaceID != uint8(e.ConnectedFaceID) {
			continue
		}
		if int(other.ConnectedFaceID) != int(e.FaceID) {
			continue
		}
		// Vertex pairs must match; order may reverse across the shared edge.
		if (nearEqual(other.StartVertex, e.StartVertex) && nearEqual(other.EndVertex, e.EndVertex)) ||
			(nearEqual(other.StartVertex, e.EndVertex) && nearEqual(other.EndVertex, e.StartVertex)) {
			return true
		}
	}
	return false
}

func (m *runtimeModel) validateIntegrity(v *Validation) {
	seen := make(map[uint8]bool, len(m.def.Faces))
	for _, fd := range m.def.Faces {
		if seen[fd.ID] {
			v.DataIntegrity.FaceIDsUnique = false
			v.DataIntegrity.DuplicateFaceIDs++
			v.addError("duplicate face id %d", fd.ID)
		}
		seen[fd.ID] = true

		if int(fd.TypeID) >= len(m.def.FaceTypes) {
			v.DataIntegrity.IndicesInBounds = false
			v.DataIntegrity.OutOfBoundsIndices++
			v.addError("face %d references unknown face type %d", fd.ID, fd.TypeID)
		}
	}
	v.check(v.DataIntegrity.FaceIDsUnique)

	// LED indices must cover [0, LedCount) with no gaps.
	covered := make([]bool, m.def.LedCount)
	for _, pd := range m.def.Points {
		if int(pd.ID) >= m.def.LedCount {
			v.DataIntegrity.IndicesInBounds = false
			v.DataIntegrity.OutOfBoundsIndices++
			v.addError("point id %d outside led count %d", pd.ID, m.def.LedCount)
			continue
		}
		covered[pd.ID] = true
	}
	for id, ok := range covered {
		if !ok {
			v.DataIntegrity.LedIndicesSequential = false
			v.DataIntegrity.MissingLedIndices++
			v.addError("led index %d has no point data", id)
		}
	}
	v.check(v.DataIntegrity.LedIndicesSequential)

	for _, e := range m.def.Edges {
		if int(e.FaceID) >= m.def.FaceCount {
			v.DataIntegrity.EdgeDataComplete = false
			v.DataIntegrity.OutOfBoundsIndices++
			v.addError("edge references unknown face %d", e.FaceID)
		}
		if e.ConnectedFaceID >= 0 && int(e.ConnectedFaceID) >= m.def.FaceCount {
			v.DataIntegrity.EdgeDataComplete = false
			v.DataIntegrity.OutOfBoundsIndices++
			v.addError("edge on face %d connects to unknown face %d", e.FaceID, e.ConnectedFaceID)
		}
	}
	v.check(v.DataIntegrity.EdgeDataComplete)

	for _, nd := range m.def.Neighbors {
		if int(nd.PointID) >= m.def.LedCount {
			v.DataIntegrity.IndicesInBounds = false
			v.DataIntegrity.OutOfBoundsIndices++
			v.addError("neighbor table references unknown point %d", nd.PointID)
			continue
		}
		for _, n := range nd.Neighbors {
			if int(n.PointID) >= m.def.LedCount {
				v.DataIntegrity.IndicesInBounds = false
				v.DataIntegrity.OutOfBoundsIndices++
				v.addError("point %d neighbor references unknown point %d", nd.PointID, n.PointID)
			}
		}
	}
	v.check(v.DataIntegrity.IndicesInBounds)
}

func saneCoord(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		f := float64(p[i])
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > coordinateLimit {
			return false
		}
	}
	return true
}

func nearEqual(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 0.01
}

// coplanar reports whether all vertices lie within planarEpsilon of the
// plane through the first three.
func coplanar(verts []mgl32.Vec3) bool {
	a := verts[1].Sub(verts[0])
	b := verts[2].Sub(verts[0])
	n := a.Cross(b)
	if n.Len() == 0 {
		return false
	}
	n = n.Normalize()
	for _, v := range verts[3:] {
		d := v.Sub(verts[0]).Dot(n)
		if float32(math.Abs(float64(d))) > planarEpsilon {
			return false
		}
	}
	return true
}

// pointNearPolygon projects p onto the polygon's plane and tests containment
// with a small margin, also requiring p to sit close to the plane itself.
func pointNearPolygon(p mgl32.Vec3, verts []mgl32.Vec3) bool {
	a := verts[1].Sub(verts[0])
	b := verts[2].Sub(verts[0])
	n := a.Cross(b)
	if n.Len() == 0 {
		return false
	}
	n = n.Normalize()

	dist := p.Sub(verts[0]).Dot(n)
	if float32(math.Abs(float64(dist))) > planarEpsilon*5 {
		return false
	}
	proj := p.Sub(n.Mul(dist))

	// Winding test: the projected point must be on the same side of every
	// polygon edge. Cross products within ±1.0 count as on the edge, which
	// forgives edge-hugging LEDs.
	sign := float32(0)
	for i := range verts {
		v0 := verts[i]
		v1 := verts[(i+1)%len(verts)]
		edge := v1.Sub(v0)
		toPoint := proj.Sub(v0)
		cross := edge.Cross(toPoint).Dot(n)
		if cross > 1.0 {
			if sign < 0 {
				return false
			}
			sign = 1
		} else if cross < -1.0 {
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
