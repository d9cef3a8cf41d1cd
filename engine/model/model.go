package model

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/go-gl/mathgl/mgl32"
)

// Model is the runtime interface over a Definition. All indexed accessors
// clamp out-of-range indices to the last valid element, or to the first for
// negative indices (or a static dummy
// when empty) instead of panicking; the first out-of-range access per
// accessor is logged.
//
// Face-centric accessors address faces by geometric position — the id a
// scene sees in the layout — and translate to the logical (wiring-order)
// face internally. Connected-face results are translated back to geometric
// positions.
type Model interface {
	// Point returns the point at index, clamped to the last point.
	Point(index int) *Point

	// PointCount returns the total LED point count.
	PointCount() int

	// Face returns the face at a geometric position, clamped.
	Face(geometricPosition int) *Face

	// FaceCount returns the face count.
	FaceCount() int

	// SphereRadius returns the model's bounding-sphere radius. If the
	// definition did not precompute one it is derived once as the largest
	// point distance from the origin.
	SphereRadius() float32

	// FaceEdgeCount returns the number of edges the EDGES table records for
	// the face at a geometric position.
	FaceEdgeCount(geometricPosition int) int

	// FaceAtEdge returns the geometric position of the face connected at
	// the given edge, or -1 for an open boundary or unknown edge.
	FaceAtEdge(geometricPosition, edgeIndex int) int

	// FaceGroup returns the named LED group view for the face at a
	// geometric position. Unknown names yield an empty group.
	FaceGroup(geometricPosition int, name string) *Group

	// FaceGroupNames returns the group names available on the face at a
	// geometric position.
	FaceGroupNames(geometricPosition int) []string

	// EdgeCount returns the total number of edges in the model.
	EdgeCount() int

	// Edge returns the edge at index with its connected face translated to
	// a geometric position. Out-of-range indices yield a boundary edge.
	Edge(index int) Edge

	// Validate runs the requested validation groups and returns a
	// structured report. Never called on the frame path.
	Validate(checkGeometric, checkIntegrity bool) Validation

	// Definition returns the frozen definition backing this model.
	Definition() *Definition
}

// runtimeModel is the concrete Model over one Definition and one LED buffer.
type runtimeModel struct {
	def *Definition

	// leds aliases the platform's buffer; faces slice into it.
	leds []color.CRGB

	points []Point

	// faces is indexed by position in def.Faces (logical array order).
	faces []Face

	// geomToIndex maps geometric position -> index into faces.
	geomToIndex []int

	// logicalToIndex maps logical face id -> index into faces.
	logicalToIndex []int

	sphereRadius float32

	pointWarned bool
	faceWarned  bool
}

var (
	dummyPoint Point
	dummyFace  Face
)

// New builds the runtime model for a definition over the platform's LED
// buffer. The buffer must hold exactly def.LedCount entries.
//
// Parameters:
//   - def: the frozen model definition
//   - buffer: the platform-owned LED color slice
//
// Returns:
//   - Model: the runtime model
//   - error: error if the definition violates engine limits or is
//     inconsistent with the buffer
func New(def *Definition, buffer []color.CRGB) (Model, error) {
	if def == nil {
		return nil, fmt.Errorf("model definition is nil")
	}
	if def.LedCount <= 0 || def.LedCount > common.AbsoluteMaxLeds {
		return nil, fmt.Errorf("led count %d outside (0, %d]", def.LedCount, common.AbsoluteMaxLeds)
	}
	if def.FaceCount <= 0 || def.FaceCount > common.AbsoluteMaxFaces {
		return nil, fmt.Errorf("face count %d outside (0, %d]", def.FaceCount, common.AbsoluteMaxFaces)
	}
	if len(buffer) != def.LedCount {
		return nil, fmt.Errorf("buffer holds %d leds, definition declares %d", len(buffer), def.LedCount)
	}
	if len(def.Faces) != def.FaceCount {
		return nil, fmt.Errorf("definition lists %d faces, declares %d", len(def.Faces), def.FaceCount)
	}

	m := &runtimeModel{
		def:            def,
		leds:           buffer,
		points:         make([]Point, def.LedCount),
		faces:          make([]Face, len(def.Faces)),
		geomToIndex:    make([]int, len(def.Faces)),
		logicalToIndex: make([]int, len(def.Faces)),
	}

	for i := range m.geomToIndex {
		m.geomToIndex[i] = -1
		m.logicalToIndex[i] = -1
	}

	for _, pd := range def.Points {
		if int(pd.ID) >= def.LedCount {
			return nil, fmt.Errorf("point id %d outside led count %d", pd.ID, def.LedCount)
		}
		m.points[pd.ID] = Point{
			id:       pd.ID,
			faceID:   pd.FaceID,
			position: mgl32.Vec3{pd.X, pd.Y, pd.Z},
		}
	}

	for _, nd := range def.Neighbors {
		if int(nd.PointID) < len(m.points) {
			m.points[nd.PointID].setNeighbors(nd.Neighbors)
		}
	}

	for i, fd := range def.Faces {
		if int(fd.TypeID) >= len(def.FaceTypes) {
			return nil, fmt.Errorf("face %d references unknown type %d", fd.ID, fd.TypeID)
		}
		ft := def.FaceTypes[fd.TypeID]
		if int(ft.NumLeds) > common.MaxLedsPerFace {
			return nil, fmt.Errorf("face type %d has %d leds, max is %d", ft.ID, ft.NumLeds, common.MaxLedsPerFace)
		}

		// LED offsets follow the physical wiring order: the face with
		// logical id f starts after the LEDs of every face with a lower
		// logical id, regardless of where the face sits in the array.
		offset := 0
		for _, other := range def.Faces {
			if other.ID < fd.ID {
				offset += int(def.FaceTypes[other.TypeID].NumLeds)
			}
		}
		end := offset + int(ft.NumLeds)
		if end > len(buffer) {
			return nil, fmt.Errorf("face %d leds [%d, %d) exceed buffer size %d", fd.ID, offset, end, len(buffer))
		}

		m.faces[i] = Face{
			id:          fd.ID,
			geometricID: fd.GeometricID,
			faceType:    ft.Type,
			typeID:      fd.TypeID,
			rotation:    fd.Rotation,
			ledOffset:   offset,
			ledCount:    int(ft.NumLeds),
			leds:        buffer[offset:end],
			vertices:    fd.Vertices,
		}

		if int(fd.GeometricID) < len(m.geomToIndex) {
			m.geomToIndex[fd.GeometricID] = i
		}
		if int(fd.ID) < len(m.logicalToIndex) {
			m.logicalToIndex[fd.ID] = i
		}
	}

	m.sphereRadius = def.SphereRadius
	if m.sphereRadius == 0 {
		maxSq := float32(0)
		for i := range m.points {
			if d := m.points[i].position.LenSqr(); d > maxSq {
				maxSq = d
			}
		}
		m.sphereRadius = float32(math.Sqrt(float64(maxSq)))
	}

	return m, nil
}

func (m *runtimeModel) Point(index int) *Point {
	if index < 0 || index >= len(m.points) {
		if !m.pointWarned {
			common.Warnf("point index %d out of range [0, %d)", index, len(m.points))
			m.pointWarned = true
		}
		if len(m.points) == 0 {
			return &dummyPoint
		}
		if index < 0 {
			index = 0
		} else {
			index = len(m.points) - 1
		}
	}
	return &m.points[index]
}

func (m *runtimeModel) PointCount() int { return len(m.points) }

func (m *runtimeModel) Face(geometricPosition int) *Face {
	if geometricPosition < 0 || geometricPosition >= len(m.faces) {
		if !m.faceWarned {
			common.Warnf("face position %d out of range [0, %d)", geometricPosition, len(m.faces))
			m.faceWarned = true
		}
		if len(m.faces) == 0 {
			return &dummyFace
		}
		geometricPosition = common.Clamp(geometricPosition, 0, len(m.faces)-1)
	}
	if idx := m.geomToIndex[geometricPosition]; idx >= 0 {
		return &m.faces[idx]
	}
	return &m.faces[0]
}

func (m *runtimeModel) FaceCount() int { return len(m.faces) }

func (m *runtimeModel) SphereRadius() float32 { return m.sphereRadius }

// logicalID resolves a geometric position to the logical face id, falling
// back to the position itself when the definition has no such mapping.
func (m *runtimeModel) logicalID(geometricPosition int) int {
	if geometricPosition < 0 || geometricPosition >= len(m.faces) {
		return geometricPosition
	}
	if idx := m.geomToIndex[geometricPosition]; idx >= 0 {
		return int(m.faces[idx].id)
	}
	return geometricPosition
}

// geometricID resolves a logical face id back to its geometric position.
func (m *runtimeModel) geometricID(logicalID int) int {
	if logicalID < 0 || logicalID >= len(m.logicalToIndex) {
		return -1
	}
	if idx := m.logicalToIndex[logicalID]; idx >= 0 {
		return int(m.faces[idx].geometricID)
	}
	return -1
}

func (m *runtimeModel) FaceEdgeCount(geometricPosition int) int {
	logical := m.logicalID(geometricPosition)
	count := 0
	for _, e := range m.def.Edges {
		if int(e.FaceID) == logical {
			count++
		}
	}
	return count
}

func (m *runtimeModel) FaceAtEdge(geometricPosition, edgeIndex int) int {
	logical := m.logicalID(geometricPosition)
	current := 0
	for _, e := range m.def.Edges {
		if int(e.FaceID) != logical {
			continue
		}
		if current == edgeIndex {
			if e.ConnectedFaceID < 0 {
				return -1
			}
			return m.geometricID(int(e.ConnectedFaceID))
		}
		current++
	}
	return -1
}

func (m *runtimeModel) FaceGroup(geometricPosition int, name string) *Group {
	geometricPosition = common.Clamp(geometricPosition, 0, len(m.faces)-1)
	idx := m.geomToIndex[geometricPosition]
	if idx < 0 {
		idx = 0
	}
	face := &m.faces[idx]

	for _, gd := range m.def.LedGroups {
		if gd.FaceTypeID != face.typeID || gd.Name != name {
			continue
		}
		return &Group{
			name:     gd.Name,
			indices:  gd.LedIndices,
			faceLeds: face.leds,
		}
	}
	return &Group{}
}

func (m *runtimeModel) FaceGroupNames(geometricPosition int) []string {
	geometricPosition = common.Clamp(geometricPosition, 0, len(m.faces)-1)
	idx := m.geomToIndex[geometricPosition]
	if idx < 0 {
		idx = 0
	}
	face := &m.faces[idx]

	var names []string
	for _, gd := range m.def.LedGroups {
		if gd.FaceTypeID == face.typeID {
			names = append(names, gd.Name)
		}
	}
	return names
}

func (m *runtimeModel) EdgeCount() int { return len(m.def.Edges) }

func (m *runtimeModel) Edge(index int) Edge {
	if index < 0 || index >= len(m.def.Edges) {
		return Edge{ConnectedFaceID: -1}
	}
	e := m.def.Edges[index]
	connected := -1
	if e.ConnectedFaceID >= 0 {
		connected = m.geometricID(int(e.ConnectedFaceID))
	}
	return Edge{
		FaceID:          m.geometricID(int(e.FaceID)),
		EdgeIndex:       int(e.EdgeIndex),
		StartVertex:     e.StartVertex,
		EndVertex:       e.EndVertex,
		ConnectedFaceID: connected,
	}
}

func (m *runtimeModel) Definition() *Definition { return m.def }
