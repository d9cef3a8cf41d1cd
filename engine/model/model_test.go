package model

import (
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/go-gl/mathgl/mgl32"
)

// twoSquares builds a minimal model: two unit squares sharing an edge, four
// LEDs each, with the faces remapped so logical and geometric ids differ.
//
//	logical 0 (geometric 1): x in [0,1]
//	logical 1 (geometric 0): x in [-1,0]
func twoSquares() *Definition {
	right := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	left := []mgl32.Vec3{{-1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {-1, 1, 0}}

	def := &Definition{
		Name:      "TwoSquares",
		LedCount:  8,
		FaceCount: 2,
		FaceTypes: []FaceTypeData{
			{ID: 0, Type: FaceTypeSquare, NumLeds: 4},
		},
		Faces: []FaceData{
			{ID: 0, GeometricID: 1, TypeID: 0, Vertices: right},
			{ID: 1, GeometricID: 0, TypeID: 0, Vertices: left},
		},
		LedGroups: []LedGroupData{
			{Name: "corners", FaceTypeID: 0, LedIndices: []uint16{0, 3}},
		},
	}

	// Shared edge: logical 0 edge 3 (x=0, left side) connects logical 1;
	// logical 1 edge 1 (x=0, right side) connects logical 0.
	for f, verts := range [][]mgl32.Vec3{right, left} {
		for e := 0; e < 4; e++ {
			connected := int8(-1)
			if f == 0 && e == 3 {
				connected = 1
			}
			if f == 1 && e == 1 {
				connected = 0
			}
			def.Edges = append(def.Edges, EdgeData{
				FaceID:          uint8(f),
				EdgeIndex:       uint8(e),
				StartVertex:     verts[e],
				EndVertex:       verts[(e+1)%4],
				ConnectedFaceID: connected,
			})
		}
	}

	// Four LEDs per face, inset from the corners.
	id := uint16(0)
	for f := 0; f < 2; f++ {
		base := float32(0.25)
		if f == 1 {
			base = -0.75
		}
		for _, off := range [][2]float32{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}} {
			def.Points = append(def.Points, PointData{
				ID:     id,
				FaceID: uint8(f),
				X:      base + off[0],
				Y:      0.25 + off[1],
				Z:      0,
			})
			id++
		}
	}

	def.Neighbors = []NeighborData{
		{PointID: 0, Neighbors: []Neighbor{{PointID: 1, Distance: 0.5}, {PointID: 3, Distance: 0.5}, {PointID: 2, Distance: 0.707}}},
	}

	return def
}

func newTestModel(t *testing.T, def *Definition) (Model, []color.CRGB) {
	t.Helper()
	buf := make([]color.CRGB, def.LedCount)
	m, err := New(def, buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, buf
}

func TestPointIdentity(t *testing.T) {
	m, _ := newTestModel(t, twoSquares())
	for i := 0; i < m.PointCount(); i++ {
		p := m.Point(i)
		if p.ID() != i {
			t.Errorf("point(%d).ID() = %d", i, p.ID())
		}
		if p.FaceID() < 0 || p.FaceID() >= m.FaceCount() {
			t.Errorf("point(%d).FaceID() = %d out of range", i, p.FaceID())
		}
	}
}

func TestClampedAccess(t *testing.T) {
	m, _ := newTestModel(t, twoSquares())

	if got, want := m.Point(50), m.Point(7); got != want {
		t.Error("out-of-range point should clamp to the last point")
	}
	if got, want := m.Face(999), m.Face(1); got != want {
		t.Error("out-of-range face should clamp to the last face")
	}
	if got, want := m.Point(-1), m.Point(0); got != want {
		t.Error("negative point index should clamp to the first point")
	}
}

func TestWiringOrderOffsets(t *testing.T) {
	m, buf := newTestModel(t, twoSquares())

	// Faces partition the buffer in logical (wiring) order, regardless of
	// geometric remapping: logical 0 owns [0,4), logical 1 owns [4,8).
	covered := make([]int, len(buf))
	for g := 0; g < m.FaceCount(); g++ {
		f := m.Face(g)
		for i := 0; i < f.LedCount(); i++ {
			covered[f.LedOffset()+i]++
		}
	}
	for i, c := range covered {
		if c != 1 {
			t.Errorf("led %d covered %d times", i, c)
		}
	}

	// Geometric position 0 is logical face 1, so its LEDs start at 4.
	if f := m.Face(0); f.ID() != 1 || f.LedOffset() != 4 {
		t.Errorf("geometric 0: logical id %d offset %d, want 1/4", f.ID(), f.LedOffset())
	}
	if f := m.Face(1); f.ID() != 0 || f.LedOffset() != 0 {
		t.Errorf("geometric 1: logical id %d offset %d, want 0/0", f.ID(), f.LedOffset())
	}

	// Writing through a face lands in the right buffer slot.
	*m.Face(0).Led(2) = color.Red
	if buf[6] != color.Red {
		t.Error("face write did not land at logical offset")
	}
}

func TestEdgeTranslation(t *testing.T) {
	m, _ := newTestModel(t, twoSquares())

	// Geometric 1 is logical 0; its edge 3 connects logical 1 = geometric 0.
	if got := m.FaceAtEdge(1, 3); got != 0 {
		t.Errorf("FaceAtEdge(1, 3) = %d, want 0", got)
	}
	if got := m.FaceAtEdge(0, 1); got != 1 {
		t.Errorf("FaceAtEdge(0, 1) = %d, want 1", got)
	}
	// Boundary edges report -1.
	if got := m.FaceAtEdge(1, 0); got != -1 {
		t.Errorf("FaceAtEdge(1, 0) = %d, want -1", got)
	}
	// Unknown edge index reports -1.
	if got := m.FaceAtEdge(0, 9); got != -1 {
		t.Errorf("FaceAtEdge(0, 9) = %d, want -1", got)
	}

	if got := m.FaceEdgeCount(0); got != 4 {
		t.Errorf("FaceEdgeCount(0) = %d, want 4", got)
	}
}

func TestNeighborTables(t *testing.T) {
	m, _ := newTestModel(t, twoSquares())
	p := m.Point(0)
	neighbors := p.Neighbors()
	if len(neighbors) == 0 || len(neighbors) > common.MaxNeighbors {
		t.Fatalf("neighbor count %d out of range", len(neighbors))
	}
	for i := 1; i < len(neighbors); i++ {
		if neighbors[i].Distance < neighbors[i-1].Distance {
			t.Error("neighbors not sorted ascending by distance")
		}
	}
	for _, n := range neighbors {
		if n.Distance > common.NeighborThreshold {
			t.Errorf("neighbor at distance %v beyond threshold", n.Distance)
		}
	}

	other := m.Point(1)
	if !p.IsNeighbor(other) {
		t.Error("point 1 should be a neighbor of point 0")
	}
}

func TestDistanceTo(t *testing.T) {
	m, _ := newTestModel(t, twoSquares())
	d := m.Point(0).DistanceTo(m.Point(1))
	if d < 0.49 || d > 0.51 {
		t.Errorf("DistanceTo = %v, want 0.5", d)
	}
}

func TestLedGroups(t *testing.T) {
	m, buf := newTestModel(t, twoSquares())

	g := m.FaceGroup(1, "corners")
	if g.Size() != 2 {
		t.Fatalf("group size = %d, want 2", g.Size())
	}
	// Mutating a group LED mutates the underlying face LED: geometric 1 is
	// logical 0, so its face-local index 0 is buffer index 0.
	*g.Led(0) = color.Blue
	if buf[0] != color.Blue {
		t.Error("group write did not reach the buffer")
	}

	if !m.FaceGroup(0, "nope").Empty() {
		t.Error("unknown group name should yield an empty group")
	}

	names := m.FaceGroupNames(0)
	if len(names) != 1 || names[0] != "corners" {
		t.Errorf("group names = %v", names)
	}
}

func TestSphereRadius(t *testing.T) {
	def := twoSquares()
	m, _ := newTestModel(t, def)
	// No precomputed radius: derived from the farthest point.
	want := mgl32.Vec3{-0.75, 0.75, 0}.Len()
	if got := m.SphereRadius(); got < want-0.01 || got > want+0.01 {
		t.Errorf("SphereRadius = %v, want %v", got, want)
	}

	def2 := twoSquares()
	def2.SphereRadius = 42
	m2, _ := newTestModel(t, def2)
	if got := m2.SphereRadius(); got != 42 {
		t.Errorf("precomputed SphereRadius = %v, want 42", got)
	}
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	def := twoSquares()
	if _, err := New(def, make([]color.CRGB, 3)); err == nil {
		t.Error("buffer size mismatch should be rejected")
	}

	big := twoSquares()
	big.LedCount = common.AbsoluteMaxLeds + 1
	if _, err := New(big, make([]color.CRGB, big.LedCount)); err == nil {
		t.Error("oversize LED count should be rejected")
	}

	if _, err := New(nil, nil); err == nil {
		t.Error("nil definition should be rejected")
	}
}
