package dodeca

import (
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
)

func TestDodecaShape(t *testing.T) {
	if Def.LedCount != 1248 || Def.FaceCount != 12 {
		t.Fatalf("model is %d leds / %d faces, want 1248/12", Def.LedCount, Def.FaceCount)
	}
	if len(Def.Edges) != 60 {
		t.Fatalf("edge count = %d, want 60", len(Def.Edges))
	}
	for _, f := range Def.Faces {
		if len(f.Vertices) != 5 {
			t.Fatalf("face %d has %d vertices", f.ID, len(f.Vertices))
		}
	}
}

func TestDodecaEveryEdgeConnected(t *testing.T) {
	// A closed solid has no boundary edges.
	for _, e := range Def.Edges {
		if e.ConnectedFaceID < 0 {
			t.Errorf("face %d edge %d has no neighbor", e.FaceID, e.EdgeIndex)
		}
	}
}

func TestDodecaValidates(t *testing.T) {
	m, err := model.New(Def, make([]color.CRGB, Def.LedCount))
	if err != nil {
		t.Fatal(err)
	}
	report := m.Validate(true, true)
	if !report.IsValid {
		t.Fatalf("dodecahedron should validate; errors: %v", report.Errors)
	}
}

func TestDodecaNeighborInvariants(t *testing.T) {
	m, _ := model.New(Def, make([]color.CRGB, Def.LedCount))
	for i := 0; i < m.PointCount(); i++ {
		n := m.Point(i).Neighbors()
		if len(n) > common.MaxNeighbors {
			t.Fatalf("point %d has %d neighbors", i, len(n))
		}
		for j := 1; j < len(n); j++ {
			if n[j].Distance < n[j-1].Distance {
				t.Fatalf("point %d neighbors unsorted", i)
			}
		}
	}
}

func TestDodecaFaceNeighborCount(t *testing.T) {
	m, _ := model.New(Def, make([]color.CRGB, Def.LedCount))
	for g := 0; g < m.FaceCount(); g++ {
		if got := m.FaceEdgeCount(g); got != 5 {
			t.Errorf("face %d edge count = %d, want 5", g, got)
		}
		seen := make(map[int]bool)
		for e := 0; e < 5; e++ {
			n := m.FaceAtEdge(g, e)
			if n < 0 || n >= 12 {
				t.Fatalf("face %d edge %d neighbor = %d", g, e, n)
			}
			if n == g || seen[n] {
				t.Fatalf("face %d neighbors not distinct", g)
			}
			seen[n] = true
		}
	}
}
