package pentatest

import (
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
)

func TestFixtureShape(t *testing.T) {
	if Def.LedCount != 40 || Def.FaceCount != 2 {
		t.Fatalf("fixture is %d leds / %d faces, want 40/2", Def.LedCount, Def.FaceCount)
	}
	if len(Def.Points) != 40 {
		t.Fatalf("fixture has %d points", len(Def.Points))
	}
	if Def.SphereRadius <= 0 {
		t.Error("sphere radius should be precomputed")
	}
}

func TestFixtureValidates(t *testing.T) {
	m, err := model.New(Def, make([]color.CRGB, Def.LedCount))
	if err != nil {
		t.Fatal(err)
	}
	report := m.Validate(true, true)
	if !report.IsValid {
		t.Fatalf("fixture should validate; errors: %v", report.Errors)
	}
}

func TestFixtureLedPartition(t *testing.T) {
	m, _ := model.New(Def, make([]color.CRGB, Def.LedCount))
	covered := make([]int, Def.LedCount)
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
}

func TestFixtureNeighborTables(t *testing.T) {
	m, _ := model.New(Def, make([]color.CRGB, Def.LedCount))
	for i := 0; i < m.PointCount(); i++ {
		n := m.Point(i).Neighbors()
		if len(n) == 0 {
			t.Fatalf("point %d has no neighbors", i)
		}
		if len(n) > common.MaxNeighbors {
			t.Fatalf("point %d has %d neighbors", i, len(n))
		}
		for j := 1; j < len(n); j++ {
			if n[j].Distance < n[j-1].Distance {
				t.Fatalf("point %d neighbors unsorted", i)
			}
		}
		for _, e := range n {
			if e.Distance > common.NeighborThreshold {
				t.Fatalf("point %d neighbor beyond threshold", i)
			}
		}
	}
}

func TestFixtureGroups(t *testing.T) {
	m, buf := func() (model.Model, []color.CRGB) {
		b := make([]color.CRGB, Def.LedCount)
		m, _ := model.New(Def, b)
		return m, b
	}()

	center := m.FaceGroup(0, "center")
	if center.Size() != 1 {
		t.Fatalf("center group size = %d", center.Size())
	}
	ring0 := m.FaceGroup(1, "ring0")
	if ring0.Size() != 7 {
		t.Fatalf("ring0 group size = %d", ring0.Size())
	}

	// Group writes land at the second face's offset.
	*ring0.Led(0) = color.Gold
	if buf[21] != color.Gold {
		t.Error("ring0 led 0 of face 1 should be buffer index 21")
	}

	names := m.FaceGroupNames(0)
	if len(names) != 3 {
		t.Errorf("group names = %v, want 3 entries", names)
	}
}
