package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const fixtureYAML = `
name: TentTest
face_types:
  - id: 0
    type: triangle
    num_leds: 3
    edge_length_mm: 20
faces:
  - id: 0
    type_id: 0
    vertices: [[0, 0, 0], [10, 0, 0], [5, 8, 0]]
  - id: 1
    geometric_id: 1
    type_id: 0
    vertices: [[0, 0, 0], [5, -8, 2], [10, 0, 0]]
points:
  - { id: 0, face_id: 0, position: [4, 2, 0] }
  - { id: 1, face_id: 0, position: [5, 3, 0] }
  - { id: 2, face_id: 0, position: [6, 2, 0] }
  - { id: 3, face_id: 1, position: [4, -2, 0.5] }
  - { id: 4, face_id: 1, position: [5, -3, 0.7] }
  - { id: 5, face_id: 1, position: [6, -2, 0.5] }
groups:
  - name: all
    face_type_id: 0
    led_indices: [0, 1, 2]
hardware:
  led_type: WS2812B
  color_order: GRB
`

func parseFixture(t *testing.T) *modelSource {
	t.Helper()
	var src modelSource
	if err := yaml.Unmarshal([]byte(fixtureYAML), &src); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	return &src
}

func TestBuildDefinition(t *testing.T) {
	def, err := buildDefinition(parseFixture(t))
	if err != nil {
		t.Fatal(err)
	}

	if def.LedCount != 6 || def.FaceCount != 2 {
		t.Fatalf("got %d leds / %d faces", def.LedCount, def.FaceCount)
	}
	if def.SphereRadius <= 0 {
		t.Error("sphere radius should be computed")
	}

	// The shared edge (0,0,0)-(10,0,0) must be detected on both faces.
	connected := 0
	for _, e := range def.Edges {
		if e.ConnectedFaceID >= 0 {
			connected++
		}
	}
	if connected != 2 {
		t.Errorf("connected edge count = %d, want 2 (one per side)", connected)
	}

	// Neighbor tables: sorted ascending, in range.
	for _, nd := range def.Neighbors {
		for i := 1; i < len(nd.Neighbors); i++ {
			if nd.Neighbors[i].Distance < nd.Neighbors[i-1].Distance {
				t.Fatalf("point %d neighbors unsorted", nd.PointID)
			}
		}
		for _, n := range nd.Neighbors {
			if int(n.PointID) >= def.LedCount {
				t.Fatalf("point %d neighbor out of range", nd.PointID)
			}
		}
	}

	if def.LedGroups[0].Name != "all" || len(def.LedGroups[0].LedIndices) != 3 {
		t.Errorf("led group not carried through: %+v", def.LedGroups[0])
	}
	if def.Hardware.LedType != "WS2812B" {
		t.Errorf("hardware block not carried through: %+v", def.Hardware)
	}
}

func TestGeometricIDDefaultsToLogical(t *testing.T) {
	def, err := buildDefinition(parseFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if def.Faces[0].GeometricID != 0 {
		t.Errorf("face 0 geometric id = %d, want logical default 0", def.Faces[0].GeometricID)
	}
	if def.Faces[1].GeometricID != 1 {
		t.Errorf("face 1 geometric id = %d, want authored 1", def.Faces[1].GeometricID)
	}
}

func TestFaceTypeFromString(t *testing.T) {
	cases := map[string]string{
		"pentagon": "pentagon",
		"Triangle": "triangle",
		"bogus":    "none",
	}
	for in, want := range cases {
		if got := faceTypeFromString(in).String(); got != want {
			t.Errorf("faceTypeFromString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmit(t *testing.T) {
	def, err := buildDefinition(parseFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	code := emit("tenttest", def)

	for _, want := range []string{
		"// Code generated by modelgen; DO NOT EDIT.",
		"package tenttest",
		"var Def = &model.Definition{",
		`Name: "TentTest"`,
		"LedCount: 6",
		"Neighbors: []model.NeighborData{",
		`LedType: "WS2812B"`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("emitted code missing %q", want)
		}
	}
}

func TestBuildDefinitionRejectsEmpty(t *testing.T) {
	if _, err := buildDefinition(&modelSource{}); err == nil {
		t.Error("empty source should be rejected")
	}
}
