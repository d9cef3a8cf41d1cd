// Package pentatest provides a small two-face pentagon model used by
// tests. The layout mirrors what cmd/modelgen emits for a real
// sculpture, at fixture scale: 20 LEDs per face arranged as a center LED,
// an inner ring, and an outer ring, with named LED groups for each.
package pentatest

import (
	"math"

	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ledsPerFace = 20
	faceRadius  = 25.0
	faceOffset  = 20.0
)

// Def is the fixture's frozen definition.
var Def = build()

func build() *model.Definition {
	def := &model.Definition{
		Name:      "PentaTest",
		LedCount:  2 * ledsPerFace,
		FaceCount: 2,
		FaceTypes: []model.FaceTypeData{
			{ID: 0, Type: model.FaceTypePentagon, NumLeds: ledsPerFace, EdgeLengthMM: 29.4},
		},
		LedGroups: []model.LedGroupData{
			{Name: "center", FaceTypeID: 0, LedIndices: []uint16{0}},
			{Name: "ring0", FaceTypeID: 0, LedIndices: []uint16{1, 2, 3, 4, 5, 6, 7}},
			{Name: "ring1", FaceTypeID: 0, LedIndices: []uint16{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
		},
		Hardware: model.HardwareData{
			LedType:            "WS2812B",
			ColorOrder:         "GRB",
			LedDiameterMM:      5.0,
			LedSpacingMM:       8.0,
			MaxCurrentPerLedMA: 60,
			AvgCurrentPerLedMA: 20,
		},
	}

	// Two parallel pentagon faces, offset along z. Both faces share the
	// single face type; logical and geometric ids coincide here.
	for face := 0; face < 2; face++ {
		z := float32(faceOffset)
		if face == 1 {
			z = -faceOffset
		}

		verts := make([]mgl32.Vec3, 5)
		for i := 0; i < 5; i++ {
			a := float64(i)*2.0*math.Pi/5.0 - math.Pi/2.0
			verts[i] = mgl32.Vec3{
				faceRadius * float32(math.Cos(a)),
				faceRadius * float32(math.Sin(a)),
				z,
			}
		}

		def.Faces = append(def.Faces, model.FaceData{
			ID:          uint8(face),
			GeometricID: uint8(face),
			TypeID:      0,
			Vertices:    verts,
		})

		for i := 0; i < 5; i++ {
			def.Edges = append(def.Edges, model.EdgeData{
				FaceID:          uint8(face),
				EdgeIndex:       uint8(i),
				StartVertex:     verts[i],
				EndVertex:       verts[(i+1)%5],
				ConnectedFaceID: -1,
			})
		}

		// LEDs: one center, a ring of 7 at radius 8, a ring of 12 at 16.
		base := uint16(face * ledsPerFace)
		def.Points = append(def.Points, model.PointData{
			ID: base, FaceID: uint8(face), X: 0, Y: 0, Z: z,
		})
		id := base + 1
		for i := 0; i < 7; i++ {
			a := float64(i) * 2.0 * math.Pi / 7.0
			def.Points = append(def.Points, model.PointData{
				ID:     id,
				FaceID: uint8(face),
				X:      8.0 * float32(math.Cos(a)),
				Y:      8.0 * float32(math.Sin(a)),
				Z:      z,
			})
			id++
		}
		for i := 0; i < 12; i++ {
			a := float64(i) * 2.0 * math.Pi / 12.0
			def.Points = append(def.Points, model.PointData{
				ID:     id,
				FaceID: uint8(face),
				X:      16.0 * float32(math.Cos(a)),
				Y:      16.0 * float32(math.Sin(a)),
				Z:      z,
			})
			id++
		}
	}

	def.Neighbors = computeNeighbors(def.Points)

	radius := float32(0)
	for _, p := range def.Points {
		l := mgl32.Vec3{p.X, p.Y, p.Z}.Len()
		if l > radius {
			radius = l
		}
	}
	def.SphereRadius = radius

	return def
}

// computeNeighbors builds the sorted, thresholded neighbor tables the
// generator would emit.
func computeNeighbors(points []model.PointData) []model.NeighborData {
	tables := make([]model.NeighborData, len(points))
	for i, p := range points {
		var all []model.Neighbor
		for j, q := range points {
			if i == j {
				continue
			}
			d := mgl32.Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}.Len()
			if d <= 30.0 {
				all = append(all, model.Neighbor{PointID: q.ID, Distance: d})
			}
		}
		for a := 1; a < len(all); a++ {
			for b := a; b > 0 && all[b].Distance < all[b-1].Distance; b-- {
				all[b], all[b-1] = all[b-1], all[b]
			}
		}
		if len(all) > 7 {
			all = all[:7]
		}
		tables[i] = model.NeighborData{PointID: p.ID, Neighbors: all}
	}
	return tables
}
