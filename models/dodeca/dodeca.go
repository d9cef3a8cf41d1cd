// Package dodeca builds the DodecaRGB model: a dodecahedron with 12
// pentagonal faces of 104 LEDs each, 1248 LEDs total. The geometry is
// derived from the canonical dodecahedron vertex set and matches what
// cmd/modelgen emits from the sculpture's model source — faces ordered by
// wiring, LEDs laid out in a sunflower spiral per face, neighbor tables
// sorted and thresholded.
package dodeca

import (
	"math"
	"sort"

	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LedsPerFace matches the sculpture's PCB.
	LedsPerFace = 104

	// vertexRadius scales the solid so coordinates are in millimeters.
	vertexRadius = 130.0
)

// Def is the DodecaRGB definition.
var Def = build()

// phi is the golden ratio.
var phi = float32((1.0 + math.Sqrt(5.0)) / 2.0)

// solidVertices returns the 20 dodecahedron vertices scaled to
// vertexRadius.
func solidVertices() []mgl32.Vec3 {
	inv := 1.0 / phi
	raw := []mgl32.Vec3{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
		{0, inv, phi}, {0, inv, -phi}, {0, -inv, phi}, {0, -inv, -phi},
		{inv, phi, 0}, {inv, -phi, 0}, {-inv, phi, 0}, {-inv, -phi, 0},
		{phi, 0, inv}, {phi, 0, -inv}, {-phi, 0, inv}, {-phi, 0, -inv},
	}
	scale := float32(vertexRadius) / raw[0].Len()
	out := make([]mgl32.Vec3, len(raw))
	for i, v := range raw {
		out[i] = v.Mul(scale)
	}
	return out
}

// faceNormals returns the 12 face directions (icosahedron vertex set).
func faceNormals() []mgl32.Vec3 {
	raw := []mgl32.Vec3{
		{0, 1, phi}, {0, 1, -phi}, {0, -1, phi}, {0, -1, -phi},
		{1, phi, 0}, {1, -phi, 0}, {-1, phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {phi, 0, -1}, {-phi, 0, 1}, {-phi, 0, -1},
	}
	out := make([]mgl32.Vec3, len(raw))
	for i, v := range raw {
		out[i] = v.Normalize()
	}
	return out
}

func build() *model.Definition {
	verts := solidVertices()
	normals := faceNormals()

	def := &model.Definition{
		Name:      "DodecaRGB",
		LedCount:  12 * LedsPerFace,
		FaceCount: 12,
		FaceTypes: []model.FaceTypeData{
			{ID: 0, Type: model.FaceTypePentagon, NumLeds: LedsPerFace, EdgeLengthMM: edgeLength(verts)},
		},
		Hardware: model.HardwareData{
			LedType:            "WS2812B",
			ColorOrder:         "GRB",
			LedDiameterMM:      5.0,
			LedSpacingMM:       7.5,
			MaxCurrentPerLedMA: 60,
			AvgCurrentPerLedMA: 20,
		},
	}

	faceVerts := make([][]mgl32.Vec3, 12)
	for f, n := range normals {
		faceVerts[f] = pentagonFor(n, verts)
		def.Faces = append(def.Faces, model.FaceData{
			ID:          uint8(f),
			GeometricID: uint8(f),
			TypeID:      0,
			Vertices:    faceVerts[f],
		})
	}

	// Edges: consecutive vertex pairs; the connected face is the one other
	// face sharing both endpoints.
	for f := range normals {
		fv := faceVerts[f]
		for e := 0; e < 5; e++ {
			a, b := fv[e], fv[(e+1)%5]
			def.Edges = append(def.Edges, model.EdgeData{
				FaceID:          uint8(f),
				EdgeIndex:       uint8(e),
				StartVertex:     a,
				EndVertex:       b,
				ConnectedFaceID: int8(sharedFace(f, a, b, faceVerts)),
			})
		}
	}

	// LEDs: a sunflower spiral inside each face's inradius, center first.
	id := uint16(0)
	for f, n := range normals {
		center := faceCenter(faceVerts[f])
		right, up := planeBasis(n)
		inradius := center.Sub(midpoint(faceVerts[f][0], faceVerts[f][1])).Len()

		golden := math.Pi * (3.0 - math.Sqrt(5.0))
		for i := 0; i < LedsPerFace; i++ {
			r := float64(inradius) * 0.9 * math.Sqrt(float64(i)/float64(LedsPerFace))
			a := float64(i) * golden
			pos := center.
				Add(right.Mul(float32(r * math.Cos(a)))).
				Add(up.Mul(float32(r * math.Sin(a))))
			def.Points = append(def.Points, model.PointData{
				ID:     id,
				FaceID: uint8(f),
				X:      pos.X(),
				Y:      pos.Y(),
				Z:      pos.Z(),
			})
			id++
		}
	}

	def.Neighbors = computeNeighbors(def.Points)

	radius := float32(0)
	for _, p := range def.Points {
		if l := (mgl32.Vec3{p.X, p.Y, p.Z}).Len(); l > radius {
			radius = l
		}
	}
	def.SphereRadius = radius

	return def
}

// pentagonFor selects the five solid vertices closest to the face plane and
// orders them by angle around the normal.
func pentagonFor(n mgl32.Vec3, verts []mgl32.Vec3) []mgl32.Vec3 {
	type scored struct {
		v mgl32.Vec3
		d float32
	}
	all := make([]scored, len(verts))
	for i, v := range verts {
		all[i] = scored{v: v, d: v.Dot(n)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].d > all[j].d })

	five := make([]mgl32.Vec3, 5)
	for i := 0; i < 5; i++ {
		five[i] = all[i].v
	}

	center := faceCenter(five)
	right, up := planeBasis(n)
	sort.Slice(five, func(i, j int) bool {
		return angleAround(five[i], center, right, up) < angleAround(five[j], center, right, up)
	})
	return five
}

func angleAround(v, center, right, up mgl32.Vec3) float64 {
	d := v.Sub(center)
	return math.Atan2(float64(d.Dot(up)), float64(d.Dot(right)))
}

// sharedFace returns the other face whose pentagon contains both edge
// endpoints, or -1.
func sharedFace(face int, a, b mgl32.Vec3, faceVerts [][]mgl32.Vec3) int {
	for f, fv := range faceVerts {
		if f == face {
			continue
		}
		if containsVertex(fv, a) && containsVertex(fv, b) {
			return f
		}
	}
	return -1
}

func containsVertex(verts []mgl32.Vec3, v mgl32.Vec3) bool {
	for _, w := range verts {
		if w.Sub(v).Len() < 0.01 {
			return true
		}
	}
	return false
}

func faceCenter(verts []mgl32.Vec3) mgl32.Vec3 {
	var c mgl32.Vec3
	for _, v := range verts {
		c = c.Add(v)
	}
	return c.Mul(1.0 / float32(len(verts)))
}

func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}

// planeBasis returns two orthonormal vectors spanning the plane normal to n.
func planeBasis(n mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	ref := mgl32.Vec3{0, 0, 1}
	if float32(math.Abs(float64(n.Z()))) > 0.9 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	right := n.Cross(ref).Normalize()
	up := n.Cross(right).Normalize()
	return right, up
}

func edgeLength(verts []mgl32.Vec3) float32 {
	// Edge length equals the smallest inter-vertex distance on the solid.
	best := float32(math.MaxFloat32)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if d := verts[i].Sub(verts[j]).Len(); d < best {
				best = d
			}
		}
	}
	return best
}

func computeNeighbors(points []model.PointData) []model.NeighborData {
	tables := make([]model.NeighborData, len(points))
	for i, p := range points {
		var near []model.Neighbor
		for j, q := range points {
			if i == j {
				continue
			}
			d := mgl32.Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}.Len()
			if d <= 30.0 {
				near = append(near, model.Neighbor{PointID: q.ID, Distance: d})
			}
		}
		sort.Slice(near, func(a, b int) bool { return near[a].Distance < near[b].Distance })
		if len(near) > 7 {
			near = near[:7]
		}
		tables[i] = model.NeighborData{PointID: p.ID, Neighbors: near}
	}
	return tables
}
