// Command modelgen turns a YAML model source into a frozen Go model
// definition file. It computes what the runtime must never compute per
// frame: edge adjacency from shared vertices, per-point neighbor tables
// (sorted ascending, at most 7 entries, truncated at 30 units), and the
// bounding-sphere radius. Neighbor tables are the expensive part — an
// all-pairs distance pass — so that work fans out on a worker pool.
//
// Usage:
//
//	modelgen -in model.yaml -out dodeca.go -pkg dodeca
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// modelSource is the YAML schema authored per sculpture.
type modelSource struct {
	Name string `yaml:"name"`

	FaceTypes []struct {
		ID           uint8   `yaml:"id"`
		Type         string  `yaml:"type"`
		NumLeds      uint16  `yaml:"num_leds"`
		EdgeLengthMM float32 `yaml:"edge_length_mm"`
	} `yaml:"face_types"`

	Faces []struct {
		ID          uint8        `yaml:"id"`
		GeometricID *uint8       `yaml:"geometric_id"`
		TypeID      uint8        `yaml:"type_id"`
		Rotation    uint8        `yaml:"rotation"`
		Vertices    [][3]float32 `yaml:"vertices"`
	} `yaml:"faces"`

	Points []struct {
		ID       uint16     `yaml:"id"`
		FaceID   uint8      `yaml:"face_id"`
		Position [3]float32 `yaml:"position"`
	} `yaml:"points"`

	Groups []struct {
		Name       string   `yaml:"name"`
		FaceTypeID uint8    `yaml:"face_type_id"`
		LedIndices []uint16 `yaml:"led_indices"`
	} `yaml:"groups"`

	Hardware struct {
		LedType            string  `yaml:"led_type"`
		ColorOrder         string  `yaml:"color_order"`
		LedDiameterMM      float32 `yaml:"led_diameter_mm"`
		LedSpacingMM       float32 `yaml:"led_spacing_mm"`
		MaxCurrentPerLedMA uint16  `yaml:"max_current_per_led_ma"`
		AvgCurrentPerLedMA uint16  `yaml:"avg_current_per_led_ma"`
	} `yaml:"hardware"`
}

func main() {
	in := flag.String("in", "", "YAML model source")
	out := flag.String("out", "", "generated Go file (default stdout)")
	pkg := flag.String("pkg", "generated", "package name for the generated file")
	flag.Parse()

	if *in == "" {
		log.Fatal("modelgen: -in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("modelgen: failed to read %s: %v", *in, err)
	}
	var src modelSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		log.Fatalf("modelgen: failed to parse %s: %v", *in, err)
	}

	def, err := buildDefinition(&src)
	if err != nil {
		log.Fatalf("modelgen: %v", err)
	}

	code := emit(*pkg, def)
	if *out == "" {
		fmt.Print(code)
		return
	}
	if err := os.WriteFile(*out, []byte(code), 0o644); err != nil {
		log.Fatalf("modelgen: failed to write %s: %v", *out, err)
	}
	log.Printf("modelgen: wrote %s (%d leds, %d faces, %d edges)",
		*out, def.LedCount, def.FaceCount, len(def.Edges))
}

func buildDefinition(src *modelSource) (*model.Definition, error) {
	if len(src.Points) == 0 || len(src.Faces) == 0 {
		return nil, fmt.Errorf("model source needs points and faces")
	}
	if len(src.Points) > common.AbsoluteMaxLeds {
		return nil, fmt.Errorf("%d points exceed the %d led limit", len(src.Points), common.AbsoluteMaxLeds)
	}
	if len(src.Faces) > common.AbsoluteMaxFaces {
		return nil, fmt.Errorf("%d faces exceed the %d face limit", len(src.Faces), common.AbsoluteMaxFaces)
	}

	def := &model.Definition{
		Name:      src.Name,
		LedCount:  len(src.Points),
		FaceCount: len(src.Faces),
	}

	for _, ft := range src.FaceTypes {
		def.FaceTypes = append(def.FaceTypes, model.FaceTypeData{
			ID:           ft.ID,
			Type:         faceTypeFromString(ft.Type),
			NumLeds:      ft.NumLeds,
			EdgeLengthMM: ft.EdgeLengthMM,
		})
	}

	for _, f := range src.Faces {
		geometric := f.ID
		if f.GeometricID != nil {
			geometric = *f.GeometricID
		}
		verts := make([]mgl32.Vec3, len(f.Vertices))
		for i, v := range f.Vertices {
			verts[i] = mgl32.Vec3{v[0], v[1], v[2]}
		}
		def.Faces = append(def.Faces, model.FaceData{
			ID:          f.ID,
			GeometricID: geometric,
			TypeID:      f.TypeID,
			Rotation:    f.Rotation,
			Vertices:    verts,
		})
	}

	for _, p := range src.Points {
		def.Points = append(def.Points, model.PointData{
			ID:     p.ID,
			FaceID: p.FaceID,
			X:      p.Position[0],
			Y:      p.Position[1],
			Z:      p.Position[2],
		})
	}

	for _, g := range src.Groups {
		def.LedGroups = append(def.LedGroups, model.LedGroupData{
			Name:       g.Name,
			FaceTypeID: g.FaceTypeID,
			LedIndices: g.LedIndices,
		})
	}

	def.Hardware = model.HardwareData{
		LedType:            src.Hardware.LedType,
		ColorOrder:         src.Hardware.ColorOrder,
		LedDiameterMM:      src.Hardware.LedDiameterMM,
		LedSpacingMM:       src.Hardware.LedSpacingMM,
		MaxCurrentPerLedMA: src.Hardware.MaxCurrentPerLedMA,
		AvgCurrentPerLedMA: src.Hardware.AvgCurrentPerLedMA,
	}

	def.Edges = computeEdges(def.Faces)
	def.Neighbors = computeNeighbors(def.Points)

	radius := float32(0)
	for _, p := range def.Points {
		if l := (mgl32.Vec3{p.X, p.Y, p.Z}).Len(); l > radius {
			radius = l
		}
	}
	def.SphereRadius = radius

	return def, nil
}

func faceTypeFromString(s string) model.FaceType {
	switch strings.ToLower(s) {
	case "strip":
		return model.FaceTypeStrip
	case "circle":
		return model.FaceTypeCircle
	case "triangle":
		return model.FaceTypeTriangle
	case "square":
		return model.FaceTypeSquare
	case "pentagon":
		return model.FaceTypePentagon
	case "hexagon":
		return model.FaceTypeHexagon
	default:
		return model.FaceTypeNone
	}
}

// computeEdges walks each face's vertex ring and finds the connected face
// by shared vertex pair.
func computeEdges(faces []model.FaceData) []model.EdgeData {
	var edges []model.EdgeData
	for _, f := range faces {
		n := len(f.Vertices)
		for e := 0; e < n; e++ {
			a := f.Vertices[e]
			b := f.Vertices[(e+1)%n]
			connected := int8(-1)
			for _, other := range faces {
				if other.ID == f.ID {
					continue
				}
				if hasVertex(other.Vertices, a) && hasVertex(other.Vertices, b) {
					connected = int8(other.ID)
					break
				}
			}
			edges = append(edges, model.EdgeData{
				FaceID:          f.ID,
				EdgeIndex:       uint8(e),
				StartVertex:     a,
				EndVertex:       b,
				ConnectedFaceID: connected,
			})
		}
	}
	return edges
}

func hasVertex(verts []mgl32.Vec3, v mgl32.Vec3) bool {
	for _, w := range verts {
		if w.Sub(v).Len() < 0.01 {
			return true
		}
	}
	return false
}

// computeNeighbors runs the all-pairs distance pass, one task per point,
// on a bounded worker pool.
func computeNeighbors(points []model.PointData) []model.NeighborData {
	tables := make([]model.NeighborData, len(points))

	pool := worker.NewDynamicWorkerPool(runtime.NumCPU(), 256, 1*time.Second)
	var wg sync.WaitGroup

	taskID := 0
	for i := range points {
		wg.Add(1)
		iCap := i
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				p := points[iCap]
				var near []model.Neighbor
				for j, q := range points {
					if iCap == j {
						continue
					}
					d := mgl32.Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}.Len()
					if d <= common.NeighborThreshold {
						near = append(near, model.Neighbor{PointID: q.ID, Distance: d})
					}
				}
				sort.Slice(near, func(a, b int) bool { return near[a].Distance < near[b].Distance })
				if len(near) > common.MaxNeighbors {
					near = near[:common.MaxNeighbors]
				}
				tables[iCap] = model.NeighborData{PointID: p.ID, Neighbors: near}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return tables
}

// emit renders the definition as a Go source file of frozen data.
func emit(pkg string, def *model.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by modelgen; DO NOT EDIT.\n\npackage %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/Carmen-Shannon/pixel-theater/engine/model\"\n")
	b.WriteString("\t\"github.com/go-gl/mathgl/mgl32\"\n")
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "// Def is the %s model definition.\n", def.Name)
	b.WriteString("var Def = &model.Definition{\n")
	fmt.Fprintf(&b, "\tName: %q,\n", def.Name)
	fmt.Fprintf(&b, "\tLedCount: %d,\n", def.LedCount)
	fmt.Fprintf(&b, "\tFaceCount: %d,\n", def.FaceCount)
	fmt.Fprintf(&b, "\tSphereRadius: %v,\n", def.SphereRadius)

	b.WriteString("\tFaceTypes: []model.FaceTypeData{\n")
	for _, ft := range def.FaceTypes {
		fmt.Fprintf(&b, "\t\t{ID: %d, Type: model.FaceType(%d), NumLeds: %d, EdgeLengthMM: %v},\n",
			ft.ID, ft.Type, ft.NumLeds, ft.EdgeLengthMM)
	}
	b.WriteString("\t},\n")

	b.WriteString("\tFaces: []model.FaceData{\n")
	for _, f := range def.Faces {
		fmt.Fprintf(&b, "\t\t{ID: %d, GeometricID: %d, TypeID: %d, Rotation: %d, Vertices: []mgl32.Vec3{",
			f.ID, f.GeometricID, f.TypeID, f.Rotation)
		for _, v := range f.Vertices {
			fmt.Fprintf(&b, "{%v, %v, %v}, ", v.X(), v.Y(), v.Z())
		}
		b.WriteString("}},\n")
	}
	b.WriteString("\t},\n")

	b.WriteString("\tPoints: []model.PointData{\n")
	for _, p := range def.Points {
		fmt.Fprintf(&b, "\t\t{ID: %d, FaceID: %d, X: %v, Y: %v, Z: %v},\n", p.ID, p.FaceID, p.X, p.Y, p.Z)
	}
	b.WriteString("\t},\n")

	b.WriteString("\tEdges: []model.EdgeData{\n")
	for _, e := range def.Edges {
		fmt.Fprintf(&b, "\t\t{FaceID: %d, EdgeIndex: %d, StartVertex: mgl32.Vec3{%v, %v, %v}, EndVertex: mgl32.Vec3{%v, %v, %v}, ConnectedFaceID: %d},\n",
			e.FaceID, e.EdgeIndex,
			e.StartVertex.X(), e.StartVertex.Y(), e.StartVertex.Z(),
			e.EndVertex.X(), e.EndVertex.Y(), e.EndVertex.Z(),
			e.ConnectedFaceID)
	}
	b.WriteString("\t},\n")

	b.WriteString("\tLedGroups: []model.LedGroupData{\n")
	for _, g := range def.LedGroups {
		fmt.Fprintf(&b, "\t\t{Name: %q, FaceTypeID: %d, LedIndices: %#v},\n", g.Name, g.FaceTypeID, g.LedIndices)
	}
	b.WriteString("\t},\n")

	b.WriteString("\tNeighbors: []model.NeighborData{\n")
	for _, nd := range def.Neighbors {
		fmt.Fprintf(&b, "\t\t{PointID: %d, Neighbors: []model.Neighbor{", nd.PointID)
		for _, n := range nd.Neighbors {
			fmt.Fprintf(&b, "{PointID: %d, Distance: %v}, ", n.PointID, n.Distance)
		}
		b.WriteString("}},\n")
	}
	b.WriteString("\t},\n")

	h := def.Hardware
	fmt.Fprintf(&b, "\tHardware: model.HardwareData{LedType: %q, ColorOrder: %q, LedDiameterMM: %v, LedSpacingMM: %v, MaxCurrentPerLedMA: %d, AvgCurrentPerLedMA: %d},\n",
		h.LedType, h.ColorOrder, h.LedDiameterMM, h.LedSpacingMM, h.MaxCurrentPerLedMA, h.AvgCurrentPerLedMA)

	b.WriteString("}\n")
	return b.String()
}
