package model

import (
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Point is one LED's immutable geometric record: its dense id, the logical
// id of its face, its position, and its precomputed neighbor table.
type Point struct {
	id       uint16
	faceID   uint8
	position mgl32.Vec3

	neighbors     [common.MaxNeighbors]Neighbor
	neighborCount int
}

// ID returns the dense 0-based LED index.
func (p *Point) ID() int { return int(p.id) }

// FaceID returns the logical id of the face this LED belongs to.
func (p *Point) FaceID() int { return int(p.faceID) }

// Position returns the LED position in model units.
func (p *Point) Position() mgl32.Vec3 { return p.position }

// X returns the x coordinate.
func (p *Point) X() float32 { return p.position.X() }

// Y returns the y coordinate.
func (p *Point) Y() float32 { return p.position.Y() }

// Z returns the z coordinate.
func (p *Point) Z() float32 { return p.position.Z() }

// DistanceTo returns the Euclidean distance to another point.
func (p *Point) DistanceTo(other *Point) float32 {
	return p.position.Sub(other.position).Len()
}

// Neighbors returns the point's neighbor table, sorted ascending by
// distance, at most MaxNeighbors entries, none beyond NeighborThreshold.
func (p *Point) Neighbors() []Neighbor {
	return p.neighbors[:p.neighborCount]
}

// IsNeighbor reports whether other appears in this point's neighbor table.
func (p *Point) IsNeighbor(other *Point) bool {
	for i := 0; i < p.neighborCount; i++ {
		if p.neighbors[i].PointID == other.id {
			return true
		}
	}
	return false
}

func (p *Point) setNeighbors(entries []Neighbor) {
	p.neighborCount = 0
	for _, n := range entries {
		if p.neighborCount >= common.MaxNeighbors {
			break
		}
		if n.Distance <= 0 || n.Distance > common.NeighborThreshold {
			continue
		}
		p.neighbors[p.neighborCount] = n
		p.neighborCount++
	}
}
