package model

import (
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/go-gl/mathgl/mgl32"
)

// Face is one polygonal LED region at runtime. It exposes the face's LEDs as
// a clamped view into the global buffer slice the platform owns.
type Face struct {
	id          uint8
	geometricID uint8
	faceType    FaceType
	typeID      uint8
	rotation    uint8

	ledOffset int
	ledCount  int

	// leds aliases the global buffer at [ledOffset, ledOffset+ledCount).
	leds []color.CRGB

	vertices []mgl32.Vec3

	warned bool
}

// ID returns the logical face id (physical wiring order).
func (f *Face) ID() int { return int(f.id) }

// GeometricID returns the face's position in the geometric layout.
func (f *Face) GeometricID() int { return int(f.geometricID) }

// Type returns the face's polygon class.
func (f *Face) Type() FaceType { return f.faceType }

// Rotation returns the face's rotation index.
func (f *Face) Rotation() int { return int(f.rotation) }

// LedOffset returns the face's offset into the global LED buffer.
func (f *Face) LedOffset() int { return f.ledOffset }

// LedCount returns the number of LEDs on this face.
func (f *Face) LedCount() int { return f.ledCount }

// Led returns the face-local LED at index, clamped to the face's range.
func (f *Face) Led(index int) *color.CRGB {
	if index < 0 || index >= f.ledCount {
		if !f.warned {
			common.Warnf("face %d led index %d out of range [0, %d)", f.id, index, f.ledCount)
			f.warned = true
		}
		if f.ledCount == 0 || f.leds == nil {
			return &dummyFaceLed
		}
		if index < 0 {
			index = 0
		} else {
			index = f.ledCount - 1
		}
	}
	return &f.leds[index]
}

// Leds returns the face's LED slice for bulk operations.
func (f *Face) Leds() []color.CRGB { return f.leds }

// Vertices returns the face's corner positions in winding order.
func (f *Face) Vertices() []mgl32.Vec3 { return f.vertices }

// Normal returns the face's unit normal computed from its first three
// vertices, or the zero vector for degenerate faces.
func (f *Face) Normal() mgl32.Vec3 {
	if len(f.vertices) < 3 {
		return mgl32.Vec3{}
	}
	a := f.vertices[1].Sub(f.vertices[0])
	b := f.vertices[2].Sub(f.vertices[0])
	n := a.Cross(b)
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Center returns the centroid of the face's vertices.
func (f *Face) Center() mgl32.Vec3 {
	var c mgl32.Vec3
	if len(f.vertices) == 0 {
		return c
	}
	for _, v := range f.vertices {
		c = c.Add(v)
	}
	return c.Mul(1.0 / float32(len(f.vertices)))
}

var dummyFaceLed color.CRGB

// Edge is one face edge and its adjacency as seen through the scene-facing
// API: the connected face id is a geometric position, or -1 for an open
// boundary.
type Edge struct {
	FaceID          int
	EdgeIndex       int
	StartVertex     mgl32.Vec3
	EndVertex       mgl32.Vec3
	ConnectedFaceID int
}

// HasConnection reports whether the edge joins another face.
func (e Edge) HasConnection() bool { return e.ConnectedFaceID >= 0 }
