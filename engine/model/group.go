package model

import (
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
)

// Group is a read-only view over a named subset of a face's LEDs. Mutating a
// group LED mutates the underlying face LED. An empty Group (Size() == 0) is
// returned for unknown names.
type Group struct {
	name    string
	indices []uint16

	// faceLeds aliases the owning face's slice of the global buffer.
	faceLeds []color.CRGB

	warned bool
}

// Name returns the group name, or "" for an empty group.
func (g *Group) Name() string { return g.name }

// Size returns the number of LEDs in the group.
func (g *Group) Size() int { return len(g.indices) }

// Empty reports whether the group has no LEDs.
func (g *Group) Empty() bool { return len(g.indices) == 0 }

// Led returns the group LED at index, clamped to the group's range.
func (g *Group) Led(index int) *color.CRGB {
	if index < 0 || index >= len(g.indices) {
		if !g.warned {
			common.Warnf("group %q led index %d out of range [0, %d)", g.name, index, len(g.indices))
			g.warned = true
		}
		if len(g.indices) == 0 {
			return &dummyFaceLed
		}
		if index < 0 {
			index = 0
		} else {
			index = len(g.indices) - 1
		}
	}
	local := int(g.indices[index])
	if local >= len(g.faceLeds) {
		return &dummyFaceLed
	}
	return &g.faceLeds[local]
}
