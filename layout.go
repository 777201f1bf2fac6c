// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import "cogentcore.org/core/math32"

// Layout constants for the default chain path.
const (
	// ChainSpacing is the x distance between consecutive chain positions.
	ChainSpacing = 8

	// ChainAmplitude is the amplitude of the path's vertical undulation.
	ChainAmplitude = 3

	// chainK1 and chainK2 are the frequencies of the y and z undulations.
	chainK1 = 0.5
	chainK2 = 0.3
)

// Layout maps a chain position to a 3D coordinate. Implementations must
// be pure and total over non-negative positions: replaying the same
// thought sequence must reproduce bit-identical positions. A Layout is
// selected once when the scene is built and never switched mid-chain.
type Layout interface {
	// PositionFor returns the base position for the 1-based chain position.
	PositionFor(chainPos int) math32.Vector3
}

// ChainLayout is the default layout: a smooth path marching along +x
// with sinusoidal undulation in y and z.
type ChainLayout struct{}

func (ChainLayout) PositionFor(chainPos int) math32.Vector3 {
	p := float32(chainPos)
	return math32.Vec3(
		p*ChainSpacing,
		math32.Sin(p*chainK1)*ChainAmplitude,
		math32.Cos(p*chainK2)*ChainAmplitude*0.5,
	)
}

// GridLayout is an alternate layout arranging nodes in rows of Columns
// nodes at fixed spacing. It is mutually exclusive with [ChainLayout]:
// mixing layouts mid-chain is not supported, so the choice is made once
// at scene construction.
type GridLayout struct {
	// Columns is the row width in nodes; <= 0 means the default of 3.
	Columns int

	// Spacing is the distance between grid cells; <= 0 means the default
	// of [ChainSpacing].
	Spacing float32
}

func (gl GridLayout) PositionFor(chainPos int) math32.Vector3 {
	cols := gl.Columns
	if cols <= 0 {
		cols = 3
	}
	sp := gl.Spacing
	if sp <= 0 {
		sp = ChainSpacing
	}
	p := chainPos - 1
	if p < 0 {
		p = 0
	}
	row := p / cols
	col := p % cols
	return math32.Vec3(float32(col)*sp, 0, float32(row)*sp)
}
