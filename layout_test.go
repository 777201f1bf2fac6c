// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestChainLayoutDeterminism(t *testing.T) {
	ly := ChainLayout{}
	for p := range 1000 {
		a := ly.PositionFor(p)
		b := ly.PositionFor(p)
		assert.Equal(t, a, b, "position %d must be bit-identical across calls", p)
	}
}

func TestChainLayoutPath(t *testing.T) {
	ly := ChainLayout{}
	for p := 1; p <= 50; p++ {
		pos := ly.PositionFor(p)
		fp := float32(p)
		assert.Equal(t, fp*ChainSpacing, pos.X)
		assert.Equal(t, math32.Sin(fp*0.5)*ChainAmplitude, pos.Y)
		assert.Equal(t, math32.Cos(fp*0.3)*ChainAmplitude*0.5, pos.Z)
	}
}

func TestChainLayoutMonotonicX(t *testing.T) {
	ly := ChainLayout{}
	prev := ly.PositionFor(0)
	for p := 1; p <= 100; p++ {
		pos := ly.PositionFor(p)
		assert.Greater(t, pos.X, prev.X)
		prev = pos
	}
}

func TestGridLayout(t *testing.T) {
	ly := GridLayout{Columns: 3, Spacing: 4}
	assert.Equal(t, math32.Vec3(0, 0, 0), ly.PositionFor(1))
	assert.Equal(t, math32.Vec3(4, 0, 0), ly.PositionFor(2))
	assert.Equal(t, math32.Vec3(8, 0, 0), ly.PositionFor(3))
	assert.Equal(t, math32.Vec3(0, 0, 4), ly.PositionFor(4))
}

func TestGridLayoutDefaults(t *testing.T) {
	ly := GridLayout{}
	assert.Equal(t, math32.Vec3(0, 0, 0), ly.PositionFor(1))
	assert.Equal(t, math32.Vec3(ChainSpacing, 0, 0), ly.PositionFor(2))
	assert.Equal(t, math32.Vec3(0, 0, ChainSpacing), ly.PositionFor(4))
}
