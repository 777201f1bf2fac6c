// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light illuminates the scene. Lights are fixed scene elements: they are
// seeded at initialization and re-seeded after every full clear, and are
// stored on the Scene rather than among the nodes.
type Light struct {
	// Name identifies the light.
	Name string

	// On is whether the light is active.
	On bool

	// Lumens is the brightness in normalized 0-1 units.
	Lumens float32

	// Color is the light color at full intensity.
	Color color.RGBA

	// Pos is the position for directional lights; the light is assumed
	// to point at the origin, so only the direction matters. The zero
	// vector marks an ambient light.
	Pos math32.Vector3
}

// newAmbientLight returns the standard ambient fill light.
func newAmbientLight(name string, lumens float32) *Light {
	return &Light{
		Name:   name,
		On:     true,
		Lumens: lumens,
		Color:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// newDirLight returns a directional light located overhead and toward
// the default camera.
func newDirLight(name string, lumens float32) *Light {
	return &Light{
		Name:   name,
		On:     true,
		Lumens: lumens,
		Color:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Pos:    math32.Vec3(0, 1, 1),
	}
}
