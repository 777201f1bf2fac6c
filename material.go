// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image/color"
)

// Material contains the surface properties of a rendered shape.
type Material struct {
	// Color is the main surface color; the alpha component determines
	// transparency.
	Color color.RGBA

	// Emissive is color emitted independent of lighting (glow).
	Emissive color.RGBA

	// Shiny is the specular shininess exponent.
	Shiny float32

	// Bright is an overall multiplier on the final computed color.
	Bright float32

	disposed bool
}

// Defaults sets default material parameters.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	mt.Shiny = 30
	mt.Bright = 1
}

// NewMaterial returns a material with defaults and the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// IsTransparent returns whether the surface color has transparency.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}

// Dispose releases any render-side state for the material. Idempotent.
func (mt *Material) Dispose() {
	if mt.disposed {
		return
	}
	mt.disposed = true
}

// IsDisposed returns whether Dispose has been called.
func (mt *Material) IsDisposed() bool {
	return mt.disposed
}
