// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image"
)

// Surface is the renderable viewport handle given to [Scene.Initialize].
// A real implementation wraps a window or offscreen frame from the
// external render library.
type Surface interface {
	// Size returns the current pixel size of the surface.
	Size() image.Point
}

// Renderer is the external draw primitive. The render loop is the only
// caller of Render; no other component draws directly. The scene passes
// itself as the frame state: the renderer reads whatever the mutable
// scene graph currently contains, with no knowledge of animation
// internals.
type Renderer interface {
	// Init binds the renderer to the given surface.
	Init(surf Surface) error

	// SetSize updates the render target size after a viewport resize.
	SetSize(sz image.Point)

	// Render draws the scene's current frame state.
	Render(sc *Scene) error

	// Release frees the surface binding and all renderer-side state.
	Release()
}

// FixedSurface is a [Surface] with a static size, for offscreen and
// test use.
type FixedSurface struct {
	Sz image.Point
}

func (fs *FixedSurface) Size() image.Point {
	return fs.Sz
}

// NoopRenderer is a [Renderer] that draws nothing, counting frames only.
// It serves headless operation and tests.
type NoopRenderer struct {
	// Frames is the number of Render calls since Init.
	Frames int

	surf Surface
}

func (nr *NoopRenderer) Init(surf Surface) error {
	nr.surf = surf
	nr.Frames = 0
	return nil
}

func (nr *NoopRenderer) SetSize(sz image.Point) {}

func (nr *NoopRenderer) Render(sc *Scene) error {
	nr.Frames++
	return nil
}

func (nr *NoopRenderer) Release() {
	nr.surf = nil
}
