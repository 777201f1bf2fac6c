// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"cogentcore.org/core/math32"
)

// Geometry holds the vertex data for one renderable shape. Only the
// position buffer is modeled here; the render primitive behind
// [Renderer] owns any GPU-side mirror of it.
type Geometry struct {
	// Name identifies the geometry for debugging.
	Name string

	// Vertex is the flat x,y,z position buffer.
	Vertex math32.ArrayF32

	disposed bool
}

// NumVertex returns the number of 3D points in the position buffer.
func (ge *Geometry) NumVertex() int {
	return len(ge.Vertex) / 3
}

// Dispose releases the vertex storage. Idempotent.
func (ge *Geometry) Dispose() {
	if ge.disposed {
		return
	}
	ge.disposed = true
	ge.Vertex = nil
}

// IsDisposed returns whether Dispose has been called.
func (ge *Geometry) IsDisposed() bool {
	return ge.disposed
}

// NewSphereGeometry builds a latitude/longitude sphere position buffer
// with the given radius and number of segments (minimum 3).
func NewSphereGeometry(name string, radius float32, segs int) *Geometry {
	if segs < 3 {
		segs = 3
	}
	ge := &Geometry{Name: name}
	ge.Vertex = make(math32.ArrayF32, 0, (segs+1)*(segs+1)*3)
	for lat := 0; lat <= segs; lat++ {
		theta := float32(lat) * math32.Pi / float32(segs)
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		for lon := 0; lon <= segs; lon++ {
			phi := float32(lon) * 2 * math32.Pi / float32(segs)
			ge.Vertex = append(ge.Vertex,
				radius*sinT*math32.Cos(phi),
				radius*cosT,
				radius*sinT*math32.Sin(phi),
			)
		}
	}
	return ge
}

// NewPlaneGeometry builds a unit plane of the given width and height,
// centered on the origin with a +z normal; used for label billboards.
func NewPlaneGeometry(name string, width, height float32) *Geometry {
	w, h := width/2, height/2
	return &Geometry{
		Name: name,
		Vertex: math32.ArrayF32{
			-w, -h, 0,
			w, -h, 0,
			w, h, 0,
			-w, h, 0,
		},
	}
}

// NewLineGeometry builds an empty position buffer for a line strip of
// numPoints points; the connection reveal animation fills it in.
func NewLineGeometry(name string, numPoints int) *Geometry {
	return &Geometry{
		Name:   name,
		Vertex: make(math32.ArrayF32, numPoints*3),
	}
}
