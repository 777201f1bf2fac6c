// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Pose is the spatial transform of a node: position and scale.
type Pose struct {
	Pos   math32.Vector3
	Scale math32.Vector3
}

// Defaults sets a unit scale at the origin.
func (ps *Pose) Defaults() {
	ps.Pos = math32.Vector3{}
	ps.Scale = math32.Vec3(1, 1, 1)
}

// Label is the 2D text billboard owned by a [VisualNode]. Each node owns
// exactly one label; disposal walks this statically known sub-object, not
// an open-ended child list.
type Label struct {
	// Text is the displayed string.
	Text string

	// Geom is the label's billboard plane.
	Geom *Geometry

	// Mat is the label's material (text texture stand-in).
	Mat *Material
}

// labelWidth scales the billboard to the text length, within limits.
func labelWidth(text string) float32 {
	w := float32(len(text)) * 0.3
	return math32.Clamp(w, 2, 12)
}

// NewLabel builds the label billboard for the given text.
func NewLabel(text string) *Label {
	lb := &Label{Text: text}
	lb.Geom = NewPlaneGeometry("label:"+text, labelWidth(text), 1)
	lb.Mat = NewMaterial(color.RGBA{R: 0xec, G: 0xef, B: 0xf1, A: 0xff})
	return lb
}

// VisualNode is the rendered form of one [ThoughtRecord]. It is created
// when its record arrives, owned by the scene for its lifetime, and
// destroyed only by a full scene clear.
type VisualNode struct {
	// ID equals the originating ThoughtRecord.ID.
	ID int

	// ChainPos is the 1-based ordinal of this node in arrival order.
	// It is assigned exactly once, from the scene's monotonic counter,
	// and is the single source of truth for layout. It is never
	// recomputed from live container indices.
	ChainPos int

	// Base is the layout position of the node. The render loop computes
	// the oscillated position relative to this fixed base every frame;
	// Base itself never changes after creation.
	Base math32.Vector3

	// Pose is the node's current transform, advanced by animations and
	// idle oscillation.
	Pose Pose

	// Geom and Mat are the node's owned disposables, registered with the
	// scene's ResourceTracker.
	Geom *Geometry
	Mat  *Material

	// Label is the node's owned text billboard.
	Label *Label

	// Color is the category display color.
	Color color.RGBA

	// phase offsets this node's idle oscillation so the chain shimmers
	// rather than bobbing in lockstep.
	phase float32
}

// nodeRadius derives the sphere radius from the thought weight (0-100).
func nodeRadius(weight float32) float32 {
	return 0.6 + math32.Clamp(weight, 0, 100)/100*0.9
}

// newVisualNode builds the mesh and label for an incoming record at the
// given chain position and base position. Resources are not yet tracked;
// the scene registers them after insertion.
func newVisualNode(rec ThoughtRecord, chainPos int, base math32.Vector3) *VisualNode {
	nd := &VisualNode{
		ID:       rec.ID,
		ChainPos: chainPos,
		Base:     base,
		Color:    rec.Category.Color(),
		phase:    float32(chainPos) * 0.7,
	}
	nd.Pose.Defaults()
	nd.Pose.Pos = base
	nd.Geom = NewSphereGeometry(nodeName(rec.ID), nodeRadius(rec.Weight), 16)
	nd.Mat = NewMaterial(nd.Color)
	nd.Mat.Emissive = color.RGBA{
		R: nd.Color.R / 4, G: nd.Color.G / 4, B: nd.Color.B / 4, A: 0xff,
	}
	nd.Label = NewLabel(rec.Text)
	return nd
}

// disposables returns the node's finite set of owned resources.
func (nd *VisualNode) disposables() []Disposable {
	return []Disposable{nd.Geom, nd.Mat, nd.Label.Geom, nd.Label.Mat}
}

// oscillate applies the idle oscillation for time t (seconds since the
// render loop baseline). The y position is always computed fresh from
// the stored base, never accumulated onto the live position.
func (nd *VisualNode) oscillate(t float32) {
	nd.Pose.Pos.Y = nd.Base.Y + oscAmplitude*math32.Sin(t*oscSpeed+nd.phase)
}

// Idle oscillation parameters.
const (
	oscAmplitude = 0.3
	oscSpeed     = 1.5
)
