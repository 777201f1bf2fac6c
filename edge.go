// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Connection rendering parameters.
const (
	// EdgePoints is the number of samples along each connection curve.
	EdgePoints = 20

	// edgeLift raises the bezier control point above the chord midpoint.
	edgeLift = 2.5
)

// Edge gradient hues, blended per-point along the curve.
var (
	edgeStartColor = color.RGBA{R: 0x29, G: 0xb6, B: 0xf6, A: 0xff} // cyan-blue
	edgeEndColor   = color.RGBA{R: 0x7e, G: 0x57, B: 0xc2, A: 0xff} // violet
)

// ConnectionEdge is the curved, color-graded link between two nodes.
// Exactly one edge exists per non-root node; edges are destroyed only by
// a full scene clear.
type ConnectionEdge struct {
	// FromID and ToID are the linked node ids. FromID 0 means the edge
	// anchors at the scene's fixed origin anchor.
	FromID int
	ToID   int

	// Ctrl is the elevated bezier control point, computed at creation.
	Ctrl math32.Vector3

	// Geom is the live line-strip position buffer that the renderer
	// draws; the reveal animation writes sampled points into it from
	// index 0 upward.
	Geom *Geometry

	// Mat carries the edge alpha derived from thought confidence.
	Mat *Material

	// Colors is the per-point gradient along the curve.
	Colors []color.RGBA

	// samples is the full sampled curve; Geom holds the revealed prefix.
	samples []math32.Vector3

	// Revealed is the progressive reveal cursor: the number of sampled
	// points currently present in the live buffer.
	Revealed int
}

// quadraticBezier evaluates the curve through start, ctrl, end at t.
func quadraticBezier(start, ctrl, end math32.Vector3, t float32) math32.Vector3 {
	u := 1 - t
	a := start.MulScalar(u * u)
	b := ctrl.MulScalar(2 * u * t)
	c := end.MulScalar(t * t)
	return a.Add(b).Add(c)
}

// edgeCtrl returns the elevated midpoint control for a chord.
func edgeCtrl(start, end math32.Vector3) math32.Vector3 {
	mid := start.Add(end).MulScalar(0.5)
	mid.Y += edgeLift
	return mid
}

// edgeAlpha maps thought confidence (0-100) to line alpha.
func edgeAlpha(confidence float32) uint8 {
	return uint8(120 + math32.Clamp(confidence, 0, 100)/100*135)
}

// newConnectionEdge samples the curve between the two nodes' current
// positions and builds the gradient. The live buffer starts empty; the
// reveal animation draws it in one point per tick.
func newConnectionEdge(from, to *VisualNode, confidence float32) *ConnectionEdge {
	ed := &ConnectionEdge{
		FromID: from.ID,
		ToID:   to.ID,
		Ctrl:   edgeCtrl(from.Pose.Pos, to.Base),
	}
	ed.samples = make([]math32.Vector3, EdgePoints)
	ed.Colors = make([]color.RGBA, EdgePoints)
	for i := range EdgePoints {
		t := float32(i) / float32(EdgePoints-1)
		ed.samples[i] = quadraticBezier(from.Pose.Pos, ed.Ctrl, to.Base, t)
		ed.Colors[i] = colors.Blend(colors.RGB, 100*(1-t), edgeStartColor, edgeEndColor)
	}
	ed.Geom = NewLineGeometry(edgeName(to.ID), EdgePoints)
	ed.Mat = NewMaterial(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: edgeAlpha(confidence)})
	return ed
}

// disposables returns the edge's owned resources.
func (ed *ConnectionEdge) disposables() []Disposable {
	return []Disposable{ed.Geom, ed.Mat}
}

// revealStep writes the next sampled point into the live buffer,
// returning false when the curve is fully revealed. It is the body of
// the edge's reveal animation.
func (ed *ConnectionEdge) revealStep() bool {
	if ed.Revealed >= EdgePoints {
		return false
	}
	ed.Geom.Vertex.SetVector3(ed.Revealed*3, ed.samples[ed.Revealed])
	ed.Revealed++
	return ed.Revealed < EdgePoints
}

// refreshEndpoints rewrites the live endpoint slots of the buffer from
// the linked nodes' current, possibly still-animating positions. This is
// a mandatory per-frame obligation: an edge that captured positions only
// at creation time silently desynchronizes from animated nodes. Only the
// endpoint slots are rewritten, not the full curve.
func (ed *ConnectionEdge) refreshEndpoints(from, to *VisualNode) {
	if ed.Revealed > 0 {
		ed.Geom.Vertex.SetVector3(0, from.Pose.Pos)
	}
	if ed.Revealed == EdgePoints {
		ed.Geom.Vertex.SetVector3((EdgePoints-1)*3, to.Pose.Pos)
	}
}

// Endpoint returns the buffer position at the given sample index.
func (ed *ConnectionEdge) Endpoint(i int) math32.Vector3 {
	return math32.Vec3(ed.Geom.Vertex[i*3], ed.Geom.Vertex[i*3+1], ed.Geom.Vertex[i*3+2])
}
