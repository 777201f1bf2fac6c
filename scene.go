// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainviz renders a live, incrementally growing 3D chain of
// reasoning steps. An external producer feeds [ThoughtRecord]s to
// [Scene.AddThought] one at a time; each becomes a labeled node linked
// to its predecessor with an animated curved connection, while the
// camera smoothly follows the head of the chain.
//
// The actual draw primitive and orbit controls are external, behind the
// [Renderer] and [Surface] interfaces. The scene owns everything else:
// resource lifetime across clear/rebuild cycles, the per-entity keyed
// animation table, the deterministic chain layout, and the continuously
// running render loop.
package chainviz

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
)

// Animation ownership keys. At most one animation is live per key; see
// [Animator].
const cameraKey = "camera"

func nodeName(id int) string {
	return "node:" + strconv.Itoa(id)
}

func edgeName(id int) string {
	return "edge:" + strconv.Itoa(id)
}

// Node appearance animation parameters.
const (
	nodeAppearTime   = 600 * time.Millisecond
	appearStartScale = 0.01
)

// resizeDebounce is the minimum interval between resize applications;
// resize events inside the window are coalesced to the latest size.
const resizeDebounce = 150 * time.Millisecond

// Scene is the incremental scene/animation engine. All state is guarded
// by a single mutex: producer calls, animation steps, and render ticks
// all serialize through it, so ordering is the only concurrency concern.
type Scene struct {
	// Nodes holds all visual nodes keyed by thought id, in arrival order.
	Nodes ordmap.Map[int, *VisualNode]

	// Edges holds one connection per non-root node, in arrival order.
	Edges []*ConnectionEdge

	// Tracker owns the disposal of every graphics resource in the scene.
	Tracker *ResourceTracker

	// Anims is the per-entity keyed animation table.
	Anims *Animator

	// Camera is the current viewpoint, animated by camera tracking.
	Camera Camera

	// Lights are the fixed scene lights, re-seeded after every clear.
	Lights []*Light

	// Layout maps chain positions to base coordinates. It is fixed at
	// construction; switching layouts mid-chain is not supported.
	Layout Layout

	// Loop is the frame driver, created by Initialize.
	Loop *RenderLoop

	renderer Renderer
	surface  Surface

	// anchor is the fixed origin node that root thoughts link to.
	anchor *VisualNode

	// chainPos is the monotonic chain position counter. It is the single
	// source of truth for layout ordering and is never derived from the
	// live node container, which would drift across partial rebuilds.
	chainPos int

	savedCams map[string]Camera

	// resize debouncing state
	lastResize  time.Time
	pendingSize *image.Point
	resizeCount int

	stats   Stats
	metrics *Metrics

	// nowFn is the clock, replaceable in tests.
	nowFn func() time.Time

	initialized bool
	disposed    bool

	mu sync.Mutex
}

// NewScene returns a scene with default camera, chain layout, and empty
// registries. Call [Scene.Initialize] before feeding thoughts.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Tracker = NewResourceTracker()
	sc.Anims = NewAnimator()
	sc.Camera.Defaults()
	sc.Layout = ChainLayout{}
	sc.nowFn = time.Now
	return sc
}

// SetLayout selects the layout strategy. It must be called before the
// first AddThought; changing layout on a populated scene is rejected.
func (sc *Scene) SetLayout(ly Layout) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.Nodes.Len() > 0 {
		return fmt.Errorf("chainviz.Scene: cannot switch layout mid-chain (%d nodes present)", sc.Nodes.Len())
	}
	sc.Layout = ly
	return nil
}

// Initialize performs one-time setup, binding the scene to a renderable
// surface. A nil or zero-size surface fails with
// [ViewportUnavailableError]; the scene does not retry. A nil renderer
// defaults to [NoopRenderer] for headless use.
func (sc *Scene) Initialize(surf Surface, rend Renderer) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.disposed {
		return &ViewportUnavailableError{Reason: "scene is disposed"}
	}
	if sc.initialized {
		return &ViewportUnavailableError{Reason: "already initialized"}
	}
	if surf == nil {
		return &ViewportUnavailableError{Reason: "nil surface"}
	}
	if sz := surf.Size(); sz.X <= 0 || sz.Y <= 0 {
		return &ViewportUnavailableError{Reason: fmt.Sprintf("zero-size surface: %v", sz)}
	}
	if rend == nil {
		rend = &NoopRenderer{}
	}
	if err := rend.Init(surf); err != nil {
		return &ViewportUnavailableError{Reason: err.Error()}
	}
	sc.surface = surf
	sc.renderer = rend
	sc.Tracker.OnRelease = sc.seedFixed
	sc.seedFixed()
	sc.Loop = NewRenderLoop(sc)
	sc.initialized = true
	return nil
}

// seedFixed creates the fixed scene elements: the origin anchor node and
// the lights. It runs at initialization and again after every
// ReleaseAll, so the anchor always exists before any new node does.
func (sc *Scene) seedFixed() {
	rec := ThoughtRecord{ID: 0, Text: "origin", Category: -1, Weight: 20}
	sc.anchor = newVisualNode(rec, 0, math32.Vector3{})
	sc.Tracker.Tracks(sc.anchor.disposables()...)
	sc.Lights = []*Light{
		newAmbientLight("ambient", 0.3),
		newDirLight("directional", 1),
	}
}

// AddThought accepts one reasoning step and grows the chain: it assigns
// the next chain position, creates the node and its appearance
// animation, links it with an animated connection, and retargets the
// camera. Node creation is synchronous and cheap; the animations play
// out independently per entity, so a fast producer never blocks on a
// slow visual reveal.
//
// A duplicate id is rejected with [DuplicateNodeError] and leaves the
// scene unchanged. An unknown ParentID is not an error: the connection
// degrades to the origin anchor.
func (sc *Scene) AddThought(rec ThoughtRecord) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.initialized || sc.disposed {
		return &ViewportUnavailableError{Reason: "scene not initialized"}
	}
	if rec.ID == 0 {
		return &DuplicateNodeError{ID: rec.ID} // 0 is the origin anchor
	}
	if _, ok := sc.Nodes.ValueByKeyTry(rec.ID); ok {
		err := &DuplicateNodeError{ID: rec.ID}
		slog.Error("chainviz: AddThought rejected", "error", err)
		return err
	}

	from := sc.linkFrom(rec)

	sc.chainPos++
	nd := newVisualNode(rec, sc.chainPos, sc.Layout.PositionFor(sc.chainPos))
	sc.Tracker.Tracks(nd.disposables()...)
	sc.Nodes.Add(rec.ID, nd)
	sc.startAppear(nd)

	ed := newConnectionEdge(from, nd, rec.Confidence)
	sc.Tracker.Tracks(ed.disposables()...)
	sc.Edges = append(sc.Edges, ed)
	sc.Anims.Start(edgeName(nd.ID), func(time.Duration) bool {
		return ed.revealStep()
	}, nil)

	sc.followTo(nd.Base)
	return nil
}

// linkFrom resolves the node a new record's connection starts from: the
// explicit parent when known, the most recent node when no parent is
// given, and the origin anchor otherwise.
func (sc *Scene) linkFrom(rec ThoughtRecord) *VisualNode {
	if rec.ParentID != 0 {
		if pn, ok := sc.Nodes.ValueByKeyTry(rec.ParentID); ok {
			return pn
		}
		slog.Warn("chainviz: unknown parent; linking to origin",
			"id", rec.ID, "parent", rec.ParentID)
		return sc.anchor
	}
	if n := sc.Nodes.Len(); n > 0 {
		return sc.Nodes.ValueByIndex(n - 1)
	}
	return sc.anchor
}

// startAppear animates the node scaling in from near zero with an
// overshoot-and-settle curve, under the node's ownership key.
func (sc *Scene) startAppear(nd *VisualNode) {
	nd.Pose.Scale = math32.Vector3Scalar(appearStartScale)
	sc.Anims.Start(nodeName(nd.ID), func(elapsed time.Duration) bool {
		p := animProgress(elapsed, nodeAppearTime)
		s := appearStartScale + (1-appearStartScale)*easeOutBack(p)
		nd.Pose.Scale = math32.Vector3Scalar(s)
		if p >= 1 {
			nd.Pose.Scale = math32.Vec3(1, 1, 1)
			return false
		}
		return true
	}, func() {
		// superseded or cleared: settle at final scale
		nd.Pose.Scale = math32.Vec3(1, 1, 1)
	})
}

// ClearScene removes every node and edge, cancels all animations,
// disposes all tracked resources exactly once, resets the chain counter,
// and returns the camera to the default anchor. The fixed elements are
// re-seeded before the call returns.
func (sc *Scene) ClearScene() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.clearLocked()
}

func (sc *Scene) clearLocked() {
	sc.Anims.CancelAll()
	// unlink from the scene graph first, then dispose
	sc.Nodes.Reset()
	sc.Edges = nil
	sc.anchor = nil
	sc.Lights = nil
	sc.Tracker.ReleaseAll() // re-seeds via OnRelease
	sc.chainPos = 0
	sc.Camera.DefaultPose()
}

// Replay clears the scene and feeds the given records in order. Layout
// determinism guarantees the rebuilt chain reproduces the original base
// positions exactly.
func (sc *Scene) Replay(recs []ThoughtRecord) error {
	sc.ClearScene()
	for _, rec := range recs {
		if err := sc.AddThought(rec); err != nil {
			return err
		}
	}
	return nil
}

// Dispose terminates the render loop and releases the surface binding.
// It is irreversible: the scene rejects all further operations.
func (sc *Scene) Dispose() {
	sc.mu.Lock()
	if sc.disposed {
		sc.mu.Unlock()
		return
	}
	sc.disposed = true
	sc.Tracker.OnRelease = nil
	sc.Anims.CancelAll()
	sc.Nodes.Reset()
	sc.Edges = nil
	sc.anchor = nil
	sc.Lights = nil
	sc.Tracker.ReleaseAll()
	rend := sc.renderer
	sc.renderer = nil
	sc.surface = nil
	loop := sc.Loop
	sc.mu.Unlock()

	if loop != nil {
		loop.Stop()
	}
	if rend != nil {
		rend.Release()
	}
}

// SetSize handles a viewport resize. Resize events are high-frequency
// and cheap to coalesce, so applications are debounced to at most one
// per 150ms window; the latest size always wins.
func (sc *Scene) SetSize(sz image.Point) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	now := sc.nowFn()
	if now.Sub(sc.lastResize) >= resizeDebounce {
		sc.applySize(sz, now)
		return
	}
	sc.pendingSize = &sz
}

// applyPendingResize flushes a coalesced resize once its debounce window
// has passed; called each frame by the render loop.
func (sc *Scene) applyPendingResize(now time.Time) {
	if sc.pendingSize == nil || now.Sub(sc.lastResize) < resizeDebounce {
		return
	}
	sz := *sc.pendingSize
	sc.pendingSize = nil
	sc.applySize(sz, now)
}

func (sc *Scene) applySize(sz image.Point, now time.Time) {
	sc.lastResize = now
	// An immediate apply supersedes any size still waiting out a prior
	// window; flushing it later would overwrite this newer size.
	sc.pendingSize = nil
	sc.resizeCount++
	if sc.renderer != nil {
		sc.renderer.SetSize(sz)
	}
}

// refreshEdges synchronizes every edge's endpoints with its nodes'
// current positions; runs every frame.
func (sc *Scene) refreshEdges() {
	for _, ed := range sc.Edges {
		from := sc.anchor
		if ed.FromID != 0 {
			if fn, ok := sc.Nodes.ValueByKeyTry(ed.FromID); ok {
				from = fn
			}
		}
		to, ok := sc.Nodes.ValueByKeyTry(ed.ToID)
		if !ok || from == nil {
			continue
		}
		ed.refreshEndpoints(from, to)
	}
}

// Node returns the visual node for the given thought id.
func (sc *Scene) Node(id int) (*VisualNode, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.Nodes.ValueByKeyTry(id)
}

// GetChainLength returns the number of nodes currently in the chain.
func (sc *Scene) GetChainLength() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.Nodes.Len()
}

// GetMemoryEstimate returns a heuristic byte count proportional to the
// node and edge populations. It is for display only, not exact
// accounting, and drives no internal decision.
func (sc *Scene) GetMemoryEstimate() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.memoryEstimateLocked()
}

func (sc *Scene) memoryEstimateLocked() int {
	const nodeOverhead = 256
	const edgeOverhead = 128
	total := 0
	for _, kv := range sc.Nodes.Order {
		nd := kv.Value
		total += len(nd.Geom.Vertex)*4 + len(nd.Label.Geom.Vertex)*4 + nodeOverhead
	}
	for _, ed := range sc.Edges {
		total += len(ed.Geom.Vertex)*4 + len(ed.Colors)*4 + edgeOverhead
	}
	return total
}
