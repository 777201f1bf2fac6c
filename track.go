// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

// Disposable is a graphics resource (geometry, material) that can release
// its underlying storage. Dispose must be idempotent: a second call is a
// no-op. All Disposables retained by the scene are registered with the
// [ResourceTracker] so that a full clear releases each exactly once.
type Disposable interface {
	Dispose()
}

// ResourceTracker is a set-based registry of every disposable resource
// currently retained by the scene. Set semantics make tracking the same
// resource twice a no-op, so double-dispose on release is structurally
// impossible rather than merely caught.
type ResourceTracker struct {
	active map[Disposable]struct{}

	// OnRelease, if set, is called after ReleaseAll has disposed and
	// emptied the set, so dependents can re-seed fixed scene elements
	// (origin anchor, lights) before any new node is created.
	OnRelease func()
}

// NewResourceTracker returns an empty tracker.
func NewResourceTracker() *ResourceTracker {
	return &ResourceTracker{active: make(map[Disposable]struct{})}
}

// Track adds a disposable to the active set. Tracking a resource that is
// already present is a no-op.
func (rt *ResourceTracker) Track(rs Disposable) {
	if rs == nil {
		return
	}
	rt.active[rs] = struct{}{}
}

// Tracks registers multiple disposables at once.
func (rt *ResourceTracker) Tracks(rss ...Disposable) {
	for _, rs := range rss {
		rt.Track(rs)
	}
}

// Untrack removes a resource from the active set without disposing it.
func (rt *ResourceTracker) Untrack(rs Disposable) {
	delete(rt.active, rs)
}

// Len returns the number of resources currently tracked.
func (rt *ResourceTracker) Len() int {
	return len(rt.active)
}

// ReleaseAll disposes every tracked resource exactly once, empties the
// set, and then calls OnRelease. The caller must have already unlinked
// all nodes and edges from the scene graph: no resource may be disposed
// while a live node still renders with it.
func (rt *ResourceTracker) ReleaseAll() {
	for rs := range rt.active {
		rs.Dispose()
	}
	clear(rt.active)
	if rt.OnRelease != nil {
		rt.OnRelease()
	}
}
