// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"log/slog"
	"time"
)

// LoopState is the render loop state.
type LoopState int32

const (
	// Running means frames are being advanced and drawn.
	Running LoopState = iota

	// Paused means the host view is not visible; no frames are drawn
	// and no animation time accumulates.
	Paused

	// Stopped means the loop has been terminated by Dispose.
	Stopped
)

func (ls LoopState) String() string {
	switch ls {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	}
	return "invalid"
}

// frameInterval is the target frame period of the background driver.
const frameInterval = 16 * time.Millisecond

// RenderLoop is the single continuously running frame driver. Each
// running tick applies idle oscillation, advances the animation table,
// refreshes edge endpoints, and draws the scene. It is the only caller
// of the underlying [Renderer]; it knows nothing of animation internals
// beyond stepping the [Animator].
type RenderLoop struct {
	sc *Scene

	// state transitions: Running <-> Paused via SetVisible, -> Stopped
	// via Stop. Guarded by the scene mutex.
	state LoopState

	// lastTick is the previous frame time; zero forces a zero delta on
	// the next frame, which is how resume avoids applying the whole
	// pause duration at once.
	lastTick time.Time

	// t is the accumulated animation time in seconds, the input to the
	// idle oscillation. It only advances while Running.
	t float32

	frames     int
	statsStart time.Time

	panicLogged bool
	renderErrs  int

	quit chan struct{}
}

// NewRenderLoop returns a loop for the given scene, in the Running
// state but not yet started.
func NewRenderLoop(sc *Scene) *RenderLoop {
	return &RenderLoop{sc: sc, state: Running}
}

// Start launches the background frame driver. It is a no-op if the
// loop is already started or stopped.
func (rl *RenderLoop) Start() {
	rl.sc.mu.Lock()
	defer rl.sc.mu.Unlock()
	if rl.quit != nil || rl.state == Stopped {
		return
	}
	rl.quit = make(chan struct{})
	go rl.run(rl.quit)
}

func (rl *RenderLoop) run(quit chan struct{}) {
	tick := time.NewTicker(frameInterval)
	defer tick.Stop()
	for {
		select {
		case <-quit:
			return
		case now := <-tick.C:
			rl.Frame(now)
		}
	}
}

// Stop terminates the frame driver permanently.
func (rl *RenderLoop) Stop() {
	rl.sc.mu.Lock()
	defer rl.sc.mu.Unlock()
	rl.state = Stopped
	if rl.quit != nil {
		close(rl.quit)
		rl.quit = nil
	}
}

// SetVisible transitions the loop between Running and Paused as the
// host view is shown or hidden. Resuming resets the elapsed-time
// baseline so the first frame after resume sees a zero delta rather
// than the entire hidden interval.
func (rl *RenderLoop) SetVisible(visible bool) {
	rl.sc.mu.Lock()
	defer rl.sc.mu.Unlock()
	if rl.state == Stopped {
		return
	}
	if visible && rl.state == Paused {
		rl.state = Running
		rl.lastTick = time.Time{}
	} else if !visible && rl.state == Running {
		rl.state = Paused
	}
}

// State returns the current loop state.
func (rl *RenderLoop) State() LoopState {
	rl.sc.mu.Lock()
	defer rl.sc.mu.Unlock()
	return rl.state
}

// Frame advances and draws one frame at the given time. The background
// driver calls this every tick; tests may call it directly with a
// synthetic clock. A Paused or Stopped loop does nothing.
func (rl *RenderLoop) Frame(now time.Time) {
	sc := rl.sc
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if rl.state != Running || sc.disposed {
		return
	}

	rl.advance(now)
	rl.render()
	rl.frames++
	rl.sampleStats(now)
}

// recoverPanic contains a panic from any per-frame phase so a faulting
// step or renderer can never crash the loop across a frame boundary.
// Deferred by [RenderLoop.advance] and [RenderLoop.render].
func (rl *RenderLoop) recoverPanic() {
	if r := recover(); r != nil {
		if !rl.panicLogged {
			rl.panicLogged = true
			slog.Error("chainviz: panic during frame", "panic", r)
		}
	}
}

// render draws whatever state exists, even if an update step faulted.
func (rl *RenderLoop) render() {
	defer rl.recoverPanic()
	sc := rl.sc
	if sc.renderer == nil {
		return
	}
	if err := sc.renderer.Render(sc); err != nil {
		rl.renderErrs++
		if rl.renderErrs == 1 {
			slog.Error("chainviz: render failed", "error", err)
		}
	}
}

// advance runs the per-frame update steps.
func (rl *RenderLoop) advance(now time.Time) {
	defer rl.recoverPanic()

	sc := rl.sc
	var dt time.Duration
	if !rl.lastTick.IsZero() {
		dt = now.Sub(rl.lastTick)
	}
	rl.lastTick = now
	rl.t += float32(dt.Seconds())

	// Idle oscillation: data-driven iteration over the node records,
	// always computed fresh from each node's stored base.
	for _, kv := range sc.Nodes.Order {
		kv.Value.oscillate(rl.t)
	}

	sc.Anims.Step(now)
	sc.refreshEdges()
	sc.applyPendingResize(now)
}

// sampleStats refreshes the once-per-second observability counters.
func (rl *RenderLoop) sampleStats(now time.Time) {
	sc := rl.sc
	if rl.statsStart.IsZero() {
		rl.statsStart = now
		rl.frames = 0
		return
	}
	el := now.Sub(rl.statsStart)
	if el < time.Second {
		return
	}
	sc.stats = Stats{
		FPS:         float64(rl.frames) / el.Seconds(),
		NodeCount:   sc.Nodes.Len(),
		EdgeCount:   len(sc.Edges),
		MemoryBytes: sc.memoryEstimateLocked(),
		Updated:     now,
	}
	if sc.metrics != nil {
		sc.metrics.update(sc.stats)
	}
	rl.statsStart = now
	rl.frames = 0
}
