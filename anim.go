// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"time"

	"cogentcore.org/core/math32"
)

// StepFunc advances one procedural animation. elapsed is the time since
// the animation's first step. Returning false completes the animation
// and removes its handle from the [Animator].
type StepFunc func(elapsed time.Duration) bool

// animHandle is one in-flight animation, owned by exactly one key.
type animHandle struct {
	key      string
	step     StepFunc
	cancel   func()
	start    time.Time
	started  bool
	canceled bool
}

// doCancel invokes the cancel callback exactly once.
func (ah *animHandle) doCancel() {
	if ah.canceled {
		return
	}
	ah.canceled = true
	if ah.cancel != nil {
		ah.cancel()
	}
}

// Animator is a keyed table of in-flight procedural animations,
// guaranteeing at most one live animation per owner key. Keys identify
// the animated entity ("node:<id>", "edge:<id>", "camera"); starting an
// animation for a key that already has one cancels the existing one
// first, at this single mutation point rather than by caller discipline.
//
// All methods must be called from the scene's event context (under the
// scene mutex); the Animator itself does no locking.
type Animator struct {
	handles map[string]*animHandle
}

// NewAnimator returns an empty animator.
func NewAnimator() *Animator {
	return &Animator{handles: make(map[string]*animHandle)}
}

// Start begins an animation under the given key, superseding and
// canceling any animation already live for that key. cancel may be nil;
// when non-nil it is invoked exactly once if the animation is superseded
// or the animator is cleared before the step function returns false.
func (an *Animator) Start(key string, step StepFunc, cancel func()) {
	if old, ok := an.handles[key]; ok {
		old.doCancel()
	}
	an.handles[key] = &animHandle{key: key, step: step, cancel: cancel}
}

// Cancel cancels and removes the animation for the given key, if any.
func (an *Animator) Cancel(key string) {
	if ah, ok := an.handles[key]; ok {
		ah.doCancel()
		delete(an.handles, key)
	}
}

// CancelAll synchronously cancels every outstanding animation. No step
// function runs after CancelAll returns; used on full scene clear.
func (an *Animator) CancelAll() {
	for _, ah := range an.handles {
		ah.doCancel()
	}
	clear(an.handles)
}

// Step advances every live animation once, using now to compute each
// animation's elapsed time from its first step. Handles whose step
// function returns false are removed.
func (an *Animator) Step(now time.Time) {
	var done []*animHandle
	for _, ah := range an.handles {
		if ah.canceled {
			continue
		}
		if !ah.started {
			ah.started = true
			ah.start = now
		}
		if !ah.step(now.Sub(ah.start)) {
			done = append(done, ah)
		}
	}
	for _, ah := range done {
		// A step function may have started a replacement under the
		// same key; only remove the handle we just completed.
		if cur, ok := an.handles[ah.key]; ok && cur == ah {
			delete(an.handles, ah.key)
		}
	}
}

// Active returns whether an animation is live for the given key.
func (an *Animator) Active(key string) bool {
	_, ok := an.handles[key]
	return ok
}

// Len returns the number of live animations.
func (an *Animator) Len() int {
	return len(an.handles)
}

////////////////////////////////////////////////////////////////
//  Easing

// easeOutBack overshoots past 1 and settles back, so simultaneous node
// arrivals during replay remain visually distinguishable.
func easeOutBack(x float32) float32 {
	const c1 = 1.70158
	const c3 = c1 + 1
	xm := x - 1
	return 1 + c3*xm*xm*xm + c1*xm*xm
}

// easeInOutCubic is the standard symmetric ease used for camera moves.
func easeInOutCubic(x float32) float32 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	xm := -2*x + 2
	return 1 - xm*xm*xm/2
}

// animProgress clamps elapsed/duration to [0, 1].
func animProgress(elapsed, duration time.Duration) float32 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return math32.Clamp(float32(elapsed)/float32(duration), 0, 1)
}
