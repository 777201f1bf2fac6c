// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimatorSingleLivePerKey(t *testing.T) {
	an := NewAnimator()
	canceled := 0
	an.Start("node:1", func(time.Duration) bool { return true }, func() { canceled++ })
	assert.Equal(t, 1, an.Len())

	// superseding must cancel the old handle exactly once
	an.Start("node:1", func(time.Duration) bool { return true }, nil)
	assert.Equal(t, 1, an.Len())
	assert.Equal(t, 1, canceled)

	an.Start("node:1", func(time.Duration) bool { return true }, nil)
	assert.Equal(t, 1, canceled)
}

func TestAnimatorStepElapsed(t *testing.T) {
	an := NewAnimator()
	var got []time.Duration
	an.Start("k", func(elapsed time.Duration) bool {
		got = append(got, elapsed)
		return elapsed < 30*time.Millisecond
	}, nil)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	an.Step(t0)
	an.Step(t0.Add(16 * time.Millisecond))
	an.Step(t0.Add(32 * time.Millisecond))
	assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 32 * time.Millisecond}, got)
	assert.Equal(t, 0, an.Len())

	// nothing left to step
	an.Step(t0.Add(48 * time.Millisecond))
	assert.Len(t, got, 3)
}

func TestAnimatorCancelAll(t *testing.T) {
	an := NewAnimator()
	canceled := 0
	stepped := 0
	for _, key := range []string{"node:1", "edge:1", "camera"} {
		an.Start(key, func(time.Duration) bool {
			stepped++
			return true
		}, func() { canceled++ })
	}
	an.CancelAll()
	assert.Equal(t, 3, canceled)
	assert.Equal(t, 0, an.Len())

	// no animation may fire after CancelAll returns
	an.Step(time.Now())
	assert.Equal(t, 0, stepped)
}

func TestAnimatorCancelKey(t *testing.T) {
	an := NewAnimator()
	canceled := 0
	an.Start("camera", func(time.Duration) bool { return true }, func() { canceled++ })
	an.Cancel("camera")
	assert.Equal(t, 1, canceled)
	assert.False(t, an.Active("camera"))

	// cancel of an absent key is a no-op
	an.Cancel("camera")
	assert.Equal(t, 1, canceled)
}

func TestAnimatorRestartDuringStep(t *testing.T) {
	an := NewAnimator()
	restarted := false
	an.Start("k", func(time.Duration) bool {
		if !restarted {
			restarted = true
			an.Start("k", func(time.Duration) bool { return true }, nil)
		}
		return false // old handle completes, replacement must survive
	}, nil)
	an.Step(time.Now())
	assert.True(t, an.Active("k"))
}

func TestEaseOutBackEndpoints(t *testing.T) {
	assert.InDelta(t, 0, easeOutBack(0), 1e-5)
	assert.InDelta(t, 1, easeOutBack(1), 1e-5)
	// overshoots past 1 in the latter half
	assert.Greater(t, easeOutBack(0.75), float32(1))
}

func TestEaseInOutCubicEndpoints(t *testing.T) {
	assert.InDelta(t, 0, easeInOutCubic(0), 1e-5)
	assert.InDelta(t, 0.5, easeInOutCubic(0.5), 1e-5)
	assert.InDelta(t, 1, easeInOutCubic(1), 1e-5)
}

func TestAnimProgress(t *testing.T) {
	d := 100 * time.Millisecond
	assert.Equal(t, float32(0), animProgress(0, d))
	assert.Equal(t, float32(0.5), animProgress(50*time.Millisecond, d))
	assert.Equal(t, float32(1), animProgress(d, d))
	assert.Equal(t, float32(1), animProgress(2*d, d))
	assert.Equal(t, float32(1), animProgress(d, 0))
}
