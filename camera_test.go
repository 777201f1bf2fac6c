// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraDefaults(t *testing.T) {
	cm := Camera{}
	cm.Defaults()
	assert.Equal(t, float32(35), cm.FOV)
	assert.Equal(t, math32.Vec3(0, 1, 0), cm.UpDir)
	assert.Equal(t, math32.Vector3{}, cm.Target)
	assert.Equal(t, cameraDelta, cm.Pos)
}

func TestCameraFollow(t *testing.T) {
	sc := newTestScene(t)
	require.NoError(t, sc.AddThought(testRecord(1)))
	nd, _ := sc.Node(1)
	require.True(t, sc.Anims.Active(cameraKey))

	// run frames past the follow duration
	now := frameT0
	for range 60 {
		now = now.Add(frameInterval)
		sc.Loop.Frame(now)
	}
	assert.False(t, sc.Anims.Active(cameraKey))
	assert.Equal(t, nd.Base, sc.Camera.Target)
	assert.Equal(t, cameraOffset(nd.Base), sc.Camera.Pos)
}

func TestCameraFollowSupersession(t *testing.T) {
	sc := newTestScene(t)
	require.NoError(t, sc.AddThought(testRecord(1)))

	// advance partway through the first follow
	sc.Loop.Frame(frameT0)
	sc.Loop.Frame(frameT0.Add(cameraFollowTime / 2))
	midPos := sc.Camera.Pos
	assert.NotEqual(t, cameraDelta, midPos)

	// a second thought restarts the camera from its current
	// interpolated pose, not a stale start point
	require.NoError(t, sc.AddThought(testRecord(2)))
	sc.Loop.Frame(frameT0.Add(cameraFollowTime/2 + frameInterval))
	moved := sc.Camera.Pos.Sub(midPos).Length()
	assert.Less(t, moved, float32(2), "camera must not jump on supersession")

	nd2, _ := sc.Node(2)
	now := frameT0.Add(cameraFollowTime / 2)
	for range 60 {
		now = now.Add(frameInterval)
		sc.Loop.Frame(now)
	}
	assert.Equal(t, nd2.Base, sc.Camera.Target)
}

func TestSaveSetCamera(t *testing.T) {
	sc := newTestScene(t)
	sc.SaveCamera("default")
	require.NoError(t, sc.AddThought(testRecord(1)))
	now := frameT0
	for range 60 {
		now = now.Add(frameInterval)
		sc.Loop.Frame(now)
	}
	require.NotEqual(t, math32.Vector3{}, sc.Camera.Target)

	require.NoError(t, sc.SetCamera("default"))
	assert.Equal(t, math32.Vector3{}, sc.Camera.Target)
	assert.Error(t, sc.SetCamera("nope"))
}

func TestCameraFollowElapsedClock(t *testing.T) {
	// follow completes based on elapsed time from its first step, so a
	// sparse frame schedule still converges
	sc := newTestScene(t)
	require.NoError(t, sc.AddThought(testRecord(1)))
	nd, _ := sc.Node(1)
	sc.Loop.Frame(frameT0)
	sc.Loop.Frame(frameT0.Add(2 * cameraFollowTime))
	sc.Loop.Frame(frameT0.Add(3 * cameraFollowTime))
	assert.Equal(t, nd.Base, sc.Camera.Target)
	assert.False(t, sc.Anims.Active(cameraKey))
}
