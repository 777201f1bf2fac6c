// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"fmt"
	"time"

	"cogentcore.org/core/math32"
)

// Camera defines the viewpoint onto the scene: position, orbit target,
// and projection parameters. The orbit-control / projection math itself
// belongs to the external render library; the scene only animates the
// pose.
type Camera struct {
	// Pos is the camera position.
	Pos math32.Vector3

	// Target is the orbit target the camera points at.
	Target math32.Vector3

	// UpDir is the up direction, default positive Y.
	UpDir math32.Vector3

	// FOV is the field of view in degrees.
	FOV float32

	// Near and Far are the clip plane distances.
	Near float32
	Far  float32
}

// Defaults sets standard camera parameters and the default pose.
func (cm *Camera) Defaults() {
	cm.FOV = 35
	cm.Near = 0.01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera to the default anchor view: looking at
// the origin from behind-and-above.
func (cm *Camera) DefaultPose() {
	cm.Pos = cameraOffset(math32.Vector3{})
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// Camera tracking parameters.
const (
	// cameraFollowTime is the duration of one camera follow animation.
	cameraFollowTime = 800 * time.Millisecond
)

// cameraDelta is the fixed behind-and-above offset from the followed node.
var cameraDelta = math32.Vec3(-6, 5, 16)

// cameraOffset returns the camera position for a given follow target.
func cameraOffset(target math32.Vector3) math32.Vector3 {
	return target.Add(cameraDelta)
}

// followTo animates the camera position and orbit target toward the
// given node position under the "camera" animation key. Starting a new
// follow while one is in flight supersedes it, restarting from the
// current interpolated pose rather than a stale start point, so the
// camera never jumps.
func (sc *Scene) followTo(target math32.Vector3) {
	startPos := sc.Camera.Pos
	startTgt := sc.Camera.Target
	endPos := cameraOffset(target)
	endTgt := target
	sc.Anims.Start(cameraKey, func(elapsed time.Duration) bool {
		p := animProgress(elapsed, cameraFollowTime)
		if p >= 1 {
			sc.Camera.Pos = endPos
			sc.Camera.Target = endTgt
			return false
		}
		e := easeInOutCubic(p)
		sc.Camera.Pos = startPos.Lerp(endPos, e)
		sc.Camera.Target = startTgt.Lerp(endTgt, e)
		return true
	}, nil)
}

// SaveCamera saves the current camera under the given name, to be
// restored later with [Scene.SetCamera].
func (sc *Scene) SaveCamera(name string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.savedCams == nil {
		sc.savedCams = make(map[string]Camera)
	}
	sc.savedCams[name] = sc.Camera
}

// SetCamera restores a camera saved under the given name; it returns an
// error if no camera of that name has been saved.
func (sc *Scene) SetCamera(name string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	cam, ok := sc.savedCams[name]
	if !ok {
		return fmt.Errorf("chainviz.Scene: saved camera of name: %v not found", name)
	}
	sc.Anims.Cancel(cameraKey)
	sc.Camera = cam
	return nil
}
