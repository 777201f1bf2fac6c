// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import "fmt"

// DuplicateNodeError is returned by [Scene.AddThought] when a record's
// id is already present in the scene. The call is a no-op.
type DuplicateNodeError struct {
	ID int
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("chainviz: duplicate thought id: %d", e.ID)
}

// ViewportUnavailableError is returned by [Scene.Initialize] when the
// given surface cannot be bound to a renderable target. It is fatal to
// initialization; the scene does not retry.
type ViewportUnavailableError struct {
	Reason string
}

func (e *ViewportUnavailableError) Error() string {
	return "chainviz: viewport unavailable: " + e.Reason
}
