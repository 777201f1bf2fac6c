// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"image/color"
)

// ThoughtRecord is one discrete reasoning step emitted by an external
// producer. Records are immutable once received: the scene consumes each
// record exactly once in [Scene.AddThought] and never writes back to it.
type ThoughtRecord struct {
	// ID is the unique, caller-assigned identifier for this thought.
	ID int

	// ParentID is the id of the thought this one follows from.
	// 0 means no explicit parent, in which case the node is linked
	// to the most recently added node (or the origin anchor).
	ParentID int

	// Text is the display label for the node.
	Text string

	// Category classifies the reasoning step and selects the node color.
	Category Category

	// Weight is the relative importance of the step, 0-100.
	Weight float32

	// Confidence is the producer's confidence in the step, 0-100.
	// It modulates the alpha of the connection into this node.
	Confidence float32
}

// Category is the closed enumeration of reasoning step kinds.
type Category int32

const (
	// Analysis is breaking a problem into parts.
	Analysis Category = iota

	// Synthesis is combining parts into a conclusion.
	Synthesis

	// Recall is retrieving previously established facts.
	Recall

	// Evaluation is judging alternatives against criteria.
	Evaluation

	// CategoryN is the number of valid categories.
	CategoryN
)

// categoryColors is the exhaustive color table for [Category], indexed
// by enum value. Adding a Category requires adding an entry here.
var categoryColors = [CategoryN]color.RGBA{
	Analysis:   {R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}, // light blue
	Synthesis:  {R: 0xab, G: 0x47, B: 0xbc, A: 0xff}, // purple
	Recall:     {R: 0xff, G: 0xb7, B: 0x4d, A: 0xff}, // amber
	Evaluation: {R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}, // green
}

// categoryNames is the exhaustive name table for [Category].
var categoryNames = [CategoryN]string{
	Analysis:   "analysis",
	Synthesis:  "synthesis",
	Recall:     "recall",
	Evaluation: "evaluation",
}

// defaultCategoryColor is used for out-of-range category values,
// which can only arise from a caller passing a raw int.
var defaultCategoryColor = color.RGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff}

// Color returns the display color for the category.
// Out-of-range values return a neutral default rather than a zero color.
func (ct Category) Color() color.RGBA {
	if ct < 0 || ct >= CategoryN {
		return defaultCategoryColor
	}
	return categoryColors[ct]
}

// IsValid returns whether the category is one of the defined values.
func (ct Category) IsValid() bool {
	return ct >= 0 && ct < CategoryN
}

func (ct Category) String() string {
	if !ct.IsValid() {
		return "invalid"
	}
	return categoryNames[ct]
}
