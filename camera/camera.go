// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera computes the per-frame model, view and projection
// transforms for a fixed perspective camera.
package camera

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAspect is used when the viewport size is not known.
const DefaultAspect = float32(4.0 / 3.0)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the distances to the clipping planes.
	Near, Far float32

	Eye, Target, Up mgl32.Vec3
}

// Default returns the camera the cube is viewed with.
func Default() Camera {
	return Camera{
		FOV:    90,
		Near:   0.1,
		Far:    128,
		Eye:    mgl32.Vec3{4, 3, -3},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// Frame holds the transforms for one frame. All matrices are
// column-major and can be uploaded directly as a mat4 uniform.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4

	// MVP is Projection * View * Model.
	MVP mgl32.Mat4
}

// Aspect returns the width / height ratio of the given viewport size,
// or [DefaultAspect] if the size is not available or is degenerate.
func Aspect(size image.Point, ok bool) float32 {
	if !ok || size.X <= 0 || size.Y <= 0 {
		return DefaultAspect
	}
	return float32(size.X) / float32(size.Y)
}

// Frame computes the transforms for the given aspect ratio.
// An aspect that is not a positive finite number is replaced
// with [DefaultAspect].
// The model transform is the identity: the cube does not move.
func (cm *Camera) Frame(aspect float32) Frame {
	if math32.IsNaN(aspect) || math32.IsInf(aspect, 0) || aspect <= 0 {
		aspect = DefaultAspect
	}
	var fr Frame
	fr.Projection = mgl32.Perspective(mgl32.DegToRad(cm.FOV), aspect, cm.Near, cm.Far)
	fr.View = mgl32.LookAtV(cm.Eye, cm.Target, cm.Up)
	fr.Model = mgl32.Ident4()
	fr.MVP = fr.Projection.Mul4(fr.View).Mul4(fr.Model)
	return fr
}

// MVP returns the combined model-view-projection matrix.
func (cm *Camera) MVP(aspect float32) mgl32.Mat4 {
	return cm.Frame(aspect).MVP
}
