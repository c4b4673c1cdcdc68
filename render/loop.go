// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render drives the per-frame drawing of a [Scene]
// into a [system.Window].
package render

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/cube/base/errors"
	"cogentcore.org/cube/camera"
	"cogentcore.org/cube/gpu"
	"cogentcore.org/cube/system"
)

// States are the states of the render loop.
type States int32

const (
	// Running draws a frame on each step.
	Running States = iota

	// Stopped is terminal: the window was closed.
	Stopped
)

func (st States) String() string {
	if st == Stopped {
		return "Stopped"
	}
	return "Running"
}

// Loop draws a [Scene] into a window each frame until it is closed.
type Loop struct {
	Window system.Window
	Scene  *Scene
	Camera camera.Camera

	// CheckErrors reads the graphics API error state after each frame
	// and logs any error. Drawing continues regardless.
	CheckErrors bool

	// StatsInterval is how often frame rate statistics are logged
	// at debug level; 0 disables them.
	StatsInterval time.Duration

	frames    int
	statsTime time.Time
	now       func() time.Time
}

// NewLoop returns a loop drawing the scene into the window
// with the [camera.Default] camera.
func NewLoop(win system.Window, sc *Scene) *Loop {
	return &Loop{Window: win, Scene: sc, Camera: camera.Default(), now: time.Now}
}

// Step runs one iteration from the given state and returns the new one.
// All pending window events are processed first; if any of them closes
// the window the loop is Stopped and nothing is drawn. Otherwise the
// transforms are computed for the current window size, the scene is
// drawn and the frame is presented.
func (lp *Loop) Step(st States) States {
	for _, ev := range lp.Window.PollEvents() {
		if ev.Type == system.Closed {
			st = Stopped
		}
	}
	if st == Stopped {
		return Stopped
	}
	fr := lp.Camera.Frame(camera.Aspect(lp.Window.InnerSize()))
	mvp := [16]float32(fr.MVP)
	lp.Scene.Draw(&mvp)
	if lp.CheckErrors {
		lp.checkErrors()
	}
	lp.Window.SwapBuffers()
	lp.stats()
	return Running
}

// Run steps the loop until it is Stopped, then releases the scene.
func (lp *Loop) Run() {
	st := Running
	for st == Running {
		st = lp.Step(st)
	}
	lp.Scene.Release()
}

// checkErrors logs all recorded graphics API errors as one error.
func (lp *Loop) checkErrors() error {
	var errs []error
	// a lost context may keep reporting errors
	for range 8 {
		code := lp.Scene.api.Error()
		if code == 0 {
			break
		}
		errs = append(errs, fmt.Errorf("render: graphics API error %s", gpu.ErrorString(code)))
	}
	return errors.Log(errors.Join(errs...))
}

func (lp *Loop) stats() {
	if lp.StatsInterval <= 0 {
		return
	}
	now := lp.now()
	if lp.statsTime.IsZero() {
		lp.statsTime = now
		return
	}
	lp.frames++
	if dur := now.Sub(lp.statsTime); dur >= lp.StatsInterval {
		slog.Debug("render: frame rate", "fps", float64(lp.frames)/dur.Seconds())
		lp.frames = 0
		lp.statsTime = now
	}
}
