// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.Window] on glfw.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"unsafe"

	"cogentcore.org/cube/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw. Must be called before NewWindow.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop Init: %w", err)
	}
	return nil
}

// Terminate shuts down glfw; call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Options are the settings for a new window.
type Options struct {
	Size  image.Point
	Title string

	// VSync synchronizes SwapBuffers with the display refresh.
	VSync bool
}

// Window is a glfw window with an OpenGL 4.1 core context.
type Window struct {
	glw    *glfw.Window
	vsync  bool
	events []system.Event
}

var _ system.Window = (*Window)(nil)

// NewWindow creates and shows a new window. [Init] must have been called.
func NewWindow(opts Options) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop NewWindow: %w", err)
	}
	w := &Window{glw: glw, vsync: opts.VSync}
	glw.SetCloseCallback(w.closeEvent)
	glw.SetFramebufferSizeCallback(w.sizeEvent)
	glw.SetKeyCallback(w.keyEvent)
	slog.Info("desktop: window created", "title", opts.Title, "size", opts.Size)
	return w, nil
}

func (w *Window) closeEvent(gw *glfw.Window) {
	w.events = append(w.events, system.Event{Type: system.Closed})
}

func (w *Window) sizeEvent(gw *glfw.Window, width, height int) {
	w.events = append(w.events, system.Event{Type: system.Other})
}

func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.events = append(w.events, system.Event{Type: system.Other})
}

func (w *Window) MakeCurrent() {
	w.glw.MakeContextCurrent()
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) PollEvents() []system.Event {
	glfw.PollEvents()
	evs := w.events
	w.events = nil
	return evs
}

func (w *Window) InnerSize() (image.Point, bool) {
	width, height := w.glw.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		return image.Point{}, false
	}
	return image.Pt(width, height), true
}

func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}
