// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the window system interface the renderer
// draws into. Implementations live under driver.
package system

import (
	"image"
	"unsafe"
)

// EventTypes are the kinds of window [Event].
type EventTypes int32

const (
	// Other is any event the renderer does not act on.
	Other EventTypes = iota

	// Closed is sent when the user asks to close the window.
	Closed
)

func (et EventTypes) String() string {
	if et == Closed {
		return "Closed"
	}
	return "Other"
}

// Event is a window event.
type Event struct {
	Type EventTypes
}

// Window is a window with a graphics context that can be drawn into.
// All methods must be called on the main thread.
type Window interface {
	// MakeCurrent makes the window's graphics context current
	// on the calling thread.
	MakeCurrent()

	// PollEvents processes pending window system events and returns
	// them. It does not block, and returns nil if there are none.
	PollEvents() []Event

	// InnerSize returns the size of the drawable area in pixels.
	// ok is false if the size cannot be determined.
	InnerSize() (size image.Point, ok bool)

	// SwapBuffers presents the frame that was drawn.
	SwapBuffers()

	// ProcAddress returns the address of the named graphics API
	// function for the current context, or nil.
	ProcAddress(name string) unsafe.Pointer

	// Destroy closes the window and releases its context.
	Destroy()
}
