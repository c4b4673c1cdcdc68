// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"log/slog"
	"os"
	"testing"
	"time"
	"unsafe"

	"cogentcore.org/cube/camera"
	"cogentcore.org/cube/gpu"
	"cogentcore.org/cube/gpu/gputest"
	"cogentcore.org/cube/mesh"
	"cogentcore.org/cube/shaders"
	"cogentcore.org/cube/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// window is a fake [system.Window] that records into the same
// Recorder as the API, so that the order of calls can be checked.
type window struct {
	rc     *gputest.Recorder
	size   image.Point
	noSize bool

	// batches are returned by successive PollEvents calls.
	batches [][]system.Event
}

func (w *window) MakeCurrent() { w.rc.Record("MakeCurrent") }

func (w *window) PollEvents() []system.Event {
	w.rc.Record("PollEvents")
	if len(w.batches) == 0 {
		return nil
	}
	evs := w.batches[0]
	w.batches = w.batches[1:]
	return evs
}

func (w *window) InnerSize() (image.Point, bool) {
	w.rc.Record("InnerSize")
	return w.size, !w.noSize
}

func (w *window) SwapBuffers() { w.rc.Record("SwapBuffers") }

func (w *window) ProcAddress(name string) unsafe.Pointer { return nil }

func (w *window) Destroy() { w.rc.Record("Destroy") }

func loadSources(t *testing.T) (string, string) {
	t.Helper()
	vs, fs, err := shaders.Sources(os.DirFS("../shaders"), shaders.Vertex, shaders.Fragment)
	require.NoError(t, err)
	return vs, fs
}

func newScene(t *testing.T) (*Scene, *gputest.Recorder) {
	t.Helper()
	rc := gputest.NewRecorder()
	vs, fs := loadSources(t)
	sc, err := NewScene(rc, vs, fs, mesh.Cube())
	require.NoError(t, err)
	return sc, rc
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func newLoop(t *testing.T) (*Loop, *window, *gputest.Recorder) {
	t.Helper()
	sc, rc := newScene(t)
	rc.Reset()
	win := &window{rc: rc, size: image.Pt(800, 600)}
	return NewLoop(win, sc), win, rc
}

func TestNewScene(t *testing.T) {
	sc, rc := newScene(t)
	assert.Equal(t, 36, sc.Vertices())
	assert.Equal(t, "DepthTest", rc.Names()[0])
	assert.Equal(t, gpu.Less, rc.Calls[0].Args[0])

	ups := rc.Find("BufferData")
	require.Len(t, ups, 2)
	for _, up := range ups {
		assert.Len(t, up.Args[0], 108)
		assert.Equal(t, gpu.Static, up.Args[1])
	}
	assert.Equal(t, 1, rc.Count("UniformLocation"))
	assert.Equal(t, []string{"buffer", "buffer", "program", "vertex array"}, rc.Live())
}

func TestNewSceneInvalidMesh(t *testing.T) {
	rc := gputest.NewRecorder()
	vs, fs := loadSources(t)
	ms := mesh.Cube()
	ms.Streams[1].Data = ms.Streams[1].Data[:100]
	sc, err := NewScene(rc, vs, fs, ms)
	assert.Nil(t, sc)
	assert.ErrorContains(t, err, "has 100 values, want 108")
	assert.Empty(t, rc.Calls)
}

func TestNewSceneCompileError(t *testing.T) {
	rc := gputest.NewRecorder()
	vs, _ := loadSources(t)
	sc, err := NewScene(rc, vs, "void main() {", mesh.Cube())
	assert.Nil(t, sc)
	assert.True(t, gpu.IsCompileError(err))
	assert.Zero(t, rc.Count("CreateProgram"))
	assert.Zero(t, rc.Count("DrawTriangles"))
	assert.Empty(t, rc.Live())
}

func TestNewSceneLinkError(t *testing.T) {
	rc := gputest.NewRecorder()
	rc.FailLink = true
	vs, fs := loadSources(t)
	sc, err := NewScene(rc, vs, fs, mesh.Cube())
	assert.Nil(t, sc)
	var le *gpu.LinkError
	assert.ErrorAs(t, err, &le)
	assert.Empty(t, rc.Live())
}

func TestSceneRelease(t *testing.T) {
	sc, rc := newScene(t)
	sc.Release()
	sc.Release()
	assert.Empty(t, rc.Live())
	assert.Equal(t, 1, rc.Count("DeleteProgram"))
	assert.Equal(t, 2, rc.Count("DeleteBuffer"))
	assert.Equal(t, 1, rc.Count("DeleteVertexArray"))
}

func TestStepDraws(t *testing.T) {
	lp, _, rc := newLoop(t)
	st := lp.Step(Running)
	assert.Equal(t, Running, st)
	assert.Equal(t, []string{
		"PollEvents", "InnerSize",
		"ClearColor", "Clear", "UseProgram", "UniformMatrix4",
		"EnableVertexAttribArray", "BindArrayBuffer", "VertexAttribPointer",
		"EnableVertexAttribArray", "BindArrayBuffer", "VertexAttribPointer",
		"DrawTriangles", "SwapBuffers",
	}, rc.Names())

	assert.Equal(t, []any{float32(0), float32(0), float32(1), float32(1)}, rc.Find("ClearColor")[0].Args)
	assert.Equal(t, []any{true, true}, rc.Find("Clear")[0].Args)
	assert.Equal(t, []any{int32(0), int32(36)}, rc.Find("DrawTriangles")[0].Args)

	ptrs := rc.Find("VertexAttribPointer")
	assert.Equal(t, []any{uint32(0), int32(3)}, ptrs[0].Args)
	assert.Equal(t, []any{uint32(1), int32(3)}, ptrs[1].Args)

	cm := camera.Default()
	want := [16]float32(cm.MVP(800.0 / 600.0))
	assert.Equal(t, want, rc.Find("UniformMatrix4")[0].Args[1])
}

func TestStepNoEventsOrder(t *testing.T) {
	lp, _, rc := newLoop(t)
	lp.Step(Running)
	var order []string
	for _, n := range rc.Names() {
		switch n {
		case "Clear", "DrawTriangles", "SwapBuffers":
			order = append(order, n)
		}
	}
	assert.Equal(t, []string{"Clear", "DrawTriangles", "SwapBuffers"}, order)
}

func TestStepClose(t *testing.T) {
	lp, win, rc := newLoop(t)
	win.batches = [][]system.Event{{{Type: system.Other}, {Type: system.Closed}, {Type: system.Other}}}
	st := lp.Step(Running)
	assert.Equal(t, Stopped, st)
	assert.Equal(t, []string{"PollEvents"}, rc.Names())

	// Stopped is terminal
	assert.Equal(t, Stopped, lp.Step(st))
	assert.Zero(t, rc.Count("DrawTriangles"))
	assert.Zero(t, rc.Count("SwapBuffers"))
}

func TestStepNoSize(t *testing.T) {
	lp, win, rc := newLoop(t)
	win.noSize = true
	lp.Step(Running)
	cm := camera.Default()
	want := [16]float32(cm.MVP(4.0 / 3.0))
	assert.Equal(t, want, rc.Find("UniformMatrix4")[0].Args[1])
}

func TestStepResize(t *testing.T) {
	lp, win, rc := newLoop(t)
	lp.Step(Running)
	win.size = image.Pt(1000, 500)
	win.batches = [][]system.Event{{{Type: system.Other}}}
	lp.Step(Running)
	ups := rc.Find("UniformMatrix4")
	require.Len(t, ups, 2)
	assert.NotEqual(t, ups[0].Args[1], ups[1].Args[1])
	cm := camera.Default()
	assert.Equal(t, [16]float32(cm.MVP(2)), ups[1].Args[1])
}

func TestRun(t *testing.T) {
	lp, win, rc := newLoop(t)
	win.batches = [][]system.Event{nil, {{Type: system.Other}}, nil, {{Type: system.Closed}}}
	lp.Run()
	assert.Equal(t, 4, rc.Count("PollEvents"))
	assert.Equal(t, 3, rc.Count("Clear"))
	assert.Equal(t, 3, rc.Count("DrawTriangles"))
	assert.Equal(t, 3, rc.Count("SwapBuffers"))
	assert.Empty(t, rc.Live())
	assert.Equal(t, "DeleteVertexArray", rc.Names()[len(rc.Calls)-1])
}

func TestMissingUniform(t *testing.T) {
	rc := gputest.NewRecorder()
	rc.Uniforms = map[string]int32{"transform": 0}
	vs, fs := loadSources(t)
	sc, err := NewScene(rc, vs, fs, mesh.Cube())
	require.NoError(t, err)
	rc.Reset()
	win := &window{rc: rc, size: image.Pt(800, 600)}
	lp := NewLoop(win, sc)
	lp.Step(Running)
	assert.Zero(t, rc.Count("UniformMatrix4"))
	assert.Equal(t, 1, rc.Count("DrawTriangles"))
}

func TestCheckErrors(t *testing.T) {
	lp, _, rc := newLoop(t)
	lp.CheckErrors = true
	rc.Errors = []uint32{0x0502, 0x0501}
	buf := captureLog(t)
	assert.Equal(t, Running, lp.Step(Running))
	assert.Equal(t, 3, rc.Count("Error"))
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "graphics API error INVALID_OPERATION")
	assert.Contains(t, out, "graphics API error INVALID_VALUE")
	assert.Equal(t, 1, rc.Count("DrawTriangles"))
	names := rc.Names()
	assert.Equal(t, "SwapBuffers", names[len(names)-1])

	// without the option no error state is read
	rc.Reset()
	lp.CheckErrors = false
	lp.Step(Running)
	assert.Zero(t, rc.Count("Error"))

	// a clean error state logs nothing
	buf.Reset()
	assert.NoError(t, lp.checkErrors())
	assert.Empty(t, buf.String())
}

// clock is a manually advanced time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestStatsDisabled(t *testing.T) {
	lp, _, _ := newLoop(t)
	ck := &clock{t: time.Unix(1000, 0)}
	lp.now = ck.now
	buf := captureLog(t)
	for range 5 {
		ck.t = ck.t.Add(time.Second)
		lp.Step(Running)
	}
	assert.Zero(t, lp.frames)
	assert.True(t, lp.statsTime.IsZero())
	assert.NotContains(t, buf.String(), "frame rate")
}

func TestStats(t *testing.T) {
	lp, _, _ := newLoop(t)
	lp.StatsInterval = 10 * time.Second
	start := time.Unix(1000, 0)
	ck := &clock{t: start}
	lp.now = ck.now
	buf := captureLog(t)

	// the first frame starts the interval
	lp.Step(Running)
	assert.Zero(t, lp.frames)
	assert.Equal(t, start, lp.statsTime)

	ck.t = start.Add(4 * time.Second)
	lp.Step(Running)
	ck.t = start.Add(8 * time.Second)
	lp.Step(Running)
	assert.Equal(t, 2, lp.frames)
	assert.NotContains(t, buf.String(), "frame rate")

	ck.t = start.Add(10 * time.Second)
	lp.Step(Running)
	assert.Zero(t, lp.frames)
	assert.Equal(t, ck.t, lp.statsTime)
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "frame rate")
	assert.Contains(t, out, "fps=0.3")

	ck.t = start.Add(11 * time.Second)
	lp.Step(Running)
	assert.Equal(t, 1, lp.frames)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Stopped", Stopped.String())
}
