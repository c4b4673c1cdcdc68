// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/cube/gpu"
	"cogentcore.org/cube/mesh"
)

// MVPUniform is the name of the matrix uniform in the vertex shader.
const MVPUniform = "mvp"

// ClearColor is the background color of every frame.
var ClearColor = [4]float32{0, 0, 1, 1}

// stream is an uploaded attribute stream and the slot it binds to.
type stream struct {
	buffer     *gpu.Buffer
	index      uint32
	components int32
}

// Scene holds the device resources for drawing one mesh with one
// program. They are created once by [NewScene] and deleted once by
// [Scene.Release]; nothing is created or deleted per frame.
type Scene struct {
	api      gpu.API
	program  *gpu.Program
	mvp      gpu.Uniform
	vao      *gpu.VertexArray
	streams  []stream
	vertices int32
}

// NewScene enables depth testing, uploads the mesh and builds the
// program from the given vertex and fragment sources. The mesh is
// validated before anything is uploaded. On error, everything created
// so far is released.
func NewScene(api gpu.API, vertexSrc, fragmentSrc string, ms *mesh.Mesh) (*Scene, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	sc := &Scene{api: api, vertices: int32(ms.Vertices)}
	if err := sc.build(vertexSrc, fragmentSrc, ms); err != nil {
		sc.Release()
		return nil, err
	}
	return sc, nil
}

func (sc *Scene) build(vertexSrc, fragmentSrc string, ms *mesh.Mesh) error {
	api := sc.api
	api.DepthTest(gpu.Less)
	sc.vao = gpu.NewVertexArray(api)
	for i := range ms.Streams {
		st := &ms.Streams[i]
		bf, err := gpu.Upload(api, st.Data, gpu.Static)
		if err != nil {
			return fmt.Errorf("render: uploading %s: %w", st.Name, err)
		}
		sc.streams = append(sc.streams, stream{buffer: bf, index: st.Index, components: int32(st.Components)})
	}

	vs, err := gpu.Compile(api, gpu.VertexShader, vertexSrc)
	if err != nil {
		return err
	}
	fs, err := gpu.Compile(api, gpu.FragmentShader, fragmentSrc)
	if err != nil {
		vs.Release()
		return err
	}
	sc.program, err = gpu.Link(api, vs, fs)
	if err != nil {
		vs.Release()
		fs.Release()
		return err
	}
	sc.mvp = sc.program.Uniform(MVPUniform)
	return nil
}

// Vertices returns the number of vertices drawn per frame.
func (sc *Scene) Vertices() int {
	return int(sc.vertices)
}

// Draw clears the render target and draws the mesh with the given
// model-view-projection matrix.
func (sc *Scene) Draw(mvp *[16]float32) {
	api := sc.api
	api.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	api.Clear(true, true)
	sc.program.Use()
	sc.mvp.SetMatrix4(mvp)
	for _, st := range sc.streams {
		st.buffer.Bind(st.index, st.components)
	}
	api.DrawTriangles(0, sc.vertices)
}

// Release deletes all resources. It is safe to call more than once.
func (sc *Scene) Release() {
	if sc == nil {
		return
	}
	sc.program.Release()
	for _, st := range sc.streams {
		st.buffer.Release()
	}
	sc.streams = nil
	sc.vao.Release()
}
