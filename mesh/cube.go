// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "slices"

// Attribute indexes of the cube streams, matching the
// layout locations in the vertex shader.
const (
	PositionIndex uint32 = 0
	ColorIndex    uint32 = 1
)

// CubeVertices is the number of vertices in the cube triangle list:
// 6 faces of 2 triangles.
const CubeVertices = 36

// Cube returns the cube mesh: positions and colors, 3 components each.
// The returned data is a fresh copy.
func Cube() *Mesh {
	return &Mesh{
		Vertices: CubeVertices,
		Streams: []AttributeSet{
			{Name: "position", Index: PositionIndex, Components: 3, Data: slices.Clone(cubePositions)},
			{Name: "color", Index: ColorIndex, Components: 3, Data: slices.Clone(cubeColors)},
		},
	}
}

var cubePositions = []float32{
	// front
	-1, -1, -1,
	1, -1, -1,
	-1, 1, -1,

	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,

	// back
	-1, -1, 1,
	1, -1, 1,
	-1, 1, 1,

	1, -1, 1,
	1, 1, 1,
	-1, 1, 1,

	// right
	1, -1, -1,
	1, -1, 1,
	1, 1, -1,

	1, 1, 1,
	1, 1, -1,
	1, -1, 1,

	// left
	-1, -1, -1,
	-1, -1, 1,
	-1, 1, -1,

	-1, 1, 1,
	-1, 1, -1,
	-1, -1, 1,

	// bottom
	-1, -1, -1,
	1, -1, -1,
	-1, -1, 1,

	1, -1, 1,
	-1, -1, 1,
	1, -1, -1,

	// top
	-1, 1, -1,
	1, 1, -1,
	-1, 1, 1,

	1, 1, 1,
	-1, 1, 1,
	1, 1, -1,
}

// each face fades from its color at the first vertex to black
var cubeColors = []float32{
	// front: white
	1, 1, 1,
	0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,

	0.5, 0.5, 0.5,
	0, 0, 0,
	0.5, 0.5, 0.5,

	// back: green
	0, 1, 0,
	0, 0.5, 0,
	0, 0.5, 0,

	0, 0.5, 0,
	0, 0, 0,
	0, 0.5, 0,

	// right: red
	1, 0, 0,
	0.5, 0, 0,
	0.5, 0, 0,

	0, 0, 0,
	0.5, 0, 0,
	0.5, 0, 0,

	// left: blue
	0, 0, 1,
	0, 0, 0.5,
	0, 0, 0.5,

	0, 0, 0,
	0, 0, 0.5,
	0, 0, 0.5,

	// bottom: cyan
	0, 1, 1,
	0, 0.5, 0.5,
	0, 0.5, 0.5,

	0, 0, 0,
	0, 0.5, 0.5,
	0, 0.5, 0.5,

	// top: magenta
	1, 0, 1,
	0.5, 0, 0.5,
	0.5, 0, 0.5,

	0, 0, 0,
	0.5, 0, 0.5,
	0.5, 0, 0.5,
}
