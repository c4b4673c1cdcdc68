// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh describes static, non-interleaved vertex geometry.
package mesh

import "fmt"

// AttributeSet is one vertex attribute stream, such as positions or
// colors, bound to its own attribute index.
type AttributeSet struct {
	// Name is used in error messages.
	Name string

	// Index is the vertex attribute slot the stream is bound to.
	Index uint32

	// Components is the number of float32 values per vertex.
	Components int

	// Data holds Components values for each vertex.
	Data []float32
}

// NumVertices returns the number of whole vertices in Data.
func (as *AttributeSet) NumVertices() int {
	if as.Components <= 0 {
		return 0
	}
	return len(as.Data) / as.Components
}

// Mesh is a triangle list made of one or more attribute streams
// that all share the same vertex count.
type Mesh struct {
	// Vertices is the number of vertices drawn.
	Vertices int

	Streams []AttributeSet
}

// Validate checks that every stream holds exactly Vertices*Components
// values and that no two streams share an attribute index.
// It must pass before any stream is uploaded.
func (ms *Mesh) Validate() error {
	if ms.Vertices <= 0 {
		return fmt.Errorf("mesh: invalid vertex count %d", ms.Vertices)
	}
	if ms.Vertices%3 != 0 {
		return fmt.Errorf("mesh: vertex count %d is not a whole number of triangles", ms.Vertices)
	}
	if len(ms.Streams) == 0 {
		return fmt.Errorf("mesh: no attribute streams")
	}
	used := make(map[uint32]string, len(ms.Streams))
	for i := range ms.Streams {
		st := &ms.Streams[i]
		if st.Components < 1 || st.Components > 4 {
			return fmt.Errorf("mesh: stream %q: invalid component count %d", st.Name, st.Components)
		}
		if want := ms.Vertices * st.Components; len(st.Data) != want {
			return fmt.Errorf("mesh: stream %q: has %d values, want %d (%d vertices x %d components)",
				st.Name, len(st.Data), want, ms.Vertices, st.Components)
		}
		if other, ok := used[st.Index]; ok {
			return fmt.Errorf("mesh: streams %q and %q share attribute index %d", other, st.Name, st.Index)
		}
		used[st.Index] = st.Name
	}
	return nil
}
