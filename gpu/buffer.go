// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/cube/base/errors"

// Buffer is one vertex attribute stream uploaded to device memory.
// It is written once by [Upload] and never modified afterwards.
type Buffer struct {
	api    API
	init   bool
	handle uint32

	// Size is the size of the uploaded data in bytes.
	Size int

	// Usage is the usage hint the data was uploaded with.
	Usage Usages
}

// Upload creates a new Buffer holding a copy of data.
// The buffer is left bound to the array target.
func Upload(api API, data []float32, usage Usages) (*Buffer, error) {
	if len(data) == 0 {
		return nil, errors.New("gpu Upload: no data")
	}
	bf := &Buffer{api: api, Size: len(data) * Float32Size, Usage: usage}
	bf.handle = api.GenBuffer()
	bf.init = true
	api.BindArrayBuffer(bf.handle)
	api.BufferData(data, usage)
	return bf, nil
}

// Handle returns the driver handle for this buffer.
func (bf *Buffer) Handle() uint32 {
	return bf.handle
}

// Bind enables the given vertex attribute slot and sources it from
// this buffer, as tightly packed float32 values with the given
// number of components per vertex.
func (bf *Buffer) Bind(index uint32, components int32) {
	if !bf.init {
		return
	}
	bf.api.EnableVertexAttribArray(index)
	bf.api.BindArrayBuffer(bf.handle)
	bf.api.VertexAttribPointer(index, components)
}

// Release deletes the buffer; it is safe to call more than once.
func (bf *Buffer) Release() {
	if bf == nil || !bf.init {
		return
	}
	bf.api.DeleteBuffer(bf.handle)
	bf.handle = 0
	bf.init = false
}

// VertexArray records vertex attribute bindings. Core profile
// contexts require one to be bound before attributes are described.
type VertexArray struct {
	api    API
	init   bool
	handle uint32
}

// NewVertexArray creates a vertex array and binds it.
func NewVertexArray(api API) *VertexArray {
	va := &VertexArray{api: api, init: true}
	va.handle = api.GenVertexArray()
	api.BindVertexArray(va.handle)
	return va
}

// Handle returns the driver handle for this vertex array.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Release deletes the vertex array; it is safe to call more than once.
func (va *VertexArray) Release() {
	if va == nil || !va.init {
		return
	}
	va.api.DeleteVertexArray(va.handle)
	va.handle = 0
	va.init = false
}
