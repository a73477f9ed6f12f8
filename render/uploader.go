// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sg"
)

// Uploader mirrors node geometries into GPU vertex buffers.
//
// Each geometry gets one persistent buffer, re-written in place when the
// geometry's vertex-data dirty mark is set and grown (destroy + recreate)
// when the vertex data no longer fits. Uploads go through the queue, so a
// Sync during command recording lands before the frame's submission.
//
// Uploader is not safe for concurrent use; it is driven by the renderer's
// single update pass, like the nodes themselves.
type Uploader struct {
	device hal.Device
	queue  hal.Queue

	buffers map[*sg.Geometry]*geometryBuffer
}

// geometryBuffer tracks a geometry's GPU buffer and its allocated capacity.
type geometryBuffer struct {
	buf  hal.Buffer
	size uint64 // allocated byte size
}

// NewUploader creates an uploader on the given device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{
		device:  device,
		queue:   queue,
		buffers: make(map[*sg.Geometry]*geometryBuffer),
	}, nil
}

// Sync returns the GPU vertex buffer for g, uploading the geometry's vertex
// data first if its dirty mark is set or no buffer exists yet. On success
// the geometry's dirty marks are cleared.
func (u *Uploader) Sync(g *sg.Geometry) (hal.Buffer, error) {
	gb := u.buffers[g]
	needed := uint64(g.VertexCount()) * sg.VertexStride

	if gb != nil && !g.VertexDataDirty() && gb.size >= needed {
		return gb.buf, nil
	}

	if gb != nil && gb.size < needed {
		u.device.DestroyBuffer(gb.buf)
		delete(u.buffers, g)
		gb = nil
	}

	if gb == nil {
		buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "sg_image_vertices",
			Size:  needed,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, fmt.Errorf("create vertex buffer: %w", err)
		}
		gb = &geometryBuffer{buf: buf, size: needed}
		u.buffers[g] = gb
	}

	u.queue.WriteBuffer(gb.buf, 0, packVertices(g.Vertices()))
	g.ClearDirty()

	sg.Logger().Debug("render: geometry uploaded",
		"vertices", g.VertexCount(), "bytes", needed)
	return gb.buf, nil
}

// Release destroys the buffer held for g, if any. Call when a node drops
// its geometry.
func (u *Uploader) Release(g *sg.Geometry) {
	gb, ok := u.buffers[g]
	if !ok {
		return
	}
	u.device.DestroyBuffer(gb.buf)
	delete(u.buffers, g)
}

// Close destroys all buffers. The uploader is unusable afterwards.
func (u *Uploader) Close() {
	for g, gb := range u.buffers {
		u.device.DestroyBuffer(gb.buf)
		delete(u.buffers, g)
	}
}

// Len returns the number of geometries with live GPU buffers.
func (u *Uploader) Len() int {
	return len(u.buffers)
}

// packVertices serializes vertex records into raw little-endian bytes
// suitable for GPU upload. Each vertex produces sg.VertexStride (16) bytes.
func packVertices(verts []sg.TexturedPoint2D) []byte {
	data := make([]byte, len(verts)*sg.VertexStride)
	off := 0
	for _, v := range verts {
		binary.LittleEndian.PutUint32(data[off+0:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.U))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.V))
		off += sg.VertexStride
	}
	return data
}
