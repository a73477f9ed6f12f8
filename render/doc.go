// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render bridges image nodes to the GPU through the wgpu HAL.
//
// It receives a device from the host application (see DeviceHandle), keeps
// node geometries mirrored in GPU vertex buffers (Uploader), and records
// node draws through a pair of render pipelines matching the node's two
// materials (ImagePipeline). Nothing here creates a device, a surface, or a
// render pass; the host owns frame orchestration.
package render
