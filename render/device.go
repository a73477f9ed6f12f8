// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., gogpu.App) implements DeviceHandle and passes
// it to the renderer, allowing sg to use the shared GPU device.
//
// Key principle: sg RECEIVES the device from the host, it does NOT create
// one. This enables:
//   - Shared GPU resources between sg and the host application
//   - Zero device creation overhead in sg
//   - Consistent resource management across the stack
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing an
// sg-specific name for the interface while maintaining full compatibility
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Device access errors.
var (
	// ErrNoHALAccess is returned when a device handle does not expose the
	// raw HAL device and queue.
	ErrNoHALAccess = errors.New("render: device handle does not expose HAL types")

	// ErrNilDevice is returned when constructing a renderer component
	// without a device.
	ErrNilDevice = errors.New("render: nil device")
)

// HALFrom extracts the raw HAL device and queue from a device handle. The
// handle must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue, as gogpu's context does.
func HALFrom(handle any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrNoHALAccess
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrNoHALAccess
	}
	return device, queue, nil
}
