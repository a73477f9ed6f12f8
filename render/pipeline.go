// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sg"
)

// Embedded image node shader source.
//
//go:embed shaders/image.wgsl
var imageShaderSource string

// imageUniformSize is the byte size of the image uniform buffer.
// Layout: transform (mat4x4<f32>) = 64 bytes + params (vec4<f32>) = 16
// bytes = 80 bytes.
const imageUniformSize = 80

// ImagePipelineConfig holds configuration for the image pipeline.
type ImagePipelineConfig struct {
	// Format is the render target pixel format.
	// Default: BGRA8Unorm.
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count of the render target.
	// Default: 1 (no multisampling).
	SampleCount uint32
}

// DefaultImagePipelineConfig returns default configuration.
func DefaultImagePipelineConfig() ImagePipelineConfig {
	return ImagePipelineConfig{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 1,
	}
}

// ImagePipeline manages GPU resources for drawing image nodes: the shader,
// bind group layout, two render pipeline variants, and the two samplers the
// node materials select between.
//
// Architecture:
//
//	Uploader owns persistent vertex buffers per geometry
//	ImagePipeline owns shader, layouts, pipelines, samplers
//	bind groups are created per node (uniform + texture + sampler)
//
// The blended pipeline variant draws with premultiplied alpha for the
// node's TextureMaterial; the opaque variant draws with blending off for
// OpaqueTextureMaterial.
type ImagePipeline struct {
	device hal.Device
	queue  hal.Queue
	config ImagePipelineConfig

	// GPU objects for the render pipelines.
	shader          hal.ShaderModule
	uniformLayout   hal.BindGroupLayout
	pipeLayout      hal.PipelineLayout
	pipelineBlended hal.RenderPipeline
	pipelineOpaque  hal.RenderPipeline

	// Samplers matching the two material filter modes.
	samplerLinear  hal.Sampler
	samplerNearest hal.Sampler

	// Compiled SPIR-V, kept for backends that consume precompiled shaders.
	spirv []byte
}

// NewImagePipeline creates an image pipeline on the given device and queue.
// GPU objects are not created until Init is called.
func NewImagePipeline(device hal.Device, queue hal.Queue, config ImagePipelineConfig) (*ImagePipeline, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if config.Format == gputypes.TextureFormatUndefined {
		config.Format = DefaultImagePipelineConfig().Format
	}
	if config.SampleCount == 0 {
		config.SampleCount = DefaultImagePipelineConfig().SampleCount
	}
	return &ImagePipeline{
		device: device,
		queue:  queue,
		config: config,
	}, nil
}

// Init compiles the shader and creates all pipeline objects. Safe to call
// more than once; subsequent calls are no-ops.
func (p *ImagePipeline) Init() error {
	if p.pipelineBlended != nil {
		return nil
	}

	// Compile WGSL through naga first. This validates the source and
	// yields SPIR-V for backends that want precompiled code.
	spirv, err := naga.Compile(imageShaderSource)
	if err != nil {
		return fmt.Errorf("compile image shader: %w", err)
	}
	p.spirv = spirv

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sg_image_shader",
		Source: hal.ShaderSource{WGSL: imageShaderSource},
	})
	if err != nil {
		return fmt.Errorf("create image shader module: %w", err)
	}
	p.shader = shader

	// Bind group layout:
	//   Binding 0: ImageUniforms (uniform buffer, vertex+fragment)
	//   Binding 1: node texture (texture_2d, fragment)
	//   Binding 2: sampler (fragment)
	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sg_image_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create image uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sg_image_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create image pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	if err := p.createSamplers(); err != nil {
		return err
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	p.pipelineBlended, err = p.createPipeline("sg_image_pipeline_blended", &premulBlend)
	if err != nil {
		return err
	}
	p.pipelineOpaque, err = p.createPipeline("sg_image_pipeline_opaque", nil)
	if err != nil {
		return err
	}

	sg.Logger().Debug("render: image pipeline initialized",
		"format", p.config.Format, "samples", p.config.SampleCount)
	return nil
}

// createPipeline creates one render pipeline variant. A nil blend state
// disables blending (the opaque variant).
func (p *ImagePipeline) createPipeline(label string, blend *gputypes.BlendState) (hal.RenderPipeline, error) {
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    sg.VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.Format,
					Blend:     blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return pipeline, nil
}

// createSamplers creates the linear and nearest samplers selected by the
// node materials' filtering mode.
func (p *ImagePipeline) createSamplers() error {
	linear, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sg_image_sampler_linear",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create linear sampler: %w", err)
	}
	p.samplerLinear = linear

	nearest, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sg_image_sampler_nearest",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("create nearest sampler: %w", err)
	}
	p.samplerNearest = nearest
	return nil
}

// CreateUniformBuffer creates and uploads a uniform buffer mapping a
// viewport of the given pixel size to clip space, with the given opacity.
func (p *ImagePipeline) CreateUniformBuffer(viewportW, viewportH, opacity float32) (hal.Buffer, error) {
	data := makeImageUniform(viewportW, viewportH, opacity)
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sg_image_uniform",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// CreateBindGroup creates the per-node bind group: uniforms at binding 0,
// the node's texture view at binding 1, and the sampler matching the
// material's filtering mode at binding 2.
func (p *ImagePipeline) CreateBindGroup(uniformBuf hal.Buffer, view uintptr, filtering sg.FilterMode) (hal.BindGroup, error) {
	sampler := p.samplerNearest
	if filtering == sg.FilterLinear {
		sampler = p.samplerLinear
	}
	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sg_image_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: imageUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: view}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create image bind group: %w", err)
	}
	return bindGroup, nil
}

// RecordDraw records one image node draw into an existing render pass. The
// render pass is owned by the caller. The opaque flag selects between the
// no-blend and premultiplied-alpha pipeline variants.
func (p *ImagePipeline) RecordDraw(rp hal.RenderPassEncoder, opaque bool, bindGroup hal.BindGroup, vertexBuf hal.Buffer, vertexCount uint32) {
	if vertexCount == 0 {
		return
	}
	pipeline := p.pipelineBlended
	if opaque {
		pipeline = p.pipelineOpaque
	}
	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertexBuf, 0)
	rp.Draw(vertexCount, 1, 0, 0)
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times.
func (p *ImagePipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipelineOpaque != nil {
		p.device.DestroyRenderPipeline(p.pipelineOpaque)
		p.pipelineOpaque = nil
	}
	if p.pipelineBlended != nil {
		p.device.DestroyRenderPipeline(p.pipelineBlended)
		p.pipelineBlended = nil
	}
	if p.samplerNearest != nil {
		p.device.DestroySampler(p.samplerNearest)
		p.samplerNearest = nil
	}
	if p.samplerLinear != nil {
		p.device.DestroySampler(p.samplerLinear)
		p.samplerLinear = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// SPIRV returns the shader's compiled SPIR-V code, or nil before Init.
func (p *ImagePipeline) SPIRV() []byte {
	return p.spirv
}

// makeImageUniform builds the 80-byte image uniform: an orthographic
// transform mapping (0,0)..(w,h) scene coordinates to clip space with Y
// down, followed by [opacity, 0, 0, 0].
//
// Output 4x4 (row-major fill matching the shader's read order):
//
//	2/w   0   0  -1
//	 0  -2/h  0   1
//	 0    0   1   0
//	 0    0   0   1
func makeImageUniform(viewportW, viewportH, opacity float32) []byte {
	buf := make([]byte, imageUniformSize)
	off := 0

	sx := float32(0)
	sy := float32(0)
	if viewportW > 0 {
		sx = 2 / viewportW
	}
	if viewportH > 0 {
		sy = -2 / viewportH
	}
	t := [16]float32{
		sx, 0, 0, -1,
		0, sy, 0, 1,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	for _, v := range t {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}

	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(opacity))
	// Remaining params stay zero.

	return buf
}
