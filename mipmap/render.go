package mipmap

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// renderConfig selects one specialized blit pipeline.
type renderConfig struct {
	format wgpu.TextureFormat
}

func (c renderConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	kern, err := renderKernelFor(c.format)
	if err != nil {
		return nil, err
	}

	shader, err := dev.TryCreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      kern.name,
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: kern.source},
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", kern.name, err)
	}

	defer shader.Release()

	return dev.TryCreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("mipmap-blit-%s", c.format),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: kern.entry,
			Targets: []wgpu.ColorTargetState{
				{
					// no blend state, enabling blending would reject float
					// formats that are renderable but not blendable
					Format:    c.format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xffffffff,
		},
	})
}

// RenderGenerator fills mip chains by sampling each level into the next one
// with a fullscreen triangle. It handles any texture size, including non
// power of two, and every recognized format.
type RenderGenerator struct {
	pipelines *pipelineCache[renderConfig, *wgpu.RenderPipeline]
}

// RenderRequiredUsage returns the usage a texture needs on top of the
// callers own flags so the render backend can process it.
func RenderRequiredUsage() wgpu.TextureUsage {
	return wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding
}

// NewRenderGenerator creates a render based generator. Pipelines for the
// given formats are built up front, without format hints every recognized
// format gets one. Pipelines for other formats are built on first use.
func NewRenderGenerator(dev *wgpu.Device, formats ...wgpu.TextureFormat) *RenderGenerator {
	gen := &RenderGenerator{
		pipelines: newPipelineCache[renderConfig, *wgpu.RenderPipeline](dev),
	}

	if len(formats) == 0 {
		formats = SupportedFormats()
	}

	gen.prewarm(formats)

	return gen
}

func (g *RenderGenerator) prewarm(formats []wgpu.TextureFormat) {
	for _, format := range formats {
		_, err := g.pipelines.Get(renderConfig{format: format})
		if err != nil {
			slog.Warn("Skip render pipeline for format",
				slog.Any("format", format), slog.Any("error", err))
		}
	}
}

// Release drops the cached pipelines.
func (g *RenderGenerator) Release() {
	g.pipelines.Release()
}

func (g *RenderGenerator) Generate(dev *wgpu.Device, enc *wgpu.CommandEncoder, texture *wgpu.Texture, desc *wgpu.TextureDescriptor) error {
	if err := checkDescriptor(desc, RenderRequiredUsage()); err != nil {
		return err
	}

	return g.generateSrcDst(dev, enc, texture, texture, desc, desc, 0)
}

// generateSrcDst records the blit passes for a chain whose level 0 lives in
// src and whose remaining levels live in dst, shifted down by dstMipOffset.
// With src == dst and a zero offset this is plain in place generation, the
// copy backend passes its shadow texture with an offset of one.
func (g *RenderGenerator) generateSrcDst(dev *wgpu.Device, enc *wgpu.CommandEncoder, src, dst *wgpu.Texture, srcDesc, dstDesc *wgpu.TextureDescriptor, dstMipOffset uint32) error {
	if srcDesc.Format != dstDesc.Format {
		return fmt.Errorf("%w: chain level 0 is %s, target levels are %s", ErrUnsupportedFormat, srcDesc.Format, dstDesc.Format)
	}

	if srcDesc.Dimension != dstDesc.Dimension {
		return fmt.Errorf("%w: chain level 0 is %s, target levels are %s", ErrUnsupportedDimension, srcDesc.Dimension, dstDesc.Dimension)
	}

	// the target texture starts at chain level dstMipOffset
	if want := mipExtent(srcDesc.Size, dstMipOffset); dstDesc.Size != want {
		return fmt.Errorf("target texture is %dx%d, chain level %d is %dx%d",
			dstDesc.Size.Width, dstDesc.Size.Height, dstMipOffset, want.Width, want.Height)
	}

	levels := min(effectiveLevelCount(srcDesc), dstDesc.MipLevelCount+dstMipOffset)
	if levels < 2 {
		return nil
	}

	cached, err := g.pipelines.Get(renderConfig{format: dstDesc.Format})
	if err != nil {
		return err
	}

	sampler := boxSampler(dev)

	// one view per chain level, the source level first
	views := make([]*wgpu.TextureView, levels)
	defer releaseAll(views)

	views[0], err = levelView(src, srcDesc.Format, 0, "mipmap-blit-src")
	if err != nil {
		return fmt.Errorf("create view of level 0: %w", err)
	}

	for level := uint32(1); level < levels; level++ {
		view, err := levelView(dst, dstDesc.Format, level-dstMipOffset, fmt.Sprintf("mipmap-blit-l%d", level))
		if err != nil {
			return fmt.Errorf("create view of level %d: %w", level, err)
		}

		views[level] = view
	}

	// bind groups are created before any pass starts recording so that a
	// failure leaves the encoder untouched
	bindGroups := make([]*wgpu.BindGroup, levels-1)
	defer releaseAll(bindGroups)

	layout := cached.GetBindGroupLayout(0)

	for level := uint32(1); level < levels; level++ {
		bindGroup, err := dev.TryCreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("mipmap-blit-l%d", level),
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, TextureView: views[level-1]},
				{Binding: 1, Sampler: sampler},
			},
		})
		if err != nil {
			return fmt.Errorf("create bind group for level %d: %w", level, err)
		}

		bindGroups[level-1] = bindGroup
	}

	for level := uint32(1); level < levels; level++ {
		pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
			Label: "mipmap-blit",
			ColorAttachments: []wgpu.RenderPassColorAttachment{
				{
					View:    views[level],
					LoadOp:  wgpu.LoadOpClear,
					StoreOp: wgpu.StoreOpStore,
				},
			},
		})

		pass.SetPipeline(cached.Pipeline)
		pass.SetBindGroup(0, bindGroups[level-1], nil)
		pass.Draw(3, 1, 0, 0)
		pass.End()
	}

	return nil
}
