package mipmap

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// workgroup edge length of the box filter kernels
const workgroupSize = 32

// computeConfig selects one specialized box filter pipeline.
type computeConfig struct {
	format wgpu.TextureFormat
	goos   string
}

func (c computeConfig) Specialize(dev *wgpu.Device) (*wgpu.ComputePipeline, error) {
	kern, err := computeKernelFor(c.format, c.goos)
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

	return dev.TryCreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: kern.name,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     shader,
			EntryPoint: kern.entry,
		},
	})
}

// ComputeGenerator fills mip chains with box filter dispatches between
// storage views of adjacent levels. It only accepts power of two textures
// whose format can be bound as a storage texture.
type ComputeGenerator struct {
	pipelines *pipelineCache[computeConfig, *wgpu.ComputePipeline]
	goos      string
}

// ComputeRequiredUsage returns the usage a texture needs on top of the
// callers own flags so the compute backend can process it.
func ComputeRequiredUsage() wgpu.TextureUsage {
	return wgpu.TextureUsageStorageBinding
}

// NewComputeGenerator creates a compute based generator. Pipelines for the
// given formats are built up front, formats without a box filter kernel are
// skipped with a warning. Without format hints every storage capable format
// gets a pipeline. Pipelines for other formats are built on first use.
func NewComputeGenerator(dev *wgpu.Device, formats ...wgpu.TextureFormat) *ComputeGenerator {
	gen := newComputeGenerator(dev)

	if len(formats) == 0 {
		formats = computeCapable(SupportedFormats())
	}

	gen.prewarm(formats)

	return gen
}

func newComputeGenerator(dev *wgpu.Device) *ComputeGenerator {
	return &ComputeGenerator{
		pipelines: newPipelineCache[computeConfig, *wgpu.ComputePipeline](dev),
		goos:      runtime.GOOS,
	}
}

func (g *ComputeGenerator) prewarm(formats []wgpu.TextureFormat) {
	for _, format := range formats {
		_, err := g.pipelines.Get(computeConfig{format: format, goos: g.goos})
		if err != nil {
			slog.Warn("Skip compute pipeline for format",
				slog.Any("format", format), slog.Any("error", err))
		}
	}
}

// Release drops the cached pipelines.
func (g *ComputeGenerator) Release() {
	g.pipelines.Release()
}

func (g *ComputeGenerator) Generate(dev *wgpu.Device, enc *wgpu.CommandEncoder, texture *wgpu.Texture, desc *wgpu.TextureDescriptor) error {
	if !isPowerOfTwo(desc.Size.Width) || !isPowerOfTwo(desc.Size.Height) {
		return fmt.Errorf("%w: %dx%d", ErrNonPowerOfTwo, desc.Size.Width, desc.Size.Height)
	}

	if err := checkDescriptor(desc, ComputeRequiredUsage()); err != nil {
		return err
	}

	levels := effectiveLevelCount(desc)
	if levels < 2 {
		return nil
	}

	cached, err := g.pipelines.Get(computeConfig{format: desc.Format, goos: g.goos})
	if err != nil {
		return err
	}

	viewFormat := storageViewFormat(desc.Format)

	views := make([]*wgpu.TextureView, levels)
	defer releaseAll(views)

	for level := range levels {
		view, err := levelView(texture, viewFormat, level, fmt.Sprintf("mipmap-storage-l%d", level))
		if err != nil {
			return fmt.Errorf("create view of level %d: %w", level, err)
		}

		views[level] = view
	}

	// bind groups are created before the pass starts recording so that a
	// failure leaves the encoder untouched
	bindGroups := make([]*wgpu.BindGroup, levels-1)
	defer releaseAll(bindGroups)

	layout := cached.GetBindGroupLayout(0)

	for level := uint32(1); level < levels; level++ {
		bindGroup, err := dev.TryCreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("mipmap-box-l%d", level),
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, TextureView: views[level-1]},
				{Binding: 1, TextureView: views[level]},
			},
		})
		if err != nil {
			return fmt.Errorf("create bind group for level %d: %w", level, err)
		}

		bindGroups[level-1] = bindGroup
	}

	pass := enc.BeginComputePass(&wgpu.ComputePassDescriptor{Label: "mipmap-box"})
	pass.SetPipeline(cached.Pipeline)

	for level := uint32(1); level < levels; level++ {
		extent := mipExtent(desc.Size, level)

		pass.SetBindGroup(0, bindGroups[level-1], nil)
		pass.DispatchWorkgroups(dispatchSize(extent.Width), dispatchSize(extent.Height), 1)
	}

	pass.End()

	return nil
}

func dispatchSize(texels uint32) uint32 {
	return (texels + workgroupSize - 1) / workgroupSize
}

func releaseAll[T interface {
	comparable
	Release()
}](values []T) {
	for _, value := range values {
		var zero T
		if value != zero {
			value.Release()
		}
	}
}
