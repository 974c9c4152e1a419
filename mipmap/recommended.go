package mipmap

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Recommended picks the fastest applicable backend for each texture. The
// choice is a pure function of the texture descriptor, see Select.
type Recommended struct {
	compute *ComputeGenerator
	render  *RenderGenerator
	copy    *CopyGenerator
}

// NewRecommended creates a generator that dispatches between the three
// backends. Pipelines for the given formats are built up front on the
// backends that support them.
func NewRecommended(dev *wgpu.Device, formats ...wgpu.TextureFormat) *Recommended {
	if len(formats) == 0 {
		formats = SupportedFormats()
	}

	// the copy backend shares the blit pipelines of the render backend
	render := NewRenderGenerator(dev, formats...)

	// only formats that will actually route to compute get a pipeline there
	compute := newComputeGenerator(dev)
	compute.prewarm(computeCapable(formats))

	return &Recommended{
		compute: compute,
		render:  render,
		copy:    &CopyGenerator{render: render},
	}
}

// Release drops all cached pipelines.
func (r *Recommended) Release() {
	r.compute.Release()
	r.render.Release()
}

// Select returns the strategy Generate would use for a texture with this
// descriptor.
func (r *Recommended) Select(desc *wgpu.TextureDescriptor) (Strategy, error) {
	return SelectStrategy(desc)
}

// SelectStrategy picks the backend for a texture descriptor. Nothing is
// created on the device, the choice only looks at dimension, format, size
// and usage.
//
// Compute wins when the texture can be bound as a storage texture, is power
// of two sized and a box filter kernel exists for its format. Render is next
// and handles any size. Copy is the fallback for textures that can not be
// render targets. If no backend applies, the error wraps
// ErrNoApplicableBackend.
func SelectStrategy(desc *wgpu.TextureDescriptor) (Strategy, error) {
	if desc.Dimension != wgpu.TextureDimension2D {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedDimension, desc.Dimension)
	}

	if _, ok := formatTable[desc.Format]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, desc.Format)
	}

	pow2 := isPowerOfTwo(desc.Size.Width) && isPowerOfTwo(desc.Size.Height)

	switch {
	case hasUsage(desc, ComputeRequiredUsage()) && pow2 && hasComputeKernel(desc.Format):
		return StrategyCompute, nil

	case hasUsage(desc, RenderRequiredUsage()):
		return StrategyRender, nil

	case hasUsage(desc, CopyRequiredUsage()):
		return StrategyCopy, nil

	default:
		return 0, fmt.Errorf("%w: usage %#x of %s texture", ErrNoApplicableBackend, desc.Usage, desc.Format)
	}
}

func (r *Recommended) Generate(dev *wgpu.Device, enc *wgpu.CommandEncoder, texture *wgpu.Texture, desc *wgpu.TextureDescriptor) error {
	strategy, err := r.Select(desc)
	if err != nil {
		return err
	}

	slog.Debug("Generate mipmap chain",
		slog.Any("strategy", strategy),
		slog.Any("format", desc.Format),
		slog.Uint64("width", uint64(desc.Size.Width)),
		slog.Uint64("height", uint64(desc.Size.Height)))

	switch strategy {
	case StrategyCompute:
		return r.compute.Generate(dev, enc, texture, desc)

	case StrategyRender:
		return r.render.Generate(dev, enc, texture, desc)

	default:
		return r.copy.Generate(dev, enc, texture, desc)
	}
}

func hasUsage(desc *wgpu.TextureDescriptor, required wgpu.TextureUsage) bool {
	return desc.Usage&required == required
}

func computeCapable(formats []wgpu.TextureFormat) []wgpu.TextureFormat {
	capable := make([]wgpu.TextureFormat, 0, len(formats))

	for _, format := range formats {
		if hasComputeKernel(format) {
			capable = append(capable, format)
		}
	}

	return capable
}
