package mipmap

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// CopyGenerator fills mip chains of textures that can not be render targets
// themselves. It renders the chain into a temporary shadow texture and copies
// every generated level back into the original. Level 0 is only read, never
// written.
type CopyGenerator struct {
	render *RenderGenerator
}

// CopyRequiredUsage returns the usage a texture needs on top of the callers
// own flags so the copy backend can process it.
func CopyRequiredUsage() wgpu.TextureUsage {
	return wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst
}

// NewCopyGenerator creates a copy based generator. Blit pipelines for the
// given formats are built up front, pipelines for other formats are built on
// first use.
func NewCopyGenerator(dev *wgpu.Device, formats ...wgpu.TextureFormat) *CopyGenerator {
	return &CopyGenerator{render: NewRenderGenerator(dev, formats...)}
}

// Release drops the cached pipelines.
func (g *CopyGenerator) Release() {
	g.render.Release()
}

func (g *CopyGenerator) Generate(dev *wgpu.Device, enc *wgpu.CommandEncoder, texture *wgpu.Texture, desc *wgpu.TextureDescriptor) error {
	if err := checkDescriptor(desc, CopyRequiredUsage()); err != nil {
		return err
	}

	levels := effectiveLevelCount(desc)
	if levels < 2 {
		return nil
	}

	// the shadow holds levels 1 and up of the chain, so it starts at half
	// size and is one level short
	shadowDesc := wgpu.TextureDescriptor{
		Label:         "mipmap-shadow",
		Size:          mipExtent(desc.Size, 1),
		MipLevelCount: levels - 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        desc.Format,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopySrc,
	}

	shadow, err := dev.TryCreateTexture(&shadowDesc)
	if err != nil {
		return fmt.Errorf("create shadow texture: %w", err)
	}

	// the recorded commands keep their own reference
	defer shadow.Release()

	if err := g.render.generateSrcDst(dev, enc, texture, shadow, desc, &shadowDesc, 1); err != nil {
		return err
	}

	for level := uint32(1); level < levels; level++ {
		extent := mipExtent(desc.Size, level)

		enc.CopyTextureToTexture(
			&wgpu.TexelCopyTextureInfo{
				Texture:  shadow,
				MipLevel: level - 1,
				Origin:   wgpu.Origin3D{},
				Aspect:   wgpu.TextureAspectAll,
			},
			&wgpu.TexelCopyTextureInfo{
				Texture:  texture,
				MipLevel: level,
				Origin:   wgpu.Origin3D{},
				Aspect:   wgpu.TextureAspectAll,
			},
			&extent,
		)
	}

	return nil
}
