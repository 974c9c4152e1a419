// Package mipmap records commands to fill the mip chain of a wgpu texture
// from its level zero. Three generators exist: a compute based one for power
// of two storage textures, a render based one that works for any size, and a
// copy based one for textures that can not be render targets themselves.
// Recommended picks between them based on the texture descriptor.
//
// Generators only record into a caller provided command encoder, nothing is
// submitted. Level zero is read as is, each following level is the 2x2 box
// average of the previous one.
package mipmap

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Generator records mipmap generation commands for one texture.
type Generator interface {
	// Generate records commands into enc that fill mip levels 1 and up of
	// texture from its level 0. desc must be the descriptor the texture was
	// created with. The caller keeps ownership of the encoder and submits it.
	//
	// Validation happens before anything is recorded. On error the encoder
	// is untouched.
	Generate(dev *wgpu.Device, enc *wgpu.CommandEncoder, texture *wgpu.Texture, desc *wgpu.TextureDescriptor) error
}

// checkDescriptor validates the parts of the descriptor all generators agree
// on. Backend specific requirements come in through required.
func checkDescriptor(desc *wgpu.TextureDescriptor, required wgpu.TextureUsage) error {
	if desc.Dimension != wgpu.TextureDimension2D {
		return fmt.Errorf("%w: %s", ErrUnsupportedDimension, desc.Dimension)
	}

	if desc.Usage&required != required {
		return fmt.Errorf("%w: texture usage %#x does not contain %#x", ErrUnsupportedUsage, desc.Usage, required)
	}

	if _, ok := formatTable[desc.Format]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, desc.Format)
	}

	return nil
}

// levelView creates a view of a single mip level of the texture.
func levelView(texture *wgpu.Texture, format wgpu.TextureFormat, level uint32, label string) (*wgpu.TextureView, error) {
	return texture.TryCreateView(&wgpu.TextureViewDescriptor{
		Label:           label,
		Format:          format,
		Dimension:       wgpu.TextureViewDimension2D,
		Aspect:          wgpu.TextureAspectAll,
		BaseMipLevel:    level,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
	})
}
