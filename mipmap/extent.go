package mipmap

import (
	"math/bits"

	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/exp/constraints"
)

func isPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// MaxLevelCount returns the number of levels in a full mip chain for a
// texture of the given size: 1 + floor(log2(max(width, height))).
func MaxLevelCount(width, height uint32) uint32 {
	return uint32(bits.Len32(max(width, height, 1)))
}

// mipDimension returns the size of one axis at the given mip level,
// clamped to one texel.
func mipDimension(value, level uint32) uint32 {
	return max(value>>level, 1)
}

// mipExtent returns the extent of the given mip level.
func mipExtent(size wgpu.Extent3D, level uint32) wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              mipDimension(size.Width, level),
		Height:             mipDimension(size.Height, level),
		DepthOrArrayLayers: max(size.DepthOrArrayLayers, 1),
	}
}

// effectiveLevelCount clamps the mip level count declared on the descriptor
// to the longest chain the texture size can represent. No generated work
// unit ever references a level at or beyond the returned count.
func effectiveLevelCount(desc *wgpu.TextureDescriptor) uint32 {
	return min(desc.MipLevelCount, MaxLevelCount(desc.Size.Width, desc.Size.Height))
}
