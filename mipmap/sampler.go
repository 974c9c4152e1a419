package mipmap

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// samplers belong to the device that created them, a shared descriptor does
// not make them interchangeable across devices
type samplerKey struct {
	dev  *wgpu.Device
	desc wgpu.SamplerDescriptor
}

var samplerCache, _ = lru.NewWithEvict[samplerKey, *wgpu.Sampler](16, samplerCacheOnEvict)

func samplerCacheOnEvict(key samplerKey, value *wgpu.Sampler) {
	value.Release()
}

// cachedSampler returns a sampler matching the description. The sampler may
// be cached, callers must not release it.
func cachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) *wgpu.Sampler {
	key := samplerKey{dev: dev, desc: desc}

	sampler, ok := samplerCache.Get(key)
	if ok {
		return sampler
	}

	sampler = dev.CreateSampler(&desc)
	samplerCache.Add(key, sampler)

	return sampler
}

// boxSampler describes the sampler the render backend filters with. The blit
// samples at an explicit lod of zero and rasterizes at half the source
// resolution, which counts as minification, so both filters are linear.
// Linear filtering at the destination texel center is exactly the 2x2 box
// average of the source.
func boxSampler(dev *wgpu.Device) *wgpu.Sampler {
	return cachedSampler(dev, wgpu.SamplerDescriptor{
		Label:         "mipmap-box-sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})
}
