package mipmap

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// pipeline is implemented by both wgpu pipeline handle types.
type pipeline interface {
	GetBindGroupLayout(index uint32) *wgpu.BindGroupLayout
	Release()
}

// pipelineConfig describes everything needed to specialize one pipeline.
// Configs double as cache keys and must therefore be comparable.
type pipelineConfig[P pipeline] interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current pipelineConfig
	Specialize(dev *wgpu.Device) (P, error)
}

type cachedPipeline[P pipeline] struct {
	Pipeline P
	layouts  *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// GetBindGroupLayout returns the layout at the given group index. The layout
// is owned by the cache, callers must not release it.
func (pc cachedPipeline[P]) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	layout, ok := pc.layouts.Get(idx)
	if ok {
		return layout
	}

	layout = pc.Pipeline.GetBindGroupLayout(idx)
	pc.layouts.Add(idx, layout)

	return layout
}

type pipelineCache[C pipelineConfig[P], P pipeline] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, cachedPipeline[P]]
}

func newPipelineCache[C pipelineConfig[P], P pipeline](dev *wgpu.Device) *pipelineCache[C, P] {
	cache, _ := lru.NewWithEvict[C, cachedPipeline[P]](32, releasePipelineOnEviction[C, P])

	return &pipelineCache[C, P]{
		device: dev,
		cache:  cache,
	}
}

func (p *pipelineCache[C, P]) Get(conf C) (cachedPipeline[P], error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipe, err := conf.Specialize(p.device)
	if err != nil {
		return cachedPipeline[P]{}, fmt.Errorf("build pipeline: %w", err)
	}

	layouts, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](4, releaseBindGroupLayoutOnEviction)

	pc := cachedPipeline[P]{Pipeline: pipe, layouts: layouts}
	p.cache.Add(conf, pc)

	return pc, nil
}

// Release drops all cached pipelines and their bind group layouts.
func (p *pipelineCache[C, P]) Release() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C pipelineConfig[P], P pipeline](_config C, pipe cachedPipeline[P]) {
	pipe.layouts.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, ev *wgpu.BindGroupLayout) {
	ev.Release()
}
