package mipmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oliverbestmann/wgpu-mipmap/headless"
	"github.com/oliverbestmann/wgpu-mipmap/mipmap"
)

func TestBoxSamplerIsPerDevice(t *testing.T) {
	first, err := headless.New()
	if err != nil {
		t.Skipf("Need a GPU or software adapter for this test: %v", err)
	}

	defer first.Release()

	second, err := headless.New()
	if err != nil {
		t.Skipf("Need a second device for this test: %v", err)
	}

	defer second.Release()

	// repeated lookups on one device hit the cache, a second device gets its
	// own sampler even though the descriptor is identical
	assert.Same(t, mipmap.BoxSampler(first.Device), mipmap.BoxSampler(first.Device))
	assert.NotSame(t, mipmap.BoxSampler(first.Device), mipmap.BoxSampler(second.Device))
}
