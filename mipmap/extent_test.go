package mipmap

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestMaxLevelCount(t *testing.T) {
	tests := []struct {
		name   string
		width  uint32
		height uint32
		want   uint32
	}{
		{"1x1", 1, 1, 1},
		{"2x2", 2, 2, 2},
		{"512x512", 512, 512, 10},
		{"1024x512 wide", 1024, 512, 11},
		{"512x1024 tall", 512, 1024, 11},
		{"100x50 odd", 100, 50, 7},
		{"640x480 npot", 640, 480, 10},
		{"0x0 clamps to one texel", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxLevelCount(tt.width, tt.height); got != tt.want {
				t.Errorf("MaxLevelCount(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestMipDimension(t *testing.T) {
	tests := []struct {
		value uint32
		level uint32
		want  uint32
	}{
		{512, 0, 512},
		{512, 1, 256},
		{512, 3, 64},
		{512, 9, 1},
		{5, 1, 2},
		{5, 2, 1},
		{1, 5, 1},
	}

	for _, tt := range tests {
		if got := mipDimension(tt.value, tt.level); got != tt.want {
			t.Errorf("mipDimension(%d, %d) = %d, want %d", tt.value, tt.level, got, tt.want)
		}
	}
}

func TestMipExtent(t *testing.T) {
	size := wgpu.Extent3D{Width: 100, Height: 37, DepthOrArrayLayers: 1}

	got := mipExtent(size, 2)
	want := wgpu.Extent3D{Width: 25, Height: 9, DepthOrArrayLayers: 1}

	if got != want {
		t.Errorf("mipExtent(%v, 2) = %v, want %v", size, got, want)
	}

	// deep levels clamp to one texel but keep the layer count
	if got := mipExtent(size, 20); got.Width != 1 || got.Height != 1 || got.DepthOrArrayLayers != 1 {
		t.Errorf("mipExtent(%v, 20) = %v, want 1x1x1", size, got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		value uint32
		want  bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{255, false},
		{256, true},
		{1 << 31, true},
	}

	for _, tt := range tests {
		if got := isPowerOfTwo(tt.value); got != tt.want {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEffectiveLevelCount(t *testing.T) {
	desc := func(levels uint32) *wgpu.TextureDescriptor {
		return &wgpu.TextureDescriptor{
			Size:          wgpu.Extent3D{Width: 512, Height: 512, DepthOrArrayLayers: 1},
			MipLevelCount: levels,
		}
	}

	// a full chain of a 512x512 texture has 10 levels and 9 transitions
	if got := effectiveLevelCount(desc(10)); got != 10 {
		t.Errorf("effectiveLevelCount = %d, want 10", got)
	}

	// more levels than the size supports clamp down
	if got := effectiveLevelCount(desc(99)); got != 10 {
		t.Errorf("effectiveLevelCount = %d, want 10", got)
	}

	// a partial chain stays as requested
	if got := effectiveLevelCount(desc(4)); got != 4 {
		t.Errorf("effectiveLevelCount = %d, want 4", got)
	}

	if got := effectiveLevelCount(desc(1)); got != 1 {
		t.Errorf("effectiveLevelCount = %d, want 1", got)
	}
}
