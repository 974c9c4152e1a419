package mipmap

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	require.Len(t, formats, 17)

	for _, format := range formats {
		size, err := TexelBytes(format)
		require.NoError(t, err, "format %s", format)
		assert.NotZero(t, size, "format %s", format)
	}
}

func TestTexelBytes(t *testing.T) {
	tests := []struct {
		format wgpu.TextureFormat
		want   uint32
	}{
		{wgpu.TextureFormatR8Unorm, 1},
		{wgpu.TextureFormatR16Float, 2},
		{wgpu.TextureFormatRGBA8Unorm, 4},
		{wgpu.TextureFormatRG11B10Ufloat, 4},
		{wgpu.TextureFormatRG32Float, 8},
		{wgpu.TextureFormatRGBA32Float, 16},
	}

	for _, tt := range tests {
		got, err := TexelBytes(tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "format %s", tt.format)
	}

	_, err := TexelBytes(wgpu.TextureFormatDepth32Float)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSupportsStorage(t *testing.T) {
	assert.True(t, supportsStorage(wgpu.TextureFormatRGBA8Unorm))
	assert.True(t, supportsStorage(wgpu.TextureFormatRGBA8UnormSrgb))
	assert.True(t, supportsStorage(wgpu.TextureFormatR32Float))

	// no WGSL storage texel format exists for these
	assert.False(t, supportsStorage(wgpu.TextureFormatR8Unorm))
	assert.False(t, supportsStorage(wgpu.TextureFormatBGRA8Unorm))
	assert.False(t, supportsStorage(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, supportsStorage(wgpu.TextureFormatRG16Float))
}

func TestStorageViewFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, storageViewFormat(wgpu.TextureFormatRGBA8UnormSrgb))
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, storageViewFormat(wgpu.TextureFormatRGBA8Unorm))
	assert.Equal(t, wgpu.TextureFormatR32Float, storageViewFormat(wgpu.TextureFormatR32Float))
}

func TestNeedsPlatformSrgbWorkaround(t *testing.T) {
	assert.True(t, needsPlatformSrgbWorkaround(wgpu.TextureFormatRGBA8UnormSrgb, "darwin"))
	assert.False(t, needsPlatformSrgbWorkaround(wgpu.TextureFormatRGBA8UnormSrgb, "linux"))
	assert.False(t, needsPlatformSrgbWorkaround(wgpu.TextureFormatRGBA8Unorm, "darwin"))
}
