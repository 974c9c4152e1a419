package mipmap

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// formatInfo describes one entry of the closed set of recognized formats.
type formatInfo struct {
	// size of one texel in bytes, used for copy alignment math
	texelBytes uint32

	// WGSL storage texel format this format binds as in a compute kernel.
	// Empty if the format can not be used as a storage texture.
	storageFormat string

	// true for gamma encoded formats
	srgb bool
}

// formatTable is the closed set of formats the generators recognize.
// Built once, never mutated.
var formatTable = map[wgpu.TextureFormat]formatInfo{
	wgpu.TextureFormatR8Unorm:        {texelBytes: 1},
	wgpu.TextureFormatR8Snorm:        {texelBytes: 1},
	wgpu.TextureFormatR16Float:       {texelBytes: 2},
	wgpu.TextureFormatRG8Unorm:       {texelBytes: 2},
	wgpu.TextureFormatRG8Snorm:       {texelBytes: 2},
	wgpu.TextureFormatR32Float:       {texelBytes: 4, storageFormat: "r32float"},
	wgpu.TextureFormatRG16Float:      {texelBytes: 4},
	wgpu.TextureFormatRGBA8Unorm:     {texelBytes: 4, storageFormat: "rgba8unorm"},
	wgpu.TextureFormatRGBA8Snorm:     {texelBytes: 4, storageFormat: "rgba8snorm"},
	wgpu.TextureFormatBGRA8Unorm:     {texelBytes: 4},
	wgpu.TextureFormatBGRA8UnormSrgb: {texelBytes: 4, srgb: true},
	wgpu.TextureFormatRGBA8UnormSrgb: {texelBytes: 4, storageFormat: "rgba8unorm", srgb: true},
	wgpu.TextureFormatRGB10A2Unorm:   {texelBytes: 4},
	wgpu.TextureFormatRG11B10Ufloat:  {texelBytes: 4},
	wgpu.TextureFormatRG32Float:      {texelBytes: 8, storageFormat: "rg32float"},
	wgpu.TextureFormatRGBA16Float:    {texelBytes: 8, storageFormat: "rgba16float"},
	wgpu.TextureFormatRGBA32Float:    {texelBytes: 16, storageFormat: "rgba32float"},
}

// SupportedFormats returns the closed set of formats the generators accept.
// Formats without a storage capable representation are still supported by
// the render and copy backends.
func SupportedFormats() []wgpu.TextureFormat {
	formats := make([]wgpu.TextureFormat, 0, len(formatTable))
	for format := range formatTable {
		formats = append(formats, format)
	}

	return formats
}

// TexelBytes returns the size of one texel of the given format in bytes.
func TexelBytes(format wgpu.TextureFormat) (uint32, error) {
	info, ok := formatTable[format]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return info.texelBytes, nil
}

// supportsStorage reports whether the format can be bound as a storage
// texture in a compute kernel.
func supportsStorage(format wgpu.TextureFormat) bool {
	return formatTable[format].storageFormat != ""
}

// storageViewFormat returns the format a texture must be viewed as for
// storage binding. Gamma encoded formats bind through their linear
// counterpart, the kernel handles the conversion itself. The texture has to
// list the view format in its descriptor for this to be valid.
func storageViewFormat(format wgpu.TextureFormat) wgpu.TextureFormat {
	if format == wgpu.TextureFormatRGBA8UnormSrgb {
		return wgpu.TextureFormatRGBA8Unorm
	}

	return format
}

// needsPlatformSrgbWorkaround reports whether storage access to the format
// goes through an implicit gamma conversion on the given platform. Metal
// decodes sRGB texels on load inside a compute kernel but still expects the
// kernel to store encoded values, so darwin gets a dedicated kernel.
func needsPlatformSrgbWorkaround(format wgpu.TextureFormat, goos string) bool {
	return formatTable[format].srgb && goos == "darwin"
}
