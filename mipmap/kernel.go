package mipmap

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy

// Strategy identifies how a generator moves texels from one mip level to the
// next.
type Strategy int32

const (
	// StrategyCompute filters between storage views in compute passes.
	StrategyCompute Strategy = iota

	// StrategyRender samples each level into the next one in render passes.
	StrategyRender

	// StrategyCopy renders the chain into a shadow texture and copies the
	// levels back into the original.
	StrategyCopy
)

//go:embed box.wgsl
var boxSource string

//go:embed box_srgb.wgsl
var boxSrgbSource string

//go:embed box_srgb_darwin.wgsl
var boxSrgbDarwinSource string

//go:embed blit.wgsl
var blitSource string

// kernel is one WGSL source together with the entry point to run.
type kernel struct {
	name   string
	source string
	entry  string
}

// computeKernelFor selects the box filter kernel for the given format. The
// goos parameter decides whether the Metal variant of the sRGB kernel is
// needed, callers outside of tests pass runtime.GOOS.
func computeKernelFor(format wgpu.TextureFormat, goos string) (kernel, error) {
	info, ok := formatTable[format]
	if !ok {
		return kernel{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	switch {
	case info.storageFormat == "":
		return kernel{}, fmt.Errorf("%w: %s can not be bound as a storage texture", ErrUnsupportedFormat, format)

	case needsPlatformSrgbWorkaround(format, goos):
		return kernel{name: "box_srgb_darwin", source: boxSrgbDarwinSource, entry: "box_filter"}, nil

	case info.srgb:
		return kernel{name: "box_srgb", source: boxSrgbSource, entry: "box_filter"}, nil

	default:
		return kernel{
			name:   "box_" + info.storageFormat,
			source: strings.ReplaceAll(boxSource, "__FORMAT__", info.storageFormat),
			entry:  "box_filter",
		}, nil
	}
}

// renderKernelFor selects the blit kernel for the given format. The source
// does not depend on the format, the lookup only rejects formats outside of
// the recognized set.
func renderKernelFor(format wgpu.TextureFormat) (kernel, error) {
	if _, ok := formatTable[format]; !ok {
		return kernel{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return kernel{name: "blit", source: blitSource, entry: "fs_main"}, nil
}

// hasComputeKernel reports whether a box filter kernel exists for the format
// on this platform.
func hasComputeKernel(format wgpu.TextureFormat) bool {
	_, err := computeKernelFor(format, runtime.GOOS)
	return err == nil
}
