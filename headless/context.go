// Package headless creates wgpu devices without a window or surface and
// moves texel data between textures and the CPU. It backs the tests and the
// offscreen examples.
package headless

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context bundles a surface-less device with its queue and adapter.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Adapter *wgpu.Adapter
}

// New creates a device on the first available adapter. Set
// WGPU_FORCE_FALLBACK_ADAPTER=1 to run on a software adapter.
func New() (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
	})

	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	return ctx, nil
}

func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
}
