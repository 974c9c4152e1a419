package headless

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/oliverbestmann/wgpu-mipmap/mipmap"
	"github.com/oliverbestmann/wgpu-mipmap/texutil"
)

// CreateTextureWithData creates a texture and uploads data into its level 0.
// The descriptor must carry CopyDst usage for the upload.
func (c *Context) CreateTextureWithData(desc *wgpu.TextureDescriptor, data []byte) (*wgpu.Texture, error) {
	texelBytes, err := mipmap.TexelBytes(desc.Format)
	if err != nil {
		return nil, err
	}

	texture, err := c.Device.TryCreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	c.Queue.WriteTexture(
		&wgpu.TexelCopyTextureInfo{
			Texture:  texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		data,
		&wgpu.TexelCopyBufferLayout{
			Offset:       0,
			BytesPerRow:  desc.Size.Width * texelBytes,
			RowsPerImage: desc.Size.Height,
		},
		&desc.Size,
	)

	return texture, nil
}

// ReadMipLevel copies one mip level into a staging buffer and returns its
// texels as tightly packed rows. The texture needs CopySrc usage.
func (c *Context) ReadMipLevel(texture *wgpu.Texture, desc *wgpu.TextureDescriptor, level uint32) ([]byte, error) {
	texelBytes, err := mipmap.TexelBytes(desc.Format)
	if err != nil {
		return nil, err
	}

	width := max(desc.Size.Width>>level, 1)
	height := max(desc.Size.Height>>level, 1)

	stride := texutil.PaddedBytesPerRow(width, texelBytes)
	size := uint64(stride) * uint64(height)

	staging, err := c.Device.TryCreateBuffer(&wgpu.BufferDescriptor{
		Label: "mipmap-staging",
		Size:  size,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}

	defer staging.Release()

	enc, err := c.Device.TryCreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	enc.CopyTextureToBuffer(
		&wgpu.TexelCopyTextureInfo{
			Texture:  texture,
			MipLevel: level,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.TexelCopyBufferInfo{
			Layout: wgpu.TexelCopyBufferLayout{
				Offset:       0,
				BytesPerRow:  stride,
				RowsPerImage: height,
			},
			Buffer: staging,
		},
		&wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)

	cmd := enc.Finish(nil)
	defer cmd.Release()

	c.Queue.Submit(cmd)

	var mapStatus wgpu.MapAsyncStatus

	err = staging.TryMapAsync(wgpu.MapModeRead, 0, size, func(status wgpu.MapAsyncStatus) {
		mapStatus = status
	})
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}

	c.Device.Poll(true, nil)

	if mapStatus != wgpu.MapAsyncStatusSuccess {
		return nil, fmt.Errorf("map staging buffer: status %v", mapStatus)
	}

	defer staging.Unmap()

	mapped := staging.GetMappedRange(0, uint(size))

	padded := make([]byte, len(mapped))
	copy(padded, mapped)

	return texutil.UnpadRows(padded, width, height, texelBytes), nil
}

// ReadMipLevels reads every level of the texture, level 0 first.
func (c *Context) ReadMipLevels(texture *wgpu.Texture, desc *wgpu.TextureDescriptor) ([][]byte, error) {
	levels := make([][]byte, desc.MipLevelCount)

	for level := range desc.MipLevelCount {
		data, err := c.ReadMipLevel(texture, desc, level)
		if err != nil {
			return nil, fmt.Errorf("read level %d: %w", level, err)
		}

		levels[level] = data
	}

	return levels, nil
}

// GenerateAndRead uploads level 0, runs the generator and reads the whole
// chain back. The descriptor must carry CopyDst and CopySrc usage on top of
// what the generator itself needs.
func (c *Context) GenerateAndRead(gen mipmap.Generator, desc *wgpu.TextureDescriptor, level0 []byte) ([][]byte, error) {
	texture, err := c.CreateTextureWithData(desc, level0)
	if err != nil {
		return nil, err
	}

	defer texture.Release()

	enc, err := c.Device.TryCreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	if err := gen.Generate(c.Device, enc, texture, desc); err != nil {
		return nil, err
	}

	cmd := enc.Finish(nil)
	defer cmd.Release()

	c.Queue.Submit(cmd)

	return c.ReadMipLevels(texture, desc)
}
