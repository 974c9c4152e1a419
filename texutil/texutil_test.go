package texutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddedBytesPerRow(t *testing.T) {
	tests := []struct {
		name       string
		width      uint32
		texelBytes uint32
		want       uint32
	}{
		{"already aligned", 64, 4, 256},
		{"one texel", 1, 4, 256},
		{"needs padding", 100, 4, 512},
		{"single channel", 100, 1, 256},
		{"wide float row", 512, 16, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaddedBytesPerRow(tt.width, tt.texelBytes))
		})
	}
}

func TestUnpadRows(t *testing.T) {
	const width, height, texelBytes = 3, 2, 1

	stride := PaddedBytesPerRow(width, texelBytes)
	padded := make([]byte, stride*height)
	copy(padded[0:], []byte{1, 2, 3})
	copy(padded[stride:], []byte{4, 5, 6})

	got := UnpadRows(padded, width, height, texelBytes)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, got)

	// aligned data passes through unchanged
	aligned := make([]byte, 256*2)
	aligned[0], aligned[256] = 7, 8
	got = UnpadRows(aligned, 256, 2, 1)
	require.Len(t, got, 512)
	assert.Equal(t, byte(7), got[0])
	assert.Equal(t, byte(8), got[256])
}

func TestHalfDimension(t *testing.T) {
	assert.Equal(t, uint32(256), HalfDimension(512))
	assert.Equal(t, uint32(2), HalfDimension(5))
	assert.Equal(t, uint32(1), HalfDimension(1))
}

func TestCheckerboardRGBA8(t *testing.T) {
	data := CheckerboardRGBA8(4, 4, 2)
	require.Len(t, data, 4*4*4)

	// first cell is white, the one right of it black
	assert.Equal(t, byte(0xff), data[0])
	assert.Equal(t, byte(0), data[2*4])

	// opaque everywhere
	for i := 3; i < len(data); i += 4 {
		require.Equal(t, byte(0xff), data[i])
	}
}

func TestCheckerboardR8MatchesRGBA8(t *testing.T) {
	r8 := CheckerboardR8(8, 8, 2)
	rgba := CheckerboardRGBA8(8, 8, 2)

	for i, value := range r8 {
		assert.Equal(t, rgba[i*4], value, "texel %d", i)
	}
}

func TestCheckerboardRGBA32F(t *testing.T) {
	data := CheckerboardRGBA32F(4, 4, 1)
	require.Len(t, data, 4*4*4)

	// cells alternate between one and zero, alpha stays one
	assert.Equal(t, float32(1), data[0])
	assert.Equal(t, float32(0), data[4])

	for i := 3; i < len(data); i += 4 {
		require.Equal(t, float32(1), data[i], "texel %d", i/4)
	}
}

func TestNoiseRGBA8(t *testing.T) {
	data := NoiseRGBA8(16, 16, 1337)
	require.Len(t, data, 16*16*4)

	// grayscale and opaque
	for i := 0; i < len(data); i += 4 {
		require.Equal(t, data[i], data[i+1])
		require.Equal(t, data[i], data[i+2])
		require.Equal(t, byte(0xff), data[i+3])
	}

	// the same seed reproduces the same data
	assert.Equal(t, data, NoiseRGBA8(16, 16, 1337))
}

func TestSrgbRoundtrip(t *testing.T) {
	for _, value := range []float32{0, 0.001, 0.1, 0.5, 0.9, 1} {
		got := SrgbToLinear(LinearToSrgb(value))
		assert.InDelta(t, value, got, 1e-5)
	}
}

func TestBoxDownsampleRGBA8(t *testing.T) {
	// 2x2 with two white and two black texels
	src := []byte{
		255, 255, 255, 255 /**/, 0, 0, 0, 255,
		0, 0, 0, 255 /*     */, 255, 255, 255, 255,
	}

	dst, w, h := BoxDownsampleRGBA8(src, 2, 2)
	require.Equal(t, uint32(1), w)
	require.Equal(t, uint32(1), h)

	// plain byte average, (255+255+0+0)/4
	assert.Equal(t, byte(127), dst[0])
	assert.Equal(t, byte(255), dst[3])
}

func TestBoxDownsampleSrgbRGBA8(t *testing.T) {
	src := []byte{
		255, 255, 255, 255 /**/, 0, 0, 0, 255,
		0, 0, 0, 255 /*     */, 255, 255, 255, 255,
	}

	dst, _, _ := BoxDownsampleSrgbRGBA8(src, 2, 2)

	// averaging half white and half black in linear space gives 0.5, which
	// encodes to roughly 188. The naive encoded average of 127 is off by a
	// wide margin, that difference is what the sRGB kernels exist for.
	want := byte(LinearToSrgb(0.5)*255 + 0.5)
	assert.InDelta(t, want, dst[0], 1)
	assert.Greater(t, dst[0]-127, byte(12))

	// alpha stays a plain average
	assert.Equal(t, byte(255), dst[3])
}

func TestBoxDownsampleClampsAtOddEdges(t *testing.T) {
	// 3x1 single channel, the last target texel reads column 2 twice
	src := []byte{10, 20, 30}

	dst, w, h := BoxDownsampleR8(src, 3, 1)
	require.Equal(t, uint32(1), w)
	require.Equal(t, uint32(1), h)

	// taps clamp to (10+20+10+20)/4
	assert.Equal(t, byte(15), dst[0])
}
