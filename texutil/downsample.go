package texutil

// BoxDownsampleRGBA8 computes the next mip level of an RGBA8 image on the
// CPU. Every target texel is the average of the 2x2 source texels behind it,
// reads are clamped to the edge. All channels are treated as linear values.
func BoxDownsampleRGBA8(src []byte, width, height uint32) ([]byte, uint32, uint32) {
	dstW, dstH := HalfDimension(width), HalfDimension(height)
	dst := make([]byte, dstW*dstH*4)

	for y := uint32(0); y < dstH; y++ {
		for x := uint32(0); x < dstW; x++ {
			for c := uint32(0); c < 4; c++ {
				var sum uint32
				for _, tap := range taps(x, y, width, height) {
					sum += uint32(src[tap*4+c])
				}

				dst[(y*dstW+x)*4+c] = byte(sum / 4)
			}
		}
	}

	return dst, dstW, dstH
}

// BoxDownsampleSrgbRGBA8 computes the next mip level of a gamma encoded
// RGBA8 image. Color channels are decoded to linear, averaged and encoded
// again, alpha is averaged as is.
func BoxDownsampleSrgbRGBA8(src []byte, width, height uint32) ([]byte, uint32, uint32) {
	dstW, dstH := HalfDimension(width), HalfDimension(height)
	dst := make([]byte, dstW*dstH*4)

	for y := uint32(0); y < dstH; y++ {
		for x := uint32(0); x < dstW; x++ {
			var rgb [3]float32
			var alpha float32

			for _, tap := range taps(x, y, width, height) {
				for c := range rgb {
					rgb[c] += SrgbToLinear(float32(src[tap*4+uint32(c)]) / 255)
				}

				alpha += float32(src[tap*4+3]) / 255
			}

			i := (y*dstW + x) * 4
			for c := range rgb {
				dst[i+uint32(c)] = byte(LinearToSrgb(rgb[c]/4)*255 + 0.5)
			}

			dst[i+3] = byte(alpha/4*255 + 0.5)
		}
	}

	return dst, dstW, dstH
}

// BoxDownsampleR8 computes the next mip level of a single channel image.
func BoxDownsampleR8(src []byte, width, height uint32) ([]byte, uint32, uint32) {
	dstW, dstH := HalfDimension(width), HalfDimension(height)
	dst := make([]byte, dstW*dstH)

	for y := uint32(0); y < dstH; y++ {
		for x := uint32(0); x < dstW; x++ {
			var sum uint32
			for _, tap := range taps(x, y, width, height) {
				sum += uint32(src[tap])
			}

			dst[y*dstW+x] = byte(sum / 4)
		}
	}

	return dst, dstW, dstH
}

// taps returns the flat indices of the 2x2 source texels behind the target
// texel at (x, y), clamped to the source edges.
func taps(x, y, width, height uint32) [4]uint32 {
	x0, y0 := x*2, y*2
	x1, y1 := min(x0+1, width-1), min(y0+1, height-1)

	return [4]uint32{
		y0*width + x0,
		y0*width + x1,
		y1*width + x0,
		y1*width + x1,
	}
}
