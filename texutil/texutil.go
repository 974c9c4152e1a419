// Package texutil provides CPU side helpers around texel data: test
// patterns, sRGB conversion, reference box downsampling and the row padding
// math needed for texture to buffer copies.
package texutil

// wgpu requires rows in buffer copies to start at a multiple of 256 bytes
const rowAlignment = 256

// PaddedBytesPerRow returns the stride of one row in a texture to buffer
// copy, rounded up to the copy alignment.
func PaddedBytesPerRow(width, texelBytes uint32) uint32 {
	unpadded := width * texelBytes
	return (unpadded + rowAlignment - 1) / rowAlignment * rowAlignment
}

// UnpadRows compacts texel data copied out of a texture by dropping the
// padding at the end of each row.
func UnpadRows(data []byte, width, height, texelBytes uint32) []byte {
	stride := PaddedBytesPerRow(width, texelBytes)
	row := width * texelBytes

	if stride == row {
		return data[:uint64(row)*uint64(height)]
	}

	out := make([]byte, 0, uint64(row)*uint64(height))

	for y := uint32(0); y < height; y++ {
		offset := uint64(y) * uint64(stride)
		out = append(out, data[offset:offset+uint64(row)]...)
	}

	return out
}

// HalfDimension returns the size of the next smaller mip level.
func HalfDimension(value uint32) uint32 {
	return max(value/2, 1)
}
