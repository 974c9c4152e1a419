package texutil

import (
	fastnoiselite "github.com/furui/fastnoiselite-go"
)

// CheckerboardRGBA8 fills a black and white checkerboard with the given cell
// edge length. Alpha is opaque everywhere.
func CheckerboardRGBA8(width, height, cell uint32) []byte {
	data := make([]byte, width*height*4)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			value := checkerValue(x, y, cell)

			i := (y*width + x) * 4
			data[i+0] = value
			data[i+1] = value
			data[i+2] = value
			data[i+3] = 0xff
		}
	}

	return data
}

// CheckerboardR8 fills a single channel checkerboard.
func CheckerboardR8(width, height, cell uint32) []byte {
	data := make([]byte, width*height)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			data[y*width+x] = checkerValue(x, y, cell)
		}
	}

	return data
}

// CheckerboardRGBA32F fills a float checkerboard, one vec4 per texel.
func CheckerboardRGBA32F(width, height, cell uint32) []float32 {
	data := make([]float32, width*height*4)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			var value float32
			if checkerValue(x, y, cell) != 0 {
				value = 1
			}

			i := (y*width + x) * 4
			data[i+0] = value
			data[i+1] = value
			data[i+2] = value
			data[i+3] = 1
		}
	}

	return data
}

func checkerValue(x, y, cell uint32) byte {
	if (x/cell+y/cell)%2 == 0 {
		return 0xff
	}

	return 0
}

// NoiseRGBA8 fills an opaque grayscale texture with smooth simplex noise.
func NoiseRGBA8(width, height uint32, seed int32) []byte {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.FractalType = fastnoiselite.FractalTypeFBm
	noise.Seed = seed

	data := make([]byte, width*height*4)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			sample := noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y))

			// noise is in [-1, 1]
			value := byte((float32(sample)*0.5 + 0.5) * 255)

			i := (y*width + x) * 4
			data[i+0] = value
			data[i+1] = value
			data[i+2] = value
			data[i+3] = 0xff
		}
	}

	return data
}
