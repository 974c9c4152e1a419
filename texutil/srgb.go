package texutil

import "github.com/chewxy/math32"

// SrgbToLinear decodes one gamma encoded channel value in [0, 1].
func SrgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}

	return math32.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSrgb encodes one linear channel value in [0, 1].
func LinearToSrgb(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}

	return 1.055*math32.Pow(c, 1.0/2.4) - 0.055
}
