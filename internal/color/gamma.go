// Package color provides gamma conversion between encoded 8-bit
// channel values and linear light, using a lookup table on the
// linearize side to avoid math.Pow per pixel.
//
// The quantizer averages bucket colors in linear space (exponent 2.2)
// and re-encodes the mean with exponent 1/2.2. Averaging encoded
// values directly darkens mixed colors noticeably; the round trip
// through linear space is required for perceptually accurate palettes.
package color

import "math"

const gamma = 2.2

// linearLUT maps an encoded channel byte to linear light [0,1].
var linearLUT [256]float64

func init() {
	for i := range linearLUT {
		linearLUT[i] = math.Pow(float64(i)/255, gamma)
	}
}

// Linearize converts an encoded channel byte to linear light.
func Linearize(c uint8) float64 {
	return linearLUT[c]
}

// Encode converts linear light back to an encoded channel byte with
// rounding, clamping to [0,255].
func Encode(l float64) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	v := int(math.Pow(l, 1/gamma)*255 + 0.5)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
