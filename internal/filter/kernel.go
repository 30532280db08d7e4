// Package filter generates and validates 1D convolution kernels for
// separable filtering.
package filter

import (
	"errors"
	"math"
)

// ErrKernelSize is returned for kernels that are empty or have an even
// number of taps. Separable application needs a well-defined center
// tap, so only odd sizes are legal.
var ErrKernelSize = errors.New("filter: kernel size must be odd and positive")

// Validate checks that a kernel can be applied separably.
func Validate(kernel []float32) error {
	if len(kernel) == 0 || len(kernel)%2 == 0 {
		return ErrKernelSize
	}
	return nil
}

// Normalize scales the kernel in place so its taps sum to 1. A kernel
// summing to zero (e.g. an edge detector) is left untouched.
func Normalize(kernel []float32) {
	var sum float64
	for _, v := range kernel {
		sum += float64(v)
	}
	if sum == 0 {
		return
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
}

// Gaussian builds a normalized 1D Gaussian kernel with the given
// standard deviation. The kernel spans three standard deviations each
// side of the center, which covers 99.7% of the distribution. A
// non-positive sigma yields the identity kernel.
func Gaussian(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = float32(math.Exp(-(x * x) / twoSigmaSq))
	}
	Normalize(kernel)
	return kernel
}

// Box builds a uniform kernel with 2*radius+1 equal taps. A
// non-positive radius yields the identity kernel.
func Box(radius int) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	n := 2*radius + 1
	kernel := make([]float32, n)
	v := float32(1) / float32(n)
	for i := range kernel {
		kernel[i] = v
	}
	return kernel
}
