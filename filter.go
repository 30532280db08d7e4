package pix

import "github.com/gopix/pix/internal/filter"

// clampIndex clamps i to [0, n). Convolution samples beyond the image
// edge repeat the edge pixel.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Convolve applies the 1D kernel separably: one horizontal pass, then
// one vertical pass over the result. The kernel must have an odd,
// positive number of taps; anything else is rejected with
// ErrKernelSize before any pixel is touched. All four channels are
// filtered; results are rounded and clamped to [0,255].
func (im *Image) Convolve(kernel []float32) error {
	if err := filter.Validate(kernel); err != nil {
		return err
	}
	half := len(kernel) / 2
	w, h := im.width, im.height

	tmp := make([]RGBA, len(im.pix))
	for y := 0; y < h; y++ {
		row := im.row(y)
		out := tmp[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for t, k := range kernel {
				s := row[clampIndex(x+t-half, w)]
				r += float32(s.R) * k
				g += float32(s.G) * k
				b += float32(s.B) * k
				a += float32(s.A) * k
			}
			out[x] = RGBA{roundChannel(r), roundChannel(g), roundChannel(b), roundChannel(a)}
		}
	}
	for y := 0; y < h; y++ {
		row := im.row(y)
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for t, k := range kernel {
				s := tmp[clampIndex(y+t-half, h)*w+x]
				r += float32(s.R) * k
				g += float32(s.G) * k
				b += float32(s.B) * k
				a += float32(s.A) * k
			}
			row[x] = RGBA{roundChannel(r), roundChannel(g), roundChannel(b), roundChannel(a)}
		}
	}
	return nil
}

// Blur applies a Gaussian blur with the given standard deviation in
// pixels. Non-positive sigma is a no-op.
func (im *Image) Blur(sigma float64) error {
	return im.Convolve(filter.Gaussian(sigma))
}

// BoxBlur applies a uniform blur with the given radius in pixels.
func (im *Image) BoxBlur(radius int) error {
	return im.Convolve(filter.Box(radius))
}

func roundChannel(v float32) uint8 {
	n := int(v + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
