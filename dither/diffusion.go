package dither

import "github.com/gopix/pix"

// tap is one destination of diffused error: an offset from the
// current pixel and a weight numerator. Offsets point only at pixels
// not yet visited in row-major order.
type tap struct {
	dx, dy int
	weight int32
}

// kernel is a diffusion pattern. The taps' weights sum to div, so the
// full quantization error is redistributed (Atkinson deliberately
// sums to less, dropping part of the error for a softer look).
type kernel struct {
	taps []tap
	div  int32
}

var (
	floydSteinberg = kernel{
		taps: []tap{{1, 0, 7}, {-1, 1, 3}, {0, 1, 5}, {1, 1, 1}},
		div:  16,
	}
	atkinson = kernel{
		taps: []tap{{1, 0, 1}, {2, 0, 1}, {-1, 1, 1}, {0, 1, 1}, {1, 1, 1}, {0, 2, 1}},
		div:  8,
	}
	stucki = kernel{
		taps: []tap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
			{-2, 2, 1}, {-1, 2, 2}, {0, 2, 4}, {1, 2, 2}, {2, 2, 1},
		},
		div: 42,
	}
	burkes = kernel{
		taps: []tap{
			{1, 0, 8}, {2, 0, 4},
			{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
		},
		div: 32,
	}
	jarvis = kernel{
		taps: []tap{
			{1, 0, 7}, {2, 0, 5},
			{-2, 1, 3}, {-1, 1, 5}, {0, 1, 7}, {1, 1, 5}, {2, 1, 3},
			{-2, 2, 1}, {-1, 2, 3}, {0, 2, 5}, {1, 2, 3}, {2, 2, 1},
		},
		div: 48,
	}
)

func (k kernel) height() int {
	h := 0
	for _, t := range k.taps {
		if t.dy > h {
			h = t.dy
		}
	}
	return h
}

// Diffusion quantizes each pixel to its nearest palette color and
// spreads the signed error to forward neighbors per its kernel.
// Pixels are processed strictly left to right, top to bottom; every
// pixel depends on the diffused error of earlier ones, so the scan
// order is part of the algorithm.
type Diffusion struct {
	lookup
	k kernel
}

// NewFloydSteinberg diffuses error over four neighbors with /16
// weights. The classic default.
func NewFloydSteinberg() *Diffusion { return &Diffusion{k: floydSteinberg} }

// NewAtkinson diffuses six 1/8 fractions, discarding a quarter of the
// error.
func NewAtkinson() *Diffusion { return &Diffusion{k: atkinson} }

// NewStucki diffuses over a 5x3 neighborhood with /42 weights.
func NewStucki() *Diffusion { return &Diffusion{k: stucki} }

// NewBurkes diffuses over a 5x2 neighborhood with /32 weights.
func NewBurkes() *Diffusion { return &Diffusion{k: burkes} }

// NewJarvis diffuses over a 5x3 neighborhood with /48 weights
// (Jarvis, Judice, and Ninke).
func NewJarvis() *Diffusion { return &Diffusion{k: jarvis} }

func (d *Diffusion) Setup(palette []pix.RGBA, visualWeighting bool) {
	d.setup(palette, visualWeighting)
}

func (d *Diffusion) Dither(im *pix.Image) *pix.Paletted {
	out := d.newTarget(im)
	if out == nil {
		return nil
	}
	w := im.Width()
	h := im.Height()
	src := im.Pix()
	dst := out.Pix()

	// Rolling error rows, one per kernel row plus the current one.
	// Each holds weighted error numerators, three channels per pixel;
	// division by the kernel divisor happens on consumption so the
	// accumulation stays exact.
	rows := make([][]int32, d.k.height()+1)
	for i := range rows {
		rows[i] = make([]int32, w*3)
	}

	for y := 0; y < h; y++ {
		cur := rows[0]
		base := y * w
		for x := 0; x < w; x++ {
			c := src[base+x]
			r := clampByte(int(c.R) + int(cur[x*3]/d.k.div))
			g := clampByte(int(c.G) + int(cur[x*3+1]/d.k.div))
			b := clampByte(int(c.B) + int(cur[x*3+2]/d.k.div))

			idx := d.nearest(pix.RGBA{R: r, G: g, B: b, A: c.A})
			dst[base+x] = idx

			p := d.palette[idx]
			er := int32(r) - int32(p.R)
			eg := int32(g) - int32(p.G)
			eb := int32(b) - int32(p.B)
			if er == 0 && eg == 0 && eb == 0 {
				continue
			}
			for _, t := range d.k.taps {
				tx := x + t.dx
				if tx < 0 || tx >= w {
					continue
				}
				row := rows[t.dy]
				row[tx*3] += t.weight * er
				row[tx*3+1] += t.weight * eg
				row[tx*3+2] += t.weight * eb
			}
		}
		// Rotate: the finished row's buffer becomes the farthest
		// pending row.
		for i := range cur {
			cur[i] = 0
		}
		copy(rows, rows[1:])
		rows[len(rows)-1] = cur
	}
	return out
}
