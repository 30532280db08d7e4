// Package dither converts truecolor images to indexed images over a
// fixed palette, with nearest-color, ordered, and error-diffusion
// strategies.
package dither

import "github.com/gopix/pix"

// Ditherer maps a truecolor image onto a palette. Setup must be
// called before Dither; a Ditherer may be reused for any number of
// images with the same palette.
type Ditherer interface {
	// Setup fixes the target palette. With visualWeighting the nearest
	// color is chosen by perceptually weighted channel distance
	// instead of plain Euclidean distance.
	Setup(palette []pix.RGBA, visualWeighting bool)

	// Dither produces an indexed image with the same dimensions as im.
	// It returns nil when Setup has not been called.
	Dither(im *pix.Image) *pix.Paletted
}

// lookup is the shared nearest-palette-color search. Results are
// memoized per exact input color, which pays off on images with few
// distinct colors and costs one map insert otherwise.
type lookup struct {
	palette  []pix.RGBA
	weighted bool
	cache    map[pix.RGBA]uint8
}

func (l *lookup) setup(palette []pix.RGBA, visualWeighting bool) {
	l.palette = make([]pix.RGBA, len(palette))
	copy(l.palette, palette)
	l.weighted = visualWeighting
	l.cache = make(map[pix.RGBA]uint8)
}

func (l *lookup) nearest(c pix.RGBA) uint8 {
	if idx, ok := l.cache[c]; ok {
		return idx
	}
	best := 0
	bestDist := -1
	for i, p := range l.palette {
		var d int
		if l.weighted {
			d = c.WeightedDistance(p)
		} else {
			d = c.Distance(p)
		}
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	idx := uint8(best)
	l.cache[c] = idx
	return idx
}

func (l *lookup) newTarget(im *pix.Image) *pix.Paletted {
	if len(l.palette) == 0 {
		return nil
	}
	out, err := pix.NewPaletted(im.Width(), im.Height(), l.palette)
	if err != nil {
		return nil
	}
	return out
}

// Nearest maps every pixel independently to its nearest palette
// color. It is the fastest strategy and the only one whose output is
// a pure function of each pixel in isolation.
type Nearest struct {
	lookup
}

// NewNearest creates a nearest-color ditherer. Call Setup before use.
func NewNearest() *Nearest { return &Nearest{} }

func (n *Nearest) Setup(palette []pix.RGBA, visualWeighting bool) {
	n.setup(palette, visualWeighting)
}

func (n *Nearest) Dither(im *pix.Image) *pix.Paletted {
	out := n.newTarget(im)
	if out == nil {
		return nil
	}
	src := im.Pix()
	dst := out.Pix()
	for i, c := range src {
		dst[i] = n.nearest(c)
	}
	return out
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
