package dither

import (
	"errors"

	"github.com/gopix/pix"
)

// ErrMatrixSize is returned for ordered matrix sizes other than 2, 4,
// or 8.
var ErrMatrixSize = errors.New("dither: ordered matrix size must be 2, 4, or 8")

// Bayer index matrices. Each cell holds the threshold rank of its
// position within the tile, 0 .. size*size-1.
var (
	bayer2 = [][]int{
		{0, 2},
		{3, 1},
	}
	bayer4 = [][]int{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}
	bayer8 = [][]int{
		{0, 32, 8, 40, 2, 34, 10, 42},
		{48, 16, 56, 24, 50, 18, 58, 26},
		{12, 44, 4, 36, 14, 46, 6, 38},
		{60, 28, 52, 20, 62, 30, 54, 22},
		{3, 35, 11, 43, 1, 33, 9, 41},
		{51, 19, 59, 27, 49, 17, 57, 25},
		{15, 47, 7, 39, 13, 45, 5, 37},
		{63, 31, 55, 23, 61, 29, 53, 21},
	}
)

// Ordered applies a periodic Bayer threshold offset to each pixel
// before the nearest-color lookup. The offset at (x, y) depends only
// on (x mod size, y mod size), so the pattern tiles the image.
type Ordered struct {
	lookup
	size    int
	offsets [][]int
}

// NewOrdered creates an ordered ditherer with a size x size Bayer
// matrix. Size must be 2, 4, or 8.
func NewOrdered(size int) (*Ordered, error) {
	var ranks [][]int
	switch size {
	case 2:
		ranks = bayer2
	case 4:
		ranks = bayer4
	case 8:
		ranks = bayer8
	default:
		return nil, ErrMatrixSize
	}
	// Center the ranks into signed offsets spanning about a quarter of
	// the channel scale, the same amplitude for every matrix size.
	cells := size * size
	offsets := make([][]int, size)
	for y := range offsets {
		offsets[y] = make([]int, size)
		for x := range offsets[y] {
			offsets[y][x] = (2*ranks[y][x] + 1 - cells) * 64 / (2 * cells)
		}
	}
	return &Ordered{size: size, offsets: offsets}, nil
}

func (o *Ordered) Setup(palette []pix.RGBA, visualWeighting bool) {
	o.setup(palette, visualWeighting)
}

func (o *Ordered) Dither(im *pix.Image) *pix.Paletted {
	out := o.newTarget(im)
	if out == nil {
		return nil
	}
	w := im.Width()
	src := im.Pix()
	dst := out.Pix()
	for y := 0; y < im.Height(); y++ {
		row := o.offsets[y%o.size]
		base := y * w
		for x := 0; x < w; x++ {
			c := src[base+x]
			off := row[x%o.size]
			dst[base+x] = o.nearest(pix.RGBA{
				R: clampByte(int(c.R) + off),
				G: clampByte(int(c.G) + off),
				B: clampByte(int(c.B) + off),
				A: c.A,
			})
		}
	}
	return out
}
