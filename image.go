package pix

import (
	"image"
	"image/color"
)

// buffer is the shared pixel storage for both image types: a single
// contiguous row-major slice, one value per pixel, no padding.
// len(pix) == width*height holds at all times.
type buffer[P comparable] struct {
	width  int
	height int
	pix    []P
}

func newBuffer[P comparable](w, h int) buffer[P] {
	return buffer[P]{width: w, height: h, pix: make([]P, w*h)}
}

func (b *buffer[P]) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// row returns the pixels of row y. y must be in bounds.
func (b *buffer[P]) row(y int) []P {
	return b.pix[y*b.width : (y+1)*b.width]
}

func (b *buffer[P]) clone() buffer[P] {
	c := buffer[P]{width: b.width, height: b.height, pix: make([]P, len(b.pix))}
	copy(c.pix, b.pix)
	return c
}

// resize reallocates the buffer for the new dimensions. Dimensions and
// storage are replaced together so the length invariant never breaks;
// previous content is discarded.
func (b *buffer[P]) resize(w, h int) {
	*b = newBuffer[P](w, h)
}

func (b *buffer[P]) fill(v P) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Image is a truecolor image: width*height RGBA values in row-major
// order. Methods that draw mutate the receiver; see cow.go for the
// value-returning variants.
//
// An Image must not be written by two operations at once. Read-only
// operations may run concurrently on an otherwise-unmodified Image.
type Image struct {
	buffer[RGBA]
}

// NewImage creates a transparent black image. Width and height must be
// positive.
func NewImage(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrDimensions
	}
	return &Image{buffer: newBuffer[RGBA](w, h)}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Pix returns the raw row-major pixel storage. The slice aliases the
// image; writes through it are writes to the image.
func (im *Image) Pix() []RGBA { return im.pix }

// GetPixel returns the pixel at (x, y), or the zero color outside the
// image.
func (im *Image) GetPixel(x, y int) RGBA {
	if !im.inBounds(x, y) {
		return RGBA{}
	}
	return im.pix[y*im.width+x]
}

// SetPixel sets the pixel at (x, y); outside the image it does
// nothing.
func (im *Image) SetPixel(x, y int, c RGBA) {
	if im.inBounds(x, y) {
		im.pix[y*im.width+x] = c
	}
}

// Fill sets every pixel to c.
func (im *Image) Fill(c RGBA) { im.fill(c) }

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	return &Image{buffer: im.buffer.clone()}
}

// Resize reallocates the image to the new dimensions, discarding the
// old content. Use Resample to scale content.
func (im *Image) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrDimensions
	}
	im.buffer.resize(w, h)
	return nil
}

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// At implements image.Image.
func (im *Image) At(x, y int) color.Color {
	return im.GetPixel(x, y).NRGBA()
}

// Set implements draw.Image.
func (im *Image) Set(x, y int, c color.Color) {
	im.SetPixel(x, y, FromColor(c))
}

// ToImage copies the image into a standard *image.NRGBA, ready for any
// stdlib or x/image encoder.
func (im *Image) ToImage() *image.NRGBA {
	out := image.NewNRGBA(im.Bounds())
	for i, c := range im.pix {
		j := i * 4
		out.Pix[j+0] = c.R
		out.Pix[j+1] = c.G
		out.Pix[j+2] = c.B
		out.Pix[j+3] = c.A
	}
	return out
}

// FromImage copies a standard image into a new Image. A nil or empty
// source yields ErrDimensions.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	im, err := NewImage(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < im.height; y++ {
			srow := n.Pix[y*n.Stride : y*n.Stride+im.width*4]
			drow := im.row(y)
			for x := range drow {
				drow[x] = RGBA{srow[x*4], srow[x*4+1], srow[x*4+2], srow[x*4+3]}
			}
		}
		return im, nil
	}
	for y := 0; y < im.height; y++ {
		drow := im.row(y)
		for x := range drow {
			drow[x] = FromColor(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return im, nil
}

// Paletted is an indexed image: width*height palette indices in
// row-major order plus an ordered palette of up to 256 colors. Every
// stored index must be below len(Palette); operations in this library
// never produce an out-of-range index, and buffers built from
// untrusted data should be checked with Validate.
type Paletted struct {
	buffer[uint8]
	Palette []RGBA
}

// NewPaletted creates an indexed image filled with index 0. Width and
// height must be positive; the palette must have 1 to 256 entries.
func NewPaletted(w, h int, palette []RGBA) (*Paletted, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrDimensions
	}
	if len(palette) == 0 || len(palette) > 256 {
		return nil, ErrPaletteIndex
	}
	pal := make([]RGBA, len(palette))
	copy(pal, palette)
	return &Paletted{buffer: newBuffer[uint8](w, h), Palette: pal}, nil
}

// Width returns the image width in pixels.
func (p *Paletted) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Paletted) Height() int { return p.height }

// Pix returns the raw row-major index storage, aliasing the image.
func (p *Paletted) Pix() []uint8 { return p.pix }

// GetIndex returns the palette index at (x, y), or 0 outside the
// image.
func (p *Paletted) GetIndex(x, y int) uint8 {
	if !p.inBounds(x, y) {
		return 0
	}
	return p.pix[y*p.width+x]
}

// SetIndex sets the palette index at (x, y); outside the image it does
// nothing. The index is not range-checked against the palette.
func (p *Paletted) SetIndex(x, y int, idx uint8) {
	if p.inBounds(x, y) {
		p.pix[y*p.width+x] = idx
	}
}

// GetPixel resolves the pixel at (x, y) through the palette.
func (p *Paletted) GetPixel(x, y int) RGBA {
	idx := p.GetIndex(x, y)
	if int(idx) >= len(p.Palette) {
		return RGBA{}
	}
	return p.Palette[idx]
}

// Fill sets every pixel to the given palette index.
func (p *Paletted) Fill(idx uint8) { p.fill(idx) }

// Clone returns a deep copy, palette included.
func (p *Paletted) Clone() *Paletted {
	pal := make([]RGBA, len(p.Palette))
	copy(pal, p.Palette)
	return &Paletted{buffer: p.buffer.clone(), Palette: pal}
}

// Validate checks that every stored index refers to a palette entry.
func (p *Paletted) Validate() error {
	for _, idx := range p.pix {
		if int(idx) >= len(p.Palette) {
			return ErrPaletteIndex
		}
	}
	return nil
}

// ColorModel implements image.Image.
func (p *Paletted) ColorModel() color.Model {
	pal := make(color.Palette, len(p.Palette))
	for i, c := range p.Palette {
		pal[i] = c.NRGBA()
	}
	return pal
}

// Bounds implements image.Image.
func (p *Paletted) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image.
func (p *Paletted) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// ToImage copies the image into a standard *image.Paletted.
func (p *Paletted) ToImage() *image.Paletted {
	pal := make(color.Palette, len(p.Palette))
	for i, c := range p.Palette {
		pal[i] = c.NRGBA()
	}
	out := image.NewPaletted(p.Bounds(), pal)
	for y := 0; y < p.height; y++ {
		copy(out.Pix[y*out.Stride:], p.row(y))
	}
	return out
}

// Expand resolves every index through the palette into a new truecolor
// image.
func (p *Paletted) Expand() *Image {
	im := &Image{buffer: newBuffer[RGBA](p.width, p.height)}
	for i, idx := range p.pix {
		if int(idx) < len(p.Palette) {
			im.pix[i] = p.Palette[idx]
		}
	}
	return im
}
