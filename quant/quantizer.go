package quant

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gopix/pix"
)

// Quantizer adapts the median-cut palette builder to the
// golang.org/x/image/draw Quantizer interface, so it can feed
// draw.Draw-style paletted conversion and GIF encoding pipelines.
type Quantizer struct {
	// KeepAlpha preserves per-pixel alpha when histogramming; when
	// false all pixels are treated as opaque.
	KeepAlpha bool

	// UseOriginalColors emits bucket median colors instead of
	// gamma-corrected means.
	UseOriginalColors bool
}

var _ draw.Quantizer = Quantizer{}

// Quantize appends up to cap(p) - len(p) colors to p and returns the
// extended palette. The input palette is returned unchanged when it
// has no spare capacity or the image cannot be read.
func (q Quantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	room := cap(p) - len(p)
	if room <= 0 {
		return p
	}
	im, err := pix.FromImage(m)
	if err != nil {
		return p
	}
	n := room
	if n < 2 {
		n = 2
	}
	if n > 256 {
		n = 256
	}
	pal, err := MedianCut(Histogram(im, q.KeepAlpha), n, q.UseOriginalColors)
	if err != nil {
		return p
	}
	if len(pal) > room {
		pal = pal[:room]
	}
	for _, c := range pal {
		p = append(p, c.NRGBA())
	}
	return p
}
