package pix

import (
	"image/color"
	"math"
)

// RGBA is a color with 8-bit red, green, blue, and alpha components.
// Alpha is straight (not premultiplied). The zero value is fully
// transparent black.
type RGBA struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Key packs the color into a single sortable 32-bit value. Ascending
// key order sorts by alpha, then red, then green, then blue, which is
// the deterministic tie-break order used by the histogrammer.
func (c RGBA) Key() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromKey unpacks a color packed with Key.
func FromKey(k uint32) RGBA {
	return RGBA{
		R: uint8(k >> 16),
		G: uint8(k >> 8),
		B: uint8(k),
		A: uint8(k >> 24),
	}
}

// Distance returns the squared Euclidean distance between two colors
// in RGB space. Alpha does not participate.
func (c RGBA) Distance(o RGBA) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// WeightedDistance returns a squared RGB distance scaled by perceptual
// channel weights (green counts most, blue least). Only the relative
// ordering of results is meaningful.
func (c RGBA) WeightedDistance(o RGBA) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return 299*dr*dr + 587*dg*dg + 114*db*db
}

// Luma returns the Rec. 601 luma of the color.
func (c RGBA) Luma() uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

// NRGBA converts to the standard library color type.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any standard library color to RGBA, undoing
// premultiplication.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// HSL returns hue in [0,360), saturation and lightness in [0,1].
func (c RGBA) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l // achromatic
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// FromHSL builds an opaque color from hue in [0,360), saturation and
// lightness in [0,1].
func FromHSL(h, s, l float64) RGBA {
	if s == 0 {
		v := encodeUnit(l)
		return RGBA{R: v, G: v, B: v, A: 255}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	h /= 360
	return RGBA{
		R: encodeUnit(hueToRGB(p, q, h+1.0/3)),
		G: encodeUnit(hueToRGB(p, q, h)),
		B: encodeUnit(hueToRGB(p, q, h-1.0/3)),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSB returns hue in [0,360), saturation and brightness in [0,1].
func (c RGBA) HSB() (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	if max == 0 {
		return 0, 0, 0
	}
	d := max - min
	s = d / max
	if d == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, v
}

// FromHSB builds an opaque color from hue in [0,360), saturation and
// brightness in [0,1].
func FromHSB(h, s, v float64) RGBA {
	if s == 0 {
		b := encodeUnit(v)
		return RGBA{R: b, G: b, B: b, A: 255}
	}
	h = math.Mod(h, 360) / 60
	if h < 0 {
		h += 6
	}
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGBA{R: encodeUnit(r), G: encodeUnit(g), B: encodeUnit(b), A: 255}
}

func encodeUnit(v float64) uint8 {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
