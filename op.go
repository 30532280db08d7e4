package pix

import "github.com/gopix/pix/internal/blend"

// BlendMode selects the per-pixel combine rule for a drawing operation.
type BlendMode uint8

const (
	// BlendCopy replaces destination pixels with source pixels.
	BlendCopy BlendMode = iota
	// BlendTransparent copies source pixels except where the source is
	// keyed transparent: alpha zero for truecolor, index zero for
	// indexed images. The two keys are distinct semantics per format,
	// not one rule.
	BlendTransparent
	// BlendAlpha composites with straight source alpha.
	BlendAlpha
	// BlendPremultiplied composites a source whose RGB is premultiplied
	// by its alpha.
	BlendPremultiplied
	// BlendAdd adds channels, saturating at 255.
	BlendAdd
	// BlendMultiply multiplies channels (s*d/255).
	BlendMultiply
	// BlendSub computes max(src-dst, 0) per channel.
	BlendSub
	// BlendReverseSub computes max(dst-src, 0) per channel.
	BlendReverseSub
)

// Op carries the per-call drawing parameters: the blend mode, flip
// flags for blits, and the bounds-check bypass. It is passed by value
// into every drawing operation and never stored on an image. The zero
// value is a clipped straight copy.
type Op struct {
	Mode  BlendMode
	FlipH bool // mirror the source horizontally during blits
	FlipV bool // mirror the source vertically during blits

	// NoClip skips the geometry clipper. The caller then guarantees
	// that every touched pixel is in bounds; passing out-of-range
	// geometry with NoClip set panics or writes into adjacent rows.
	NoClip bool
}

// combine merges a source pixel into a destination pixel. A nil
// combine means plain copy and lets hot loops skip the call.
type combine[P comparable] func(dst, src P) P

// rgbaCombine resolves a blend mode for truecolor pixels. BlendCopy
// resolves to nil (the fast path).
func rgbaCombine(m BlendMode) (combine[RGBA], error) {
	var f blend.Func
	switch m {
	case BlendCopy:
		return nil, nil
	case BlendTransparent:
		f = blend.Transparent
	case BlendAlpha:
		f = blend.Alpha
	case BlendPremultiplied:
		f = blend.Premultiplied
	case BlendAdd:
		f = blend.Add
	case BlendMultiply:
		f = blend.Multiply
	case BlendSub:
		f = blend.Subtract
	case BlendReverseSub:
		f = blend.ReverseSubtract
	default:
		return nil, ErrBlendMode
	}
	return func(d, s RGBA) RGBA {
		r, g, b, a := f(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
		return RGBA{R: r, G: g, B: b, A: a}
	}, nil
}

// indexCombine resolves a blend mode for palette indices. The alpha
// modes have no meaning for a single index channel and are rejected.
func indexCombine(m BlendMode) (combine[uint8], error) {
	switch m {
	case BlendCopy:
		return nil, nil
	case BlendTransparent:
		return func(d, s uint8) uint8 { return blend.IndexTransparent(s, d) }, nil
	case BlendAdd:
		return func(d, s uint8) uint8 { return blend.IndexAdd(s, d) }, nil
	case BlendMultiply:
		return func(d, s uint8) uint8 { return blend.IndexMultiply(s, d) }, nil
	case BlendSub:
		return func(d, s uint8) uint8 { return blend.IndexSubtract(s, d) }, nil
	case BlendReverseSub:
		return func(d, s uint8) uint8 { return blend.IndexReverseSubtract(s, d) }, nil
	}
	return nil, ErrBlendMode
}
