// Package blend implements the per-pixel combine rules used by all
// compositing and drawing operations.
//
// Truecolor rules work on straight (non-premultiplied) alpha with all
// channels in the range 0-255. Arithmetic is integer-only; there is no
// floating point on any path through this package.
package blend

// Func combines a source pixel with a destination pixel, channel by
// channel, and returns the result. All values are 0-255 with straight
// alpha.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// IndexFunc combines a source palette index with a destination palette
// index for indexed-image drawing.
type IndexFunc func(s, d uint8) uint8

// div255 divides x by 255 using the identity (x + 1 + (x>>8)) >> 8.
//
// The result differs from x/255 by up to 1 in rare cases. This matches
// the output of widely deployed raster code bit-for-bit and must not be
// replaced with exact division.
func div255(x uint32) uint32 {
	return (x + 1 + (x >> 8)) >> 8
}

// satAdd adds two channels, clamping to 255.
func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// satSub subtracts b from a, clamping to 0.
func satSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

// Copy replaces the destination with the source.
func Copy(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

// Transparent replaces the destination with the source unless the
// source alpha is zero, in which case the destination is untouched.
// This is color-key transparency, not alpha blending.
func Transparent(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	return sr, sg, sb, sa
}

// Alpha blends the source over the destination using the source alpha:
//
//	dst.rgb = (src.rgb*src.a + dst.rgb*(255-src.a)) / 255
//	dst.a   = 255
//
// Fully opaque and fully transparent sources take fast paths.
func Alpha(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}
	is := uint32(255 - sa)
	a := uint32(sa)
	return uint8(div255(uint32(sr)*a + uint32(dr)*is)),
		uint8(div255(uint32(sg)*a + uint32(dg)*is)),
		uint8(div255(uint32(sb)*a + uint32(db)*is)),
		255
}

// Premultiplied blends a source whose RGB channels are already scaled
// by its alpha, saving one multiply per channel over Alpha:
//
//	dst.rgb = src.rgb + dst.rgb*(255-src.a)/255
//
// For well-formed premultiplied input (src.rgb <= src.a) the sum cannot
// overflow; malformed input saturates.
func Premultiplied(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}
	is := uint32(255 - sa)
	return satAdd(sr, uint8(div255(uint32(dr)*is))),
		satAdd(sg, uint8(div255(uint32(dg)*is))),
		satAdd(sb, uint8(div255(uint32(db)*is))),
		255
}

// Add adds source to destination per channel, saturating at 255.
func Add(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return satAdd(sr, dr), satAdd(sg, dg), satAdd(sb, db), satAdd(sa, da)
}

// Multiply multiplies source and destination per channel: s*d/255.
func Multiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return uint8(div255(uint32(sr) * uint32(dr))),
		uint8(div255(uint32(sg) * uint32(dg))),
		uint8(div255(uint32(sb) * uint32(db))),
		uint8(div255(uint32(sa) * uint32(da)))
}

// Subtract computes max(src-dst, 0) per channel.
func Subtract(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return satSub(sr, dr), satSub(sg, dg), satSub(sb, db), satSub(sa, da)
}

// ReverseSubtract computes max(dst-src, 0) per channel.
func ReverseSubtract(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return satSub(dr, sr), satSub(dg, sg), satSub(db, sb), satSub(da, sa)
}
