package blend

// Indexed images have a single channel, the palette index. The
// transparency key for indexed pixels is index zero, not alpha zero.
// The two keys are deliberately distinct rules; do not unify them.

// IndexCopy replaces the destination index with the source index.
func IndexCopy(s, d uint8) uint8 { return s }

// IndexTransparent replaces the destination index unless the source
// index is zero.
func IndexTransparent(s, d uint8) uint8 {
	if s == 0 {
		return d
	}
	return s
}

// IndexAdd adds indices, saturating at 255.
func IndexAdd(s, d uint8) uint8 { return satAdd(s, d) }

// IndexMultiply computes s*d/255 on the index value.
func IndexMultiply(s, d uint8) uint8 {
	return uint8(div255(uint32(s) * uint32(d)))
}

// IndexSubtract computes max(s-d, 0).
func IndexSubtract(s, d uint8) uint8 { return satSub(s, d) }

// IndexReverseSubtract computes max(d-s, 0).
func IndexReverseSubtract(s, d uint8) uint8 { return satSub(d, s) }
