package pix

import (
	"errors"

	"github.com/gopix/pix/internal/filter"
)

// Errors returned for inputs that cannot be interpreted at all. These
// are checked at the start of a call; no pixels are touched when one
// is returned. Degenerate geometry (empty or fully off-canvas shapes)
// is not an error and results in a silent no-op.
var (
	// ErrBlendMode is returned when an Op carries a blend mode the
	// target pixel format does not support, or an unknown selector.
	ErrBlendMode = errors.New("pix: unsupported blend mode")

	// ErrSizeMismatch is returned by pairwise whole-image operations
	// when the two images have different dimensions.
	ErrSizeMismatch = errors.New("pix: image dimensions do not match")

	// ErrDimensions is returned for non-positive width or height.
	ErrDimensions = errors.New("pix: invalid dimensions")

	// ErrKernelSize is returned for convolution kernels of even or
	// non-positive size.
	ErrKernelSize = filter.ErrKernelSize

	// ErrResampleFilter is returned for an unknown resample filter
	// selector.
	ErrResampleFilter = errors.New("pix: unknown resample filter")

	// ErrPaletteIndex is returned by Paletted.Validate when the pixel
	// buffer references an entry beyond the palette.
	ErrPaletteIndex = errors.New("pix: palette index out of range")
)
