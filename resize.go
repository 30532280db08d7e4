package pix

import (
	"image"

	"golang.org/x/image/draw"
)

// ResampleFilter selects the interpolation kernel used by Resample.
type ResampleFilter int

const (
	// ResampleNearest picks the nearest source pixel. Fast and blocky.
	ResampleNearest ResampleFilter = iota
	// ResampleBilinear interpolates linearly between source pixels.
	ResampleBilinear
	// ResampleCatmullRom uses a Catmull-Rom cubic kernel; best quality
	// of the three.
	ResampleCatmullRom
)

// Resample scales the image content to w x h into a new image, leaving
// the receiver untouched. The actual kernel application is delegated
// to the golang.org/x/image/draw scalers.
func (im *Image) Resample(w, h int, f ResampleFilter) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrDimensions
	}
	var scaler draw.Scaler
	switch f {
	case ResampleNearest:
		scaler = draw.NearestNeighbor
	case ResampleBilinear:
		scaler = draw.ApproxBiLinear
	case ResampleCatmullRom:
		scaler = draw.CatmullRom
	default:
		return nil, ErrResampleFilter
	}
	if w == im.width && h == im.height {
		return im.Clone(), nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), im.ToImage(), im.Bounds(), draw.Src, nil)
	return FromImage(dst)
}
