// Package quant builds color palettes from truecolor images using
// median-cut quantization over a frequency histogram.
package quant

import (
	"sort"

	"github.com/gopix/pix"
)

// Entry is one histogram bin: a color and the number of pixels that
// carry it.
type Entry struct {
	Color pix.RGBA
	Count uint32
}

// Histogram scans the whole image and returns one entry per distinct
// color, ordered by descending count. Ties are broken by ascending
// packed key (alpha, then red, green, blue), so identical input always
// produces an identical histogram.
//
// When keepAlpha is false every pixel is treated as opaque, merging
// colors that differ only in alpha.
func Histogram(im *pix.Image, keepAlpha bool) []Entry {
	pixels := im.Pix()
	keys := make([]uint32, len(pixels))
	for i, c := range pixels {
		if !keepAlpha {
			c.A = 255
		}
		keys[i] = c.Key()
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var hist []Entry
	for i := 0; i < len(keys); {
		j := i + 1
		for j < len(keys) && keys[j] == keys[i] {
			j++
		}
		hist = append(hist, Entry{Color: pix.FromKey(keys[i]), Count: uint32(j - i)})
		i = j
	}

	sort.Slice(hist, func(i, j int) bool {
		if hist[i].Count != hist[j].Count {
			return hist[i].Count > hist[j].Count
		}
		return hist[i].Color.Key() < hist[j].Color.Key()
	})
	return hist
}
