package quant

import (
	"container/heap"
	"errors"
	"sort"

	"github.com/gopix/pix"
	"github.com/gopix/pix/internal/color"
)

// ErrPaletteSize is returned when the requested color count is outside
// [2, 256].
var ErrPaletteSize = errors.New("quant: palette size must be between 2 and 256")

// channel indices in bucket range order. Ties between equally wide
// channels resolve in this priority order.
const (
	chR = iota
	chG
	chB
	chA
)

func channelValue(c pix.RGBA, ch int) int {
	switch ch {
	case chR:
		return int(c.R)
	case chG:
		return int(c.G)
	case chB:
		return int(c.B)
	default:
		return int(c.A)
	}
}

// bucket is a contiguous slice of the working histogram plus cached
// split metadata.
type bucket struct {
	entries []Entry
	total   uint64 // sum of entry counts
	widest  int    // channel with the largest value range
	width   int    // that range, max-min
	seq     int    // creation order, heap tie-break
}

func newBucket(entries []Entry, seq int) *bucket {
	b := &bucket{entries: entries, seq: seq}
	var lo, hi [4]int
	for ch := range lo {
		lo[ch] = 256
		hi[ch] = -1
	}
	for _, e := range entries {
		b.total += uint64(e.Count)
		for ch := chR; ch <= chA; ch++ {
			v := channelValue(e.Color, ch)
			if v < lo[ch] {
				lo[ch] = v
			}
			if v > hi[ch] {
				hi[ch] = v
			}
		}
	}
	// Alpha participates only when the histogram kept it; a collapsed
	// alpha channel has zero range and never drives a split.
	for ch := chR; ch <= chA; ch++ {
		if w := hi[ch] - lo[ch]; w > b.width {
			b.width = w
			b.widest = ch
		}
	}
	return b
}

// sortByWidest orders the bucket's histogram slice by its widest
// channel, with the packed key as a deterministic tie-break.
func (b *bucket) sortByWidest() {
	ch := b.widest
	sort.Slice(b.entries, func(i, j int) bool {
		vi := channelValue(b.entries[i].Color, ch)
		vj := channelValue(b.entries[j].Color, ch)
		if vi != vj {
			return vi < vj
		}
		return b.entries[i].Color.Key() < b.entries[j].Color.Key()
	})
}

// medianIndex returns the position at which cumulative pixel counts
// first reach half the bucket's total.
func (b *bucket) medianIndex() int {
	var cum uint64
	for i, e := range b.entries {
		cum += uint64(e.Count)
		if cum*2 >= b.total {
			return i
		}
	}
	return len(b.entries) - 1
}

// bucketQueue is a max-heap on channel range width; older buckets win
// ties so repeated runs split in the same order.
type bucketQueue []*bucket

func (q bucketQueue) Len() int { return len(q) }
func (q bucketQueue) Less(i, j int) bool {
	if q[i].width != q[j].width {
		return q[i].width > q[j].width
	}
	return q[i].seq < q[j].seq
}
func (q bucketQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *bucketQueue) Push(x any) { *q = append(*q, x.(*bucket)) }
func (q *bucketQueue) Pop() any {
	old := *q
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return b
}

// MedianCut reduces a histogram to at most numColors palette entries.
//
// Buckets are split along their widest channel at the weighted median
// until the requested count is reached or no bucket has any range
// left. Each final bucket emits either its weighted median original
// color, or the gamma-corrected mean of its members (averaged in
// linear light, exponent 2.2). The palette is deduplicated and sorted
// by hue, saturation, and luma.
//
// A histogram with numColors or fewer entries is returned verbatim,
// aside from the cosmetic sort. numColors outside [2, 256] is
// rejected with ErrPaletteSize.
func MedianCut(hist []Entry, numColors int, useOriginalColors bool) ([]pix.RGBA, error) {
	if numColors < 2 || numColors > 256 {
		return nil, ErrPaletteSize
	}
	if len(hist) == 0 {
		return nil, nil
	}
	if len(hist) <= numColors {
		pal := make([]pix.RGBA, len(hist))
		for i, e := range hist {
			pal[i] = e.Color
		}
		sortPalette(pal)
		return pal, nil
	}

	work := make([]Entry, len(hist))
	copy(work, hist)

	seq := 0
	q := bucketQueue{newBucket(work, seq)}
	heap.Init(&q)
	for q.Len() < numColors {
		if q[0].width == 0 {
			break
		}
		b := heap.Pop(&q).(*bucket)
		b.sortByWidest()
		split := b.medianIndex() + 1
		if split >= len(b.entries) {
			split = len(b.entries) - 1
		}
		if split < 1 {
			split = 1
		}
		seq++
		heap.Push(&q, newBucket(b.entries[:split], seq))
		seq++
		heap.Push(&q, newBucket(b.entries[split:], seq))
	}

	pal := make([]pix.RGBA, 0, q.Len())
	for _, b := range q {
		if useOriginalColors {
			b.sortByWidest()
			pal = append(pal, b.entries[b.medianIndex()].Color)
		} else {
			pal = append(pal, b.gammaMean())
		}
	}
	pal = dedup(pal)
	sortPalette(pal)
	return pal, nil
}

// gammaMean averages the bucket's colors weighted by pixel count. The
// RGB channels are averaged in linear light and re-encoded; alpha is
// averaged directly, it does not represent light intensity.
func (b *bucket) gammaMean() pix.RGBA {
	var r, g, bl, a float64
	for _, e := range b.entries {
		w := float64(e.Count)
		r += w * color.Linearize(e.Color.R)
		g += w * color.Linearize(e.Color.G)
		bl += w * color.Linearize(e.Color.B)
		a += w * float64(e.Color.A)
	}
	t := float64(b.total)
	return pix.RGBA{
		R: color.Encode(r / t),
		G: color.Encode(g / t),
		B: color.Encode(bl / t),
		A: uint8(a/t + 0.5),
	}
}

func dedup(pal []pix.RGBA) []pix.RGBA {
	seen := make(map[pix.RGBA]struct{}, len(pal))
	out := pal[:0]
	for _, c := range pal {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// sortPalette orders a palette by 45-degree hue bucket, then
// eighth-scale saturation bucket, then luma. The grouping is cosmetic
// but deterministic, so equal inputs always yield equal palettes.
func sortPalette(pal []pix.RGBA) {
	key := func(c pix.RGBA) (int, int, int) {
		h, s, _ := c.HSB()
		hb := int(h) / 45
		sb := int(s * 8)
		if sb > 7 {
			sb = 7
		}
		return hb, sb, int(c.Luma())
	}
	sort.Slice(pal, func(i, j int) bool {
		hi, si, li := key(pal[i])
		hj, sj, lj := key(pal[j])
		if hi != hj {
			return hi < hj
		}
		if si != sj {
			return si < sj
		}
		if li != lj {
			return li < lj
		}
		return pal[i].Key() < pal[j].Key()
	})
}

// Quantize builds a palette of at most numColors colors straight from
// an image, histogramming it first.
func Quantize(im *pix.Image, numColors int, keepAlpha, useOriginalColors bool) ([]pix.RGBA, error) {
	return MedianCut(Histogram(im, keepAlpha), numColors, useOriginalColors)
}
