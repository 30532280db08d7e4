package pix

import (
	"image"
	"math"

	"github.com/gopix/pix/internal/clip"
	"github.com/gopix/pix/internal/raster"
)

// The generic drawing core. One implementation serves both pixel
// formats; the public methods on Image and Paletted resolve the blend
// mode for their format and delegate here.

func (b *buffer[P]) fillRect(x, y, w, h int, src P, noClip bool, comb combine[P]) {
	if !noClip && !clip.Rect(b.width, b.height, &x, &y, &w, &h) {
		return
	}
	if w <= 0 || h <= 0 {
		return
	}
	for yy := y; yy < y+h; yy++ {
		row := b.row(yy)[x : x+w]
		if comb == nil {
			for i := range row {
				row[i] = src
			}
		} else {
			for i := range row {
				row[i] = comb(row[i], src)
			}
		}
	}
}

// drawRect draws a rectangle outline of the given thickness as four
// border bands. The bands do not overlap, so no corner pixel is
// blended twice. A thickness of at least half of either dimension
// degenerates to a full fill.
func (b *buffer[P]) drawRect(x, y, w, h, thickness int, src P, noClip bool, comb combine[P]) {
	if w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	if 2*thickness >= w || 2*thickness >= h {
		b.fillRect(x, y, w, h, src, noClip, comb)
		return
	}
	t := thickness
	b.fillRect(x, y, w, t, src, noClip, comb)           // top
	b.fillRect(x, y+h-t, w, t, src, noClip, comb)       // bottom
	b.fillRect(x, y+t, t, h-2*t, src, noClip, comb)     // left
	b.fillRect(x+w-t, y+t, t, h-2*t, src, noClip, comb) // right
}

func (b *buffer[P]) setPixel(i int, src P, comb combine[P]) {
	if comb == nil {
		b.pix[i] = src
	} else {
		b.pix[i] = comb(b.pix[i], src)
	}
}

func (b *buffer[P]) drawLine(x0, y0, x1, y1 int, src P, noClip, skipFirst bool, comb combine[P]) {
	if !noClip && !clip.Line(&x0, &y0, &x1, &y1, b.width, b.height) {
		return
	}
	raster.Line(x0, y0, x1, y1, skipFirst, func(x, y int) {
		b.setPixel(y*b.width+x, src, comb)
	})
}

// drawPolygon strokes a closed outline. Interior vertices are covered
// by the skip-first flag; the closing segment additionally avoids the
// start vertex, which the first segment already drew. If the start
// vertex got clipped away the avoided pixel never comes up, so nothing
// is lost.
func (b *buffer[P]) drawPolygon(pts []raster.Point, src P, noClip bool, comb combine[P]) {
	if len(pts) < 2 {
		return
	}
	n := len(pts)
	closed := pts[n-1] == pts[0]
	for i := 1; i < n; i++ {
		closing := closed && i == n-1
		b.drawSegment(pts[i-1], pts[i], src, noClip, i > 1, closing, pts[0], comb)
	}
	if !closed {
		b.drawSegment(pts[n-1], pts[0], src, noClip, true, true, pts[0], comb)
	}
}

func (b *buffer[P]) drawSegment(from, to raster.Point, src P, noClip, skipFirst, avoidStart bool,
	start raster.Point, comb combine[P]) {

	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	if !noClip && !clip.Line(&x0, &y0, &x1, &y1, b.width, b.height) {
		return
	}
	raster.Line(x0, y0, x1, y1, skipFirst, func(x, y int) {
		if avoidStart && x == start.X && y == start.Y {
			return
		}
		b.setPixel(y*b.width+x, src, comb)
	})
}

func (b *buffer[P]) fillPolygon(pts []raster.Point, src P, noClip bool, comb combine[P]) {
	raster.PolygonSpans(pts, func(y, x0, x1 int) {
		if !noClip {
			if y < 0 || y >= b.height {
				return
			}
			if x0 < 0 {
				x0 = 0
			}
			if x1 > b.width {
				x1 = b.width
			}
			if x0 >= x1 {
				return
			}
		}
		row := b.row(y)[x0:x1]
		if comb == nil {
			for i := range row {
				row[i] = src
			}
		} else {
			for i := range row {
				row[i] = comb(row[i], src)
			}
		}
	})
}

func (b *buffer[P]) drawBezier(p0, p1, p2, p3 image.Point, steps int, src P, noClip bool, comb combine[P]) {
	raster.FlattenBezier(
		float64(p0.X), float64(p0.Y),
		float64(p1.X), float64(p1.Y),
		float64(p2.X), float64(p2.Y),
		float64(p3.X), float64(p3.Y),
		steps,
		func(ax, ay, bx, by int, first bool) {
			b.drawLine(ax, ay, bx, by, src, noClip, !first, comb)
		})
}

// blitBuf copies a w*h window from src to dst with optional mirroring.
// Both windows are jointly clipped unless noClip is set.
func blitBuf[P comparable](dst, src *buffer[P], sx, sy, dx, dy, w, h int, op Op, comb combine[P]) {
	if !op.NoClip && !clip.Blit(dst.width, dst.height, src.width, src.height,
		&sx, &sy, &dx, &dy, &w, &h) {
		return
	}
	if w <= 0 || h <= 0 {
		return
	}
	for r := 0; r < h; r++ {
		sr := sy + r
		if op.FlipV {
			sr = sy + h - 1 - r
		}
		srow := src.row(sr)
		drow := dst.row(dy + r)
		if comb == nil && !op.FlipH {
			copy(drow[dx:dx+w], srow[sx:sx+w])
			continue
		}
		for c := 0; c < w; c++ {
			sc := sx + c
			if op.FlipH {
				sc = sx + w - 1 - c
			}
			s := srow[sc]
			if comb == nil {
				drow[dx+c] = s
			} else {
				drow[dx+c] = comb(drow[dx+c], s)
			}
		}
	}
}

// thickLineQuad builds the quadrilateral covering a line of the given
// thickness: the segment offset by ±thickness/2 along the
// perpendicular of its direction.
func thickLineQuad(x0, y0, x1, y1 int, thickness int) []raster.Point {
	fx := float64(x1 - x0)
	fy := float64(y1 - y0)
	length := math.Hypot(fx, fy)
	if length == 0 {
		return nil
	}
	// Perpendicular unit vector scaled to half the thickness.
	px := -fy / length * float64(thickness) / 2
	py := fx / length * float64(thickness) / 2
	return []raster.Point{
		{X: int(math.Round(float64(x0) + px)), Y: int(math.Round(float64(y0) + py))},
		{X: int(math.Round(float64(x1) + px)), Y: int(math.Round(float64(y1) + py))},
		{X: int(math.Round(float64(x1) - px)), Y: int(math.Round(float64(y1) - py))},
		{X: int(math.Round(float64(x0) - px)), Y: int(math.Round(float64(y0) - py))},
	}
}

func toRasterPoints(pts []image.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

// Public truecolor surface.

// FillRect fills the rectangle with c using the blend mode in op.
// Geometry outside the image is clipped away; a fully off-canvas or
// empty rectangle is a no-op.
func (im *Image) FillRect(x, y, w, h int, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.fillRect(x, y, w, h, c, op.NoClip, comb)
	return nil
}

// DrawRect draws a rectangle outline of the given border thickness.
func (im *Image) DrawRect(x, y, w, h, thickness int, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.drawRect(x, y, w, h, thickness, c, op.NoClip, comb)
	return nil
}

// DrawLine draws the segment (x0,y0)-(x1,y1), endpoints included,
// clipped with Cohen-Sutherland and stepped with Bresenham.
func (im *Image) DrawLine(x0, y0, x1, y1 int, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.drawLine(x0, y0, x1, y1, c, op.NoClip, false, comb)
	return nil
}

// DrawThickLine draws a line of the given thickness as a filled
// quadrilateral. Thickness of one or less falls back to DrawLine.
func (im *Image) DrawThickLine(x0, y0, x1, y1, thickness int, c RGBA, op Op) error {
	if thickness <= 1 {
		return im.DrawLine(x0, y0, x1, y1, c, op)
	}
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	quad := thickLineQuad(x0, y0, x1, y1, thickness)
	if quad == nil {
		return nil
	}
	im.fillPolygon(quad, c, op.NoClip, comb)
	return nil
}

// FillPolygon fills the polygon with the odd/even rule. The polygon is
// implicitly closed.
func (im *Image) FillPolygon(pts []image.Point, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.fillPolygon(toRasterPoints(pts), c, op.NoClip, comb)
	return nil
}

// DrawPolygon strokes the closed polygon outline one pixel wide.
// Shared vertices between consecutive segments are drawn once.
func (im *Image) DrawPolygon(pts []image.Point, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.drawPolygon(toRasterPoints(pts), c, op.NoClip, comb)
	return nil
}

// DrawBezier draws a cubic Bezier curve from p0 to p3 with control
// points p1, p2, flattened into line segments. steps <= 0 derives the
// step count from the control polygon length.
func (im *Image) DrawBezier(p0, p1, p2, p3 image.Point, steps int, c RGBA, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	im.drawBezier(p0, p1, p2, p3, steps, c, op.NoClip, comb)
	return nil
}

// Blit copies the w*h window at (sx,sy) in src onto (dx,dy) in im,
// applying the blend mode and flip flags in op. Both windows are
// jointly clipped; a window that ends up empty is a no-op.
func (im *Image) Blit(src *Image, sx, sy, dx, dy, w, h int, op Op) error {
	comb, err := rgbaCombine(op.Mode)
	if err != nil {
		return err
	}
	blitBuf(&im.buffer, &src.buffer, sx, sy, dx, dy, w, h, op, comb)
	return nil
}

// Compose applies src to the whole image pairwise. The images must
// have identical dimensions.
func (im *Image) Compose(src *Image, op Op) error {
	if im.width != src.width || im.height != src.height {
		return ErrSizeMismatch
	}
	return im.Blit(src, 0, 0, 0, 0, im.width, im.height, op)
}

// Public indexed surface. The index value plays the role of the color;
// alpha blend modes are rejected with ErrBlendMode.

// FillRect fills the rectangle with the palette index idx.
func (p *Paletted) FillRect(x, y, w, h int, idx uint8, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	p.fillRect(x, y, w, h, idx, op.NoClip, comb)
	return nil
}

// DrawRect draws a rectangle outline of the given border thickness.
func (p *Paletted) DrawRect(x, y, w, h, thickness int, idx uint8, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	p.drawRect(x, y, w, h, thickness, idx, op.NoClip, comb)
	return nil
}

// DrawLine draws the segment (x0,y0)-(x1,y1) with the palette index.
func (p *Paletted) DrawLine(x0, y0, x1, y1 int, idx uint8, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	p.drawLine(x0, y0, x1, y1, idx, op.NoClip, false, comb)
	return nil
}

// FillPolygon fills the polygon with the odd/even rule.
func (p *Paletted) FillPolygon(pts []image.Point, idx uint8, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	p.fillPolygon(toRasterPoints(pts), idx, op.NoClip, comb)
	return nil
}

// DrawPolygon strokes the closed polygon outline one pixel wide.
func (p *Paletted) DrawPolygon(pts []image.Point, idx uint8, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	p.drawPolygon(toRasterPoints(pts), idx, op.NoClip, comb)
	return nil
}

// Blit copies a window between indexed images. The palettes are not
// consulted; indices transfer verbatim.
func (p *Paletted) Blit(src *Paletted, sx, sy, dx, dy, w, h int, op Op) error {
	comb, err := indexCombine(op.Mode)
	if err != nil {
		return err
	}
	blitBuf(&p.buffer, &src.buffer, sx, sy, dx, dy, w, h, op, comb)
	return nil
}
