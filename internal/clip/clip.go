// Package clip implements geometry clipping against image bounds.
//
// Every drawing operation in the library passes through one of these
// functions before touching pixel memory (unless the caller explicitly
// opts out). The functions adjust origins and extents in place and
// report whether anything is left to draw.
package clip

// Rect clamps the rectangle (*x, *y, *rw, *rh) to [0,w) x [0,h).
// It returns false if the rectangle is degenerate (non-positive extent)
// or lies entirely outside the image after clamping; in that case the
// values it points to must not be used for pixel access.
func Rect(w, h int, x, y, rw, rh *int) bool {
	if *rw <= 0 || *rh <= 0 {
		return false
	}
	if *x < 0 {
		*rw += *x
		*x = 0
	}
	if *y < 0 {
		*rh += *y
		*y = 0
	}
	if *x+*rw > w {
		*rw = w - *x
	}
	if *y+*rh > h {
		*rh = h - *y
	}
	return *rw > 0 && *rh > 0
}

// Blit jointly clamps a source window and a destination window of the
// same size so that neither exceeds its buffer. The source buffer is
// sw x sh, the destination dw x dh. Origins shift in lock-step: moving
// the source origin right moves the destination origin right by the
// same amount, so the copied region stays aligned.
//
// Returns false if nothing remains to copy.
func Blit(dw, dh, sw, sh int, sx, sy, dx, dy, rw, rh *int) bool {
	if *rw <= 0 || *rh <= 0 {
		return false
	}
	if *sx < 0 {
		*rw += *sx
		*dx -= *sx
		*sx = 0
	}
	if *sy < 0 {
		*rh += *sy
		*dy -= *sy
		*sy = 0
	}
	if *dx < 0 {
		*rw += *dx
		*sx -= *dx
		*dx = 0
	}
	if *dy < 0 {
		*rh += *dy
		*sy -= *dy
		*dy = 0
	}
	if *sx+*rw > sw {
		*rw = sw - *sx
	}
	if *sy+*rh > sh {
		*rh = sh - *sy
	}
	if *dx+*rw > dw {
		*rw = dw - *dx
	}
	if *dy+*rh > dh {
		*rh = dh - *dy
	}
	return *rw > 0 && *rh > 0
}

// Cohen-Sutherland outcodes.
const (
	inside = 0
	left   = 1
	right  = 2
	bottom = 4
	top    = 8
)

func outcode(x, y, xMax, yMax int) int {
	code := inside
	if x < 0 {
		code |= left
	} else if x > xMax {
		code |= right
	}
	if y < 0 {
		code |= top
	} else if y > yMax {
		code |= bottom
	}
	return code
}

// Line clips the segment (*x0,*y0)-(*x1,*y1) to [0,w) x [0,h) using
// Cohen-Sutherland outcode iteration. It returns false if the segment
// lies entirely outside the image; endpoints are adjusted in place
// otherwise.
func Line(x0, y0, x1, y1 *int, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	xMax, yMax := w-1, h-1
	c0 := outcode(*x0, *y0, xMax, yMax)
	c1 := outcode(*x1, *y1, xMax, yMax)

	for {
		if c0|c1 == 0 {
			return true // both endpoints inside
		}
		if c0&c1 != 0 {
			return false // trivially rejected
		}

		// Pick an endpoint that is outside and move it to the border
		// it violates. Integer division truncates; the resulting
		// endpoint may still be outside another border, which the
		// next iteration handles.
		c := c0
		if c == inside {
			c = c1
		}
		var x, y int
		dx := *x1 - *x0
		dy := *y1 - *y0
		switch {
		case c&top != 0:
			x = *x0 + dx*(0-*y0)/dy
			y = 0
		case c&bottom != 0:
			x = *x0 + dx*(yMax-*y0)/dy
			y = yMax
		case c&left != 0:
			y = *y0 + dy*(0-*x0)/dx
			x = 0
		default: // right
			y = *y0 + dy*(xMax-*x0)/dx
			x = xMax
		}
		if c == c0 {
			*x0, *y0 = x, y
			c0 = outcode(x, y, xMax, yMax)
		} else {
			*x1, *y1 = x, y
			c1 = outcode(x, y, xMax, yMax)
		}
	}
}
