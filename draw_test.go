package pix

import (
	"image"
	"testing"
)

var (
	red   = RGB(255, 0, 0)
	white = RGB(255, 255, 255)
)

func TestFillRectCopy(t *testing.T) {
	im := mustImage(t, 10, 10)
	if err := im.FillRect(0, 0, 10, 10, red, Op{}); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	for i, p := range im.Pix() {
		if p != red {
			t.Fatalf("pixel %d = %v, want red", i, p)
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	im := mustImage(t, 6, 6)
	if err := im.FillRect(-2, -2, 5, 5, red, Op{}); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := RGBA{}
			if x < 3 && y < 3 {
				want = red
			}
			if got := im.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectDegenerateNoOp(t *testing.T) {
	im := mustImage(t, 4, 4)
	for _, r := range [][4]int{{0, 0, 0, 4}, {0, 0, 4, -1}, {10, 10, 3, 3}, {-9, 0, 4, 4}} {
		if err := im.FillRect(r[0], r[1], r[2], r[3], red, Op{}); err != nil {
			t.Errorf("degenerate FillRect%v returned error %v", r, err)
		}
	}
	for _, p := range im.Pix() {
		if p != (RGBA{}) {
			t.Fatal("degenerate rectangle touched pixels")
		}
	}
}

func TestFillRectBadMode(t *testing.T) {
	im := mustImage(t, 4, 4)
	if err := im.FillRect(0, 0, 4, 4, red, Op{Mode: BlendMode(99)}); err != ErrBlendMode {
		t.Errorf("err = %v, want ErrBlendMode", err)
	}
	for _, p := range im.Pix() {
		if p != (RGBA{}) {
			t.Fatal("rejected call touched pixels")
		}
	}
}

func TestFillRectAlphaBoundary(t *testing.T) {
	im := mustImage(t, 2, 2)
	im.Fill(RGBA{10, 20, 30, 200})

	// Fully transparent source: bit-identical destination.
	if err := im.FillRect(0, 0, 2, 2, RGBA{99, 99, 99, 0}, Op{Mode: BlendAlpha}); err != nil {
		t.Fatal(err)
	}
	if im.GetPixel(0, 0) != (RGBA{10, 20, 30, 200}) {
		t.Errorf("alpha=0 fill changed destination to %v", im.GetPixel(0, 0))
	}

	// Fully opaque source: destination equals source, alpha 255.
	if err := im.FillRect(0, 0, 2, 2, RGBA{1, 2, 3, 255}, Op{Mode: BlendAlpha}); err != nil {
		t.Fatal(err)
	}
	if im.GetPixel(1, 1) != (RGBA{1, 2, 3, 255}) {
		t.Errorf("alpha=255 fill gave %v", im.GetPixel(1, 1))
	}
}

func TestDrawRectBands(t *testing.T) {
	im := mustImage(t, 8, 8)
	if err := im.DrawRect(1, 1, 6, 6, 1, red, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			onBorder := (x >= 1 && x <= 6 && (y == 1 || y == 6)) ||
				(y >= 1 && y <= 6 && (x == 1 || x == 6))
			want := RGBA{}
			if onBorder {
				want = red
			}
			if got := im.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// With an additive mode, any double-blended corner would stand out as
// a doubled channel value.
func TestDrawRectNoCornerDoubleBlend(t *testing.T) {
	im := mustImage(t, 8, 8)
	c := RGBA{40, 0, 0, 40}
	if err := im.DrawRect(0, 0, 8, 8, 2, c, Op{Mode: BlendAdd}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := im.GetPixel(x, y)
			if got.R != 0 && got.R != 40 {
				t.Errorf("pixel (%d,%d) red = %d; border pixel blended twice", x, y, got.R)
			}
		}
	}
}

func TestDrawRectThickDegeneratesToFill(t *testing.T) {
	im := mustImage(t, 6, 6)
	if err := im.DrawRect(1, 1, 4, 4, 2, red, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			if im.GetPixel(x, y) != red {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestDrawLineScenario(t *testing.T) {
	// DrawLine((0,0),(4,0)) on a 5x5 image sets exactly (0..4, 0).
	im := mustImage(t, 5, 5)
	if err := im.DrawLine(0, 0, 4, 0, white, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := RGBA{}
			if y == 0 {
				want = white
			}
			if got := im.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	im := mustImage(t, 5, 5)
	if err := im.DrawLine(-10, 2, 10, 2, white, Op{}); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 5; x++ {
		if im.GetPixel(x, 2) != white {
			t.Errorf("pixel (%d,2) not drawn", x)
		}
	}
	// Entirely outside: no-op, no error.
	if err := im.DrawLine(-9, -9, -1, -5, white, Op{}); err != nil {
		t.Fatal(err)
	}
}

func TestFillPolygonScenario(t *testing.T) {
	// Square (1,1),(4,1),(4,4),(1,4) on 6x6 fills exactly (1..3,1..3).
	im := mustImage(t, 6, 6)
	pts := []image.Point{{1, 1}, {4, 1}, {4, 4}, {1, 4}}
	if err := im.FillPolygon(pts, red, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := RGBA{}
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = red
			}
			if got := im.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillPolygonClipped(t *testing.T) {
	im := mustImage(t, 4, 4)
	pts := []image.Point{{-5, -5}, {9, -5}, {9, 9}, {-5, 9}}
	if err := im.FillPolygon(pts, red, Op{}); err != nil {
		t.Fatal(err)
	}
	for _, p := range im.Pix() {
		if p != red {
			t.Fatal("polygon covering the canvas must fill every pixel")
		}
	}
}

func TestDrawPolygonSingleBlendPerVertex(t *testing.T) {
	// Shared vertices of consecutive segments must be drawn once;
	// doubled additive values would reveal a re-blend.
	im := mustImage(t, 10, 10)
	pts := []image.Point{{1, 1}, {8, 1}, {8, 8}, {1, 8}}
	c := RGBA{30, 0, 0, 30}
	if err := im.DrawPolygon(pts, c, Op{Mode: BlendAdd}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r := im.GetPixel(x, y).R; r != 0 && r != 30 {
				t.Errorf("pixel (%d,%d) red = %d, blended more than once", x, y, r)
			}
		}
	}
}

func TestDrawBezierStraightMatchesLine(t *testing.T) {
	// Control points on a straight segment must flatten onto the same
	// pixels Bresenham produces.
	curve := mustImage(t, 12, 12)
	line := mustImage(t, 12, 12)
	err := curve.DrawBezier(image.Pt(1, 1), image.Pt(4, 4), image.Pt(7, 7), image.Pt(10, 10), 0, white, Op{})
	if err != nil {
		t.Fatal(err)
	}
	if err := line.DrawLine(1, 1, 10, 10, white, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if curve.GetPixel(x, y) != line.GetPixel(x, y) {
				t.Errorf("pixel (%d,%d): curve %v, line %v", x, y,
					curve.GetPixel(x, y), line.GetPixel(x, y))
			}
		}
	}
}

func TestDrawThickLineHorizontal(t *testing.T) {
	im := mustImage(t, 12, 12)
	if err := im.DrawThickLine(1, 6, 10, 6, 4, red, Op{}); err != nil {
		t.Fatal(err)
	}
	rows := 0
	for y := 0; y < 12; y++ {
		if im.GetPixel(5, y) == red {
			rows++
		}
	}
	if rows != 4 {
		t.Errorf("thick line covers %d rows at x=5, want 4", rows)
	}
	// No pixels far from the line.
	if im.GetPixel(5, 0) == red || im.GetPixel(5, 11) == red {
		t.Error("thick line leaked far from its quad")
	}
}

func TestBlitBasic(t *testing.T) {
	src := mustImage(t, 4, 4)
	src.Fill(red)
	dst := mustImage(t, 8, 8)
	if err := dst.Blit(src, 0, 0, 2, 2, 4, 4, Op{}); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := RGBA{}
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = red
			}
			if got := dst.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlitPartiallyOutside(t *testing.T) {
	src := mustImage(t, 4, 4)
	src.Fill(red)
	dst := mustImage(t, 4, 4)
	// Source window hangs off the source; destination hangs off too.
	if err := dst.Blit(src, 2, 2, -1, -1, 4, 4, Op{}); err != nil {
		t.Fatal(err)
	}
	// Window clips to 2x2 at src (2,2); dst origin shifts to (0,0)
	// then the src origin advances past its edge, leaving a 1x1 copy.
	count := 0
	for _, p := range dst.Pix() {
		if p == red {
			count++
		}
	}
	if count != 1 {
		t.Errorf("blit wrote %d pixels, want 1", count)
	}
	if dst.GetPixel(0, 0) != red {
		t.Error("surviving pixel should be at (0,0)")
	}
}

func TestBlitFlips(t *testing.T) {
	src := mustImage(t, 2, 2)
	a, b, c, d := RGB(1, 0, 0), RGB(2, 0, 0), RGB(3, 0, 0), RGB(4, 0, 0)
	src.SetPixel(0, 0, a)
	src.SetPixel(1, 0, b)
	src.SetPixel(0, 1, c)
	src.SetPixel(1, 1, d)

	h := mustImage(t, 2, 2)
	if err := h.Blit(src, 0, 0, 0, 0, 2, 2, Op{FlipH: true}); err != nil {
		t.Fatal(err)
	}
	if h.GetPixel(0, 0) != b || h.GetPixel(1, 0) != a {
		t.Errorf("FlipH top row = %v,%v", h.GetPixel(0, 0), h.GetPixel(1, 0))
	}

	v := mustImage(t, 2, 2)
	if err := v.Blit(src, 0, 0, 0, 0, 2, 2, Op{FlipV: true}); err != nil {
		t.Fatal(err)
	}
	if v.GetPixel(0, 0) != c || v.GetPixel(1, 1) != b {
		t.Errorf("FlipV = %v,%v", v.GetPixel(0, 0), v.GetPixel(1, 1))
	}

	hv := mustImage(t, 2, 2)
	if err := hv.Blit(src, 0, 0, 0, 0, 2, 2, Op{FlipH: true, FlipV: true}); err != nil {
		t.Fatal(err)
	}
	if hv.GetPixel(0, 0) != d || hv.GetPixel(1, 1) != a {
		t.Errorf("FlipH+FlipV = %v,%v", hv.GetPixel(0, 0), hv.GetPixel(1, 1))
	}
}

func TestBlitTransparentKey(t *testing.T) {
	src := mustImage(t, 2, 1)
	src.SetPixel(0, 0, RGBA{50, 60, 70, 0}) // keyed transparent
	src.SetPixel(1, 0, RGBA{50, 60, 70, 3})
	dst := mustImage(t, 2, 1)
	dst.Fill(white)
	if err := dst.Blit(src, 0, 0, 0, 0, 2, 1, Op{Mode: BlendTransparent}); err != nil {
		t.Fatal(err)
	}
	if dst.GetPixel(0, 0) != white {
		t.Error("alpha-zero pixel overwrote destination")
	}
	if dst.GetPixel(1, 0) != (RGBA{50, 60, 70, 3}) {
		t.Error("non-zero-alpha pixel was not copied")
	}
}

func TestComposeMismatch(t *testing.T) {
	a := mustImage(t, 4, 4)
	b := mustImage(t, 4, 5)
	if err := a.Compose(b, Op{Mode: BlendAdd}); err != ErrSizeMismatch {
		t.Errorf("err = %v, want ErrSizeMismatch", err)
	}
}

func TestComposeAdd(t *testing.T) {
	a := mustImage(t, 2, 2)
	a.Fill(RGBA{100, 0, 0, 255})
	b := mustImage(t, 2, 2)
	b.Fill(RGBA{200, 10, 0, 255})
	if err := a.Compose(b, Op{Mode: BlendAdd}); err != nil {
		t.Fatal(err)
	}
	got := a.GetPixel(0, 0)
	if got.R != 255 || got.G != 10 {
		t.Errorf("Compose add = %v, want saturated red, g=10", got)
	}
}

func TestPalettedDrawing(t *testing.T) {
	pal := make([]RGBA, 4)
	p, err := NewPaletted(6, 6, pal)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.FillRect(1, 1, 4, 4, 3, Op{}); err != nil {
		t.Fatal(err)
	}
	if p.GetIndex(2, 2) != 3 || p.GetIndex(0, 0) != 0 {
		t.Error("indexed FillRect wrote wrong indices")
	}

	// Alpha blending has no meaning for palette indices.
	if err := p.FillRect(0, 0, 2, 2, 1, Op{Mode: BlendAlpha}); err != ErrBlendMode {
		t.Errorf("indexed alpha fill err = %v, want ErrBlendMode", err)
	}

	// Index zero is the transparency key for indexed blits.
	src, err := NewPaletted(6, 6, pal)
	if err != nil {
		t.Fatal(err)
	}
	src.SetIndex(0, 0, 2)
	before := p.GetIndex(1, 1)
	if err := p.Blit(src, 0, 0, 0, 0, 6, 6, Op{Mode: BlendTransparent}); err != nil {
		t.Fatal(err)
	}
	if p.GetIndex(0, 0) != 2 {
		t.Error("non-zero index should copy through transparent blit")
	}
	if p.GetIndex(1, 1) != before {
		t.Error("zero index should leave destination untouched")
	}
}

func TestNoClipTrustedFill(t *testing.T) {
	im := mustImage(t, 5, 5)
	// In-bounds geometry with NoClip must behave like the checked path.
	if err := im.FillRect(1, 1, 3, 3, red, Op{NoClip: true}); err != nil {
		t.Fatal(err)
	}
	if im.GetPixel(2, 2) != red || im.GetPixel(0, 0) == red {
		t.Error("NoClip fill misbehaved on in-bounds geometry")
	}
}
