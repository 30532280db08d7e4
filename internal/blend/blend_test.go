package blend

import "testing"

// TestDiv255Identity pins the legacy division identity against exact
// integer division over the full input range. The identity is allowed
// to be off by at most one, and the deviation pattern is part of the
// library's output contract.
func TestDiv255Identity(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		got := div255(x)
		exact := x / 255
		if got != exact && got != exact+1 {
			t.Fatalf("div255(%d) = %d, want %d or %d", x, got, exact, exact+1)
		}
	}
	// Spot-check values where the identity is known to round up.
	if div255(254) != 0 {
		t.Errorf("div255(254) = %d, want 0", div255(254))
	}
	if div255(255) != 1 {
		t.Errorf("div255(255) = %d, want 1", div255(255))
	}
	if div255(255*255) != 255 {
		t.Errorf("div255(255*255) = %d, want 255", div255(255*255))
	}
}

// TestAlphaBoundaries verifies the bit-exactness required at the alpha
// extremes: a fully transparent source leaves the destination
// untouched, a fully opaque source replaces it (alpha forced to 255).
func TestAlphaBoundaries(t *testing.T) {
	for _, d := range []uint8{0, 1, 127, 254, 255} {
		r, g, b, a := Alpha(10, 20, 30, 0, d, d, d, d)
		if r != d || g != d || b != d || a != d {
			t.Errorf("alpha=0 source changed dest %d to (%d,%d,%d,%d)", d, r, g, b, a)
		}
		r, g, b, a = Alpha(10, 20, 30, 255, d, d, d, d)
		if r != 10 || g != 20 || b != 30 || a != 255 {
			t.Errorf("alpha=255 source gave (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
		}
	}
}

// TestAlphaMidpoint checks the interior blend against the documented
// formula using the legacy divider.
func TestAlphaMidpoint(t *testing.T) {
	tests := []struct {
		sc, sa, dc uint8
	}{
		{200, 128, 50},
		{0, 64, 255},
		{255, 1, 0},
		{100, 200, 100},
	}
	for _, tt := range tests {
		want := uint8(div255(uint32(tt.sc)*uint32(tt.sa) + uint32(tt.dc)*uint32(255-tt.sa)))
		r, _, _, a := Alpha(tt.sc, 0, 0, tt.sa, tt.dc, 0, 0, 255)
		if r != want {
			t.Errorf("Alpha(src=%d a=%d dst=%d) = %d, want %d", tt.sc, tt.sa, tt.dc, r, want)
		}
		if a != 255 {
			t.Errorf("Alpha result alpha = %d, want 255", a)
		}
	}
}

// TestPremultipliedMatchesAlpha: for a source that has been
// premultiplied, Premultiplied must produce the same output as Alpha
// does on the straight-alpha original, up to the one-count rounding
// slack of the legacy divider.
func TestPremultipliedMatchesAlpha(t *testing.T) {
	for _, sa := range []uint8{0, 1, 37, 128, 200, 254, 255} {
		for _, sc := range []uint8{0, 1, 85, 170, 255} {
			for _, dc := range []uint8{0, 60, 255} {
				pm := uint8(div255(uint32(sc) * uint32(sa)))
				ar, _, _, _ := Alpha(sc, 0, 0, sa, dc, 0, 0, 255)
				pr, _, _, _ := Premultiplied(pm, 0, 0, sa, dc, 0, 0, 255)
				diff := int(ar) - int(pr)
				if diff < -1 || diff > 1 {
					t.Errorf("src=%d a=%d dst=%d: Alpha=%d Premultiplied=%d",
						sc, sa, dc, ar, pr)
				}
			}
		}
	}
}

func TestTransparentKey(t *testing.T) {
	r, g, b, a := Transparent(9, 9, 9, 0, 1, 2, 3, 4)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("zero-alpha source overwrote destination: got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = Transparent(9, 9, 9, 1, 1, 2, 3, 4)
	if r != 9 || g != 9 || b != 9 || a != 1 {
		t.Errorf("keyed copy failed: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestArithmeticSaturation(t *testing.T) {
	if r, _, _, _ := Add(200, 0, 0, 0, 100, 0, 0, 0); r != 255 {
		t.Errorf("Add(200,100) = %d, want 255", r)
	}
	if r, _, _, _ := Add(5, 0, 0, 0, 7, 0, 0, 0); r != 12 {
		t.Errorf("Add(5,7) = %d, want 12", r)
	}
	if r, _, _, _ := Subtract(10, 0, 0, 0, 30, 0, 0, 0); r != 0 {
		t.Errorf("Subtract(10,30) = %d, want 0", r)
	}
	if r, _, _, _ := Subtract(30, 0, 0, 0, 10, 0, 0, 0); r != 20 {
		t.Errorf("Subtract(30,10) = %d, want 20", r)
	}
	if r, _, _, _ := ReverseSubtract(30, 0, 0, 0, 10, 0, 0, 0); r != 0 {
		t.Errorf("ReverseSubtract(30,10) = %d, want 0", r)
	}
	if r, _, _, _ := ReverseSubtract(10, 0, 0, 0, 30, 0, 0, 0); r != 20 {
		t.Errorf("ReverseSubtract(10,30) = %d, want 20", r)
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct{ s, d, want uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{128, 128, uint8(div255(128 * 128))},
	}
	for _, tt := range tests {
		if r, _, _, _ := Multiply(tt.s, 0, 0, 0, tt.d, 0, 0, 0); r != tt.want {
			t.Errorf("Multiply(%d,%d) = %d, want %d", tt.s, tt.d, r, tt.want)
		}
	}
}

func TestIndexRules(t *testing.T) {
	if IndexTransparent(0, 7) != 7 {
		t.Error("index 0 must be transparent")
	}
	if IndexTransparent(3, 7) != 3 {
		t.Error("non-zero index must copy")
	}
	if IndexCopy(0, 7) != 0 {
		t.Error("IndexCopy must copy index 0 too")
	}
	if IndexAdd(200, 100) != 255 {
		t.Error("IndexAdd must saturate")
	}
	if IndexSubtract(3, 9) != 0 {
		t.Error("IndexSubtract must clamp at 0")
	}
	if IndexReverseSubtract(3, 9) != 6 {
		t.Error("IndexReverseSubtract(3,9) should be 6")
	}
}
