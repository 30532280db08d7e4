package pix

import "testing"

func TestResampleDimensions(t *testing.T) {
	im := mustImage(t, 8, 6)
	im.Fill(red)
	for _, f := range []ResampleFilter{ResampleNearest, ResampleBilinear, ResampleCatmullRom} {
		out, err := im.Resample(4, 3, f)
		if err != nil {
			t.Fatalf("Resample filter %d: %v", f, err)
		}
		if out.Width() != 4 || out.Height() != 3 {
			t.Errorf("filter %d: dimensions %dx%d, want 4x3", f, out.Width(), out.Height())
		}
	}
}

func TestResampleUniformColorPreserved(t *testing.T) {
	im := mustImage(t, 8, 8)
	c := RGB(10, 200, 60)
	im.Fill(c)
	out, err := im.Resample(16, 16, ResampleBilinear)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range out.Pix() {
		if p != c {
			t.Fatalf("pixel %d = %v, want %v", i, p, c)
		}
	}
}

func TestResampleNearestUpscale(t *testing.T) {
	im := mustImage(t, 2, 1)
	im.SetPixel(0, 0, red)
	im.SetPixel(1, 0, white)
	out, err := im.Resample(4, 1, ResampleNearest)
	if err != nil {
		t.Fatal(err)
	}
	if out.GetPixel(0, 0) != red || out.GetPixel(3, 0) != white {
		t.Errorf("nearest upscale edges = %v, %v", out.GetPixel(0, 0), out.GetPixel(3, 0))
	}
}

func TestResampleInvalidArgs(t *testing.T) {
	im := mustImage(t, 4, 4)
	if _, err := im.Resample(0, 4, ResampleNearest); err != ErrDimensions {
		t.Errorf("zero width err = %v, want ErrDimensions", err)
	}
	if _, err := im.Resample(4, 4, ResampleFilter(42)); err != ErrResampleFilter {
		t.Errorf("unknown filter err = %v, want ErrResampleFilter", err)
	}
}

func TestResampleSameSizeClones(t *testing.T) {
	im := mustImage(t, 4, 4)
	im.Fill(red)
	out, err := im.Resample(4, 4, ResampleCatmullRom)
	if err != nil {
		t.Fatal(err)
	}
	out.SetPixel(0, 0, white)
	if im.GetPixel(0, 0) != red {
		t.Error("same-size resample must not alias the source")
	}
}
