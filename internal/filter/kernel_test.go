package filter

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		kernel []float32
		ok     bool
	}{
		{"identity", []float32{1}, true},
		{"three taps", []float32{0.25, 0.5, 0.25}, true},
		{"empty", nil, false},
		{"even", []float32{0.5, 0.5}, false},
		{"four taps", []float32{1, 2, 2, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.kernel)
			if (err == nil) != tt.ok {
				t.Errorf("Validate(%v) err = %v, want ok=%v", tt.kernel, err, tt.ok)
			}
		})
	}
}

func TestGaussian(t *testing.T) {
	k := Gaussian(1.5)
	if len(k)%2 != 1 {
		t.Fatalf("Gaussian kernel has even size %d", len(k))
	}
	var sum float64
	for _, v := range k {
		sum += float64(v)
	}
	if math.Abs(sum-1) > 1e-5 {
		t.Errorf("Gaussian kernel sums to %g, want 1", sum)
	}
	half := len(k) / 2
	for i := 0; i < half; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("kernel not symmetric at tap %d: %g vs %g", i, k[i], k[len(k)-1-i])
		}
		if k[i] > k[i+1] {
			t.Errorf("kernel not increasing toward center at tap %d", i)
		}
	}
	if got := Gaussian(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("Gaussian(0) = %v, want identity", got)
	}
}

func TestBox(t *testing.T) {
	k := Box(2)
	if len(k) != 5 {
		t.Fatalf("Box(2) size = %d, want 5", len(k))
	}
	for _, v := range k {
		if math.Abs(float64(v)-0.2) > 1e-6 {
			t.Errorf("Box(2) tap = %g, want 0.2", v)
		}
	}
}
