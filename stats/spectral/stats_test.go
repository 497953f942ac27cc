package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/kernel"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateShort(t *testing.T) {
	if s := Calculate(nil, 4); s.Samples != 0 || s.Peak != 0 {
		t.Fatalf("Calculate(nil) = %+v", s)
	}
	if s := Calculate([]float64{3}, 4); s.Samples != 1 || s.Centroid != 0 {
		t.Fatalf("Calculate(single) = %+v", s)
	}
}

func TestCalculateZeroResponse(t *testing.T) {
	s := Calculate(make([]float64, 9), 4)
	if s.Samples != 9 || s.Peak != 0 || s.Centroid != 0 || s.Bandwidth != 0 {
		t.Fatalf("zero response: %+v", s)
	}
}

func TestCalculateSinglePeak(t *testing.T) {
	s := Calculate([]float64{0, 0, -1, 0, 0}, 4)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"Peak", s.Peak, 1},
		{"PeakLambda", s.PeakLambda, 2},
		{"Energy", s.Energy, 1},
		{"Centroid", s.Centroid, 2},
		{"Spread", s.Spread, 0},
		{"Rolloff", s.Rolloff, 2},
		{"Bandwidth", s.Bandwidth, 2 - math.Sqrt2},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, tolerance) {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestCalculateFlat(t *testing.T) {
	s := Calculate([]float64{1, 1, 1, 1, 1}, 4)
	if !almostEqual(s.Centroid, 2, tolerance) {
		t.Errorf("Centroid: got %v, want 2", s.Centroid)
	}
	if !almostEqual(s.Spread, math.Sqrt2, tolerance) {
		t.Errorf("Spread: got %v, want √2", s.Spread)
	}
	if s.Rolloff != 4 {
		t.Errorf("Rolloff: got %v, want 4", s.Rolloff)
	}
	if s.Bandwidth != 4 {
		t.Errorf("Bandwidth: got %v, want 4", s.Bandwidth)
	}
}

func TestSample(t *testing.T) {
	r := Sample(kernel.XExpMinus(kernel.Scale(1)), 4, 5)
	if len(r) != 5 {
		t.Fatalf("len = %d, want 5", len(r))
	}
	if !almostEqual(r[1], math.Exp(-1), tolerance) {
		t.Fatalf("r[1] = %v, want e^-1", r[1])
	}
	if Sample(nil, 4, 1) != nil || Sample(nil, 0, 8) != nil {
		t.Fatal("expected nil for degenerate grids")
	}
}

func TestFrameBoundsConstant(t *testing.T) {
	one := kernel.Exp(kernel.Scale(0))
	bank := filter.NewBank(one, one)
	lo, hi := FrameBounds(bank, 3, 16)
	if !almostEqual(lo, 2, tolerance) || !almostEqual(hi, 2, tolerance) {
		t.Fatalf("bounds = (%v, %v), want (2, 2)", lo, hi)
	}
	if lo, hi := FrameBounds(filter.Bank{}, 3, 16); lo != 0 || hi != 0 {
		t.Fatalf("empty bank bounds = (%v, %v)", lo, hi)
	}
}

func TestDescribeMexicanHat(t *testing.T) {
	const lmax = 4.0
	bank, err := filter.New(filter.KindMexicanHat, lmax, 3)
	if err != nil {
		t.Fatal(err)
	}

	stats := Describe(bank, lmax, 2001)
	if len(stats) != bank.Len() {
		t.Fatalf("len = %d, want %d", len(stats), bank.Len())
	}
	if stats[0].PeakLambda != 0 {
		t.Errorf("low-pass peak at %v, want 0", stats[0].PeakLambda)
	}
	for i := 2; i < len(stats); i++ {
		if stats[i].PeakLambda <= stats[i-1].PeakLambda {
			t.Errorf("wavelet %d peaks at %v, not above wavelet %d at %v",
				i, stats[i].PeakLambda, i-1, stats[i-1].PeakLambda)
		}
	}

	lo, hi := FrameBounds(bank, lmax, 2001)
	if !(lo > 0) || hi < lo {
		t.Fatalf("bounds = (%v, %v)", lo, hi)
	}
}
