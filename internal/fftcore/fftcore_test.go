package fftcore

import (
	"math"
	"testing"
)

func approxEqual(a, b complex128, tol float64) bool {
	d := a - b
	return math.Hypot(real(d), imag(d)) <= tol
}

func mustKernel(t *testing.T, n int) Kernel[complex128] {
	t.Helper()
	k, err := New[complex128](n)
	if err != nil {
		t.Fatalf("New(%d) error: %v", n, err)
	}
	return k
}

func TestSizeOneForward(t *testing.T) {
	k := mustKernel(t, 1)
	buf := []complex128{complex(5, -3)}
	if err := k.InPlaceForward(buf); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(buf[0], complex(5, -3), 1e-9) {
		t.Errorf("got %v, want (5,-3)", buf[0])
	}
}

func TestSizeTwoForwardInverse(t *testing.T) {
	k := mustKernel(t, 2)
	buf := []complex128{complex(1, 0), complex(2, 0)}
	if err := k.InPlaceForward(buf); err != nil {
		t.Fatal(err)
	}
	want := []complex128{complex(3, 0), complex(-1, 0)}
	for i := range want {
		if !approxEqual(buf[i], want[i], 1e-9) {
			t.Errorf("forward[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
	if err := k.InPlaceInverse(buf); err != nil {
		t.Fatal(err)
	}
	wantInv := []complex128{complex(1, 0), complex(2, 0)}
	for i := range wantInv {
		if !approxEqual(buf[i], wantInv[i], 1e-9) {
			t.Errorf("inverse[%d] = %v, want %v", i, buf[i], wantInv[i])
		}
	}
}

func TestSizeThreeImpulse(t *testing.T) {
	k := mustKernel(t, 3)
	buf := []complex128{complex(1, 0), 0, 0}
	if err := k.InPlaceForward(buf); err != nil {
		t.Fatal(err)
	}
	for i, v := range buf {
		if !approxEqual(v, complex(1, 0), 1e-9) {
			t.Errorf("buf[%d] = %v, want (1,0)", i, v)
		}
	}
}

func TestSizeFourRadix2(t *testing.T) {
	k, err := newRadix2[complex128](4)
	if err != nil {
		t.Fatal(err)
	}
	buf := []complex128{1, 2, 3, 4}
	if err := k.InPlaceForward(buf); err != nil {
		t.Fatal(err)
	}
	want := []complex128{
		complex(10, 0), complex(-2, 2), complex(-2, 0), complex(-2, -2),
	}
	for i := range want {
		if !approxEqual(buf[i], want[i], 1e-9) {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSizeFivePrimeKernel(t *testing.T) {
	k, err := newPrime[complex128](5)
	if err != nil {
		t.Fatal(err)
	}
	buf := []complex128{1, 1, 1, 1, 1}
	if err := k.InPlaceForward(buf); err != nil {
		t.Fatal(err)
	}
	want := []complex128{5, 0, 0, 0, 0}
	for i := range want {
		if !approxEqual(buf[i], want[i], 1e-6) {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	impulse := []complex128{1, 0, 0, 0, 0}
	if err := k.InPlaceForward(impulse); err != nil {
		t.Fatal(err)
	}
	for i, v := range impulse {
		if !approxEqual(v, 1, 1e-6) {
			t.Errorf("impulse[%d] = %v, want (1,0)", i, v)
		}
	}
}

func TestSizeSixComposite(t *testing.T) {
	k, err := newComposite[complex128](6)
	if err != nil {
		t.Fatal(err)
	}

	impulse := make([]complex128, 6)
	impulse[0] = 1
	if err := k.InPlaceForward(impulse); err != nil {
		t.Fatal(err)
	}
	for i, v := range impulse {
		if !approxEqual(v, 1, 1e-9) {
			t.Errorf("impulse spectrum[%d] = %v, want (1,0)", i, v)
		}
	}

	allOnes := make([]complex128, 6)
	for i := range allOnes {
		allOnes[i] = 1
	}
	if err := k.InPlaceForward(allOnes); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(allOnes[0], 6, 1e-9) {
		t.Errorf("allOnes[0] = %v, want (6,0)", allOnes[0])
	}
	for i := 1; i < 6; i++ {
		if !approxEqual(allOnes[i], 0, 1e-9) {
			t.Errorf("allOnes[%d] = %v, want (0,0)", i, allOnes[i])
		}
	}
}

func TestRoundTripAcrossSizes(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 23, 29, 32, 64, 100, 128}
	for _, n := range sizes {
		k := mustKernel(t, n)
		buf := make([]complex128, n)
		for i := range buf {
			buf[i] = complex(float64(i+1), float64(-i))
		}
		orig := append([]complex128(nil), buf...)

		if err := k.InPlaceForward(buf); err != nil {
			t.Fatalf("n=%d forward: %v", n, err)
		}
		if err := k.InPlaceInverse(buf); err != nil {
			t.Fatalf("n=%d inverse: %v", n, err)
		}
		for i := range buf {
			if !approxEqual(buf[i], orig[i], 1e-6) {
				t.Errorf("n=%d round-trip[%d] = %v, want %v", n, i, buf[i], orig[i])
			}
		}
	}
}

func TestDispatcherSelection(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{2, "Fixed2FFT()"},
		{3, "Fixed3FFT()"},
		{7, "NaiveFFT(7)"},
		{16, "Radix2FFT(16)"},
		{17, "NaiveFFT(17)"},
		{29, "PrimeFFT(29,padded=64)"},
		{37, "PrimeFFT(37)"},
	}
	for _, c := range cases {
		k := mustKernel(t, c.n)
		if k.String() != c.want {
			t.Errorf("New(%d).String() = %q, want %q", c.n, k.String(), c.want)
		}
	}
}

func TestInvalidSize(t *testing.T) {
	if _, err := New[complex128](0); err == nil {
		t.Error("New(0) should fail")
	}
	if _, err := New[complex128](-5); err == nil {
		t.Error("New(-5) should fail")
	}
}

func TestLengthMismatch(t *testing.T) {
	k := mustKernel(t, 8)
	if err := k.InPlaceForward(make([]complex128, 4)); err == nil {
		t.Error("expected length mismatch error")
	}
}
