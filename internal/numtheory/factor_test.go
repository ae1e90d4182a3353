package numtheory

import (
	"reflect"
	"testing"
)

func TestPrimeDecomp(t *testing.T) {
	cases := []struct {
		n    int64
		want []int64
	}{
		{1, []int64{}},
		{2, []int64{2}},
		{6, []int64{2, 3}},
		{7429, []int64{17, 19, 23}},
		{4913, []int64{17, 17, 17}},
	}
	for _, c := range cases {
		got := PrimeDecomp(c.n)
		if len(c.want) == 0 && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("PrimeDecomp(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestPrimePaddingHeuristic(t *testing.T) {
	// 22's largest prime factor is 11, which is above 5, so 23 pads.
	if !PrimePaddingHeuristic(23) {
		t.Errorf("PrimePaddingHeuristic(23) = false, want true (largestPrimeFactor(22)=11 > 5)")
	}
	// 29 has largest factor of 28 equal to 7, also above 5.
	if !PrimePaddingHeuristic(29) {
		t.Errorf("PrimePaddingHeuristic(29) = false, want true")
	}
	// 31 has largest factor of 30 equal to 5, not above 5, but is one
	// of the explicit exceptions that pads anyway.
	if !PrimePaddingHeuristic(31) {
		t.Errorf("PrimePaddingHeuristic(31) = false, want true (explicit exception)")
	}
	// 37 has largest factor of 36 equal to 3, not above 5, and is not
	// an exception.
	if PrimePaddingHeuristic(37) {
		t.Errorf("PrimePaddingHeuristic(37) = true, want false")
	}
}
