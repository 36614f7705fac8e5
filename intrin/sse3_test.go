package intrin

import "testing"

func TestAddSubM128(t *testing.T) {
	a := M128FromArray([4]float32{10, 20, 30, 40})
	b := M128FromArray([4]float32{1, 2, 3, 4})
	if got, want := AddSubM128(a, b).Array(), [4]float32{9, 22, 27, 44}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	d := M128dFromArray([2]float64{10, 20})
	e := M128dFromArray([2]float64{1, 2})
	if got, want := AddSubM128d(d, e).Array(), [2]float64{9, 22}; got != want {
		t.Errorf("double: got %v, want %v", got, want)
	}
}

func TestHorizontalM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	b := M128FromArray([4]float32{10, 20, 30, 40})

	if got, want := AddHorizontalM128(a, b).Array(), [4]float32{3, 7, 30, 70}; got != want {
		t.Errorf("hadd: got %v, want %v", got, want)
	}
	if got, want := SubHorizontalM128(a, b).Array(), [4]float32{-1, -1, -10, -10}; got != want {
		t.Errorf("hsub: got %v, want %v", got, want)
	}

	d := M128dFromArray([2]float64{1, 2})
	e := M128dFromArray([2]float64{30, 10})
	if got, want := AddHorizontalM128d(d, e).Array(), [2]float64{3, 40}; got != want {
		t.Errorf("hadd double: got %v, want %v", got, want)
	}
	if got, want := SubHorizontalM128d(d, e).Array(), [2]float64{-1, 20}; got != want {
		t.Errorf("hsub double: got %v, want %v", got, want)
	}
}

func TestDuplicateLanesM128(t *testing.T) {
	a := M128FromArray([4]float32{1, 2, 3, 4})
	if got, want := DuplicateOddLanesM128(a).Array(), [4]float32{2, 2, 4, 4}; got != want {
		t.Errorf("odd: got %v, want %v", got, want)
	}
	if got, want := DuplicateEvenLanesM128(a).Array(), [4]float32{1, 1, 3, 3}; got != want {
		t.Errorf("even: got %v, want %v", got, want)
	}

	d := M128dFromArray([2]float64{7, 8})
	if got, want := DuplicateLowLaneM128dS(d).Array(), [2]float64{7, 7}; got != want {
		t.Errorf("double low: got %v, want %v", got, want)
	}
}
