package spatial

import (
	"errors"
	"math"
	"testing"
)

func cross3(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func TestSkewMatchesCrossProduct(t *testing.T) {
	vs := [][]float64{
		{1, 2, 3},
		{-0.5, 0, 2.5},
		{0, 0, 0},
	}
	us := [][]float64{
		{4, 5, 6},
		{1, -1, 0.25},
	}

	for _, v := range vs {
		s, err := Skew(v)
		if err != nil {
			t.Fatalf("skew failed: %v", err)
		}
		for _, u := range us {
			got := apply(s, u)
			want := cross3(v, u)
			for i := 0; i < 3; i++ {
				if math.Abs(got[i]-want[i]) > 1e-12 {
					t.Errorf("skew(%v)@%v[%d] = %f, want %f", v, u, i, got[i], want[i])
				}
			}
		}
	}
}

func TestSkewShapeError(t *testing.T) {
	if _, err := Skew([]float64{1, 2}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
	if _, err := Skew([]float64{1, 2, 3, 4}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestCrfIsNegativeCrmTranspose(t *testing.T) {
	vs := []Vector{
		{1, 0, 0, 0, 1, 0},
		{0.3, -1.2, 2.1, 0.7, 0.0, -0.4},
		{0, 0, 0, 0, 0, 0},
	}

	for _, v := range vs {
		crm, err := Crm(v)
		if err != nil {
			t.Fatalf("crm failed: %v", err)
		}
		crf, err := Crf(v)
		if err != nil {
			t.Fatalf("crf failed: %v", err)
		}

		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if crf.At(i, j) != -crm.At(j, i) {
					t.Errorf("crf(%v)[%d,%d] = %f, want exactly %f", v, i, j, crf.At(i, j), -crm.At(j, i))
				}
			}
		}
	}
}

func TestCrmShapeError(t *testing.T) {
	if _, err := Crm(Vector{1, 2, 3}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
	if _, err := Crf(Vector{1, 2, 3}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestCrossDispatch(t *testing.T) {
	v := Vector{1, 0, 0, 0, 1, 0}
	u := Vector{0, 1, 0, 0, 0, 1}

	motion, err := Cross(v, u, Motion)
	if err != nil {
		t.Fatalf("motion cross failed: %v", err)
	}
	crm, _ := Crm(v)
	want := apply(crm, u)
	for i := range want {
		if math.Abs(motion[i]-want[i]) > 1e-12 {
			t.Errorf("motion cross[%d] = %f, want %f", i, motion[i], want[i])
		}
	}

	force, err := Cross(v, u, Force)
	if err != nil {
		t.Fatalf("force cross failed: %v", err)
	}
	crf, _ := Crf(v)
	want = apply(crf, u)
	for i := range want {
		if math.Abs(force[i]-want[i]) > 1e-12 {
			t.Errorf("force cross[%d] = %f, want %f", i, force[i], want[i])
		}
	}
}

func TestCrossInvalidKind(t *testing.T) {
	v := Vector{1, 0, 0, 0, 0, 0}
	if _, err := Cross(v, v, CrossKind(7)); !errors.Is(err, ErrCrossKind) {
		t.Errorf("expected ErrCrossKind, got %v", err)
	}
}

func TestVectorHelpers(t *testing.T) {
	v := Vector{1, 2, 3, 4, 5, 6}

	if got := v.Dot(Vector{1, 0, 0, 0, 0, 1}); got != 7 {
		t.Errorf("dot = %f, want 7", got)
	}

	sum := v.Add(v.Scale(-1))
	for i := range sum {
		if sum[i] != 0 {
			t.Errorf("v - v should be zero at %d, got %f", i, sum[i])
		}
	}

	if !v.IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vector{math.NaN(), 0, 0, 0, 0, 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
}
