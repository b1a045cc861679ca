package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	got := Vec3{0, 0, 100}.Distance(Vec3{3, 4, 100})
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 10, 50}
	b := Vec3{10, -10, 50}

	tests := []struct {
		t    float32
		want Vec3
	}{
		{0, a},
		{1, b},
		{0.5, Vec3{5, 0, 50}},
	}

	for _, tc := range tests {
		if got := a.Lerp(b, tc.t); got != tc.want {
			t.Errorf("Vec3.Lerp(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestVec3Array(t *testing.T) {
	got := Vec3{1, -1, 0.5}.Array()
	if got != [3]float32{1, -1, 0.5} {
		t.Errorf("Vec3.Array() = %v", got)
	}
}
