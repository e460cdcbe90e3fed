package vmath

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestFInterpTo(t *testing.T) {
	tests := []struct {
		name                       string
		current, target, dt, speed float64
		want                       float64
	}{
		{"zero speed snaps", 0, 10, 0.016, 0, 10},
		{"zero dt holds", 3, 10, 0, 30, 3},
		{"already there", 5, 5, 0.016, 30, 5},
		{"one step", 0, 10, 0.1, 10, 10 * (1 - math.Exp(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FInterpTo(tt.current, tt.target, tt.dt, tt.speed)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestFInterpToConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 200; i++ {
		v = FInterpTo(v, 100, 1.0/60, 30)
	}
	if math.Abs(v-100) > 1e-3 {
		t.Errorf("Expected convergence to 100, got %f", v)
	}
}

func TestMapRangeClamped(t *testing.T) {
	if got := MapRangeClamped(0, 600, 0, 1, 300); math.Abs(got-0.5) > eps {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := MapRangeClamped(0, 600, 0, 1, 1200); got != 1 {
		t.Errorf("Expected clamp to 1, got %f", got)
	}
	if got := MapRangeClamped(0, 600, 0, 1, -5); got != 0 {
		t.Errorf("Expected clamp to 0, got %f", got)
	}
	if got := MapRangeClamped(5, 5, 2, 3, 100); got != 2 {
		t.Errorf("Expected degenerate range to return outLo, got %f", got)
	}
}

func TestNormalizeAxis(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		-270: 90,
		725:  5,
	}
	for in, want := range cases {
		if got := NormalizeAxis(in); math.Abs(got-want) > eps {
			t.Errorf("NormalizeAxis(%f): expected %f, got %f", in, want, got)
		}
	}
}

func TestRotateAngleAxis(t *testing.T) {
	// Rotating X by 90 degrees about Z yields Y
	got := V3FRotateAngleAxis(AxisX, 90, AxisZ)
	if !V3FNearlyEqual(got, AxisY, 1e-9) {
		t.Errorf("Expected %+v, got %+v", AxisY, got)
	}

	// Length is preserved
	v := Vec3F{3, -4, 12}
	r := V3FRotateAngleAxis(v, 37, Vec3F{1, 2, 3})
	if math.Abs(V3FMag(v)-V3FMag(r)) > 1e-9 {
		t.Errorf("Expected length %f, got %f", V3FMag(v), V3FMag(r))
	}

	// Zero axis is a no-op
	if got := V3FRotateAngleAxis(v, 45, Vec3F{}); got != v {
		t.Errorf("Expected unchanged vector, got %+v", got)
	}
}

func TestRotatorAxes(t *testing.T) {
	r := Rotator{Yaw: 90}
	if !V3FNearlyEqual(r.Forward(), AxisY, 1e-9) {
		t.Errorf("Expected forward %+v, got %+v", AxisY, r.Forward())
	}
	if !V3FNearlyEqual(r.Right(), Vec3F{X: -1}, 1e-9) {
		t.Errorf("Expected right (-1,0,0), got %+v", r.Right())
	}
	if !V3FNearlyEqual(r.Up(), AxisZ, 1e-9) {
		t.Errorf("Expected up %+v, got %+v", AxisZ, r.Up())
	}
}

func TestTransformPosition(t *testing.T) {
	tr := Transform{
		Location: Vec3F{100, 0, 50},
		Rotation: Rotator{Yaw: 90},
	}
	// 10 forward lands on +Y when yawed 90
	got := tr.TransformPosition(Vec3F{X: 10, Z: 5})
	want := Vec3F{100, 10, 55}
	if !V3FNearlyEqual(got, want, 1e-9) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestCurveSample(t *testing.T) {
	c := NewCurve(CurveKey{T: 0.7, V: 1}, CurveKey{T: 0, V: 0}, CurveKey{T: 0.35, V: 1.5})

	if c.Duration() != 700*time.Millisecond {
		t.Errorf("Expected duration 700ms, got %v", c.Duration())
	}
	if got := c.Sample(-1); got != 0 {
		t.Errorf("Expected clamp to first key 0, got %f", got)
	}
	if got := c.Sample(0.175); math.Abs(got-0.75) > eps {
		t.Errorf("Expected 0.75 midway up, got %f", got)
	}
	if got := c.SampleAt(350 * time.Millisecond); math.Abs(got-1.5) > eps {
		t.Errorf("Expected peak 1.5, got %f", got)
	}
	if got := c.Sample(10); got != 1 {
		t.Errorf("Expected clamp to last key 1, got %f", got)
	}

	var empty *Curve
	if empty.Sample(1) != 0 || empty.Duration() != 0 {
		t.Error("Expected nil curve to sample zero")
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Range(10, 30)
		if v < 10 || v >= 30 {
			t.Fatalf("Expected value in [10,30), got %f", v)
		}
	}

	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
