package angle

import (
	"math"
	"testing"
)

func TestFromDegrees_Roundtrip(t *testing.T) {
	a := FromDegrees(45)
	if math.Abs(a.Radians()-math.Pi/4) > 1e-12 {
		t.Errorf("Radians() = %v, want pi/4", a.Radians())
	}
	if math.Abs(a.Degrees()-45) > 1e-12 {
		t.Errorf("Degrees() = %v, want 45", a.Degrees())
	}
}

func TestNormalize360(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-90:  270,
		720:  0,
		-720: 0,
		10:   10,
	}
	for in, want := range cases {
		if got := Normalize360(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("Normalize360(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeSignedLon(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		359:  -1,
		181:  -179,
		-181: 179,
	}
	for in, want := range cases {
		got := NormalizeSignedLon(in)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeSignedLon(%v) = %v, want %v", in, got, want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("NormalizeSignedLon(%v) = %v, out of (-180, 180]", in, got)
		}
	}
}

func TestClampLatitude(t *testing.T) {
	if got := ClampLatitude(90); got != 89.9 {
		t.Errorf("ClampLatitude(90) = %v, want 89.9", got)
	}
	if got := ClampLatitude(-90); got != -89.9 {
		t.Errorf("ClampLatitude(-90) = %v, want -89.9", got)
	}
	if got := ClampLatitude(45); got != 45 {
		t.Errorf("ClampLatitude(45) = %v, want 45", got)
	}
}
