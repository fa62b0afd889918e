package angle

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, TwoPi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.rad) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if got := RadToDeg(tt.rad); math.Abs(got-tt.deg) > 1e-12 {
			t.Errorf("RadToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestDegFromDMS(t *testing.T) {
	tests := []struct {
		name      string
		deg, min  int
		sec       float64
		want      float64
	}{
		{"obliquity J2000", 23, 26, 21.448, 23.43929111111111},
		{"arcseconds only", 0, 0, 3600, 1},
		{"negative degrees", -5, 30, 0, -5.5},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DegFromDMS(tt.deg, tt.min, tt.sec)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DegFromDMS(%d, %d, %v) = %v, want %v",
					tt.deg, tt.min, tt.sec, got, tt.want)
			}
		})
	}
}

func TestLimitTo360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-30, 330},
		{725, 5},
		{-725, 355},
	}

	for _, tt := range tests {
		if got := LimitTo360(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LimitTo360(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLimitToTwoPi(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		if got := LimitToTwoPi(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LimitToTwoPi(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngularSep(t *testing.T) {
	tests := []struct {
		name                     string
		long1, lat1, long2, lat2 float64
		want                     float64 // radians
		tol                      float64
	}{
		{"coincident", 1.2, 0.3, 1.2, 0.3, 0, 1e-12},
		{"pole to pole", 0, math.Pi / 2, 0, -math.Pi / 2, math.Pi, 1e-12},
		{"quarter turn on equator", 0, 0, math.Pi / 2, 0, math.Pi / 2, 1e-12},
		{
			// Meeus: Arcturus to Spica, 32.7930°.
			name:  "Arcturus to Spica",
			long1: DegToRad(213.9154), lat1: DegToRad(19.1825),
			long2: DegToRad(201.2983), lat2: DegToRad(-11.1614),
			want: DegToRad(32.7930),
			tol:  DegToRad(0.0001),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSep(tt.long1, tt.lat1, tt.long2, tt.lat2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("AngularSep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngularSepSymmetric(t *testing.T) {
	a := AngularSep(0.1, 0.5, 2.5, -0.7)
	b := AngularSep(2.5, -0.7, 0.1, 0.5)
	if math.Abs(a-b) > 1e-15 {
		t.Errorf("separation not symmetric: %v vs %v", a, b)
	}
}
