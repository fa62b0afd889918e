package nutation

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/angle"
)

func TestNutation(t *testing.T) {
	// Meeus: 1987 April 10, Δψ = -3.788", Δε = +9.443". The
	// low-accuracy series is good to about half an arcsecond.
	nutLong, nutObliq := Nutation(2446895.5)

	gotPsi := angle.RadToDeg(nutLong) * 3600
	gotEps := angle.RadToDeg(nutObliq) * 3600

	if math.Abs(gotPsi-(-3.788)) > 0.5 {
		t.Errorf("Δψ = %v\", want -3.788\" (±0.5\")", gotPsi)
	}
	if math.Abs(gotEps-9.443) > 0.5 {
		t.Errorf("Δε = %v\", want +9.443\" (±0.5\")", gotEps)
	}
}

func TestNutationBounded(t *testing.T) {
	// Both components stay within their physical amplitude
	// (about 17.3" and 9.6") across several decades.
	for jd := 2440000.5; jd < 2470000.5; jd += 365.25 {
		nutLong, nutObliq := Nutation(jd)
		if math.Abs(angle.RadToDeg(nutLong)*3600) > 19.5 {
			t.Errorf("Δψ out of range at jd=%v: %v\"", jd, angle.RadToDeg(nutLong)*3600)
		}
		if math.Abs(angle.RadToDeg(nutObliq)*3600) > 10.5 {
			t.Errorf("Δε out of range at jd=%v: %v\"", jd, angle.RadToDeg(nutObliq)*3600)
		}
	}
}
