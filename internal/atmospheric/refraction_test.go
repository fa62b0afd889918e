package atmospheric

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/angle"
)

func TestRefractionFromApparentAlt(t *testing.T) {
	// At 45° apparent altitude the refraction is very nearly the
	// leading coefficient, 58.294" tan z with tan z = 1.
	got := angle.RadToDeg(RefractionFromApparentAlt(angle.DegToRad(45))) * 3600
	if math.Abs(got-58.294) > 1e-3 {
		t.Errorf("refraction at 45° = %v\", want 58.294\"", got)
	}
}

func TestRefractionZenith(t *testing.T) {
	got := RefractionFromApparentAlt(math.Pi / 2)
	if math.Abs(got) > 1e-12 {
		t.Errorf("refraction at the zenith = %v, want 0", got)
	}
}

func TestRefractionMonotonic(t *testing.T) {
	// Refraction increases toward the horizon over the formula's
	// validity range (altitudes above 15°).
	prev := RefractionFromApparentAlt(angle.DegToRad(90))
	for alt := 85.0; alt >= 15; alt -= 5 {
		r := RefractionFromApparentAlt(angle.DegToRad(alt))
		if r <= prev {
			t.Errorf("refraction not increasing at alt=%v°: %v <= %v", alt, r, prev)
		}
		prev = r
	}
}
