package coord

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/angle"
)

func TestEquatorialAngularSep(t *testing.T) {
	// Arcturus to Spica: 32.7930°.
	arcturus := Equatorial{Asc: angle.DegToRad(213.9154), Dec: angle.DegToRad(19.1825)}
	spica := Equatorial{Asc: angle.DegToRad(201.2983), Dec: angle.DegToRad(-11.1614)}

	got := angle.RadToDeg(arcturus.AngularSep(spica))
	if math.Abs(got-32.7930) > 1e-4 {
		t.Errorf("AngularSep(Arcturus, Spica) = %v°, want 32.7930°", got)
	}
}

func TestWrappersAgree(t *testing.T) {
	// The three point-pair wrappers delegate to one formula.
	long1, lat1 := 0.8, -0.3
	long2, lat2 := 2.1, 0.9

	eq := Equatorial{long1, lat1}.AngularSep(Equatorial{long2, lat2})
	ecl := Ecliptic{long1, lat1}.AngularSep(Ecliptic{long2, lat2})
	geo := Geographic{long1, lat1}.AngularSep(Geographic{long2, lat2})

	if eq != ecl || ecl != geo {
		t.Errorf("wrappers disagree: eq=%v ecl=%v geo=%v", eq, ecl, geo)
	}
}
