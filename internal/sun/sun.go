// Package sun provides a low-accuracy apparent solar position.
package sun

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/coord"
)

// Position holds the apparent place of the Sun for one instant.
type Position struct {
	// Eq is the apparent equatorial position, in radians.
	Eq coord.Equatorial
	// EclLong is the apparent ecliptic longitude, in radians.
	EclLong float64
	// Obliquity is the corrected obliquity used for the conversion,
	// in radians.
	Obliquity float64
}

// ApparentPosition computes the apparent equatorial coordinates of the
// Sun for a Julian day. Based on the Astronomical Almanac's simplified
// solar ephemeris; accuracy is around 0.01 degrees in right ascension.
func ApparentPosition(jd float64) Position {
	t := astrotime.JulianCentury(jd)

	// Mean longitude and mean anomaly of the Sun, in degrees.
	l0 := angle.LimitTo360(280.46646 + 36000.76983*t + 0.0003032*t*t)
	m := angle.DegToRad(angle.LimitTo360(357.52911 + 35999.05029*t - 0.0001537*t*t))

	// Equation of center.
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	trueLong := l0 + c

	// Apparent longitude, corrected for aberration and nutation via
	// the lunar ascending node.
	omega := angle.DegToRad(125.04 - 1934.136*t)
	apparentLong := angle.DegToRad(trueLong - 0.00569 - 0.00478*math.Sin(omega))

	// Mean obliquity with the matching nutation correction.
	eps0 := 23.439291 - 0.0130042*t - 0.00000016*t*t + 0.000000504*t*t*t
	eps := angle.DegToRad(eps0 + 0.00256*math.Cos(omega))

	eq := coord.EqFromEcliptic(coord.Ecliptic{Long: apparentLong}, eps)
	eq.Asc = angle.LimitToTwoPi(eq.Asc)

	return Position{
		Eq:        eq,
		EclLong:   angle.LimitToTwoPi(apparentLong),
		Obliquity: eps,
	}
}

// Separation computes the angular separation in radians between the
// Sun and an equatorial target at a Julian day.
func Separation(jd float64, target coord.Equatorial) float64 {
	return ApparentPosition(jd).Eq.AngularSep(target)
}
