// Package nutation computes the nutation of the Earth's axis.
package nutation

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// Nutation computes the nutation in longitude (Δψ) and the nutation in
// obliquity (Δε) for a Julian (ephemeris) day, both in radians.
//
// Uses the low-accuracy series: the dominant lunar-node term plus the
// leading solar and lunar longitude terms, good to about 0.5 arcseconds
// in Δψ and 0.1 arcseconds in Δε.
func Nutation(jd float64) (nutInLong, nutInObliquity float64) {
	t := astrotime.JulianCentury(jd)

	// Longitude of the ascending node of the Moon's mean orbit.
	omega := angle.DegToRad(angle.LimitTo360(125.04452 - 1934.136261*t))

	// Mean longitudes of the Sun and the Moon.
	ls := angle.DegToRad(angle.LimitTo360(280.4665 + 36000.7698*t))
	lm := angle.DegToRad(angle.LimitTo360(218.3165 + 481267.8813*t))

	// Coefficients in arcseconds.
	dPsi := -17.20*math.Sin(omega) -
		1.32*math.Sin(2*ls) -
		0.23*math.Sin(2*lm) +
		0.21*math.Sin(2*omega)

	dEps := 9.20*math.Cos(omega) +
		0.57*math.Cos(2*ls) +
		0.10*math.Cos(2*lm) -
		0.09*math.Cos(2*omega)

	return angle.DegToRad(dPsi / 3600), angle.DegToRad(dEps / 3600)
}
