// Package ecliptic computes the obliquity of the ecliptic.
package ecliptic

import (
	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
)

// laskarCoeffs are the coefficients of J. Laskar's series for the mean
// obliquity, in decimal degrees, for powers of u = T/100 where T is
// Julian centuries from J2000.0. Term 0 is 23°26'21.448".
var laskarCoeffs = [...]float64{
	angle.DegFromDMS(23, 26, 21.448),
	-angle.DegFromDMS(0, 0, 4680.93),
	-angle.DegFromDMS(0, 0, 1.55),
	angle.DegFromDMS(0, 0, 1999.25),
	-angle.DegFromDMS(0, 0, 51.38),
	-angle.DegFromDMS(0, 0, 249.67),
	-angle.DegFromDMS(0, 0, 39.05),
	angle.DegFromDMS(0, 0, 7.12),
	angle.DegFromDMS(0, 0, 27.87),
	angle.DegFromDMS(0, 0, 5.79),
	angle.DegFromDMS(0, 0, 2.45),
}

// MeanObliquityLaskar computes the mean obliquity of the ecliptic
// using J. Laskar's formula, in radians. Accurate to 0.01 arcseconds
// over 1000 years either side of 2000 AD, and to a few arcseconds over
// 10000 years.
func MeanObliquityLaskar(jd float64) float64 {
	u := astrotime.JulianCentury(jd) / 100

	// Horner evaluation, highest power first.
	deg := 0.0
	for i := len(laskarCoeffs) - 1; i >= 0; i-- {
		deg = deg*u + laskarCoeffs[i]
	}

	return angle.DegToRad(deg)
}

// MeanObliquityIAU computes the mean obliquity of the ecliptic using
// the IAU 1980 polynomial, in radians. The error reaches 1 arcsecond
// over 2000 years from 2000 AD and about 10 arcseconds over 4000 years.
func MeanObliquityIAU(jd float64) float64 {
	t := astrotime.JulianCentury(jd)

	deg := angle.DegFromDMS(23, 26, 21.448) +
		t*(-angle.DegFromDMS(0, 0, 46.8150)+
			t*(-angle.DegFromDMS(0, 0, 0.00059)+
				t*angle.DegFromDMS(0, 0, 0.001813)))

	return angle.DegToRad(deg)
}

// TrueObliquity combines a mean obliquity with the nutation in
// obliquity, both in radians.
func TrueObliquity(meanObliquity, nutInObliquity float64) float64 {
	return meanObliquity + nutInObliquity
}
