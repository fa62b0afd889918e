package astrotime

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/angle"
)

// J2000 is the Julian day of the epoch J2000.0 (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// JulianCentury returns the number of Julian centuries between jd and
// the epoch J2000.0.
func JulianCentury(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// JulianMillennium returns the number of Julian millennia between jd
// and the epoch J2000.0.
func JulianMillennium(jd float64) float64 {
	return (jd - J2000) / 365250.0
}

// JulianEphemerisDay converts a Julian day in UT to the ephemeris
// (dynamical) time scale using ΔT in seconds.
func JulianEphemerisDay(jd, deltaT float64) float64 {
	return deltaT/86400.0 + jd
}

// DeltaT approximates ΔT = TT − UT in seconds for a year and month
// (month range 1-12), one independent empirical polynomial per
// historical era. The nested coefficient form of each branch is kept
// exactly as fitted: adjacent branches do not join continuously and
// the jumps at era boundaries are expected, not smoothed.
func DeltaT(year, month int) float64 {
	y := float64(year) + (float64(month)-0.5)/12.0

	switch {
	case y < -500:
		u := (y - 1820) / 100
		return 32*u*u - 20
	case y < 500:
		u := y / 100
		return 10583.6 - u*(1014.41+u*(33.78311+u*(5.952053-u*(0.1798452-u*(0.022174192-u*0.0090316521)))))
	case y < 1600:
		u := (y - 1000) / 100
		return 1574.2 - u*(556.01-u*(71.23472+u*(0.319781-u*(0.8503463+u*(0.005050998-u*0.0083572073)))))
	case y < 1700:
		u := y - 1600
		return 120 - u*(0.9808+u*(0.01532-u/7129))
	case y < 1800:
		u := y - 1700
		return 8.83 + u*(0.1603-u*(0.0059285-u*(0.00013336+u/1174000)))
	case y < 1860:
		u := y - 1800
		return 13.72 - u*(0.332447-u*(0.0068612+u*(0.0041116-u*(0.00037436-u*(0.0000121272+u*(0.0000001699-u*0.000000000875))))))
	case y < 1900:
		u := y - 1860
		return 7.62 + u*(0.5737-u*(0.251754-u*(0.01680668-u*(0.0004473624+u/233174))))
	case y < 1920:
		u := y - 1900
		return -2.79 + u*(1.494119-u*(0.0598939-u*(0.0061966+u*0.000197)))
	case y < 1941:
		u := y - 1920
		return 21.20 + u*(0.84493-u*(0.076100-u*0.0020936))
	case y < 1961:
		u := y - 1950
		return 29.07 + u*(0.407-u*((1.0/233.0)-u/2547))
	case y < 1986:
		u := y - 1975
		return 45.45 + u*(1.067-u*((1.0/260.0)+u/718))
	case y < 2005:
		u := y - 2000
		return 63.86 + u*(0.3345-u*(0.060374-u*(0.0017275+u*(0.000651814+u*0.00002373599))))
	case y < 2050:
		u := y - 2000
		return 62.92 + u*(0.32217+u*0.005589)
	case y <= 2150:
		u := (y - 1820) / 100
		return 32*u*u - 20 - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return 32*u*u - 20
	}
}

// MeanSidereal computes the mean sidereal time at Greenwich for a
// Julian day, in radians, normalized to [0, 2π).
func MeanSidereal(jd float64) float64 {
	jc := JulianCentury(jd)

	deg := angle.LimitTo360(280.46061837 +
		360.98564736629*(jd-J2000) +
		jc*jc*(0.000387933-jc/38710000))

	return angle.DegToRad(deg)
}

// ApparentSidereal computes the apparent sidereal time at Greenwich
// from the mean sidereal time, the nutation in longitude and the true
// obliquity of the ecliptic, all in radians.
func ApparentSidereal(meanSidereal, nutInLong, trueObliquity float64) float64 {
	return meanSidereal + nutInLong*math.Cos(trueObliquity)
}

// MeanSiderealAt computes the mean sidereal time at Greenwich for a
// wall-clock instant, in radians.
func MeanSiderealAt(t time.Time) float64 {
	return MeanSidereal(JulianDayFromTime(t))
}

// JulianDayFromTime computes the Julian day of a time.Time, converted
// to UTC and treated as Gregorian.
func JulianDayFromTime(t time.Time) float64 {
	t = t.UTC()

	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	dom := DayOfMonth{
		Day: t.Day(),
		Hr:  t.Hour(),
		Min: t.Minute(),
		Sec: sec,
	}

	return JulianDay(Date{
		Year:       t.Year(),
		Month:      Month(t.Month()),
		DecimalDay: dom.DecimalDay(),
		CalType:    Gregorian,
	})
}
