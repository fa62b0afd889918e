// Package earth provides geodesy on the WGS84 ellipsoid and a few
// Earth-rotation quantities.
package earth

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/coord"
)

// World Geodetic System 1984 defining constants.
const (
	// Flattening is the flattening factor of the Earth.
	Flattening = 1 / 298.257223563
	// EquatorialRadius is the equatorial radius of the Earth in kilometers.
	EquatorialRadius = 6378.137
	// RotationalAngularVelocity is the rotational angular velocity of
	// the Earth in radians per second.
	RotationalAngularVelocity = 0.00007292114992
)

// PolarRadius returns the polar radius of the Earth in kilometers.
func PolarRadius() float64 {
	return EquatorialRadius * (1 - Flattening)
}

// MeridianEccentricity returns the eccentricity of the Earth's meridian.
func MeridianEccentricity() float64 {
	return math.Sqrt(Flattening * (2 - Flattening))
}

// ApproxGeodesicDistance computes a low-accuracy geodesic distance
// between two points on the Earth's surface in kilometers, treating
// the Earth as a sphere of radius 6371 km.
func ApproxGeodesicDistance(p1, p2 coord.Geographic) float64 {
	return 6371.0 * p1.AngularSep(p2)
}

// GeodesicDistance computes a high-accuracy geodesic distance between
// two points on the Earth's surface in kilometers, accounting for the
// flattening of the ellipsoid.
func GeodesicDistance(p1, p2 coord.Geographic) float64 {
	f := (p1.Lat + p2.Lat) / 2
	g := (p1.Lat - p2.Lat) / 2
	lam := (p1.Long - p2.Long) / 2

	s := pow2(math.Sin(g)*math.Cos(lam)) + pow2(math.Cos(f)*math.Sin(lam))
	if s == 0 {
		// Coincident points; the r = √(sc)/ω term below is 0/0.
		return 0
	}
	c := pow2(math.Cos(g)*math.Cos(lam)) + pow2(math.Sin(f)*math.Sin(lam))
	om := math.Atan(math.Sqrt(s / c))

	r := math.Sqrt(s*c) / om
	d := 2 * om * EquatorialRadius

	h1 := (3*r - 1) / (2 * c)
	h2 := (3*r + 1) / (2 * s)

	return d * (1 + Flattening*h1*pow2(math.Sin(f)*math.Cos(g)) -
		Flattening*h2*pow2(math.Cos(f)*math.Sin(g)))
}

// RhoSinCosPhi computes ρ sin φ′ and ρ cos φ′, where ρ is the distance
// from the Earth's center to a point on the ellipsoid as a fraction of
// the equatorial radius and φ′ is the geocentric latitude, for an
// observer at a geographic latitude (radians) and height above sea
// level (meters).
func RhoSinCosPhi(geographLat, height float64) (rhoSinPhi, rhoCosPhi float64) {
	u := math.Atan(math.Tan(geographLat) * PolarRadius() / EquatorialRadius)
	x := height / (EquatorialRadius * 1000)

	rhoSinPhi = math.Sin(u)*PolarRadius()/EquatorialRadius + math.Sin(geographLat)*x
	rhoCosPhi = math.Cos(u) + math.Cos(geographLat)*x

	return rhoSinPhi, rhoCosPhi
}

// DistanceFromCenter computes the distance from the Earth's center to
// a point on the ellipsoid at a geographic latitude, as a fraction of
// the equatorial radius.
func DistanceFromCenter(geographLat float64) float64 {
	return 0.9983271 +
		0.0016764*math.Cos(2*geographLat) -
		0.0000035*math.Cos(4*geographLat)
}

// ParallelRadius computes the radius of the parallel of a geographic
// latitude in kilometers.
func ParallelRadius(geographLat float64) float64 {
	e := MeridianEccentricity()

	return EquatorialRadius * math.Cos(geographLat) /
		math.Sqrt(1-pow2(e*math.Sin(geographLat)))
}

// LinearVelocityAtLat computes the linear velocity due to the Earth's
// rotation at a geographic latitude, in kilometers per second.
func LinearVelocityAtLat(geographLat float64) float64 {
	return RotationalAngularVelocity * ParallelRadius(geographLat)
}

// CurvatureRadius computes the radius of curvature of the Earth's
// meridian at a geographic latitude in kilometers.
func CurvatureRadius(geographLat float64) float64 {
	e := MeridianEccentricity()

	return EquatorialRadius * (1 - e*e) /
		math.Pow(1-pow2(e*math.Sin(geographLat)), 1.5)
}

// GeographGeocentLatDiff computes the geographic latitude minus the
// geocentric latitude in radians.
func GeographGeocentLatDiff(geographLat float64) float64 {
	return angle.DegToRad(angle.DegFromDMS(0, 0, 692.73))*math.Sin(2*geographLat) -
		angle.DegToRad(angle.DegFromDMS(0, 0, 1.16))*math.Sin(4*geographLat)
}

// EquationOfTime computes the equation of time in radians for a Julian
// (ephemeris) day given the Sun's right ascension, the nutation in
// longitude and the true obliquity of the ecliptic, all in radians.
func EquationOfTime(jd, sunAsc, nutLong, trueObliquity float64) float64 {
	t := astrotime.JulianMillennium(jd)
	l := angle.LimitTo360(280.4664567 +
		t*(360007.6982779+
			t*(0.030328+
				t*(1.0/49931.0-
					t*(1.0/15300.0+t/2000000.0)))))

	return angle.DegToRad(l - 0.0057183 - angle.RadToDeg(sunAsc) +
		angle.RadToDeg(nutLong)*math.Cos(trueObliquity))
}

// DiurnalPathHorizonAngle computes the angle between the diurnal path
// of a celestial body and the horizon, in radians, for a declination
// and observer latitude in radians.
func DiurnalPathHorizonAngle(dec, observerLat float64) float64 {
	b := math.Tan(dec) * math.Tan(observerLat)
	c := math.Sqrt(1 - b*b)

	return math.Atan2(c*math.Cos(dec), math.Tan(observerLat))
}

func pow2(x float64) float64 { return x * x }
