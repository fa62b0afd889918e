// Package angle provides angle conversions, normalization and
// angular separation on the celestial sphere.
package angle

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DegFromDMS converts an angle in degrees, arcminutes and arcseconds
// to decimal degrees. The sign of the degree component carries over to
// the whole angle, so DegFromDMS(-5, 30, 0) is -5.5.
func DegFromDMS(deg, min int, sec float64) float64 {
	d := float64(deg)
	m := float64(min) / 60
	s := sec / 3600

	if d < 0 {
		return d - m - s
	}
	return d + m + s
}

// LimitTo360 normalizes an angle in degrees to [0, 360).
func LimitTo360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// LimitToTwoPi normalizes an angle in radians to [0, 2π).
func LimitToTwoPi(rad float64) float64 {
	rad = math.Mod(rad, TwoPi)
	if rad < 0 {
		rad += TwoPi
	}
	return rad
}

// AngularSep computes the angular separation between two points on a
// sphere given their longitudes and latitudes in radians. Works equally
// for right ascension/declination and geographic coordinates.
// Returns the separation in radians.
func AngularSep(long1, lat1, long2, lat2 float64) float64 {
	dLong := long2 - long1
	dLat := lat2 - lat1

	// Haversine form: stable for small separations.
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	if a > 1 {
		a = 1
	}

	return 2 * math.Asin(math.Sqrt(a))
}
