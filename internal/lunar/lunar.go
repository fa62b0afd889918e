// Package lunar provides the Moon's parallax and semidiameter.
package lunar

import "math"

// HorizontalParallax computes the equatorial horizontal parallax of
// the Moon in radians for an Earth-Moon distance in kilometers.
func HorizontalParallax(earthMoonDistKm float64) float64 {
	return math.Asin(6378.14 / earthMoonDistKm)
}

// Semidiameter computes the geocentric equatorial semidiameter of the
// Moon in radians for an Earth-Moon distance in kilometers.
func Semidiameter(earthMoonDistKm float64) float64 {
	return 0.272481 * math.Sin(HorizontalParallax(earthMoonDistKm))
}
