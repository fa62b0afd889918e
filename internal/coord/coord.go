// Package coord provides celestial coordinate types and the
// transformations between the equatorial, ecliptic, horizontal and
// galactic systems. All angles are in radians unless noted.
package coord

import "github.com/litescript/ls-almanac/internal/angle"

// Geographic is a point on the surface of the Earth.
type Geographic struct {
	// Long is the geographical longitude, measured positively
	// westward from Greenwich.
	Long float64
	// Lat is the geographical latitude, north positive.
	Lat float64
}

// AngularSep returns the angular separation to another geographic point.
func (p Geographic) AngularSep(other Geographic) float64 {
	return angle.AngularSep(p.Long, p.Lat, other.Long, other.Lat)
}

// Equatorial is a point in the equatorial coordinate system.
type Equatorial struct {
	// Asc is the right ascension.
	Asc float64
	// Dec is the declination.
	Dec float64
}

// AngularSep returns the angular separation to another equatorial point.
func (p Equatorial) AngularSep(other Equatorial) float64 {
	return angle.AngularSep(p.Asc, p.Dec, other.Asc, other.Dec)
}

// Ecliptic is a point in the ecliptic coordinate system.
type Ecliptic struct {
	// Long is the ecliptic longitude.
	Long float64
	// Lat is the ecliptic latitude.
	Lat float64
}

// AngularSep returns the angular separation to another ecliptic point.
func (p Ecliptic) AngularSep(other Ecliptic) float64 {
	return angle.AngularSep(p.Long, p.Lat, other.Long, other.Lat)
}

// Horizontal is a point in the local horizontal coordinate system.
type Horizontal struct {
	// Az is the azimuth, measured westward from the south.
	Az float64
	// Alt is the altitude above the horizon.
	Alt float64
}

// Galactic is a point in the galactic coordinate system, referred to
// the standard equinox of B1950.0.
type Galactic struct {
	// Long is the galactic longitude.
	Long float64
	// Lat is the galactic latitude.
	Lat float64
}
