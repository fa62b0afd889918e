package coord

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
)

// Galactic pole and node constants (equinox B1950.0), in degrees.
const (
	galPoleAscDeg  = 192.25
	galPoleDecDeg  = 27.4
	galNodeLongDeg = 303
	galNodeAscDeg  = 12.25
)

// HourAngleFromLong computes the hour angle from the sidereal time at
// Greenwich, the observer's geographical longitude (west positive) and
// the right ascension.
func HourAngleFromLong(greenSidereal, observerLong, asc float64) float64 {
	return greenSidereal - observerLong - asc
}

// HourAngleFromSidereal computes the hour angle from the local
// sidereal time and the right ascension.
func HourAngleFromSidereal(localSidereal, asc float64) float64 {
	return localSidereal - asc
}

// EclipticLongFromEq computes the ecliptic longitude from equatorial
// coordinates. Pass the true obliquity when asc and dec are corrected
// for nutation, the mean obliquity otherwise.
func EclipticLongFromEq(asc, dec, oblqEclip float64) float64 {
	return math.Atan2(
		math.Sin(asc)*math.Cos(oblqEclip)+math.Tan(dec)*math.Sin(oblqEclip),
		math.Cos(asc),
	)
}

// EclipticLatFromEq computes the ecliptic latitude from equatorial
// coordinates. The obliquity argument follows EclipticLongFromEq.
func EclipticLatFromEq(asc, dec, oblqEclip float64) float64 {
	return math.Asin(
		math.Sin(dec)*math.Cos(oblqEclip) - math.Cos(dec)*math.Sin(oblqEclip)*math.Sin(asc),
	)
}

// EclipticFromEq computes both ecliptic coordinates from one
// equatorial pair, guaranteeing a single input snapshot.
func EclipticFromEq(eq Equatorial, oblqEclip float64) Ecliptic {
	return Ecliptic{
		Long: EclipticLongFromEq(eq.Asc, eq.Dec, oblqEclip),
		Lat:  EclipticLatFromEq(eq.Asc, eq.Dec, oblqEclip),
	}
}

// AscFromEcliptic computes the right ascension from ecliptic
// coordinates. The obliquity argument follows EclipticLongFromEq.
func AscFromEcliptic(eclLong, eclLat, oblqEclip float64) float64 {
	return math.Atan2(
		math.Sin(eclLong)*math.Cos(oblqEclip)-math.Tan(eclLat)*math.Sin(oblqEclip),
		math.Cos(eclLong),
	)
}

// DecFromEcliptic computes the declination from ecliptic coordinates.
// The obliquity argument follows EclipticLongFromEq.
func DecFromEcliptic(eclLong, eclLat, oblqEclip float64) float64 {
	return math.Asin(
		math.Sin(eclLat)*math.Cos(oblqEclip) + math.Cos(eclLat)*math.Sin(oblqEclip)*math.Sin(eclLong),
	)
}

// EqFromEcliptic computes both equatorial coordinates from one
// ecliptic pair.
func EqFromEcliptic(ecl Ecliptic, oblqEclip float64) Equatorial {
	return Equatorial{
		Asc: AscFromEcliptic(ecl.Long, ecl.Lat, oblqEclip),
		Dec: DecFromEcliptic(ecl.Long, ecl.Lat, oblqEclip),
	}
}

// AzimuthFromEq computes the azimuth from the hour angle, declination
// and observer's latitude. Azimuth is measured westward from the south.
func AzimuthFromEq(hourAngle, dec, observerLat float64) float64 {
	return math.Atan2(
		math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(observerLat)-math.Tan(dec)*math.Cos(observerLat),
	)
}

// AltitudeFromEq computes the altitude from the hour angle,
// declination and observer's latitude.
func AltitudeFromEq(hourAngle, dec, observerLat float64) float64 {
	return math.Asin(
		math.Sin(observerLat)*math.Sin(dec) +
			math.Cos(observerLat)*math.Cos(dec)*math.Cos(hourAngle),
	)
}

// HorizontalFromEq computes both horizontal coordinates from an hour
// angle, declination and observer latitude.
func HorizontalFromEq(hourAngle, dec, observerLat float64) Horizontal {
	return Horizontal{
		Az:  AzimuthFromEq(hourAngle, dec, observerLat),
		Alt: AltitudeFromEq(hourAngle, dec, observerLat),
	}
}

// HourAngleFromHorizontal computes the hour angle from horizontal
// coordinates and the observer's latitude.
func HourAngleFromHorizontal(az, alt, observerLat float64) float64 {
	return math.Atan2(
		math.Sin(az),
		math.Cos(az)*math.Sin(observerLat)+math.Tan(alt)*math.Cos(observerLat),
	)
}

// DecFormula selects the declination identity used when inverting
// horizontal coordinates.
type DecFormula int

const (
	// DecSpherical is the textbook spherical-trigonometry inverse:
	// sin δ = sin φ sin h − cos φ cos h cos A.
	DecSpherical DecFormula = iota
	// DecLiteral reproduces the reference implementation verbatim,
	// which squares the cos A term and drops the cos h factor. Almost
	// certainly a defect in the reference; kept so results can be
	// compared against it. Do not use for new computations.
	DecLiteral
)

// DecFromHorizontal computes the declination from horizontal
// coordinates and the observer's latitude, using the selected formula.
func DecFromHorizontal(az, alt, observerLat float64, formula DecFormula) float64 {
	if formula == DecLiteral {
		return math.Asin(
			math.Sin(observerLat)*math.Sin(alt) -
				math.Cos(observerLat)*math.Cos(az)*math.Cos(az),
		)
	}
	return math.Asin(
		math.Sin(observerLat)*math.Sin(alt) -
			math.Cos(observerLat)*math.Cos(alt)*math.Cos(az),
	)
}

// EqFromHorizontal computes the hour angle and declination from one
// horizontal pair.
func EqFromHorizontal(hz Horizontal, observerLat float64, formula DecFormula) (hourAngle, dec float64) {
	return HourAngleFromHorizontal(hz.Az, hz.Alt, observerLat),
		DecFromHorizontal(hz.Az, hz.Alt, observerLat, formula)
}

// GalacticLongFromEq computes the galactic longitude from equatorial
// coordinates referred to the standard equinox of B1950.0.
func GalacticLongFromEq(asc, dec float64) float64 {
	poleAsc := angle.DegToRad(galPoleAscDeg)
	poleDec := angle.DegToRad(galPoleDecDeg)

	return angle.DegToRad(galNodeLongDeg) - math.Atan2(
		math.Sin(poleAsc-asc),
		math.Sin(poleDec)*math.Cos(poleAsc-asc)-math.Cos(poleDec)*math.Tan(dec),
	)
}

// GalacticLatFromEq computes the galactic latitude from equatorial
// coordinates referred to the standard equinox of B1950.0.
func GalacticLatFromEq(asc, dec float64) float64 {
	poleAsc := angle.DegToRad(galPoleAscDeg)
	poleDec := angle.DegToRad(galPoleDecDeg)

	return math.Asin(
		math.Sin(dec)*math.Sin(poleDec) +
			math.Cos(dec)*math.Cos(poleDec)*math.Cos(poleAsc-asc),
	)
}

// GalacticFromEq computes both galactic coordinates from one
// equatorial pair (equinox B1950.0).
func GalacticFromEq(eq Equatorial) Galactic {
	return Galactic{
		Long: GalacticLongFromEq(eq.Asc, eq.Dec),
		Lat:  GalacticLatFromEq(eq.Asc, eq.Dec),
	}
}

// AscFromGalactic computes the right ascension (equinox B1950.0) from
// galactic coordinates.
func AscFromGalactic(galLong, galLat float64) float64 {
	poleDec := angle.DegToRad(galPoleDecDeg)
	node := galLong - angle.DegToRad(galNodeLongDeg-180)

	return angle.DegToRad(galNodeAscDeg) + math.Atan2(
		math.Sin(node),
		math.Cos(node)*math.Sin(poleDec)-math.Tan(galLat)*math.Cos(poleDec),
	)
}

// DecFromGalactic computes the declination (equinox B1950.0) from
// galactic coordinates.
func DecFromGalactic(galLong, galLat float64) float64 {
	poleDec := angle.DegToRad(galPoleDecDeg)
	node := galLong - angle.DegToRad(galNodeLongDeg-180)

	return math.Asin(
		math.Sin(galLat)*math.Sin(poleDec) +
			math.Cos(galLat)*math.Cos(poleDec)*math.Cos(node),
	)
}

// EqFromGalactic computes both equatorial coordinates (equinox
// B1950.0) from one galactic pair.
func EqFromGalactic(gal Galactic) Equatorial {
	return Equatorial{
		Asc: AscFromGalactic(gal.Long, gal.Lat),
		Dec: DecFromGalactic(gal.Long, gal.Lat),
	}
}
