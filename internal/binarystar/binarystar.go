// Package binarystar provides the apparent orbit geometry of visual
// binary stars. Angles are in radians, times in decimal years.
package binarystar

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
)

// MeanAnnualMotion computes the mean annual motion of the companion
// star for a period of revolution in mean solar years.
func MeanAnnualMotion(period float64) float64 {
	return angle.TwoPi / period
}

// MeanAnomaly computes the mean anomaly of the companion star at time
// t (decimal year) for a mean annual motion n and a time of periastron
// passage tp (decimal year).
func MeanAnomaly(n, t, tp float64) float64 {
	return n * (t - tp)
}

// RadiusVector computes the radius vector for an apparent semimajor
// axis a, eccentricity e and eccentric anomaly.
func RadiusVector(a, e, eccAnom float64) float64 {
	return a * (1 - e*math.Cos(eccAnom))
}

// TrueAnomaly computes the true anomaly from the eccentricity of the
// true orbit and the eccentric anomaly.
func TrueAnomaly(e, eccAnom float64) float64 {
	return 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(eccAnom/2))
}

// ApparentPositionAngle computes the apparent position angle of the
// companion for a position angle of the ascending node, true anomaly,
// longitude of periastron w, and inclination i of the true orbit to
// the plane at right angles to the line of sight.
func ApparentPositionAngle(ascNode, trueAnom, w, i float64) float64 {
	x := math.Atan2(math.Sin(trueAnom+w)*math.Cos(i), math.Cos(trueAnom+w))

	return angle.LimitToTwoPi(x + ascNode)
}

// AngularSeparation computes the angular separation of the companion
// from the primary for a radius vector, true anomaly, longitude of
// periastron w and inclination i.
func AngularSeparation(radVec, trueAnom, w, i float64) float64 {
	s := math.Sin(trueAnom+w) * math.Cos(i)
	c := math.Cos(trueAnom + w)

	return radVec * math.Sqrt(s*s+c*c)
}

// ApparentOrbitEccentricity computes the eccentricity of the apparent
// orbit from the eccentricity e of the true orbit, the longitude of
// periastron w and the inclination i.
func ApparentOrbitEccentricity(e, w, i float64) float64 {
	iCos := math.Cos(i)
	ewCos := e * math.Cos(w)
	ewCos2 := ewCos * ewCos

	a := (1 - ewCos2) * iCos * iCos
	b := e * math.Sin(w) * ewCos * iCos
	c := 1 - ewCos2
	d := math.Sqrt((a-c)*(a-c) + 4*b*b)

	return math.Sqrt((2 * d) / (a + c + d))
}
