// Package almanac assembles the time-scale and coordinate engines into
// a one-shot observing report for a date and site.
package almanac

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/atmospheric"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/earth"
	"github.com/litescript/ls-almanac/internal/ecliptic"
	"github.com/litescript/ls-almanac/internal/nutation"
	"github.com/litescript/ls-almanac/internal/sun"
)

// Site is an observing site.
type Site struct {
	// LatDeg is the geographic latitude in degrees, north positive.
	LatDeg float64
	// LonDeg is the geographic longitude in degrees, east positive.
	LonDeg float64
	// HeightM is the height above sea level in meters.
	HeightM float64
	Name    string
}

// Geographic returns the site as a coordinate point with the
// west-positive longitude convention used by the hour-angle formulas.
func (s Site) Geographic() coord.Geographic {
	return coord.Geographic{
		Long: angle.DegToRad(-s.LonDeg),
		Lat:  angle.DegToRad(s.LatDeg),
	}
}

// greenwichRef is the Royal Observatory at Greenwich, the reference
// point for the report's geodesic distance.
var greenwichRef = coord.Geographic{Lat: angle.DegToRad(51.4769)}

// Report holds every quantity the almanac derives for one instant.
type Report struct {
	Date astrotime.Date
	Site Site

	JulianDay    float64
	EphemerisDay float64
	Weekday      astrotime.Weekday
	DecimalYear  float64
	DeltaT       float64 // seconds

	MeanSidereal     float64 // radians, Greenwich
	ApparentSidereal float64 // radians, Greenwich
	LocalSidereal    float64 // radians

	MeanObliquity float64 // radians
	TrueObliquity float64 // radians
	NutInLong     float64 // radians
	NutInObliq    float64 // radians

	Sun        sun.Position
	SunGal     coord.Galactic // galactic place of the Sun (B1950.0 frame convention)
	HourAngle  float64        // of the Sun, radians
	SunHz      coord.Horizontal
	Refraction float64 // radians; zero below 15 degrees altitude
	EqOfTime   float64 // radians

	// Site geodesy.
	GeodesicToGreenwich float64 // km, high accuracy
	ParallelRadius      float64 // km
	LinearVelocity      float64 // km/s
	CurvatureRadius     float64 // km
	RhoSinPhi           float64
	RhoCosPhi           float64
}

// Compute derives a full report for a date and site. Pure function of
// its inputs; safe for concurrent use.
func Compute(date astrotime.Date, site Site) Report {
	jd := astrotime.JulianDay(date)
	deltaT := astrotime.DeltaT(date.Year, date.Month.Ord())
	jde := astrotime.JulianEphemerisDay(jd, deltaT)

	nutLong, nutObliq := nutation.Nutation(jd)
	meanObliq := ecliptic.MeanObliquityLaskar(jd)
	trueObliq := ecliptic.TrueObliquity(meanObliq, nutObliq)

	meanSid := astrotime.MeanSidereal(jd)
	appSid := astrotime.ApparentSidereal(meanSid, nutLong, trueObliq)

	geo := site.Geographic()
	localSid := angle.LimitToTwoPi(appSid - geo.Long)

	sunPos := sun.ApparentPosition(jde)
	ha := coord.HourAngleFromLong(appSid, geo.Long, sunPos.Eq.Asc)
	hz := coord.HorizontalFromEq(ha, sunPos.Eq.Dec, geo.Lat)

	refrac := 0.0
	if hz.Alt > angle.DegToRad(15) {
		refrac = atmospheric.RefractionFromApparentAlt(hz.Alt)
	}

	rhoSin, rhoCos := earth.RhoSinCosPhi(geo.Lat, site.HeightM)

	return Report{
		Date: date,
		Site: site,

		JulianDay:    jd,
		EphemerisDay: jde,
		Weekday:      astrotime.WeekdayFromDate(date),
		DecimalYear:  astrotime.DecimalYear(date),
		DeltaT:       deltaT,

		MeanSidereal:     meanSid,
		ApparentSidereal: appSid,
		LocalSidereal:    localSid,

		MeanObliquity: meanObliq,
		TrueObliquity: trueObliq,
		NutInLong:     nutLong,
		NutInObliq:    nutObliq,

		Sun:        sunPos,
		SunGal:     coord.GalacticFromEq(sunPos.Eq),
		HourAngle:  ha,
		SunHz:      hz,
		Refraction: refrac,
		EqOfTime:   earth.EquationOfTime(jde, sunPos.Eq.Asc, nutLong, trueObliq),

		GeodesicToGreenwich: earth.GeodesicDistance(geo, greenwichRef),
		ParallelRadius:      earth.ParallelRadius(geo.Lat),
		LinearVelocity:      earth.LinearVelocityAtLat(geo.Lat),
		CurvatureRadius:     earth.CurvatureRadius(geo.Lat),
		RhoSinPhi:           rhoSin,
		RhoCosPhi:           rhoCos,
	}
}

// SunAltDeg returns the Sun's altitude in degrees.
func (r Report) SunAltDeg() float64 { return angle.RadToDeg(r.SunHz.Alt) }

// SunAzDeg returns the Sun's azimuth in degrees, measured from north
// through east, normalized to [0, 360). The engine measures azimuth
// westward from south, so this shifts by 180 degrees for display.
func (r Report) SunAzDeg() float64 {
	return angle.LimitTo360(angle.RadToDeg(r.SunHz.Az) + 180)
}

// EqOfTimeMinutes returns the equation of time in minutes of time.
// One full turn is one day.
func (r Report) EqOfTimeMinutes() float64 {
	m := r.EqOfTime / angle.TwoPi * 24 * 60
	// Fold to the ±20 minute band: the series leaves whole turns in.
	m = math.Mod(m, 24*60)
	if m > 12*60 {
		m -= 24 * 60
	} else if m < -12*60 {
		m += 24 * 60
	}
	return m
}
