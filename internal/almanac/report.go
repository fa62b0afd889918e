package almanac

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-almanac/internal/angle"
)

// WriteReport writes a plain-text almanac report to the given writer.
func WriteReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "Almanac for %s %d %s %d (%s)\n",
		r.Weekday, int(r.Date.DecimalDay), r.Date.Month, r.Date.Year, r.Date.CalType)
	if r.Site.Name != "" {
		fmt.Fprintf(w, "Site: %s (%.4f°, %.4f°, %.0f m)\n",
			r.Site.Name, r.Site.LatDeg, r.Site.LonDeg, r.Site.HeightM)
	} else {
		fmt.Fprintf(w, "Site: %.4f°, %.4f°, %.0f m\n",
			r.Site.LatDeg, r.Site.LonDeg, r.Site.HeightM)
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))

	fmt.Fprintf(w, "%-28s %14.5f\n", "Julian day", r.JulianDay)
	fmt.Fprintf(w, "%-28s %14.5f\n", "Julian ephemeris day", r.EphemerisDay)
	fmt.Fprintf(w, "%-28s %14.4f\n", "Decimal year", r.DecimalYear)
	fmt.Fprintf(w, "%-28s %12.1f s\n", "ΔT (TT−UT)", r.DeltaT)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s %s\n", "Mean sidereal (Greenwich)", fmtHours(r.MeanSidereal))
	fmt.Fprintf(w, "%-28s %s\n", "Apparent sidereal", fmtHours(r.ApparentSidereal))
	fmt.Fprintf(w, "%-28s %s\n", "Local sidereal", fmtHours(r.LocalSidereal))
	fmt.Fprintf(w, "%-28s %13.6f°\n", "Mean obliquity", angle.RadToDeg(r.MeanObliquity))
	fmt.Fprintf(w, "%-28s %13.6f°\n", "True obliquity", angle.RadToDeg(r.TrueObliquity))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s %13.4f°\n", "Sun right ascension", angle.RadToDeg(r.Sun.Eq.Asc))
	fmt.Fprintf(w, "%-28s %13.4f°\n", "Sun declination", angle.RadToDeg(r.Sun.Eq.Dec))
	fmt.Fprintf(w, "%-28s %13.4f°\n", "Sun ecliptic longitude", angle.RadToDeg(r.Sun.EclLong))
	fmt.Fprintf(w, "%-28s %13.2f°\n", "Sun azimuth (N→E)", r.SunAzDeg())
	fmt.Fprintf(w, "%-28s %13.2f°\n", "Sun altitude", r.SunAltDeg())
	if r.Refraction > 0 {
		fmt.Fprintf(w, "%-28s %12.1f″\n", "Refraction",
			angle.RadToDeg(r.Refraction)*3600)
	}
	fmt.Fprintf(w, "%-28s %+11.2f min\n", "Equation of time", r.EqOfTimeMinutes())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s %10.1f km\n", "Geodesic to Greenwich", r.GeodesicToGreenwich)
	fmt.Fprintf(w, "%-28s %10.1f km\n", "Radius of parallel", r.ParallelRadius)
	fmt.Fprintf(w, "%-28s %8.4f km/s\n", "Rotation velocity", r.LinearVelocity)
}

// fmtHours formats a sidereal angle in radians as hh:mm:ss.s.
func fmtHours(rad float64) string {
	h := angle.LimitToTwoPi(rad) / angle.TwoPi * 24

	hh := int(h)
	m := (h - float64(hh)) * 60
	mm := int(m)
	ss := (m - float64(mm)) * 60

	return fmt.Sprintf("%02d:%02d:%04.1f", hh, mm, ss)
}
