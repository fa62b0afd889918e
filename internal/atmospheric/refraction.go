// Package atmospheric provides atmospheric refraction terms.
package atmospheric

import (
	"math"

	"github.com/litescript/ls-almanac/internal/angle"
)

// RefractionFromApparentAlt computes the refraction term in radians
// for an apparent altitude greater than 15 degrees. Subtracting the
// term from the apparent altitude gives the true altitude.
func RefractionFromApparentAlt(apparentAlt float64) float64 {
	z := math.Pi/2 - apparentAlt
	x := angle.DegToRad(angle.DegFromDMS(0, 0, 0.0668)) * math.Tan(z)

	return angle.DegToRad(angle.DegFromDMS(0, 0, 58.294))*math.Tan(z) - x*x*x
}
