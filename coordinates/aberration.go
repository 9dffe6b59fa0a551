package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

// cKmPerDay is the speed of light in km/day.
const cKmPerDay = 299792.458 * 86400.0

// Aberration applies special-relativistic stellar aberration to an
// astrometric position, using the full Lorentz transformation rather than
// the classical v/c approximation (spec §4.3 names the classical formula
// as the baseline; this keeps the teacher's higher-precision version,
// which reduces to the classical one in the v≪c limit).
//
// position is the observer-to-target vector (km, astrometric). velocity
// is the observer's barycentric velocity (km/day). lightTime is the
// light travel time to the target in days.
func Aberration(position, velocity vector.Vector, lightTime float64) vector.Vector {
	p1mag := lightTime * cKmPerDay
	vemag := velocity.Magnitude()
	if p1mag == 0 || vemag == 0 {
		return position
	}

	beta := vemag / cKmPerDay
	cosd := position.Dot(velocity) / (p1mag * vemag)
	gammai := math.Sqrt(1.0 - beta*beta)
	p := beta * cosd
	q := (1.0 + p/(1.0+gammai)) * lightTime
	r := 1.0 + p

	return vector.New(
		(gammai*position.X+q*velocity.X)/r,
		(gammai*position.Y+q*velocity.Y)/r,
		(gammai*position.Z+q*velocity.Z)/r,
	)
}
