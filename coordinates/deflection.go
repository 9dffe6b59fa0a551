package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

const (
	// gmSunM3S2 is the heliocentric gravitational constant GM_sun in m^3/s^2 (IAU 2012).
	gmSunM3S2 = 1.32712440017987e20
	cMPerSec  = 299792458.0
)

// Deflection computes the gravitational deflection of light by a single
// body, returning a correction vector in km to add to the astrometric
// position.
//
// position is the observer-to-target vector in km. pe is the
// observer-to-deflector vector in km. rmass is the reciprocal mass,
// GM_sun/GM_deflector (1.0 for the Sun itself).
func Deflection(position, pe vector.Vector, rmass float64) vector.Vector {
	pq := position.Add(pe)

	pmag := position.Magnitude()
	qmag := pq.Magnitude()
	emag := pe.Magnitude()
	if pmag == 0 || qmag == 0 || emag == 0 {
		return vector.Zero
	}

	phat, _ := position.Normalize()
	qhat, _ := pq.Normalize()
	ehat, _ := pe.Normalize()

	pdotq := phat.Dot(qhat)
	qdote := qhat.Dot(ehat)
	edotp := ehat.Dot(phat)

	// Deflector on (or opposite) the line of sight: skip to avoid blowup.
	if math.Abs(edotp) > 0.99999999999 {
		return vector.Zero
	}

	fac1 := 2.0 * gmSunM3S2 / (cMPerSec * cMPerSec * emag * 1000.0 * rmass)
	fac2 := 1.0 + qdote

	return vector.New(
		fac1*(pdotq*ehat.X-edotp*qhat.X)/fac2*pmag,
		fac1*(pdotq*ehat.Y-edotp*qhat.Y)/fac2*pmag,
		fac1*(pdotq*ehat.Z-edotp*qhat.Z)/fac2*pmag,
	)
}
