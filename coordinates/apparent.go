package coordinates

import (
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// cAUPerDay is the speed of light in AU/day.
const cAUPerDay = cKmPerDay / units.AUToKm

// PositionFunc returns a solar-system body's heliocentric position (AU,
// fundamental frame) at the given TDB Julian date. ApparentDirection calls
// it repeatedly during light-time iteration.
type PositionFunc func(jdTDB float64) vector.Vector

// ApparentDirection computes the apparent direction (a unit vector in the
// fundamental frame) and true distance (AU) to a solar-system body, given
// a function that returns its heliocentric position at an arbitrary TDB
// date (spec §4.3).
//
// Steps: subtract the observer's heliocentric position (if
// Flags.ApplyParallax), iterate light-time by re-querying posFunc at
// JED − distance/c until convergence (if Flags.ApplyLightTime), apply
// stellar aberration using the observer's heliocentric velocity (if
// Flags.ApplyAberration), then normalize.
func (c *Coordinates) ApparentDirection(posFunc PositionFunc) (direction vector.Vector, distanceAU float64) {
	pos := posFunc(c.jdTDB)

	var astrometric vector.Vector
	if c.Flags.ApplyParallax {
		astrometric = pos.Sub(c.ObsPos)
	} else {
		astrometric = pos
	}
	distanceAU = astrometric.Magnitude()

	if c.Flags.ApplyLightTime {
		for iter := 0; iter < 12; iter++ {
			lightTime := distanceAU / cAUPerDay
			pos = posFunc(c.jdTDB - lightTime)
			if c.Flags.ApplyParallax {
				astrometric = pos.Sub(c.ObsPos)
			} else {
				astrometric = pos
			}
			newDist := astrometric.Magnitude()
			if abs(newDist-distanceAU) < 1e-10 {
				distanceAU = newDist
				break
			}
			distanceAU = newDist
		}
	}

	lightTimeDays := distanceAU / cAUPerDay

	apparent := astrometric
	if c.Flags.ApplyAberration {
		posKm := astrometric.Scale(units.AUToKm)
		velKmPerDay := c.ObsVel.Scale(units.AUToKm)
		apparent = Aberration(posKm, velKmPerDay, lightTimeDays).Scale(1.0 / units.AUToKm)
	}

	unit, _ := apparent.Normalize()
	return unit, distanceAU
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
