package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

// PhaseAngle returns the phase angle in degrees given the observer-to-target
// and Sun-to-target direction vectors: 0° is fully illuminated, 180° is
// fully in shadow.
func PhaseAngle(obsToTarget, sunToTarget vector.Vector) float64 {
	return obsToTarget.SeparationAngle(sunToTarget) * rad2deg
}

// FractionIlluminated returns the illuminated fraction of a spherical
// body's disc, in [0, 1], given the phase angle in degrees.
func FractionIlluminated(phaseAngleDeg float64) float64 {
	return 0.5 * (1.0 + math.Cos(phaseAngleDeg*deg2rad))
}

// Elongation returns the elongation of a target from a reference body,
// given their ecliptic longitudes in degrees: for the Moon vs. the Sun,
// 0°=new, 90°=first quarter, 180°=full, 270°=last quarter.
func Elongation(targetLonDeg, referenceLonDeg float64) float64 {
	return modDeg(targetLonDeg - referenceLonDeg)
}
